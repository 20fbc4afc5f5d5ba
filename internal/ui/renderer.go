package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/monbound/internal/battle"
	"github.com/samdwyer/monbound/internal/entity"
	"github.com/samdwyer/monbound/internal/gamedata"
	"github.com/samdwyer/monbound/internal/world"
)

// Screen layout, in cells.
const (
	mapX     = 1
	mapY     = 2
	panelGap = 3
	barWidth = 12
)

type tileStyle struct {
	glyph rune
	color tcell.Color
}

var tileStyles = map[world.TileType]tileStyle{
	world.TypeWall:     {'#', gamedata.MustParseHexColor("#8b6d4b")},
	world.TypeTrail:    {'.', gamedata.MustParseHexColor("#d8d4c0")},
	world.TypeStart:    {'.', gamedata.MustParseHexColor("#d8d4c0")},
	world.TypeEntrance: {'Ω', gamedata.MustParseHexColor("#9ca3af")},
	world.TypeGrass:    {'"', gamedata.MustParseHexColor("#4caf50")},
	world.TypeWater:    {'~', gamedata.MustParseHexColor("#78c7ff")},
	world.TypeTown:     {'T', gamedata.MustParseHexColor("#f2b8b5")},
	world.TypeTrainer:  {'.', gamedata.MustParseHexColor("#d8d4c0")},
}

var facingGlyphs = map[world.Direction]rune{
	world.Up:    '^',
	world.Right: '>',
	world.Down:  'v',
	world.Left:  '<',
}

var (
	hpFull  = mustColorful("#4caf50")
	hpEmpty = mustColorful("#ef4444")
	watched = gamedata.MustParseHexColor("#5b2333")
)

func mustColorful(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame of the scene.
func (r *Renderer) Render(sc *Scene) {
	r.screen.Clear()

	if sc.Menu {
		r.drawMenu(sc)
		r.screen.Show()
		return
	}

	r.drawHeader(sc)
	r.drawMap(sc)
	r.drawPanel(sc)
	r.drawMessages(sc)

	switch {
	case sc.Paused:
		r.drawPause(sc)
	case sc.Backpack:
		r.drawBackpack(sc)
	}

	r.screen.Show()
}

func (r *Renderer) drawHeader(sc *Scene) {
	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	x := r.screen.DrawText(mapX, 0, "Mon Bound", title)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	label := "  " + sc.MapName
	if sc.Seed != "" {
		label += "  seed " + sc.Seed
	}
	r.screen.DrawText(mapX+x, 0, label, dim)
}

// origin returns the top-left tile shown in the viewport.
func origin(sc *Scene) (int, int) {
	return int(math.Floor(sc.CameraX)), int(math.Floor(sc.CameraY))
}

func (r *Renderer) drawMap(sc *Scene) {
	ox, oy := origin(sc)
	for vy := 0; vy < sc.ViewHeight; vy++ {
		for vx := 0; vx < sc.ViewWidth; vx++ {
			tx, ty := ox+vx, oy+vy
			if !sc.Grid.InBounds(tx, ty) {
				continue
			}
			ts := tileStyles[sc.Grid.Type(tx, ty)]
			style := tcell.StyleDefault.Foreground(ts.color)
			if sc.Watched(tx, ty) {
				style = style.Background(watched)
			}
			r.screen.SetContent(mapX+vx, mapY+vy, ts.glyph, style)
		}
	}

	for _, t := range sc.Trainers {
		vx, vy := t.X-ox, t.Y-oy
		if !inView(sc, vx, vy) {
			continue
		}
		glyph, style := facingGlyphs[t.Facing], tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		if t.Defeated {
			glyph, style = 'R', tcell.StyleDefault.Foreground(tcell.ColorGray)
		}
		r.screen.SetContent(mapX+vx, mapY+vy, glyph, style)
	}

	vx, vy := sc.TileX-ox, sc.TileY-oy
	if inView(sc, vx, vy) {
		r.screen.SetContent(mapX+vx, mapY+vy, '@', tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	}
}

func inView(sc *Scene, vx, vy int) bool {
	return vx >= 0 && vy >= 0 && vx < sc.ViewWidth && vy < sc.ViewHeight
}

func (r *Renderer) drawPanel(sc *Scene) {
	x := mapX + sc.ViewWidth + panelGap
	y := mapY
	bold := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	r.screen.DrawText(x, y, "Team", bold)
	y++
	for i, c := range sc.Team {
		marker := "  "
		if i == sc.Active {
			marker = "> "
		}
		r.screen.DrawText(x, y, marker, bold)
		r.drawCreature(x+2, y, c)
		y += 2
	}

	y++
	r.screen.DrawText(x, y, "Tile: "+sc.Tile.Label(), dim)
	y += 2

	if sc.Battle == nil {
		return
	}
	r.drawBattle(x, y, sc)
}

// drawCreature uses two rows: name and level, then an HP bar.
func (r *Renderer) drawCreature(x, y int, c *entity.Creature) {
	r.screen.DrawText(x, y, fmt.Sprintf("%s L%d", c.Name, c.Level), tcell.StyleDefault.Foreground(c.Color))
	r.drawBar(x, y+1, c.HP, c.MaxHP)
}

func (r *Renderer) drawBar(x, y, hp, maxHP int) {
	filled := 0
	ratio := 0.0
	if maxHP > 0 {
		ratio = float64(hp) / float64(maxHP)
		filled = int(math.Ceil(ratio * barWidth))
	}
	style := tcell.StyleDefault.Foreground(hpColor(ratio))
	for i := 0; i < barWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(x+i, y, ch, style)
	}
	r.screen.DrawText(x+barWidth+1, y, fmt.Sprintf("%d/%d", hp, maxHP), tcell.StyleDefault)
}

// hpColor blends from red at 0 to green at full health.
func hpColor(ratio float64) tcell.Color {
	ratio = math.Max(0, math.Min(1, ratio))
	cr, cg, cb := hpEmpty.BlendLab(hpFull, ratio).Clamped().RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

func (r *Renderer) drawBattle(x, y int, sc *Scene) {
	b := sc.Battle
	bold := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	title := "Wild battle"
	if b.TrainerID != "" {
		title = "Trainer battle"
	}
	r.screen.DrawText(x, y, title, bold.Foreground(tcell.ColorRed))
	y++
	r.drawCreature(x, y, b.Opponent)
	y += 3

	if b.Phase == battle.PhaseFoeTurn {
		r.screen.DrawText(x, y, "The foe is moving...", dim)
		return
	}
	if sc.Active < 0 || sc.Active >= len(sc.Team) {
		return
	}
	for i, a := range sc.Team[sc.Active].Abilities {
		r.screen.DrawText(x, y, fmt.Sprintf("%d %s (%d)", i+1, a.Name, a.Power), tcell.StyleDefault)
		y++
	}
	r.screen.DrawText(x, y, "F Flee", dim)
}

func (r *Renderer) drawMessages(sc *Scene) {
	y := mapY + sc.ViewHeight + 1
	for i, msg := range sc.Messages {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if i == 0 {
			style = tcell.StyleDefault.Foreground(tcell.ColorWhite)
		}
		r.screen.DrawText(mapX, y+i, msg, style)
	}
}

// drawBox draws a bordered, filled box centred on the map and returns the
// top-left of its interior.
func (r *Renderer) drawBox(sc *Scene, w, h int) (int, int) {
	x := mapX + (sc.ViewWidth-w)/2
	y := mapY + (sc.ViewHeight-h)/2
	border := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	r.screen.Fill(x, y, w, h, ' ', tcell.StyleDefault)
	for i := 1; i < w-1; i++ {
		r.screen.SetContent(x+i, y, '─', border)
		r.screen.SetContent(x+i, y+h-1, '─', border)
	}
	for j := 1; j < h-1; j++ {
		r.screen.SetContent(x, y+j, '│', border)
		r.screen.SetContent(x+w-1, y+j, '│', border)
	}
	r.screen.SetContent(x, y, '┌', border)
	r.screen.SetContent(x+w-1, y, '┐', border)
	r.screen.SetContent(x, y+h-1, '└', border)
	r.screen.SetContent(x+w-1, y+h-1, '┘', border)
	return x + 2, y + 1
}

func (r *Renderer) drawPause(sc *Scene) {
	x, y := r.drawBox(sc, 26, 8)
	r.screen.DrawText(x, y, "Paused", tcell.StyleDefault.Bold(true))
	lines := []string{"Esc  resume", "R    reset run", "M    main menu", "Q    quit"}
	for i, l := range lines {
		r.screen.DrawText(x, y+2+i, l, tcell.StyleDefault)
	}
}

func (r *Renderer) drawBackpack(sc *Scene) {
	h := 5 + 2*len(sc.Team)
	x, y := r.drawBox(sc, 30, h)
	r.screen.DrawText(x, y, "Backpack", tcell.StyleDefault.Bold(true))
	y += 2
	for i, c := range sc.Team {
		r.screen.DrawText(x, y, fmt.Sprintf("%d", i+1), tcell.StyleDefault.Bold(true))
		r.drawCreature(x+2, y, c)
		y += 2
	}
	r.screen.DrawText(x, y, "1-9 set lead  P close", tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawMenu(sc *Scene) {
	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	y := 2
	r.screen.DrawText(mapX+2, y, "Mon Bound", title)
	r.screen.DrawText(mapX+2, y+1, "Tiny Adventure", dim)
	r.screen.DrawText(mapX+2, y+3, "Explore, befriend, and spar with vivid little spirits", tcell.StyleDefault)
	r.screen.DrawText(mapX+2, y+4, "in a cozy archipelago.", tcell.StyleDefault)
	r.screen.DrawText(mapX+2, y+6, "Enter  new run", tcell.StyleDefault)
	r.screen.DrawText(mapX+2, y+7, "Q      quit", tcell.StyleDefault)
	if len(sc.Messages) > 0 {
		r.screen.DrawText(mapX+2, y+9, sc.Messages[0], dim)
	}
}
