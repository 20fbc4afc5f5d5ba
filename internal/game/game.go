package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/monbound/internal/telemetry"
	"github.com/samdwyer/monbound/internal/ui"
)

// Game runs a session in the terminal.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	holds    *ui.HoldTracker
	running  bool
}

// New creates a new game instance.
func New(cfg Config) (*Game, error) {
	session, err := LoadSession(cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		holds:    ui.NewHoldTracker(ui.DefaultFirstHold, ui.DefaultRepeatHold),
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("map", g.cfg.MapID),
		attribute.Int("fps", g.cfg.FrameRate),
	)

	events := make(chan tcell.Event, 64)
	go g.screen.Events(events)

	ticker := time.NewTicker(g.cfg.FrameInterval())
	defer ticker.Stop()

	frames := 0
	last := time.Now()
	g.render()

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false

		case ev, ok := <-events:
			if !ok {
				g.running = false
				break
			}
			g.handleEvent(ctx, ev)

		case now := <-ticker.C:
			for _, dir := range g.holds.Expire(now) {
				g.session.SetDirection(dir, false)
			}
			g.session.Tick(ctx, now.Sub(last))
			last = now
			frames++
			g.render()
		}
	}

	span.SetAttributes(attribute.Int("frames", frames))
	return nil
}

func (g *Game) render() {
	scene := g.session.Snapshot()
	g.renderer.Render(&scene)
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent routes a decoded key to the session.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	s := g.session
	intent := ui.Decode(ev)

	switch intent.Action {
	case ui.ActionQuit:
		g.running = false

	case ui.ActionConfirm:
		if s.Mode() == ModeMenu {
			g.holds.Reset()
			s.StartNewSession(ctx, g.cfg.Seed)
		}

	case ui.ActionMove:
		if s.Mode() == ModeExplore {
			g.holds.Press(intent.Dir, ev.When())
			s.SetDirection(intent.Dir, true)
		}

	case ui.ActionPause:
		s.TogglePause()
		g.holds.Reset()

	case ui.ActionBackpack:
		s.ToggleBackpack()
		g.holds.Reset()

	case ui.ActionSlot:
		if s.backpack {
			s.SelectLead(intent.Slot)
		} else {
			s.UseAbility(ctx, intent.Slot)
		}

	case ui.ActionFlee:
		s.Flee(ctx)

	case ui.ActionReset:
		g.holds.Reset()
		s.ResetToStart(ctx)

	case ui.ActionMenu:
		if s.paused {
			g.holds.Reset()
			s.ReturnToMenu()
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
