package game

import "github.com/samdwyer/monbound/internal/ui"

// Snapshot captures the current state for rendering.
func (s *Session) Snapshot() ui.Scene {
	v := ui.Scene{
		Menu:     s.mode == ModeMenu,
		Paused:   s.paused,
		Backpack: s.backpack,
		MapName:  s.mapName,
		Seed:     s.seedLabel,
		Grid:     s.grid,
		Player:   s.mover.Position(),
		CameraX:  s.cam.X,
		CameraY:  s.cam.Y,
		Messages: s.log.Entries(),
	}
	v.TileX, v.TileY = s.mover.Tile()
	v.Tile = s.grid.Type(v.TileX, v.TileY)
	v.ViewWidth, v.ViewHeight = s.cam.Viewport()

	if s.team != nil {
		v.Team = s.team.Members
		v.Active = s.team.Active
	}

	if s.trainers != nil {
		for _, t := range s.trainers.Trainers() {
			v.Trainers = append(v.Trainers, ui.TrainerView{
				ID:       t.ID,
				X:        t.X,
				Y:        t.Y,
				Facing:   t.Facing,
				Defeated: t.Defeated,
				Sight:    s.trainers.SightLine(t),
			})
		}
	}

	if s.battle != nil {
		if st := s.battle.State(); st != nil {
			v.Battle = &ui.BattleView{
				Phase:     st.Phase,
				Opponent:  st.Opponent,
				TrainerID: st.TrainerID,
				Turn:      st.TurnCount,
			}
		}
	}
	return v
}
