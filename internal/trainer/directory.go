// Package trainer owns the map's trainers: their facing rotation and sight lines.
package trainer

import (
	"fmt"
	"time"

	"github.com/samdwyer/monbound/internal/schedule"
	"github.com/samdwyer/monbound/internal/world"
)

const (
	// DefaultSightRange is how many tiles a trainer can see along its facing.
	DefaultSightRange = 3
	// Rotation delay range.
	DefaultRotateMin = 5 * time.Second
	DefaultRotateMax = 10 * time.Second
)

// Rand is the random source for facings and rotation delays.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Trainer is a stationary opponent that battles the player on sight.
type Trainer struct {
	ID       string // Stable identity derived from the spawn tile
	X, Y     int
	Facing   world.Direction
	Defeated bool
}

// Options tunes sight and rotation.
type Options struct {
	SightRange int
	RotateMin  time.Duration
	RotateMax  time.Duration
}

// Directory holds every trainer on the map.
type Directory struct {
	grid     *world.Grid
	rng      Rand
	sched    *schedule.Scheduler
	opts     Options
	trainers []*Trainer
	byID     map[string]*Trainer
}

// NewDirectory scans the grid for trainer spawns in row-major order and gives
// each a uniformly random facing. Call Arm to start the rotation timers.
func NewDirectory(grid *world.Grid, rng Rand, sched *schedule.Scheduler, opts Options) *Directory {
	if opts.SightRange <= 0 {
		opts.SightRange = DefaultSightRange
	}
	if opts.RotateMin <= 0 {
		opts.RotateMin = DefaultRotateMin
	}
	if opts.RotateMax <= opts.RotateMin {
		opts.RotateMax = opts.RotateMin + DefaultRotateMax - DefaultRotateMin
	}

	d := &Directory{
		grid:  grid,
		rng:   rng,
		sched: sched,
		opts:  opts,
		byID:  make(map[string]*Trainer),
	}
	for _, p := range grid.Find(world.TypeTrainer) {
		t := &Trainer{
			ID:     fmt.Sprintf("trainer-%d-%d", p.X, p.Y),
			X:      p.X,
			Y:      p.Y,
			Facing: d.randomFacing(),
		}
		d.trainers = append(d.trainers, t)
		d.byID[t.ID] = t
	}
	return d
}

// Trainers returns every trainer in iteration order.
func (d *Directory) Trainers() []*Trainer {
	return d.trainers
}

// Get returns the trainer with the given ID, or nil.
func (d *Directory) Get(id string) *Trainer {
	return d.byID[id]
}

// Arm schedules one rotation for every live trainer.
func (d *Directory) Arm() {
	for _, t := range d.trainers {
		if !t.Defeated {
			d.schedule(t)
		}
	}
}

// Close cancels every rotation timer.
func (d *Directory) Close() {
	for _, t := range d.trainers {
		d.sched.Cancel(timerKey(t.ID))
	}
}

// MarkDefeated flags the trainer as beaten and cancels its rotation for good.
// It returns false if the trainer is unknown or already defeated.
func (d *Directory) MarkDefeated(id string) bool {
	t := d.byID[id]
	if t == nil || t.Defeated {
		return false
	}
	t.Defeated = true
	d.sched.Cancel(timerKey(id))
	return true
}

// CanSee reports whether the trainer's sight line reaches tile (px, py).
// The scan covers up to SightRange tiles and stops at walls and the map edge.
func (d *Directory) CanSee(t *Trainer, px, py int) bool {
	if t.Defeated {
		return false
	}
	dx, dy := t.Facing.Delta()
	x, y := t.X, t.Y
	for step := 0; step < d.opts.SightRange; step++ {
		x += dx
		y += dy
		if !d.grid.InBounds(x, y) || d.grid.IsWall(x, y) {
			return false
		}
		if x == px && y == py {
			return true
		}
	}
	return false
}

// Spot returns the first live trainer that can see tile (px, py), or nil.
func (d *Directory) Spot(px, py int) *Trainer {
	for _, t := range d.trainers {
		if d.CanSee(t, px, py) {
			return t
		}
	}
	return nil
}

// SightLine returns the tiles the trainer currently watches, for rendering.
func (d *Directory) SightLine(t *Trainer) []world.Point {
	if t.Defeated {
		return nil
	}
	var points []world.Point
	dx, dy := t.Facing.Delta()
	x, y := t.X, t.Y
	for step := 0; step < d.opts.SightRange; step++ {
		x += dx
		y += dy
		if !d.grid.InBounds(x, y) || d.grid.IsWall(x, y) {
			break
		}
		points = append(points, world.Point{X: x, Y: y})
	}
	return points
}

// Pending reports whether the trainer has a rotation armed.
func (d *Directory) Pending(id string) bool {
	return d.sched.Pending(timerKey(id))
}

func (d *Directory) schedule(t *Trainer) {
	d.sched.After(timerKey(t.ID), d.rotateDelay(), func() {
		d.rotate(t)
	})
}

func (d *Directory) rotate(t *Trainer) {
	if t.Defeated {
		return
	}
	t.Facing = d.randomFacing()
	d.schedule(t)
}

func (d *Directory) randomFacing() world.Direction {
	return world.Directions[d.rng.Intn(len(world.Directions))]
}

// rotateDelay draws uniformly from [RotateMin, RotateMax).
func (d *Directory) rotateDelay() time.Duration {
	span := d.opts.RotateMax - d.opts.RotateMin
	return d.opts.RotateMin + time.Duration(d.rng.Float64()*float64(span))
}

func timerKey(id string) string {
	return "trainer/" + id
}
