// Package camera smooths the viewport toward the player.
package camera

const (
	// DefaultLerp is the per-frame smoothing weight.
	DefaultLerp = 0.2
	// Default viewport size in tiles.
	DefaultViewportWidth  = 32
	DefaultViewportHeight = 18
)

// Camera tracks the top-left corner of the viewport in tile units.
// Smoothing is applied once per rendered frame and is not scaled by elapsed time.
type Camera struct {
	X, Y float64

	viewW, viewH float64
	mapW, mapH   float64
	lerp         float64
}

// New creates a camera for a map and viewport, both measured in tiles.
func New(mapW, mapH, viewW, viewH int, lerp float64) *Camera {
	if lerp <= 0 || lerp > 1 {
		lerp = DefaultLerp
	}
	return &Camera{
		viewW: float64(viewW),
		viewH: float64(viewH),
		mapW:  float64(mapW),
		mapH:  float64(mapH),
		lerp:  lerp,
	}
}

// Viewport returns the viewport size in tiles.
func (c *Camera) Viewport() (int, int) {
	return int(c.viewW), int(c.viewH)
}

// Target returns the clamped camera position that centres (px, py).
func (c *Camera) Target(px, py float64) (float64, float64) {
	return clamp(px-c.viewW/2, c.mapW-c.viewW), clamp(py-c.viewH/2, c.mapH-c.viewH)
}

// Update moves the camera a fixed fraction of the way to its target.
func (c *Camera) Update(px, py float64) {
	tx, ty := c.Target(px, py)
	c.X += (tx - c.X) * c.lerp
	c.Y += (ty - c.Y) * c.lerp
}

// Snap jumps straight to the target. Used on session reset.
func (c *Camera) Snap(px, py float64) {
	c.X, c.Y = c.Target(px, py)
}

// clamp limits v to [0, max]. A negative max collapses the range to 0.
func clamp(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
