// Package input turns raw per-frame window input into camera updates.
// It knows nothing about a concrete window system; engine/window feeds it.
package input

import (
	"github.com/bloxown/ogltest/engine/camera"
	"github.com/golang/glog"
)

// MouseTracker converts absolute cursor positions into per-event deltas.
// The first sample only records a baseline so the view does not jump when
// the cursor first enters the window.
type MouseTracker struct {
	lastX, lastY float64
	primed       bool
}

// Offset returns the delta since the previous sample. dy is flipped so that
// moving the cursor up gives a positive value (screen Y grows downwards).
func (m *MouseTracker) Offset(x, y float64) (dx, dy float32) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
		return 0, 0
	}
	dx = float32(x - m.lastX)
	dy = float32(m.lastY - y)
	m.lastX, m.lastY = x, y
	return dx, dy
}

// Reset forgets the baseline; the next Offset call returns a zero delta.
func (m *MouseTracker) Reset() {
	m.primed = false
}

// KeyState is the set of movement keys held during a frame.
type KeyState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Movements returns the held directions in a fixed order.
func (k KeyState) Movements() []camera.Movement {
	dirs := make([]camera.Movement, 0, 4)
	if k.Forward {
		dirs = append(dirs, camera.Forward)
	}
	if k.Backward {
		dirs = append(dirs, camera.Backward)
	}
	if k.Left {
		dirs = append(dirs, camera.Left)
	}
	if k.Right {
		dirs = append(dirs, camera.Right)
	}
	return dirs
}

// FrameTimer measures wall-clock time between frames. The caller supplies
// the clock reading; the timer never reads a clock itself.
type FrameTimer struct {
	// MinDelta, when positive, is the smallest delta returned after the first tick.
	MinDelta float32

	last    float64
	started bool
}

// Tick records now (seconds) and returns the time elapsed since the
// previous tick. The first tick returns 0.
func (t *FrameTimer) Tick(now float64) float32 {
	if !t.started {
		t.last = now
		t.started = true
		return 0
	}
	dt := float32(now - t.last)
	t.last = now
	if dt < 0 {
		dt = 0
	}
	if t.MinDelta > 0 && dt < t.MinDelta {
		dt = t.MinDelta
	}
	return dt
}

// Controller forwards input events to the camera it was given. It is meant
// to be driven from the thread that owns the window.
type Controller struct {
	Camera         *camera.Camera
	ConstrainPitch bool

	mouse MouseTracker
}

// NewController returns a Controller for cam with pitch constraint enabled.
func NewController(cam *camera.Camera) *Controller {
	return &Controller{
		Camera:         cam,
		ConstrainPitch: true,
	}
}

// Keys applies one frame of held movement keys.
func (c *Controller) Keys(keys KeyState, deltaTime float32) {
	for _, dir := range keys.Movements() {
		c.Camera.ProcessKeyboard(dir, deltaTime)
	}
}

// CursorPos handles an absolute cursor position event.
func (c *Controller) CursorPos(x, y float64) {
	dx, dy := c.mouse.Offset(x, y)
	if glog.V(3) {
		glog.Infof("input: cursor (%.1f, %.1f) delta (%.2f, %.2f)", x, y, dx, dy)
	}
	c.Camera.ProcessMouseMovement(dx, dy, c.ConstrainPitch)
}

// CursorDelta handles a relative pointer delta (already Y-flipped by the caller).
func (c *Controller) CursorDelta(dx, dy float32) {
	c.Camera.ProcessMouseMovement(dx, dy, c.ConstrainPitch)
}

// Scroll handles a vertical scroll event.
func (c *Controller) Scroll(yOffset float64) {
	c.Camera.ProcessMouseScroll(float32(yOffset))
}

// Recapture re-arms the mouse baseline, e.g. after the cursor was released.
func (c *Controller) Recapture() {
	c.mouse.Reset()
}
