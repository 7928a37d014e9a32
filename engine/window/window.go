// Package window opens a GLFW window with an OpenGL 4.1 core context and
// routes its input into an input.Controller.
package window

import (
	"github.com/bloxown/ogltest/engine/input"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"
	"golang.org/x/xerrors"
)

// Window wraps a glfw.Window bound to a controller.
type Window struct {
	*glfw.Window

	ctl   *input.Controller
	timer input.FrameTimer
}

// Open initializes GLFW and GL and creates a window. The caller must be on
// the main OS thread and must call Close when done.
func Open(width, height int, title string, ctl *input.Controller) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, xerrors.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, xerrors.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, xerrors.Errorf("initialize gl: %w", err)
	}
	glog.Infof("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	w := &Window{Window: win, ctl: ctl}

	fbw, fbh := win.GetFramebufferSize()
	w.resize(fbw, fbh)

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.resize(width, height)
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		ctl.CursorPos(x, y)
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yOffset float64) {
		ctl.Scroll(yOffset)
	})
	win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return w, nil
}

func (w *Window) resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	if height > 0 {
		w.ctl.Camera.SetAspect(float32(width) / float32(height))
	}
}

// BeginFrame polls events and applies held keys with the frame's delta time.
// It returns false once the window should close.
func (w *Window) BeginFrame() bool {
	glfw.PollEvents()
	dt := w.timer.Tick(glfw.GetTime())

	if w.GetKey(glfw.KeyEscape) == glfw.Press {
		w.SetShouldClose(true)
	}
	if w.GetKey(glfw.KeyLeftAlt) == glfw.Press {
		w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
	if w.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press &&
		w.GetInputMode(glfw.CursorMode) != glfw.CursorDisabled {
		w.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		w.ctl.Recapture()
	}

	w.ctl.Keys(input.KeyState{
		Forward:  w.GetKey(glfw.KeyW) == glfw.Press,
		Backward: w.GetKey(glfw.KeyS) == glfw.Press,
		Left:     w.GetKey(glfw.KeyA) == glfw.Press,
		Right:    w.GetKey(glfw.KeyD) == glfw.Press,
	}, dt)

	return !w.ShouldClose()
}

// EndFrame presents the back buffer.
func (w *Window) EndFrame() {
	w.SwapBuffers()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}
