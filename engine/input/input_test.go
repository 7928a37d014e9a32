package input

import (
	"testing"

	"github.com/bloxown/ogltest/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMouseTracker_Offset(t *testing.T) {
	type sample struct{ X, Y float64 }
	type delta struct{ DX, DY float32 }

	var m MouseTracker
	in := []sample{{400, 300}, {410, 300}, {410, 280}, {395, 290}}
	want := []delta{{0, 0}, {10, 0}, {0, 20}, {-15, -10}}

	for i, s := range in {
		dx, dy := m.Offset(s.X, s.Y)
		if (delta{dx, dy}) != want[i] {
			t.Errorf("Offset(%v, %v) != %v (got %v)", s.X, s.Y, want[i], delta{dx, dy})
		}
	}
}

func TestMouseTracker_Reset(t *testing.T) {
	var m MouseTracker
	m.Offset(0, 0)
	m.Reset()
	if dx, dy := m.Offset(500, 500); dx != 0 || dy != 0 {
		t.Errorf("Offset after Reset != (0, 0) (got (%v, %v))", dx, dy)
	}
	if dx, dy := m.Offset(501, 499); dx != 1 || dy != 1 {
		t.Errorf("Offset(501, 499) != (1, 1) (got (%v, %v))", dx, dy)
	}
}

func TestKeyState_Movements(t *testing.T) {
	tests := []struct {
		Keys     KeyState
		Expected []camera.Movement
	}{
		{KeyState{}, []camera.Movement{}},
		{KeyState{Forward: true}, []camera.Movement{camera.Forward}},
		{KeyState{Right: true, Forward: true}, []camera.Movement{camera.Forward, camera.Right}},
		{KeyState{true, true, true, true}, []camera.Movement{camera.Forward, camera.Backward, camera.Left, camera.Right}},
	}

	for _, tc := range tests {
		if diff := cmp.Diff(tc.Expected, tc.Keys.Movements()); diff != "" {
			t.Errorf("%+v.Movements() mismatch (-want +got):\n%s", tc.Keys, diff)
		}
	}
}

func TestFrameTimer_Tick(t *testing.T) {
	tests := []struct {
		Name     string
		Min      float32
		Times    []float64
		Expected []float32
	}{
		{"plain", 0, []float64{10, 10.5, 11.25}, []float32{0, 0.5, 0.75}},
		{"backwards clock", 0, []float64{5, 4}, []float32{0, 0}},
		{"floor", 0.0001, []float64{1, 1, 2}, []float32{0, 0.0001, 1}},
	}

	for _, tc := range tests {
		timer := FrameTimer{MinDelta: tc.Min}
		for i, now := range tc.Times {
			if dt := timer.Tick(now); dt != tc.Expected[i] {
				t.Errorf("%s: Tick(%v) != %v (got %v)", tc.Name, now, tc.Expected[i], dt)
			}
		}
	}
}

func TestController_FirstCursorSampleDoesNotTurn(t *testing.T) {
	cam := camera.NewDefaultCamera()
	ctl := NewController(cam)

	ctl.CursorPos(800, 600)
	if cam.Yaw != camera.DefaultYaw || cam.Pitch != camera.DefaultPitch {
		t.Errorf("first sample moved camera to yaw=%v pitch=%v", cam.Yaw, cam.Pitch)
	}

	// 100px right and 50px up at 0.1 sensitivity
	ctl.CursorPos(900, 550)
	if diff := cmp.Diff([]float32{-80, 5}, []float32{cam.Yaw, cam.Pitch}, cmpopts.EquateApprox(0, 1e-4)); diff != "" {
		t.Errorf("yaw/pitch mismatch (-want +got):\n%s", diff)
	}
}

func TestController_ConstrainPitch(t *testing.T) {
	cam := camera.NewDefaultCamera()
	ctl := NewController(cam)

	ctl.CursorDelta(0, 2000)
	if cam.Pitch != camera.MaxPitch {
		t.Errorf("Pitch != %v (got %v)", camera.MaxPitch, cam.Pitch)
	}

	ctl.ConstrainPitch = false
	ctl.CursorDelta(0, 100)
	if cam.Pitch <= camera.MaxPitch {
		t.Errorf("unconstrained Pitch <= %v (got %v)", camera.MaxPitch, cam.Pitch)
	}
}

func TestController_KeysAndScroll(t *testing.T) {
	cam := camera.NewDefaultCamera()
	cam.MovementSpeed = 1
	ctl := NewController(cam)

	ctl.Keys(KeyState{Forward: true, Right: true}, 0.25)
	if diff := cmp.Diff(mgl32.Vec3{0.25, 0, -0.25}, cam.Position, cmpopts.EquateApprox(0, 1e-5)); diff != "" {
		t.Errorf("Position mismatch (-want +got):\n%s", diff)
	}

	ctl.Scroll(10)
	if cam.Fov != 35 {
		t.Errorf("Fov != 35 (got %v)", cam.Fov)
	}
}

func TestController_Recapture(t *testing.T) {
	cam := camera.NewDefaultCamera()
	ctl := NewController(cam)

	ctl.CursorPos(0, 0)
	ctl.Recapture()
	ctl.CursorPos(1000, 1000)
	if cam.Yaw != camera.DefaultYaw || cam.Pitch != camera.DefaultPitch {
		t.Errorf("recaptured sample moved camera to yaw=%v pitch=%v", cam.Yaw, cam.Pitch)
	}
}
