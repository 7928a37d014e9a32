// Command rlviewer drives the first-person camera through a raylib scene.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"math"
	"runtime"

	"github.com/bloxown/ogltest/engine/camera"
	"github.com/bloxown/ogltest/engine/input"
	"github.com/bloxown/ogltest/engine/renderer"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/glog"
)

var (
	//go:embed shaders/lighting.vs
	lightingVS string
	//go:embed shaders/lighting.fs
	lightingFS string
)

var (
	width          = flag.Int("width", 800, "window width")
	height         = flag.Int("height", 600, "window height")
	speed          = flag.Float64("speed", 5.0, "camera movement speed, units per second")
	sensitivity    = flag.Float64("sensitivity", float64(camera.DefaultSensitivity), "mouse sensitivity")
	constrainPitch = flag.Bool("constrain-pitch", true, "clamp pitch to +-89 degrees")
	fps            = flag.Int("fps", 60, "target frame rate")
)

func init() {
	// raylib requires OS thread for window and OpenGL
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(*width), int32(*height), "OpenGL Test (raylib)")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(*fps))
	rl.DisableCursor()

	rend := renderer.NewRenderer(lightingVS, lightingFS)
	defer rend.Destroy()

	cam := camera.NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, camera.DefaultYaw, camera.DefaultPitch)
	cam.MovementSpeed = float32(*speed)
	cam.MouseSensitivity = float32(*sensitivity)
	cam.SetAspect(float32(*width) / float32(*height))

	ctl := input.NewController(cam)
	ctl.ConstrainPitch = *constrainPitch

	rend.SetAmbient(mgl32.Vec3{0.3, 0.3, 0.4}, 1.0)
	rend.SetSun(mgl32.Vec3{-0.5, -1.0, -0.3}, mgl32.Vec3{1.0, 0.9, 0.8}, 0.8)

	timer := input.FrameTimer{MinDelta: 0.0001}
	timer.Tick(rl.GetTime())
	glog.Infof("rlviewer: %dx%d, speed %.1f, sensitivity %.2f", *width, *height, *speed, *sensitivity)

	for !rl.WindowShouldClose() {
		now := rl.GetTime()
		dt := timer.Tick(now)

		if rl.IsWindowResized() && rl.GetScreenHeight() > 0 {
			cam.SetAspect(float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight()))
		}

		// update the camera before anything reads it this frame
		ctl.Keys(input.KeyState{
			Forward:  rl.IsKeyDown(rl.KeyW),
			Backward: rl.IsKeyDown(rl.KeyS),
			Left:     rl.IsKeyDown(rl.KeyA),
			Right:    rl.IsKeyDown(rl.KeyD),
		}, dt)
		delta := rl.GetMouseDelta()
		ctl.CursorDelta(delta.X, -delta.Y) // raylib Y grows downwards
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			ctl.Scroll(float64(wheel))
		}

		rend.BeginFrame()

		// orbiting light
		angle := float64(now)
		lightPos := mgl32.Vec3{float32(4 * math.Cos(angle)), 3, float32(4*math.Sin(angle)) - 5}
		rend.PushLightCube(lightPos, mgl32.Vec3{0.3, 0.3, 0.3}, mgl32.Vec4{1, 0.8, 0.6, 1})

		// floor
		rend.PushCube(mgl32.Vec3{0, -5, -5}, mgl32.Vec3{100, 1, 100}, mgl32.Vec4{0.2, 0.6, 0.2, 1})

		// 3x3x3 grid of cubes
		for x := -1; x <= 1; x++ {
			for y := -1; y <= 1; y++ {
				for z := -1; z <= 1; z++ {
					pos := mgl32.Vec3{float32(x) * 2, float32(y) * 2, float32(z)*2 - 5}
					color := mgl32.Vec4{float32(x+1) / 2, float32(y+1) / 2, float32(z+1) / 2, 1}
					rend.PushCube(pos, mgl32.Vec3{1, 1, 1}, color)
				}
			}
		}

		rend.PushText(10, 10, mgl32.Vec4{1, 1, 1, 1}, fmt.Sprintf("Prims: %d", rend.PrimCount()))
		rend.PushText(10, 30, mgl32.Vec4{1, 1, 1, 1},
			fmt.Sprintf("Yaw %.1f  Pitch %.1f  Fov %.0f", cam.Yaw, cam.Pitch, cam.Fov))
		rend.PushText(10, 50, mgl32.Vec4{1, 1, 1, 1},
			fmt.Sprintf("Pos %.2f %.2f %.2f", cam.Position.X(), cam.Position.Y(), cam.Position.Z()))

		rend.EndFrame(cam)
	}
}
