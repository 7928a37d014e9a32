// Command glviewer flies a first-person camera through a field of lit cubes
// using GLFW and OpenGL 4.1.
package main

import (
	_ "embed"
	"flag"
	"math"
	"path/filepath"
	"runtime"

	"github.com/bloxown/ogltest/engine/camera"
	"github.com/bloxown/ogltest/engine/input"
	"github.com/bloxown/ogltest/engine/mesh"
	"github.com/bloxown/ogltest/engine/shader"
	"github.com/bloxown/ogltest/engine/texture"
	"github.com/bloxown/ogltest/engine/window"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/glog"
)

var (
	//go:embed shaders/lit.vert
	litVert string
	//go:embed shaders/lit.frag
	litFrag string
)

var (
	width          = flag.Int("width", 800, "window width")
	height         = flag.Int("height", 600, "window height")
	speed          = flag.Float64("speed", float64(camera.DefaultSpeed), "camera movement speed, units per second")
	sensitivity    = flag.Float64("sensitivity", float64(camera.DefaultSensitivity), "mouse sensitivity")
	constrainPitch = flag.Bool("constrain-pitch", true, "clamp pitch to +-89 degrees")
	texturePath    = flag.String("texture", "", "diffuse texture for the cubes (png or jpeg); empty uses a checkerboard")
	shaderDir      = flag.String("shaders", "", "directory with lit.vert and lit.frag; empty uses the built-in shaders")
	flashlight     = flag.Bool("flashlight", true, "attach a spot light to the camera")
)

var cubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

var lightPos = mgl32.Vec3{1.2, 1.0, 2.0}

func init() {
	// glfw must be on main thread
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	cam := camera.NewCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 1, 0}, camera.DefaultYaw, camera.DefaultPitch)
	cam.MovementSpeed = float32(*speed)
	cam.MouseSensitivity = float32(*sensitivity)

	ctl := input.NewController(cam)
	ctl.ConstrainPitch = *constrainPitch

	win, err := window.Open(*width, *height, "OpenGL Test", ctl)
	if err != nil {
		glog.Exitf("Couldn't open window: %v", err)
	}
	defer win.Close()

	gl.Enable(gl.DEPTH_TEST)

	prog, err := loadProgram()
	if err != nil {
		glog.Exitf("Couldn't build shader program: %v", err)
	}
	defer prog.Delete()

	diffuse, err := loadDiffuse()
	if err != nil {
		glog.Exitf("Couldn't load texture: %v", err)
	}

	vertices, indices := mesh.Cube()
	cube := mesh.New(vertices, indices, []mesh.Texture{{ID: diffuse, Kind: mesh.Diffuse}})
	defer cube.Delete()

	prog.Use()
	setStaticLights(prog)

	for win.BeginFrame() {
		gl.ClearColor(0.1, 0.1, 0.1, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		prog.Use()
		prog.SetMat4("projection", cam.GetProjectionMatrix())
		prog.SetMat4("view", cam.GetViewMatrix())
		prog.SetVec3("viewPos", cam.Position)
		prog.SetBool("flashlight", *flashlight)
		prog.SetVec3("spotLight.position", cam.Position)
		prog.SetVec3("spotLight.direction", cam.Front)

		for i, pos := range cubePositions {
			angle := mgl32.DegToRad(20 * float32(i))
			model := mgl32.Translate3D(pos[0], pos[1], pos[2]).
				Mul4(mgl32.HomogRotate3D(angle, mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()))
			prog.SetMat4("model", model)
			cube.Draw(prog)
		}

		win.EndFrame()
	}
}

func loadProgram() (*shader.Program, error) {
	if *shaderDir == "" {
		return shader.Compile(litVert, litFrag)
	}
	return shader.Load(filepath.Join(*shaderDir, "lit.vert"), filepath.Join(*shaderDir, "lit.frag"))
}

func loadDiffuse() (uint32, error) {
	if *texturePath != "" {
		return texture.Load(*texturePath, false)
	}
	const size = 8
	px := &texture.Pixels{Format: texture.RGB, Width: size, Height: size, Data: make([]byte, 0, size*size*3)}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := byte(90)
			if (x+y)%2 == 0 {
				c = 220
			}
			px.Data = append(px.Data, c, c, c)
		}
	}
	return texture.Upload(px, false), nil
}

func setStaticLights(prog *shader.Program) {
	prog.SetFloat("material.shininess", 32)

	prog.SetVec3("dirLight.direction", mgl32.Vec3{-0.2, -1.0, -0.3})
	prog.SetVec3("dirLight.ambient", mgl32.Vec3{0.05, 0.05, 0.05})
	prog.SetVec3("dirLight.diffuse", mgl32.Vec3{0.4, 0.4, 0.4})
	prog.SetVec3("dirLight.specular", mgl32.Vec3{0.5, 0.5, 0.5})

	prog.SetVec3("pointLight.position", lightPos)
	prog.SetVec3("pointLight.ambient", mgl32.Vec3{0.05, 0.05, 0.05})
	prog.SetVec3("pointLight.diffuse", mgl32.Vec3{0.8, 0.8, 0.8})
	prog.SetVec3("pointLight.specular", mgl32.Vec3{1.0, 1.0, 1.0})
	prog.SetFloat("pointLight.constant", 1.0)
	prog.SetFloat("pointLight.linear", 0.09)
	prog.SetFloat("pointLight.quadratic", 0.032)

	prog.SetVec3("spotLight.ambient", mgl32.Vec3{0, 0, 0})
	prog.SetVec3("spotLight.diffuse", mgl32.Vec3{1.0, 1.0, 1.0})
	prog.SetVec3("spotLight.specular", mgl32.Vec3{1.0, 1.0, 1.0})
	prog.SetFloat("spotLight.constant", 1.0)
	prog.SetFloat("spotLight.linear", 0.09)
	prog.SetFloat("spotLight.quadratic", 0.032)
	prog.SetFloat("spotLight.cutOff", float32(math.Cos(12.5*math.Pi/180)))
	prog.SetFloat("spotLight.outerCutOff", float32(math.Cos(15.0*math.Pi/180)))

	glog.V(1).Infof("lights set: point at %v, flashlight=%v, glfw %s", lightPos, *flashlight, glfw.GetVersionString())
}
