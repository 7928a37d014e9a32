package renderer

import (
	"fmt"
	"math"

	"github.com/bloxown/ogltest/engine/camera"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the size of the lights[] uniform array in the lighting shader.
const MaxLights = 8

// Kind tells EndFrame how to draw a Primitive.
type Kind uint8

const (
	Cube Kind = iota
	// LightCube is drawn like Cube and also registers a point light at its position.
	LightCube
)

type Renderer struct {
	queue     []Primitive
	uiqueue   []Text
	lights    []Light
	shader    rl.Shader
	cubeModel rl.Model
}

type Primitive struct {
	Position mgl32.Vec3
	Size     mgl32.Vec3
	Color    mgl32.Vec4
	Kind     Kind
}

type Text struct {
	X, Y    int32
	Color   mgl32.Vec4
	Content string
}

type Light struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// CameraToRaylib converts the camera into raylib's look-at description:
// target is one unit along Front, fovy is the camera's field of view.
func CameraToRaylib(c *camera.Camera) rl.Camera3D {
	target := c.Position.Add(c.Front)
	return rl.Camera3D{
		Position:   vec3ToRaylib(c.Position),
		Target:     vec3ToRaylib(target),
		Up:         vec3ToRaylib(c.Up),
		Fovy:       c.Fov,
		Projection: rl.CameraPerspective,
	}
}

func vec3ToRaylib(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// NewRenderer compiles the lighting shader from source and builds the cube
// model. The raylib window must already be open.
func NewRenderer(vsCode, fsCode string) *Renderer {
	shader := rl.LoadShaderFromMemory(vsCode, fsCode)

	// Create cube model with proper normals
	cubeMesh := rl.GenMeshCube(1.0, 1.0, 1.0)
	cubeModel := rl.LoadModelFromMesh(cubeMesh)
	cubeModel.Materials.Shader = shader

	return &Renderer{
		queue:     []Primitive{},
		uiqueue:   []Text{},
		lights:    []Light{},
		shader:    shader,
		cubeModel: cubeModel,
	}
}

func (r *Renderer) BeginFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(26, 26, 26, 255))
	r.queue = r.queue[:0]
	r.uiqueue = r.uiqueue[:0]
}

func (r *Renderer) PushCube(pos, size mgl32.Vec3, color mgl32.Vec4) {
	r.queue = append(r.queue, Primitive{Position: pos, Size: size, Color: color, Kind: Cube})
}

func (r *Renderer) PushLightCube(pos, size mgl32.Vec3, color mgl32.Vec4) {
	r.queue = append(r.queue, Primitive{Position: pos, Size: size, Color: color, Kind: LightCube})
}

func (r *Renderer) PushText(x, y int32, color mgl32.Vec4, content string) {
	r.uiqueue = append(r.uiqueue, Text{X: x, Y: y, Color: color, Content: content})
}

// AddLight adds a point light for the next EndFrame. Lights past MaxLights are dropped.
func (r *Renderer) AddLight(pos, color mgl32.Vec3, intensity float32) {
	if len(r.lights) >= MaxLights {
		return
	}
	r.lights = append(r.lights, Light{Position: pos, Color: color, Intensity: intensity})
}

// SetAmbient sets global ambient lighting
func (r *Renderer) SetAmbient(color mgl32.Vec3, intensity float32) {
	r.setVec3("globalLightColor", color)
	r.setFloat("globalLightIntensity", intensity)
}

// SetSun sets directional sun lighting
func (r *Renderer) SetSun(direction, color mgl32.Vec3, intensity float32) {
	r.setVec3("sunDirection", direction)
	r.setVec3("sunColor", color)
	r.setFloat("sunIntensity", intensity)
}

func (r *Renderer) setVec3(name string, v mgl32.Vec3) {
	rl.SetShaderValue(r.shader, rl.GetShaderLocation(r.shader, name), []float32{v.X(), v.Y(), v.Z()}, rl.ShaderUniformVec3)
}

func (r *Renderer) setFloat(name string, f float32) {
	rl.SetShaderValue(r.shader, rl.GetShaderLocation(r.shader, name), []float32{f}, rl.ShaderUniformFloat)
}

func (r *Renderer) PrimCount() int {
	return len(r.queue)
}

func (r *Renderer) LightCount() int {
	return len(r.lights)
}

// helper to convert mgl32.Vec4 color to Raylib Color
func vec4ToColor(c mgl32.Vec4) rl.Color {
	return rl.NewColor(
		uint8(mgl32.Clamp(c[0], 0, 1)*255),
		uint8(mgl32.Clamp(c[1], 0, 1)*255),
		uint8(mgl32.Clamp(c[2], 0, 1)*255),
		uint8(mgl32.Clamp(c[3], 0, 1)*255),
	)
}

// EndFrame draws the queued primitives and text as seen from cam.
func (r *Renderer) EndFrame(cam *camera.Camera) {
	// light cubes register their lights before uniforms are uploaded
	for _, prim := range r.queue {
		if prim.Kind == LightCube {
			r.AddLight(prim.Position, prim.Color.Vec3(), 1.0)
		}
	}

	rl.BeginShaderMode(r.shader)

	r.setVec3("viewPos", cam.Position)
	// int uniforms travel as raw bits in the float32 slice
	count := math.Float32frombits(uint32(len(r.lights)))
	rl.SetShaderValue(r.shader, rl.GetShaderLocation(r.shader, "lightCount"), []float32{count}, rl.ShaderUniformInt)
	for i, light := range r.lights {
		r.setVec3(fmt.Sprintf("lights[%d].position", i), light.Position)
		r.setVec3(fmt.Sprintf("lights[%d].color", i), light.Color)
		r.setFloat(fmt.Sprintf("lights[%d].intensity", i), light.Intensity)
	}
	r.lights = r.lights[:0]

	rl.BeginMode3D(CameraToRaylib(cam))
	for _, prim := range r.queue {
		rl.DrawModelEx(r.cubeModel,
			vec3ToRaylib(prim.Position),
			rl.Vector3{X: 0, Y: 1, Z: 0}, // rotation axis
			0.0,                          // rotation angle
			vec3ToRaylib(prim.Size),      // scale
			vec4ToColor(prim.Color))
	}
	rl.EndMode3D()
	rl.EndShaderMode()

	// Render UI elements (no lighting needed)
	for _, ui := range r.uiqueue {
		rl.DrawText(ui.Content, ui.X, ui.Y, 20, vec4ToColor(ui.Color))
	}

	rl.EndDrawing()

	// clear queues for next frame
	r.queue = r.queue[:0]
	r.uiqueue = r.uiqueue[:0]
}

func (r *Renderer) Destroy() {
	rl.UnloadModel(r.cubeModel)
	rl.UnloadShader(r.shader)
}
