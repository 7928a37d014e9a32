package mesh

import (
	"fmt"
	"unsafe"

	"github.com/bloxown/ogltest/engine/shader"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is the interleaved layout uploaded to the GPU:
// location 0 position, 1 normal, 2 uv.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

type TextureKind uint8

const (
	Diffuse TextureKind = iota
	Specular
)

// Texture is a GL texture bound to a material slot of Kind.
type Texture struct {
	ID   uint32
	Kind TextureKind
}

// UniformName returns the sampler uniform for the n-th (1-based) texture of kind,
// e.g. "material.texture_diffuse1".
func UniformName(kind TextureKind, n int) string {
	switch kind {
	case Specular:
		return fmt.Sprintf("material.texture_specular%d", n)
	default:
		return fmt.Sprintf("material.texture_diffuse%d", n)
	}
}

// Mesh owns a VAO with its vertex and index buffers.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Textures []Texture

	vao, vbo, ebo uint32
}

// New uploads the geometry. Needs a current GL context.
func New(vertices []Vertex, indices []uint32, textures []Texture) *Mesh {
	m := &Mesh{Vertices: vertices, Indices: indices, Textures: textures}
	m.setup()
	return m
}

func (m *Mesh) setup() {
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	stride := int32(unsafe.Sizeof(Vertex{}))
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.Position))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.Normal))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.UV))

	gl.BindVertexArray(0)
}

// Draw binds the mesh textures to consecutive units and draws it with p.
func (m *Mesh) Draw(p *shader.Program) {
	diffuseNr, specularNr := 1, 1
	for i, tex := range m.Textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		var name string
		switch tex.Kind {
		case Specular:
			name = UniformName(Specular, specularNr)
			specularNr++
		default:
			name = UniformName(Diffuse, diffuseNr)
			diffuseNr++
		}
		p.SetInt(name, int32(i))
		gl.BindTexture(gl.TEXTURE_2D, tex.ID)
	}
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(m.Indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete frees the GL buffers.
func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// Cube returns a unit cube centered on the origin, four vertices per face
// so every face has its own normal and uv square.
func Cube() ([]Vertex, []uint32) {
	faces := []struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	corners := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	vertices := make([]Vertex, 0, len(faces)*4)
	indices := make([]uint32, 0, len(faces)*6)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, uv := range corners {
			pos := f.normal.Mul(0.5).
				Add(f.u.Mul(uv[0] - 0.5)).
				Add(f.v.Mul(uv[1] - 0.5))
			vertices = append(vertices, Vertex{Position: pos, Normal: f.normal, UV: uv})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}
