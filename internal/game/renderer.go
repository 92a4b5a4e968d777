package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Fog tuning: everything fades into the sky toward the draw horizon.
const (
	fogStart = 70.0
	fogEnd   = 160.0
)

type Renderer struct {
	// Mesh (unit cube) program.
	meshProg uint32
	meshVAO  uint32
	meshVBO  uint32

	uProj     int32
	uView     int32
	uModel    int32
	uColor    int32
	uLightDir int32
	uFogColor int32
	uFogStart int32
	uFogEnd   int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

// cubeVerts is a unit cube centred at the origin: position(3) + normal(3).
var cubeVerts = []float32{
	// +Z face
	-0.5, -0.5, 0.5, 0, 0, 1, 0.5, -0.5, 0.5, 0, 0, 1, 0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0.5, 0.5, 0.5, 0, 0, 1, -0.5, 0.5, 0.5, 0, 0, 1,
	// -Z face
	0.5, -0.5, -0.5, 0, 0, -1, -0.5, -0.5, -0.5, 0, 0, -1, -0.5, 0.5, -0.5, 0, 0, -1,
	0.5, -0.5, -0.5, 0, 0, -1, -0.5, 0.5, -0.5, 0, 0, -1, 0.5, 0.5, -0.5, 0, 0, -1,
	// +X face
	0.5, -0.5, 0.5, 1, 0, 0, 0.5, -0.5, -0.5, 1, 0, 0, 0.5, 0.5, -0.5, 1, 0, 0,
	0.5, -0.5, 0.5, 1, 0, 0, 0.5, 0.5, -0.5, 1, 0, 0, 0.5, 0.5, 0.5, 1, 0, 0,
	// -X face
	-0.5, -0.5, -0.5, -1, 0, 0, -0.5, -0.5, 0.5, -1, 0, 0, -0.5, 0.5, 0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0, -0.5, 0.5, 0.5, -1, 0, 0, -0.5, 0.5, -0.5, -1, 0, 0,
	// +Y face
	-0.5, 0.5, 0.5, 0, 1, 0, 0.5, 0.5, 0.5, 0, 1, 0, 0.5, 0.5, -0.5, 0, 1, 0,
	-0.5, 0.5, 0.5, 0, 1, 0, 0.5, 0.5, -0.5, 0, 1, 0, -0.5, 0.5, -0.5, 0, 1, 0,
	// -Y face
	-0.5, -0.5, -0.5, 0, -1, 0, 0.5, -0.5, -0.5, 0, -1, 0, 0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0.5, -0.5, 0.5, 0, -1, 0, -0.5, -0.5, 0.5, 0, -1, 0,
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	prog, err := linkProgram(meshVertSrc, meshFragSrc)
	if err != nil {
		return nil, fmt.Errorf("mesh program: %w", err)
	}
	r.meshProg = prog
	gl.UseProgram(prog)
	r.uProj = gl.GetUniformLocation(prog, gl.Str("uProj\x00"))
	r.uView = gl.GetUniformLocation(prog, gl.Str("uView\x00"))
	r.uModel = gl.GetUniformLocation(prog, gl.Str("uModel\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.uLightDir = gl.GetUniformLocation(prog, gl.Str("uLightDir\x00"))
	r.uFogColor = gl.GetUniformLocation(prog, gl.Str("uFogColor\x00"))
	r.uFogStart = gl.GetUniformLocation(prog, gl.Str("uFogStart\x00"))
	r.uFogEnd = gl.GetUniformLocation(prog, gl.Str("uFogEnd\x00"))

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVerts)*4, gl.Ptr(cubeVerts), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aNormal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))

	r.meshVAO = vao
	r.meshVBO = vbo
	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.meshVBO)
	gl.DeleteVertexArrays(1, &r.meshVAO)
	gl.DeleteProgram(r.meshProg)
	if r.textProg != 0 {
		gl.DeleteBuffers(1, &r.textVBO)
		gl.DeleteVertexArrays(1, &r.textVAO)
		gl.DeleteProgram(r.textProg)
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the frame and binds the mesh pipeline.
func (r *Renderer) BeginFrame(proj, view mgl32.Mat4, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	sky := Palette.Sky
	gl.ClearColor(float32(sky.R)/255, float32(sky.G)/255, float32(sky.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	gl.UseProgram(r.meshProg)
	gl.UniformMatrix4fv(r.uProj, 1, false, &proj[0])
	gl.UniformMatrix4fv(r.uView, 1, false, &view[0])
	gl.Uniform3f(r.uLightDir, -0.5, -1.0, 0.3)
	gl.Uniform3f(r.uFogColor, float32(sky.R)/255, float32(sky.G)/255, float32(sky.B)/255)
	gl.Uniform1f(r.uFogStart, fogStart)
	gl.Uniform1f(r.uFogEnd, fogEnd)
	gl.BindVertexArray(r.meshVAO)
}

// DrawBox draws a cube with its bottom-centre at pos, rotated yaw radians
// around Y. All scene geometry goes through here.
func (r *Renderer) DrawBox(pos mgl64.Vec3, w, h, d, yaw float64, col RGB) {
	model := mgl32.Translate3D(float32(pos[0]), float32(pos[1]+h/2), float32(pos[2]))
	if yaw != 0 {
		model = model.Mul4(mgl32.HomogRotate3DY(float32(yaw)))
	}
	model = model.Mul4(mgl32.Scale3D(float32(w), float32(h), float32(d)))
	gl.UniformMatrix4fv(r.uModel, 1, false, &model[0])
	gl.Uniform3f(r.uColor, float32(col.R)/255, float32(col.G)/255, float32(col.B)/255)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(cubeVerts)/6))
}
