package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer is the OpenGL implementation of RenderBackend. One unit-quad
// VBO feeds four small programs: flat fill, circle, border frame and
// textured quad. All coordinates arriving here are already
// top-left-origin screen pixels.
type Renderer struct {
	fillProg   uint32
	circleProg uint32
	borderProg uint32
	texProg    uint32

	vao, vbo uint32

	fillUOrigin, fillUSize, fillURot, fillURes, fillUColor          int32
	circUOrigin, circUSize, circURot, circURes, circUColor          int32
	bordUOrigin, bordUSize, bordURot, bordURes, bordUColor, bordUBw int32
	texUOrigin, texUSize, texURot, texURes, texUTex, texUAlpha      int32

	width, height float64

	textures map[string]uint32
}

func NewRenderer(width, height int) (*Renderer, error) {
	fillProg, err := linkProgram(quadVertSrc, fillFragSrc)
	if err != nil {
		return nil, fmt.Errorf("fill program: %w", err)
	}
	circleProg, err := linkProgram(quadVertSrc, circleFragSrc)
	if err != nil {
		gl.DeleteProgram(fillProg)
		return nil, fmt.Errorf("circle program: %w", err)
	}
	borderProg, err := linkProgram(quadVertSrc, borderFragSrc)
	if err != nil {
		gl.DeleteProgram(fillProg)
		gl.DeleteProgram(circleProg)
		return nil, fmt.Errorf("border program: %w", err)
	}
	texProg, err := linkProgram(quadVertSrc, texFragSrc)
	if err != nil {
		gl.DeleteProgram(fillProg)
		gl.DeleteProgram(circleProg)
		gl.DeleteProgram(borderProg)
		return nil, fmt.Errorf("texture program: %w", err)
	}

	r := &Renderer{
		fillProg:   fillProg,
		circleProg: circleProg,
		borderProg: borderProg,
		texProg:    texProg,
		width:      float64(width),
		height:     float64(height),
		textures:   make(map[string]uint32),
	}

	// Shared unit quad (6 vertices, 2 triangles).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.vao = vao
	r.vbo = vbo

	uni := func(prog uint32, name string) int32 {
		return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
	}
	r.fillUOrigin = uni(fillProg, "uOrigin")
	r.fillUSize = uni(fillProg, "uSize")
	r.fillURot = uni(fillProg, "uRotation")
	r.fillURes = uni(fillProg, "uResolution")
	r.fillUColor = uni(fillProg, "uColor")

	r.circUOrigin = uni(circleProg, "uOrigin")
	r.circUSize = uni(circleProg, "uSize")
	r.circURot = uni(circleProg, "uRotation")
	r.circURes = uni(circleProg, "uResolution")
	r.circUColor = uni(circleProg, "uColor")

	r.bordUOrigin = uni(borderProg, "uOrigin")
	r.bordUSize = uni(borderProg, "uSize")
	r.bordURot = uni(borderProg, "uRotation")
	r.bordURes = uni(borderProg, "uResolution")
	r.bordUColor = uni(borderProg, "uColor")
	r.bordUBw = uni(borderProg, "uBorder")

	r.texUOrigin = uni(texProg, "uOrigin")
	r.texUSize = uni(texProg, "uSize")
	r.texURot = uni(texProg, "uRotation")
	r.texURes = uni(texProg, "uResolution")
	r.texUTex = uni(texProg, "uTex")
	r.texUAlpha = uni(texProg, "uAlpha")
	gl.UseProgram(texProg)
	gl.Uniform1i(r.texUTex, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteProgram(r.fillProg)
	gl.DeleteProgram(r.circleProg)
	gl.DeleteProgram(r.borderProg)
	gl.DeleteProgram(r.texProg)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteBuffers(1, &r.vbo)
	for _, tex := range r.textures {
		gl.DeleteTextures(1, &tex)
	}
}

func glColor(c Color) (float32, float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}

func (r *Renderer) ClearFrame() {
	gl.ClearColor(0.08, 0.09, 0.11, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) DrawColoredQuad(x, y, w, h float64, c Color) {
	gl.UseProgram(r.fillProg)
	gl.BindVertexArray(r.vao)
	gl.Uniform2f(r.fillUOrigin, float32(x), float32(y))
	gl.Uniform2f(r.fillUSize, float32(w), float32(h))
	gl.Uniform1f(r.fillURot, 0)
	gl.Uniform2f(r.fillURes, float32(r.width), float32(r.height))
	cr, cg, cb, ca := glColor(c)
	gl.Uniform4f(r.fillUColor, cr, cg, cb, ca)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (r *Renderer) DrawBorderedQuad(x, y, w, h float64, c Color, border float64) {
	gl.UseProgram(r.borderProg)
	gl.BindVertexArray(r.vao)
	gl.Uniform2f(r.bordUOrigin, float32(x), float32(y))
	gl.Uniform2f(r.bordUSize, float32(w), float32(h))
	gl.Uniform1f(r.bordURot, 0)
	gl.Uniform2f(r.bordURes, float32(r.width), float32(r.height))
	cr, cg, cb, ca := glColor(c)
	gl.Uniform4f(r.bordUColor, cr, cg, cb, ca)
	gl.Uniform1f(r.bordUBw, float32(border))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (r *Renderer) DrawFilledCircle(x, y, radius float64, c Color) {
	gl.UseProgram(r.circleProg)
	gl.BindVertexArray(r.vao)
	gl.Uniform2f(r.circUOrigin, float32(x-radius), float32(y-radius))
	gl.Uniform2f(r.circUSize, float32(2*radius), float32(2*radius))
	gl.Uniform1f(r.circURot, 0)
	gl.Uniform2f(r.circURes, float32(r.width), float32(r.height))
	cr, cg, cb, ca := glColor(c)
	gl.Uniform4f(r.circUColor, cr, cg, cb, ca)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (r *Renderer) DrawTexturedQuad(x, y, rot, w, h, alpha float64, tex uint32) {
	gl.UseProgram(r.texProg)
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform2f(r.texUOrigin, float32(x), float32(y))
	gl.Uniform2f(r.texUSize, float32(w), float32(h))
	gl.Uniform1f(r.texURot, float32(rot))
	gl.Uniform2f(r.texURes, float32(r.width), float32(r.height))
	gl.Uniform1f(r.texUAlpha, float32(clampF(alpha, 0, 1)))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
