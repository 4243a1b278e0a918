package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"driftfield/internal/field"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Dots and halos share the sprite VAO.
	dotProg   uint32
	haloProg  uint32
	spriteVAO uint32
	spriteVBO uint32

	dotURes  int32
	dotUFade int32

	haloURes  int32
	haloUFade int32

	// Connection lines.
	lineProg uint32
	lineVAO  uint32
	lineVBO  uint32

	lineURes   int32
	lineUFade  int32
	lineUColor int32

	fbW, fbH int
	fade     float32
}

func NewRenderer() (*Renderer, error) {
	dotProg, err := linkProgram(spriteVertSrc, dotFragSrc)
	if err != nil {
		return nil, fmt.Errorf("dot program: %w", err)
	}
	haloProg, err := linkProgram(spriteVertSrc, haloFragSrc)
	if err != nil {
		gl.DeleteProgram(dotProg)
		return nil, fmt.Errorf("halo program: %w", err)
	}
	lineProg, err := linkProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		gl.DeleteProgram(dotProg)
		gl.DeleteProgram(haloProg)
		return nil, fmt.Errorf("line program: %w", err)
	}

	r := &Renderer{
		dotProg:  dotProg,
		haloProg: haloProg,
		lineProg: lineProg,
		fade:     1,
	}

	// Sprite VAO/VBO: streaming buffer, field.SpriteStride floats per sprite
	// (x, y, radius, r, g, b, a).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(field.SpriteStride * 4)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aRadius (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	// Line VAO/VBO: field.LineStride floats per vertex (x, y, a).
	var lVAO, lVBO uint32
	gl.GenVertexArrays(1, &lVAO)
	gl.GenBuffers(1, &lVBO)
	gl.BindVertexArray(lVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, lVBO)

	lstride := int32(field.LineStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, lstride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, lstride, glOffset(2*4))
	r.lineVAO = lVAO
	r.lineVBO = lVBO

	r.dotURes = gl.GetUniformLocation(dotProg, gl.Str("uResolution\x00"))
	r.dotUFade = gl.GetUniformLocation(dotProg, gl.Str("uFade\x00"))
	r.haloURes = gl.GetUniformLocation(haloProg, gl.Str("uResolution\x00"))
	r.haloUFade = gl.GetUniformLocation(haloProg, gl.Str("uFade\x00"))
	r.lineURes = gl.GetUniformLocation(lineProg, gl.Str("uResolution\x00"))
	r.lineUFade = gl.GetUniformLocation(lineProg, gl.Str("uFade\x00"))
	r.lineUColor = gl.GetUniformLocation(lineProg, gl.Str("uColor\x00"))

	lr, lg, lb := field.LinkColor.Floats()
	gl.UseProgram(lineProg)
	gl.Uniform3f(r.lineUColor, lr, lg, lb)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.spriteVBO, r.lineVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.spriteVAO, r.lineVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.dotProg, r.haloProg, r.lineProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// BeginFrame clears the surface. fade scales everything drawn this frame,
// background included.
func (r *Renderer) BeginFrame(fbW, fbH int, fade float64) {
	r.fbW, r.fbH = fbW, fbH
	r.fade = float32(fade)

	br, bg, bb := field.Background.Floats()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(br*r.fade, bg*r.fade, bb*r.fade, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawHalos renders the soft glow under each particle.
// buf format: see field.RenderData.
func (r *Renderer) DrawHalos(buf []float32) {
	r.drawSprites(buf, r.haloProg, r.haloURes, r.haloUFade)
}

// DrawDots renders the particle bodies.
func (r *Renderer) DrawDots(buf []float32) {
	r.drawSprites(buf, r.dotProg, r.dotURes, r.dotUFade)
}

func (r *Renderer) drawSprites(buf []float32, prog uint32, uRes, uFade int32) {
	count := len(buf) / field.SpriteStride
	if count == 0 {
		return
	}

	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(uRes, float32(r.fbW), float32(r.fbH))
	gl.Uniform1f(uFade, r.fade)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*field.SpriteStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawLines renders connection segments.
// buf format: see field.LineData.
func (r *Renderer) DrawLines(buf []float32) {
	verts := len(buf) / field.LineStride
	verts -= verts % 2
	if verts == 0 {
		return
	}

	gl.UseProgram(r.lineProg)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.Uniform2f(r.lineURes, float32(r.fbW), float32(r.fbH))
	gl.Uniform1f(r.lineUFade, r.fade)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.LineWidth(1)

	gl.BufferData(gl.ARRAY_BUFFER, verts*field.LineStride*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(verts))

	gl.Disable(gl.BLEND)
}

func (r *Renderer) EndFrame() {
	gl.BindVertexArray(0)
}
