package game

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// InitFont bakes the glyph atlas and sets up the text rendering pipeline.
func (r *Renderer) InitFont() error {
	pix := bakeFontAtlas()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		FontAtlasW, FontAtlasH, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	r.fontTex = tex

	prog, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		return fmt.Errorf("text program: %w", err)
	}
	r.textProg = prog
	gl.UseProgram(prog)
	r.textURes = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(prog, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 1) // texture unit 1

	// Text VAO/VBO: per-vertex pos(2) + uv(2) + color(4) = 8 floats.
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))

	r.textVAO = vao
	r.textVBO = vbo
	gl.BindVertexArray(0)
	return nil
}

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB) {
	idx := fontIndex(ch)
	if idx < 0 {
		return
	}
	column := idx % FontCols
	row := idx / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32(column*FontCellW+FontGlyphW) / float32(FontAtlasW)
	v1 := float32(row*FontCellH+FontGlyphH) / float32(FontAtlasH)

	w := float32(FontGlyphW) * scale
	h := float32(FontGlyphH) * scale

	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// DrawString queues a string at screen pixel position (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	advance := float32(FontCellW) * scale
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// StringWidth returns the pixel width of a string at the given scale.
func StringWidth(text string, scale float32) int {
	return int(float32(len(text)) * float32(FontCellW) * scale)
}

// FlushText uploads and draws all queued text quads, then clears the queue.
func (r *Renderer) FlushText(fbW, fbH int) {
	if len(r.textBuf) == 0 {
		return
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.textProg)
	gl.Uniform2f(r.textURes, float32(fbW), float32(fbH))
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/8))

	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	r.textBuf = r.textBuf[:0]
}

// RenderHUD draws the score/papers/lives readout and state overlays.
func RenderHUD(r *Renderer, s *GameSession, fbW, fbH int) {
	scale := float32(3)
	pad := 14

	r.DrawString(fmt.Sprintf("SCORE %d", s.Score), pad, pad, scale, Palette.HUD)
	r.DrawString(fmt.Sprintf("DIST %dM", int(s.Distance)), pad, pad+30, 2, Palette.HUD)

	papersCol := Palette.HUD
	if s.Papers <= 5 {
		papersCol = Palette.HUDWarn
	}
	papersTxt := fmt.Sprintf("PAPERS %d", s.Papers)
	r.DrawString(papersTxt, fbW-StringWidth(papersTxt, scale)-pad, pad, scale, papersCol)

	livesCol := Palette.HUDGood
	if s.Lives <= 1 {
		livesCol = Palette.HUDWarn
	}
	livesTxt := fmt.Sprintf("LIVES %d", s.Lives)
	r.DrawString(livesTxt, fbW-StringWidth(livesTxt, scale)-pad, pad+34, scale, livesCol)

	switch s.State {
	case StateMenu:
		drawCentered(r, "PAPERBOY", fbW, fbH/2-60, 6, Palette.HUD)
		drawCentered(r, "A/D STEER - Q/E THROW - SPACE JUMP", fbW, fbH/2+10, 2, Palette.HUD)
		drawCentered(r, "PRESS ENTER TO RIDE", fbW, fbH/2+44, 3, Palette.HUDGood)
	case StatePaused:
		drawCentered(r, "PAUSED", fbW, fbH/2-20, 5, Palette.HUD)
	case StateGameOver:
		drawCentered(r, "GAME OVER", fbW, fbH/2-60, 6, Palette.HUDWarn)
		drawCentered(r, fmt.Sprintf("SCORE %d - BEST %d", s.Score, s.BestScore), fbW, fbH/2+10, 3, Palette.HUD)
		drawCentered(r, "PRESS ENTER TO RIDE AGAIN", fbW, fbH/2+48, 2, Palette.HUDGood)
	}

	r.FlushText(fbW, fbH)
}

func drawCentered(r *Renderer, text string, fbW, y int, scale float32, col RGB) {
	r.DrawString(text, (fbW-StringWidth(text, scale))/2, y, scale, col)
}
