package text

import "github.com/emberengine/ember/engine/gfx"

// BuildText stages one quad per visible glyph of s into batch, baseline
// origin at (x, y), positive Y downward. It returns a single drawable
// spanning the whole string; draw it through a SpriteRenderer with
// f.Layer and size (1, 1). An s with no visible glyphs yields a
// zero-count drawable and no staging.
func BuildText(batch *gfx.GeometryBatch, f *Font, x, y float32, s string) (gfx.Drawable, error) {
	var positions, uvs []float32

	penX := x
	baseY := y + f.Ascent // move origin to top left
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += f.Ascent - f.Descent + f.LineGap
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok2 := f.Glyphs[' ']; ok2 {
				penX += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 && f.Face != nil {
			penX += float32(f.Face.Kern(prev, r)) / 64.0
		}

		if g.W > 0 && g.H > 0 {
			left := penX + g.BearingX
			top := baseY - g.BearingY
			right := left + float32(g.W)
			bottom := top + float32(g.H)

			// perimeter order: TR, BR, BL, TL (matches the index fan)
			positions = append(positions,
				right, top,
				right, bottom,
				left, bottom,
				left, top,
			)
			uvs = append(uvs,
				g.U1, g.V0,
				g.U1, g.V1,
				g.U0, g.V1,
				g.U0, g.V0,
			)
		}

		penX += g.Advance
		prev = r
	}

	if len(positions) == 0 {
		return gfx.Drawable{Mode: gfx.Triangles}, nil
	}
	return batch.AddRects(positions, uvs)
}

// MeasureText returns the pixel extent of s rendered at the given size.
func MeasureText(f *Font, s string, size float32) (width, height float32) {
	var lineW float32
	var prev rune = -1
	lineH := f.Ascent - f.Descent + f.LineGap
	height = lineH

	scale := size / f.SizePx

	for _, r := range s {
		if r == '\n' {
			if lineW > width {
				width = lineW
			}
			lineW = 0
			height += lineH
			prev = -1
			continue
		}

		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok2 := f.Glyphs[' ']; ok2 {
				lineW += sp.Advance
			}
			prev = r
			continue
		}

		if prev >= 0 && f.Face != nil {
			lineW += float32(f.Face.Kern(prev, r)) / 64.0
		}

		lineW += g.Advance
		prev = r
	}

	if lineW > width {
		width = lineW
	}
	return width * scale, height * scale
}

// Baseline-to-top distance (useful to position text by top-left).
func BaselineToTop(f *Font) float32    { return f.Ascent }
func BaselineToBottom(f *Font) float32 { return -f.Descent }
func LineHeight(f *Font) float32       { return f.Ascent - f.Descent + f.LineGap }
