package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/emberengine/ember/engine/gfx"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	U0, V0   float32 // UVs in the atlas layer (V follows image rows, top-down)
	U1, V1   float32
}

// Font is a glyph atlas packed into one layer of a texture array.
type Font struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Layer                    *gfx.AtlasLayer
	Face                     font.Face
	closeFace                func()
}

func (f *Font) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

// LoadTTF rasterizes a white-on-transparent glyph set (ASCII 32..255)
// and uploads it into the given atlas layer. The layer's atlas
// dimensions bound the packing; a font too large for them fails with
// ErrLimitExceeded.
func LoadTTF(layer *gfx.AtlasLayer, path string, sizePx float32) (*Font, error) {
	ttfData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	ft, err := opentype.Parse(ttfData)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	var runes []rune
	for r := rune(32); r <= rune(255); r++ {
		runes = append(runes, r)
	}

	// Measure all glyph bounds/advances to shelf-pack them
	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, len(runes))
	for _, rr := range runes {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Round(),
			h:   (br.Max.Y - br.Min.Y).Round(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Round()),
			by:  float32(-br.Min.Y.Round()), // distance from baseline to top
		})
	}

	// Shelf packer (rows) within the fixed atlas extent.
	atlasW := layer.Atlas().Width()
	atlasH := layer.Atlas().Height()
	const padding = 2
	x, y, rowH := padding, padding, 0
	pos := make(map[rune]image.Point, len(measure))
	for _, g := range measure {
		if g.w == 0 || g.h == 0 {
			continue
		}
		if x+g.w+padding > atlasW {
			x = padding
			y += rowH + padding
			rowH = 0
		}
		if y+g.h+padding > atlasH || g.w+2*padding > atlasW {
			_ = face.Close()
			return nil, fmt.Errorf("%w: font %q at %gpx does not fit a %dx%d atlas layer",
				gfx.ErrLimitExceeded, path, sizePx, atlasW, atlasH)
		}
		pos[g.r] = image.Pt(x, y)
		x += g.w + padding
		if g.h > rowH {
			rowH = g.h
		}
	}

	// Rasterize: white glyphs with alpha coverage on transparent background
	dst := image.NewRGBA(image.Rect(0, 0, atlasW, atlasH))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		if g.w == 0 || g.h == 0 {
			glyphs[g.r] = Glyph{
				Rune: g.r, Advance: g.adv,
				BearingX: g.bx, BearingY: g.by,
				W: g.w, H: g.h,
			}
			continue
		}
		p := pos[g.r]

		// Drawer wants the dot at the baseline; shift left by bearingX.
		drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
		drawer.DrawString(string(g.r))

		glyphs[g.r] = Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
			U0: float32(p.X) / float32(atlasW),
			V0: float32(p.Y) / float32(atlasH),
			U1: float32(p.X+g.w) / float32(atlasW),
			V1: float32(p.Y+g.h) / float32(atlasH),
		}
	}

	// One full-layer upload; dstY 0 with full height means no row skip,
	// so texture row v tracks image row y and the UVs above sample
	// unflipped.
	if err := layer.AddSubImage(0, 0, atlasW, atlasH, 0, 0, dst.Pix, atlasW, atlasH, 4); err != nil {
		_ = face.Close()
		return nil, err
	}

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:    glyphs,
		Layer:     layer,
		Face:      face,
		closeFace: func() { _ = face.Close() },
	}, nil
}
