package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberengine/ember/engine/gfx"
)

// nullDevice satisfies gfx.Device for batch staging tests; only
// CreateGeometry records anything.
type nullDevice struct {
	positions []float32
	uvs       []float32
	indices   []uint32
}

func (d *nullDevice) Limits() gfx.Limits {
	return gfx.Limits{MaxTextureSize: 4096, MaxArrayLayers: 256, MaxTextureUnits: 16}
}

func (d *nullDevice) CreateTextureArray(unit, w, h, depth int) (gfx.TextureID, error) { return 1, nil }
func (d *nullDevice) DeleteTextureArray(id gfx.TextureID)                             {}
func (d *nullDevice) BindTextureArray(id gfx.TextureID, unit int)                     {}
func (d *nullDevice) UploadSubImage(id gfx.TextureID, unit int, up gfx.SubImageUpload) {
}

func (d *nullDevice) CreateGeometry(positions, uvs []float32, indices []uint32) (gfx.GeometryID, error) {
	d.positions, d.uvs, d.indices = positions, uvs, indices
	return 1, nil
}

func (d *nullDevice) BindGeometry(id gfx.GeometryID)                   {}
func (d *nullDevice) DeleteGeometry(id gfx.GeometryID)                 {}
func (d *nullDevice) DrawIndexed(mode gfx.DrawMode, count, offset int) {}

func testFont() *Font {
	return &Font{
		SizePx:  16,
		Ascent:  12,
		Descent: -4,
		LineGap: 2,
		Glyphs: map[rune]Glyph{
			'A': {
				Rune: 'A', Advance: 9, BearingX: 1, BearingY: 10,
				W: 8, H: 10,
				U0: 0, V0: 0, U1: 0.5, V1: 0.5,
			},
			' ': {Rune: ' ', Advance: 5},
		},
	}
}

func TestBuildTextSingleGlyph(t *testing.T) {
	dev := &nullDevice{}
	batch := gfx.NewBatch(gfx.NewRenderContext(dev))
	f := testFont()

	d, err := BuildText(batch, f, 0, 0, "A")
	require.NoError(t, err)
	assert.Equal(t, 6, d.Count)
	assert.Equal(t, 0, d.ByteOffset)

	require.NoError(t, batch.Build())

	// baseline at y+Ascent=12, glyph top 12-BearingY=2, left 0+BearingX=1
	assert.Equal(t, []float32{
		9, 2, // top-right
		9, 12, // bottom-right
		1, 12, // bottom-left
		1, 2, // top-left
	}, dev.positions)
	assert.Equal(t, []float32{
		0.5, 0,
		0.5, 0.5,
		0, 0.5,
		0, 0,
	}, dev.uvs)
}

func TestBuildTextSpansWholeString(t *testing.T) {
	dev := &nullDevice{}
	batch := gfx.NewBatch(gfx.NewRenderContext(dev))
	f := testFont()

	d, err := BuildText(batch, f, 0, 0, "AA A")
	require.NoError(t, err)
	assert.Equal(t, 18, d.Count, "one drawable covers all three visible glyphs")

	require.NoError(t, batch.Build())
	require.Len(t, dev.positions, 3*8)

	// second glyph starts one advance to the right
	assert.Equal(t, float32(9+1), dev.positions[8+6], "second glyph left edge")
	// third glyph skips a space advance too
	assert.Equal(t, float32(9+9+5+1), dev.positions[16+6], "third glyph left edge")
}

func TestBuildTextNewline(t *testing.T) {
	dev := &nullDevice{}
	batch := gfx.NewBatch(gfx.NewRenderContext(dev))
	f := testFont()

	d, err := BuildText(batch, f, 0, 0, "A\nA")
	require.NoError(t, err)
	assert.Equal(t, 12, d.Count)

	require.NoError(t, batch.Build())
	require.Len(t, dev.positions, 16)

	// second line restarts at x and drops one line height (12+4+2 = 18)
	assert.Equal(t, dev.positions[6], dev.positions[8+6], "left edge resets")
	assert.Equal(t, dev.positions[1]+18, dev.positions[8+1], "top edge drops a line")
}

func TestBuildTextNoVisibleGlyphs(t *testing.T) {
	dev := &nullDevice{}
	batch := gfx.NewBatch(gfx.NewRenderContext(dev))
	f := testFont()

	for _, s := range []string{"", "  ", "\n"} {
		d, err := BuildText(batch, f, 0, 0, s)
		require.NoError(t, err)
		assert.Equal(t, 0, d.Count, "%q stages nothing", s)
	}
	assert.ErrorIs(t, batch.Build(), gfx.ErrInvalidState, "nothing was staged")
}

func TestMeasureText(t *testing.T) {
	f := testFont()

	w, h := MeasureText(f, "A A", 16)
	assert.InDelta(t, 9+5+9, w, 1e-5)
	assert.InDelta(t, 18, h, 1e-5)

	w, h = MeasureText(f, "A A", 8)
	assert.InDelta(t, (9+5+9)/2.0, w, 1e-5, "scales with the requested size")
	assert.InDelta(t, 9, h, 1e-5)

	w, h = MeasureText(f, "A\nAA", 16)
	assert.InDelta(t, 18, w, 1e-5, "widest line wins")
	assert.InDelta(t, 36, h, 1e-5)
}

func TestFontMetricsHelpers(t *testing.T) {
	f := testFont()
	assert.Equal(t, float32(12), BaselineToTop(f))
	assert.Equal(t, float32(4), BaselineToBottom(f))
	assert.Equal(t, float32(18), LineHeight(f))
}
