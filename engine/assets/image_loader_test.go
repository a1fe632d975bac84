package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestLoadPNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255}) // top-left: red
	src.SetRGBA(2, 1, color.RGBA{B: 255, A: 255}) // bottom-right: blue
	src.SetRGBA(1, 0, color.RGBA{G: 128, A: 255})

	img, err := LoadPNG(writeTestPNG(t, src))
	require.NoError(t, err)

	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, 4, img.Channels)
	require.Len(t, img.Pixels, 3*2*4)

	// rows stay top-down: pixel (0,0) is the first four bytes
	assert.Equal(t, []byte{255, 0, 0, 255}, img.Pixels[0:4])
	// pixel (2,1) is the last four bytes
	assert.Equal(t, []byte{0, 0, 255, 255}, img.Pixels[len(img.Pixels)-4:])
}

func TestLoadPNGPaletted(t *testing.T) {
	pal := color.Palette{color.RGBA{A: 0}, color.RGBA{R: 10, G: 20, B: 30, A: 255}}
	src := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)
	src.SetColorIndex(1, 1, 1)

	img, err := LoadPNG(writeTestPNG(t, src))
	require.NoError(t, err)

	assert.Equal(t, 4, img.Channels, "non-RGBA sources are converted")
	assert.Equal(t, []byte{10, 20, 30, 255}, img.Pixels[(1*2+1)*4:(1*2+1)*4+4])
}

func TestLoadPNGMissingFile(t *testing.T) {
	_, err := LoadPNG(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}
