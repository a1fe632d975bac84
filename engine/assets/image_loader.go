package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// Image is a decoded pixel buffer: tightly packed rows, stored top-down
// (the first row is the top of the image). Channels is bytes per pixel.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pixels   []byte
}

// LoadPNG decodes a PNG into tightly packed RGBA8 (Channels = 4). Rows
// are kept top-down; the vertical flip for GL texture space happens in
// AtlasLayer.AddSubImage, nowhere else.
func LoadPNG(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}

	// Ensure RGBA
	rgbaImg := imageToRGBA(img)
	w, h := rgbaImg.Bounds().Dx(), rgbaImg.Bounds().Dy()

	// Repack in tight rows (stride == 4*w)
	out := make([]byte, w*h*4)
	src := rgbaImg.Pix
	srcStride := rgbaImg.Stride
	for y := 0; y < h; y++ {
		copy(out[y*w*4:(y+1)*w*4], src[y*srcStride:y*srcStride+w*4])
	}

	return &Image{Width: w, Height: h, Channels: 4, Pixels: out}, nil
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Stride == m.Rect.Dx()*4 {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
