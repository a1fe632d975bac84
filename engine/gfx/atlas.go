package gfx

import "fmt"

// TextureAtlas owns one GPU 2D-texture-array resource and the texture
// unit it is served through. Dimensions are fixed at creation; each
// depth slice is written through an AtlasLayer.
type TextureAtlas struct {
	ctx    *RenderContext
	id     TextureID
	width  int
	height int
	depth  int
	unit   int
}

// CreateAtlas validates the requested dimensions against the hardware
// limits, reserves a texture unit, and allocates an RGBA8 texture array
// with nearest filtering and clamp-to-edge wrapping. On failure nothing
// is allocated and no unit is consumed.
func CreateAtlas(ctx *RenderContext, width, height, depth int) (*TextureAtlas, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: atlas dimensions %dx%dx%d", ErrOutOfBounds, width, height, depth)
	}
	lim := ctx.Limits()
	if width > lim.MaxTextureSize || height > lim.MaxTextureSize {
		return nil, fmt.Errorf("%w: atlas %dx%d, max texture size %d", ErrLimitExceeded, width, height, lim.MaxTextureSize)
	}
	if depth > lim.MaxArrayLayers {
		return nil, fmt.Errorf("%w: %d layers, max %d", ErrLimitExceeded, depth, lim.MaxArrayLayers)
	}
	unit, err := ctx.acquireUnit()
	if err != nil {
		return nil, err
	}
	id, err := ctx.dev.CreateTextureArray(unit, width, height, depth)
	if err != nil {
		ctx.releaseUnit(unit)
		return nil, err
	}
	return &TextureAtlas{ctx: ctx, id: id, width: width, height: height, depth: depth, unit: unit}, nil
}

// Bind makes the atlas the active texture array on its unit.
func (a *TextureAtlas) Bind() {
	a.ctx.dev.BindTextureArray(a.id, a.unit)
}

// Destroy releases the GPU texture and returns the texture unit to the
// context allocator. The atlas and its layers must not be used after.
func (a *TextureAtlas) Destroy() {
	if a.id == 0 {
		return
	}
	a.ctx.dev.DeleteTextureArray(a.id)
	a.ctx.releaseUnit(a.unit)
	a.id = 0
}

func (a *TextureAtlas) ID() TextureID    { return a.id }
func (a *TextureAtlas) Width() int       { return a.width }
func (a *TextureAtlas) Height() int      { return a.height }
func (a *TextureAtlas) Depth() int       { return a.depth }
func (a *TextureAtlas) TextureUnit() int { return a.unit }

// Layer addresses one depth slice of the atlas.
func (a *TextureAtlas) Layer(z int) (*AtlasLayer, error) {
	if z < 0 || z >= a.depth {
		return nil, fmt.Errorf("%w: layer %d of %d", ErrOutOfBounds, z, a.depth)
	}
	return &AtlasLayer{atlas: a, z: z}, nil
}

// AtlasLayer is a non-owning view of one depth slice of a TextureAtlas.
// It carries no state beyond its z offset; writes go straight to the
// atlas resource.
type AtlasLayer struct {
	atlas *TextureAtlas
	z     int
}

func (l *AtlasLayer) ZOffset() int         { return l.z }
func (l *AtlasLayer) Atlas() *TextureAtlas { return l.atlas }

// AddSubImage copies a w x h region starting at (srcX, srcY) of a source
// image into this layer at (dstX, dstY).
//
// Coordinate convention: dstY and srcY are measured from the bottom edge
// (GL texture space), while source pixel buffers are stored top-down
// (first row is the top of the image, as assets.LoadPNG produces). The
// one vertical flip this requires is the srcH-srcY-h row skip below; no
// other part of the pipeline flips.
//
// channels must be 3 (RGB) or 4 (RGBA). Every rectangle is validated
// before any GPU write happens.
func (l *AtlasLayer) AddSubImage(dstX, dstY, w, h, srcX, srcY int, pixels []byte, srcW, srcH, channels int) error {
	var format PixelFormat
	switch channels {
	case 3:
		format = FormatRGB
	case 4:
		format = FormatRGBA
	default:
		return fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, channels)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: subimage size %dx%d", ErrOutOfBounds, w, h)
	}
	a := l.atlas
	if dstX < 0 || dstY < 0 || dstX+w > a.width || dstY+h > a.height {
		return fmt.Errorf("%w: destination %dx%d at (%d,%d) in %dx%d layer", ErrOutOfBounds, w, h, dstX, dstY, a.width, a.height)
	}
	if srcX < 0 || srcY < 0 || srcX+w > srcW || srcY+h > srcH {
		return fmt.Errorf("%w: source %dx%d at (%d,%d) in %dx%d image", ErrOutOfBounds, w, h, srcX, srcY, srcW, srcH)
	}
	if len(pixels) < srcW*srcH*channels {
		return fmt.Errorf("%w: %d pixel bytes for a %dx%dx%d image", ErrOutOfBounds, len(pixels), srcW, srcH, channels)
	}

	a.Bind()
	a.ctx.dev.UploadSubImage(a.id, a.unit, SubImageUpload{
		DstX: dstX, DstY: dstY, Layer: l.z,
		Width: w, Height: h,
		Format:     format,
		Pixels:     pixels,
		RowLength:  srcW,
		SkipPixels: srcX,
		SkipRows:   srcH - srcY - h, // top-down buffer, bottom-up srcY
	})
	return nil
}
