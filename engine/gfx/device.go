package gfx

// DrawMode selects the primitive topology of an indexed draw.
type DrawMode int

const (
	Triangles DrawMode = iota
	Lines
	Points
)

// PixelFormat describes the channel layout of a source pixel buffer.
type PixelFormat int

const (
	FormatRGB  PixelFormat = 3
	FormatRGBA PixelFormat = 4
)

// TextureID identifies a backend texture-array resource. 0 is never a
// valid id.
type TextureID uint32

// GeometryID identifies a backend vertex-array resource with its
// attached buffers. 0 is never a valid id.
type GeometryID uint32

// Limits are the hardware capabilities the core validates against,
// queried once at context creation.
type Limits struct {
	MaxTextureSize  int
	MaxArrayLayers  int
	MaxTextureUnits int
}

// SubImageUpload describes a rectangular copy into one layer of a
// texture array. RowLength/SkipPixels/SkipRows follow GL unpack
// pixel-store semantics: the backend reads Width x Height pixels
// starting SkipRows rows and SkipPixels pixels into a source buffer
// whose rows are RowLength pixels wide. Rows in Pixels are tightly
// packed with no padding bytes, so backends must unpack with byte
// alignment 1 (odd-width RGB rows are not 4-aligned).
type SubImageUpload struct {
	DstX, DstY    int
	Layer         int
	Width, Height int
	Format        PixelFormat
	Pixels        []byte

	RowLength  int
	SkipPixels int
	SkipRows   int
}

// Device is the graphics backend the core drives. The gl package
// implements it over OpenGL; tests implement it with recorders. All
// calls are synchronous and must happen on the context thread.
type Device interface {
	Limits() Limits

	CreateTextureArray(unit, width, height, depth int) (TextureID, error)
	DeleteTextureArray(id TextureID)
	BindTextureArray(id TextureID, unit int)
	UploadSubImage(id TextureID, unit int, up SubImageUpload)

	CreateGeometry(positions, uvs []float32, indices []uint32) (GeometryID, error)
	BindGeometry(id GeometryID)
	DeleteGeometry(id GeometryID)

	DrawIndexed(mode DrawMode, count, byteOffset int)
}

// UniformSink receives named shader uniform writes.
type UniformSink interface {
	SetInt(name string, v int)
	SetVec2(name string, x, y float32)
	SetMat4(name string, m [16]float32)
}
