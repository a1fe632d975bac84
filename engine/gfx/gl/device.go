package glbackend

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/emberengine/ember/engine/gfx"
)

// Device implements gfx.Device over OpenGL 3.3 core, plus the
// core.Renderer lifecycle driven by the run loop. All methods must run
// on the thread that owns the GL context, which must be current before
// NewDevice is called.
type Device struct {
	limits gfx.Limits
	shader *Shader

	// buffers attached to each vertex array, so DeleteGeometry can
	// free them together
	geomBufs map[gfx.GeometryID][3]uint32
}

func NewDevice() (*Device, error) {
	d := &Device{geomBufs: map[gfx.GeometryID][3]uint32{}}
	if err := d.initGL(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Device) initGL() error {
	var maxSize, maxLayers, maxUnits int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxSize)
	gl.GetIntegerv(gl.MAX_ARRAY_TEXTURE_LAYERS, &maxLayers)
	gl.GetIntegerv(gl.MAX_COMBINED_TEXTURE_IMAGE_UNITS, &maxUnits)
	d.limits = gfx.Limits{
		MaxTextureSize:  int(maxSize),
		MaxArrayLayers:  int(maxLayers),
		MaxTextureUnits: int(maxUnits),
	}
	log.Printf("GL limits: texture size %d, array layers %d, texture units %d", maxSize, maxLayers, maxUnits)

	sh, err := NewSpriteShader()
	if err != nil {
		return err
	}
	d.shader = sh
	sh.Use()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

// Shader returns the sprite shader, the uniform sink the renderer
// writes through.
func (d *Device) Shader() *Shader { return d.shader }

func (d *Device) Shutdown() {
	for id := range d.geomBufs {
		d.DeleteGeometry(id)
	}
	if d.shader != nil {
		d.shader.Delete()
		d.shader = nil
	}
}

func (d *Device) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (d *Device) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// --- gfx.Device ---

func (d *Device) Limits() gfx.Limits { return d.limits }

func (d *Device) CreateTextureArray(unit, width, height, depth int) (gfx.TextureID, error) {
	var id uint32
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, id)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8,
		int32(width), int32(height), int32(depth), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)
	return gfx.TextureID(id), nil
}

func (d *Device) DeleteTextureArray(id gfx.TextureID) {
	tid := uint32(id)
	gl.DeleteTextures(1, &tid)
}

func (d *Device) BindTextureArray(id gfx.TextureID, unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, uint32(id))
}

func (d *Device) UploadSubImage(id gfx.TextureID, unit int, up gfx.SubImageUpload) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, uint32(id))

	// Source rows are tightly packed; the default alignment of 4 would
	// pad odd-width RGB rows and shear everything below the first row.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(up.RowLength))
	gl.PixelStorei(gl.UNPACK_SKIP_PIXELS, int32(up.SkipPixels))
	gl.PixelStorei(gl.UNPACK_SKIP_ROWS, int32(up.SkipRows))

	format := uint32(gl.RGBA)
	if up.Format == gfx.FormatRGB {
		format = gl.RGB
	}
	gl.TexSubImage3D(gl.TEXTURE_2D_ARRAY, 0,
		int32(up.DstX), int32(up.DstY), int32(up.Layer),
		int32(up.Width), int32(up.Height), 1,
		format, gl.UNSIGNED_BYTE, gl.Ptr(up.Pixels))

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.PixelStorei(gl.UNPACK_SKIP_PIXELS, 0)
	gl.PixelStorei(gl.UNPACK_SKIP_ROWS, 0)
}

func (d *Device) CreateGeometry(positions, uvs []float32, indices []uint32) (gfx.GeometryID, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var bufs [3]uint32
	gl.GenBuffers(3, &bufs[0])

	// layout(location = 0) in vec2 aPos;
	gl.BindBuffer(gl.ARRAY_BUFFER, bufs[0])
	gl.BufferData(gl.ARRAY_BUFFER, len(positions)*4, gl.Ptr(positions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, unsafe.Pointer(uintptr(0)))

	// layout(location = 1) in vec2 aUV;
	gl.BindBuffer(gl.ARRAY_BUFFER, bufs[1])
	gl.BufferData(gl.ARRAY_BUFFER, len(uvs)*4, gl.Ptr(uvs), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 2*4, unsafe.Pointer(uintptr(0)))

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, bufs[2])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// The element buffer stays attached to the vertex array; the array
	// buffer binding is global state and can be cleared.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	id := gfx.GeometryID(vao)
	d.geomBufs[id] = bufs
	return id, nil
}

func (d *Device) BindGeometry(id gfx.GeometryID) {
	gl.BindVertexArray(uint32(id))
}

func (d *Device) DeleteGeometry(id gfx.GeometryID) {
	if bufs, ok := d.geomBufs[id]; ok {
		gl.DeleteBuffers(3, &bufs[0])
		delete(d.geomBufs, id)
	}
	vao := uint32(id)
	gl.DeleteVertexArrays(1, &vao)
}

func (d *Device) DrawIndexed(mode gfx.DrawMode, count, byteOffset int) {
	gl.DrawElements(glMode(mode), int32(count), gl.UNSIGNED_INT, unsafe.Pointer(uintptr(byteOffset)))
}

func glMode(m gfx.DrawMode) uint32 {
	switch m {
	case gfx.Lines:
		return gl.LINES
	case gfx.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}
