package gfx

import "fmt"

const (
	floatsPerRect = 8 // 4 corners, 2 coordinates each
	vertsPerRect  = 4
	indsPerRect   = 6
	indexBytes    = 4 // sizeof uint32
)

// Drawable is everything needed to issue one indexed draw against a
// built GeometryBatch: primitive mode, element count, and byte offset
// into the index buffer. It is valid only while the batch's GPU buffers
// stay allocated; the handle itself owns nothing.
type Drawable struct {
	Mode       DrawMode
	Count      int
	ByteOffset int
}

type batchState int

const (
	batchEmpty batchState = iota
	batchAccumulating
	batchBuilt
)

// GeometryBatch accumulates rectangle geometry (positions and UVs) on
// the CPU and uploads everything to GPU buffers in one transfer.
// Lifecycle: Empty -> Accumulating (first AddRect) -> Built. Built is
// terminal; adding after Build fails with ErrInvalidState.
type GeometryBatch struct {
	ctx *RenderContext

	positions []float32
	uvs       []float32
	indices   []uint32

	nextVertex uint32
	state      batchState
	geom       GeometryID
}

func NewBatch(ctx *RenderContext) *GeometryBatch {
	return &GeometryBatch{ctx: ctx}
}

// AddRect queues one rectangle: 4 corner positions and 4 UV pairs,
// interleaved x,y, in perimeter order matching the index fan.
func (b *GeometryBatch) AddRect(positions, uvs [8]float32) (Drawable, error) {
	return b.AddRects(positions[:], uvs[:])
}

// AddRects queues k rectangles from 8k interleaved floats and returns a
// single handle spanning all 6k of their indices. Each rectangle gets
// the index pattern {n, n+1, n+3, n+1, n+2, n+3} with n the first of
// its four vertices.
func (b *GeometryBatch) AddRects(positions, uvs []float32) (Drawable, error) {
	if b.state == batchBuilt {
		return Drawable{}, fmt.Errorf("%w: batch already built", ErrInvalidState)
	}
	if len(positions) == 0 || len(positions)%floatsPerRect != 0 {
		return Drawable{}, fmt.Errorf("%w: %d position floats, need a positive multiple of %d", ErrOutOfBounds, len(positions), floatsPerRect)
	}
	if len(uvs) != len(positions) {
		return Drawable{}, fmt.Errorf("%w: %d uv floats for %d position floats", ErrOutOfBounds, len(uvs), len(positions))
	}

	rects := len(positions) / floatsPerRect
	offset := len(b.indices) * indexBytes

	b.positions = append(b.positions, positions...)
	b.uvs = append(b.uvs, uvs...)
	for i := 0; i < rects; i++ {
		n := b.nextVertex
		b.indices = append(b.indices, n, n+1, n+3, n+1, n+2, n+3)
		b.nextVertex += vertsPerRect
	}
	b.state = batchAccumulating

	return Drawable{Mode: Triangles, Count: rects * indsPerRect, ByteOffset: offset}, nil
}

// Build uploads the staged geometry as static buffers (positions at
// attribute slot 0, UVs at slot 1, indices as the element buffer) and
// drops the CPU copies. After Build the batch holds no host-accessible
// geometry and accepts no further rectangles.
func (b *GeometryBatch) Build() error {
	switch b.state {
	case batchBuilt:
		return fmt.Errorf("%w: batch already built", ErrInvalidState)
	case batchEmpty:
		return fmt.Errorf("%w: no staged geometry", ErrInvalidState)
	}
	geom, err := b.ctx.dev.CreateGeometry(b.positions, b.uvs, b.indices)
	if err != nil {
		return err
	}
	b.geom = geom
	b.positions = nil
	b.uvs = nil
	b.indices = nil
	b.state = batchBuilt
	return nil
}

// Bind makes the batch's buffers the active geometry for indexed draws.
func (b *GeometryBatch) Bind() error {
	if b.state != batchBuilt {
		return fmt.Errorf("%w: batch not built", ErrInvalidState)
	}
	b.ctx.dev.BindGeometry(b.geom)
	return nil
}

// Destroy frees the GPU buffers. Drawables produced by this batch
// become invalid.
func (b *GeometryBatch) Destroy() {
	if b.geom != 0 {
		b.ctx.dev.DeleteGeometry(b.geom)
		b.geom = 0
	}
}
