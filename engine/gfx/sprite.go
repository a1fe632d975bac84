package gfx

// RenderStats counts the GPU state transitions a SpriteRenderer issued
// since construction. Skipped redundant state shows up as DrawCalls
// outpacing the bind/upload counters.
type RenderStats struct {
	DrawCalls    int
	AtlasBinds   int
	UnitUploads  int
	LayerUploads int
}

// Sprite ties a drawable to the atlas layer holding its texels.
type Sprite struct {
	Geometry Drawable
	Layer    *AtlasLayer
}

// SpriteRenderer issues per-frame sprite draws while skipping the GPU
// state changes that match the previous draw. Binding a texture or
// writing a uniform is a comparatively expensive CPU->GPU transition;
// consecutive draws from the same atlas, unit and layer reuse it for
// free. The cache tracks only the single most recent draw, so
// alternating between two atlases on every call rebinds every time.
type SpriteRenderer struct {
	ctx  *RenderContext
	sink UniformSink

	lastAtlas TextureID // 0: nothing bound yet
	lastUnit  int
	lastLayer int

	stats RenderStats
}

// NewSpriteRenderer computes an orthographic projection for a scene of
// sceneW x sceneH pixels (origin top-left, Y down, near/far -0.1..0.1)
// and uploads it once. The diff cache starts empty, so the first Draw
// sends everything.
func NewSpriteRenderer(ctx *RenderContext, sink UniformSink, sceneW, sceneH int) *SpriteRenderer {
	r := &SpriteRenderer{ctx: ctx, sink: sink, lastUnit: -1, lastLayer: -1}
	r.sink.SetMat4("uProjection", Ortho(0, float32(sceneW), float32(sceneH), 0, -0.1, 0.1))
	return r
}

// Draw renders d textured by layer, with its local coordinates scaled
// by (w, h) and translated to (x, y). Only state that differs from the
// previous call is re-sent: the atlas binding, the texture-unit
// uniform, and the layer-offset uniform. Position and size vary every
// call and are always written.
func (r *SpriteRenderer) Draw(d Drawable, layer *AtlasLayer, x, y, w, h float32) {
	atlas := layer.Atlas()
	if atlas.ID() != r.lastAtlas {
		atlas.Bind()
		r.lastAtlas = atlas.ID()
		r.stats.AtlasBinds++
	}
	if atlas.TextureUnit() != r.lastUnit {
		r.sink.SetInt("uTexture", atlas.TextureUnit())
		r.lastUnit = atlas.TextureUnit()
		r.stats.UnitUploads++
	}
	if layer.ZOffset() != r.lastLayer {
		r.sink.SetInt("uLayer", layer.ZOffset())
		r.lastLayer = layer.ZOffset()
		r.stats.LayerUploads++
	}
	r.sink.SetVec2("uPos", x, y)
	r.sink.SetVec2("uSize", w, h)
	r.ctx.dev.DrawIndexed(d.Mode, d.Count, d.ByteOffset)
	r.stats.DrawCalls++
}

// DrawSprite draws s at (x, y) scaled by (w, h).
func (r *SpriteRenderer) DrawSprite(s *Sprite, x, y, w, h float32) {
	r.Draw(s.Geometry, s.Layer, x, y, w, h)
}

// Invalidate clears the diff cache so the next Draw re-sends all state.
// Needed after touching atlas bindings outside the renderer, e.g. a
// mid-frame AddSubImage upload.
func (r *SpriteRenderer) Invalidate() {
	r.lastAtlas = 0
	r.lastUnit = -1
	r.lastLayer = -1
}

// Stats returns the transition counts accumulated so far.
func (r *SpriteRenderer) Stats() RenderStats { return r.stats }
