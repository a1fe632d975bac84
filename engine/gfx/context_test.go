package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureUnitsStrictlyIncreasing(t *testing.T) {
	dev := newFakeDevice()
	ctx := NewRenderContext(dev)

	for i := 0; i < 5; i++ {
		a, err := CreateAtlas(ctx, 64, 64, 4)
		require.NoError(t, err)
		assert.Equal(t, i, a.TextureUnit())
	}
	assert.Len(t, dev.created, 5)
}

func TestTextureUnitExhaustion(t *testing.T) {
	dev := newFakeDevice()
	dev.limits.MaxTextureUnits = 2
	ctx := NewRenderContext(dev)

	_, err := CreateAtlas(ctx, 64, 64, 1)
	require.NoError(t, err)
	_, err = CreateAtlas(ctx, 64, 64, 1)
	require.NoError(t, err)

	_, err = CreateAtlas(ctx, 64, 64, 1)
	assert.ErrorIs(t, err, ErrResourceExhausted)
	assert.Len(t, dev.created, 2, "exhaustion must not allocate a texture")
}

func TestTextureUnitReleasedOnDestroy(t *testing.T) {
	dev := newFakeDevice()
	dev.limits.MaxTextureUnits = 2
	ctx := NewRenderContext(dev)

	a, err := CreateAtlas(ctx, 64, 64, 1)
	require.NoError(t, err)
	b, err := CreateAtlas(ctx, 64, 64, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.FreeTextureUnits())

	destroyedID := a.ID()
	a.Destroy()
	assert.Equal(t, []TextureID{destroyedID}, dev.deleted)
	assert.Equal(t, 1, ctx.FreeTextureUnits())

	c, err := CreateAtlas(ctx, 64, 64, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, c.TextureUnit(), "released unit is handed out again")
	assert.Equal(t, 1, b.TextureUnit())
}

func TestDestroyIsIdempotent(t *testing.T) {
	dev := newFakeDevice()
	ctx := NewRenderContext(dev)

	a, err := CreateAtlas(ctx, 64, 64, 1)
	require.NoError(t, err)
	a.Destroy()
	a.Destroy()
	assert.Len(t, dev.deleted, 1)
	assert.Equal(t, dev.limits.MaxTextureUnits, ctx.FreeTextureUnits())
}
