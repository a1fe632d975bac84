package gfx

import "fmt"

// RenderContext ties the core to one graphics device and owns the
// texture-unit allocator. Every component takes it explicitly; there is
// no process-global state. Like the device itself it must only be used
// from the thread that owns the graphics context.
type RenderContext struct {
	dev    Device
	limits Limits

	nextUnit  int
	freeUnits []int
}

// NewRenderContext snapshots the device's hardware limits and starts
// with every texture unit free.
func NewRenderContext(dev Device) *RenderContext {
	return &RenderContext{dev: dev, limits: dev.Limits()}
}

func (c *RenderContext) Device() Device { return c.dev }
func (c *RenderContext) Limits() Limits { return c.limits }

// FreeTextureUnits reports how many units can still be acquired.
func (c *RenderContext) FreeTextureUnits() int {
	return c.limits.MaxTextureUnits - c.nextUnit + len(c.freeUnits)
}

// acquireUnit reuses the most recently released unit, or grows the high
// water mark. While nothing is released, handed-out units are strictly
// increasing from zero.
func (c *RenderContext) acquireUnit() (int, error) {
	if n := len(c.freeUnits); n > 0 {
		u := c.freeUnits[n-1]
		c.freeUnits = c.freeUnits[:n-1]
		return u, nil
	}
	if c.nextUnit >= c.limits.MaxTextureUnits {
		return 0, fmt.Errorf("%w: all %d in use", ErrResourceExhausted, c.limits.MaxTextureUnits)
	}
	u := c.nextUnit
	c.nextUnit++
	return u, nil
}

func (c *RenderContext) releaseUnit(u int) {
	c.freeUnits = append(c.freeUnits, u)
}
