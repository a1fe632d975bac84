package gfx

import "github.com/chewxy/math32"

// ---- tiny mat helpers (column-major, GLSL-style) ----

// Ortho builds an orthographic projection mapping the box
// [l,r]x[b,t]x[n,f] to clip space.
func Ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// QuadCorners returns the 8 interleaved corner coordinates of a w x h
// rectangle centered at (cx, cy) and rotated by rot radians, in the
// perimeter order AddRect expects: top-right, bottom-right,
// bottom-left, top-left (Y grows downward).
func QuadCorners(cx, cy, w, h, rot float32) [8]float32 {
	hw, hh := w*0.5, h*0.5
	local := [8]float32{hw, -hh, hw, hh, -hw, hh, -hw, -hh}
	if rot == 0 {
		for i := 0; i < 8; i += 2 {
			local[i] += cx
			local[i+1] += cy
		}
		return local
	}
	c, s := math32.Cos(rot), math32.Sin(rot)
	var out [8]float32
	for i := 0; i < 8; i += 2 {
		x, y := local[i], local[i+1]
		out[i] = x*c - y*s + cx
		out[i+1] = x*s + y*c + cy
	}
	return out
}
