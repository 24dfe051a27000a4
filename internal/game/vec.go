package game

import "math"

// Vec2 is a 2D vector in world-pixel space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns a unit-length copy, or the zero vector unchanged.
func (v Vec2) Normalize() Vec2 {
	m := v.Len()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{v.X / m, v.Y / m}
}

// Rotate rotates the vector by rad radians (positive = clockwise in
// screen space, since y grows downward).
func (v Vec2) Rotate(rad float64) Vec2 {
	c := math.Cos(rad)
	s := math.Sin(rad)
	return Vec2{c*v.X - s*v.Y, s*v.X + c*v.Y}
}

// Clamp limits each component into [lo, hi] component-wise.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{clampF(v.X, lo.X, hi.X), clampF(v.Y, lo.Y, hi.Y)}
}

// Color is an 8-bit per channel RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// Hex builds an opaque colour from a 0xRRGGBB literal.
func Hex(rgb uint32) Color {
	return Color{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 255,
	}
}

func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Scaled multiplies RGB by k in [0,1], leaving alpha untouched.
func (c Color) Scaled(k float64) Color {
	k = clampF(k, 0, 1)
	c.R = uint8(float64(c.R) * k)
	c.G = uint8(float64(c.G) * k)
	c.B = uint8(float64(c.B) * k)
	return c
}
