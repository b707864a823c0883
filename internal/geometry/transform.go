// Package geometry implements the affine math that maps document-space text
// runs into device pixels. Everything here is pure and bit-reproducible.
package geometry

import "math"

// DefaultAscent is assumed when a font's metrics are unknown.
const DefaultAscent = 0.9

// Matrix is a 2D affine transform [a, b, c, d, e, f] representing
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
type Matrix [6]float64

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Multiply composes v with t (v applied after t) by standard 2D affine
// matrix multiplication.
func Multiply(v, t Matrix) Matrix {
	a1, b1, c1, d1, e1, f1 := v[0], v[1], v[2], v[3], v[4], v[5]
	a2, b2, c2, d2, e2, f2 := t[0], t[1], t[2], t[3], t[4], t[5]
	return Matrix{
		a1*a2 + c1*b2,
		b1*a2 + d1*b2,
		a1*c2 + c1*d2,
		b1*c2 + d1*d2,
		a1*e2 + c1*f2 + e1,
		b1*e2 + d1*f2 + f1,
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// FontSize derives the device-pixel font size of a text run from its local
// transform and the viewport scale.
func FontSize(t Matrix, scale float64) float64 {
	return math.Sqrt(t[0]*t[0]+t[1]*t[1]) * scale
}

// BaselineTop converts a composed transform's baseline position into the
// top edge of the rendered run. Pass ascent <= 0 when the font's ascent is
// unknown.
func BaselineTop(m Matrix, fontSize, ascent float64) float64 {
	if ascent <= 0 {
		ascent = DefaultAscent
	}
	return m[5] - fontSize*ascent
}

// Viewport builds the page viewport transform for a render scale. PDF page
// space has the origin at the bottom-left with y growing upward; device
// space has the origin at the top-left with y growing downward, so the
// vertical axis is flipped around the page height.
func Viewport(scale, pageHeight float64) Matrix {
	return Matrix{scale, 0, 0, -scale, 0, pageHeight * scale}
}
