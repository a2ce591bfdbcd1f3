package layout

import "math"

type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

// Rect is an axis aligned rectangle. X and Y are the top left corner.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Origin() Point { return Point{r.X, r.Y} }
func (r Rect) Size() Size    { return Size{r.Width, r.Height} }

// Contains reports whether p lies inside r, right and bottom edges excluded.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Affine is a 2D affine transform [a b c d e f] mapping
// (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Affine [6]float64

var Identity = Affine{1, 0, 0, 1, 0, 0}

func Translate(x, y float64) Affine {
	return Affine{1, 0, 0, 1, x, y}
}

func Scale(sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, 0, 0}
}

// Rotate rotates by angle radians, clockwise in a y-down coordinate space.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Mul returns the transform applying o first, then a.
func (a Affine) Mul(o Affine) Affine {
	return Affine{
		a[0]*o[0] + a[2]*o[1],
		a[1]*o[0] + a[3]*o[1],
		a[0]*o[2] + a[2]*o[3],
		a[1]*o[2] + a[3]*o[3],
		a[0]*o[4] + a[2]*o[5] + a[4],
		a[1]*o[4] + a[3]*o[5] + a[5],
	}
}

func (a Affine) Apply(p Point) Point {
	return Point{
		X: a[0]*p.X + a[2]*p.Y + a[4],
		Y: a[1]*p.X + a[3]*p.Y + a[5],
	}
}

func (a Affine) Determinant() float64 {
	return a[0]*a[3] - a[1]*a[2]
}

// Inverse returns the inverse transform, false when a is not invertible
// (a zero scale for instance).
func (a Affine) Inverse() (Affine, bool) {
	det := a.Determinant()
	if det == 0 || math.IsNaN(det) {
		return Affine{}, false
	}

	inv := 1 / det
	return Affine{
		a[3] * inv,
		-a[1] * inv,
		-a[2] * inv,
		a[0] * inv,
		(a[2]*a[5] - a[3]*a[4]) * inv,
		(a[1]*a[4] - a[0]*a[5]) * inv,
	}, true
}

// Translation returns the image of the origin.
func (a Affine) Translation() Point {
	return Point{a[4], a[5]}
}
