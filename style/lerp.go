package style

import (
	"math"

	"github.com/AnatoleLucet/sigui/layout"
)

func lerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(math.Round(lerpFloat(float64(a), float64(b), t)))
}

func lerpRGBA(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: lerpByte(a.R, b.R, t),
		G: lerpByte(a.G, b.G, t),
		B: lerpByte(a.B, b.B, t),
		A: lerpByte(a.A, b.A, t),
	}
}

func lerpEdges(a, b layout.Edges, t float64) layout.Edges {
	return layout.Edges{
		Top:    lerpFloat(a.Top, b.Top, t),
		Right:  lerpFloat(a.Right, b.Right, t),
		Bottom: lerpFloat(a.Bottom, b.Bottom, t),
		Left:   lerpFloat(a.Left, b.Left, t),
	}
}

// dimensions of different units can't be interpolated, they jump halfway
func lerpDimension(a, b layout.Dimension, t float64) layout.Dimension {
	if a.Unit != b.Unit || a.IsAuto() {
		if t < 0.5 {
			return a
		}
		return b
	}

	return layout.Dimension{Value: lerpFloat(a.Value, b.Value, t), Unit: a.Unit}
}
