package style

type RGBA struct {
	R, G, B, A uint8
}

var (
	Transparent = RGBA{}
	Black       = RGBA{0, 0, 0, 255}
	White       = RGBA{255, 255, 255, 255}
)

func Rgb(r, g, b uint8) RGBA {
	return RGBA{r, g, b, 255}
}

// Hex builds an opaque color from 0xRRGGBB.
func Hex(v uint32) RGBA {
	return RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}
