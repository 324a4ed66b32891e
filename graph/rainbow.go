package graph

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// rainbow returns n fully-saturated colors sweeping the hue wheel from
// violet down to red, so that adjacent series stay distinguishable however
// many are drawn.
func rainbow(n int) []drawing.Color {
	out := make([]drawing.Color, n)

	for i := range out {
		hue := 0.0
		if n > 1 {
			hue = 280.0 * (1 - float64(i)/float64(n-1))
		}
		out[i] = hsv(hue, 0.85, 0.85)
	}

	return out
}

// hsv converts a hue (degrees), saturation, and value triple to an opaque
// RGB color.
func hsv(h, s, v float64) drawing.Color {
	c := v * s
	x := c * (1 - abs(mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return drawing.Color{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
		A: 255,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func mod(v, m float64) float64 {
	for v >= m {
		v -= m
	}
	for v < 0 {
		v += m
	}
	return v
}
