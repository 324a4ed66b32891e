package graph

import (
	"math"
	"testing"
)

func TestRainbow(t *testing.T) {
	for _, n := range []int{1, 2, 3, 12} {
		colors := rainbow(n)
		if len(colors) != n {
			t.Fatalf("rainbow(%d) returned %d colors", n, len(colors))
		}

		seen := make(map[[3]uint8]struct{})
		for _, c := range colors {
			if c.A != 255 {
				t.Fatalf("rainbow(%d) produced a transparent color %+v", n, c)
			}
			seen[[3]uint8{c.R, c.G, c.B}] = struct{}{}
		}

		// Distinct series get distinct colors
		if len(seen) != n {
			t.Fatalf("rainbow(%d) produced only %d distinct colors", n, len(seen))
		}
	}
}

func TestDropNaN(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0.1, math.NaN(), 0.3, math.NaN()}

	gotX, gotY := dropNaN(x, y)

	if len(gotX) != 2 || len(gotY) != 2 {
		t.Fatalf("kept %d points, want 2", len(gotX))
	}
	if gotX[0] != 0 || gotY[0] != 0.1 || gotX[1] != 2 || gotY[1] != 0.3 {
		t.Fatalf("kept x=%v y=%v", gotX, gotY)
	}
}
