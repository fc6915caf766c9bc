package cabac_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramabhadrarao/DeepCABAC-Final/pkg/cabac"
)

func TestRGBToYCbCrKnownValues(t *testing.T) {
	tests := []struct {
		name      string
		r, g, b   float64
		y, cb, cr float64
	}{
		{"Black", 0, 0, 0, 0, 128, 128},
		{"White", 255, 255, 255, 255, 128, 128},
		{"Red", 255, 0, 0, 76.245, 84.972, 255.5},
		{"Green", 0, 255, 0, 149.685, 43.528, 21.235},
		{"Blue", 0, 0, 255, 29.07, 255.5, 107.265},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, cb, cr := cabac.RGBToYCbCr([]float64{tt.r}, []float64{tt.g}, []float64{tt.b})
			assert.InDelta(t, tt.y, y[0], 0.01)
			assert.InDelta(t, tt.cb, cb[0], 0.01)
			assert.InDelta(t, tt.cr, cr[0], 0.01)
		})
	}
}

// TestColorRoundTrip verifies RGB -> YCbCr -> RGB reproduces the original
// within one unit after rounding back to 8 bits.
func TestColorRoundTrip(t *testing.T) {
	var r, g, b []float64
	for ri := 0; ri < 256; ri += 17 {
		for gi := 0; gi < 256; gi += 17 {
			for bi := 0; bi < 256; bi += 17 {
				r = append(r, float64(ri))
				g = append(g, float64(gi))
				b = append(b, float64(bi))
			}
		}
	}

	y, cb, cr := cabac.RGBToYCbCr(r, g, b)
	r2, g2, b2 := cabac.YCbCrToRGB(y, cb, cr)

	require.Len(t, r2, len(r))
	for i := range r {
		assert.LessOrEqual(t, math.Abs(math.Round(r2[i])-r[i]), 1.0, "R at %d", i)
		assert.LessOrEqual(t, math.Abs(math.Round(g2[i])-g[i]), 1.0, "G at %d", i)
		assert.LessOrEqual(t, math.Abs(math.Round(b2[i])-b[i]), 1.0, "B at %d", i)
	}
}

func TestRGBToYCbCrUnequalLengths(t *testing.T) {
	assert.Panics(t, func() {
		cabac.RGBToYCbCr([]float64{1, 2}, []float64{1}, []float64{1, 2})
	})
}
