package cabac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramabhadrarao/DeepCABAC-Final/pkg/cabac"
)

func TestQuantizeSample(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		level int
		want  float64
	}{
		{"ZeroStaysZero", 0, 8, 0},
		{"BelowFirstStep", 31, 8, 0},
		{"OnStep", 32, 8, 32},
		{"AboveStep", 33, 8, 32},
		{"Max", 255, 8, 224},
		{"Level16", 100, 16, 96},
		{"Level256Identity", 200, 256, 200},
		{"Level1CollapsesAll", 255, 1, 0},
		{"Level1Zero", 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cabac.QuantizeSample(tt.x, tt.level))
		})
	}
}

func TestQuantizeIdempotent(t *testing.T) {
	levels := []int{1, 2, 3, 5, 7, 8, 16, 100, 256}
	for _, level := range levels {
		for x := 0; x < 256; x++ {
			q := cabac.QuantizeSample(float64(x), level)
			qq := cabac.QuantizeSample(q, level)
			assert.Equal(t, q, qq, "level=%d x=%d", level, x)
			assert.GreaterOrEqual(t, q, 0.0)
			assert.Less(t, q, 256.0)
		}
	}
}

func TestQuantizeInPlace(t *testing.T) {
	samples := []float64{0, 31, 32, 100, 255}
	cabac.QuantizeInPlace(samples, 8)
	assert.Equal(t, []float64{0, 0, 32, 96, 224}, samples)
}
