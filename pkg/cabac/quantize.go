package cabac

import "math"

// QuantizeSample maps x onto the lattice floor(x/step)*step with
// step = 256/level. The result is always in [0, 256) for x in [0, 256),
// and requantizing a quantized sample is a no-op. level must be >= 1;
// Options.Validate rejects anything else before this runs.
func QuantizeSample(x float64, level int) float64 {
	step := 256.0 / float64(level)
	return math.Floor(x/step) * step
}

// QuantizeInPlace quantizes every sample of a flattened block.
func QuantizeInPlace(samples []float64, level int) {
	step := 256.0 / float64(level)
	for i, x := range samples {
		samples[i] = math.Floor(x/step) * step
	}
}
