package cabac

// RGBToYCbCr converts equal-length R, G, B component slices to Y, Cb, Cr
// using the fixed-coefficient affine transform:
//
//	Y  = 0.299R + 0.587G + 0.114B
//	Cb = 128 - 0.168736R - 0.331264G + 0.5B
//	Cr = 128 + 0.5R - 0.418688G - 0.081312B
//
// The slices must have equal length.
func RGBToYCbCr(r, g, b []float64) (y, cb, cr []float64) {
	if len(g) != len(r) || len(b) != len(r) {
		panic("cabac: component slices must have equal length")
	}
	n := len(r)
	y = make([]float64, n)
	cb = make([]float64, n)
	cr = make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = 0.299*r[i] + 0.587*g[i] + 0.114*b[i]
		cb[i] = 128 - 0.168736*r[i] - 0.331264*g[i] + 0.5*b[i]
		cr[i] = 128 + 0.5*r[i] - 0.418688*g[i] - 0.081312*b[i]
	}
	return y, cb, cr
}

// YCbCrToRGB applies the inverse transform. The compressor itself never
// calls it; it exists to validate the forward transform round-trip.
func YCbCrToRGB(y, cb, cr []float64) (r, g, b []float64) {
	if len(cb) != len(y) || len(cr) != len(y) {
		panic("cabac: component slices must have equal length")
	}
	n := len(y)
	r = make([]float64, n)
	g = make([]float64, n)
	b = make([]float64, n)
	for i := 0; i < n; i++ {
		r[i] = y[i] + 1.402*(cr[i]-128)
		g[i] = y[i] - 0.344136*(cb[i]-128) - 0.714136*(cr[i]-128)
		b[i] = y[i] + 1.772*(cb[i]-128)
	}
	return r, g, b
}
