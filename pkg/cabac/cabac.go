// Package cabac implements a block-based lossy image compressor built from
// four stages: an RGB to YCbCr color transform, fixed-size block tiling,
// scalar quantization, and a context-modeled binary arithmetic coder.
//
// The package is encode-only. The arithmetic coder emits no terminator and
// performs no final flush, so the output is suitable for size accounting and
// inspection but carries no matching decoder.
package cabac

// ColorSpace selects the color representation samples are coded in.
type ColorSpace string

const (
	// ColorSpaceRGB codes the raw R, G, B planes unchanged.
	ColorSpaceRGB ColorSpace = "RGB"
	// ColorSpaceYCbCr applies the luma/chroma transform before coding.
	ColorSpaceYCbCr ColorSpace = "YCbCr"
)

// Options configures a Compressor.
type Options struct {
	// BlockSize is the side of the square coding blocks (default 8).
	BlockSize int
	// QuantizationLevel is the number of value buckets per sample
	// (default 8). The quantizer step is 256/QuantizationLevel.
	QuantizationLevel int
	// ColorSpace is the representation samples are coded in (default YCbCr).
	ColorSpace ColorSpace
	// Adaptive enables post-symbol frequency updates in the context model.
	// Off by default: the stock model never learns, every symbol codes
	// against an empty table and costs exactly one bit. Turning this on
	// changes the emitted bits for the same input.
	Adaptive bool
}

// DefaultOptions returns the default compressor configuration.
func DefaultOptions() *Options {
	return &Options{
		BlockSize:         8,
		QuantizationLevel: 8,
		ColorSpace:        ColorSpaceYCbCr,
	}
}

// Validate checks the options before any processing begins.
func (o *Options) Validate() error {
	if o.BlockSize <= 0 {
		return ErrInvalidBlockSize
	}
	if o.QuantizationLevel <= 0 {
		return ErrInvalidQuantizationLevel
	}
	switch o.ColorSpace {
	case ColorSpaceRGB, ColorSpaceYCbCr:
	default:
		return ErrInvalidColorSpace
	}
	return nil
}
