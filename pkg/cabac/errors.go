package cabac

import "errors"

var (
	// ErrInvalidBlockSize is returned for a non-positive block size.
	ErrInvalidBlockSize = errors.New("cabac: block size must be positive")

	// ErrInvalidQuantizationLevel is returned for a non-positive
	// quantization level.
	ErrInvalidQuantizationLevel = errors.New("cabac: quantization level must be positive")

	// ErrInvalidColorSpace is returned for an unrecognized color space.
	ErrInvalidColorSpace = errors.New("cabac: unsupported color space")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("cabac: invalid image dimensions")

	// ErrBufferShape is returned when the pixel buffer length does not
	// match width*height*channels.
	ErrBufferShape = errors.New("cabac: pixel buffer length does not match dimensions")

	// ErrIntervalUnderflow is returned when the coding interval collapses
	// to zero width. Only reachable with an adaptive context model.
	ErrIntervalUnderflow = errors.New("cabac: arithmetic coding interval underflow")
)
