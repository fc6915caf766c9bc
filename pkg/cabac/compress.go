package cabac

import (
	"fmt"
	"sync"
)

// Metadata echoes the shape and configuration an image was compressed with.
type Metadata struct {
	Width             int        `json:"width"`
	Height            int        `json:"height"`
	ColorSpace        ColorSpace `json:"colorSpace"`
	BlockSize         int        `json:"blockSize"`
	QuantizationLevel int        `json:"quantizationLevel"`
}

// Result is the output of one Compress call: one bit sequence per block,
// in block order, plus metadata. It is immutable once returned.
type Result struct {
	Blocks   []*BitString
	Metadata Metadata
}

// CompressedBits returns the total emitted bit count across all blocks.
func (r *Result) CompressedBits() int {
	total := 0
	for _, b := range r.Blocks {
		total += b.Len()
	}
	return total
}

// CompressedBytes returns the payload size with each block's bits packed
// into whole bytes.
func (r *Result) CompressedBytes() int {
	total := 0
	for _, b := range r.Blocks {
		total += (b.Len() + 7) / 8
	}
	return total
}

// Compressor runs the full pipeline: ingest, tile, quantize, optional color
// transform, then per-block arithmetic coding against a single context
// model. The model lives as long as the Compressor, so statistics carry
// across images compressed through the same instance; a mutex serializes
// concurrent Compress calls on it.
type Compressor struct {
	opts  Options
	mu    sync.Mutex
	model *ContextModel
}

// NewCompressor validates opts and creates a compressor with an empty
// context model. A nil opts selects DefaultOptions.
func NewCompressor(opts *Options) (*Compressor, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Compressor{
		opts:  *opts,
		model: NewContextModel(opts.Adaptive),
	}, nil
}

// Options returns the configuration the compressor was built with.
func (c *Compressor) Options() Options { return c.opts }

// Compress runs the pipeline over one image. Any stage failure aborts the
// whole call with no partial result; intermediate buffers are scoped to
// this call and become collectable on every exit path.
func (c *Compressor) Compress(img *Image) (*Result, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	blocks := TileBlocks(img.volume(), img.Width, img.Height, c.opts.BlockSize)
	for i := range blocks {
		QuantizeInPlace(blocks[i].Data, c.opts.QuantizationLevel)
		if c.opts.ColorSpace == ColorSpaceYCbCr {
			transformBlock(blocks[i].Data)
		}
	}

	coded := make([]*BitString, 0, len(blocks))
	for i := range blocks {
		bits, err := NewEncoder(c.model).EncodeBlock(blocks[i].Data)
		if err != nil {
			return nil, fmt.Errorf("cabac: block %d: %w", i, err)
		}
		coded = append(coded, bits)
	}

	return &Result{
		Blocks: coded,
		Metadata: Metadata{
			Width:             img.Width,
			Height:            img.Height,
			ColorSpace:        c.opts.ColorSpace,
			BlockSize:         c.opts.BlockSize,
			QuantizationLevel: c.opts.QuantizationLevel,
		},
	}, nil
}

// transformBlock splits a block's interleaved samples into R, G, B planes,
// applies the color transform, and reinterleaves them as Y, Cb, Cr.
func transformBlock(data []float64) {
	n := len(data) / codedChannels
	r := make([]float64, n)
	g := make([]float64, n)
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		r[i] = data[i*codedChannels]
		g[i] = data[i*codedChannels+1]
		b[i] = data[i*codedChannels+2]
	}
	y, cb, cr := RGBToYCbCr(r, g, b)
	for i := 0; i < n; i++ {
		data[i*codedChannels] = y[i]
		data[i*codedChannels+1] = cb[i]
		data[i*codedChannels+2] = cr[i]
	}
}
