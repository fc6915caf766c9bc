package cabac

// Encoder arithmetic-codes one flattened block against a shared context
// model. State is a half-open interval [low, high) of accumulated
// probability mass, starting at [0, 1). Create a fresh Encoder per block.
type Encoder struct {
	model *ContextModel
	low   float64
	high  float64
	bits  BitString
}

// NewEncoder creates a block encoder backed by model.
func NewEncoder(model *ContextModel) *Encoder {
	return &Encoder{model: model, low: 0, high: 1}
}

// EncodeBlock codes samples in scan order and returns the emitted bits.
// Each sample's context is derived from the samples already coded in the
// same block. No terminator is emitted and residual interval state is not
// flushed.
func (e *Encoder) EncodeBlock(samples []float64) (*BitString, error) {
	for i, v := range samples {
		ctx := ContextOf(samples, i)
		if err := e.encodeSymbol(v, ctx); err != nil {
			return nil, err
		}
		e.model.Observe(v, ctx)
	}
	return &e.bits, nil
}

func (e *Encoder) encodeSymbol(v float64, ctx Context) error {
	p := e.model.Probability(v, ctx)
	width := e.high - e.low
	e.high = e.low + width*p.High
	e.low = e.low + width*p.Low
	if e.high <= e.low {
		return ErrIntervalUnderflow
	}

	if e.low == 0 && e.high == 1 {
		// Empty model: the full-width interval never stabilizes a top
		// bit, so the loop below would emit nothing. One upper-half bit
		// stands in for the sample.
		e.bits.Append(1)
		return nil
	}

	// Emit the shared top bit while both ends sit in the same half,
	// doubling the interval back to full precision each time.
	for {
		switch {
		case e.high <= 0.5:
			e.bits.Append(0)
			e.low *= 2
			e.high *= 2
		case e.low >= 0.5:
			e.bits.Append(1)
			e.low = e.low*2 - 1
			e.high = e.high*2 - 1
		default:
			return nil
		}
	}
}
