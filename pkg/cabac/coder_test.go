package cabac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeBlockDegenerate verifies the stock (non-adaptive) behavior:
// every interval stays the full [0,1), the coder emits exactly one bit per
// sample, and that bit is the upper-half bit.
func TestEncodeBlockDegenerate(t *testing.T) {
	model := NewContextModel(false)
	samples := []float64{0, 32, 64, 96, 128, 160, 192, 224, 0, 32}

	enc := NewEncoder(model)
	bits, err := enc.EncodeBlock(samples)
	require.NoError(t, err)

	require.Equal(t, len(samples), bits.Len())
	for i := 0; i < bits.Len(); i++ {
		assert.Equal(t, 1, bits.Bit(i), "bit %d", i)
	}

	// The interval never narrowed.
	assert.Equal(t, 0.0, enc.low)
	assert.Equal(t, 1.0, enc.high)
	assert.Equal(t, uint64(0), model.Total())
}

func TestEncodeBlockAdaptive(t *testing.T) {
	model := NewContextModel(true)
	samples := []float64{16, 16, 16, 16, 16, 16, 16, 16}

	bits, err := NewEncoder(model).EncodeBlock(samples)
	require.NoError(t, err)

	assert.Equal(t, uint64(len(samples)), model.Total())
	require.Greater(t, bits.Len(), 0)

	// The first sample still codes against an empty table (one raw 1),
	// but from the second on the narrowed lower-half intervals emit 0s.
	assert.Equal(t, 1, bits.Bit(0))
	assert.Equal(t, 0, bits.Bit(1))
}

// TestEncodeBlockAdaptiveSharedState runs two blocks through one model; the
// table is not reset between blocks, so the second block codes against the
// first block's statistics and emits a different sequence.
func TestEncodeBlockAdaptiveSharedState(t *testing.T) {
	model := NewContextModel(true)
	samples := []float64{16, 16, 16, 16}

	first, err := NewEncoder(model).EncodeBlock(samples)
	require.NoError(t, err)
	second, err := NewEncoder(model).EncodeBlock(samples)
	require.NoError(t, err)

	assert.NotEqual(t, first.String(), second.String())
	assert.Equal(t, uint64(2*len(samples)), model.Total())
}

func TestEncodeSymbolUnderflow(t *testing.T) {
	enc := NewEncoder(NewContextModel(true))
	enc.low, enc.high = 0.4, 0.4

	err := enc.encodeSymbol(1, Context{})
	require.ErrorIs(t, err, ErrIntervalUnderflow)
}
