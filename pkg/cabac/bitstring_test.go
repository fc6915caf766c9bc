package cabac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramabhadrarao/DeepCABAC-Final/pkg/cabac"
)

func TestBitStringAppend(t *testing.T) {
	var b cabac.BitString
	for _, bit := range []int{1, 0, 1, 1, 0, 0, 0, 1, 1} {
		b.Append(bit)
	}

	assert.Equal(t, 9, b.Len())
	assert.Equal(t, "101100011", b.String())
	assert.Equal(t, []byte{0b10110001, 0b10000000}, b.Bytes())

	assert.Equal(t, 1, b.Bit(0))
	assert.Equal(t, 0, b.Bit(1))
	assert.Equal(t, 1, b.Bit(8))
}

func TestBitStringEmpty(t *testing.T) {
	var b cabac.BitString
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Bytes())
	assert.Equal(t, "", b.String())
}
