package cabac

import "strings"

// BitString is an append-only bit sequence, packed MSB-first.
type BitString struct {
	bits []byte
	n    int
}

// Append adds a single bit (0 or 1).
func (b *BitString) Append(bit int) {
	if b.n%8 == 0 {
		b.bits = append(b.bits, 0)
	}
	if bit != 0 {
		b.bits[b.n/8] |= 0x80 >> (b.n % 8)
	}
	b.n++
}

// Bit returns bit i in emission order.
func (b *BitString) Bit(i int) int {
	return int(b.bits[i/8]>>(7-i%8)) & 1
}

// Len returns the number of bits.
func (b *BitString) Len() int { return b.n }

// Bytes returns the packed bits; the final partial byte is zero-padded.
func (b *BitString) Bytes() []byte { return b.bits }

// String renders the sequence as "0"s and "1"s.
func (b *BitString) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + byte(b.Bit(i)))
	}
	return sb.String()
}
