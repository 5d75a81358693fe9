package huffman

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Pack stores a bit string eight bits to the byte, first bit in the most
// significant position.  The final byte is padded with zero bits, so the
// caller must remember len(bits) to Unpack it exactly.
func Pack(bits string) ([]byte, error) {
	if i := invalidBitIndex(bits); i >= 0 {
		return nil, fmt.Errorf("invalid bit %q at offset %d of bit string: %w", bits[i], i, ErrInvalidArgument)
	}

	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		w.TryWriteBool(bits[i] == '1')
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to pack bit string: %w", err)
	}
	if w.TryError != nil {
		return nil, fmt.Errorf("failed to pack bit string: %w", w.TryError)
	}
	return buf.Bytes(), nil
}

// Unpack is the inverse of Pack: it returns the first n bits of data as a
// bit string.
func Unpack(data []byte, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("negative bit count %d: %w", n, ErrInvalidArgument)
	}
	if have := 8 * len(data); n > have {
		return "", fmt.Errorf("packed data too short: want %d bits, have %d: %w", n, have, ErrTruncatedInput)
	}

	out := make([]byte, n)
	r := bitio.NewReader(bytes.NewReader(data))
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", fmt.Errorf("failed to unpack bit %d: %w", i, err)
		}
		out[i] = '0'
		if bit {
			out[i] = '1'
		}
	}
	return string(out), nil
}
