package ulz

import (
	"fmt"
	"io"

	"github.com/woozymasta/ulz/bitstream"
)

// uvarintLen returns the number of ULEB128 groups needed for v.
func uvarintLen(v uint32) int {
	n := 1
	for v >>= 7; v != 0; v >>= 7 {
		n++
	}

	return n
}

// writeUvarint puts v into the byte sub-stream as ULEB128.
func writeUvarint(s *bitstream.Stream, v uint32) error {
	var groups [maxHeaderLen]byte
	n := 0
	for {
		g := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			g |= 0x80
		}
		groups[n] = g
		n++
		if v == 0 {
			break
		}
	}

	return s.WriteBytes(groups[:n])
}

// readUvarint reads a ULEB128 value of at most 32 bits.
// Truncated fields, more than five groups and bits above 32 are malformed.
func readUvarint(r io.ByteReader) (uint32, error) {
	var v uint32
	for shift := uint(0); ; shift += 7 {
		if shift >= 7*maxHeaderLen {
			return 0, fmt.Errorf("%w: more than %d groups", ErrMalformedHeader, maxHeaderLen)
		}

		b, err := r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("%w: truncated", ErrMalformedHeader)
		}

		if shift == 28 && b&0x7f > 0x0f {
			return 0, fmt.Errorf("%w: value overflows 32 bits", ErrMalformedHeader)
		}
		v |= uint32(b&0x7f) << shift

		if b&0x80 == 0 {
			return v, nil
		}
	}
}
