package ulz

import (
	"fmt"
	"io"
)

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// DecompressFromReader reads a whole compressed blob from r and decompresses it.
// The format has no end marker, so r is read to EOF; opts.MaxInput bounds how
// much is read. It returns the decompressed data and the number of bytes read.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	if opts.MaxInput > 0 {
		r = io.LimitReader(r, opts.MaxInput+1)
	}

	src, err := io.ReadAll(r)
	consumed := int64(len(src))
	if err != nil {
		return nil, consumed, err
	}
	if opts.MaxInput > 0 && consumed > opts.MaxInput {
		return nil, consumed, fmt.Errorf("%w: input exceeds %d bytes", ErrTooLarge, opts.MaxInput)
	}

	out, err := Decompress(src, opts)
	if err != nil {
		return nil, consumed, err
	}

	return out, consumed, nil
}
