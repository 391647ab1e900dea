package ulz

import (
	"fmt"

	"github.com/woozymasta/ulz/bitstream"
)

// DecompressedSize returns the size declared by the header of src.
// It returns 0 when the header is malformed.
func DecompressedSize(src []byte) int {
	size, err := readUvarint(&sliceByteReader{data: src})
	if err != nil {
		return 0
	}

	return int(size)
}

// Decompress decompresses src into a new buffer sized from the header.
// Options nil means DefaultOptions (no size limit).
func Decompress(src []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	size, err := readUvarint(&sliceByteReader{data: src})
	if err != nil {
		return nil, err
	}
	if opts.MaxSize > 0 && uint64(size) > uint64(opts.MaxSize) {
		return nil, fmt.Errorf("%w: size=%d limit=%d", ErrTooLarge, size, opts.MaxSize)
	}

	out := make([]byte, size)
	n, err := DecompressTo(out, src)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}

// DecompressTo decompresses src into dst and returns the decompressed size.
// Decoding is all or nothing: on error the contents of dst are unspecified.
func DecompressTo(dst, src []byte) (int, error) {
	s := bitstream.FromCompressed(src)

	size, err := readUvarint(s)
	if err != nil {
		return 0, err
	}
	if uint64(size) > uint64(len(dst)) {
		return 0, fmt.Errorf("%w: size=%d buffer=%d", ErrOutputTooSmall, size, len(dst))
	}

	d := decoder{s: s, out: dst[:size]}
	if err := d.run(); err != nil {
		return 0, err
	}

	return len(d.out), nil
}

// decoder holds the state of one decompression run.
type decoder struct {
	s   *bitstream.Stream
	out []byte
	pos int // output cursor
}

// run decodes alternating literal and reference tokens until the output is full.
func (d *decoder) run() error {
	for d.pos < len(d.out) {
		if err := d.literal(); err != nil {
			return err
		}
		// No reference follows the final literal.
		if d.pos >= len(d.out) {
			break
		}
		if err := d.reference(); err != nil {
			return err
		}
	}

	return nil
}

// literal copies one literal run from the byte sub-stream to the output.
func (d *decoder) literal() error {
	n, err := readULZ16U(d.s)
	if err != nil {
		return fmt.Errorf("%w: literal length at %d", ErrCorrupt, d.pos)
	}
	if uint64(n) > uint64(len(d.out)-d.pos) {
		return fmt.Errorf("%w: literal of %d bytes at %d overruns output", ErrCorrupt, n, d.pos)
	}

	end := d.pos + int(n)
	if err := d.s.ReadBytes(d.out[d.pos:end]); err != nil {
		return fmt.Errorf("%w: literal data at %d", ErrCorrupt, d.pos)
	}
	d.pos = end

	return nil
}

// reference copies a back-reference from already produced output.
func (d *decoder) reference() error {
	length, err := readULZ16U(d.s)
	if err != nil {
		return fmt.Errorf("%w: reference length at %d", ErrCorrupt, d.pos)
	}
	if uint64(length)+MinMatch > uint64(len(d.out)-d.pos) {
		return fmt.Errorf("%w: reference of %d bytes at %d overruns output", ErrCorrupt, uint64(length)+MinMatch, d.pos)
	}

	offset, err := readULZ16U(d.s)
	if err != nil {
		return fmt.Errorf("%w: reference offset at %d", ErrCorrupt, d.pos)
	}
	if uint64(offset)+1 > uint64(d.pos) {
		return fmt.Errorf("%w: offset %d at %d points before start of output", ErrCorrupt, uint64(offset)+1, d.pos)
	}

	n := int(length) + MinMatch
	from := d.pos - int(offset) - 1

	// Offset may be smaller than length (run of a repeating pattern):
	// each written byte must be visible to the next read, so copy forward one byte at a time.
	for i := 0; i < n; i++ {
		d.out[d.pos+i] = d.out[from+i]
	}
	d.pos += n

	return nil
}
