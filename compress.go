package ulz

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/woozymasta/ulz/bitstream"
)

// match is a back-reference candidate: copy length bytes from offset bytes back.
type match struct {
	offset int
	length int
}

// Compress compresses src into a new buffer. Options nil means DefaultCompressOptions().
// ErrIncompressible is returned when the result would exceed opts.MaxSize
// (by default len(src)); the caller should then store src as is.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if uint64(len(src)) > math.MaxUint32 {
		return nil, ErrInputTooLarge
	}

	size := opts.MaxSize
	if size <= 0 {
		size = len(src)
	}
	// The size header is always present, even for empty input.
	if minSize := uvarintLen(uint32(len(src))); size < minSize { // #nosec G115 -- checked above
		size = minSize
	}

	out := make([]byte, size)
	n, err := CompressTo(out, src, opts)
	if err != nil {
		return nil, err
	}

	return out[:n:n], nil
}

// CompressTo compresses src into dst and returns the compressed size.
// Nothing is written outside dst. Options nil means DefaultCompressOptions();
// MaxSize is ignored, the capacity is len(dst).
func CompressTo(dst, src []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if opts.SearchLimit < 0 {
		return 0, ErrInvalidSearchLimit
	}
	if uint64(len(src)) > math.MaxUint32 {
		return 0, ErrInputTooLarge
	}

	limit := opts.SearchLimit
	if limit > WindowSize {
		limit = WindowSize
	}

	s := bitstream.New(dst)
	e := encoder{s: s, src: src, limit: limit}

	// Uncompressed size goes first, so the decoder can size its output.
	if err := writeUvarint(s, uint32(len(src))); err != nil { // #nosec G115 -- checked above
		return 0, incompressible(err)
	}
	if err := e.run(); err != nil {
		return 0, err
	}

	n, err := s.Finish()
	if err != nil {
		return 0, incompressible(err)
	}

	return n, nil
}

// incompressible maps running out of output space to ErrIncompressible.
func incompressible(err error) error {
	if errors.Is(err, bitstream.ErrExhausted) {
		return ErrIncompressible
	}

	return err
}

// encoder holds the state of one compression run.
type encoder struct {
	s     *bitstream.Stream
	src   []byte
	limit int // search window
}

// run emits alternating literal and reference tokens for the whole input.
func (e *encoder) run() error {
	cur := 0
	litStart := 0

	for cur < len(e.src) {
		m, ok := e.findMatch(cur, cur-litStart)
		if !ok || !e.worthReference(cur-litStart, m) {
			cur++
			continue
		}

		// Literal and reference always alternate; the literal may be empty.
		if err := e.writeLiteral(e.src[litStart:cur]); err != nil {
			return err
		}
		if err := e.writeReference(m); err != nil {
			return err
		}

		cur += m.length
		litStart = cur
	}

	// A trailing empty literal is never read by the decoder: output is full by then.
	if litStart < len(e.src) {
		return e.writeLiteral(e.src[litStart:])
	}

	return nil
}

// findMatch looks for the most profitable reference for data at cur.
// Occurrences of src[cur] are visited from nearest to farthest; a farther
// one wins only if it saves more bits.
func (e *encoder) findMatch(cur, litLen int) (match, bool) {
	low := cur - e.limit
	if low < 0 {
		low = 0
	}
	maxLen := len(e.src) - cur
	if maxLen > MaxMatch {
		maxLen = MaxMatch
	}
	if maxLen < MinMatch {
		return match{}, false
	}

	// A reference after another reference also pays for the empty literal between them.
	penalty := 0
	if litLen == 0 {
		penalty = ulz16uBits(0)
	}

	var best match
	bestGain := 0
	c := e.src[cur]
	for high := cur; low < high; {
		pos := bytes.LastIndexByte(e.src[low:high], c)
		if pos < 0 {
			break
		}
		pos += low
		high = pos

		length := 1
		for length < maxLen && e.src[pos+length] == e.src[cur+length] {
			length++
		}
		if length < MinMatch {
			continue
		}

		m := match{offset: cur - pos, length: length}
		if gain := length*8 - referenceBits(m) - penalty; gain > bestGain {
			best, bestGain = m, gain
			// Nothing farther can be longer, and farther offsets cost more.
			if length == maxLen {
				break
			}
		}
	}

	return best, bestGain > 0
}

// worthReference reports whether splitting the pending literal of litLen
// bytes with reference m beats growing the literal by m.length bytes.
// Very long literals always accept the reference, so a big incompressible
// run does not hide small gains after it.
func (e *encoder) worthReference(litLen int, m match) bool {
	if litLen >= MaxValue/2 {
		return true
	}

	encoded := literalBits(litLen) + referenceBits(m)
	grown := ulz16uBits(uint32(litLen+m.length)) + (litLen+m.length)*8 // #nosec G115 -- below MaxMatch*2
	if litLen > 0 {
		grown -= ulz16uBits(uint32(litLen)) // #nosec G115
	}

	return encoded < grown
}

func (e *encoder) writeLiteral(lit []byte) error {
	if err := writeULZ16U(e.s, uint32(len(lit))); err != nil { // #nosec G115 -- capped by input size
		return incompressible(err)
	}
	if err := e.s.WriteBytes(lit); err != nil {
		return incompressible(err)
	}

	return nil
}

func (e *encoder) writeReference(m match) error {
	if m.length < MinMatch || m.length > MaxMatch || m.offset < 1 || m.offset > WindowSize {
		return fmt.Errorf("%w: length=%d offset=%d", ErrReferenceRange, m.length, m.offset)
	}
	if err := writeULZ16U(e.s, uint32(m.length-MinMatch)); err != nil { // #nosec G115 -- range checked
		return incompressible(err)
	}
	if err := writeULZ16U(e.s, uint32(m.offset-1)); err != nil { // #nosec G115 -- range checked
		return incompressible(err)
	}

	return nil
}

// literalBits returns the encoded size of a literal run of n bytes.
func literalBits(n int) int {
	return ulz16uBits(uint32(n)) + n*8 // #nosec G115 -- capped by input size
}

// referenceBits returns the encoded size of reference m.
func referenceBits(m match) int {
	return ulz16uBits(uint32(m.length-MinMatch)) + ulz16uBits(uint32(m.offset-1)) // #nosec G115
}
