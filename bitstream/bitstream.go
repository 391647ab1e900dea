// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/ulz

/*
Package bitstream implements a buffer holding two independent sub-streams.

Whole bytes (the byte sub-stream) grow forward from the start of the buffer.
Sub-byte fields (the bit sub-stream) are packed least-significant bit first
into bytes stored backward from the end of the buffer. Both sub-streams share
the free space in the middle, so the caller does not need to know in advance
how much of each kind of data will be produced.

Finish removes the gap between the two sub-streams. The compacted result is
read back with FromCompressed (or by the same Stream after Finish) and yields
bytes and bits in the order they were written.
*/
package bitstream

import "errors"

// MaxBits is the largest field accepted by WriteBits and ReadBits.
const MaxBits = 32

// Stream errors. ErrExhausted is permanent for the stream that returned it.
var (
	ErrExhausted = errors.New("bitstream exhausted")
	ErrBitCount  = errors.New("bit count out of range")
)

// Stream is a cursor pair over one byte buffer.
// The byte sub-stream occupies buf[:head], the bit sub-stream buf[tail:].
type Stream struct {
	buf       []byte
	head      int    // start of free (or unread) byte region
	tail      int    // one past the free (or unread) bit region
	acc       uint64 // bit accumulator
	accBits   uint   // valid bits in acc
	exhausted bool
}

// New returns a stream writing into buf.
func New(buf []byte) *Stream {
	s := &Stream{}
	s.Reset(buf)

	return s
}

// FromCompressed returns a stream reading data produced by Finish.
func FromCompressed(buf []byte) *Stream {
	return New(buf)
}

// Reset reinitializes the stream over buf and clears the exhausted state.
func (s *Stream) Reset(buf []byte) {
	s.buf = buf
	s.head = 0
	s.tail = len(buf)
	s.acc = 0
	s.accBits = 0
	s.exhausted = false
}

// Exhausted reports whether an operation ran out of space or data.
func (s *Stream) Exhausted() bool { return s.exhausted }

// Available returns the number of bytes between the two sub-streams.
func (s *Stream) Available() int { return s.tail - s.head }

// ByteLen returns the size of the byte sub-stream written (or read) so far.
func (s *Stream) ByteLen() int { return s.head }

// BitLen returns the number of bits in the bit sub-stream written so far,
// including the partially filled accumulator.
func (s *Stream) BitLen() int { return (len(s.buf)-s.tail)*8 + int(s.accBits) }

// Bytes returns the buffer the stream operates on.
// After Finish this is exactly the compacted data.
func (s *Stream) Bytes() []byte { return s.buf }

// fail marks the stream exhausted for good.
func (s *Stream) fail() error {
	s.exhausted = true

	return ErrExhausted
}

// ReadBytes fills dst from the byte sub-stream.
func (s *Stream) ReadBytes(dst []byte) error {
	if s.exhausted {
		return ErrExhausted
	}
	if len(dst) > s.tail-s.head {
		return s.fail()
	}

	s.head += copy(dst, s.buf[s.head:s.head+len(dst)])

	return nil
}

// ReadByte reads one byte from the byte sub-stream.
func (s *Stream) ReadByte() (byte, error) {
	if s.exhausted {
		return 0, ErrExhausted
	}
	if s.head >= s.tail {
		return 0, s.fail()
	}

	b := s.buf[s.head]
	s.head++

	return b, nil
}

// WriteBytes appends src to the byte sub-stream.
func (s *Stream) WriteBytes(src []byte) error {
	if s.exhausted {
		return ErrExhausted
	}
	if len(src) > s.tail-s.head {
		return s.fail()
	}

	s.head += copy(s.buf[s.head:], src)

	return nil
}

// ReadBits reads n bits from the bit sub-stream, lowest bit first.
func (s *Stream) ReadBits(n uint) (uint32, error) {
	if n > MaxBits {
		return 0, ErrBitCount
	}
	if s.exhausted {
		return 0, ErrExhausted
	}

	for s.accBits < n {
		if s.tail <= s.head {
			return 0, s.fail()
		}
		s.tail--
		s.acc |= uint64(s.buf[s.tail]) << s.accBits
		s.accBits += 8
	}

	v := uint32(s.acc & mask(n)) // #nosec G115 -- at most 32 bits
	s.acc >>= n
	s.accBits -= n

	return v, nil
}

// WriteBits appends the low n bits of v to the bit sub-stream, lowest bit first.
func (s *Stream) WriteBits(n uint, v uint32) error {
	if n > MaxBits {
		return ErrBitCount
	}
	if s.exhausted {
		return ErrExhausted
	}

	s.acc |= (uint64(v) & mask(n)) << s.accBits
	s.accBits += n

	for s.accBits >= 8 {
		if s.tail <= s.head {
			return s.fail()
		}
		s.tail--
		s.buf[s.tail] = byte(s.acc)
		s.acc >>= 8
		s.accBits -= 8
	}

	return nil
}

// Finish flushes the accumulator and moves the bit sub-stream down so it
// directly follows the byte sub-stream. It returns the compacted size.
//
// Writing after Finish is not allowed. The stream is left ready for reading
// the compacted data, as if FromCompressed(buf[:n]) had been called.
func (s *Stream) Finish() (int, error) {
	if s.exhausted {
		return 0, ErrExhausted
	}

	if s.accBits > 0 {
		if s.tail <= s.head {
			return 0, s.fail()
		}
		s.tail--
		s.buf[s.tail] = byte(s.acc)
	}

	n := s.head + copy(s.buf[s.head:], s.buf[s.tail:])
	s.Reset(s.buf[:n])

	return n, nil
}

func mask(n uint) uint64 {
	return 1<<n - 1
}
