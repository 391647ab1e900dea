package ulz

import (
	"encoding/binary"

	"github.com/woozymasta/ulz/bitstream"
)

// ulz16uBits returns the number of bits used to encode v.
func ulz16uBits(v uint32) int {
	switch {
	case v < classBLow:
		return classABits
	case v < classCLow:
		return classBBits
	case v < classDLow:
		return classCBits
	case v <= MaxValue:
		return classDBits
	}

	// sentinel plus full 32-bit value
	return classDBits + 32
}

// writeULZ16U puts v into the bit sub-stream.
// Values above MaxValue are written as the class D sentinel followed by
// a little-endian uint32 in the byte sub-stream.
func writeULZ16U(s *bitstream.Stream, v uint32) error {
	switch {
	case v < classBLow:
		return s.WriteBits(classABits, (v-classALow)<<1|classAMarker)
	case v < classCLow:
		return s.WriteBits(classBBits, (v-classBLow)<<2|classBMarker)
	case v < classDLow:
		return s.WriteBits(classCBits, (v-classCLow)<<3|classCMarker)
	case v <= MaxValue:
		return s.WriteBits(classDBits, (v-classDLow)<<3|classDMarker)
	}

	if err := s.WriteBits(classDBits, (raw32Value-classDLow)<<3|classDMarker); err != nil {
		return err
	}

	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], v)

	return s.WriteBytes(raw[:])
}

// readULZ16U reads one value written by writeULZ16U.
func readULZ16U(s *bitstream.Stream) (uint32, error) {
	v, err := s.ReadBits(markerBits)
	if err != nil {
		return 0, err
	}

	// The marker tells how many bits are left to read after the first three.
	var bits uint
	var shift uint
	var low uint32
	switch {
	case v&1 == 0:
		return v>>1 + classALow, nil
	case v&2 == 0:
		bits, shift, low = classBBits, 2, classBLow
	case v&4 == 0:
		bits, shift, low = classCBits, 3, classCLow
	default:
		bits, shift, low = classDBits, 3, classDLow
	}

	rest, err := s.ReadBits(bits - markerBits)
	if err != nil {
		return 0, err
	}
	v = (v|rest<<markerBits)>>shift + low

	if v == raw32Value {
		var raw [4]byte
		if err := s.ReadBytes(raw[:]); err != nil {
			return 0, err
		}
		v = binary.LittleEndian.Uint32(raw[:])
	}

	return v, nil
}
