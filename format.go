package ulz

// ulz16u classes. Each class stores value-low shifted above its marker bits.
// Markers are read lowest bit first: 0, 01, 011, 111.
const (
	classALow    = 0
	classABits   = 3
	classAMarker = 0b0

	classBLow    = 4
	classBBits   = 6
	classBMarker = 0b01

	classCLow    = 20
	classCBits   = 11
	classCMarker = 0b011

	classDLow    = 276
	classDBits   = 19
	classDMarker = 0b111

	markerBits = 3 // bits read before the class is known
)

// uLZ format constants.
const (
	MaxValue   = 65810        // Largest value ulz16u stores inline (class D).
	raw32Value = MaxValue + 1 // Class D sentinel: a raw uint32 follows in the byte sub-stream.

	WindowSize = MaxValue + 1 // Maximum back-reference offset (encoded as offset-1).
	MinMatch   = 2            // Minimum back-reference length (encoded as length-2).
	MaxMatch   = MaxValue + 2 // Maximum back-reference length the compressor emits.

	maxHeaderLen = 5 // ULEB128 groups needed for a uint32 size.
)
