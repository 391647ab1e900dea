/*
Package ulz implements uLZ compression and decompression.

uLZ is a small LZ77 variant for constrained devices: small decoder,
low memory, reasonable ratio. Input and output are whole in-memory buffers;
there is no streaming mode.

Format: a ULEB128 uncompressed size, then alternating literal and reference
tokens. A literal is (length, bytes...); a reference is (length-2, offset-1)
copying from already produced output. Literals and references always alternate,
so two references in a row are separated by an empty literal. Lengths and
offsets use the ulz16u code:

	Code (lowest bit right)  Bits  Values
	XX0                      3     0..3
	XXXX01                   6     4..19
	XXXXXXXX011              11    20..275
	XXXXXXXXXXXXXXXX111      19    276..65810

All ones in the 19-bit class (65811) is followed by a raw little-endian uint32.
Raw bytes (size header, literal data, raw uint32 values) go to the byte
sub-stream, ulz16u codes to the bit sub-stream; see package bitstream.
There is no magic number or checksum.

Use Compress(src, opts) with nil for default (full window, output no larger than input).
Use CompressTo(dst, src, opts) to compress into a caller-owned buffer.
Use DecompressedSize(src) to read the declared size without decoding.
Use Decompress(src, opts) or DecompressTo(dst, src) to decompress.
Use DecompressFromReader(r, opts) to decompress a blob read from a stream.

# Examples

Compress, falling back to raw data when it does not pay:

	enc, err := ulz.Compress(data, nil)
	if errors.Is(err, ulz.ErrIncompressible) {
		enc = data // store uncompressed
	} else if err != nil {
		return err
	}

Decompress into a pre-sized buffer:

	out := make([]byte, ulz.DecompressedSize(enc))
	n, err := ulz.DecompressTo(out, enc)
	if err != nil {
		return err
	}
	out = out[:n]

Decompress untrusted input with a size limit:

	out, err := ulz.Decompress(enc, ulz.LimitedOptions(1<<20))
	if err != nil {
		return err
	}
*/
package ulz
