package ulz

// CompressOptions configures compression.
type CompressOptions struct {
	// SearchLimit is the maximum backward distance searched for matches.
	// 0 = literals only; values above WindowSize are clamped.
	SearchLimit int
	// MaxSize caps the compressed size used by Compress.
	// 0 = len(src), so output that would not be smaller than the input
	// is reported as ErrIncompressible.
	MaxSize int
}

// DefaultCompressOptions returns options for default compression (full window, output capped at input size).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		SearchLimit: WindowSize,
	}
}

// Options configures Decompress and DecompressFromReader behavior.
type Options struct {
	// MaxSize rejects streams declaring a larger decompressed size (0 = no limit).
	MaxSize int
	// MaxInput limits how many compressed bytes DecompressFromReader reads (0 = no limit).
	MaxInput int64
}

// DefaultOptions returns options with no size limits.
func DefaultOptions() *Options {
	return &Options{}
}

// LimitedOptions returns options rejecting output larger than maxSize bytes.
func LimitedOptions(maxSize int) *Options {
	return &Options{
		MaxSize: maxSize,
	}
}
