// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/ulz

package ulz

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrIncompressible     = errors.New("compressed data does not fit into output buffer")
	ErrOutputTooSmall     = errors.New("output buffer is smaller than decompressed size")
	ErrMalformedHeader    = errors.New("malformed size header")
	ErrCorrupt            = errors.New("corrupt compressed stream")
	ErrTooLarge           = errors.New("decompressed size exceeds limit")
	ErrInputTooLarge      = errors.New("input size exceeds format limit")
	ErrReferenceRange     = errors.New("back-reference out of encodable range")
	ErrNilReader          = errors.New("reader is nil")
	ErrInvalidSearchLimit = errors.New("search limit must be non-negative")
)
