// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/ulz

// Command ulz compresses and decompresses files with uLZ.
//
// Files ending in .ulz are decompressed, everything else is compressed.
// Each file is read into memory whole, so mind the size of the input.
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	err := newRootCmd().Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
