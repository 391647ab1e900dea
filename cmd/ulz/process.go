package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"github.com/woozymasta/ulz"
)

// Extension marks compressed files.
const Extension = ".ulz"

var (
	errNoOutputName = errors.New("cannot derive output name, use --output")
	errOutputExists = errors.New("output file already exists, use --force to overwrite")
)

// plan resolves the direction and output file name for one input.
func plan(cfg *config, name string) (out string, decompress bool, err error) {
	decompress = cfg.decompress || filepath.Ext(name) == Extension

	switch {
	case cfg.output != "":
		out = cfg.output
	case !decompress:
		out = name + Extension
	default:
		ext := filepath.Ext(name)
		if ext == "" {
			return "", true, fmt.Errorf("%s: %w", name, errNoOutputName)
		}
		out = strings.TrimSuffix(name, ext)
	}

	if out == name {
		return "", decompress, fmt.Errorf("%s: %w", name, errNoOutputName)
	}

	return out, decompress, nil
}

// processFile compresses or decompresses one file.
// With verbose set, a ratio line is written to w.
func processFile(cfg *config, name string, w io.Writer) error {
	out, decompress, err := plan(cfg, name)
	if err != nil {
		return err
	}

	if !cfg.force {
		if _, err := os.Stat(out); err == nil {
			return fmt.Errorf("%s: %w", out, errOutputExists)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	data, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	var result []byte
	if decompress {
		result, err = ulz.Decompress(data, ulz.LimitedOptions(cfg.limit))
		if err != nil {
			return fmt.Errorf("packed file '%s' cannot be uncompressed: %w", name, err)
		}
	} else {
		result, err = ulz.Compress(data, &ulz.CompressOptions{SearchLimit: cfg.search})
		if err != nil {
			return fmt.Errorf("file '%s' does not compress: %w", name, err)
		}
	}
	glog.V(1).Infof("%s -> %s: %d -> %d bytes", name, out, len(data), len(result))

	if cfg.verbose > 0 {
		fmt.Fprintf(w, "%s ... %s\n", name, ratio(len(result), len(data)))
	}

	if err := os.WriteFile(out, result, 0o644); err != nil { // #nosec G306 -- regular output file
		return err
	}
	glog.V(2).Infof("wrote %s", out)

	return nil
}

// ratio formats output size as a percentage of input size.
func ratio(out, in int) string {
	if in == 0 {
		return "-"
	}

	return fmt.Sprintf("%.1f%%", 100*float64(out)/float64(in))
}
