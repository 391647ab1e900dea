package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/ulz"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

func defaultConfig() *config {
	return &config{search: ulz.WindowSize}
}

func TestPlan(t *testing.T) {
	testCases := []struct {
		name       string
		cfg        config
		input      string
		output     string
		decompress bool
		fail       bool
	}{
		{"compress", config{}, "data.bin", "data.bin.ulz", false, false},
		{"decompress by extension", config{}, "data.bin.ulz", "data.bin", true, false},
		{"forced decompress strips extension", config{decompress: true}, "data.pack", "data", true, false},
		{"forced decompress without extension", config{decompress: true}, "data", "", true, true},
		{"extension in directory only", config{decompress: true}, filepath.Join("a.ulz", "data"), "", true, true},
		{"explicit output", config{output: "out"}, "data.ulz", "out", true, false},
		{"output equals input", config{output: "data"}, "data", "", false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.cfg
			out, decompress, err := plan(&cfg, tc.input)
			if tc.fail {
				require.ErrorIs(t, err, errNoOutputName)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.output, out)
			require.Equal(t, tc.decompress, decompress)
		})
	}
}

func TestProcessRoundTrip(t *testing.T) {
	dir := t.TempDir()
	data := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 200)
	in := writeFile(t, dir, "fox.txt", data)

	var log bytes.Buffer
	cfg := defaultConfig()
	cfg.verbose = 1
	require.NoError(t, processFile(cfg, in, &log))
	require.Contains(t, log.String(), "fox.txt ... ")

	packed, err := os.ReadFile(in + Extension)
	require.NoError(t, err)
	require.Less(t, len(packed), len(data))
	require.Equal(t, len(data), ulz.DecompressedSize(packed))

	require.NoError(t, os.Remove(in))
	require.NoError(t, processFile(defaultConfig(), in+Extension, &log))

	got, err := os.ReadFile(in)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestProcessRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	data := bytes.Repeat([]byte("x"), 100)
	in := writeFile(t, dir, "x.bin", data)
	writeFile(t, dir, "x.bin.ulz", []byte("keep"))

	err := processFile(defaultConfig(), in, &bytes.Buffer{})
	require.ErrorIs(t, err, errOutputExists)

	kept, err := os.ReadFile(in + Extension)
	require.NoError(t, err)
	require.Equal(t, []byte("keep"), kept)

	cfg := defaultConfig()
	cfg.force = true
	require.NoError(t, processFile(cfg, in, &bytes.Buffer{}))
	packed, err := os.ReadFile(in + Extension)
	require.NoError(t, err)
	require.Equal(t, len(data), ulz.DecompressedSize(packed))
}

func TestProcessIncompressible(t *testing.T) {
	dir := t.TempDir()
	data := make([]byte, 4096)
	rand.New(rand.NewSource(1)).Read(data)
	in := writeFile(t, dir, "noise.bin", data)

	err := processFile(defaultConfig(), in, &bytes.Buffer{})
	require.ErrorIs(t, err, ulz.ErrIncompressible)
	require.NoFileExists(t, in+Extension)
}

func TestProcessBrokenPacked(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "broken.ulz", []byte{0x20, 0x00})

	err := processFile(defaultConfig(), in, &bytes.Buffer{})
	require.ErrorIs(t, err, ulz.ErrCorrupt)
	require.NoFileExists(t, filepath.Join(dir, "broken"))
}

func TestProcessLimit(t *testing.T) {
	dir := t.TempDir()
	data := bytes.Repeat([]byte("limit"), 100)
	packed, err := ulz.Compress(data, nil)
	require.NoError(t, err)
	in := writeFile(t, dir, "big.ulz", packed)

	cfg := defaultConfig()
	cfg.limit = len(data) - 1
	require.ErrorIs(t, processFile(cfg, in, &bytes.Buffer{}), ulz.ErrTooLarge)
}

func TestProcessMissingInput(t *testing.T) {
	err := processFile(defaultConfig(), filepath.Join(t.TempDir(), "missing"), &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommand(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", bytes.Repeat([]byte("aaaa"), 64))
	b := writeFile(t, dir, "b.txt", bytes.Repeat([]byte("bbbb"), 64))

	t.Run("output with many inputs", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"-o", filepath.Join(dir, "out"), a, b})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		require.ErrorIs(t, cmd.Execute(), errOutputMulti)
	})

	t.Run("compress many", func(t *testing.T) {
		var out bytes.Buffer
		cmd := newRootCmd()
		cmd.SetArgs([]string{"-v", a, b})
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		require.NoError(t, cmd.Execute())
		require.FileExists(t, a+Extension)
		require.FileExists(t, b+Extension)
		require.Contains(t, out.String(), "a.txt ... ")
	})

	t.Run("decompress to output", func(t *testing.T) {
		target := filepath.Join(dir, "restored")
		cmd := newRootCmd()
		cmd.SetArgs([]string{"--output", target, a + Extension})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		require.NoError(t, cmd.Execute())

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		require.Equal(t, bytes.Repeat([]byte("aaaa"), 64), got)
	})

	t.Run("no files", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetArgs(nil)
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		require.Error(t, cmd.Execute())
	})

	t.Run("negative search", func(t *testing.T) {
		cmd := newRootCmd()
		cmd.SetArgs([]string{"--search=-1", a})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		require.ErrorIs(t, cmd.Execute(), ulz.ErrInvalidSearchLimit)
	})
}

func TestRatio(t *testing.T) {
	require.Equal(t, "-", ratio(1, 0))
	require.Equal(t, "50.0%", ratio(50, 100))
}
