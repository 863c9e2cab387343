package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunListings(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-a", "?"}, &out))
	assert.Contains(t, out.String(), "gptm (8/10 bit)")
	assert.Contains(t, out.String(), "horip (8 bit)")

	out.Reset()
	require.NoError(t, run([]string{"-f", "?"}, &out))
	assert.Contains(t, out.String(), "SGRBG10\n")
	assert.Contains(t, out.String(), "UYVY\n")
}

func TestRunSingleFrame(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.raw")
	outPath := filepath.Join(dir, "out.pnm")
	// 176x144 GREY, guessed as QCIF.
	require.NoError(t, os.WriteFile(in, bytes.Repeat([]byte{77}, 176*144), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-f", "GREY", in, outPath}, &out))
	assert.Contains(t, out.String(), "Image size: 176x144")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	header := []byte("P6\n176 144\n255\n")
	require.True(t, bytes.HasPrefix(data, header))
	assert.Equal(t, bytes.Repeat([]byte{77}, 176*144*3), data[len(header):])
}

func TestRunMultipleFrames(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.raw")
	outBase := filepath.Join(dir, "frame")
	require.NoError(t, os.WriteFile(in, bytes.Repeat([]byte{100}, 3*8*4), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-f", "SGRBG8", "-s", "8x4", "-n", "-b", "2", in, outBase}, &out))

	for _, name := range []string{"frame-000.pnm", "frame-001.pnm", "frame-002.pnm"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		header := []byte("P6\n8 4\n255\n")
		require.True(t, bytes.HasPrefix(data, header))
		assert.Equal(t, bytes.Repeat([]byte{200}, 8*4*3), data[len(header):])
	}
	_, err := os.Stat(filepath.Join(dir, "frame-003.pnm"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunScale(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.raw")
	outPath := filepath.Join(dir, "out.ppm")
	require.NoError(t, os.WriteFile(in, bytes.Repeat([]byte{1, 2, 3}, 4*4), 0o600))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-f", "RGB24", "-s", "4x4", "-w", "-scale", "2x2", "-scaler", "nearest", in, outPath}, &out))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, append([]byte("P6\n2 2\n255\n"), bytes.Repeat([]byte{3, 2, 1}, 4)...), data)
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"-f", "NOPE", "a", "b"}, &out))
	assert.Error(t, run([]string{"-a", "nope", "a", "b"}, &out))
	assert.ErrorIs(t, run([]string{"only-one"}, &out), errUsage)
	assert.Error(t, run([]string{"-s", "12", "a", "b"}, &out))
	assert.Error(t, run([]string{"-k", "70000", "a", "b"}, &out))
	assert.Error(t, run([]string{filepath.Join(t.TempDir(), "missing"), "out"}, &out))
}
