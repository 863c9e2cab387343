package raw

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) logging.LeveledLogger {
	return logging.NewDefaultLeveledLoggerForScope("raw", logging.LogLevelInfo, buf)
}

func TestGuessResolution(t *testing.T) {
	cases := map[string]struct {
		size, bpp     int
		width, height int
	}{
		"QCIF_UYVY": {176 * 144 * 2, 16, 176, 144},
		"VGA_UYVY":  {640 * 480 * 2, 16, 640, 480},
		"VGA_NV12":  {640 * 480 * 3 / 2, 12, 640, 480},
		"5MP_Bayer": {2592 * 1944, 8, 2592, 1944},
	}
	for name, c := range cases {
		c := c
		t.Run(name, func(t *testing.T) {
			s, err := NewSource(make([]byte, c.size), Options{BitsPerPixel: c.bpp})
			require.NoError(t, err)
			w, h := s.Size()
			assert.Equal(t, c.width, w)
			assert.Equal(t, c.height, h)
			assert.Equal(t, 1, s.Frames())
		})
	}
}

func TestGuessFailures(t *testing.T) {
	_, err := NewSource(make([]byte, 1234), Options{BitsPerPixel: 16})
	assert.True(t, errors.Is(err, ErrUnknownResolution))

	_, err = NewSource(make([]byte, 640*480*2), Options{BitsPerPixel: 16, Multiple: true})
	assert.True(t, errors.Is(err, ErrMultiFrameGuess))

	_, err = NewSource(make([]byte, 16), Options{Width: 4, Height: 2})
	assert.True(t, errors.Is(err, ErrBitsPerPixel))
}

func TestShortInput(t *testing.T) {
	_, err := NewSource(make([]byte, 15), Options{Width: 4, Height: 2, BitsPerPixel: 16})
	assert.True(t, errors.Is(err, ErrShortInput))

	_, err = NewSource(make([]byte, 15), Options{Width: 4, Height: 2, BitsPerPixel: 16, Multiple: true})
	assert.True(t, errors.Is(err, ErrShortInput))
}

func TestPaddingStripped(t *testing.T) {
	// 2 lines of 4 bytes, each followed by 2 padding bytes.
	data := []byte{1, 2, 3, 4, 0xee, 0xee, 5, 6, 7, 8, 0xee, 0xee}
	var buf bytes.Buffer
	s, err := NewSource(data, Options{Width: 2, Height: 2, BitsPerPixel: 16, Logger: testLogger(&buf)})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Padding())
	frame, err := s.Frame(0)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, frame)
	assert.Contains(t, buf.String(), "2 padding bytes detected")
	assert.Contains(t, buf.String(), "too large image file")
}

func TestTooLargeNotMultiple(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSource(make([]byte, 9), Options{Width: 2, Height: 2, BitsPerPixel: 16, Logger: testLogger(&buf)})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Padding())
	assert.Contains(t, buf.String(), "too large image file")
	assert.Contains(t, buf.String(), "not multiple of frame size")
}

func TestMultipleFrames(t *testing.T) {
	data := []byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
		9, 9,
	}
	var buf bytes.Buffer
	s, err := NewSource(data, Options{Width: 2, Height: 1, BitsPerPixel: 16, Multiple: true, Logger: testLogger(&buf)})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Frames())
	assert.Equal(t, 0, s.Padding())
	assert.Contains(t, buf.String(), "not multiple of frame size")

	for n := 0; n < s.Frames(); n++ {
		frame, err := s.Frame(n)
		require.NoError(t, err)
		assert.Equal(t, bytes.Repeat([]byte{byte(n + 1)}, 4), frame)
	}
	_, err = s.Frame(3)
	assert.Equal(t, io.EOF, err)
}

func TestFrameIntoShortBuffer(t *testing.T) {
	s, err := NewSource(make([]byte, 8), Options{Width: 2, Height: 2, BitsPerPixel: 16})
	require.NoError(t, err)
	assert.Error(t, s.FrameInto(0, make([]byte, 7)))
	assert.NoError(t, s.FrameInto(0, make([]byte, 8)))
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.raw")
	require.NoError(t, os.WriteFile(path, make([]byte, 176*144), 0o600))

	s, err := Open(path, Options{BitsPerPixel: 8})
	require.NoError(t, err)
	w, h := s.Size()
	assert.Equal(t, []int{176, 144}, []int{w, h})

	_, err = Open(filepath.Join(t.TempDir(), "missing"), Options{BitsPerPixel: 8})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
