// Package raw reads headerless raw image files. It guesses the resolution of
// single frame files, strips per line padding and splits files holding
// several frames.
package raw

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pion/logging"
	internallogging "github.com/pion/raw2rgbpnm/internal/logging"
	pkgio "github.com/pion/raw2rgbpnm/pkg/io"
)

var (
	ErrUnknownResolution = errors.New("raw: can't guess raw image file resolution")
	ErrShortInput        = errors.New("raw: out of input data")
	ErrMultiFrameGuess   = errors.New("raw: can not automatically detect frame size with multiple frames")
	ErrBitsPerPixel      = errors.New("raw: bits per pixel must be positive")
)

var logger = internallogging.NewLogger("raw2rgbpnm/io/raw")

// Resolution is a frame size in pixels.
type Resolution struct {
	Width, Height int
	Name          string
}

// Resolutions are tried in order when the frame size isn't given.
var Resolutions = []Resolution{
	{176, 144, "QCIF"},
	{320, 240, "QVGA"},
	{352, 288, "CIF"},
	{640, 480, "VGA"},
	{720, 576, "PAL D1"},
	{768, 576, "1:1 aspect PAL D1"},
	{1920, 1440, "3VGA"},
	{2560, 1920, "4VGA"},
	{2592, 1944, "5 MP"},
	{2592, 1968, "5 MP + a bit extra"},
}

// Options describe how to interpret a raw file.
type Options struct {
	// Width and Height of a frame. Zero asks for a guess from the file size,
	// which only works for single frame files.
	Width, Height int
	BitsPerPixel  int
	// Multiple treats the input as a sequence of frames.
	Multiple bool
	Logger   logging.LeveledLogger
}

// Source hands out the frames of a raw file.
type Source struct {
	data          []byte
	width, height int
	bpp           int
	frameSize     int
	lineLength    int
	padding       int
	frames        int
}

// Open reads the whole file at path.
func Open(path string, opts Options) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewSource(data, opts)
}

// NewSource interprets data according to opts.
func NewSource(data []byte, opts Options) (*Source, error) {
	log := opts.Logger
	if log == nil {
		log = logger
	}
	if opts.BitsPerPixel <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBitsPerPixel, opts.BitsPerPixel)
	}

	s := &Source{data: data, width: opts.Width, height: opts.Height, bpp: opts.BitsPerPixel}
	bits := len(data) * 8

	if s.width <= 0 || s.height <= 0 {
		if opts.Multiple {
			return nil, ErrMultiFrameGuess
		}
		r, ok := guess(bits, s.bpp)
		if !ok {
			return nil, fmt.Errorf("%w: %d bytes at %d bits per pixel", ErrUnknownResolution, len(data), s.bpp)
		}
		log.Infof("guessed %s resolution %dx%d", r.Name, r.Width, r.Height)
		s.width, s.height = r.Width, r.Height
	}

	frameBits := s.width * s.height * s.bpp
	s.frameSize = (frameBits + 7) / 8
	s.lineLength = s.width * s.bpp / 8

	if !opts.Multiple {
		if bits < frameBits {
			return nil, fmt.Errorf("%w: %d bytes, %dx%d needs %d", ErrShortInput, len(data), s.width, s.height, s.frameSize)
		}
		if bits > frameBits {
			log.Warn("too large image file")
		}
	}
	if !opts.Multiple && len(data)%s.height == 0 {
		s.padding = len(data)/s.height - s.lineLength
		log.Infof("%d padding bytes detected at end of line", s.padding)
	} else if bits%frameBits != 0 {
		log.Warn("input size not multiple of frame size")
	}

	if opts.Multiple {
		s.frames = bits / frameBits
		if s.frames == 0 {
			return nil, fmt.Errorf("%w: %d bytes, %dx%d needs %d", ErrShortInput, len(data), s.width, s.height, s.frameSize)
		}
	} else {
		s.frames = 1
	}
	return s, nil
}

func guess(bits, bpp int) (Resolution, bool) {
	for _, r := range Resolutions {
		if r.Width*r.Height*bpp == bits {
			return r, true
		}
	}
	return Resolution{}, false
}

// Size returns the frame size in pixels.
func (s *Source) Size() (width, height int) {
	return s.width, s.height
}

// Padding is the number of bytes dropped from the end of every line.
func (s *Source) Padding() int {
	return s.padding
}

// Frames is the number of complete frames in the source.
func (s *Source) Frames() int {
	return s.frames
}

// FrameSize is the number of bytes of one frame with padding removed.
func (s *Source) FrameSize() int {
	return s.frameSize
}

// FrameInto copies frame n into dst. It returns io.EOF past the last frame.
func (s *Source) FrameInto(n int, dst []byte) error {
	if n < 0 || n >= s.frames {
		return io.EOF
	}
	if err := pkgio.CheckSize("frame", dst, s.frameSize); err != nil {
		return err
	}

	if s.padding == 0 {
		offset := n * s.width * s.height * s.bpp / 8
		_, err := pkgio.Copy(dst, s.data[offset:offset+s.frameSize])
		return err
	}

	stride := s.lineLength + s.padding
	for y := 0; y < s.height; y++ {
		line := s.data[y*stride : y*stride+s.lineLength]
		if _, err := pkgio.Copy(dst[y*s.lineLength:], line); err != nil {
			return err
		}
	}
	return nil
}

// Frame returns a copy of frame n.
func (s *Source) Frame(n int) ([]byte, error) {
	dst := make([]byte, s.frameSize)
	if err := s.FrameInto(n, dst); err != nil {
		return nil, err
	}
	return dst, nil
}
