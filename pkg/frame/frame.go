// Package frame decodes raw camera and video frames into interleaved RGB.
package frame

import (
	"errors"
	"fmt"

	"github.com/pion/logging"
	internallogging "github.com/pion/raw2rgbpnm/internal/logging"
	"github.com/pion/raw2rgbpnm/pkg/demosaic"
)

var (
	ErrGeometry     = errors.New("frame: invalid image geometry")
	ErrVariableSize = errors.New("frame: format has no fixed frame size")
)

// Brightness is an 8.8 fixed point multiplier applied to Bayer samples.
type Brightness int

// BrightnessIdentity leaves samples unchanged.
const BrightnessIdentity Brightness = 256

// BrightnessFromFloat rounds f to the nearest 8.8 fixed point value.
func BrightnessFromFloat(f float64) Brightness {
	return Brightness(f*256 + 0.5)
}

// Geometry is the size of a frame in pixels and the distance in bytes
// between its rows. For planar and semi-planar formats Stride is the luma row
// stride; chroma strides follow from it. Zero means tightly packed.
type Geometry struct {
	Width, Height int
	Stride        int
}

// WarningKind classifies a Warning.
type WarningKind int

const (
	// WarnSampleRange reports a raw sample above the 10-bit range after
	// shifting. It hints at a wrong format or bit alignment.
	WarnSampleRange WarningKind = iota + 1
	// WarnFallback reports a format that can't be decoded and was treated as
	// UYVY instead.
	WarnFallback
	// WarnBayerPhase reports a Bayer format whose color phase differs from
	// GRBG; colors will be wrong.
	WarnBayerPhase
)

func (k WarningKind) String() string {
	switch k {
	case WarnSampleRange:
		return "sample out of range"
	case WarnFallback:
		return "unsupported format"
	case WarnBayerPhase:
		return "bayer phase not supported"
	}
	return fmt.Sprintf("WarningKind(%d)", int(k))
}

// Warning is a non fatal diagnostic produced while decoding.
type Warning struct {
	Kind   WarningKind
	Format Format
	// X, Y and Value locate the offending sample for WarnSampleRange.
	X, Y  int
	Value int
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnSampleRange:
		return fmt.Sprintf("%s: bayer image pixel value out of range (%d) at (%d,%d)", w.Format, w.Value, w.X, w.Y)
	case WarnFallback:
		return fmt.Sprintf("%s: unsupported format, decoding as UYVY", w.Format)
	case WarnBayerPhase:
		return fmt.Sprintf("%s: bayer phase not supported, expect bad colors", w.Format)
	}
	return w.Kind.String()
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithSwapRB exchanges the red and blue output channels.
func WithSwapRB(swap bool) Option {
	return func(d *Decoder) { d.swapRB = swap }
}

// WithHighBits takes 10-bit Bayer data from the high bits of each 16-bit
// container.
func WithHighBits(high bool) Option {
	return func(d *Decoder) { d.highBits = high }
}

// WithBrightness sets the Bayer brightness multiplier.
func WithBrightness(b Brightness) Option {
	return func(d *Decoder) { d.brightness = b }
}

// WithLogger replaces the decoder's logger.
func WithLogger(l logging.LeveledLogger) Option {
	return func(d *Decoder) { d.log = l }
}

// Decoder turns raw frames into RGB. A Decoder is immutable and may be used
// from several goroutines as long as its Engine selection is not changed
// meanwhile.
type Decoder struct {
	engine     *demosaic.Engine
	swapRB     bool
	highBits   bool
	brightness Brightness
	log        logging.LeveledLogger
}

// NewDecoder returns a decoder that reconstructs Bayer frames with engine. A
// nil engine gets the default algorithms.
func NewDecoder(engine *demosaic.Engine, opts ...Option) *Decoder {
	if engine == nil {
		engine = demosaic.NewEngine()
	}
	d := &Decoder{
		engine:     engine,
		brightness: BrightnessIdentity,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = logger
	}
	return d
}

var logger = internallogging.NewLogger("raw2rgbpnm/frame")
