// Package demosaic reconstructs RGB images from single-sensor Bayer raw
// planes.
//
// Every kernel assumes the GRBG phase: the sample at row 0, column 0 is green,
// row 0 alternates green and red, row 1 alternates blue and green. The phase
// of other sensors is not detected.
package demosaic

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pion/raw2rgbpnm/internal/logging"
	"github.com/pion/raw2rgbpnm/pkg/io"
)

// DefaultSharpness is a slightly sharper than optimal setting that tends to
// look best.
const DefaultSharpness uint16 = 32768

// OptimalSharpness gives the best PSNR against the original scene.
const OptimalSharpness uint16 = 23170

var (
	ErrUnknownAlgorithm = errors.New("demosaic: no such algorithm")
	ErrNoKernel         = errors.New("demosaic: algorithm has no kernel for this bit depth")
	ErrGeometry         = errors.New("demosaic: bayer image size must be even and at least 4x4")
	ErrBytesPerPixel    = errors.New("demosaic: output pixels must be 3 or 4 bytes")
)

var logger = logging.NewLogger("raw2rgbpnm/demosaic")

// Params describes one demosaic call.
type Params struct {
	Width, Height int
	// Stride is the number of samples between the beginnings of two rows of
	// the raw plane.
	Stride int
	// Dst receives the RGB output.
	Dst []byte
	// DstStride is the number of bytes between two output rows.
	DstStride int
	// BytesPerPixel is 3 or 4. The fourth byte is written as zero.
	BytesPerPixel int
}

func (p Params) validate(srcLen int) error {
	if p.Width < 4 || p.Height < 4 || p.Width%2 != 0 || p.Height%2 != 0 {
		return fmt.Errorf("%w: got %dx%d", ErrGeometry, p.Width, p.Height)
	}
	if p.BytesPerPixel != 3 && p.BytesPerPixel != 4 {
		return fmt.Errorf("%w: got %d", ErrBytesPerPixel, p.BytesPerPixel)
	}
	if p.Stride < p.Width {
		return fmt.Errorf("demosaic: stride %d shorter than width %d", p.Stride, p.Width)
	}
	if p.DstStride < p.Width*p.BytesPerPixel {
		return fmt.Errorf("demosaic: output stride %d shorter than a row of %d pixels", p.DstStride, p.Width)
	}
	if need := (p.Height-1)*p.Stride + p.Width; srcLen < need {
		return &io.InsufficientBufferError{Name: "bayer", Size: srcLen, RequiredSize: need}
	}
	return io.CheckSize("destination", p.Dst, (p.Height-1)*p.DstStride+p.Width*p.BytesPerPixel)
}

// Info describes an algorithm for enumeration.
type Info struct {
	Name       string
	Supports8  bool
	Supports10 bool
}

type algorithm struct {
	name    string
	bayer8  kernel[uint8]
	bayer10 kernel[uint16]
}

var algorithms = []algorithm{
	{name: "horip", bayer8: horip[uint8]},
	{name: "ip", bayer8: ip[uint8]},
	{name: "cott", bayer8: cott[uint8]},
	{name: "cottnoip", bayer8: cottnoip[uint8], bayer10: cottnoip[uint16]},
	{name: "gptm_fast", bayer8: gptmFast[uint8]},
	{name: "gptm", bayer8: gptm[uint8], bayer10: gptm[uint16]},
}

func lookup(name string) (algorithm, bool) {
	for _, a := range algorithms {
		if a.name == name {
			return a, true
		}
	}
	return algorithm{}, false
}

// Algorithms lists the available algorithms in a stable order.
func Algorithms() []Info {
	infos := make([]Info, len(algorithms))
	for i, a := range algorithms {
		infos[i] = Info{Name: a.name, Supports8: a.bayer8 != nil, Supports10: a.bayer10 != nil}
	}
	return infos
}

// Engine holds the selected kernels and the sharpness parameter.
//
// The zero value is not usable; use NewEngine.
type Engine struct {
	mu        sync.RWMutex
	name8     string
	name10    string
	bayer8    kernel[uint8]
	bayer10   kernel[uint16]
	sharpness uint16
}

// NewEngine returns an engine that uses gptm for 8-bit and cottnoip for
// 10-bit input with DefaultSharpness.
func NewEngine() *Engine {
	g, _ := lookup("gptm")
	c, _ := lookup("cottnoip")
	return &Engine{
		name8:     g.name,
		bayer8:    g.bayer8,
		name10:    c.name,
		bayer10:   c.bayer10,
		sharpness: DefaultSharpness,
	}
}

// Algorithms lists the available algorithms.
func (e *Engine) Algorithms() []Info {
	return Algorithms()
}

// Select switches both bit depths to the named algorithm. An algorithm without
// a 10-bit kernel leaves 10-bit decoding unavailable until another Select.
// On error the selection is left unchanged.
func (e *Engine) Select(name string) error {
	a, ok := lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.name8, e.bayer8 = a.name, a.bayer8
	e.name10, e.bayer10 = "", nil
	if a.bayer10 != nil {
		e.name10, e.bayer10 = a.name, a.bayer10
	}
	logger.Debugf("selected algorithm %s (8-bit %t, 10-bit %t)", a.name, a.bayer8 != nil, a.bayer10 != nil)
	return nil
}

// Selected returns the names of the current 8-bit and 10-bit algorithms. An
// empty name means no kernel is bound for that depth.
func (e *Engine) Selected() (name8, name10 string) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.name8, e.name10
}

// SetSharpness sets the tuning value read by gptm on its next run. Zero
// degenerates to bilinear interpolation.
func (e *Engine) SetSharpness(sharpness uint16) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sharpness = sharpness
}

// Sharpness returns the current tuning value.
func (e *Engine) Sharpness() uint16 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.sharpness
}

// Supports reports whether a kernel is bound for 8-bit (depth 8) or 10-bit
// (depth 10) input.
func (e *Engine) Supports(depth int) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	switch depth {
	case 8:
		return e.bayer8 != nil
	case 10:
		return e.bayer10 != nil
	}
	return false
}

// Demosaic8 converts an 8-bit Bayer plane into p.Dst.
func (e *Engine) Demosaic8(src []uint8, p Params) error {
	e.mu.RLock()
	k, s := e.bayer8, e.sharpness
	e.mu.RUnlock()

	if k == nil {
		return fmt.Errorf("%w: 8-bit", ErrNoKernel)
	}
	if err := p.validate(len(src)); err != nil {
		return err
	}
	k(src, p, depth8, s)
	return nil
}

// Demosaic10 converts a plane of 10-bit samples held in 16-bit containers
// into p.Dst. Output channels keep the 8 most significant bits and saturate
// at 255 for samples above 1023.
func (e *Engine) Demosaic10(src []uint16, p Params) error {
	e.mu.RLock()
	k, s := e.bayer10, e.sharpness
	e.mu.RUnlock()

	if k == nil {
		return fmt.Errorf("%w: 10-bit", ErrNoKernel)
	}
	if err := p.validate(len(src)); err != nil {
		return err
	}
	k(src, p, depth10, s)
	return nil
}
