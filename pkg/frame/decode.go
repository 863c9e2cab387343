package frame

import (
	"fmt"
	"image"

	"github.com/pion/raw2rgbpnm/pkg/demosaic"
	"github.com/pion/raw2rgbpnm/pkg/io"
)

type decoderFunc func(d *Decoder, info FormatInfo, g Geometry, src, dst []byte) ([]Warning, error)

// layout captures what the dispatcher needs to know about a decode path.
type layout struct {
	decode decoderFunc
	// Width and height must be multiples of these.
	alignX, alignY int
	// Bayer planes need at least two blocks in each direction.
	bayer bool
	// hsub is the horizontal chroma subsampling of planar formats, zero for
	// packed ones. Chroma strides are the luma stride divided by it.
	hsub int
	size func(info FormatInfo, g Geometry) int
}

func layoutFor(f Format) (layout, bool) {
	switch f {
	case FormatUYVY, FormatVYUY, FormatYUYV, FormatYVYU:
		return layout{decode: decodePacked422, alignX: 2, alignY: 1, size: sizePacked}, true
	case FormatY41P:
		return layout{decode: decodeY41P, alignX: 8, alignY: 1, size: sizePacked}, true
	case FormatNV12, FormatNV21:
		return layout{decode: decodeNV12, alignX: 2, alignY: 2, hsub: 1, size: sizeSemiPlanar(2)}, true
	case FormatNV16, FormatNV61:
		return layout{decode: decodeNV16, alignX: 2, alignY: 1, hsub: 1, size: sizeSemiPlanar(1)}, true
	case FormatYUV411P:
		return layout{decode: decodePlanar(4, 1), alignX: 4, alignY: 1, hsub: 4, size: sizePlanar(4, 1)}, true
	case FormatYUV420, FormatYVU420:
		return layout{decode: decodePlanar(2, 2), alignX: 2, alignY: 2, hsub: 2, size: sizePlanar(2, 2)}, true
	case FormatYUV422P, FormatYVU422M:
		return layout{decode: decodePlanar(2, 1), alignX: 2, alignY: 1, hsub: 2, size: sizePlanar(2, 1)}, true
	case FormatYUV444M, FormatYVU444M:
		return layout{decode: decodePlanar(1, 1), alignX: 1, alignY: 1, hsub: 1, size: sizePlanar(1, 1)}, true
	case FormatGREY:
		return layout{decode: decodeGrey, alignX: 1, alignY: 1, size: sizePacked}, true
	case FormatY10, FormatY12:
		return layout{decode: decodeGrey16, alignX: 1, alignY: 1, size: sizePacked}, true
	case FormatRGB332, FormatRGB555, FormatRGB565, FormatRGB555X, FormatRGB565X,
		FormatBGR24, FormatRGB24, FormatBGR32, FormatRGB32:
		return layout{decode: decodeRGB, alignX: 1, alignY: 1, size: sizePacked}, true
	case FormatSGRBG8, FormatSBGGR8, FormatSGBRG8:
		return layout{decode: decodeBayer8, alignX: 2, alignY: 2, bayer: true, size: sizePacked}, true
	case FormatSGRBG10, FormatSGRBG12, FormatSBGGR16:
		return layout{decode: decodeBayer16, alignX: 2, alignY: 2, bayer: true, size: sizePacked}, true
	}
	return layout{}, false
}

// fallbackFormat is used for everything that has no decode path.
const fallbackFormat = FormatUYVY

// resolve fills in the default stride and checks the geometry against the
// layout.
func (l layout) resolve(info FormatInfo, g Geometry) (Geometry, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return g, fmt.Errorf("%w: %dx%d", ErrGeometry, g.Width, g.Height)
	}
	if g.Width%l.alignX != 0 || g.Height%l.alignY != 0 {
		return g, fmt.Errorf("%w: %s needs width a multiple of %d and height a multiple of %d, got %dx%d",
			ErrGeometry, info.Name, l.alignX, l.alignY, g.Width, g.Height)
	}
	if l.bayer && (g.Width < 4 || g.Height < 4) {
		return g, fmt.Errorf("%w: bayer frames must be at least 4x4, got %dx%d", ErrGeometry, g.Width, g.Height)
	}

	row := g.Width * info.BitsPerPixel / 8
	if l.hsub > 0 {
		row = g.Width
	}
	if g.Stride == 0 {
		g.Stride = row
	}
	if g.Stride < row {
		return g, fmt.Errorf("%w: stride %d shorter than a row of %d bytes", ErrGeometry, g.Stride, row)
	}
	if l.hsub > 0 && g.Stride%l.hsub != 0 {
		return g, fmt.Errorf("%w: %s stride must be a multiple of %d", ErrGeometry, info.Name, l.hsub)
	}
	if info.BitsPerPixel == 16 && l.bayer && g.Stride%2 != 0 {
		return g, fmt.Errorf("%w: bayer stride must be even", ErrGeometry)
	}
	return g, nil
}

// Decode converts one frame of format f into dst, which must hold at least
// Width*Height*3 bytes. Rows of dst are tightly packed, red first unless the
// decoder swaps red and blue.
//
// src is never modified. Formats without a decode path are decoded as UYVY
// and reported with a WarnFallback warning. All errors are returned before
// dst is written.
func (d *Decoder) Decode(f Format, g Geometry, src, dst []byte) ([]Warning, error) {
	var warnings []Warning

	info, known := LookupFormat(f)
	l, ok := layoutFor(f)
	if !known || !ok {
		warnings = append(warnings, Warning{Kind: WarnFallback, Format: f})
		info, _ = LookupFormat(fallbackFormat)
		l, _ = layoutFor(fallbackFormat)
		g.Stride = 0
	}

	g, err := l.resolve(info, g)
	if err != nil {
		return nil, err
	}
	if err := io.CheckSize("source", src, l.size(info, g)); err != nil {
		return nil, err
	}
	if err := io.CheckSize("destination", dst, g.Width*g.Height*3); err != nil {
		return nil, err
	}
	if l.bayer {
		bits := 8
		if info.BitsPerPixel == 16 {
			bits = 10
		}
		if !d.engine.Supports(bits) {
			name8, _ := d.engine.Selected()
			return nil, fmt.Errorf("%w: %d-bit input with algorithm %q", demosaic.ErrNoKernel, bits, name8)
		}
	}

	w, err := l.decode(d, info, g, src, dst)
	if err != nil {
		return nil, err
	}
	warnings = append(warnings, w...)

	if d.swapRB {
		swapRB(dst[:g.Width*g.Height*3])
	}
	d.report(warnings)
	return warnings, nil
}

// DecodeImage is like Decode but allocates the output.
func (d *Decoder) DecodeImage(f Format, g Geometry, src []byte) (*RGB24Img, []Warning, error) {
	img := NewRGB24(image.Rect(0, 0, g.Width, g.Height))
	warnings, err := d.Decode(f, g, src, img.Pix)
	if err != nil {
		return nil, nil, err
	}
	return img, warnings, nil
}

func swapRB(rgb []byte) {
	for i := 0; i+2 < len(rgb); i += 3 {
		rgb[i], rgb[i+2] = rgb[i+2], rgb[i]
	}
}

func (d *Decoder) report(warnings []Warning) {
	var outOfRange int
	for _, w := range warnings {
		if w.Kind == WarnSampleRange {
			if outOfRange == 0 {
				d.log.Warn(w.String())
			}
			outOfRange++
			continue
		}
		d.log.Warn(w.String())
	}
	if outOfRange > 1 {
		d.log.Warnf("%d bayer samples out of range in total", outOfRange)
	}
}
