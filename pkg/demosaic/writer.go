package demosaic

type sample interface {
	~uint8 | ~uint16
}

// kernel writes an RGB image for the Bayer plane src. Parameters are checked
// by the caller.
type kernel[T sample] func(src []T, p Params, d depth, sharpness uint16)

// depth describes how interpolated values are clipped and how samples are
// reduced to 8 bits on output.
type depth struct {
	max   int
	shift uint
}

var (
	depth8 = depth{max: 255, shift: 0}
	// Interpolated 10-bit channels are clipped to 255 before the output
	// shift, which keeps output identical to existing reference captures.
	depth10 = depth{max: 255, shift: 2}
)

func (d depth) clip(v int) int {
	if v < 0 {
		return 0
	}
	if v > d.max {
		return d.max
	}
	return v
}

type pixelWriter struct {
	dst   []byte
	bpp   int
	shift uint
}

func newPixelWriter(p Params, d depth) pixelWriter {
	return pixelWriter{dst: p.Dst, bpp: p.BytesPerPixel, shift: d.shift}
}

func saturate(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// put stores one pixel at byte offset o, red first. Channels above the 8-bit
// range after the shift saturate.
func (w pixelWriter) put(o int, r, g, b int) {
	px := w.dst[o : o+w.bpp : o+w.bpp]
	px[0] = saturate(r >> w.shift)
	px[1] = saturate(g >> w.shift)
	px[2] = saturate(b >> w.shift)
	if w.bpp == 4 {
		px[3] = 0
	}
}
