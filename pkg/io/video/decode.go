package video

import (
	"image"

	"github.com/pion/raw2rgbpnm/pkg/frame"
	"github.com/pion/raw2rgbpnm/pkg/io/raw"
)

// FrameReader is the Reader returned by DecodeFrames.
type FrameReader struct {
	src      *raw.Source
	dec      *frame.Decoder
	format   frame.Format
	g        frame.Geometry
	buf      []byte
	n        int
	warnings []frame.Warning
}

// DecodeFrames returns a Reader producing every frame of src decoded as f.
// Frames are *frame.RGB24Img. The Reader returns io.EOF after the last frame.
func DecodeFrames(src *raw.Source, dec *frame.Decoder, f frame.Format) *FrameReader {
	width, height := src.Size()
	return &FrameReader{
		src:    src,
		dec:    dec,
		format: f,
		g:      frame.Geometry{Width: width, Height: height},
		buf:    make([]byte, src.FrameSize()),
	}
}

func (r *FrameReader) Read() (image.Image, func(), error) {
	r.warnings = nil
	if err := r.src.FrameInto(r.n, r.buf); err != nil {
		return nil, func() {}, err
	}
	r.n++

	img := frame.NewRGB24(image.Rect(0, 0, r.g.Width, r.g.Height))
	warnings, err := r.dec.Decode(r.format, r.g, r.buf, img.Pix)
	if err != nil {
		return nil, func() {}, err
	}
	r.warnings = warnings
	return img, func() {}, nil
}

// Warnings returns the diagnostics of the frame produced by the last Read.
func (r *FrameReader) Warnings() []frame.Warning {
	return r.warnings
}

// Frame is the index of the next frame Read will produce.
func (r *FrameReader) Frame() int {
	return r.n
}
