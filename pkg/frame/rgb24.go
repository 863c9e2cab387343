package frame

import (
	"image"
	"image/color"
)

// RGB24Img is an in-memory image whose pixels are 3 bytes in R, G, B order.
// It is the layout Decode writes.
type RGB24Img struct {
	// Pix holds the image's pixels, in R, G, B order. The pixel at
	// (x, y) starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix    []uint8
	Rect   image.Rectangle
	Stride int
}

// NewRGB24 returns a new RGB24Img with the given bounds.
func NewRGB24(r image.Rectangle) *RGB24Img {
	w, h := r.Dx(), r.Dy()
	return &RGB24Img{
		Pix:    make([]uint8, 3*w*h),
		Rect:   r,
		Stride: 3 * w,
	}
}

func (p *RGB24Img) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *RGB24Img) Bounds() image.Rectangle {
	return p.Rect
}

func (p *RGB24Img) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

func (p *RGB24Img) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

func (p *RGB24Img) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3] // Small capacity improves performance, see https://golang.org/issue/27857
	return color.RGBA{s[0], s[1], s[2], 0xff}
}

// Set makes RGB24Img a draw.Image. Alpha is dropped.
func (p *RGB24Img) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	c1 := color.RGBAModel.Convert(c).(color.RGBA)
	s := p.Pix[i : i+3 : i+3]
	s[0], s[1], s[2] = c1.R, c1.G, c1.B
}

// Opaque always reports true.
func (p *RGB24Img) Opaque() bool {
	return true
}

// SubImage returns the part of p visible through r, sharing pixels with p.
func (p *RGB24Img) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &RGB24Img{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &RGB24Img{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}
