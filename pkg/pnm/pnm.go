// Package pnm writes decoded frames as binary PPM and picks other image
// encoders by file extension.
package pnm

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pion/raw2rgbpnm/pkg/frame"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encode writes img as a binary PPM (P6) with a maximum value of 255.
func Encode(w io.Writer, img image.Image) error {
	b := img.Bounds()
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}

	if rgb, ok := img.(*frame.RGB24Img); ok && rgb.Stride == 3*b.Dx() {
		start := rgb.PixOffset(b.Min.X, b.Min.Y)
		if _, err := bw.Write(rgb.Pix[start : start+rgb.Stride*b.Dy()]); err != nil {
			return err
		}
		return bw.Flush()
	}

	row := make([]byte, 3*b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			i := 3 * (x - b.Min.X)
			row[i], row[i+1], row[i+2] = byte(r>>8), byte(g>>8), byte(bl>>8)
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncoderFor returns the encoder used for path.
func EncoderFor(path string) func(io.Writer, image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Encode
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}
	case ".png":
		return png.Encode
	}
	return Encode
}

// Write creates path and stores img in it. The encoder is picked by extension;
// anything unknown becomes PPM.
func Write(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncoderFor(path)(f, img)
}
