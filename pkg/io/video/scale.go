package video

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pion/raw2rgbpnm/pkg/frame"
	"golang.org/x/image/draw"
)

// Scaler represents scaling algorithm
type Scaler draw.Scaler

// List of scaling algorithms
var (
	ScalerNearestNeighbor = Scaler(draw.NearestNeighbor)
	ScalerApproxBiLinear  = Scaler(draw.ApproxBiLinear)
	ScalerBiLinear        = Scaler(draw.BiLinear)
	ScalerCatmullRom      = Scaler(draw.CatmullRom)
	ScalerLanczos3        = Scaler(lanczos{resize.Lanczos3})
)

// Scalers maps names accepted on the command line to scalers.
var Scalers = map[string]Scaler{
	"nearest":    ScalerNearestNeighbor,
	"approx":     ScalerApproxBiLinear,
	"bilinear":   ScalerBiLinear,
	"catmullrom": ScalerCatmullRom,
	"lanczos3":   ScalerLanczos3,
}

// lanczos adapts nfnt/resize to the draw.Scaler interface.
type lanczos struct {
	interp resize.InterpolationFunction
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func (l lanczos) Scale(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle, op draw.Op, _ *draw.Options) {
	if si, ok := src.(subImager); ok && sr != src.Bounds() {
		src = si.SubImage(sr)
	}
	scaled := resize.Resize(uint(dr.Dx()), uint(dr.Dy()), src, l.interp)
	draw.Draw(dst, dr, scaled, scaled.Bounds().Min, op)
}

// Scale returns video scaling transform.
// Setting scaler=nil to use default scaler. (ScalerNearestNeighbor)
// Negative width or height value will keep the aspect ratio of incoming image.
// Scaled frames are *frame.RGB24Img.
func Scale(width, height int, scaler Scaler) TransformFunc {
	return func(r Reader) Reader {
		if scaler == nil {
			scaler = ScalerNearestNeighbor
		}

		var rect image.Rectangle
		if width > 0 && height > 0 {
			rect = image.Rect(0, 0, width, height)
		} else if width <= 0 && height <= 0 {
			panic("Both width and height are negative!")
		}

		var imgScaled *frame.RGB24Img
		return ReaderFunc(func() (image.Image, func(), error) {
			img, release, err := r.Read()
			if err != nil {
				return nil, func() {}, err
			}
			defer release()

			if imgScaled == nil {
				if height <= 0 {
					h := img.Bounds().Dy() * width / img.Bounds().Dx()
					rect = image.Rect(0, 0, width, h)
				} else if width <= 0 {
					w := img.Bounds().Dx() * height / img.Bounds().Dy()
					rect = image.Rect(0, 0, w, height)
				}
				imgScaled = frame.NewRGB24(rect)
			}

			scaler.Scale(imgScaled, rect, img, img.Bounds(), draw.Src, nil)
			return imgScaled, func() {}, nil
		})
	}
}
