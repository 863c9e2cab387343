package demosaic

// Base weights of the Pei-Tam correction terms in 0.8 fixed point, tuned for
// the best PSNR at OptimalSharpness.
const (
	baseRedOnGreen  = 144
	baseBlueOnGreen = 160
	baseGreenOnRed  = 120
	baseBlueOnRed   = 192
	baseGreenOnBlue = 120
	baseRedOnBlue   = 168
)

// weights scale the detail term of each estimate, in 0.10 fixed point.
type weights struct {
	redOnGreen, blueOnGreen int
	greenOnRed, blueOnRed   int
	greenOnBlue, redOnBlue  int
}

// fixedWeights are the weights of gptm_fast.
var fixedWeights = weights{
	redOnGreen: 256, blueOnGreen: 256,
	greenOnRed: 128, blueOnRed: 128,
	greenOnBlue: 256, redOnBlue: 256,
}

func sharpnessWeights(sharpness uint16) weights {
	wu := (uint32(sharpness) * uint32(sharpness)) >> 16
	wu = (wu * wu) >> 16
	scale := func(base uint32) int { return int((base * wu) >> 10) }
	return weights{
		redOnGreen:  scale(baseRedOnGreen),
		blueOnGreen: scale(baseBlueOnGreen),
		greenOnRed:  scale(baseGreenOnRed),
		blueOnRed:   scale(baseBlueOnRed),
		greenOnBlue: scale(baseGreenOnBlue),
		redOnBlue:   scale(baseRedOnBlue),
	}
}

// gptm is the generalized Pei-Tam method from "Effective Color Interpolation
// in CCD Color Filter Arrays Using Signal Correlation" (IEEE TCSVT 13(6),
// 2003), with weights derived from the sharpness.
func gptm[T sample](src []T, p Params, d depth, sharpness uint16) {
	peiTam(src, p, d, sharpnessWeights(sharpness))
}

// gptmFast is gptm with fixed weights.
func gptmFast[T sample](src []T, p Params, d depth, _ uint16) {
	peiTam(src, p, d, fixedWeights)
}

func peiTam[T sample](src []T, p Params, d depth, wt weights) {
	w := newPixelWriter(p, d)
	s, n, ds := p.Stride, p.BytesPerPixel, p.DstStride
	v := func(i int) int { return int(src[i]) }

	for y := 0; y < p.Height; y += 2 {
		border := y == 0 || y == p.Height-2
		for x := 0; x < p.Width; x += 2 {
			c := y*s + x
			o := y*ds + x*n

			// The stencil needs two samples on every side, so the outer
			// ring of 2x2 blocks is copied from the block itself.
			if border || x == 0 || x == p.Width-2 {
				w.put(o, v(c+1), v(c), v(c+s))
				w.put(o+n, v(c+1), v(c), v(c+s))
				w.put(o+ds, v(c+1), v(c+s+1), v(c+s))
				w.put(o+ds+n, v(c+1), v(c+s+1), v(c+s))
				continue
			}

			// Green on a red/green row.
			e := 4*v(c) - (v(c-s-1) + v(c-s+1) + v(c+s-1) + v(c+s+1))
			r := (512*(v(c-1)+v(c+1)) + e*wt.redOnGreen) >> 10
			b := (512*(v(c-s)+v(c+s)) + e*wt.blueOnGreen) >> 10
			w.put(o, d.clip(r), v(c), d.clip(b))

			// Red.
			e = 4*v(c+1) - (v(c-2*s+1) + v(c-1) + v(c+3) + v(c+2*s+1))
			g := (256*(v(c-s+1)+v(c)+v(c+2)+v(c+s+1)) + e*wt.greenOnRed) >> 10
			b = (256*(v(c-s)+v(c-s+2)+v(c+s)+v(c+s+2)) + e*wt.blueOnRed) >> 10
			w.put(o+n, v(c+1), d.clip(g), d.clip(b))

			// Blue.
			e = 4*v(c+s) - (v(c-s) + v(c+s-2) + v(c+s+2) + v(c+3*s))
			r = (256*(v(c-1)+v(c+1)+v(c+2*s-1)+v(c+2*s+1)) + e*wt.redOnBlue) >> 10
			g = (256*(v(c)+v(c+s-1)+v(c+s+1)+v(c+2*s)) + e*wt.greenOnBlue) >> 10
			w.put(o+ds, d.clip(r), d.clip(g), v(c+s))

			// Green on a blue/green row.
			e = 4*v(c+s+1) - (v(c) + v(c+2) + v(c+2*s) + v(c+2*s+2))
			r = (512*(v(c+1)+v(c+2*s+1)) + e*wt.redOnGreen) >> 10
			b = (512*(v(c+s)+v(c+s+2)) + e*wt.blueOnGreen) >> 10
			w.put(o+ds+n, d.clip(r), v(c+s+1), d.clip(b))
		}
	}
}
