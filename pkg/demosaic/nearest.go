package demosaic

// cottnoip is a nearest neighbour reconstruction displaced by half a sample:
// every 2x2 output block takes its colors straight from the raw block.
func cottnoip[T sample](src []T, p Params, d depth, _ uint16) {
	w := newPixelWriter(p, d)
	s, n := p.Stride, p.BytesPerPixel
	v := func(i int) int { return int(src[i]) }

	for y := 0; y < p.Height; y += 2 {
		lastRow := y == p.Height-2
		for x := 0; x < p.Width; x += 2 {
			c := y*s + x
			o := y*p.DstStride + x*n

			red := c + 2*s + 1
			if lastRow {
				red = c + 1
			}
			green, blue := c+2, c+s+2
			if x == p.Width-2 {
				green, blue = c+s+1, c+s
			}

			w.put(o, v(c+1), v(c), v(c+s))
			w.put(o+n, v(c+1), v(green), v(blue))
			w.put(o+p.DstStride, v(red), v(c+s+1), v(c+s))
			w.put(o+p.DstStride+n, v(red), v(c+s+1), v(blue))
		}
	}
}

// cott is a light bilinear interpolation on a grid displaced by half a
// sample: green is the mean of the two diagonal greens around each output
// position, red and blue come from the nearest raw sample.
func cott[T sample](src []T, p Params, d depth, _ uint16) {
	w := newPixelWriter(p, d)
	s, n := p.Stride, p.BytesPerPixel
	v := func(i int) int { return int(src[i]) }

	for y := 0; y < p.Height; y += 2 {
		lastRow := y == p.Height-2
		for x := 0; x < p.Width; x += 2 {
			lastCol := x == p.Width-2
			c := y*s + x
			o := y*p.DstStride + x*n
			g := v(c + s + 1)

			w.put(o, v(c+1), (v(c)+g)/2, v(c+s))
			if lastCol {
				w.put(o+n, v(c+1), g, v(c+s))
			} else {
				w.put(o+n, v(c+1), (v(c+2)+g)/2, v(c+s+2))
			}

			if lastRow {
				blue := c + s + 2
				if lastCol {
					blue = c + s
				}
				w.put(o+p.DstStride, v(c+1), g, v(c+s))
				w.put(o+p.DstStride+n, v(c+1), g, v(blue))
				continue
			}

			red := v(c + 2*s + 1)
			w.put(o+p.DstStride, red, (v(c+2*s)+g)/2, v(c+s))
			if lastCol {
				w.put(o+p.DstStride+n, red, g, v(c+s))
			} else {
				w.put(o+p.DstStride+n, red, (v(c+2*s+2)+g)/2, v(c+s+2))
			}
		}
	}
}
