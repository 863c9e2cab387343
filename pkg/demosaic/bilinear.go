package demosaic

// horip interpolates missing channels along rows only.
func horip[T sample](src []T, p Params, d depth, _ uint16) {
	w := newPixelWriter(p, d)
	s, n, ds := p.Stride, p.BytesPerPixel, p.DstStride
	v := func(i int) int { return int(src[i]) }

	for y := 0; y < p.Height; y += 2 {
		b := y * s
		o := y * ds

		w.put(o, v(b+1), v(b), v(b+s))
		w.put(o+ds, v(b+1), v(b), v(b+s))

		for x := 1; x < p.Width-1; x += 2 {
			c := b + x
			oc := o + x*n

			green := (v(c-1) + v(c+1)) / 2
			blue := (v(c+s-1) + v(c+s+1)) / 2
			w.put(oc, v(c), green, blue)
			red := (v(c) + v(c+2)) / 2
			w.put(oc+n, red, v(c+1), v(c+s+1))
			w.put(oc+ds, v(c), v(c+s), blue)
			w.put(oc+ds+n, red, v(c+1), v(c+s+1))
		}

		c := b + p.Width - 1
		oc := o + (p.Width-1)*n
		w.put(oc, v(c), v(c-1), v(c+s-1))
		w.put(oc+ds, v(c), v(c+s), v(c+s-1))
	}
}

// ip is full bilinear interpolation over the 3x3 neighbourhood. The outer
// rows and columns average the neighbours that exist.
func ip[T sample](src []T, p Params, d depth, _ uint16) {
	w := newPixelWriter(p, d)
	s, n, ds := p.Stride, p.BytesPerPixel, p.DstStride
	v := func(i int) int { return int(src[i]) }
	last := p.Width - 1

	// First row.
	w.put(0, v(1), v(0), v(s))
	for x := 1; x < last; x += 2 {
		c, oc := x, x*n
		green := (v(c-1) + v(c+1) + v(c+s)) / 3
		blue := (v(c+s-1) + v(c+s+1)) / 2
		w.put(oc, v(c), green, blue)
		red := (v(c) + v(c+2)) / 2
		w.put(oc+n, red, v(c+1), v(c+s+1))
	}
	w.put(last*n, v(last), (v(last-1)+v(last+s))/2, v(last+s-1))

	// Inner rows, two at a time starting on a blue/green row.
	for y := 1; y < p.Height-1; y += 2 {
		b := y * s
		o := y * ds

		red := (v(b-s+1) + v(b+s+1)) / 2
		green := (v(b-s) + v(b+1) + v(b+s)) / 3
		w.put(o, red, green, v(b))
		blue := (v(b) + v(b+2*s)) / 2
		w.put(o+ds, v(b+s+1), v(b+s), blue)

		for x := 1; x < last; x += 2 {
			c := b + x
			oc := o + x*n

			red = (v(c-s) + v(c+s)) / 2
			blue = (v(c-1) + v(c+1)) / 2
			w.put(oc, red, v(c), blue)

			red = (v(c-s) + v(c-s+2) + v(c+s) + v(c+s+2)) / 4
			green = (v(c) + v(c+2) + v(c-s+1) + v(c+s+1)) / 4
			w.put(oc+n, red, green, v(c+1))

			green = (v(c) + v(c+2*s) + v(c+s-1) + v(c+s+1)) / 4
			blue = (v(c-1) + v(c+1) + v(c+2*s-1) + v(c+2*s+1)) / 4
			w.put(oc+ds, v(c+s), green, blue)

			red = (v(c+s) + v(c+s+2)) / 2
			blue = (v(c+1) + v(c+2*s+1)) / 2
			w.put(oc+ds+n, red, v(c+s+1), blue)
		}

		c := b + last
		oc := o + last*n
		red = (v(c-s) + v(c+s)) / 2
		w.put(oc, red, v(c), v(c-1))
		green = (v(c) + v(c+s-1) + v(c+2*s)) / 3
		blue = (v(c-1) + v(c+2*s-1)) / 2
		w.put(oc+ds, v(c+s), green, blue)
	}

	// Last row.
	b := (p.Height - 1) * s
	o := (p.Height - 1) * ds
	w.put(o, v(b-s+1), (v(b-s)+v(b+1))/2, v(b))
	for x := 1; x < last; x += 2 {
		c := b + x
		oc := o + x*n
		blue := (v(c-1) + v(c+1)) / 2
		w.put(oc, v(c-s), v(c), blue)
		red := (v(c-s) + v(c-s+2)) / 2
		green := (v(c) + v(c-s+1) + v(c+2)) / 3
		w.put(oc+n, red, green, v(c+1))
	}
	c := b + last
	w.put(o+last*n, v(c-s), v(c), v(c-1))
}
