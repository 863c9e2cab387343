package frame

func sizePacked(info FormatInfo, g Geometry) int {
	return (g.Height-1)*g.Stride + g.Width*info.BitsPerPixel/8
}

// sizeSemiPlanar is the size of a luma plane followed by an interleaved
// chroma plane with one row for every vsub luma rows.
func sizeSemiPlanar(vsub int) func(FormatInfo, Geometry) int {
	return func(_ FormatInfo, g Geometry) int {
		return g.Stride*g.Height + g.Stride*(g.Height/vsub)
	}
}

func sizePlanar(hsub, vsub int) func(FormatInfo, Geometry) int {
	return func(_ FormatInfo, g Geometry) int {
		return g.Stride*g.Height + 2*(g.Stride/hsub)*(g.Height/vsub)
	}
}

// decodePacked422 handles the four byte orders of packed 4:2:2, where every
// group of 4 bytes carries two pixels sharing one chroma pair.
func decodePacked422(_ *Decoder, info FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
	yPos := info.YPos
	cbPos := info.CbPos
	crPos := (cbPos + 2) % 4
	o := 0
	for y := 0; y < g.Height; y++ {
		row := src[y*g.Stride:]
		for x := 0; x < g.Width; x += 2 {
			group := row[x*2 : x*2+4]
			cb, cr := group[cbPos], group[crPos]
			putYUV(dst[o:], group[yPos], cb, cr)
			putYUV(dst[o+3:], group[yPos+2], cb, cr)
			o += 6
		}
	}
	return nil, nil
}

// y41pLuma holds the offsets of the 8 luma samples in a 12 byte Y41P group.
// Pixels 0-3 use the chroma at offsets 0 and 2, pixels 4-7 the chroma at 4
// and 6.
var y41pLuma = [8]int{1, 3, 5, 7, 8, 9, 10, 11}

func decodeY41P(_ *Decoder, _ FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
	o := 0
	for y := 0; y < g.Height; y++ {
		row := src[y*g.Stride:]
		for x := 0; x < g.Width; x += 8 {
			group := row[x/8*12 : x/8*12+12]
			for i, yo := range y41pLuma {
				c := i / 4 * 4
				putYUV(dst[o:], group[yo], group[c], group[c+2])
				o += 3
			}
		}
	}
	return nil, nil
}

// decodeNV12 handles NV12 and NV21: a luma plane followed by one interleaved
// chroma row for every two luma rows.
func decodeNV12(_ *Decoder, info FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
	decodeSemiPlanar(info, g, src, dst, 2)
	return nil, nil
}

// decodeNV16 handles NV16 and NV61, which carry a chroma row for every luma
// row.
func decodeNV16(_ *Decoder, info FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
	decodeSemiPlanar(info, g, src, dst, 1)
	return nil, nil
}

func decodeSemiPlanar(info FormatInfo, g Geometry, src, dst []byte, vsub int) {
	luma := src[:g.Stride*g.Height]
	chroma := src[g.Stride*g.Height:]
	cbPos, crPos := info.CbPos, 1-info.CbPos
	o := 0
	for y := 0; y < g.Height; y++ {
		lrow := luma[y*g.Stride:]
		crow := chroma[y/vsub*g.Stride:]
		for x := 0; x < g.Width; x += 2 {
			cb, cr := crow[x+cbPos], crow[x+crPos]
			putYUV(dst[o:], lrow[x], cb, cr)
			putYUV(dst[o+3:], lrow[x+1], cb, cr)
			o += 6
		}
	}
}

// decodePlanar returns a decoder for three plane formats whose chroma planes
// are subsampled by hsub horizontally and vsub vertically. The Cr plane comes
// first when the format's CbPos is 1.
func decodePlanar(hsub, vsub int) decoderFunc {
	return func(_ *Decoder, info FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
		cstride := g.Stride / hsub
		csize := cstride * (g.Height / vsub)
		lsize := g.Stride * g.Height
		cb := src[lsize : lsize+csize]
		cr := src[lsize+csize : lsize+2*csize]
		if info.CbPos == 1 {
			cb, cr = cr, cb
		}
		o := 0
		for y := 0; y < g.Height; y++ {
			lrow := src[y*g.Stride:]
			c := y / vsub * cstride
			for x := 0; x < g.Width; x++ {
				putYUV(dst[o:], lrow[x], cb[c+x/hsub], cr[c+x/hsub])
				o += 3
			}
		}
		return nil, nil
	}
}
