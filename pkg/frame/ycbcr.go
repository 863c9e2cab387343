package frame

func clip8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// YUVToRGB converts a BT.601 studio range luma/chroma triple to RGB using 8
// bits of fixed point fraction. Out of range input is clipped, never
// wrapped.
func YUVToRGB(y, u, v int) (r, g, b uint8) {
	c := y - 16
	d := u - 128
	e := v - 128
	r = clip8((298*c + 409*e + 128) >> 8)
	g = clip8((298*c - 100*d - 208*e + 128) >> 8)
	b = clip8((298*c + 516*d + 128) >> 8)
	return r, g, b
}

func putYUV(px []byte, y, u, v byte) {
	px[0], px[1], px[2] = YUVToRGB(int(y), int(u), int(v))
}
