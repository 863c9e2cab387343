package frame

import "encoding/binary"

// decodeRGB expands the packed RGB formats. 16-bit words of the X variants
// are big endian, the others little endian. Dropped low bits are zero.
func decodeRGB(_ *Decoder, info FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
	bpp := info.BitsPerPixel / 8
	o := 0
	for y := 0; y < g.Height; y++ {
		row := src[y*g.Stride:]
		for x := 0; x < g.Width; x++ {
			px := row[x*bpp : x*bpp+bpp]
			var r, gr, b byte
			switch info.Format {
			case FormatRGB332:
				p := px[0]
				r, gr, b = p&0xe0, (p<<3)&0xe0, (p<<6)&0xc0
			case FormatRGB555, FormatRGB555X:
				p := word(info.Format == FormatRGB555X, px)
				r, gr, b = byte(p>>7)&0xf8, byte(p>>2)&0xf8, byte(p<<3)&0xf8
			case FormatRGB565, FormatRGB565X:
				p := word(info.Format == FormatRGB565X, px)
				r, gr, b = byte(p>>8)&0xf8, byte(p>>3)&0xfc, byte(p<<3)&0xf8
			case FormatBGR24:
				r, gr, b = px[2], px[1], px[0]
			case FormatRGB24:
				r, gr, b = px[0], px[1], px[2]
			case FormatBGR32:
				r, gr, b = px[2], px[1], px[0]
			case FormatRGB32:
				r, gr, b = px[1], px[2], px[3]
			}
			dst[o], dst[o+1], dst[o+2] = r, gr, b
			o += 3
		}
	}
	return nil, nil
}

func word(bigEndian bool, px []byte) uint16 {
	if bigEndian {
		return binary.BigEndian.Uint16(px)
	}
	return binary.LittleEndian.Uint16(px)
}

func decodeGrey(_ *Decoder, _ FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
	o := 0
	for y := 0; y < g.Height; y++ {
		row := src[y*g.Stride : y*g.Stride+g.Width]
		for _, v := range row {
			dst[o], dst[o+1], dst[o+2] = v, v, v
			o += 3
		}
	}
	return nil, nil
}

// decodeGrey16 reduces 10 and 12 bit luma held in little endian 16-bit
// containers to 8 bits.
func decodeGrey16(_ *Decoder, info FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
	shift := 2
	if info.Format == FormatY12 {
		shift = 4
	}
	o := 0
	for y := 0; y < g.Height; y++ {
		row := src[y*g.Stride:]
		for x := 0; x < g.Width; x++ {
			v := clip8(int(binary.LittleEndian.Uint16(row[x*2:]) >> shift))
			dst[o], dst[o+1], dst[o+2] = v, v, v
			o += 3
		}
	}
	return nil, nil
}
