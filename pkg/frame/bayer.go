package frame

import (
	"encoding/binary"

	"github.com/pion/raw2rgbpnm/pkg/demosaic"
)

func clip10(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > 1023 {
		return 1023
	}
	return uint16(v)
}

func bayerPhase(f Format) []Warning {
	switch f {
	case FormatSBGGR8, FormatSGBRG8, FormatSBGGR16:
		return []Warning{{Kind: WarnBayerPhase, Format: f}}
	}
	return nil
}

func demosaicParams(g Geometry, dst []byte) demosaic.Params {
	return demosaic.Params{
		Width:         g.Width,
		Height:        g.Height,
		Stride:        g.Width,
		Dst:           dst,
		DstStride:     g.Width * 3,
		BytesPerPixel: 3,
	}
}

// decodeBayer8 scales 8-bit samples by the brightness into a private plane
// and demosaics it.
func decodeBayer8(d *Decoder, info FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
	warnings := bayerPhase(info.Format)
	plane := make([]uint8, g.Width*g.Height)
	b := int(d.brightness)
	for y := 0; y < g.Height; y++ {
		row := src[y*g.Stride : y*g.Stride+g.Width]
		out := plane[y*g.Width:]
		for x, v := range row {
			out[x] = clip8(int(v) * b >> 8)
		}
	}
	if err := d.engine.Demosaic8(plane, demosaicParams(g, dst)); err != nil {
		return nil, err
	}
	return warnings, nil
}

// bayerShift is the right shift that brings a 16-bit container to 10 bits.
func (d *Decoder) bayerShift(f Format) uint {
	if d.highBits {
		return 6
	}
	switch f {
	case FormatSGRBG12:
		return 2
	case FormatSBGGR16:
		return 6
	}
	return 0
}

// decodeBayer16 normalizes little endian 16-bit containers to 10 bits, then
// applies the brightness. Every sample at or above 1024 after the shift is
// reported.
func decodeBayer16(d *Decoder, info FormatInfo, g Geometry, src, dst []byte) ([]Warning, error) {
	warnings := bayerPhase(info.Format)
	shift := d.bayerShift(info.Format)
	plane := make([]uint16, g.Width*g.Height)
	b := int(d.brightness)
	for y := 0; y < g.Height; y++ {
		row := src[y*g.Stride:]
		out := plane[y*g.Width:]
		for x := 0; x < g.Width; x++ {
			v := int(binary.LittleEndian.Uint16(row[x*2:]) >> shift)
			if v >= 1024 {
				warnings = append(warnings, Warning{Kind: WarnSampleRange, Format: info.Format, X: x, Y: y, Value: v})
			}
			out[x] = clip10(v * b >> 8)
		}
	}
	if err := d.engine.Demosaic10(plane, demosaicParams(g, dst)); err != nil {
		return nil, err
	}
	return warnings, nil
}
