package frame

// Format is a V4L2 FourCC pixel format code. The first character is held in
// the lowest byte.
type Format uint32

func (f Format) String() string {
	return string([]byte{byte(f), byte(f >> 8), byte(f >> 16), byte(f >> 24)})
}

// RGB Formats
const (
	FormatRGB332  Format = 'R' | 'G'<<8 | 'B'<<16 | '1'<<24
	FormatRGB555  Format = 'R' | 'G'<<8 | 'B'<<16 | 'O'<<24
	FormatRGB565  Format = 'R' | 'G'<<8 | 'B'<<16 | 'P'<<24
	FormatRGB555X Format = 'R' | 'G'<<8 | 'B'<<16 | 'Q'<<24
	FormatRGB565X Format = 'R' | 'G'<<8 | 'B'<<16 | 'R'<<24
	FormatBGR24   Format = 'B' | 'G'<<8 | 'R'<<16 | '3'<<24
	FormatRGB24   Format = 'R' | 'G'<<8 | 'B'<<16 | '3'<<24
	FormatBGR32   Format = 'B' | 'G'<<8 | 'R'<<16 | '4'<<24
	FormatRGB32   Format = 'R' | 'G'<<8 | 'B'<<16 | '4'<<24
)

// Grey Formats
const (
	FormatGREY Format = 'G' | 'R'<<8 | 'E'<<16 | 'Y'<<24
	FormatY10  Format = 'Y' | '1'<<8 | '0'<<16 | ' '<<24
	FormatY12  Format = 'Y' | '1'<<8 | '2'<<16 | ' '<<24
)

// YUV Formats
const (
	FormatUYVY    Format = 'U' | 'Y'<<8 | 'V'<<16 | 'Y'<<24
	FormatVYUY    Format = 'V' | 'Y'<<8 | 'U'<<16 | 'Y'<<24
	FormatYUYV    Format = 'Y' | 'U'<<8 | 'Y'<<16 | 'V'<<24
	FormatYVYU    Format = 'Y' | 'V'<<8 | 'Y'<<16 | 'U'<<24
	FormatYUV410  Format = 'Y' | 'U'<<8 | 'V'<<16 | '9'<<24
	FormatYVU410  Format = 'Y' | 'V'<<8 | 'U'<<16 | '9'<<24
	FormatYUV411P Format = '4' | '1'<<8 | '1'<<16 | 'P'<<24
	// FormatYUV420 is the planar layout also known as I420.
	FormatYUV420  Format = 'Y' | 'U'<<8 | '1'<<16 | '2'<<24
	FormatYVU420  Format = 'Y' | 'V'<<8 | '1'<<16 | '2'<<24
	FormatYUV422P Format = '4' | '2'<<8 | '2'<<16 | 'P'<<24
	FormatYVU422M Format = 'Y' | 'M'<<8 | '6'<<16 | '1'<<24
	FormatYUV444M Format = 'Y' | 'M'<<8 | '2'<<16 | '4'<<24
	FormatYVU444M Format = 'Y' | 'M'<<8 | '4'<<16 | '2'<<24
	FormatY41P    Format = 'Y' | '4'<<8 | '1'<<16 | 'P'<<24
	FormatNV12    Format = 'N' | 'V'<<8 | '1'<<16 | '2'<<24
	FormatNV21    Format = 'N' | 'V'<<8 | '2'<<16 | '1'<<24
	FormatNV16    Format = 'N' | 'V'<<8 | '1'<<16 | '6'<<24
	FormatNV61    Format = 'N' | 'V'<<8 | '6'<<16 | '1'<<24
	FormatYYUV    Format = 'Y' | 'Y'<<8 | 'U'<<16 | 'V'<<24
	FormatHI240   Format = 'H' | 'I'<<8 | '2'<<16 | '4'<<24
)

// Bayer Formats
const (
	FormatSBGGR8       Format = 'B' | 'A'<<8 | '8'<<16 | '1'<<24
	FormatSGBRG8       Format = 'G' | 'B'<<8 | 'R'<<16 | 'G'<<24
	FormatSGRBG8       Format = 'G' | 'R'<<8 | 'B'<<16 | 'G'<<24
	FormatSGRBG10      Format = 'B' | 'A'<<8 | '1'<<16 | '0'<<24
	FormatSGRBG10DPCM8 Format = 'B' | 'D'<<8 | '1'<<16 | '0'<<24
	FormatSGRBG12      Format = 'B' | 'A'<<8 | '1'<<16 | '2'<<24
	FormatSBGGR16      Format = 'B' | 'Y'<<8 | 'R'<<16 | '2'<<24
)

// Compressed and vendor Formats. None of them can be decoded.
const (
	FormatMJPEG    Format = 'M' | 'J'<<8 | 'P'<<16 | 'G'<<24
	FormatJPEG     Format = 'J' | 'P'<<8 | 'E'<<16 | 'G'<<24
	FormatDV       Format = 'd' | 'v'<<8 | 's'<<16 | 'd'<<24
	FormatMPEG     Format = 'M' | 'P'<<8 | 'E'<<16 | 'G'<<24
	FormatWNVA     Format = 'W' | 'N'<<8 | 'V'<<16 | 'A'<<24
	FormatSN9C10X  Format = 'S' | '9'<<8 | '1'<<16 | '0'<<24
	FormatPWC1     Format = 'P' | 'W'<<8 | 'C'<<16 | '1'<<24
	FormatPWC2     Format = 'P' | 'W'<<8 | 'C'<<16 | '2'<<24
	FormatET61X251 Format = 'E' | '6'<<8 | '2'<<16 | '5'<<24
)

// YUV aliases

// FormatI420 is an alias of FormatYUV420
const FormatI420 = FormatYUV420

// FormatYUY2 is an alias of FormatYUYV
const FormatYUY2 = FormatYUYV
