package frame

// FormatInfo describes a pixel format.
type FormatInfo struct {
	Format Format
	// BitsPerPixel is 0 for variable sized (compressed) formats and -1 when
	// the size is unknown.
	BitsPerPixel int
	// Name is the short name used to select the format, e.g. "UYVY".
	Name        string
	Description string
	// YPos and CbPos locate the luma and blue chroma samples inside a packed
	// YUV group. For planar and semi-planar formats CbPos is 0 when Cb comes
	// before Cr and 1 otherwise.
	YPos, CbPos int
}

var formats = []FormatInfo{
	{FormatRGB332, 8, "RGB332", "8  RGB-3-3-2", 0, 0},
	{FormatRGB555, 16, "RGB555", "16  RGB-5-5-5", 0, 0},
	{FormatRGB565, 16, "RGB565", "16  RGB-5-6-5", 0, 0},
	{FormatRGB555X, 16, "RGB555X", "16  RGB-5-5-5 BE", 0, 0},
	{FormatRGB565X, 16, "RGB565X", "16  RGB-5-6-5 BE", 0, 0},
	{FormatBGR24, 24, "BGR24", "24  BGR-8-8-8", 0, 0},
	{FormatRGB24, 24, "RGB24", "24  RGB-8-8-8", 0, 0},
	{FormatBGR32, 32, "BGR32", "32  BGR-8-8-8-8", 0, 0},
	{FormatRGB32, 32, "RGB32", "32  RGB-8-8-8-8", 0, 0},
	{FormatGREY, 8, "GREY", "8  Greyscale", 0, 0},
	{FormatY10, 16, "Y10", "10 Greyscale", 0, 0},
	{FormatY12, 16, "Y12", "12 Greyscale", 0, 0},
	{FormatUYVY, 16, "UYVY", "16  YUV 4:2:2", 1, 0},
	{FormatVYUY, 16, "VYUY", "16  YUV 4:2:2", 1, 2},
	{FormatYUYV, 16, "YUYV", "16  YUV 4:2:2", 0, 1},
	{FormatYVYU, 16, "YVYU", "16  YUV 4:2:2", 0, 3},
	{FormatYUV410, -1, "YUV410P", "9  YUV 4:1:0 planar", 0, 0},
	{FormatYVU410, -1, "YVU410P", "9  YVU 4:1:0 planar", 0, 1},
	{FormatYUV411P, 12, "YUV411P", "12  YUV 4:1:1 planar", 0, 0},
	{FormatYUV420, 12, "YUV420P", "12  YUV 4:2:0 planar", 0, 0},
	{FormatYVU420, 12, "YVU420P", "12  YVU 4:2:0 planar", 0, 1},
	{FormatYUV422P, 16, "YUV422P", "16  YUV 4:2:2 planar", 0, 0},
	{FormatYVU422M, 16, "YVU422P", "16  YVU 4:2:2 planar", 0, 1},
	{FormatYUV444M, 24, "YUV444P", "24  YUV 4:4:4 planar", 0, 0},
	{FormatYVU444M, 24, "YVU444P", "24  YVU 4:4:4 planar", 0, 1},
	{FormatY41P, 12, "Y41P", "12  YUV 4:1:1", 0, 0},
	{FormatNV12, 12, "NV12", "12  Y/CbCr 4:2:0", 0, 0},
	{FormatNV21, 12, "NV21", "12  Y/CrCb 4:2:0", 0, 1},
	{FormatNV16, 16, "NV16", "16  Y/CbCr 4:2:2", 0, 0},
	{FormatNV61, 16, "NV61", "16  Y/CrCb 4:2:2", 0, 1},
	{FormatYYUV, 12, "YYUV", "16  YUV 4:2:2", 0, 0},
	{FormatHI240, 8, "HI240", "8  8-bit color", 0, 0},
	{FormatSBGGR8, 8, "SBGGR8", "8  BGBG.. GRGR..", 0, 0},
	{FormatSGBRG8, 8, "SGBRG8", "8  GBGB.. RGRG..", 0, 0},
	{FormatSGRBG8, 8, "SGRBG8", "8 GRGR.. BGBG..", 0, 0},
	{FormatMJPEG, 0, "MJPEG", "Motion-JPEG", 0, 0},
	{FormatJPEG, 0, "JPEG", "JFIF JPEG", 0, 0},
	{FormatDV, 0, "DV", "1394", 0, 0},
	{FormatMPEG, 0, "MPEG", "MPEG-1/2/4", 0, 0},
	{FormatWNVA, -1, "WNVA", "Winnov hw compress", 0, 0},
	{FormatSN9C10X, -1, "SN9C10X", "SN9C10x compression", 0, 0},
	{FormatPWC1, -1, "PWC1", "pwc older webcam", 0, 0},
	{FormatPWC2, -1, "PWC2", "pwc newer webcam", 0, 0},
	{FormatET61X251, -1, "ET61X251", "ET61X251 compression", 0, 0},
	{FormatSGRBG10, 16, "SGRBG10", "10bit raw bayer", 0, 0},
	{FormatSGRBG10DPCM8, 8, "SGRBG10DPCM8", "10bit raw bayer DPCM compressed to 8 bits", 0, 0},
	{FormatSGRBG12, 16, "SGRBG12", "12bit raw bayer", 0, 0},
	{FormatSBGGR16, 16, "SBGGR16", "16 BGBG.. GRGR..", 0, 0},
}

// String returns the name and description the way the format list prints
// them.
func (i FormatInfo) String() string {
	return i.Name + " (" + i.Description + ")"
}

// Formats returns every known format in a stable order.
func Formats() []FormatInfo {
	return append([]FormatInfo(nil), formats...)
}

// LookupFormat finds a format by its FourCC.
func LookupFormat(f Format) (FormatInfo, bool) {
	for _, info := range formats {
		if info.Format == f {
			return info, true
		}
	}
	return FormatInfo{}, false
}

// ParseFormat finds a format by its short name. The match is exact and case
// sensitive.
func ParseFormat(name string) (FormatInfo, bool) {
	for _, info := range formats {
		if info.Name == name {
			return info, true
		}
	}
	return FormatInfo{}, false
}
