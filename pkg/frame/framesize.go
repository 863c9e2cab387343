package frame

import "fmt"

// FrameSize returns the number of bytes one tightly packed frame of format f
// occupies. Compressed formats and formats of unknown depth return
// ErrVariableSize.
func FrameSize(f Format, width, height int) (int, error) {
	info, ok := LookupFormat(f)
	if !ok {
		return 0, fmt.Errorf("frame: unknown format %s", f)
	}
	if info.BitsPerPixel <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrVariableSize, info.Name)
	}
	return width * height * info.BitsPerPixel / 8, nil
}
