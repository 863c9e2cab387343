package io

// CheckSize returns an InsufficientBufferError when buf holds fewer than
// required bytes.
func CheckSize(name string, buf []byte, required int) error {
	if len(buf) < required {
		return &InsufficientBufferError{Name: name, Size: len(buf), RequiredSize: required}
	}
	return nil
}

// Copy copies data from src to dst. If dst is not big enough, return an
// InsufficientBufferError.
func Copy(dst, src []byte) (n int, err error) {
	if err := CheckSize("destination", dst, len(src)); err != nil {
		return 0, err
	}

	return copy(dst, src), nil
}
