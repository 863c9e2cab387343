package io

import "fmt"

// InsufficientBufferError tells the caller that a buffer handed to a decoder
// is too small for the requested geometry.
type InsufficientBufferError struct {
	// Name identifies the buffer, e.g. "source" or "destination".
	Name         string
	Size         int
	RequiredSize int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("%s buffer length (%d) less than expected (%d)", e.Name, e.Size, e.RequiredSize)
}
