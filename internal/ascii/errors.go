package ascii

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrImageLoad          = errors.New("failed to load image")
	ErrBufferSizeMismatch = errors.New("pixel buffer size mismatch")
)
