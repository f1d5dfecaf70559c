package core

import "errors"

// Sentinel errors. Callers wrap them with fmt.Errorf("%w: ...") and test
// with errors.Is.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoImagesFound = errors.New("no supported images found")
	ErrInvalidOrder  = errors.New("invalid order")
	ErrInvalidOption = errors.New("invalid option")
	ErrDecode        = errors.New("failed to decode image")
	ErrEncode        = errors.New("failed to write PDF")
)
