package cmd

import (
	"errors"

	"github.com/gaurav-prasanna/img2pdf/core"
)

// Sentinel errors raised by the command layer.
var (
	ErrUsage   = errors.New("invalid usage")
	ErrNoInput = errors.New("no input provided")
)

// Exit codes. 0=success, 1=general, 2=usage, custom codes stay below 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Bad flags, config, paths or order
	ExitDecode  = 3 // An input image could not be decoded
	ExitEncode  = 4 // The PDF could not be composed or written
)

// exitCodeFor maps an error to an exit code. Errors must be wrapped with
// %w for the mapping to see through them.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, core.ErrDecode) {
		return ExitDecode
	}

	if errors.Is(err, core.ErrEncode) {
		return ExitEncode
	}

	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, core.ErrInvalidInput) ||
		errors.Is(err, core.ErrNoImagesFound) ||
		errors.Is(err, core.ErrInvalidOrder) ||
		errors.Is(err, core.ErrInvalidOption) {
		return ExitUsage
	}

	return ExitGeneral
}
