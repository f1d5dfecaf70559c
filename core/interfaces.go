// Package core defines the conversion pipeline types and interfaces.
// Each stage (decode, normalize, compose) is a small, testable interface;
// the concrete implementations live in the subpackages.
package core

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/img2pdf/core/format"
)

// DefaultOutputName is used when no output path is given.
const DefaultOutputName = "converted_images.pdf"

// DefaultResolution is the page resolution in DPI used to size pages.
const DefaultResolution = 100.0

// ImageEntry is one discovered image.
type ImageEntry struct {
	Path   string        `json:"path" yaml:"path"`
	Format format.Format `json:"format" yaml:"format"`
	Index  int           `json:"index" yaml:"index"` // position at discovery, 0-based
}

// Name returns the base file name of the entry.
func (e ImageEntry) Name() string {
	return filepath.Base(e.Path)
}

// Job is a fully resolved conversion: the images in page order and the
// destination PDF.
type Job struct {
	Entries []ImageEntry
	Output  string
}

// NewJob builds a Job. It rejects an empty entry list and appends a .pdf
// suffix to output when it lacks one.
func NewJob(entries []ImageEntry, output string) (*Job, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: conversion job has no images", ErrNoImagesFound)
	}
	if strings.TrimSpace(output) == "" {
		output = DefaultOutputName
	}
	return &Job{Entries: entries, Output: EnsurePDFExt(output)}, nil
}

// Title is the document title written into the PDF metadata: the output
// file name without its extension.
func (j *Job) Title() string {
	base := filepath.Base(j.Output)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// EnsurePDFExt appends ".pdf" unless path already ends with it (any case).
func EnsurePDFExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return path
	}
	return path + ".pdf"
}

// ColorMode selects the color space of the output pages.
type ColorMode string

const (
	// ColorAsIs keeps grayscale sources gray and turns everything else into RGB.
	ColorAsIs ColorMode = "as-is"
	ColorRGB  ColorMode = "rgb"
	ColorGray ColorMode = "gray"
)

// ParseColorMode validates a color mode name. Empty means ColorAsIs.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAsIs, nil
	case ColorAsIs, ColorRGB, ColorGray:
		return m, nil
	default:
		return "", fmt.Errorf("%w: color mode %q (want as-is, rgb or gray)", ErrInvalidOption, s)
	}
}

// Options tunes page preparation.
type Options struct {
	// MaxDimension downsamples any page whose longer edge exceeds it.
	// Zero disables resizing.
	MaxDimension int
	ColorMode    ColorMode
	// Resolution in DPI maps pixels to page points.
	Resolution float64
	// Verify re-reads the written PDF with pdfcpu before committing it.
	Verify bool
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ColorMode:  ColorAsIs,
		Resolution: DefaultResolution,
		Verify:     true,
	}
}

// Validate checks option bounds.
func (o Options) Validate() error {
	if o.MaxDimension < 0 {
		return fmt.Errorf("%w: max dimension %d (must be >= 0, 0 disables resizing)", ErrInvalidOption, o.MaxDimension)
	}
	if o.Resolution <= 0 {
		return fmt.Errorf("%w: resolution %g (must be > 0)", ErrInvalidOption, o.Resolution)
	}
	if _, err := ParseColorMode(string(o.ColorMode)); err != nil {
		return err
	}
	return nil
}

// Page is a normalized image ready to be placed on a PDF page.
type Page struct {
	Entry ImageEntry
	Image image.Image
}

// PageInfo describes one page of a written PDF.
type PageInfo struct {
	Number       int           `json:"number" yaml:"number"`
	Source       string        `json:"source" yaml:"source"`
	Format       format.Format `json:"format" yaml:"format"`
	SourceWidth  int           `json:"source_width" yaml:"source_width"`
	SourceHeight int           `json:"source_height" yaml:"source_height"`
	Width        int           `json:"width" yaml:"width"`
	Height       int           `json:"height" yaml:"height"`
}

// Result summarizes a finished conversion.
type Result struct {
	Output string     `json:"output" yaml:"output"`
	Bytes  int64      `json:"bytes" yaml:"bytes"`
	Pages  []PageInfo `json:"pages" yaml:"pages"`
}

// Decoder reads an image file using the decoder for its format.
type Decoder interface {
	Decode(path string, f format.Format) (image.Image, error)
}

// Normalizer prepares a decoded image for PDF embedding.
type Normalizer interface {
	Normalize(img image.Image) image.Image
}

// Composer assembles pages into PDF bytes, one page per image, in order.
// title goes into the document metadata; empty means none.
type Composer interface {
	Compose(title string, pages []Page) ([]byte, error)
}

// Sink persists the finished PDF at path.
type Sink interface {
	Write(path string, pdf []byte, pages int) (int64, error)
}
