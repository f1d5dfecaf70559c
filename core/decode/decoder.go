// Package decode reads image files into pixel buffers.
// Every supported format has its own decoder; HEIC/HEIF goes through the
// dedicated libheif-based codec from gen2brain/heic.
package decode

import (
	"bufio"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/gen2brain/heic"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gaurav-prasanna/img2pdf/core/format"
)

// Func decodes one image stream.
type Func func(r io.Reader) (image.Image, error)

var decoders = map[format.Format]Func{
	format.JPEG: jpeg.Decode,
	format.PNG:  png.Decode,
	format.WEBP: webp.Decode,
	format.HEIC: heic.Decode,
	format.BMP:  bmp.Decode,
	format.TIFF: tiff.Decode,
}

// ImageDecoder implements core.Decoder.
type ImageDecoder struct {
	decoders map[format.Format]Func
}

// New creates an ImageDecoder with a decoder for every supported format.
func New() *ImageDecoder {
	return &ImageDecoder{decoders: decoders}
}

// Decode opens path and decodes it with the decoder registered for f.
func (d *ImageDecoder) Decode(path string, f format.Format) (image.Image, error) {
	fn, ok := d.decoders[f]
	if !ok {
		return nil, fmt.Errorf("no decoder for format %q", f)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, err := fn(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f, err)
	}
	return img, nil
}
