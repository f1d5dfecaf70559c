// Package normalize prepares decoded images for PDF embedding.
// It downsamples oversized images and converts every image to a color
// model a PDF image XObject can carry (DeviceRGB or DeviceGray), flattening
// transparency against a white background.
package normalize

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/gaurav-prasanna/img2pdf/core"
)

// Background is the color transparent pixels are flattened against.
var Background color.Color = color.White

// ImageNormalizer implements core.Normalizer.
type ImageNormalizer struct {
	MaxDimension int
	Mode         core.ColorMode
}

// New creates an ImageNormalizer from conversion options.
func New(opts core.Options) *ImageNormalizer {
	mode := opts.ColorMode
	if mode == "" {
		mode = core.ColorAsIs
	}
	return &ImageNormalizer{MaxDimension: opts.MaxDimension, Mode: mode}
}

// Normalize returns an opaque *image.NRGBA, or an *image.Gray when the
// mode asks for gray or the source is already grayscale in as-is mode.
func (n *ImageNormalizer) Normalize(img image.Image) image.Image {
	gray := n.Mode == core.ColorGray || (n.Mode == core.ColorAsIs && isGray(img))

	img = n.resize(img)
	flat := flatten(img)
	if gray {
		return toGray(flat)
	}
	return flat
}

// resize shrinks img so its longer edge fits MaxDimension, keeping the
// aspect ratio. Images already within bounds are returned unchanged.
func (n *ImageNormalizer) resize(img image.Image) image.Image {
	if n.MaxDimension <= 0 {
		return img
	}
	b := img.Bounds()
	if max(b.Dx(), b.Dy()) <= n.MaxDimension {
		return img
	}
	return imaging.Fit(img, n.MaxDimension, n.MaxDimension, imaging.Lanczos)
}

// flatten composites img over the background color.
func flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), Background)
	return imaging.Overlay(bg, img, image.Pt(0, 0), 1.0)
}

func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

func isGray(img image.Image) bool {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return true
	}
	return false
}
