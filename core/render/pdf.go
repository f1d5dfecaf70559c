// Package render: PDF renderer.
// Lays out images with gofpdf, one image per page. Each page is exactly
// the size of its image at the configured resolution, so images are never
// scaled or cropped by the layout.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/img2pdf/core"
)

const (
	pointsPerInch = 72.0
	jpegQuality   = 95
)

// creationDate is stamped on every document so identical inputs produce
// identical bytes.
var creationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// PDFRenderer composes image pages into a PDF document.
type PDFRenderer struct {
	Resolution float64 // DPI
}

// NewPDFRenderer creates a PDFRenderer. A non-positive resolution falls
// back to core.DefaultResolution.
func NewPDFRenderer(resolution float64) *PDFRenderer {
	if resolution <= 0 {
		resolution = core.DefaultResolution
	}
	return &PDFRenderer{Resolution: resolution}
}

// Compose renders pages, in order, into PDF bytes titled title.
func (r *PDFRenderer) Compose(title string, pages []core.Page) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages to render")
	}

	first := r.pageSize(pages[0].Image)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           first,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("img2pdf", true)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	pdf.SetCreationDate(creationDate)
	pdf.SetCatalogSort(true)

	for i, page := range pages {
		data, err := encodeJPEG(page.Image)
		if err != nil {
			return nil, fmt.Errorf("encoding page %d (%s): %w", i+1, page.Entry.Name(), err)
		}

		name := fmt.Sprintf("page-%04d", i+1)
		opts := gofpdf.ImageOptions{ImageType: "JPG"}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))

		size := r.pageSize(page.Image)
		pdf.AddPageFormat("P", size)
		pdf.ImageOptions(name, 0, 0, size.Wd, size.Ht, false, opts, 0, "")

		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("placing page %d (%s): %w", i+1, page.Entry.Name(), err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pageSize converts pixel dimensions to points.
func (r *PDFRenderer) pageSize(img image.Image) gofpdf.SizeType {
	b := img.Bounds()
	return gofpdf.SizeType{
		Wd: float64(b.Dx()) * pointsPerInch / r.Resolution,
		Ht: float64(b.Dy()) * pointsPerInch / r.Resolution,
	}
}

// encodeJPEG serializes a normalized page. Gray images produce a
// single-channel JPEG, which gofpdf embeds as DeviceGray.
func encodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
