package output

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating its config directory under the user's home.
	model.ConfigPath = "disable"
}

// verify checks that the file at path is a readable PDF with the expected
// number of pages.
func verify(path string, pages int) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return fmt.Errorf("validating PDF: %w", err)
	}

	n, err := api.PageCountFile(path)
	if err != nil {
		return fmt.Errorf("counting pages: %w", err)
	}
	if n != pages {
		return fmt.Errorf("document has %d pages, want %d", n, pages)
	}
	return nil
}
