// Package output writes finished PDFs to disk.
// Writes are atomic: the document goes to a temporary file next to the
// target, is optionally verified, then renamed over the target. A failed
// write never leaves a partial PDF behind.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/img2pdf/core"
)

// Writer implements core.Sink.
type Writer struct {
	// Verify re-reads the temporary file with pdfcpu before committing it.
	Verify bool
	log    logrus.FieldLogger
}

// New creates a Writer. A nil logger discards output.
func New(verify bool, log logrus.FieldLogger) *Writer {
	if log == nil {
		log = core.NopLogger()
	}
	return &Writer{Verify: verify, log: log}
}

// Write stores pdf at path, creating parent directories and overwriting an
// existing file. pages is the page count the document must have when
// verification is on. It returns the number of bytes written.
func (w *Writer) Write(path string, pdf []byte, pages int) (int64, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("%w: creating directory %s: %v", core.ErrEncode, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".img2pdf-*.pdf")
	if err != nil {
		return 0, fmt.Errorf("%w: creating temporary file in %s: %v", core.ErrEncode, dir, err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(pdf); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("%w: writing %s: %v", core.ErrEncode, path, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("%w: writing %s: %v", core.ErrEncode, path, err)
	}

	if w.Verify {
		if err := verify(tmpPath, pages); err != nil {
			return 0, fmt.Errorf("%w: %s: %v", core.ErrEncode, path, err)
		}
		w.log.WithField("pages", pages).Debug("pdf verified")
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", core.ErrEncode, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return 0, fmt.Errorf("%w: moving PDF into place at %s: %v", core.ErrEncode, path, err)
	}
	committed = true

	w.log.WithField("path", path).Debug("pdf written")
	return int64(len(pdf)), nil
}
