// Package discover finds the image files to convert.
// A single directory is scanned (non-recursively) and its images sorted by
// name; an explicit list of paths keeps the caller's order.
package discover

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/img2pdf/core"
	"github.com/gaurav-prasanna/img2pdf/core/format"
)

// Discoverer resolves input paths into image entries.
type Discoverer struct {
	log logrus.FieldLogger
}

// New creates a Discoverer. A nil logger discards output.
func New(log logrus.FieldLogger) *Discoverer {
	if log == nil {
		log = core.NopLogger()
	}
	return &Discoverer{log: log}
}

// Find returns the images named by inputs, indexed in discovery order.
//
// One directory yields its supported files sorted by name. Files must
// exist and carry a known extension. With several inputs the given order is
// kept, directories expand in place and repeated paths are kept once.
func (d *Discoverer) Find(inputs ...string) ([]core.ImageEntry, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no input paths given", core.ErrInvalidInput)
	}

	set := newOrderedSet()
	for _, input := range inputs {
		paths, err := d.expand(input)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			if !set.Add(p) {
				d.log.WithField("path", p).Warn("duplicate input ignored")
			}
		}
	}

	if set.Len() == 0 {
		return nil, fmt.Errorf("%w in %s (supported: %s)",
			core.ErrNoImagesFound, strings.Join(inputs, ", "), strings.Join(format.Extensions(), " "))
	}

	entries := make([]core.ImageEntry, 0, set.Len())
	for i, p := range set.All() {
		f, _ := format.ForPath(p)
		entries = append(entries, core.ImageEntry{Path: p, Format: f, Index: i})
	}
	d.log.WithField("count", len(entries)).Debug("images discovered")
	return entries, nil
}

// expand turns one input into absolute image paths.
func (d *Discoverer) expand(input string) ([]string, error) {
	abs, err := filepath.Abs(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrInvalidInput, input, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s: no such file or directory", core.ErrInvalidInput, input)
		}
		return nil, fmt.Errorf("%w: %s: %v", core.ErrInvalidInput, input, err)
	}

	if info.IsDir() {
		return scanDir(abs)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s: not a regular file", core.ErrInvalidInput, input)
	}
	if _, ok := format.ForPath(abs); !ok {
		return nil, fmt.Errorf("%w: %s: unsupported extension %q (supported: %s)",
			core.ErrInvalidInput, input, filepath.Ext(abs), strings.Join(format.Extensions(), " "))
	}
	return []string{abs}, nil
}

// scanDir lists the supported regular files directly inside dir, sorted by name.
func scanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading directory %s: %v", core.ErrInvalidInput, dir, err)
	}

	var paths []string
	for _, e := range entries {
		if _, ok := format.ForPath(e.Name()); !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !isRegular(path, e) {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}

// isRegular reports whether the entry is a regular file, following symlinks.
func isRegular(path string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
