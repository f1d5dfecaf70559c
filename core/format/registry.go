// Package format is the registry of supported image formats.
// It maps file extensions to a format tag and is used both to filter
// directory scans and to validate explicitly listed files.
package format

import (
	"path/filepath"
	"sort"
	"strings"
)

// Format tags a supported raster image encoding.
type Format string

const (
	JPEG Format = "jpeg"
	PNG  Format = "png"
	WEBP Format = "webp"
	HEIC Format = "heic"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// extensions maps a lower-cased file extension to its format.
var extensions = map[string]Format{
	".jpg":  JPEG,
	".jpeg": JPEG,
	".png":  PNG,
	".webp": WEBP,
	".heic": HEIC,
	".heif": HEIC,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
}

// For returns the format registered for ext. The lookup is
// case-insensitive and accepts the extension with or without its dot.
func For(ext string) (Format, bool) {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	f, ok := extensions[ext]
	return f, ok
}

// ForPath returns the format of the file at path, judged by its extension.
// A dotfile such as ".png" has no extension.
func ForPath(path string) (Format, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == base {
		return "", false
	}
	return For(ext)
}

// Extensions returns every recognized extension, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(extensions))
	for ext := range extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// All returns the supported formats in a stable order.
func All() []Format {
	return []Format{JPEG, PNG, WEBP, HEIC, BMP, TIFF}
}

// String returns the upper-case name of the format (e.g. "HEIC").
func (f Format) String() string {
	return strings.ToUpper(string(f))
}
