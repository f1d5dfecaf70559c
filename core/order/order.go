// Package order resolves the page order of a conversion.
package order

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gaurav-prasanna/img2pdf/core"
)

// Spec is a page ordering instruction: either the discovery order or a
// custom permutation of 1-based discovery positions.
type Spec struct {
	positions []int
	custom    bool
}

// Default keeps the discovery order.
func Default() Spec {
	return Spec{}
}

// Custom orders pages by 1-based discovery position; Custom(3, 1, 2) puts
// the third discovered image first.
func Custom(positions ...int) Spec {
	return Spec{positions: append([]int(nil), positions...), custom: true}
}

// IsCustom reports whether the spec carries a custom permutation.
func (s Spec) IsCustom() bool {
	return s.custom
}

// Positions returns a copy of the custom positions.
func (s Spec) Positions() []int {
	return append([]int(nil), s.positions...)
}

func (s Spec) String() string {
	if !s.custom {
		return "default"
	}
	parts := make([]string, len(s.positions))
	for i, p := range s.positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, " ")
}

// Parse reads a custom order such as "3 1 2" or "3,1,2". Blank text
// means Default.
func Parse(text string) (Spec, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return Default(), nil
	}

	positions := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Spec{}, fmt.Errorf("%w: %q is not a number", core.ErrInvalidOrder, f)
		}
		positions[i] = n
	}
	return Custom(positions...), nil
}

// Validate checks that the spec is a permutation of 1..n.
func (s Spec) Validate(n int) error {
	if !s.custom {
		return nil
	}
	if len(s.positions) != n {
		return fmt.Errorf("%w: wrong length: got %d positions, want exactly %d", core.ErrInvalidOrder, len(s.positions), n)
	}
	seen := make([]bool, n+1)
	for _, p := range s.positions {
		if p < 1 || p > n {
			return fmt.Errorf("%w: position %d out of range 1-%d", core.ErrInvalidOrder, p, n)
		}
		if seen[p] {
			return fmt.Errorf("%w: duplicate position %d (use each number from 1 to %d exactly once)", core.ErrInvalidOrder, p, n)
		}
		seen[p] = true
	}
	return nil
}

// Resolve returns entries in the order described by spec. The input slice
// is never modified.
func Resolve(entries []core.ImageEntry, spec Spec) ([]core.ImageEntry, error) {
	if err := spec.Validate(len(entries)); err != nil {
		return nil, err
	}

	out := make([]core.ImageEntry, len(entries))
	if !spec.custom {
		copy(out, entries)
		return out, nil
	}
	for i, p := range spec.positions {
		out[i] = entries[p-1]
	}
	return out, nil
}
