package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gaurav-prasanna/img2pdf/core"
	"github.com/gaurav-prasanna/img2pdf/core/discover"
	"github.com/gaurav-prasanna/img2pdf/core/order"
)

const rule = "============================================================"

// maxAnswer bounds one line of input. Pasted paths may exceed the
// scanner's 64 KiB default.
const maxAnswer = 1 << 20

// shell gathers a conversion job through prompts. Invalid answers re-ask
// the same prompt; only end of input aborts.
type shell struct {
	in     *bufio.Scanner
	out    io.Writer
	finder *discover.Discoverer
}

func newShell(in io.Reader, out io.Writer, finder *discover.Discoverer) *shell {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxAnswer)
	return &shell{in: sc, out: out, finder: finder}
}

// Run walks the prompts (input, output, order) and returns the job.
// Preset values from flags or config skip their prompt.
func (s *shell) Run(preset settings) (*core.Job, error) {
	fmt.Fprintln(s.out, "🖼️  Interactive Image to PDF Converter")
	fmt.Fprintln(s.out, strings.Repeat("=", 40))

	entries, err := s.askInput()
	if err != nil {
		return nil, err
	}

	output := preset.Output
	if output == "" {
		if output, err = s.askOutput(entries); err != nil {
			return nil, err
		}
	}

	ordered, err := s.askOrder(entries, preset.Order)
	if err != nil {
		return nil, err
	}
	return core.NewJob(ordered, output)
}

// prompt prints label and reads one trimmed line.
func (s *shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("%w: reading answer: %v", ErrUsage, err)
		}
		fmt.Fprintln(s.out)
		return "", ErrNoInput
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *shell) askInput() ([]core.ImageEntry, error) {
	for {
		text, err := s.prompt("Enter image file(s) or directory path: ")
		if err != nil {
			return nil, err
		}
		path := unquote(text)
		if path == "" {
			fmt.Fprintln(s.out, "✗ No input provided, please enter a path.")
			continue
		}

		entries, err := s.finder.Find(path)
		if errors.Is(err, core.ErrInvalidInput) || errors.Is(err, core.ErrNoImagesFound) {
			fmt.Fprintf(s.out, "✗ %v\n", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		return entries, nil
	}
}

func (s *shell) askOutput(entries []core.ImageEntry) (string, error) {
	text, err := s.prompt(fmt.Sprintf("Enter output PDF filename (press Enter to choose a location for '%s'): ", core.DefaultOutputName))
	if err != nil {
		return "", err
	}
	if name := unquote(text); name != "" {
		return core.EnsurePDFExt(name), nil
	}

	fmt.Fprintln(s.out, "\nWhere do you want to save the PDF?")
	fmt.Fprintln(s.out, "1. Same location as the first image")
	fmt.Fprintln(s.out, "2. Custom location")
	for {
		choice, err := s.prompt("Enter your choice (1 or 2): ")
		if err != nil {
			return "", err
		}
		switch choice {
		case "1":
			return filepath.Join(filepath.Dir(entries[0].Path), core.DefaultOutputName), nil
		case "2":
			for {
				text, err := s.prompt("Enter full path for PDF (including filename): ")
				if err != nil {
					return "", err
				}
				if path := unquote(text); path != "" {
					return core.EnsurePDFExt(path), nil
				}
				fmt.Fprintln(s.out, "✗ Please enter a path.")
			}
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1 or 2.")
		}
	}
}

func (s *shell) askOrder(entries []core.ImageEntry, preset string) ([]core.ImageEntry, error) {
	s.list("FOUND IMAGES:", entries)

	if strings.TrimSpace(preset) != "" {
		spec, err := order.Parse(preset)
		if err == nil {
			var ordered []core.ImageEntry
			if ordered, err = order.Resolve(entries, spec); err == nil {
				return ordered, nil
			}
		}
		fmt.Fprintf(s.out, "✗ Configured order ignored: %v\n", err)
	}

	fmt.Fprintln(s.out, "\nHow would you like to arrange these images in the PDF?")
	fmt.Fprintln(s.out, "1. Default order (as listed above)")
	fmt.Fprintln(s.out, "2. Custom order (specify by numbers)")
	for {
		choice, err := s.prompt("\nEnter your choice (1 or 2): ")
		if err != nil {
			return nil, err
		}
		switch choice {
		case "1":
			return order.Resolve(entries, order.Default())
		case "2":
			return s.askCustomOrder(entries)
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please enter 1 or 2.")
		}
	}
}

func (s *shell) askCustomOrder(entries []core.ImageEntry) ([]core.ImageEntry, error) {
	n := len(entries)
	fmt.Fprintf(s.out, "\nEnter the order using numbers 1-%d separated by spaces.\n", n)
	fmt.Fprintln(s.out, "Example: 3 1 4 2 5 (to put image 3 first, then 1, then 4, etc.)")

	for {
		text, err := s.prompt("Order: ")
		if err != nil {
			return nil, err
		}

		spec, err := order.Parse(text)
		if err != nil {
			fmt.Fprintf(s.out, "✗ %v. Please enter only numbers separated by spaces.\n", err)
			continue
		}
		if !spec.IsCustom() {
			spec = order.Custom()
		}
		ordered, err := order.Resolve(entries, spec)
		if err != nil {
			fmt.Fprintf(s.out, "✗ %v\n", err)
			continue
		}

		s.list("New order:", ordered)
		confirm, err := s.prompt("\nConfirm this order? (y/n): ")
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(confirm) {
		case "y", "yes":
			return ordered, nil
		}
		fmt.Fprintln(s.out, "Let's try again...")
	}
}

// list prints entries numbered from 1.
func (s *shell) list(title string, entries []core.ImageEntry) {
	fmt.Fprintln(s.out, "\n"+rule)
	fmt.Fprintln(s.out, title)
	fmt.Fprintln(s.out, rule)
	for i, e := range entries {
		fmt.Fprintf(s.out, "%2d. %s\n", i+1, e.Name())
	}
	fmt.Fprintln(s.out, rule)
}

// unquote strips one pair of surrounding quotes, as pasted paths often
// carry them.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
