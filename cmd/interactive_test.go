package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/img2pdf/core"
	"github.com/gaurav-prasanna/img2pdf/core/discover"
)

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func runShell(t *testing.T, input string, preset settings) (*core.Job, string, error) {
	t.Helper()
	var out bytes.Buffer
	job, err := newShell(strings.NewReader(input), &out, discover.New(nil)).Run(preset)
	return job, out.String(), err
}

func jobNames(job *core.Job) []string {
	out := make([]string, len(job.Entries))
	for i, e := range job.Entries {
		out[i] = e.Name()
	}
	return out
}

func TestShell_DefaultOrder(t *testing.T) {
	dir := t.TempDir()
	writePNGs(t, dir, "b.png", "a.png")

	job, out, err := runShell(t, lines(dir, "album", "1"), settings{})
	require.NoError(t, err)
	assert.Equal(t, "album.pdf", job.Output)
	assert.Equal(t, []string{"a.png", "b.png"}, jobNames(job))
	assert.Contains(t, out, " 1. a.png")
	assert.Contains(t, out, " 2. b.png")
}

func TestShell_CustomOrderWithRetries(t *testing.T) {
	dir := t.TempDir()
	writePNGs(t, dir, "a.png", "b.png", "c.png")

	// Quoted paths are accepted.
	input := lines(
		`"`+dir+`"`,
		"out.pdf",
		"7",     // invalid choice
		"2",     // custom
		"1 1 2", // duplicate
		"1 2",   // wrong length
		"x y z", // not numbers
		"2 1 3", // valid
		"n",     // rejected on confirm
		"3 1 2",
		"yes",
	)
	job, out, err := runShell(t, input, settings{})
	require.NoError(t, err)

	assert.Equal(t, []string{"c.png", "a.png", "b.png"}, jobNames(job))
	assert.Contains(t, out, "Invalid choice. Please enter 1 or 2.")
	assert.Contains(t, out, "duplicate position 1")
	assert.Contains(t, out, "wrong length")
	assert.Contains(t, out, "not a number")
	assert.Contains(t, out, "Let's try again...")
	assert.Contains(t, out, "New order:")
}

func TestShell_RepromptsInvalidInput(t *testing.T) {
	dir := t.TempDir()
	writePNGs(t, dir, "a.png")
	empty := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	input := lines(
		"",
		filepath.Join(dir, "missing.png"),
		filepath.Join(dir, "notes.txt"),
		empty,
		dir,
		"out.pdf",
		"1",
	)
	job, out, err := runShell(t, input, settings{})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.png"}, jobNames(job))
	assert.Contains(t, out, "No input provided")
	assert.Contains(t, out, "missing.png")
	assert.Contains(t, out, "unsupported extension")
	assert.Contains(t, out, "no supported images found")
}

func TestShell_OutputLocation(t *testing.T) {
	dir := t.TempDir()
	writePNGs(t, dir, "a.png")
	custom := filepath.Join(t.TempDir(), "custom", "book")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"same location as first image", lines(dir, "", "3", "1", "1"), filepath.Join(dir, core.DefaultOutputName)},
		{"custom location", lines(dir, "", "2", "", custom, "1"), custom + ".pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, _, err := runShell(t, tt.input, settings{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, job.Output)
		})
	}
}

func TestShell_Presets(t *testing.T) {
	dir := t.TempDir()
	writePNGs(t, dir, "a.png", "b.png")

	job, out, err := runShell(t, lines(dir), settings{Output: "preset.pdf", Order: "2 1"})
	require.NoError(t, err)
	assert.Equal(t, "preset.pdf", job.Output)
	assert.Equal(t, []string{"b.png", "a.png"}, jobNames(job))
	assert.NotContains(t, out, "Enter output PDF filename")

	job, out, err = runShell(t, lines(dir, "1"), settings{Output: "preset.pdf", Order: "1 1"})
	require.NoError(t, err)
	assert.Contains(t, out, "Configured order ignored")
	assert.Equal(t, []string{"a.png", "b.png"}, jobNames(job))
}

func TestShell_LongAnswers(t *testing.T) {
	dir := t.TempDir()
	writePNGs(t, dir, "a.png")

	t.Run("long path is re-asked", func(t *testing.T) {
		long := filepath.Join(dir, strings.Repeat("x", 200*1024)+".png")
		job, out, err := runShell(t, lines(long, dir, "out", "1"), settings{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.png"}, jobNames(job))
		assert.Contains(t, out, "✗ ")
	})

	t.Run("line over the limit", func(t *testing.T) {
		_, _, err := runShell(t, lines(strings.Repeat("x", maxAnswer+1)), settings{})
		assert.ErrorIs(t, err, ErrUsage)
		assert.Equal(t, ExitUsage, exitCodeFor(err))
	})
}

func TestShell_EndOfInput(t *testing.T) {
	dir := t.TempDir()
	writePNGs(t, dir, "a.png")

	for _, input := range []string{"", lines(dir), lines(dir, "out", "2")} {
		_, _, err := runShell(t, input, settings{})
		assert.ErrorIs(t, err, ErrNoInput)
	}
}

func TestRoot_InteractiveMode(t *testing.T) {
	dir := t.TempDir()
	writePNGs(t, dir, "a.png", "b.png")
	out := filepath.Join(dir, "result.pdf")

	res := execute(t, lines(dir, out, "2", "2 1", "y"))
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Interactive Image to PDF Converter")
	assert.Contains(t, res.stdout, "✓ Written: "+out)
	assert.Equal(t, 2, pageCount(t, out))
}

func TestRoot_InteractiveNoInput(t *testing.T) {
	res := execute(t, "")
	require.Error(t, res.err)
	assert.Equal(t, ExitUsage, exitCodeFor(res.err))
}

func TestUnquote(t *testing.T) {
	tests := map[string]string{
		`"/a b/c"`: "/a b/c",
		`'/a/c'`:   "/a/c",
		`/plain`:   "/plain",
		`"`:        `"`,
		`"mixed'`:  `"mixed'`,
		"  x  ":    "x",
	}
	for in, want := range tests {
		assert.Equal(t, want, unquote(in), in)
	}
}
