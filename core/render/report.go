// Package render: conversion report renderers.
// A report summarizes a finished conversion: where the PDF went, how big it
// is and which image ended up on which page. Text is for people, JSON and
// YAML are for scripts.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/gaurav-prasanna/img2pdf/core"
)

// ReportRenderer serializes a conversion result.
type ReportRenderer interface {
	Render(res *core.Result) ([]byte, error)
}

// Report format names.
const (
	ReportText = "text"
	ReportJSON = "json"
	ReportYAML = "yaml"
)

// NewReportRenderer returns the renderer for the named format.
func NewReportRenderer(name string) (ReportRenderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ReportText:
		return TextReport{}, nil
	case ReportJSON:
		return JSONReport{}, nil
	case ReportYAML, "yml":
		return YAMLReport{}, nil
	default:
		return nil, fmt.Errorf("%w: report format %q (want text, json or yaml)", core.ErrInvalidOption, name)
	}
}

// TextReport renders a short human-readable summary.
type TextReport struct{}

func (TextReport) Render(res *core.Result) ([]byte, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ Written: %s\n", res.Output)
	fmt.Fprintf(&b, "  Pages: %d\n", len(res.Pages))
	fmt.Fprintf(&b, "  Size:  %.2f MB\n", float64(res.Bytes)/(1024*1024))
	return []byte(b.String()), nil
}

// JSONReport renders the result as indented JSON.
type JSONReport struct{}

func (JSONReport) Render(res *core.Result) ([]byte, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// YAMLReport renders the result as YAML.
type YAMLReport struct{}

func (YAMLReport) Render(res *core.Result) ([]byte, error) {
	data, err := yaml.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshaling YAML: %w", err)
	}
	return data, nil
}
