// Package convert runs a conversion job end to end:
// decode → normalize → compose → write.
//
// A job is all or nothing. The first image that cannot be decoded aborts
// the run and no PDF is written.
package convert

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/img2pdf/core"
	"github.com/gaurav-prasanna/img2pdf/core/decode"
	"github.com/gaurav-prasanna/img2pdf/core/normalize"
	"github.com/gaurav-prasanna/img2pdf/core/output"
	"github.com/gaurav-prasanna/img2pdf/core/render"
)

// Converter wires the pipeline stages together.
type Converter struct {
	Decoder    core.Decoder
	Normalizer core.Normalizer
	Composer   core.Composer
	Sink       core.Sink
	Log        logrus.FieldLogger
}

// New builds a Converter from options using the default stage
// implementations.
func New(opts core.Options, log logrus.FieldLogger) *Converter {
	if log == nil {
		log = core.NopLogger()
	}
	return &Converter{
		Decoder:    decode.New(),
		Normalizer: normalize.New(opts),
		Composer:   render.NewPDFRenderer(opts.Resolution),
		Sink:       output.New(opts.Verify, log),
		Log:        log,
	}
}

// Convert decodes every image of job in order and writes one PDF with a
// page per image to job.Output.
func (c *Converter) Convert(ctx context.Context, job *core.Job) (*core.Result, error) {
	if job == nil || len(job.Entries) == 0 {
		return nil, fmt.Errorf("%w: conversion job has no images", core.ErrNoImagesFound)
	}

	total := len(job.Entries)
	c.Log.WithFields(logrus.Fields{"images": total, "output": job.Output}).Info("converting")

	pages := make([]core.Page, 0, total)
	infos := make([]core.PageInfo, 0, total)
	for i, entry := range job.Entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c.Log.WithFields(logrus.Fields{
			"page":   i + 1,
			"of":     total,
			"path":   entry.Path,
			"format": entry.Format,
		}).Infof("processing image %d/%d: %s", i+1, total, entry.Name())

		img, err := c.Decoder.Decode(entry.Path, entry.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", core.ErrDecode, entry.Path, err)
		}
		src := img.Bounds()

		norm := c.Normalizer.Normalize(img)
		dst := norm.Bounds()

		pages = append(pages, core.Page{Entry: entry, Image: norm})
		infos = append(infos, core.PageInfo{
			Number:       i + 1,
			Source:       entry.Path,
			Format:       entry.Format,
			SourceWidth:  src.Dx(),
			SourceHeight: src.Dy(),
			Width:        dst.Dx(),
			Height:       dst.Dy(),
		})
	}

	pdf, err := c.Composer.Compose(job.Title(), pages)
	if err != nil {
		return nil, fmt.Errorf("%w: composing %s: %v", core.ErrEncode, job.Output, err)
	}

	n, err := c.Sink.Write(job.Output, pdf, len(pages))
	if err != nil {
		if !errors.Is(err, core.ErrEncode) {
			err = fmt.Errorf("%w: %s: %v", core.ErrEncode, job.Output, err)
		}
		return nil, err
	}

	c.Log.WithFields(logrus.Fields{"pages": len(pages), "bytes": n}).Info("pdf created")
	return &core.Result{Output: job.Output, Bytes: n, Pages: infos}, nil
}
