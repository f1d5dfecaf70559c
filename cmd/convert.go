package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/img2pdf/core"
	"github.com/gaurav-prasanna/img2pdf/core/convert"
	"github.com/gaurav-prasanna/img2pdf/core/discover"
	"github.com/gaurav-prasanna/img2pdf/core/order"
	"github.com/gaurav-prasanna/img2pdf/core/render"
)

// run dispatches to interactive mode when no inputs are given.
func (a *app) run(cmd *cobra.Command, args []string) error {
	s, err := a.settings()
	if err != nil {
		return err
	}

	var job *core.Job
	if len(args) == 0 {
		job, err = newShell(cmd.InOrStdin(), cmd.OutOrStdout(), discover.New(a.log)).Run(s)
	} else {
		job, err = a.buildJob(args, s)
	}
	if err != nil {
		return err
	}
	return a.invoke(cmd, job, s)
}

// buildJob drives discovery and ordering from command-line arguments.
func (a *app) buildJob(args []string, s settings) (*core.Job, error) {
	entries, err := discover.New(a.log).Find(args...)
	if err != nil {
		return nil, err
	}

	spec, err := order.Parse(s.Order)
	if err != nil {
		return nil, err
	}
	ordered, err := order.Resolve(entries, spec)
	if err != nil {
		return nil, err
	}

	output := s.Output
	if output == "" {
		output = core.DefaultOutputName
	}
	return core.NewJob(ordered, output)
}

// invoke converts the job and prints the report.
func (a *app) invoke(cmd *cobra.Command, job *core.Job, s settings) error {
	reporter, err := render.NewReportRenderer(s.Report)
	if err != nil {
		return err
	}

	res, err := convert.New(s.Options, a.log).Convert(cmd.Context(), job)
	if err != nil {
		return err
	}

	data, err := reporter.Render(res)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
