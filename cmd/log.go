package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/img2pdf/core"
)

// initLogger points the logger at stderr with the configured level.
func (a *app) initLogger(cmd *cobra.Command) error {
	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidOption, err)
	}
	a.log.SetOutput(cmd.ErrOrStderr())
	a.log.SetLevel(level)
	a.log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableQuote:     true,
	})
	return nil
}
