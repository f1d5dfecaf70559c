// Package cmd implements the img2pdf command line using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries the per-invocation state shared by the command hooks.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New()}

	cmd := &cobra.Command{
		Use:   "img2pdf [images... | directory]",
		Short: "img2pdf — convert images into a single PDF",
		Long: `img2pdf bundles JPEG, PNG, WebP, HEIC/HEIF, BMP and TIFF images into one
PDF document with one page per image.

Give a directory to convert every image in it (sorted by name), or list the
files in the order you want them. Run without arguments for interactive mode.

Examples:
  img2pdf ./photos -o album.pdf
  img2pdf photo1.jpg photo2.png -o combined.pdf
  img2pdf ./scans --order "3 1 2" --max-dimension 2000
  img2pdf                      # interactive mode`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.preRun,
		RunE:              a.run,
	}

	addFlags(cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", "", `output PDF path (default "converted_images.pdf")`)
	flags.String("order", "", `custom page order as 1-based positions, e.g. "3 1 2"`)
	flags.Int("max-dimension", 0, "downsample pages whose longer edge exceeds this many pixels (0 = off)")
	flags.String("color-mode", "as-is", "page color mode: as-is, rgb or gray")
	flags.Float64("resolution", 100, "page resolution in DPI")
	flags.Bool("verify", true, "validate the written PDF before replacing the output file")
	flags.String("report", "text", "summary format printed after conversion: text, json or yaml")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("config", "", "config file (default: ./img2pdf.yaml or ~/.config/img2pdf/img2pdf.yaml)")
}

// preRun loads configuration and sets up logging before any work starts.
func (a *app) preRun(cmd *cobra.Command, _ []string) error {
	if err := a.initConfig(cmd); err != nil {
		return err
	}
	return a.initLogger(cmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
