package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/img2pdf/core"
	"github.com/gaurav-prasanna/img2pdf/core/render"
)

// settings is the resolved configuration of one run. Precedence: flags,
// then IMG2PDF_* environment variables, then the config file, then defaults.
type settings struct {
	Output   string
	Order    string
	Report   string
	LogLevel string
	Options  core.Options
}

// initConfig binds the command's flags into viper and reads the config file.
func (a *app) initConfig(cmd *cobra.Command) error {
	v := a.v
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return fmt.Errorf("%w: config file: %v", ErrUsage, err)
		}
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("img2pdf")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "img2pdf"))
		}
	}

	v.SetEnvPrefix("IMG2PDF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("%w: reading config: %v", ErrUsage, err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

// settings reads and validates the effective configuration.
func (a *app) settings() (settings, error) {
	v := a.v
	mode, err := core.ParseColorMode(v.GetString("color-mode"))
	if err != nil {
		return settings{}, err
	}

	s := settings{
		Output:   strings.TrimSpace(v.GetString("output")),
		Order:    v.GetString("order"),
		Report:   v.GetString("report"),
		LogLevel: v.GetString("log-level"),
		Options: core.Options{
			MaxDimension: v.GetInt("max-dimension"),
			ColorMode:    mode,
			Resolution:   v.GetFloat64("resolution"),
			Verify:       v.GetBool("verify"),
		},
	}
	if err := s.Options.Validate(); err != nil {
		return settings{}, err
	}
	if _, err := render.NewReportRenderer(s.Report); err != nil {
		return settings{}, err
	}
	return s, nil
}
