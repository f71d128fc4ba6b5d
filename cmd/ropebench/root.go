package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dshills/cartesian/internal/bench"
	"github.com/dshills/cartesian/internal/engine/rope"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel   string
	configPath string
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "ropebench",
		Short:         "Measure rope layouts",
		Long:          `ropebench builds random ropes from many concatenations and compares their access cost with the cost-optimal layout of the same chunks.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := parseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			rope.SetLogger(opts.logger)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML experiment configuration")

	cmd.AddCommand(newAdvantageCmd(opts))
	cmd.AddCommand(newLayoutCmd(opts))
	return cmd
}

// loadConfig returns the configuration file's values, or the defaults when
// no file was given.
func (o *rootOptions) loadConfig() (bench.Config, error) {
	if o.configPath == "" {
		return bench.DefaultConfig(), nil
	}
	return bench.LoadConfig(o.configPath)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
