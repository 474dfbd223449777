package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marek-kar/attrisk/pkg/config"
	"github.com/marek-kar/attrisk/pkg/logging"
	"github.com/marek-kar/attrisk/pkg/metrics"
	"github.com/marek-kar/attrisk/pkg/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags and environment have
// been read.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	metrics *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "attrisk",
		Short:        "Score employee attrition risk and browse the employee roster",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			a.metrics = metrics.NewRecorder()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = a.logger.Sync() }()
			if a.cfg.MetricsFile == "" {
				return nil
			}
			if err := a.metrics.WriteFile(a.cfg.MetricsFile); err != nil {
				return err
			}
			a.logger.Debug("metrics written", zap.String("path", a.cfg.MetricsFile))
			return nil
		},
	}

	root.AddCommand(newAssessCmd(a), newRosterCmd(a), newSummaryCmd(a))
	return root
}

// renderer picks the --format flag when set, else the configured default.
func (a *app) renderer(cmd *cobra.Command, flagValue string) (render.Renderer, error) {
	value := a.cfg.Format
	if cmd.Flags().Changed("format") {
		value = flagValue
	}
	f, err := render.ParseFormat(value)
	if err != nil {
		return nil, err
	}
	return render.New(f), nil
}

func (a *app) rosterPath(cmd *cobra.Command, flagValue string) string {
	if cmd.Flags().Changed("roster") {
		return flagValue
	}
	return a.cfg.RosterPath
}
