package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marek-kar/attrisk/pkg/model"
	"github.com/marek-kar/attrisk/pkg/roster"
)

func newRosterCmd(a *app) *cobra.Command {
	var (
		path       string
		search     string
		department string
		risk       string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List employees filtered by name or role, department and risk level",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := roster.ParseCriteria(search, department, risk)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd, format)
			if err != nil {
				return err
			}

			records, err := a.loadRoster(a.rosterPath(cmd, path))
			if err != nil {
				return err
			}

			view := roster.Query(records, c).View()
			a.logger.Debug("roster query",
				zap.String("search", c.Search),
				zap.String("department", string(c.Department)),
				zap.String("risk", string(c.Risk)),
				zap.Int("matched", view.Matched),
			)
			a.metrics.ObserveQuery(view)
			return r.RenderRoster(cmd.OutOrStdout(), view)
		},
	}

	f := cmd.Flags()
	f.StringVar(&path, "roster", "", "roster file (.json, .yaml or .csv); built-in sample when empty")
	f.StringVarP(&search, "search", "s", "", "case-insensitive substring of name or role")
	f.StringVarP(&department, "department", "d", roster.All, "department filter or all")
	f.StringVarP(&risk, "risk", "r", roster.All, "risk level filter (low, medium, high) or all")
	f.StringVarP(&format, "format", "o", "table", "output format: table, json or csv")

	return cmd
}

func newSummaryCmd(a *app) *cobra.Command {
	var path, format string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show headline retention metrics for the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.renderer(cmd, format)
			if err != nil {
				return err
			}
			records, err := a.loadRoster(a.rosterPath(cmd, path))
			if err != nil {
				return err
			}

			s := roster.Summarize(records)
			a.metrics.ObserveSummary(s)
			return r.RenderSummary(cmd.OutOrStdout(), s)
		},
	}

	cmd.Flags().StringVar(&path, "roster", "", "roster file (.json, .yaml or .csv); built-in sample when empty")
	cmd.Flags().StringVarP(&format, "format", "o", "table", "output format: table, json or csv")

	return cmd
}

func (a *app) loadRoster(path string) ([]model.EmployeeRecord, error) {
	if path == "" {
		records := roster.Sample()
		a.logger.Debug("using sample roster", zap.Int("records", len(records)))
		return records, nil
	}

	records, err := roster.Load(path)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded roster", zap.String("path", path), zap.Int("records", len(records)))
	return records, nil
}
