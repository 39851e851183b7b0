package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/coursetrack/internal/cli/formatter"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show per-week and overall completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatStatus(app.Tracker.State(), app.Tracker.Statistics()))
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every course with its completion mark and dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatWeeks(app.Tracker.State()))
			return nil
		},
	}
}
