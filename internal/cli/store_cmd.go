package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/coursetrack/internal/cli/formatter"
)

func newResetCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all saved progress and restore the catalog defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !promptYesNo("Clear all saved progress? [y/N] ") {
				fmt.Println("aborted")
				return nil
			}
			if !app.Tracker.Reset(context.Background()) {
				return fmt.Errorf("could not remove the saved record")
			}
			fmt.Println("progress cleared")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func newInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show storage diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatInfo(app.Tracker.StoreInfo(context.Background())))
			return nil
		},
	}
}
