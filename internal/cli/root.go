package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/coursetrack/internal/session"
)

// App holds everything CLI commands need: the session controller that owns
// the live state, and an interactivity probe for the TUI entrypoint.
type App struct {
	Tracker *session.Controller

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "coursetrack" command and registers all
// subcommands against the provided App. Running with no subcommand on an
// interactive terminal opens the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "coursetrack",
		Short:         "Curriculum progress tracker",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newStatusCmd(app),
		newListCmd(app),
		newToggleCmd(app),
		newStartCmd(app),
		newEndCmd(app),
		newPlanCmd(app),
		newResetCmd(app),
		newInfoCmd(app),
		newTUICmd(app),
	)

	return root
}
