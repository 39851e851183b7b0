package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/coursetrack/internal/cli/formatter"
	"github.com/alexanderramin/coursetrack/internal/state"
	"github.com/alexanderramin/coursetrack/internal/validate"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan WEEK COURSE",
		Short: "Set a course's start and end dates interactively",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekID, courseID, err := resolveCourseArgs(app, args[0], args[1])
			if err != nil {
				return err
			}

			startVal := otherDate(app, weekID, courseID, false)
			endVal := otherDate(app, weekID, courseID, true)

			form := planForm(&startVal, &endVal)
			if err := form.Run(); err != nil {
				return err
			}

			// The per-field validators only catch format problems; the
			// pair is checked here before anything is dispatched.
			if r := validate.DateRange(startVal, endVal, validate.Options{}); !r.Valid {
				return errors.New(r.Message)
			}

			ctx := context.Background()
			if err := dispatchDate(ctx, app, weekID, courseID, startVal, true); err != nil {
				return err
			}
			if err := dispatchDate(ctx, app, weekID, courseID, endVal, false); err != nil {
				return err
			}

			fmt.Printf("%s planned  %s → %s\n",
				formatter.CourseID(weekID, courseID), orDash(startVal), orDash(endVal))
			return nil
		},
	}
}

// planForm collects an optional start and end date.
func planForm(startVal, endVal *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			dateInput("Start Date (YYYY-MM-DD, blank for none)", startVal),
			dateInput("End Date (YYYY-MM-DD, blank for none)", endVal),
		),
	).WithTheme(trackerHuhTheme()).WithShowHelp(false)
}

// dateInput returns a huh.Input for an optional date field with YYYY-MM-DD validation.
func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if r := validate.Date(s, validate.Options{}); !r.Valid {
		return errors.New("use YYYY-MM-DD format")
	}
	return nil
}

func dispatchDate(ctx context.Context, app *App, weekID int, courseID, raw string, isStart bool) error {
	if raw == "" {
		return nil
	}
	date, err := validate.ParseDate(raw)
	if err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", raw)
	}
	actionType := state.SetEndDate
	if isStart {
		actionType = state.SetStartDate
	}
	app.Tracker.Dispatch(ctx, state.Action{
		Type:     actionType,
		WeekID:   weekID,
		CourseID: courseID,
		Date:     &date,
	})
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func trackerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
