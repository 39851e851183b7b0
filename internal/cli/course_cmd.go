package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/coursetrack/internal/cli/formatter"
	"github.com/alexanderramin/coursetrack/internal/domain"
	"github.com/alexanderramin/coursetrack/internal/state"
	"github.com/alexanderramin/coursetrack/internal/validate"
)

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle WEEK COURSE",
		Aliases: []string{"done"},
		Short:   "Toggle a course's completion flag",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekID, courseID, err := resolveCourseArgs(app, args[0], args[1])
			if err != nil {
				return err
			}

			got := app.Tracker.Dispatch(context.Background(), state.Action{
				Type:     state.ToggleCompletion,
				WeekID:   weekID,
				CourseID: courseID,
			})

			wi := got.FindWeek(weekID)
			w := got.Weeks[wi]
			mark := "incomplete"
			if w.Courses[w.FindCourse(courseID)].Completed {
				mark = "complete"
			}
			fmt.Printf("%s marked %s  %s\n",
				formatter.CourseID(weekID, courseID), mark, formatter.RenderProgress(w.Progress, 12))
			return nil
		},
	}
}

func newStartCmd(app *App) *cobra.Command {
	return newDateCmd(app, true)
}

func newEndCmd(app *App) *cobra.Command {
	return newDateCmd(app, false)
}

func newDateCmd(app *App, isStart bool) *cobra.Command {
	use, short, actionType := "start", "Set a course's start date", state.SetStartDate
	if !isStart {
		use, short, actionType = "end", "Set a course's end date", state.SetEndDate
	}

	var force bool
	cmd := &cobra.Command{
		Use:   use + " WEEK COURSE DATE",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekID, courseID, err := resolveCourseArgs(app, args[0], args[1])
			if err != nil {
				return err
			}
			raw := args[2]

			// Validation is advisory and happens here, at the dispatch
			// boundary: the reducer itself stores whatever it is given.
			if !force {
				other := otherDate(app, weekID, courseID, isStart)
				if r := validate.CourseDate(raw, other, isStart, validate.Options{Required: true}); !r.Valid {
					return errors.New(r.Message)
				}
			}

			date, err := validate.ParseDate(raw)
			if err != nil {
				return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", raw)
			}

			app.Tracker.Dispatch(context.Background(), state.Action{
				Type:     actionType,
				WeekID:   weekID,
				CourseID: courseID,
				Date:     &date,
			})
			fmt.Printf("%s %s date set to %s\n", formatter.CourseID(weekID, courseID), use, raw)
			return nil
		},
	}

	addForceFlag(cmd.Flags(), &force)
	return cmd
}

// addForceFlag registers the flag that skips advisory date validation.
func addForceFlag(fs *pflag.FlagSet, force *bool) {
	fs.BoolVar(force, "force", false, "store the date even if validation rejects it")
}

// resolveCourseArgs parses and checks the WEEK and COURSE positional args
// against the current tree, so commands fail with a clear message instead
// of silently no-opping in the reducer.
func resolveCourseArgs(app *App, weekArg, courseArg string) (int, string, error) {
	weekID, err := strconv.Atoi(weekArg)
	if err != nil || weekID <= 0 {
		return 0, "", fmt.Errorf("week must be a positive integer, got %q", weekArg)
	}

	s := app.Tracker.State()
	wi := s.FindWeek(weekID)
	if wi < 0 {
		return 0, "", fmt.Errorf("week %d not found", weekID)
	}
	if s.Weeks[wi].FindCourse(courseArg) < 0 {
		return 0, "", fmt.Errorf("course %q not found in week %d (try 'coursetrack list')", courseArg, weekID)
	}
	return weekID, courseArg, nil
}

// otherDate returns the course's existing opposite-side date as a string,
// for range validation. Empty when unset.
func otherDate(app *App, weekID int, courseID string, isStart bool) string {
	s := app.Tracker.State()
	wi := s.FindWeek(weekID)
	if wi < 0 {
		return ""
	}
	ci := s.Weeks[wi].FindCourse(courseID)
	if ci < 0 {
		return ""
	}
	c := s.Weeks[wi].Courses[ci]
	var t = c.EndDate
	if !isStart {
		t = c.StartDate
	}
	if t == nil {
		return ""
	}
	return t.Format(domain.DateLayout)
}
