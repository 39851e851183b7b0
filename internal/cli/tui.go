package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/coursetrack/internal/cli/formatter"
	"github.com/alexanderramin/coursetrack/internal/domain"
	"github.com/alexanderramin/coursetrack/internal/state"
	"github.com/alexanderramin/coursetrack/internal/validate"
)

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}
}

func runTUI(app *App) error {
	p := tea.NewProgram(newTrackerModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// editField identifies which date the inline input is editing.
type editField int

const (
	editNone editField = iota
	editStart
	editEnd
)

// trackerRow is a flattened row in the checklist: either a week header
// or a course beneath it.
type trackerRow struct {
	isWeek    bool
	weekID    int
	courseID  string
	title     string
	completed bool
	progress  int
	startDate string
	endDate   string
}

type trackerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Start  key.Binding
	End    key.Binding
	Quit   key.Binding
}

func newTrackerKeyMap() trackerKeyMap {
	return trackerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		Start:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start date")),
		End:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end date")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// trackerModel is the root bubbletea Model for the checklist TUI.
type trackerModel struct {
	app      *App
	rows     []trackerRow
	cursor   int
	keys     trackerKeyMap
	width    int
	height   int
	quitting bool

	// Inline date editing state.
	editing editField
	input   textinput.Model
	editErr string
}

func newTrackerModel(app *App) trackerModel {
	ti := textinput.New()
	ti.Placeholder = domain.DateLayout
	ti.CharLimit = 10
	ti.Prompt = "date: "
	ti.PromptStyle = formatter.StyleHeader
	ti.TextStyle = formatter.StyleFg

	m := trackerModel{
		app:   app,
		keys:  newTrackerKeyMap(),
		input: ti,
	}
	m.rows = buildTrackerRows(app.Tracker.State())
	m.cursor = firstCourseRow(m.rows)
	return m
}

// buildTrackerRows flattens the week tree into display rows.
func buildTrackerRows(s domain.CurriculumState) []trackerRow {
	var rows []trackerRow
	for i := range s.Weeks {
		w := &s.Weeks[i]
		rows = append(rows, trackerRow{
			isWeek:   true,
			weekID:   w.ID,
			title:    w.Title,
			progress: w.Progress,
		})
		for j := range w.Courses {
			c := &w.Courses[j]
			row := trackerRow{
				weekID:    w.ID,
				courseID:  c.ID,
				title:     c.Name,
				completed: c.Completed,
			}
			if c.StartDate != nil {
				row.startDate = c.StartDate.Format(domain.DateLayout)
			}
			if c.EndDate != nil {
				row.endDate = c.EndDate.Format(domain.DateLayout)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func firstCourseRow(rows []trackerRow) int {
	for i, r := range rows {
		if !r.isWeek {
			return i
		}
	}
	return 0
}

func (m trackerModel) Init() tea.Cmd {
	return nil
}

func (m trackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing != editNone {
			return m.handleEditKey(msg)
		}
		return m.handleBrowseKey(msg)
	}

	if m.editing != editNone {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m trackerModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.cursor = m.moveCursor(1)

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.currentCourse(); ok {
			m.app.Tracker.Dispatch(context.Background(), state.Action{
				Type:     state.ToggleCompletion,
				WeekID:   row.weekID,
				CourseID: row.courseID,
			})
			m.rows = buildTrackerRows(m.app.Tracker.State())
		}

	case key.Matches(msg, m.keys.Start):
		if row, ok := m.currentCourse(); ok {
			m.beginEdit(editStart, row.startDate)
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.End):
		if row, ok := m.currentCourse(); ok {
			m.beginEdit(editEnd, row.endDate)
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m trackerModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = editNone
		m.editErr = ""
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		return m.commitEdit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *trackerModel) beginEdit(field editField, current string) {
	m.editing = field
	m.editErr = ""
	m.input.SetValue(current)
	m.input.CursorEnd()
	m.input.Focus()
}

// commitEdit validates the typed date against the course's opposite-side
// date and dispatches it. Validation failures keep the input open with the
// message shown beneath it.
func (m trackerModel) commitEdit() (tea.Model, tea.Cmd) {
	row, ok := m.currentCourse()
	if !ok {
		m.editing = editNone
		m.input.Blur()
		return m, nil
	}

	raw := strings.TrimSpace(m.input.Value())
	isStart := m.editing == editStart

	other := row.endDate
	if !isStart {
		other = row.startDate
	}
	if r := validate.CourseDate(raw, other, isStart, validate.Options{Required: true}); !r.Valid {
		m.editErr = r.Message
		return m, nil
	}

	date, err := validate.ParseDate(raw)
	if err != nil {
		m.editErr = "use YYYY-MM-DD format"
		return m, nil
	}

	actionType := state.SetEndDate
	if isStart {
		actionType = state.SetStartDate
	}
	m.app.Tracker.Dispatch(context.Background(), state.Action{
		Type:     actionType,
		WeekID:   row.weekID,
		CourseID: row.courseID,
		Date:     &date,
	})

	m.rows = buildTrackerRows(m.app.Tracker.State())
	m.editing = editNone
	m.editErr = ""
	m.input.Blur()
	return m, nil
}

// moveCursor advances past week header rows so the cursor only lands on courses.
func (m trackerModel) moveCursor(delta int) int {
	i := m.cursor
	for {
		i += delta
		if i < 0 || i >= len(m.rows) {
			return m.cursor
		}
		if !m.rows[i].isWeek {
			return i
		}
	}
}

func (m trackerModel) currentCourse() (trackerRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) || m.rows[m.cursor].isWeek {
		return trackerRow{}, false
	}
	return m.rows[m.cursor], true
}

func (m trackerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	r := m.app.Tracker.Statistics()
	b.WriteString(formatter.Header("Curriculum"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall  %s   %d/%d courses complete\n\n",
		formatter.RenderProgress(r.OverallPct, 20), r.CompletedCourses, r.TotalCourses))

	for i, row := range m.rows {
		if row.isWeek {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("%s  %s\n",
				formatter.Bold(row.title), formatter.RenderProgress(row.progress, 12)))
			continue
		}

		cursor := "  "
		if i == m.cursor {
			cursor = formatter.StyleHeader.Render("▸ ")
		}
		mark := formatter.Dim("[ ]")
		if row.completed {
			mark = formatter.StyleGreen.Render("[x]")
		}
		b.WriteString(fmt.Sprintf("%s%s %-30s %s\n",
			cursor, mark, row.title, formatter.Dim(rowDates(row))))
	}

	b.WriteString("\n")
	if m.editing != editNone {
		label := "start"
		if m.editing == editEnd {
			label = "end"
		}
		b.WriteString(fmt.Sprintf("set %s %s\n", label, m.input.View()))
		if m.editErr != "" {
			b.WriteString(formatter.StyleRed.Render(m.editErr) + "\n")
		}
		b.WriteString(formatter.Dim("enter: save  esc: cancel") + "\n")
	} else {
		b.WriteString(m.renderHelpBar() + "\n")
	}

	return b.String()
}

func (m trackerModel) renderHelpBar() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Start, m.keys.End, m.keys.Quit,
	}
	var hints []string
	for _, b := range bindings {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	return strings.Join(hints, "  ")
}

func rowDates(row trackerRow) string {
	switch {
	case row.startDate == "" && row.endDate == "":
		return ""
	case row.endDate == "":
		return row.startDate + " →"
	case row.startDate == "":
		return "→ " + row.endDate
	default:
		return row.startDate + " → " + row.endDate
	}
}
