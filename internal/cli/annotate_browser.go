package cli

import (
	"fmt"
	"strings"

	"github.com/Flyrell/coursecal/internal/app"
	"github.com/Flyrell/coursecal/internal/prefs"
	"github.com/Flyrell/coursecal/internal/schedule"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	codeColWidth   = 10
	statusColWidth = 12
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	footerStyle   = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
)

// annotateModel is the interactive course browser. Toggling a feature
// re-applies preferences through the service, like the extension popup.
type annotateModel struct {
	svc         *app.Service
	save        func(prefs.Prefs) error
	prefs       prefs.Prefs
	annotations []app.CourseAnnotation
	cursor      int
	scrollY     int
	termWidth   int
	termHeight  int
	footerMsg   string
}

func newAnnotateModel(svc *app.Service, annotations []app.CourseAnnotation, save func(prefs.Prefs) error) annotateModel {
	return annotateModel{
		svc:         svc,
		save:        save,
		prefs:       svc.Prefs(),
		annotations: annotations,
		termWidth:   100,
		termHeight:  30,
	}
}

func (m annotateModel) Init() tea.Cmd {
	return nil
}

// visibleRows leaves room for the toggle bar, the detail pane and the footer.
func (m annotateModel) visibleRows() int {
	available := m.termHeight - 12
	if available < 1 {
		return 1
	}
	if available > len(m.annotations) {
		return len(m.annotations)
	}
	return available
}

func (m annotateModel) ensureCursorVisible() annotateModel {
	if m.cursor < m.scrollY {
		m.scrollY = m.cursor
	}
	if m.cursor >= m.scrollY+m.visibleRows() {
		m.scrollY = m.cursor - m.visibleRows() + 1
	}
	if m.scrollY < 0 {
		m.scrollY = 0
	}
	return m
}

func (m annotateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m = m.ensureCursorVisible()
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "down", "j":
			if m.cursor < len(m.annotations)-1 {
				m.cursor++
				m = m.ensureCursorVisible()
			}
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m = m.ensureCursorVisible()
			}
		case "c":
			m.prefs.ShowConflicts = !m.prefs.ShowConflicts
			return m.apply(), nil
		case "s":
			m.prefs.ShowSeats = !m.prefs.ShowSeats
			return m.apply(), nil
		case "r":
			m.prefs.ShowRatings = !m.prefs.ShowRatings
			return m.apply(), nil
		case "t":
			m.prefs.ShowTimeWarnings = !m.prefs.ShowTimeWarnings
			return m.apply(), nil
		case "w":
			if m.save == nil {
				return m, nil
			}
			if err := m.save(m.prefs); err != nil {
				m.footerMsg = "Error saving: " + err.Error()
			} else {
				m.footerMsg = "Preferences saved"
			}
		}
	}
	return m, nil
}

func (m annotateModel) apply() annotateModel {
	resp := m.svc.Handle(app.Request{Action: app.ActionApplyPreferences, Prefs: &m.prefs})
	if resp.Err == nil {
		m.annotations = resp.Annotations
	}
	m.footerMsg = resp.Status()
	return m
}

func (m annotateModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s  %s  %s  %s",
		toggleLabel("c", "conflicts", m.prefs.ShowConflicts),
		toggleLabel("s", "seats", m.prefs.ShowSeats),
		toggleLabel("r", "ratings", m.prefs.ShowRatings),
		toggleLabel("t", "time warnings", m.prefs.ShowTimeWarnings))))
	b.WriteString("\n\n")

	end := m.scrollY + m.visibleRows()
	if end > len(m.annotations) {
		end = len(m.annotations)
	}
	for i := m.scrollY; i < end; i++ {
		a := m.annotations[i]
		row := padRight(a.Course.Code, codeColWidth) + " " + padRight(a.Status.String(), statusColWidth) + " " + a.Course.Name
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(padRight(a.Course.Code, codeColWidth) + " " + StatusColor(a.Status) +
				strings.Repeat(" ", statusColWidth-len(a.Status.String())) + " " + a.Course.Name)
		}
		b.WriteString("\n")
	}

	if len(m.annotations) > 0 && m.cursor < len(m.annotations) {
		b.WriteString("\n")
		b.WriteString(renderCourseDetail(m.annotations[m.cursor], m.prefs.ShowSeats))
	}

	b.WriteString("\n")
	if m.footerMsg != "" {
		b.WriteString(Info(m.footerMsg))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render("↑/↓ move  c/s/r/t toggle  w save  q quit"))
	return b.String()
}

func toggleLabel(key, name string, on bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s (%s)", box, name, key)
}

// renderCourseDetail lists the meetings, annotations and rating of one course.
func renderCourseDetail(a app.CourseAnnotation, showSeats bool) string {
	var b strings.Builder
	b.WriteString(Primary(a.Course.Code) + "  " + Text(a.Course.Name) + "\n")
	for _, mt := range a.Course.Meetings {
		b.WriteString("  " + Text(schedule.FormatMeeting(mt)) + "\n")
	}
	if a.ConflictWith != "" {
		b.WriteString("  " + Error("conflicts with "+a.ConflictWith) + "\n")
	}
	if showSeats && a.Course.Seats.Known {
		b.WriteString("  " + Silent(fmt.Sprintf("%d open seats", a.Course.Seats.Open)) + "\n")
	}
	if a.EarlyMorning {
		b.WriteString("  " + Warning("early morning") + "\n")
	}
	if a.LateNight {
		b.WriteString("  " + Warning("late night") + "\n")
	}
	if a.Rating.Found() {
		prof := a.Rating.Professor
		b.WriteString("  " + Text(fmt.Sprintf("%s  %.1f/5", prof.FullName(), prof.AvgRating)) + "\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
