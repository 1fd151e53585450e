package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/chris/zendo/internal/store"
)

const (
	dashboardUpcoming = 3
	dashboardNotes    = 3
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.store.Tasks()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case " ", "x":
		if m.cursor < len(tasks) {
			if t, ok := m.store.ToggleTask(tasks[m.cursor].ID); ok {
				state := "reopened"
				if t.IsCompleted {
					state = "completed"
				}
				m.Status = StatusBar{Text: fmt.Sprintf("%s %q", state, t.Title)}
			}
		}
	}
	return m, nil
}

func (m Model) dashboardView() string {
	snap := m.store.Snapshot()
	cats := make(map[string]store.Category, len(snap.Categories))
	for _, c := range snap.Categories {
		cats[c.ID] = c
	}

	var b strings.Builder
	p := m.store.Progress()
	fmt.Fprintf(&b, "%s\n%s %d/%d done\n",
		m.styles.section.Render("Progress"),
		m.progress.ViewAs(float64(p.Percent)/100), p.Completed, p.Total)

	b.WriteString(m.styles.section.Render("Tasks") + "\n")
	if len(snap.Tasks) == 0 {
		b.WriteString(m.styles.dim.Render("  no tasks yet") + "\n")
	}
	for i, t := range snap.Tasks {
		b.WriteString(m.taskLine(t, cats[t.Category], i == m.cursor) + "\n")
	}

	b.WriteString(m.styles.section.Render("Upcoming") + "\n")
	upcoming := m.store.UpcomingEvents(dashboardUpcoming)
	if len(upcoming) == 0 {
		b.WriteString(m.styles.dim.Render("  nothing scheduled") + "\n")
	}
	for _, e := range upcoming {
		line := fmt.Sprintf("  %s %s  %s", e.Date, e.Time, e.Title)
		if e.Location != "" {
			line += m.styles.dim.Render(" @ " + e.Location)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(m.styles.section.Render("Notes") + "\n")
	for i, n := range snap.Notes {
		if i == dashboardNotes {
			break
		}
		ago := humanize.Time(time.UnixMilli(n.CreatedAt))
		fmt.Fprintf(&b, "  %s %s\n", n.Title, m.styles.dim.Render("· "+ago))
	}

	b.WriteString(m.styles.dim.Render("j/k move • space toggle • q quit"))
	return b.String()
}

func (m Model) taskLine(t store.Task, cat store.Category, selected bool) string {
	box := "[ ]"
	title := t.Title
	if t.IsCompleted {
		box = "[x]"
		title = m.styles.done.Render(title)
	}
	cursor := "  "
	if selected {
		cursor = m.styles.selected.Render("› ")
	}
	prio := string(t.Priority)
	if st, ok := m.styles.priority[prio]; ok {
		prio = st.Render(prio)
	}
	line := fmt.Sprintf("%s%s %s %s", cursor, box, title, prio)
	if cat.ID != "" {
		line += m.styles.dim.Render(" " + cat.Icon + " " + cat.Name)
	}
	if t.DueDate != "" {
		line += m.styles.dim.Render(" due " + t.DueDate)
	}
	return line
}
