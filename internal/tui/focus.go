package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris/zendo/internal/focus"
)

type focusTickMsg struct{ gen int }

func focusTickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return focusTickMsg{gen: gen} })
}

func (m Model) handleFocusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ":
		if m.timer.Toggle() {
			m.tickGen++
			m.Status = StatusBar{Text: "focus running"}
			return m, focusTickCmd(m.tickGen)
		}
		m.Status = StatusBar{Text: "focus paused"}
	case "r":
		m.timer.Reset()
		m.Status = StatusBar{Text: "focus reset"}
	case "p":
		m.preset = (m.preset + 1) % len(focus.Presets)
		p := focus.Presets[m.preset]
		if err := m.timer.SetMinutes(p.Minutes); err == nil {
			m.Status = StatusBar{Text: fmt.Sprintf("%s · %d min", p.Label, p.Minutes)}
		}
	case "+", "-":
		step := 5
		if msg.String() == "-" {
			step = -5
		}
		mins := int(m.timer.Total()/time.Minute) + step
		if err := m.timer.SetMinutes(mins); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: fmt.Sprintf("custom · %d min", mins)}
	}
	return m, nil
}

func (m Model) onFocusTick(msg focusTickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.tickGen || !m.timer.Running() {
		return m, nil
	}
	if m.timer.Tick() {
		m.Status = StatusBar{Text: "Session complete! Focus on your well-being."}
		return m, nil
	}
	return m, focusTickCmd(m.tickGen)
}

func (m Model) focusView() string {
	state := "System Ready"
	if m.timer.Running() {
		state = "Session Active"
	}

	var b strings.Builder
	b.WriteString(m.styles.section.Render("Focus Timer") + "  " + m.styles.dim.Render(state) + "\n")
	b.WriteString(m.styles.clock.Render(m.timer.Format()) + "\n")
	b.WriteString(m.progress.ViewAs(m.timer.Progress()/100) + "\n\n")

	var presets []string
	for i, p := range focus.Presets {
		label := fmt.Sprintf("%s %dm", p.Label, p.Minutes)
		if i == m.preset {
			label = m.styles.selected.Render(label)
		} else {
			label = m.styles.dim.Render(label)
		}
		presets = append(presets, label)
	}
	b.WriteString(strings.Join(presets, "  ") + "\n")
	b.WriteString(m.styles.dim.Render("space start/pause • r reset • p preset • +/- 5 min • q quit"))
	return b.String()
}
