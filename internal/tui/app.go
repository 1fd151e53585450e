// Package tui is the terminal front end: a dashboard, the assistant chat and
// the focus timer, one per tab.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chris/zendo/internal/assistant"
	"github.com/chris/zendo/internal/focus"
	"github.com/chris/zendo/internal/store"
)

type Tab int

const (
	TabDashboard Tab = iota
	TabAssistant
	TabFocus
)

var tabNames = []string{"Dashboard", "Assistant", "Focus"}

func (t Tab) String() string { return tabNames[t] }

type StatusBar struct {
	Text    string
	IsError bool
}

// Model is the root bubbletea model.
type Model struct {
	ctx       context.Context
	store     *store.Store
	assistant *assistant.Assistant
	timer     *focus.Timer
	styles    styles

	Tab    Tab
	Status StatusBar
	width  int
	height int

	// dashboard
	cursor int

	// assistant
	input   textinput.Model
	chat    viewport.Model
	spinner spinner.Model
	sending bool

	// focus
	progress progress.Model
	preset   int
	tickGen  int // ticks from an earlier run are ignored
}

func New(ctx context.Context, st *store.Store, a *assistant.Assistant, timer *focus.Timer) Model {
	input := textinput.New()
	input.Placeholder = "Ask me to add a task, event or note..."
	input.Prompt = "› "
	input.CharLimit = 500
	input.Width = MaxWidth - 4
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		store:     st,
		assistant: a,
		timer:     timer,
		styles:    newStyles(Midnight),
		input:     input,
		chat:      viewport.New(MaxWidth, 14),
		spinner:   sp,
		progress:  progress.New(progress.WithDefaultGradient(), progress.WithWidth(MaxWidth-10)),
	}
	m.refreshChat()
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w := contentWidth(msg.Width)
		m.input.Width = w - 4
		m.chat.Width = w
		if msg.Height > 12 {
			m.chat.Height = msg.Height - 10
		}
		m.progress.Width = w - 10
		m.refreshChat()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.switchTab((m.Tab + 1) % Tab(len(tabNames))), nil
		case "shift+tab":
			return m.switchTab((m.Tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))), nil
		}
		switch m.Tab {
		case TabDashboard:
			return m.handleDashboardKey(msg)
		case TabAssistant:
			return m.handleAssistantKey(msg)
		case TabFocus:
			return m.handleFocusKey(msg)
		}

	case replyMsg:
		return m.onReply(msg), nil

	case focusTickMsg:
		return m.onFocusTick(msg)

	case spinner.TickMsg:
		if m.sending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refreshChat()
			return m, cmd
		}
	}

	if m.Tab == TabAssistant {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) switchTab(t Tab) Model {
	m.Tab = t
	if t == TabAssistant && !m.sending {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

func (m Model) View() string {
	var tabs []string
	for i, name := range tabNames {
		style := m.styles.tab
		if Tab(i) == m.Tab {
			style = m.styles.activeTab
		}
		tabs = append(tabs, style.Render(name))
	}

	var body string
	switch m.Tab {
	case TabDashboard:
		body = m.dashboardView()
	case TabAssistant:
		body = m.assistantView()
	case TabFocus:
		body = m.focusView()
	}

	status := m.styles.status.Render(m.Status.Text)
	if m.Status.IsError {
		status = m.styles.errStatus.Render(m.Status.Text)
	}
	help := m.styles.dim.Render("tab switch • ctrl+c quit")

	return strings.Join([]string{
		m.styles.title.Render("ZenDo") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		body,
		"",
		status,
		help,
	}, "\n")
}
