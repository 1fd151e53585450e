package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chris/zendo/internal/assistant"
	"github.com/chris/zendo/internal/conversation"
)

type replyMsg struct {
	result assistant.Result
	ok     bool
}

func (m Model) handleAssistantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.sending {
			return m, nil
		}
		m.input.Reset()
		m.input.Blur()
		m.sending = true
		m.Status = StatusBar{Text: "thinking..."}
		return m, tea.Batch(m.spinner.Tick, m.send(text))
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}
	if m.sending {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) send(text string) tea.Cmd {
	a, ctx := m.assistant, m.ctx
	return func() tea.Msg {
		res, ok := a.HandleUserInput(ctx, text)
		return replyMsg{result: res, ok: ok}
	}
}

func (m Model) onReply(msg replyMsg) Model {
	m.sending = false
	switch {
	case !msg.ok:
		m.Status = StatusBar{Text: "assistant is busy", IsError: true}
	case msg.result.Err != nil:
		m.Status = StatusBar{Text: msg.result.Err.Error(), IsError: true}
	default:
		m.Status = StatusBar{Text: summarize(msg.result.Actions)}
	}
	if m.Tab == TabAssistant {
		m.input.Focus()
	}
	m.refreshChat()
	return m
}

func summarize(actions []assistant.Action) string {
	applied, skipped := 0, 0
	for _, a := range actions {
		if a.Skipped {
			skipped++
		} else {
			applied++
		}
	}
	switch {
	case applied == 0 && skipped == 0:
		return "ready"
	case skipped == 0:
		return plural(applied, "item") + " added"
	default:
		return plural(applied, "item") + " added, " + plural(skipped, "call") + " skipped"
	}
}

func plural(n int, word string) string {
	if n != 1 {
		word += "s"
	}
	return fmt.Sprintf("%d %s", n, word)
}

// refreshChat re-renders the transcript into the viewport and scrolls to the
// newest turn.
func (m *Model) refreshChat() {
	width := m.chat.Width
	wrap := lipgloss.NewStyle().Width(width).PaddingLeft(2)

	var b strings.Builder
	for _, msg := range m.assistant.Session().Messages() {
		if msg.Role == conversation.RoleUser {
			b.WriteString(m.styles.user.Render("You") + "\n")
		} else {
			b.WriteString(m.styles.model.Render("ZenDo AI") + "\n")
		}
		b.WriteString(wrap.Render(msg.Text) + "\n\n")
	}
	if m.sending {
		b.WriteString(m.spinner.View() + m.styles.dim.Render(" thinking") + "\n")
	}
	m.chat.SetContent(b.String())
	m.chat.GotoBottom()
}

func (m Model) assistantView() string {
	return m.chat.View() + "\n" + m.input.View() + "\n" +
		m.styles.dim.Render("enter send • pgup/pgdown scroll")
}
