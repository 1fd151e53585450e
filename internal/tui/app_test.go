package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris/zendo/internal/assistant"
	"github.com/chris/zendo/internal/focus"
	"github.com/chris/zendo/internal/llm"
	"github.com/chris/zendo/internal/store"
)

type cannedClient struct{ resp *llm.Response }

func (c cannedClient) Chat(context.Context, string, []llm.Message, []llm.Tool) (*llm.Response, error) {
	return c.resp, nil
}

func newTestModel(t *testing.T, resp *llm.Response) (Model, *store.Store) {
	t.Helper()
	st, err := store.NewSeeded(func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) })
	if err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	a := assistant.New(st, cannedClient{resp: resp}, assistant.Options{Strict: true})
	return New(context.Background(), st, a, focus.New(1)), st
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// collect runs cmd and any batched commands, returning the messages produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestTabCycling(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if m.Tab != TabDashboard {
		t.Fatalf("expected dashboard first, got %s", m.Tab)
	}
	m, _ = update(m, key("tab"))
	if m.Tab != TabAssistant || !m.input.Focused() {
		t.Fatalf("expected focused assistant tab, got %s", m.Tab)
	}
	m, _ = update(m, key("tab"))
	m, _ = update(m, key("tab"))
	if m.Tab != TabDashboard {
		t.Fatalf("expected wrap to dashboard, got %s", m.Tab)
	}
	if m.input.Focused() {
		t.Error("expected input blurred off the assistant tab")
	}
}

func TestDashboardToggle(t *testing.T) {
	m, st := newTestModel(t, nil)
	first := st.Tasks()[0]

	m, _ = update(m, key(" "))
	if got := st.Tasks()[0]; got.IsCompleted == first.IsCompleted {
		t.Error("expected selected task to toggle")
	}
	m, _ = update(m, key("j"))
	if m.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", m.cursor)
	}
	for range 10 {
		m, _ = update(m, key("j"))
	}
	if m.cursor != len(st.Tasks())-1 {
		t.Errorf("expected cursor clamped to last task, got %d", m.cursor)
	}
	if !strings.Contains(m.View(), "Review project requirements") {
		t.Error("expected dashboard to list tasks")
	}
}

func TestAssistantSend(t *testing.T) {
	m, st := newTestModel(t, &llm.Response{ToolCalls: []llm.ToolCall{
		{Name: llm.ToolCreateTask, Params: map[string]any{"title": "Buy milk"}},
	}})
	m, _ = update(m, key("tab"))
	for _, r := range "buy milk" {
		m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if m.input.Value() != "buy milk" {
		t.Fatalf("expected typed input, got %q", m.input.Value())
	}

	m, cmd := update(m, key("enter"))
	if !m.sending || m.input.Value() != "" {
		t.Fatalf("expected sending with cleared input, got sending=%v input=%q", m.sending, m.input.Value())
	}

	// A second enter while sending is ignored.
	if _, again := update(m, key("enter")); again != nil {
		t.Error("expected no command while a request is in flight")
	}

	var reply *replyMsg
	for _, msg := range collect(cmd) {
		if r, ok := msg.(replyMsg); ok {
			reply = &r
		}
	}
	if reply == nil {
		t.Fatal("expected a reply message")
	}
	m, _ = update(m, *reply)

	if m.sending {
		t.Error("expected sending cleared")
	}
	if m.Status.Text != "1 item added" {
		t.Errorf("unexpected status %q", m.Status.Text)
	}
	if st.Tasks()[0].Title != "Buy milk" {
		t.Error("expected task in store")
	}
	if !strings.Contains(m.View(), `Created task: "Buy milk"`) {
		t.Error("expected confirmation in transcript")
	}
}

func TestFocusTicks(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m, _ = update(m, key("tab"))
	m, _ = update(m, key("tab"))

	m, cmd := update(m, key(" "))
	if cmd == nil || !m.timer.Running() {
		t.Fatal("expected running timer with a tick scheduled")
	}
	m, cmd = update(m, focusTickMsg{gen: m.tickGen})
	if cmd == nil || m.timer.Format() != "00:59" {
		t.Errorf("expected 00:59 and another tick, got %s", m.timer.Format())
	}

	// Stale ticks from an earlier run are ignored.
	m, _ = update(m, focusTickMsg{gen: m.tickGen - 1})
	if m.timer.Format() != "00:59" {
		t.Errorf("expected stale tick ignored, got %s", m.timer.Format())
	}

	for range 59 {
		m, _ = update(m, focusTickMsg{gen: m.tickGen})
	}
	if m.timer.Running() || !strings.HasPrefix(m.Status.Text, "Session complete") {
		t.Errorf("expected completed session, got running=%v status=%q", m.timer.Running(), m.Status.Text)
	}
}

func TestFocusPresetsAndAdjust(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m.Tab = TabFocus

	m, _ = update(m, key("p"))
	if m.timer.Format() != "05:00" {
		t.Errorf("expected short break preset, got %s", m.timer.Format())
	}
	m, _ = update(m, key("-"))
	if !m.Status.IsError || m.timer.Format() != "05:00" {
		t.Errorf("expected 0 minutes to be rejected, got %s", m.timer.Format())
	}
	m, _ = update(m, key("+"))
	if m.timer.Format() != "10:00" {
		t.Errorf("expected 10:00, got %s", m.timer.Format())
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		actions []assistant.Action
		want    string
	}{
		{nil, "ready"},
		{[]assistant.Action{{}, {}}, "2 items added"},
		{[]assistant.Action{{}, {Skipped: true}}, "1 item added, 1 call skipped"},
	}
	for _, tt := range tests {
		if got := summarize(tt.actions); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
