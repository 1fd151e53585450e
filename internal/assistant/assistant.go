// Package assistant turns free-text requests into store mutations through a
// tool-calling language model.
package assistant

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"

	"github.com/chris/zendo/internal/conversation"
	"github.com/chris/zendo/internal/llm"
	"github.com/chris/zendo/internal/store"
)

// minMessageBudget keeps room for at least the current turn when trimming.
const minMessageBudget = 1000

type State int

const (
	Idle State = iota
	Sending
	Applying
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sending:
		return "sending"
	case Applying:
		return "applying"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Options struct {
	// MaxContextTokens bounds the replayed history. Zero replays everything.
	MaxContextTokens int
	// Strict validates tool arguments against their schema before dispatch.
	Strict bool
}

// Action records what happened to one tool invocation.
type Action struct {
	Tool    string `json:"tool"`
	ID      string `json:"id,omitempty"` // id of the created entity
	Line    string `json:"line"`
	Skipped bool   `json:"skipped,omitempty"`
}

// Result describes a completed request. Err is set when the backend call
// failed; the apology is then the reply.
type Result struct {
	Reply   string   `json:"reply"`
	Actions []Action `json:"actions"`
	Err     error    `json:"-"`
}

// Assistant mediates between one conversation and the store. At most one
// request is in flight at a time.
type Assistant struct {
	mu    sync.Mutex
	state State

	store   *store.Store
	session *conversation.Session
	client  llm.Client
	opts    Options
}

func New(st *store.Store, client llm.Client, opts Options) *Assistant {
	return &Assistant{
		store:   st,
		session: conversation.NewSession(),
		client:  client,
		opts:    opts,
	}
}

func (a *Assistant) Session() *conversation.Session { return a.session }

func (a *Assistant) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Busy reports whether a request is in flight.
func (a *Assistant) Busy() bool { return a.State() != Idle }

// HandleUserInput sends text to the backend and applies the returned tool
// invocations. It returns false without doing anything when text is blank or
// another request is in flight.
func (a *Assistant) HandleUserInput(ctx context.Context, text string) (Result, bool) {
	text = strings.TrimSpace(text)
	if text == "" || !a.begin() {
		return Result{}, false
	}
	defer a.setState(Idle) // runs on every exit, panics included

	a.session.Append(conversation.RoleUser, text)

	now := a.store.Now()
	system := llm.SystemPrompt(now, categoryNames(a.store.Categories()))
	tools := llm.AssistantTools(a.store.Today())
	messages := a.contextWindow(system, tools)

	resp, err := a.client.Chat(ctx, system, messages, tools)
	if err != nil {
		a.setState(Failed)
		log.Printf("assistant: backend call failed: %v", err)
		a.session.Append(conversation.RoleAssistant, llm.Apology)
		return Result{Reply: llm.Apology, Err: err}, true
	}

	a.setState(Applying)
	actions := make([]Action, 0, len(resp.ToolCalls))
	for _, tc := range resp.ToolCalls {
		act := a.apply(tools, tc)
		log.Printf("assistant: tool %s -> %s", tc.Name, truncate(act.Line, 200))
		actions = append(actions, act)
	}

	lines := make([]string, len(actions))
	for i, act := range actions {
		lines[i] = act.Line
	}
	reply := strings.TrimSpace(resp.Content + "\n" + strings.Join(lines, "\n"))
	a.session.Append(conversation.RoleAssistant, reply)
	return Result{Reply: reply, Actions: actions}, true
}

// begin moves Idle to Sending. It fails if a request is already running.
func (a *Assistant) begin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != Idle {
		return false
	}
	a.state = Sending
	return true
}

func (a *Assistant) setState(s State) {
	a.mu.Lock()
	a.state = s
	a.mu.Unlock()
}

func (a *Assistant) contextWindow(system string, tools []llm.Tool) []llm.Message {
	messages := slices.Collect(a.session.Payload())
	if a.opts.MaxContextTokens <= 0 {
		return messages
	}
	budget := a.opts.MaxContextTokens - llm.EstimateTokens(system) - llm.EstimateToolsTokens(tools)
	if budget < minMessageBudget {
		budget = minMessageBudget
	}
	trimmed := llm.TrimMessages(messages, budget)
	if len(trimmed) < len(messages) {
		log.Printf("assistant: context trimmed: %d → %d messages", len(messages), len(trimmed))
	}
	return trimmed
}

func categoryNames(cats []store.Category) []string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
