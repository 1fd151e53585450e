// Package conversation keeps the ordered transcript of an assistant session.
package conversation

import (
	"iter"
	"slices"
	"sync"

	"github.com/chris/zendo/internal/llm"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the transcript. System marks turns that are shown
// but not authored by either party; no current flow sets it.
type Message struct {
	Role   Role   `json:"role"`
	Text   string `json:"text"`
	System bool   `json:"isSystem,omitempty"`
}

// Session is an append-only message log. It is safe for concurrent use.
type Session struct {
	mu       sync.RWMutex
	messages []Message
}

// NewSession returns a session that opens with the assistant greeting.
func NewSession() *Session {
	s := &Session{}
	s.Append(RoleAssistant, llm.Greeting)
	return s
}

// Append adds a turn. Empty text is accepted.
func (s *Session) Append(role Role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, Message{Role: role, Text: text})
}

// Messages returns a copy of the transcript, oldest first.
func (s *Session) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.messages)
}

func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// Payload yields the transcript in the backend's role vocabulary. The
// sequence is taken over the turns present when Payload is called, so every
// iteration of the same value yields the same messages.
func (s *Session) Payload() iter.Seq[llm.Message] {
	msgs := s.Messages()
	return func(yield func(llm.Message) bool) {
		for _, m := range msgs {
			if !yield(llm.Message{Role: backendRole(m.Role), Content: m.Text}) {
				return
			}
		}
	}
}

func backendRole(r Role) string {
	if r == RoleAssistant {
		return llm.RoleModel
	}
	return llm.RoleUser
}
