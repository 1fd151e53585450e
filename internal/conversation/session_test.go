package conversation

import (
	"slices"
	"sync"
	"testing"

	"github.com/chris/zendo/internal/llm"
)

func TestNewSession_StartsWithGreeting(t *testing.T) {
	s := NewSession()
	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Role != RoleAssistant || msgs[0].Text != llm.Greeting {
		t.Errorf("expected greeting, got %+v", msgs[0])
	}
}

func TestAppend_PreservesOrderAndAcceptsEmpty(t *testing.T) {
	s := NewSession()
	s.Append(RoleUser, "add a task")
	s.Append(RoleAssistant, "")

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[1].Text != "add a task" || msgs[2].Role != RoleAssistant || msgs[2].Text != "" {
		t.Errorf("unexpected transcript: %+v", msgs)
	}
}

func TestMessages_ReturnsCopy(t *testing.T) {
	s := NewSession()
	msgs := s.Messages()
	msgs[0].Text = "changed"
	if s.Messages()[0].Text != llm.Greeting {
		t.Error("expected session to be unaffected by caller mutation")
	}
}

func TestPayload_MapsRoles(t *testing.T) {
	s := NewSession()
	s.Append(RoleUser, "hello")

	got := slices.Collect(s.Payload())
	want := []llm.Message{
		{Role: llm.RoleModel, Content: llm.Greeting},
		{Role: llm.RoleUser, Content: "hello"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestPayload_Idempotent(t *testing.T) {
	s := NewSession()
	s.Append(RoleUser, "one")
	s.Append(RoleAssistant, "two")

	first := slices.Collect(s.Payload())
	second := slices.Collect(s.Payload())
	if !slices.Equal(first, second) {
		t.Errorf("expected identical payloads, got %+v and %+v", first, second)
	}

	seq := s.Payload()
	if a, b := slices.Collect(seq), slices.Collect(seq); !slices.Equal(a, b) {
		t.Errorf("expected restartable sequence, got %+v and %+v", a, b)
	}
}

func TestPayload_EarlyStop(t *testing.T) {
	s := NewSession()
	s.Append(RoleUser, "one")
	s.Append(RoleUser, "two")

	n := 0
	for range s.Payload() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected to stop after 2, got %d", n)
	}
}

func TestAppend_Concurrent(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Append(RoleUser, "x")
		}()
	}
	wg.Wait()
	if s.Len() != 51 {
		t.Errorf("expected 51 messages, got %d", s.Len())
	}
}
