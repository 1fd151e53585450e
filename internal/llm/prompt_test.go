package llm

import (
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"
)

func TestSystemPrompt(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	got := SystemPrompt(now, []string{"Work", "Personal"})

	for _, want := range []string{
		"You are ZenDo AI",
		"most logical category",
		"Today's date is Fri Oct 16 2026.",
		"Available categories: Work, Personal.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected prompt to contain %q, got %q", want, got)
		}
	}
}

func TestSystemPrompt_NoCategories(t *testing.T) {
	got := SystemPrompt(time.Now(), nil)
	if strings.Contains(got, "Available categories") {
		t.Errorf("expected no category line, got %q", got)
	}
}

func TestToGenaiSchema(t *testing.T) {
	tool, _ := FindTool(AssistantTools("2026-10-16"), ToolCreateTask)
	s := toGenaiSchema(tool.Parameters)

	if s.Type != genai.TypeObject {
		t.Fatalf("expected object schema, got %q", s.Type)
	}
	if len(s.Required) != 1 || s.Required[0] != "title" {
		t.Errorf("expected required [title], got %v", s.Required)
	}
	prio := s.Properties["priority"]
	if prio == nil || prio.Type != genai.TypeString || len(prio.Enum) != 3 {
		t.Errorf("unexpected priority schema: %+v", prio)
	}
	tags := s.Properties["tags"]
	if tags == nil || tags.Type != genai.TypeArray || tags.Items == nil || tags.Items.Type != genai.TypeString {
		t.Errorf("unexpected tags schema: %+v", tags)
	}
}
