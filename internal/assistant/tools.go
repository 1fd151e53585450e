package assistant

import (
	"fmt"
	"log"
	"time"

	"github.com/chris/zendo/internal/llm"
	"github.com/chris/zendo/internal/store"
)

// apply dispatches one tool invocation to the store and returns the line
// that goes into the reply.
func (a *Assistant) apply(tools []llm.Tool, tc llm.ToolCall) Action {
	tool, ok := llm.FindTool(tools, tc.Name)
	if !ok {
		return skipped(tc.Name, llm.ErrUnknownTool)
	}
	if tc.Err != nil {
		return skipped(tc.Name, tc.Err)
	}
	if a.opts.Strict {
		if err := llm.ValidateArgs(tool, tc.Params); err != nil {
			return skipped(tc.Name, err)
		}
	}

	p := tc.Params
	switch tc.Name {
	case llm.ToolCreateTask:
		in := store.TaskInput{
			Title:       str(p, "title"),
			Description: str(p, "description"),
			Priority:    store.Priority(str(p, "priority")),
			DueDate:     str(p, "dueDate"),
			Tags:        getStrings(p, "tags"),
		}
		if !a.opts.Strict {
			in = a.coerceTask(in)
		}
		if in.DueDate == "" {
			in.DueDate = a.store.Today()
		}
		if cat, ok := a.store.ResolveCategory(str(p, "categoryName")); ok {
			in.Category = cat.ID
		}
		t, err := a.store.AddTask(in)
		if err != nil {
			return skipped(tc.Name, err)
		}
		return Action{Tool: tc.Name, ID: t.ID, Line: fmt.Sprintf(`Created task: "%s"`, t.Title)}

	case llm.ToolCreateEvent:
		e, err := a.store.AddEvent(store.EventInput{
			Title:       str(p, "title"),
			Date:        str(p, "date"),
			Time:        str(p, "time"),
			Location:    str(p, "location"),
			Description: str(p, "description"),
			Tags:        getStrings(p, "tags"),
			Color:       store.DefaultEventColor,
		})
		if err != nil {
			return skipped(tc.Name, err)
		}
		return Action{Tool: tc.Name, ID: e.ID, Line: fmt.Sprintf(`Scheduled event: "%s" at %s`, e.Title, e.Time)}

	case llm.ToolCreateNote:
		n, err := a.store.AddNote(store.NoteInput{
			Title:   str(p, "title"),
			Content: str(p, "content"),
		})
		if err != nil {
			return skipped(tc.Name, err)
		}
		return Action{Tool: tc.Name, ID: n.ID, Line: fmt.Sprintf(`Added note: "%s"`, n.Title)}
	}
	return skipped(tc.Name, llm.ErrUnknownTool)
}

// coerceTask replaces values the store would reject with its defaults, so a
// loosely formed invocation still creates the task.
func (a *Assistant) coerceTask(in store.TaskInput) store.TaskInput {
	if p := store.NormalizePriority(in.Priority); p != "" && !p.IsValid() {
		log.Printf("assistant: unknown priority %q, using %s", in.Priority, store.PriorityMedium)
		in.Priority = store.PriorityMedium
	}
	if in.DueDate != "" {
		if _, err := time.Parse(store.DateLayout, in.DueDate); err != nil {
			log.Printf("assistant: unparseable dueDate %q, using today", in.DueDate)
			in.DueDate = ""
		}
	}
	return in
}

func skipped(tool string, err error) Action {
	return Action{Tool: tool, Line: fmt.Sprintf("Skipped %s: %v", tool, err), Skipped: true}
}

func str(params map[string]any, key string) string {
	s, _ := getString(params, key)
	return s
}

// Param extraction helpers. Missing or mistyped arguments read as zero values.
func getString(params map[string]any, key string) (string, bool) {
	v, ok := params[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// getStrings keeps the string elements of an array argument.
func getStrings(params map[string]any, key string) []string {
	switch v := params[key].(type) {
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
