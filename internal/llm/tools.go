package llm

const (
	ToolCreateTask  = "create_task"
	ToolCreateEvent = "create_event"
	ToolCreateNote  = "create_note"
)

// AssistantTools returns the three create tools. today (YYYY-MM-DD) is baked
// into the dueDate description so relative dates resolve against it; callers
// must pass the date of the request being built.
func AssistantTools(today string) []Tool {
	return []Tool{
		{
			Name:        ToolCreateTask,
			Description: "Creates a new task in the user's to-do list.",
			Parameters: objReq(map[string]any{
				"title":        prop("string", "The title of the task"),
				"description":  prop("string", "Optional detailed description"),
				"priority":     enumProp("Priority: 'low', 'medium', or 'high'", "low", "medium", "high"),
				"categoryName": prop("string", "Name of the folder or category (e.g., Work, Personal)"),
				"dueDate":      formatProp("date", "Due date in YYYY-MM-DD format. Today is "+today),
				"tags":         arrayProp("List of relevant tags"),
			}, "title"),
		},
		{
			Name:        ToolCreateEvent,
			Description: "Schedules a new event on the calendar.",
			Parameters: objReq(map[string]any{
				"title":       prop("string", "Title of the event"),
				"date":        formatProp("date", "Date in YYYY-MM-DD format"),
				"time":        formatProp("time", "Time in HH:mm format"),
				"location":    prop("string", "Physical or digital location"),
				"description": prop("string", "Notes about the event"),
				"tags":        arrayProp("List of relevant tags"),
			}, "title", "date", "time"),
		},
		{
			Name:        ToolCreateNote,
			Description: "Quickly saves a note or thought.",
			Parameters: objReq(map[string]any{
				"title":   prop("string", "Short title for the note"),
				"content": prop("string", "The full content of the note"),
			}, "content"),
		},
	}
}

// FindTool looks a tool up by name.
func FindTool(tools []Tool, name string) (Tool, bool) {
	for _, t := range tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Helper functions for building JSON Schema objects.

func prop(typ, desc string) map[string]any {
	return map[string]any{"type": typ, "description": desc}
}

func enumProp(desc string, values ...string) map[string]any {
	p := prop("string", desc)
	p["enum"] = values
	return p
}

// formatProp declares a string with a local format check ("date" or "time").
// The keyword is stripped before the schema leaves the process.
func formatProp(format, desc string) map[string]any {
	p := prop("string", desc)
	p[formatKey] = format
	return p
}

func arrayProp(desc string) map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "description": desc}
}

func obj(properties map[string]any) map[string]any {
	if properties == nil {
		properties = map[string]any{}
	}
	return map[string]any{
		"type":       "object",
		"properties": properties,
	}
}

func objReq(properties map[string]any, required ...string) map[string]any {
	s := obj(properties)
	s["required"] = required
	return s
}
