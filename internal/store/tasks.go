package store

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	IsCompleted bool     `json:"isCompleted"`
	Priority    Priority `json:"priority"`
	Category    string   `json:"category"` // Category.ID
	DueDate     string   `json:"dueDate,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
}

// TaskInput carries the caller-supplied fields of a new task.
type TaskInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Category    string   `json:"category"`
	DueDate     string   `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Tags        []string `json:"tags"`
}

// NormalizePriority trims and lowercases p. It does not check validity.
func NormalizePriority(p Priority) Priority {
	return Priority(strings.ToLower(strings.TrimSpace(string(p))))
}

// AddTask creates an incomplete task and puts it at the front of the list.
// Priority is matched case-insensitively and an empty one becomes medium; a
// category id that does not match a live category falls back to the first one.
func (s *Store) AddTask(in TaskInput) (Task, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return Task{}, ErrEmptyTitle
	}
	in.Priority = NormalizePriority(in.Priority)
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if !in.Priority.IsValid() {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, in.Priority)
	}
	if err := s.check(in); err != nil {
		return Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := Task{
		ID:          s.newID(),
		Title:       in.Title,
		IsCompleted: false,
		Priority:    in.Priority,
		Category:    liveCategoryID(s.categories, in.Category),
		DueDate:     in.DueDate,
		Description: in.Description,
		Tags:        NormalizeTags(in.Tags),
	}
	s.tasks = prependTask(s.tasks, t)
	return t, nil
}

// ToggleTask flips the completion flag of the task with the given id. It
// reports false and changes nothing when no task matches.
func (s *Store) ToggleTask(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, toggled, ok := toggleTask(s.tasks, id)
	if !ok {
		return Task{}, false
	}
	s.tasks = next
	return toggled, true
}

func prependTask(tasks []Task, t Task) []Task {
	out := make([]Task, 0, len(tasks)+1)
	out = append(out, t)
	return append(out, tasks...)
}

func toggleTask(tasks []Task, id string) ([]Task, Task, bool) {
	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		out := make([]Task, len(tasks))
		copy(out, tasks)
		t.IsCompleted = !t.IsCompleted
		out[i] = t
		return out, t, true
	}
	return tasks, Task{}, false
}
