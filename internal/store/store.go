package store

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	DefaultNoteTitle    = "Quick Note"
	DefaultNoteColor    = "#8B5CF6"
	DefaultEventColor   = "#8B5CF6"
	DefaultCategoryIcon = "📁"
)

var (
	ErrEmptyTitle      = errors.New("store: title is required")
	ErrEmptyNote       = errors.New("store: note needs a title or content")
	ErrEmptyName       = errors.New("store: category name is required")
	ErrInvalidPriority = errors.New("store: invalid priority")
	ErrInvalidInput    = errors.New("store: invalid input")
)

// Store owns the task, event, note and category collections for one session.
// Every mutation builds a new slice and swaps it in, so snapshots handed out
// earlier are never modified.
type Store struct {
	mu         sync.RWMutex
	tasks      []Task
	events     []Event
	notes      []Note
	categories []Category

	now      func() time.Time
	newID    func() string
	hue      func() int
	validate *validator.Validate
}

// New returns an empty store.
func New() *Store {
	return &Store{
		tasks:      []Task{},
		events:     []Event{},
		notes:      []Note{},
		categories: []Category{},
		now:        time.Now,
		newID:      uuid.NewString,
		hue:        randomHue,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Today returns the store clock's current date as YYYY-MM-DD.
func (s *Store) Today() string {
	return s.now().Format(DateLayout)
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Snapshot is a read-only copy of every collection.
type Snapshot struct {
	Tasks      []Task     `json:"tasks"`
	Events     []Event    `json:"events"`
	Notes      []Note     `json:"notes"`
	Categories []Category `json:"categories"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Tasks:      slices.Clone(s.tasks),
		Events:     slices.Clone(s.events),
		Notes:      slices.Clone(s.notes),
		Categories: slices.Clone(s.categories),
	}
}

func (s *Store) Tasks() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tasks)
}

func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// NormalizeTags trims and lowercases tags, dropping empties and duplicates.
// The first occurrence wins, so input order is kept.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (s *Store) check(v any) error {
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q", ErrInvalidInput, strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
