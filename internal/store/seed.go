package store

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Categories []Category `yaml:"categories"`
	Tasks      []struct {
		ID          string   `yaml:"id"`
		Title       string   `yaml:"title"`
		Completed   bool     `yaml:"completed"`
		Priority    Priority `yaml:"priority"`
		Category    string   `yaml:"category"`
		DueInDays   int      `yaml:"due_in_days"`
		Tags        []string `yaml:"tags"`
		Description string   `yaml:"description"`
	} `yaml:"tasks"`
	Events []struct {
		ID          string   `yaml:"id"`
		Title       string   `yaml:"title"`
		InDays      int      `yaml:"in_days"`
		Time        string   `yaml:"time"`
		Location    string   `yaml:"location"`
		Description string   `yaml:"description"`
		Tags        []string `yaml:"tags"`
		Color       string   `yaml:"color"`
	} `yaml:"events"`
	Notes []struct {
		ID           string   `yaml:"id"`
		Title        string   `yaml:"title"`
		Content      string   `yaml:"content"`
		CreatedAgoMs int64    `yaml:"created_ago_ms"`
		Color        string   `yaml:"color"`
		Tags         []string `yaml:"tags"`
	} `yaml:"notes"`
}

// NewSeeded returns a store populated with the cold-start data. Relative
// dates in the seed are resolved against now.
func NewSeeded(now func() time.Time) (*Store, error) {
	var seed seedFile
	if err := yaml.Unmarshal(seedYAML, &seed); err != nil {
		return nil, fmt.Errorf("decoding seed data: %w", err)
	}

	s := New()
	if now != nil {
		s.now = now
	}
	t0 := s.now()
	day := func(offset int) string { return t0.AddDate(0, 0, offset).Format(DateLayout) }

	s.categories = append(s.categories, seed.Categories...)
	for _, t := range seed.Tasks {
		s.tasks = append(s.tasks, Task{
			ID:          t.ID,
			Title:       t.Title,
			IsCompleted: t.Completed,
			Priority:    t.Priority,
			Category:    t.Category,
			DueDate:     day(t.DueInDays),
			Description: t.Description,
			Tags:        NormalizeTags(t.Tags),
		})
	}
	for _, e := range seed.Events {
		s.events = append(s.events, Event{
			ID:          e.ID,
			Title:       e.Title,
			Date:        day(e.InDays),
			Time:        e.Time,
			Location:    e.Location,
			Description: e.Description,
			Tags:        NormalizeTags(e.Tags),
			Color:       e.Color,
		})
	}
	for _, n := range seed.Notes {
		s.notes = append(s.notes, Note{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: t0.UnixMilli() - n.CreatedAgoMs,
			Color:     n.Color,
			Tags:      NormalizeTags(n.Tags),
		})
	}
	return s, nil
}
