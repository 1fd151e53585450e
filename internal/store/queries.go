package store

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

// Progress reports how many tasks are completed. Percent is 0 when there are
// no tasks.
func (s *Store) Progress() Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := Progress{Total: len(s.tasks)}
	for _, t := range s.tasks {
		if t.IsCompleted {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Completed) / float64(p.Total) * 100))
	}
	return p
}

// UpcomingEvents returns up to n events ordered by date and time.
func (s *Store) UpcomingEvents(n int) []Event {
	events := s.Events()
	slices.SortStableFunc(events, func(a, b Event) int {
		return cmp.Compare(a.Date+"T"+a.Time, b.Date+"T"+b.Time)
	})
	if n >= 0 && len(events) > n {
		events = events[:n]
	}
	return events
}

// FilterNotes returns notes whose title, content or tags contain query
// (case-insensitive). A non-empty tag additionally requires an exact tag match.
func (s *Store) FilterNotes(query, tag string) []Note {
	q := strings.ToLower(query)
	var out []Note
	for _, n := range s.Notes() {
		if tag != "" && !slices.Contains(n.Tags, tag) {
			continue
		}
		if q == "" || noteMatches(n, q) {
			out = append(out, n)
		}
	}
	return out
}

func noteMatches(n Note, q string) bool {
	if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

// NoteTags lists every distinct note tag in first-seen order.
func (s *Store) NoteTags() []string {
	var tags []string
	for _, n := range s.Notes() {
		for _, t := range n.Tags {
			if !slices.Contains(tags, t) {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

type Agenda struct {
	Date   string  `json:"date"`
	Tasks  []Task  `json:"tasks"`
	Events []Event `json:"events"`
}

// Agenda collects the tasks due and the events scheduled on date.
func (s *Store) Agenda(date string) Agenda {
	a := Agenda{Date: date, Tasks: []Task{}, Events: []Event{}}
	for _, t := range s.Tasks() {
		if t.DueDate == date {
			a.Tasks = append(a.Tasks, t)
		}
	}
	for _, e := range s.Events() {
		if e.Date == date {
			a.Events = append(a.Events, e)
		}
	}
	slices.SortStableFunc(a.Events, func(x, y Event) int { return cmp.Compare(x.Time, y.Time) })
	return a
}
