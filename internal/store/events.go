package store

import "strings"

type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"` // YYYY-MM-DD
	Time        string   `json:"time"` // HH:mm
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
	Color       string   `json:"color"`
}

type EventInput struct {
	Title       string   `json:"title" validate:"required"`
	Date        string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time        string   `json:"time" validate:"omitempty,datetime=15:04"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Color       string   `json:"color"`
}

// AddEvent creates an event and puts it at the front of the list.
func (s *Store) AddEvent(in EventInput) (Event, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return Event{}, ErrEmptyTitle
	}
	if err := s.check(in); err != nil {
		return Event{}, err
	}
	if in.Color == "" {
		in.Color = DefaultEventColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := Event{
		ID:          s.newID(),
		Title:       in.Title,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Description: in.Description,
		Tags:        NormalizeTags(in.Tags),
		Color:       in.Color,
	}
	s.events = append([]Event{e}, s.events...)
	return e, nil
}
