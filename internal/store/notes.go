package store

import "strings"

type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	CreatedAt int64    `json:"createdAt"` // epoch milliseconds
	Color     string   `json:"color"`
	Tags      []string `json:"tags"`
}

type NoteInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Color   string   `json:"color"`
	Tags    []string `json:"tags"`
}

// AddNote stamps a new note with the current time and puts it at the front
// of the list. A missing title becomes DefaultNoteTitle; a note with neither
// title nor content is rejected.
func (s *Store) AddNote(in NoteInput) (Note, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Content = strings.TrimSpace(in.Content)
	if in.Title == "" && in.Content == "" {
		return Note{}, ErrEmptyNote
	}
	if in.Title == "" {
		in.Title = DefaultNoteTitle
	}
	if in.Color == "" {
		in.Color = DefaultNoteColor
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := Note{
		ID:        s.newID(),
		Title:     in.Title,
		Content:   in.Content,
		CreatedAt: s.now().UnixMilli(),
		Color:     in.Color,
		Tags:      NormalizeTags(in.Tags),
	}
	s.notes = append([]Note{n}, s.notes...)
	return n, nil
}
