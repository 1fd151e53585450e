package store

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// AddCategory appends a category with a random hue. Categories keep insertion
// order, unlike tasks, events and notes.
func (s *Store) AddCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Category{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	if len(id) > 8 {
		id = id[:8]
	}
	c := Category{
		ID:    "cat-" + id,
		Name:  name,
		Color: fmt.Sprintf("hsl(%d, 70%%, 60%%)", s.hue()),
		Icon:  DefaultCategoryIcon,
	}
	out := make([]Category, 0, len(s.categories)+1)
	out = append(out, s.categories...)
	s.categories = append(out, c)
	return c, nil
}

// ResolveCategory matches name case-insensitively against the live categories.
// When nothing matches, the first category is returned. ok is false only when
// there are no categories at all.
func (s *Store) ResolveCategory(name string) (Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.categories) == 0 {
		return Category{}, false
	}
	want := strings.ToLower(strings.TrimSpace(name))
	for _, c := range s.categories {
		if strings.ToLower(c.Name) == want {
			return c, true
		}
	}
	return s.categories[0], true
}

func liveCategoryID(categories []Category, id string) string {
	for _, c := range categories {
		if c.ID == id {
			return id
		}
	}
	if len(categories) > 0 {
		return categories[0].ID
	}
	return ""
}

func randomHue() int {
	return rand.IntN(360)
}
