package lifeadmin

import (
	"slices"
	"time"
)

// Note is a freeform text note. The collection keeps the most recent first.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n Note) recordID() string { return n.ID }

// NotePatch is a partial update of a Note.
type NotePatch struct {
	Title    *string
	Content  *string
	Category *string
}

func (n Note) apply(patch NotePatch) Note {
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.Category != nil {
		n.Category = *patch.Category
	}
	return n
}

// Notes returns a copy of the notes collection, most recent first.
func (s *Store) Notes() []Note { return slices.Clone(s.notes) }

// SetNotes replaces the whole notes collection.
func (s *Store) SetNotes(ns []Note) {
	s.notes = slices.Clone(ns)
	s.persist(KeyNotes, s.notes)
}

// AddNote prepends a new blank note and returns it.
func (s *Store) AddNote() Note {
	n := Note{ID: s.NextID(), CreatedAt: time.Now()}
	s.SetNotes(append([]Note{n}, s.notes...))
	return n
}

// UpdateNote merges patch into the note with the given id.
func (s *Store) UpdateNote(id string, patch NotePatch) bool {
	ns, ok := replaceByID(s.notes, id, func(n Note) Note { return n.apply(patch) })
	if ok {
		s.SetNotes(ns)
	}
	return ok
}

// DeleteNote removes the note with the given id.
func (s *Store) DeleteNote(id string) bool {
	ns, ok := removeByID(s.notes, id)
	if ok {
		s.SetNotes(ns)
	}
	return ok
}
