package lifeadmin

import (
	"slices"

	"github.com/etnz/lifeadmin/date"
)

// SomedayItem is an idea parked for later, outside any project.
type SomedayItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	AddedDate   date.Date `json:"addedDate"`
}

func (i SomedayItem) recordID() string { return i.ID }

// SomedayItemPatch is a partial update of a SomedayItem.
type SomedayItemPatch struct {
	Title       *string
	Description *string
	Category    *string
}

func (i SomedayItem) apply(patch SomedayItemPatch) SomedayItem {
	if patch.Title != nil {
		i.Title = *patch.Title
	}
	if patch.Description != nil {
		i.Description = *patch.Description
	}
	if patch.Category != nil {
		i.Category = *patch.Category
	}
	return i
}

// SomedayItems returns a copy of the someday list.
func (s *Store) SomedayItems() []SomedayItem { return slices.Clone(s.someday) }

// SetSomedayItems replaces the whole someday collection.
func (s *Store) SetSomedayItems(is []SomedayItem) {
	s.someday = slices.Clone(is)
	s.persist(KeySomeday, s.someday)
}

// AddSomedayItem appends a new item dated today and returns it.
func (s *Store) AddSomedayItem(title string) SomedayItem {
	i := SomedayItem{ID: s.NextID(), Title: title, AddedDate: date.Today()}
	s.SetSomedayItems(append(slices.Clone(s.someday), i))
	return i
}

// UpdateSomedayItem merges patch into the item with the given id.
func (s *Store) UpdateSomedayItem(id string, patch SomedayItemPatch) bool {
	is, ok := replaceByID(s.someday, id, func(i SomedayItem) SomedayItem { return i.apply(patch) })
	if ok {
		s.SetSomedayItems(is)
	}
	return ok
}

// DeleteSomedayItem removes the item with the given id.
func (s *Store) DeleteSomedayItem(id string) bool {
	is, ok := removeByID(s.someday, id)
	if ok {
		s.SetSomedayItems(is)
	}
	return ok
}
