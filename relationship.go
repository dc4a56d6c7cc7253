package lifeadmin

import (
	"slices"

	"github.com/etnz/lifeadmin/date"
)

// Relationship is a person worth keeping in touch with.
type Relationship struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	LastContact date.Date `json:"lastContact"`
	NextAction  string    `json:"nextAction"`
	// Birthday's month and day are significant; the year is ignored for
	// recurrence.
	Birthday  date.Date `json:"birthday,omitempty"`
	Notes     string    `json:"notes"`
	Frequency string    `json:"frequency"`
}

func (r Relationship) recordID() string { return r.ID }

// DaysSince returns the number of days elapsed between last and now. A zero
// last date means there was never a contact and yields ok=false.
func DaysSince(last, now date.Date) (days int, ok bool) {
	if last.IsZero() {
		return 0, false
	}
	return now.Sub(last), true
}

// DaysUntilBirthday returns the day count to the next occurrence of the
// birthday's month/day. A birthday falling exactly today yields 0. A zero
// birthday yields ok=false.
func DaysUntilBirthday(birthday, now date.Date) (days int, ok bool) {
	if birthday.IsZero() {
		return 0, false
	}
	next := date.New(now.Year(), birthday.Month(), birthday.Day())
	if next.Before(now) {
		next = date.New(now.Year()+1, birthday.Month(), birthday.Day())
	}
	return next.Sub(now), true
}

// RelationshipPatch is a partial update of a Relationship.
type RelationshipPatch struct {
	Name        *string
	Category    *string
	LastContact *date.Date
	NextAction  *string
	Birthday    *date.Date
	Notes       *string
	Frequency   *string
}

func (r Relationship) apply(patch RelationshipPatch) Relationship {
	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Category != nil {
		r.Category = *patch.Category
	}
	if patch.LastContact != nil {
		r.LastContact = *patch.LastContact
	}
	if patch.NextAction != nil {
		r.NextAction = *patch.NextAction
	}
	if patch.Birthday != nil {
		r.Birthday = *patch.Birthday
	}
	if patch.Notes != nil {
		r.Notes = *patch.Notes
	}
	if patch.Frequency != nil {
		r.Frequency = *patch.Frequency
	}
	return r
}

// Relationships returns a copy of the relationships collection.
func (s *Store) Relationships() []Relationship { return slices.Clone(s.relationships) }

// SetRelationships replaces the whole relationships collection.
func (s *Store) SetRelationships(rs []Relationship) {
	s.relationships = slices.Clone(rs)
	s.persist(KeyRelationships, s.relationships)
}

// AddRelationship appends a new relationship, last contacted today, and
// returns it.
func (s *Store) AddRelationship() Relationship {
	r := Relationship{ID: s.NextID(), LastContact: date.Today()}
	s.SetRelationships(append(s.relationships, r))
	return r
}

// UpdateRelationship merges patch into the relationship with the given id.
func (s *Store) UpdateRelationship(id string, patch RelationshipPatch) bool {
	rs, ok := replaceByID(s.relationships, id, func(r Relationship) Relationship { return r.apply(patch) })
	if ok {
		s.SetRelationships(rs)
	}
	return ok
}

// DeleteRelationship removes the relationship with the given id.
func (s *Store) DeleteRelationship(id string) bool {
	rs, ok := removeByID(s.relationships, id)
	if ok {
		s.SetRelationships(rs)
	}
	return ok
}
