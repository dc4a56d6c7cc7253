package lifeadmin

import (
	"slices"

	"github.com/etnz/lifeadmin/date"
)

// WeeklyReview captures a retrospective of one week. WeekOf marks the Sunday
// starting the week. The collection keeps the most recent first.
type WeeklyReview struct {
	ID            string    `json:"id"`
	WeekOf        date.Date `json:"weekOf"`
	Wins          string    `json:"wins"`
	Challenges    string    `json:"challenges"`
	Lessons       string    `json:"lessons"`
	NextWeekFocus string    `json:"nextWeekFocus"`
	Gratitude     string    `json:"gratitude"`
}

func (r WeeklyReview) recordID() string { return r.ID }

// WeeklyReviewPatch is a partial update of a WeeklyReview.
type WeeklyReviewPatch struct {
	Wins          *string
	Challenges    *string
	Lessons       *string
	NextWeekFocus *string
	Gratitude     *string
}

func (r WeeklyReview) apply(patch WeeklyReviewPatch) WeeklyReview {
	if patch.Wins != nil {
		r.Wins = *patch.Wins
	}
	if patch.Challenges != nil {
		r.Challenges = *patch.Challenges
	}
	if patch.Lessons != nil {
		r.Lessons = *patch.Lessons
	}
	if patch.NextWeekFocus != nil {
		r.NextWeekFocus = *patch.NextWeekFocus
	}
	if patch.Gratitude != nil {
		r.Gratitude = *patch.Gratitude
	}
	return r
}

// Reviews returns a copy of the weekly reviews, most recent first.
func (s *Store) Reviews() []WeeklyReview { return slices.Clone(s.reviews) }

// SetReviews replaces the whole reviews collection.
func (s *Store) SetReviews(rs []WeeklyReview) {
	s.reviews = slices.Clone(rs)
	s.persist(KeyReviews, s.reviews)
}

// AddReview prepends a new review for the week containing today and returns it.
func (s *Store) AddReview(today date.Date) WeeklyReview {
	r := WeeklyReview{ID: s.NextID(), WeekOf: today.StartOfWeek()}
	s.SetReviews(append([]WeeklyReview{r}, s.reviews...))
	return r
}

// ReviewOfWeek returns the review whose week contains the given day, or nil.
func (s *Store) ReviewOfWeek(day date.Date) *WeeklyReview {
	week := day.StartOfWeek()
	for _, r := range s.reviews {
		if r.WeekOf == week {
			r := r
			return &r
		}
	}
	return nil
}

// UpdateReview merges patch into the review with the given id.
func (s *Store) UpdateReview(id string, patch WeeklyReviewPatch) bool {
	rs, ok := replaceByID(s.reviews, id, func(r WeeklyReview) WeeklyReview { return r.apply(patch) })
	if ok {
		s.SetReviews(rs)
	}
	return ok
}

// DeleteReview removes the review with the given id.
func (s *Store) DeleteReview(id string) bool {
	rs, ok := removeByID(s.reviews, id)
	if ok {
		s.SetReviews(rs)
	}
	return ok
}
