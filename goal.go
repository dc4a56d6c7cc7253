package lifeadmin

import "slices"

// Goal is a longer-horizon objective with a 0-100 progress figure.
//
// The store accepts Progress values outside [0,100] without error: range
// clamping belongs to the editing surface, not here.
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeframe   string `json:"timeframe"`
	Progress    int    `json:"progress"`
	Milestones  string `json:"milestones"`
}

func (g Goal) recordID() string { return g.ID }

// GoalPatch is a partial update of a Goal.
type GoalPatch struct {
	Title       *string
	Description *string
	Timeframe   *string
	Progress    *int
	Milestones  *string
}

func (g Goal) apply(patch GoalPatch) Goal {
	if patch.Title != nil {
		g.Title = *patch.Title
	}
	if patch.Description != nil {
		g.Description = *patch.Description
	}
	if patch.Timeframe != nil {
		g.Timeframe = *patch.Timeframe
	}
	if patch.Progress != nil {
		g.Progress = *patch.Progress
	}
	if patch.Milestones != nil {
		g.Milestones = *patch.Milestones
	}
	return g
}

// Goals returns a copy of the goals collection in display order.
func (s *Store) Goals() []Goal { return slices.Clone(s.goals) }

// SetGoals replaces the whole goals collection.
func (s *Store) SetGoals(gs []Goal) {
	s.goals = slices.Clone(gs)
	s.persist(KeyGoals, s.goals)
}

// AddGoal appends a new goal with default fields and returns it.
func (s *Store) AddGoal() Goal {
	g := Goal{ID: s.NextID(), Timeframe: "3 months"}
	s.SetGoals(append(s.goals, g))
	return g
}

// UpdateGoal merges patch into the goal with the given id.
func (s *Store) UpdateGoal(id string, patch GoalPatch) bool {
	gs, ok := replaceByID(s.goals, id, func(g Goal) Goal { return g.apply(patch) })
	if ok {
		s.SetGoals(gs)
	}
	return ok
}

// DeleteGoal removes the goal with the given id.
func (s *Store) DeleteGoal(id string) bool {
	gs, ok := removeByID(s.goals, id)
	if ok {
		s.SetGoals(gs)
	}
	return ok
}
