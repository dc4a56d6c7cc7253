package lifeadmin

import (
	"fmt"
	"slices"

	"github.com/etnz/lifeadmin/date"
)

// Priority of a task.
type Priority string

const (
	Low    Priority = "Low"
	Medium Priority = "Medium"
	High   Priority = "High"
)

// ParsePriority parses a priority label, case-sensitively.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case Low, Medium, High:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

// Task is an actionable item, optionally linked to a project by id.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    Priority  `json:"priority"`
	DueDate     date.Date `json:"dueDate"`
	Completed   bool      `json:"completed"`
	// Project is a soft foreign key: a Project.ID with no referential
	// integrity. Deleting the project leaves the id dangling here.
	Project string `json:"project,omitempty"`
}

func (t Task) recordID() string { return t.ID }

// Overdue reports whether the task has a due date in the past and is still open.
func (t Task) Overdue(today date.Date) bool {
	return !t.Completed && !t.DueDate.IsZero() && t.DueDate.Before(today)
}

// TaskPatch is a partial update of a Task.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *date.Date
	Completed   *bool
	Project     *string
}

func (t Task) apply(patch TaskPatch) Task {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	if patch.Project != nil {
		t.Project = *patch.Project
	}
	return t
}

// Tasks returns a copy of the tasks collection in display order.
func (s *Store) Tasks() []Task { return slices.Clone(s.tasks) }

// SetTasks replaces the whole tasks collection.
func (s *Store) SetTasks(ts []Task) {
	s.tasks = slices.Clone(ts)
	s.persist(KeyTasks, s.tasks)
}

// AddTask appends a new task with default fields and returns it.
func (s *Store) AddTask() Task {
	t := Task{ID: s.NextID(), Priority: Medium}
	s.SetTasks(append(s.tasks, t))
	return t
}

// UpdateTask merges patch into the task with the given id.
func (s *Store) UpdateTask(id string, patch TaskPatch) bool {
	ts, ok := replaceByID(s.tasks, id, func(t Task) Task { return t.apply(patch) })
	if ok {
		s.SetTasks(ts)
	}
	return ok
}

// DeleteTask removes the task with the given id.
func (s *Store) DeleteTask(id string) bool {
	ts, ok := removeByID(s.tasks, id)
	if ok {
		s.SetTasks(ts)
	}
	return ok
}
