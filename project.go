package lifeadmin

import (
	"fmt"
	"slices"
)

// ProjectStatus is the lifecycle label of a project.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusInProgress ProjectStatus = "In Progress"
	StatusOnHold     ProjectStatus = "On Hold"
	StatusCompleted  ProjectStatus = "Completed"
	StatusCancelled  ProjectStatus = "Cancelled"
)

// ProjectStatuses lists every valid status in display order.
var ProjectStatuses = []ProjectStatus{
	StatusPlanning, StatusInProgress, StatusOnHold, StatusCompleted, StatusCancelled,
}

// ParseProjectStatus parses a status label, case-sensitively.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	if slices.Contains(ProjectStatuses, ProjectStatus(s)) {
		return ProjectStatus(s), nil
	}
	return "", fmt.Errorf("unknown project status %q", s)
}

// Project is a long-running initiative tracked on the projects panel.
type Project struct {
	ID            string        `json:"id"`
	Label         string        `json:"label"`
	Name          string        `json:"name"`
	Notes         string        `json:"notes"`
	Goals         string        `json:"goals"`
	ActionFocus   string        `json:"actionFocus"`
	DetailedNotes string        `json:"detailedNotes"`
	Resources     string        `json:"resources"`
	Timeline      string        `json:"timeline"`
	Status        ProjectStatus `json:"status"`
}

func (p Project) recordID() string { return p.ID }

// ProjectPatch is a partial update of a Project. Nil fields leave the record
// untouched.
type ProjectPatch struct {
	Label         *string
	Name          *string
	Notes         *string
	Goals         *string
	ActionFocus   *string
	DetailedNotes *string
	Resources     *string
	Timeline      *string
	Status        *ProjectStatus
}

func (p Project) apply(patch ProjectPatch) Project {
	if patch.Label != nil {
		p.Label = *patch.Label
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.Goals != nil {
		p.Goals = *patch.Goals
	}
	if patch.ActionFocus != nil {
		p.ActionFocus = *patch.ActionFocus
	}
	if patch.DetailedNotes != nil {
		p.DetailedNotes = *patch.DetailedNotes
	}
	if patch.Resources != nil {
		p.Resources = *patch.Resources
	}
	if patch.Timeline != nil {
		p.Timeline = *patch.Timeline
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	return p
}

// Projects returns a copy of the projects collection in display order.
func (s *Store) Projects() []Project { return slices.Clone(s.projects) }

// SetProjects replaces the whole projects collection.
func (s *Store) SetProjects(ps []Project) {
	s.projects = slices.Clone(ps)
	s.persist(KeyProjects, s.projects)
}

// AddProject appends a new blank project and returns it.
func (s *Store) AddProject() Project {
	p := Project{ID: s.NextID(), Label: "Project Label", Status: StatusPlanning}
	s.SetProjects(append(s.projects, p))
	return p
}

// UpdateProject merges patch into the project with the given id.
func (s *Store) UpdateProject(id string, patch ProjectPatch) bool {
	ps, ok := replaceByID(s.projects, id, func(p Project) Project { return p.apply(patch) })
	if ok {
		s.SetProjects(ps)
	}
	return ok
}

// DeleteProject removes the project with the given id. Tasks referencing it
// keep their (now dangling) project id: the reference is a soft foreign key.
func (s *Store) DeleteProject(id string) bool {
	ps, ok := removeByID(s.projects, id)
	if ok {
		s.SetProjects(ps)
	}
	return ok
}

// ProjectByID resolves a soft foreign key to its project, or nil when the
// reference dangles.
func (s *Store) ProjectByID(id string) *Project {
	if id == "" {
		return nil
	}
	return findByID(s.projects, id)
}
