package lifeadmin

import (
	"testing"
)

func TestNextIDUnique(t *testing.T) {
	s := NewStore(NewMemStorage())
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := s.NextID()
		if seen[id] {
			t.Fatalf("NextID returned %q twice", id)
		}
		seen[id] = true
	}
}

func TestAddIsVisible(t *testing.T) {
	s := NewStore(NewMemStorage())
	s.Hydrate()
	s.EnableAutosave()

	p := s.AddProject()
	if got := s.ProjectByID(p.ID); got == nil {
		t.Fatalf("AddProject: project %q not found after add", p.ID)
	}
	if p.Status != StatusPlanning {
		t.Errorf("new project status = %q, want %q", p.Status, StatusPlanning)
	}

	task := s.AddTask()
	if task.Priority != Medium {
		t.Errorf("new task priority = %q, want %q", task.Priority, Medium)
	}
	if len(s.Tasks()) != 1 {
		t.Errorf("got %d tasks, want 1", len(s.Tasks()))
	}
}

func TestHydrateRoundTrip(t *testing.T) {
	mem := NewMemStorage()

	s := NewStore(mem)
	s.Hydrate()
	s.EnableAutosave()
	p := s.AddProject()
	s.UpdateProject(p.ID, ProjectPatch{Label: ptr("Learn sailing")})
	task := s.AddTask()
	s.UpdateTask(task.ID, TaskPatch{Title: ptr("Book the course"), Project: ptr(p.ID)})
	s.SetTheme(ThemeNoir)

	// A fresh store over the same storage sees everything.
	s2 := NewStore(mem)
	s2.Hydrate()
	got := s2.ProjectByID(p.ID)
	if got == nil || got.Label != "Learn sailing" {
		t.Fatalf("project did not survive the round trip: %+v", got)
	}
	tasks := s2.Tasks()
	if len(tasks) != 1 || tasks[0].Title != "Book the course" || tasks[0].Project != p.ID {
		t.Errorf("task did not survive the round trip: %+v", tasks)
	}
	if s2.Theme() != ThemeNoir {
		t.Errorf("theme = %q, want %q", s2.Theme(), ThemeNoir)
	}
}

func TestAutosaveGating(t *testing.T) {
	mem := NewMemStorage()
	s := NewStore(mem)
	s.Hydrate()

	// Before EnableAutosave collection mutations stay in memory.
	s.AddNote()
	if _, ok := mem.Load(KeyNotes); ok {
		t.Error("notes written to storage before autosave was armed")
	}

	// The theme is the exception and persists immediately.
	s.SetTheme(ThemeNoir)
	if _, ok := mem.Load(KeyTheme); !ok {
		t.Error("theme not written before autosave was armed")
	}

	s.EnableAutosave()
	s.AddNote()
	if _, ok := mem.Load(KeyNotes); !ok {
		t.Error("notes not written after autosave was armed")
	}
}

func TestHydrateCorruptSlot(t *testing.T) {
	mem := NewMemStorage()
	mem[KeyGoals] = "{not json"
	mem[KeyTheme] = `"noir"`

	s := NewStore(mem)
	s.Hydrate()
	if len(s.Goals()) != 0 {
		t.Errorf("corrupt goals slot should hydrate empty, got %+v", s.Goals())
	}
	if s.Theme() != ThemeNoir {
		t.Errorf("theme = %q, want %q", s.Theme(), ThemeNoir)
	}
}

func TestHydrateDefaultLifeAreas(t *testing.T) {
	s := NewStore(NewMemStorage())
	s.Hydrate()
	areas := s.LifeAreas()
	if len(areas) != 8 {
		t.Fatalf("got %d default life areas, want 8", len(areas))
	}
	for _, a := range areas {
		if a.Score != 5 {
			t.Errorf("area %q default score = %d, want 5", a.Name, a.Score)
		}
	}
}

func ptr[T any](v T) *T { return &v }
