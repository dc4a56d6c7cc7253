package lifeadmin

import (
	"encoding/json"
	"log"
	"slices"
	"strconv"
	"time"
)

// Themes supported by the UI layer.
const (
	ThemeSoft = "soft"
	ThemeNoir = "noir"
)

// Store holds one session's life-organizer dataset: every collection plus the
// scalar settings, hydrated from a Storage and written back on change.
//
// A Store is explicitly owned by its creator and safe to instantiate in
// isolation (tests hand it a MemStorage). It is single-goroutine by contract,
// like the event-driven session it models.
type Store struct {
	storage  Storage
	autosave bool
	lastID   int64

	projects      []Project
	tasks         []Task
	notes         []Note
	goals         []Goal
	finance       []FinanceEntry
	habits        []Habit
	relationships []Relationship
	reviews       []WeeklyReview
	lifeAreas     []LifeArea
	someday       []SomedayItem

	theme       string
	welcomeSeen bool
	licenseKey  string
}

// NewStore creates an empty store bound to storage. Call Hydrate to load the
// persisted state, then EnableAutosave to arm write-back. The two-phase
// lifecycle guarantees that loading defaults can never overwrite a persisted
// value that simply was not read yet.
func NewStore(storage Storage) *Store {
	return &Store{storage: storage, theme: ThemeSoft}
}

// Hydrate loads every collection and scalar from storage, substituting
// defaults for absent or undecodable values. It never fails: a corrupt slot
// is logged and replaced by its default for this session.
func (s *Store) Hydrate() {
	loadSlice(s, KeyProjects, &s.projects)
	loadSlice(s, KeyTasks, &s.tasks)
	loadSlice(s, KeyNotes, &s.notes)
	loadSlice(s, KeyGoals, &s.goals)
	loadSlice(s, KeyFinance, &s.finance)
	loadSlice(s, KeyHabits, &s.habits)
	loadSlice(s, KeyRelationships, &s.relationships)
	loadSlice(s, KeyReviews, &s.reviews)
	loadSlice(s, KeySomeday, &s.someday)

	if !loadSlice(s, KeyLifeAreas, &s.lifeAreas) || len(s.lifeAreas) == 0 {
		s.lifeAreas = DefaultLifeAreas()
	}

	s.theme = ThemeSoft
	loadValue(s, KeyTheme, &s.theme)
	s.welcomeSeen = false
	loadValue(s, KeyWelcomeSeen, &s.welcomeSeen)
	s.licenseKey = ""
	loadValue(s, KeyLicenseKey, &s.licenseKey)
}

// EnableAutosave arms write-back: from now on every mutation persists its
// collection. Before this call no collection is written (the theme is the one
// exception, it always persists immediately).
func (s *Store) EnableAutosave() { s.autosave = true }

// NextID returns a fresh record identifier: the millisecond clock reading,
// bumped past the previously issued id so rapid sequential creation stays
// unique within this session.
func (s *Store) NextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// Theme returns the current theme preference.
func (s *Store) Theme() string { return s.theme }

// SetTheme changes the theme preference and persists it unconditionally,
// before and after autosave is armed.
func (s *Store) SetTheme(theme string) {
	s.theme = theme
	s.save(KeyTheme, theme)
}

// WelcomeSeen reports whether the welcome screen was already shown.
func (s *Store) WelcomeSeen() bool { return s.welcomeSeen }

// SetWelcomeSeen marks the welcome screen as shown.
func (s *Store) SetWelcomeSeen() {
	s.welcomeSeen = true
	s.save(KeyWelcomeSeen, true)
}

// LicenseKey returns the stored license key, or "".
func (s *Store) LicenseKey() string { return s.licenseKey }

// SetLicenseKey stores the license key. It survives ClearAll.
func (s *Store) SetLicenseKey(key string) {
	s.licenseKey = key
	s.save(KeyLicenseKey, key)
}

// persist writes a collection back to its slot, but only once autosave is
// armed. Failures are logged and swallowed: the in-memory state stays
// authoritative for the session even when the disk write is lost.
func (s *Store) persist(key string, v any) {
	if !s.autosave {
		return
	}
	s.save(key, v)
}

// save serializes and writes unconditionally, with the same swallow-on-error
// contract as persist.
func (s *Store) save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("error saving %q: %v", key, err)
		return
	}
	if err := s.storage.Save(key, string(data)); err != nil {
		log.Printf("error saving %q: %v", key, err)
	}
}

// loadSlice loads a collection slot into out, leaving an empty (non-nil)
// slice when the slot is absent or corrupt. It reports whether a stored value
// was actually decoded.
func loadSlice[T any](s *Store, key string, out *[]T) bool {
	*out = []T{}
	return loadValue(s, key, out)
}

// loadValue loads a slot into out, leaving out untouched when the slot is
// absent, and logging and leaving the provided default when it is corrupt.
func loadValue[T any](s *Store, key string, out *T) bool {
	raw, ok := s.storage.Load(key)
	if !ok {
		return false
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("error loading %q: %v", key, err)
		return false
	}
	*out = v
	return true
}

// record is any entity keyed by a unique string id within its collection.
type record interface {
	recordID() string
}

// replaceByID returns a copy of list with the record matching id replaced by
// fn's result. The original slice is never mutated.
func replaceByID[T record](list []T, id string, fn func(T) T) ([]T, bool) {
	for i, r := range list {
		if r.recordID() == id {
			out := slices.Clone(list)
			out[i] = fn(r)
			return out, true
		}
	}
	return list, false
}

// removeByID returns a copy of list with the record matching id filtered out.
func removeByID[T record](list []T, id string) ([]T, bool) {
	for i, r := range list {
		if r.recordID() == id {
			return slices.Delete(slices.Clone(list), i, i+1), true
		}
	}
	return list, false
}

// findByID returns a pointer to a copy of the record matching id, or nil.
func findByID[T record](list []T, id string) *T {
	for _, r := range list {
		if r.recordID() == id {
			r := r
			return &r
		}
	}
	return nil
}
