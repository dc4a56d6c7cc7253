// Package lifeadmin implements the data core of a local-first personal life
// organizer: ordered collections of typed records persisted as durable
// key/value slots, with pure derivation routines computed over them.
package lifeadmin

import (
	"fmt"
	"os"
	"path/filepath"
)

// Durable keys. The names match the original data layout so backups keep
// importing cleanly across versions.
const (
	KeyProjects      = "lifeadmin_projects"
	KeyTasks         = "lifeadmin_tasks"
	KeyNotes         = "lifeadmin_notes"
	KeyGoals         = "lifeadmin_goals"
	KeyFinance       = "lifeadmin_finance"
	KeyHabits        = "lifeadmin_habits"
	KeyRelationships = "lifeadmin_relationships"
	KeyReviews       = "lifeadmin_reviews"
	KeyLifeAreas     = "lifeadmin_life_areas"
	KeySomeday       = "lifeadmin_someday"
	KeyTheme         = "lifeadmin_theme"
	KeyWelcomeSeen   = "lifeadmin_welcome_seen"
	KeyLicenseKey    = "lifeadmin_license_key"
)

// AllKeys lists every durable key the organizer owns.
var AllKeys = []string{
	KeyProjects, KeyTasks, KeyNotes, KeyGoals, KeyFinance, KeyHabits,
	KeyRelationships, KeyReviews, KeyLifeAreas, KeySomeday,
	KeyTheme, KeyWelcomeSeen, KeyLicenseKey,
}

// Storage is a durable key/value slot provider. Values are the raw serialized
// form of a collection or scalar; interpreting them is the store's business.
type Storage interface {
	// Save writes raw under key, overwriting any prior value.
	Save(key, raw string) error
	// Load reads the raw value at key. ok is false when the key is absent.
	Load(key string) (raw string, ok bool)
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// DirStorage persists each key as a file in a data directory. It is the file
// equivalent of a browser-profile key/value store: human readable, easy to
// back up, last writer wins.
type DirStorage struct {
	dir string
}

// NewDirStorage returns a DirStorage rooted at dir. The directory is created
// lazily on first save.
func NewDirStorage(dir string) DirStorage { return DirStorage{dir: dir} }

func (s DirStorage) path(key string) string { return filepath.Join(s.dir, key+".json") }

func (s DirStorage) Save(key, raw string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(key), []byte(raw), 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", s.path(key), err)
	}
	return nil
}

func (s DirStorage) Load(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s DirStorage) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not delete %q: %w", s.path(key), err)
	}
	return nil
}

// MemStorage is an in-memory Storage for tests and dry runs.
type MemStorage map[string]string

func NewMemStorage() MemStorage { return make(MemStorage) }

func (m MemStorage) Save(key, raw string) error { m[key] = raw; return nil }

func (m MemStorage) Load(key string) (string, bool) {
	raw, ok := m[key]
	return raw, ok
}

func (m MemStorage) Delete(key string) error { delete(m, key); return nil }
