package lifeadmin

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/etnz/lifeadmin/date"
)

// BackupVersion identifies the backup bundle layout.
const BackupVersion = "1.0.0"

// Backup is a full snapshot of the storage. Each collection field carries the
// raw serialized value of its storage slot, untouched, so that a backup taken
// by one version can be restored by another without re-encoding. A nil field
// means the slot was empty when the backup was taken.
type Backup struct {
	Projects      *string `json:"projects"`
	Tasks         *string `json:"tasks"`
	Notes         *string `json:"notes"`
	Goals         *string `json:"goals"`
	Finance       *string `json:"finance"`
	Habits        *string `json:"habits"`
	Relationships *string `json:"relationships"`
	Reviews       *string `json:"reviews"`
	LifeAreas     *string `json:"lifeAreas"`
	Someday       *string `json:"someday"`
	Theme         string  `json:"theme"`
	ExportDate    string  `json:"exportDate"`
	Version       string  `json:"version"`
}

// collectionSlots maps storage keys to their slot in a Backup.
func (b *Backup) collectionSlots() map[string]**string {
	return map[string]**string{
		KeyProjects:      &b.Projects,
		KeyTasks:         &b.Tasks,
		KeyNotes:         &b.Notes,
		KeyGoals:         &b.Goals,
		KeyFinance:       &b.Finance,
		KeyHabits:        &b.Habits,
		KeyRelationships: &b.Relationships,
		KeyReviews:       &b.Reviews,
		KeyLifeAreas:     &b.LifeAreas,
		KeySomeday:       &b.Someday,
	}
}

// ExportAll snapshots every collection slot plus the theme into a Backup.
func ExportAll(storage Storage, now time.Time) Backup {
	var b Backup
	for key, slot := range b.collectionSlots() {
		if raw, ok := storage.Load(key); ok {
			raw := raw
			*slot = &raw
		}
	}
	b.Theme = ThemeSoft
	if raw, ok := storage.Load(KeyTheme); ok {
		var theme string
		if err := json.Unmarshal([]byte(raw), &theme); err == nil {
			b.Theme = theme
		}
	}
	b.ExportDate = now.UTC().Format(time.RFC3339)
	b.Version = BackupVersion
	return b
}

// Encode writes the backup as indented JSON.
func (b Backup) Encode(w io.Writer) error {
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// BackupFilename returns the conventional name for a backup taken on day.
func BackupFilename(day date.Date) string {
	return fmt.Sprintf("life-admin-backup-%s.json", day)
}

// ImportAll restores a backup bundle read from r. The bundle is parsed and
// checked in full before anything is written: a malformed bundle leaves the
// storage untouched. Slots absent from the bundle are left as they are.
func ImportAll(storage Storage, r io.Reader) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}
	var b Backup
	if err := json.Unmarshal(buf, &b); err != nil {
		return fmt.Errorf("parsing backup: %w", err)
	}

	// Empty fields count as absent, like null ones.
	slots := b.collectionSlots()
	for key, slot := range slots {
		if *slot == nil || **slot == "" {
			continue
		}
		if !json.Valid([]byte(**slot)) {
			return fmt.Errorf("parsing backup: %s holds invalid JSON", key)
		}
	}

	for key, slot := range slots {
		if *slot == nil || **slot == "" {
			continue
		}
		if err := storage.Save(key, **slot); err != nil {
			return fmt.Errorf("restoring %s: %w", key, err)
		}
	}
	if b.Theme != "" {
		raw, _ := json.Marshal(b.Theme)
		if err := storage.Save(KeyTheme, string(raw)); err != nil {
			return fmt.Errorf("restoring %s: %w", KeyTheme, err)
		}
	}
	return nil
}

// ClearAll deletes every data slot but keeps the license key and the
// welcome-seen flag.
func ClearAll(storage Storage) error {
	for _, key := range AllKeys {
		if key == KeyLicenseKey || key == KeyWelcomeSeen {
			continue
		}
		if err := storage.Delete(key); err != nil {
			return fmt.Errorf("clearing %s: %w", key, err)
		}
	}
	return nil
}
