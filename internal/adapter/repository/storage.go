package repository

import (
	"database/sql"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// Fixed keys of the three logical records.
const (
	currentResumeKey    = "current_resume"
	selectedTemplateKey = "selected_template"
	savedResumesKey     = "resume_builder_saves"
)

const (
	// DefaultTemplateID is returned when no template selection has been
	// stored yet.
	DefaultTemplateID = "modern"

	// maxSaves caps the named-save list; older entries are garbage
	// collected by last-modified.
	maxSaves = 10
)

// SavedResume is a named, timestamped snapshot of a full document plus
// the template active at save time. Entries are never mutated after
// creation; each save produces a new one.
type SavedResume struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Data         model.ResumeDocument `json:"data"`
	Template     string               `json:"template"`
	LastModified time.Time            `json:"lastModified"`
	Created      time.Time            `json:"created"`
}

// Storage is the durable key-value store for the builder: the current
// in-progress document, the selected template id, and the capped list of
// named saves. Reads never fail on a missing key, and a payload that
// does not decode is treated the same as a missing one.
type Storage struct {
	db  *sql.DB
	now func() time.Time
}

func NewStorage(db *sql.DB) *Storage {
	return &Storage{db: db, now: time.Now}
}

// get returns the raw value for a key. A missing or unreadable row is
// absent; there is no corruption-reporting path.
func (s *Storage) get(key string) ([]byte, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return nil, false
	}
	return []byte(value), true
}

func (s *Storage) set(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO kv_store (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, string(value))
	return err
}

func (s *Storage) delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv_store WHERE key = ?`, key)
	return err
}

// decode is the single seam through which every stored payload is
// parsed. Malformed payloads count as absent, never as errors.
func decode(raw []byte, out any) bool {
	return json.Unmarshal(raw, out) == nil
}

// SaveCurrent writes the current document and the selected template id.
// Last call wins.
func (s *Storage) SaveCurrent(doc model.ResumeDocument, templateID string) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := s.set(currentResumeKey, raw); err != nil {
		return err
	}
	return s.set(selectedTemplateKey, []byte(templateID))
}

// LoadCurrent returns the stored in-progress document, or absent when
// the record is missing or corrupt.
func (s *Storage) LoadCurrent() (model.ResumeDocument, bool) {
	raw, ok := s.get(currentResumeKey)
	if !ok {
		return model.ResumeDocument{}, false
	}
	var doc model.ResumeDocument
	if !decode(raw, &doc) {
		return model.ResumeDocument{}, false
	}
	return doc, true
}

// SelectedTemplate returns the stored template id, defaulting to
// DefaultTemplateID when absent.
func (s *Storage) SelectedTemplate() string {
	raw, ok := s.get(selectedTemplateKey)
	if !ok || len(raw) == 0 {
		return DefaultTemplateID
	}
	return string(raw)
}

// SaveNamed appends a new snapshot under a fresh id and enforces the
// retention cap: when the list exceeds maxSaves, only the most recent
// entries by last-modified survive.
func (s *Storage) SaveNamed(name string, doc model.ResumeDocument, templateID string) (string, error) {
	now := s.now()
	entry := SavedResume{
		ID:           uuid.NewString(),
		Name:         name,
		Data:         doc,
		Template:     templateID,
		LastModified: now,
		Created:      now,
	}

	all := append(s.ListAll(), entry)
	if len(all) > maxSaves {
		sortByLastModified(all)
		all = all[:maxSaves]
	}

	raw, err := json.Marshal(all)
	if err != nil {
		return "", err
	}
	if err := s.set(savedResumesKey, raw); err != nil {
		return "", err
	}
	return entry.ID, nil
}

// ListAll returns every saved resume in stored order, empty when the
// record is missing or corrupt.
func (s *Storage) ListAll() []SavedResume {
	raw, ok := s.get(savedResumesKey)
	if !ok {
		return []SavedResume{}
	}
	var all []SavedResume
	if !decode(raw, &all) {
		return []SavedResume{}
	}
	return all
}

// ListRecent returns the n most recently modified saves, newest first.
func (s *Storage) ListRecent(n int) []SavedResume {
	all := s.ListAll()
	sortByLastModified(all)
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// LoadByID returns the saved resume with the given id, or absent.
func (s *Storage) LoadByID(id string) (SavedResume, bool) {
	for _, sr := range s.ListAll() {
		if sr.ID == id {
			return sr, true
		}
	}
	return SavedResume{}, false
}

// DeleteByID removes the matching entry and rewrites the list record.
func (s *Storage) DeleteByID(id string) error {
	all := s.ListAll()
	kept := all[:0]
	for _, sr := range all {
		if sr.ID != id {
			kept = append(kept, sr)
		}
	}
	raw, err := json.Marshal(kept)
	if err != nil {
		return err
	}
	return s.set(savedResumesKey, raw)
}

// HasUnsavedData reports whether an in-progress document is stored.
func (s *Storage) HasUnsavedData() bool {
	_, ok := s.LoadCurrent()
	return ok
}

// ClearAll removes all three records.
func (s *Storage) ClearAll() error {
	for _, key := range []string{currentResumeKey, selectedTemplateKey, savedResumesKey} {
		if err := s.delete(key); err != nil {
			return err
		}
	}
	return nil
}

// sortByLastModified orders newest first. Ties on last-modified fall
// back to created, then to id, so retention is deterministic.
func sortByLastModified(saves []SavedResume) {
	sort.SliceStable(saves, func(i, j int) bool {
		a, b := saves[i], saves[j]
		if !a.LastModified.Equal(b.LastModified) {
			return a.LastModified.After(b.LastModified)
		}
		if !a.Created.Equal(b.Created) {
			return a.Created.After(b.Created)
		}
		return a.ID > b.ID
	})
}
