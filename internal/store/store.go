package store

import (
	"sync"

	"resume-builder/internal/model"
)

// Persistence is the slice of the storage layer the document store needs:
// a seed document at construction and clearing on reset.
type Persistence interface {
	LoadCurrent() (model.ResumeDocument, bool)
	ClearAll() error
}

// SectionUpdate replaces exactly one named section of the document. One
// variant exists per section, so adding a section is a compile-time
// change rather than a stringly-typed merge.
type SectionUpdate interface {
	Section() string
	apply(*model.ResumeDocument)
}

type PersonalDetailsUpdate struct{ Value model.PersonalDetails }

func (PersonalDetailsUpdate) Section() string { return "personalDetails" }
func (u PersonalDetailsUpdate) apply(d *model.ResumeDocument) {
	d.PersonalDetails = u.Value
}

type ProfessionalSummaryUpdate struct{ Value model.ProfessionalSummary }

func (ProfessionalSummaryUpdate) Section() string { return "professionalSummary" }
func (u ProfessionalSummaryUpdate) apply(d *model.ResumeDocument) {
	d.ProfessionalSummary = u.Value
}

type SkillsUpdate struct{ Value []model.SkillCategory }

func (SkillsUpdate) Section() string { return "skills" }
func (u SkillsUpdate) apply(d *model.ResumeDocument) {
	d.Skills = u.Value
}

type ExperienceUpdate struct{ Value []model.Experience }

func (ExperienceUpdate) Section() string { return "experience" }
func (u ExperienceUpdate) apply(d *model.ResumeDocument) {
	d.Experience = u.Value
}

type CertificationsUpdate struct{ Value []model.Certification }

func (CertificationsUpdate) Section() string { return "certifications" }
func (u CertificationsUpdate) apply(d *model.ResumeDocument) {
	d.Certifications = u.Value
}

type EducationUpdate struct{ Value []model.Education }

func (EducationUpdate) Section() string { return "education" }
func (u EducationUpdate) apply(d *model.ResumeDocument) {
	d.Education = u.Value
}

type subscriber struct {
	id int
	fn func(model.ResumeDocument)
}

// Store is the single source of truth for the current resume document.
// Sections are replaced wholesale through Apply; every resulting full
// document is pushed synchronously to subscribers in publish order.
type Store struct {
	mu      sync.Mutex
	current model.ResumeDocument
	subs    []subscriber
	nextID  int
	persist Persistence
}

// New builds a store seeded from the persistence layer's last durable
// document when that document has minimally valid data; otherwise it
// starts from the canonical empty document. persist may be nil.
func New(persist Persistence) *Store {
	s := &Store{current: model.Empty(), persist: persist}
	if persist != nil {
		if doc, ok := persist.LoadCurrent(); ok && doc.HasMinimalData() {
			s.current = doc.Clone()
		}
	}
	return s
}

// Current returns a snapshot of the latest document.
func (s *Store) Current() model.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Apply replaces the update's section, leaving all others untouched, and
// publishes the new full document. The caller is expected to pass only
// already-validated data; no validation happens here.
func (s *Store) Apply(u SectionUpdate) {
	s.mu.Lock()
	u.apply(&s.current)
	doc, subs := s.current.Clone(), append([]subscriber{}, s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(doc)
	}
}

// Load replaces the whole document at once, as when restoring a saved
// resume, and publishes it.
func (s *Store) Load(doc model.ResumeDocument) {
	s.mu.Lock()
	s.current = doc.Clone()
	snap, subs := s.current.Clone(), append([]subscriber{}, s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}

// Reset replaces the document with the canonical empty document, clears
// all durable state, and publishes the empty document.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.current = model.Empty()
	snap, subs := s.current.Clone(), append([]subscriber{}, s.subs...)
	s.mu.Unlock()

	var err error
	if s.persist != nil {
		err = s.persist.ClearAll()
	}
	for _, sub := range subs {
		sub.fn(snap)
	}
	return err
}

// Subscription cancels delivery to one observer.
type Subscription struct {
	cancel func()
}

func (s *Subscription) Cancel() { s.cancel() }

// Subscribe registers an observer. The observer receives the current
// document synchronously before Subscribe returns, then one delivery per
// subsequent publish, in publish order, until cancelled.
func (s *Store) Subscribe(fn func(model.ResumeDocument)) *Subscription {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	snap := s.current.Clone()
	s.mu.Unlock()

	fn(snap)

	return &Subscription{cancel: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}}
}
