package usecase

import (
	"strings"
	"sync"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

type CertificationDraft struct {
	CertificationName   string `json:"certificationName"`
	IssuingOrganization string `json:"issuingOrganization"`
	DateIssued          string `json:"dateIssued"`
	Description         string `json:"description"`
}

type CertificationsEditor struct {
	mu    sync.Mutex
	store *store.Store
	draft []CertificationDraft
}

func NewCertificationsEditor(s *store.Store) *CertificationsEditor {
	current := s.Current().Certifications
	draft := make([]CertificationDraft, 0, len(current))
	for _, c := range current {
		draft = append(draft, CertificationDraft{
			CertificationName:   c.CertificationName,
			IssuingOrganization: c.IssuingOrganization,
			DateIssued:          c.DateIssued.Format("2006-01-02"),
			Description:         c.Description,
		})
	}
	if len(draft) == 0 {
		draft = []CertificationDraft{{}}
	}
	return &CertificationsEditor{store: s, draft: draft}
}

func (e *CertificationsEditor) Draft() []CertificationDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]CertificationDraft{}, e.draft...)
}

func (e *CertificationsEditor) Update(draft []CertificationDraft) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = draft
	if errs := validateCertifications(draft); len(errs) > 0 {
		return errs
	}

	out := make([]model.Certification, 0, len(draft))
	for _, d := range draft {
		issued, _ := parseInputDate(strings.TrimSpace(d.DateIssued))
		out = append(out, model.Certification{
			CertificationName:   strings.TrimSpace(d.CertificationName),
			IssuingOrganization: strings.TrimSpace(d.IssuingOrganization),
			DateIssued:          issued,
			Description:         strings.TrimSpace(d.Description),
		})
	}
	e.store.Apply(store.CertificationsUpdate{Value: out})
	return nil
}

func validateCertifications(draft []CertificationDraft) FieldErrors {
	errs := FieldErrors{}
	for i, c := range draft {
		if strings.TrimSpace(c.CertificationName) == "" {
			errs[fieldPath("certifications", i, "certificationName")] = "certification name is required"
		}
		if strings.TrimSpace(c.IssuingOrganization) == "" {
			errs[fieldPath("certifications", i, "issuingOrganization")] = "issuing organization is required"
		}
		if strings.TrimSpace(c.DateIssued) == "" {
			errs[fieldPath("certifications", i, "dateIssued")] = "date issued is required"
		} else if _, ok := parseInputDate(strings.TrimSpace(c.DateIssued)); !ok {
			errs[fieldPath("certifications", i, "dateIssued")] = "please enter a valid date"
		}
	}
	return errs
}
