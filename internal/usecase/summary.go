package usecase

import (
	"strings"
	"sync"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

// minSummaryLength is the minimum length of a professional summary.
const minSummaryLength = 50

type SummaryDraft struct {
	Summary string `json:"summary"`
}

type SummaryEditor struct {
	mu    sync.Mutex
	store *store.Store
	draft SummaryDraft
}

func NewSummaryEditor(s *store.Store) *SummaryEditor {
	return &SummaryEditor{store: s, draft: SummaryDraft{
		Summary: s.Current().ProfessionalSummary.Summary,
	}}
}

func (e *SummaryEditor) Draft() SummaryDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

func (e *SummaryEditor) Update(draft SummaryDraft) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = draft
	summary := strings.TrimSpace(draft.Summary)

	errs := FieldErrors{}
	if summary == "" {
		errs["summary"] = "professional summary is required"
	} else if len(summary) < minSummaryLength {
		errs["summary"] = "summary must be at least 50 characters long"
	}
	if len(errs) > 0 {
		return errs
	}

	e.store.Apply(store.ProfessionalSummaryUpdate{Value: model.ProfessionalSummary{Summary: summary}})
	return nil
}
