package usecase

import (
	"strconv"
	"strings"
	"sync"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

type EducationEntryDraft struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
	CGPA        string `json:"cgpa"`
}

type EducationEditor struct {
	mu    sync.Mutex
	store *store.Store
	draft []EducationEntryDraft
}

func NewEducationEditor(s *store.Store) *EducationEditor {
	current := s.Current().Education
	draft := make([]EducationEntryDraft, 0, len(current))
	for _, ed := range current {
		draft = append(draft, EducationEntryDraft{
			Degree:      ed.Degree,
			Institution: ed.Institution,
			Location:    ed.Location,
			StartYear:   strconv.Itoa(ed.StartYear),
			EndYear:     strconv.Itoa(ed.EndYear),
			CGPA:        ed.CGPA,
		})
	}
	if len(draft) == 0 {
		draft = []EducationEntryDraft{{}}
	}
	return &EducationEditor{store: s, draft: draft}
}

func (e *EducationEditor) Draft() []EducationEntryDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]EducationEntryDraft{}, e.draft...)
}

func (e *EducationEditor) Update(draft []EducationEntryDraft) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = draft
	if errs := validateEducation(draft); len(errs) > 0 {
		return errs
	}

	out := make([]model.Education, 0, len(draft))
	for _, d := range draft {
		start, _ := strconv.Atoi(strings.TrimSpace(d.StartYear))
		end, _ := strconv.Atoi(strings.TrimSpace(d.EndYear))
		out = append(out, model.Education{
			Degree:      strings.TrimSpace(d.Degree),
			Institution: strings.TrimSpace(d.Institution),
			Location:    strings.TrimSpace(d.Location),
			StartYear:   start,
			EndYear:     end,
			CGPA:        strings.TrimSpace(d.CGPA),
		})
	}
	e.store.Apply(store.EducationUpdate{Value: out})
	return nil
}

// validateEducation checks presence and that years parse as integers.
// End-before-start stays accepted on purpose; rejecting it would shrink
// the accepted input set.
func validateEducation(draft []EducationEntryDraft) FieldErrors {
	errs := FieldErrors{}
	for i, ed := range draft {
		if strings.TrimSpace(ed.Degree) == "" {
			errs[fieldPath("education", i, "degree")] = "degree is required"
		}
		if strings.TrimSpace(ed.Institution) == "" {
			errs[fieldPath("education", i, "institution")] = "institution is required"
		}
		if strings.TrimSpace(ed.StartYear) == "" {
			errs[fieldPath("education", i, "startYear")] = "start year is required"
		} else if _, err := strconv.Atoi(strings.TrimSpace(ed.StartYear)); err != nil {
			errs[fieldPath("education", i, "startYear")] = "please enter a valid year"
		}
		if strings.TrimSpace(ed.EndYear) == "" {
			errs[fieldPath("education", i, "endYear")] = "end year is required"
		} else if _, err := strconv.Atoi(strings.TrimSpace(ed.EndYear)); err != nil {
			errs[fieldPath("education", i, "endYear")] = "please enter a valid year"
		}
	}
	return errs
}
