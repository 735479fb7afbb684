package usecase

import (
	"strings"
	"sync"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

type ExperienceEntryDraft struct {
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsPresent   bool   `json:"isPresent"`
	Description string `json:"description"`
}

type ExperienceEditor struct {
	mu    sync.Mutex
	store *store.Store
	draft []ExperienceEntryDraft
}

func NewExperienceEditor(s *store.Store) *ExperienceEditor {
	current := s.Current().Experience
	draft := make([]ExperienceEntryDraft, 0, len(current))
	for _, exp := range current {
		d := ExperienceEntryDraft{
			JobTitle:    exp.JobTitle,
			CompanyName: exp.CompanyName,
			Location:    exp.Location,
			StartDate:   exp.StartDate.Format("2006-01-02"),
			IsPresent:   exp.EndDate.Present,
			Description: exp.Description,
		}
		if !exp.EndDate.Present {
			d.EndDate = exp.EndDate.Date.Format("2006-01-02")
		}
		draft = append(draft, d)
	}
	if len(draft) == 0 {
		draft = []ExperienceEntryDraft{{}}
	}
	return &ExperienceEditor{store: s, draft: draft}
}

func (e *ExperienceEditor) Draft() []ExperienceEntryDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]ExperienceEntryDraft{}, e.draft...)
}

func (e *ExperienceEditor) Update(draft []ExperienceEntryDraft) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = draft
	if errs := validateExperience(draft); len(errs) > 0 {
		return errs
	}
	e.store.Apply(store.ExperienceUpdate{Value: normalizeExperience(draft)})
	return nil
}

func validateExperience(draft []ExperienceEntryDraft) FieldErrors {
	errs := FieldErrors{}
	for i, exp := range draft {
		if strings.TrimSpace(exp.JobTitle) == "" {
			errs[fieldPath("experience", i, "jobTitle")] = "job title is required"
		}
		if strings.TrimSpace(exp.CompanyName) == "" {
			errs[fieldPath("experience", i, "companyName")] = "company name is required"
		}
		if strings.TrimSpace(exp.Description) == "" {
			errs[fieldPath("experience", i, "description")] = "description is required"
		}

		if strings.TrimSpace(exp.StartDate) == "" {
			errs[fieldPath("experience", i, "startDate")] = "start date is required"
		} else if _, ok := parseInputDate(strings.TrimSpace(exp.StartDate)); !ok {
			errs[fieldPath("experience", i, "startDate")] = "please enter a valid date"
		}

		// the Present flag supersedes the end date field entirely
		if !exp.IsPresent {
			if strings.TrimSpace(exp.EndDate) == "" {
				errs[fieldPath("experience", i, "endDate")] = "end date is required"
			} else if _, ok := parseInputDate(strings.TrimSpace(exp.EndDate)); !ok {
				errs[fieldPath("experience", i, "endDate")] = "please enter a valid date"
			}
		}
	}
	return errs
}

func normalizeExperience(draft []ExperienceEntryDraft) []model.Experience {
	out := make([]model.Experience, 0, len(draft))
	for _, d := range draft {
		start, _ := parseInputDate(strings.TrimSpace(d.StartDate))
		end := model.Present()
		if !d.IsPresent {
			t, _ := parseInputDate(strings.TrimSpace(d.EndDate))
			end = model.EndedOn(t)
		}
		out = append(out, model.Experience{
			JobTitle:    strings.TrimSpace(d.JobTitle),
			CompanyName: strings.TrimSpace(d.CompanyName),
			Location:    strings.TrimSpace(d.Location),
			StartDate:   start,
			EndDate:     end,
			Description: strings.TrimSpace(d.Description),
		})
	}
	return out
}
