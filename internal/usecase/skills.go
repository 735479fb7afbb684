package usecase

import (
	"strings"
	"sync"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

type SkillCategoryDraft struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// SkillsEditor owns the working draft of the skills section: an ordered
// list of categories, each with its own skill list.
type SkillsEditor struct {
	mu    sync.Mutex
	store *store.Store
	draft []SkillCategoryDraft
}

func NewSkillsEditor(s *store.Store) *SkillsEditor {
	current := s.Current().Skills
	draft := make([]SkillCategoryDraft, 0, len(current))
	for _, sc := range current {
		draft = append(draft, SkillCategoryDraft{
			Category: sc.Category,
			Skills:   append([]string{}, sc.Skills...),
		})
	}
	if len(draft) == 0 {
		draft = []SkillCategoryDraft{{Skills: []string{""}}}
	}
	return &SkillsEditor{store: s, draft: draft}
}

func (e *SkillsEditor) Draft() []SkillCategoryDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]SkillCategoryDraft{}, e.draft...)
}

func (e *SkillsEditor) Update(draft []SkillCategoryDraft) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = draft
	if errs := validateSkills(draft); len(errs) > 0 {
		return errs
	}
	e.store.Apply(store.SkillsUpdate{Value: normalizeSkills(draft)})
	return nil
}

func validateSkills(draft []SkillCategoryDraft) FieldErrors {
	errs := FieldErrors{}
	for i, sc := range draft {
		if strings.TrimSpace(sc.Category) == "" {
			errs[fieldPath("skills", i, "category")] = "category name is required"
		}
		nonEmpty := 0
		for _, skill := range sc.Skills {
			if strings.TrimSpace(skill) != "" {
				nonEmpty++
			}
		}
		if nonEmpty == 0 {
			errs[fieldPath("skills", i, "skills")] = "at least one skill is required"
		}
	}
	return errs
}

// normalizeSkills trims category names and drops blank skill entries, so
// every published category carries a non-empty skill list.
func normalizeSkills(draft []SkillCategoryDraft) []model.SkillCategory {
	out := make([]model.SkillCategory, 0, len(draft))
	for _, sc := range draft {
		skills := make([]string, 0, len(sc.Skills))
		for _, skill := range sc.Skills {
			if s := strings.TrimSpace(skill); s != "" {
				skills = append(skills, s)
			}
		}
		out = append(out, model.SkillCategory{
			Category: strings.TrimSpace(sc.Category),
			Skills:   skills,
		})
	}
	return out
}
