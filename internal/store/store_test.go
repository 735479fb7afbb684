package store_test

import (
	"reflect"
	"testing"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

type fakePersistence struct {
	doc     model.ResumeDocument
	hasDoc  bool
	cleared bool
}

func (f *fakePersistence) LoadCurrent() (model.ResumeDocument, bool) {
	return f.doc, f.hasDoc
}

func (f *fakePersistence) ClearAll() error {
	f.cleared = true
	return nil
}

func TestSectionIndependence(t *testing.T) {
	s := store.New(nil)

	details := model.PersonalDetails{
		Name:            "Ada Lovelace",
		Profession:      "Engineer",
		MobileNumber:    "+4412345678",
		Email:           "ada@example.com",
		AdditionalLinks: []string{},
	}
	skillsA := []model.SkillCategory{{Category: "Old", Skills: []string{"COBOL"}}}
	skillsB := []model.SkillCategory{{Category: "Languages", Skills: []string{"Go"}}}
	education := []model.Education{{Degree: "BSc", Institution: "University", StartYear: 2014, EndYear: 2018}}

	s.Apply(store.PersonalDetailsUpdate{Value: details})
	s.Apply(store.SkillsUpdate{Value: skillsA})
	s.Apply(store.EducationUpdate{Value: education})
	s.Apply(store.SkillsUpdate{Value: skillsB})

	got := s.Current()
	if !reflect.DeepEqual(got.PersonalDetails, details) {
		t.Fatalf("personal details changed: %+v", got.PersonalDetails)
	}
	if !reflect.DeepEqual(got.Skills, skillsB) {
		t.Fatalf("expected last-written skills, got %+v", got.Skills)
	}
	if !reflect.DeepEqual(got.Education, education) {
		t.Fatalf("education changed: %+v", got.Education)
	}
	if len(got.Experience) != 0 || len(got.Certifications) != 0 {
		t.Fatal("untouched sections should stay empty")
	}
}

func TestSubscribeDeliversCurrentThenEveryPublish(t *testing.T) {
	s := store.New(nil)

	var seen []model.ResumeDocument
	sub := s.Subscribe(func(d model.ResumeDocument) {
		seen = append(seen, d)
	})

	if len(seen) != 1 {
		t.Fatalf("expected immediate delivery on subscribe, got %d", len(seen))
	}

	s.Apply(store.ProfessionalSummaryUpdate{Value: model.ProfessionalSummary{Summary: "first"}})
	s.Apply(store.ProfessionalSummaryUpdate{Value: model.ProfessionalSummary{Summary: "second"}})
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	// one per publish, no coalescing, in call order
	if len(seen) != 4 {
		t.Fatalf("expected 4 deliveries, got %d", len(seen))
	}
	if seen[1].ProfessionalSummary.Summary != "first" || seen[2].ProfessionalSummary.Summary != "second" {
		t.Fatal("deliveries out of publish order")
	}
	if seen[3].ProfessionalSummary.Summary != "" {
		t.Fatal("reset should publish the empty document")
	}

	sub.Cancel()
	s.Apply(store.ProfessionalSummaryUpdate{Value: model.ProfessionalSummary{Summary: "after cancel"}})
	if len(seen) != 4 {
		t.Fatal("cancelled subscription still received a delivery")
	}
}

func TestSubscriberSnapshotsDoNotAlias(t *testing.T) {
	s := store.New(nil)

	var last model.ResumeDocument
	s.Subscribe(func(d model.ResumeDocument) { last = d })

	s.Apply(store.SkillsUpdate{Value: []model.SkillCategory{{Category: "Languages", Skills: []string{"Go"}}}})
	last.Skills[0].Skills[0] = "mutated"

	if s.Current().Skills[0].Skills[0] != "Go" {
		t.Fatal("mutating a delivered snapshot leaked into the store")
	}
}

func TestResetClearsPersistence(t *testing.T) {
	p := &fakePersistence{}
	s := store.New(p)

	s.Apply(store.ProfessionalSummaryUpdate{Value: model.ProfessionalSummary{Summary: "text"}})
	if err := s.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	if !p.cleared {
		t.Fatal("reset should clear durable state")
	}
	if !reflect.DeepEqual(s.Current(), model.Empty()) {
		t.Fatal("reset should leave the canonical empty document")
	}
}

func TestSeeding(t *testing.T) {
	seeded := model.Empty()
	seeded.PersonalDetails.Name = "Ada Lovelace"
	seeded.PersonalDetails.Profession = "Engineer"
	seeded.Experience = []model.Experience{{
		JobTitle:    "Engineer",
		CompanyName: "Analytical Engines Ltd",
		StartDate:   time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     model.Present(),
		Description: "Built things.",
	}}

	tests := []struct {
		name    string
		persist store.Persistence
		want    model.ResumeDocument
	}{
		{"valid stored document seeds", &fakePersistence{doc: seeded, hasDoc: true}, seeded},
		{"empty name falls back", &fakePersistence{doc: func() model.ResumeDocument {
			d := seeded.Clone()
			d.PersonalDetails.Name = ""
			return d
		}(), hasDoc: true}, model.Empty()},
		{"absent document falls back", &fakePersistence{}, model.Empty()},
		{"nil persistence falls back", nil, model.Empty()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.New(tt.persist)
			if got := s.Current(); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("seeded document mismatch:\n got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestLoadReplacesWholeDocument(t *testing.T) {
	s := store.New(nil)
	s.Apply(store.SkillsUpdate{Value: []model.SkillCategory{{Category: "Languages", Skills: []string{"Go"}}}})

	replacement := model.Empty()
	replacement.PersonalDetails.Name = "Grace Hopper"
	replacement.PersonalDetails.Profession = "Rear Admiral"

	var deliveries int
	s.Subscribe(func(model.ResumeDocument) { deliveries++ })

	s.Load(replacement)

	got := s.Current()
	if got.PersonalDetails.Name != "Grace Hopper" {
		t.Fatalf("load did not replace the document: %+v", got.PersonalDetails)
	}
	if len(got.Skills) != 0 {
		t.Fatal("load should discard prior sections")
	}
	if deliveries != 2 {
		t.Fatalf("expected subscribe + load deliveries, got %d", deliveries)
	}
}
