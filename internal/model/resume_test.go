package model

import (
	"encoding/json"
	"testing"
	"time"
)

func sampleDocument() ResumeDocument {
	start := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	return ResumeDocument{
		PersonalDetails: PersonalDetails{
			Name:            "Ada Lovelace",
			Profession:      "Software Engineer",
			MobileNumber:    "+4412345678",
			Email:           "ada@example.com",
			AdditionalLinks: []string{"https://example.com/ada"},
		},
		ProfessionalSummary: ProfessionalSummary{
			Summary: "Engineer with a decade of experience building analytical engines and compilers.",
		},
		Skills: []SkillCategory{
			{Category: "Languages", Skills: []string{"Go", "SQL"}},
		},
		Experience: []Experience{
			{
				JobTitle:    "Engineer",
				CompanyName: "Analytical Engines Ltd",
				StartDate:   start,
				EndDate:     Present(),
				Description: "Built things.",
			},
		},
		Certifications: []Certification{
			{
				CertificationName:   "Cloud Architect",
				IssuingOrganization: "Example Org",
				DateIssued:          start,
			},
		},
		Education: []Education{
			{Degree: "BSc Mathematics", Institution: "University", StartYear: 2014, EndYear: 2018},
		},
	}
}

func TestEndDateJSON(t *testing.T) {
	t.Run("present sentinel", func(t *testing.T) {
		b, err := json.Marshal(Present())
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != `"Present"` {
			t.Fatalf("expected literal Present, got %s", b)
		}

		var e EndDate
		if err := json.Unmarshal(b, &e); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !e.Present {
			t.Fatal("expected Present to survive a round trip")
		}
	})

	t.Run("calendar date", func(t *testing.T) {
		d := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
		b, err := json.Marshal(EndedOn(d))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		var e EndDate
		if err := json.Unmarshal(b, &e); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if e.Present {
			t.Fatal("expected a calendar date, got Present")
		}
		if !e.Date.Equal(d) {
			t.Fatalf("expected %v, got %v", d, e.Date)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		var e EndDate
		if err := json.Unmarshal([]byte(`"tomorrow"`), &e); err == nil {
			t.Fatal("expected an error for a non-date string")
		}
	})
}

func TestEndDateString(t *testing.T) {
	if got := Present().String(); got != "Present" {
		t.Fatalf("expected Present, got %q", got)
	}
	d := time.Date(2022, time.November, 3, 0, 0, 0, 0, time.UTC)
	if got := EndedOn(d).String(); got != "Nov 2022" {
		t.Fatalf("expected Nov 2022, got %q", got)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := sampleDocument()

	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got ResumeDocument
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	b2, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if string(b) != string(b2) {
		t.Fatalf("round trip changed the document:\n%s\n%s", b, b2)
	}
}

func TestHasMinimalData(t *testing.T) {
	tests := []struct {
		name       string
		docName    string
		profession string
		want       bool
	}{
		{"both present", "Ada", "Engineer", true},
		{"empty name", "", "Engineer", false},
		{"empty profession", "Ada", "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Empty()
			d.PersonalDetails.Name = tt.docName
			d.PersonalDetails.Profession = tt.profession
			if got := d.HasMinimalData(); got != tt.want {
				t.Fatalf("HasMinimalData() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	doc := sampleDocument()
	clone := doc.Clone()

	clone.Skills[0].Skills[0] = "Rust"
	clone.PersonalDetails.AdditionalLinks[0] = "changed"
	clone.Experience[0].JobTitle = "Manager"

	if doc.Skills[0].Skills[0] != "Go" {
		t.Fatal("clone shares the skills list with the original")
	}
	if doc.PersonalDetails.AdditionalLinks[0] != "https://example.com/ada" {
		t.Fatal("clone shares additional links with the original")
	}
	if doc.Experience[0].JobTitle != "Engineer" {
		t.Fatal("clone shares the experience list with the original")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleDocument()); err != nil {
		t.Fatalf("expected sample document to validate: %v", err)
	}

	bad := sampleDocument()
	bad.Skills = []SkillCategory{{Category: "Empty", Skills: []string{}}}
	if err := Validate(bad); err == nil {
		t.Fatal("expected a category with no skills to fail validation")
	}
}
