package export

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"resume-builder/internal/model"
	"resume-builder/internal/templates"
)

func exportDocument() model.ResumeDocument {
	start := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, time.December, 1, 0, 0, 0, 0, time.UTC)
	return model.ResumeDocument{
		PersonalDetails: model.PersonalDetails{
			Name:            "Ada Lovelace",
			Profession:      "Software Engineer",
			MobileNumber:    "+4412345678",
			Email:           "ada@example.com",
			LinkedinProfile: "https://www.linkedin.com/in/ada-lovelace",
			AdditionalLinks: []string{},
		},
		ProfessionalSummary: model.ProfessionalSummary{
			Summary: "Engineer with a decade of experience building analytical engines and compilers.",
		},
		Skills: []model.SkillCategory{
			{Category: "Languages", Skills: []string{"Go", "SQL"}},
		},
		Experience: []model.Experience{
			{
				JobTitle:    "Engineer",
				CompanyName: "Analytical Engines Ltd",
				Location:    "London",
				StartDate:   start,
				EndDate:     model.Present(),
				Description: "Built things.",
			},
			{
				JobTitle:    "Junior Engineer",
				CompanyName: "Difference Engines Ltd",
				StartDate:   time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC),
				EndDate:     model.EndedOn(end),
				Description: "Assembled gears.",
			},
		},
		Certifications: []model.Certification{
			{
				CertificationName:   "Cloud Architect",
				IssuingOrganization: "Example Org",
				DateIssued:          time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		Education: []model.Education{
			{Degree: "BSc Mathematics", Institution: "University", Location: "Oxford", StartYear: 2014, EndYear: 2018, CGPA: "First"},
		},
	}
}

func TestRenderView(t *testing.T) {
	doc := exportDocument()
	tpl := templates.NewRegistry().Default()

	html, err := RenderView(doc, tpl)
	if err != nil {
		t.Fatalf("RenderView: %v", err)
	}

	for _, want := range []string{
		`id="resume"`,
		"Ada Lovelace",
		"Mar 2021 – Present",
		"Jun 2018 – Dec 2020",
		"Languages:</strong> Go, SQL",
		"2014 – 2018",
		"#1976d2",
		"Roboto, Arial, sans-serif",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered view missing %q", want)
		}
	}
	if strings.Contains(html, "ZgotmplZ") {
		t.Fatal("style tokens were rejected by the CSS sanitizer")
	}
}

func TestRenderViewSkipsEmptySections(t *testing.T) {
	tpl := templates.NewRegistry().Default()

	html, err := RenderView(model.Empty(), tpl)
	if err != nil {
		t.Fatalf("RenderView: %v", err)
	}
	for _, absent := range []string{"Experience", "Education", "Certifications", "Skills"} {
		if strings.Contains(html, ">"+absent+"<") {
			t.Fatalf("empty document should not render the %s section", absent)
		}
	}
}

func TestDOCXLines(t *testing.T) {
	doc := exportDocument()

	if got := skillLine(doc.Skills[0]); got != "Languages: Go, SQL" {
		t.Fatalf("skill line = %q", got)
	}
	if got := experienceHeading(doc.Experience[0]); got != "Engineer | Analytical Engines Ltd" {
		t.Fatalf("experience heading = %q", got)
	}
	if got := experienceMeta(doc.Experience[0]); got != "London | Mar 2021 – Present" {
		t.Fatalf("experience meta = %q", got)
	}
	if got := experienceMeta(doc.Experience[1]); got != "Jun 2018 – Dec 2020" {
		t.Fatalf("experience meta without location = %q", got)
	}
	if got := educationHeading(doc.Education[0]); got != "BSc Mathematics – University" {
		t.Fatalf("education heading = %q", got)
	}
	if got := educationMeta(doc.Education[0]); got != "Oxford | 2014 – 2018 | First" {
		t.Fatalf("education meta = %q", got)
	}
	if got := certificationLine(doc.Certifications[0]); got != "Cloud Architect – Example Org, Jun 2023" {
		t.Fatalf("certification line = %q", got)
	}
}

func TestExportDOCX(t *testing.T) {
	b, err := ExportDOCX(exportDocument())
	if err != nil {
		t.Fatalf("ExportDOCX: %v", err)
	}
	// a docx file is a zip archive
	if !bytes.HasPrefix(b, []byte("PK")) {
		t.Fatalf("expected a zip container, got leading bytes %q", b[:min(4, len(b))])
	}
}

type stubRenderer struct {
	lastHTML string
}

func (s *stubRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	s.lastHTML = html
	return []byte("%PDF-1.4 stub"), nil
}

func TestPDFExporter(t *testing.T) {
	r := &stubRenderer{}
	e := NewPDFExporter(r)

	b, err := e.Export(context.Background(), exportDocument(), templates.NewRegistry().Default())
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatal("expected the renderer's PDF bytes")
	}
	if !strings.Contains(r.lastHTML, `id="resume"`) {
		t.Fatal("renderer should receive the printable view")
	}
}
