package export

import (
	"bytes"
	"fmt"
	"strings"

	docx "github.com/fumiama/go-docx"

	"resume-builder/internal/model"
)

// DefaultDOCXFilename names the download when the caller supplies none.
const DefaultDOCXFilename = "resume.docx"

// DOCXContentType is the MIME type of the produced byte stream.
const DOCXContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Run sizes in half-points, matching the proportions of the builder's
// print layout.
const (
	sizeTitle      = "32"
	sizeSubtitle   = "24"
	sizeHeading    = "24"
	sizeEntryTitle = "22"
	sizeBody       = "20"
	sizeMeta       = "18"
)

// ExportDOCX builds a structured document from the snapshot: contact
// block, summary, skills, experience, education, then certifications
// only when any exist. It is a pure transformation to bytes.
func ExportDOCX(doc model.ResumeDocument) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	title := w.AddParagraph().Justification("center")
	title.AddText(doc.PersonalDetails.Name).Size(sizeTitle).Bold()

	profession := w.AddParagraph().Justification("center")
	profession.AddText(doc.PersonalDetails.Profession).Size(sizeSubtitle)

	email := w.AddParagraph().Justification("center")
	email.AddText("Email: " + doc.PersonalDetails.Email).Size(sizeBody)

	phone := w.AddParagraph().Justification("center")
	phone.AddText("Phone: " + doc.PersonalDetails.MobileNumber).Size(sizeBody)

	heading(w, "PROFESSIONAL SUMMARY")
	w.AddParagraph().AddText(doc.ProfessionalSummary.Summary).Size(sizeBody)

	heading(w, "SKILLS")
	for _, sc := range doc.Skills {
		w.AddParagraph().AddText(skillLine(sc)).Size(sizeBody)
	}

	heading(w, "EXPERIENCE")
	for _, exp := range doc.Experience {
		w.AddParagraph().AddText(experienceHeading(exp)).Size(sizeEntryTitle).Bold()
		w.AddParagraph().AddText(experienceMeta(exp)).Size(sizeMeta)
		w.AddParagraph().AddText(exp.Description).Size(sizeBody)
	}

	heading(w, "EDUCATION")
	for _, edu := range doc.Education {
		w.AddParagraph().AddText(educationHeading(edu)).Size(sizeEntryTitle).Bold()
		w.AddParagraph().AddText(educationMeta(edu)).Size(sizeMeta)
	}

	if len(doc.Certifications) > 0 {
		heading(w, "CERTIFICATIONS & ACHIEVEMENTS")
		for _, cert := range doc.Certifications {
			w.AddParagraph().AddText(certificationLine(cert)).Size(sizeBody)
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serialize docx: %w", err)
	}
	return buf.Bytes(), nil
}

func heading(w *docx.Docx, text string) {
	w.AddParagraph().AddText(text).Size(sizeHeading).Bold()
}

func skillLine(sc model.SkillCategory) string {
	return fmt.Sprintf("%s: %s", sc.Category, strings.Join(sc.Skills, ", "))
}

func experienceHeading(exp model.Experience) string {
	return fmt.Sprintf("%s | %s", exp.JobTitle, exp.CompanyName)
}

// experienceMeta renders "location | Jan 2006 – Jan 2009"; an ongoing
// position ends in the literal Present.
func experienceMeta(exp model.Experience) string {
	rng := fmt.Sprintf("%s – %s", exp.StartDate.Format(model.DateLayout), exp.EndDate)
	if exp.Location != "" {
		return exp.Location + " | " + rng
	}
	return rng
}

func educationHeading(edu model.Education) string {
	return fmt.Sprintf("%s – %s", edu.Degree, edu.Institution)
}

func educationMeta(edu model.Education) string {
	var b strings.Builder
	if edu.Location != "" {
		b.WriteString(edu.Location)
		b.WriteString(" | ")
	}
	fmt.Fprintf(&b, "%d – %d", edu.StartYear, edu.EndYear)
	if edu.CGPA != "" {
		b.WriteString(" | ")
		b.WriteString(edu.CGPA)
	}
	return b.String()
}

func certificationLine(cert model.Certification) string {
	return fmt.Sprintf("%s – %s, %s",
		cert.CertificationName,
		cert.IssuingOrganization,
		cert.DateIssued.Format(model.DateLayout))
}
