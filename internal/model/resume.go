package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the abbreviated month + full year form used wherever a
// resume date is rendered for a reader.
const DateLayout = "Jan 2006"

// PresentSentinel is the literal stored and rendered in place of an end
// date for an ongoing position.
const PresentSentinel = "Present"

type PersonalDetails struct {
	Name            string   `json:"name"`
	Profession      string   `json:"profession"`
	MobileNumber    string   `json:"mobileNumber"`
	Email           string   `json:"email"`
	LinkedinProfile string   `json:"linkedinProfile,omitempty"`
	PortfolioSite   string   `json:"portfolioSite,omitempty"`
	AdditionalLinks []string `json:"additionalLinks"`
}

type ProfessionalSummary struct {
	Summary string `json:"summary"`
}

type SkillCategory struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// EndDate is either a calendar date or the literal sentinel "Present".
// The two states are mutually exclusive: when Present is true, Date is
// zero and ignored.
type EndDate struct {
	Present bool
	Date    time.Time
}

func Present() EndDate { return EndDate{Present: true} }

func EndedOn(t time.Time) EndDate { return EndDate{Date: t} }

// String renders the end date for a reader: the sentinel literally, a
// calendar date in DateLayout.
func (e EndDate) String() string {
	if e.Present {
		return PresentSentinel
	}
	return e.Date.Format(DateLayout)
}

func (e EndDate) MarshalJSON() ([]byte, error) {
	if e.Present {
		return json.Marshal(PresentSentinel)
	}
	return json.Marshal(e.Date)
}

func (e *EndDate) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == PresentSentinel {
		*e = EndDate{Present: true}
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("end date: %w", err)
	}
	*e = EndDate{Date: t}
	return nil
}

type Experience struct {
	JobTitle    string    `json:"jobTitle"`
	CompanyName string    `json:"companyName"`
	Location    string    `json:"location,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     EndDate   `json:"endDate"`
	Description string    `json:"description"`
}

type Certification struct {
	CertificationName   string    `json:"certificationName"`
	IssuingOrganization string    `json:"issuingOrganization"`
	DateIssued          time.Time `json:"dateIssued"`
	Description         string    `json:"description,omitempty"`
}

// Education years carry no ordering constraint: EndYear >= StartYear is
// not enforced anywhere, matching the builder's accepted input set.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	StartYear   int    `json:"startYear"`
	EndYear     int    `json:"endYear"`
	CGPA        string `json:"cgpa,omitempty"`
}

// ResumeDocument is the aggregate root: six named sections, each list
// insertion-ordered and replaced only wholesale.
type ResumeDocument struct {
	PersonalDetails     PersonalDetails     `json:"personalDetails"`
	ProfessionalSummary ProfessionalSummary `json:"professionalSummary"`
	Skills              []SkillCategory     `json:"skills"`
	Experience          []Experience        `json:"experience"`
	Certifications      []Certification     `json:"certifications"`
	Education           []Education         `json:"education"`
}

// Empty returns the canonical empty document: all strings empty, all
// lists empty but non-nil.
func Empty() ResumeDocument {
	return ResumeDocument{
		PersonalDetails: PersonalDetails{AdditionalLinks: []string{}},
		Skills:          []SkillCategory{},
		Experience:      []Experience{},
		Certifications:  []Certification{},
		Education:       []Education{},
	}
}

// HasMinimalData reports whether a stored document carries enough data to
// seed the in-memory store: a non-empty name and a non-empty profession.
func (d ResumeDocument) HasMinimalData() bool {
	return d.PersonalDetails.Name != "" && d.PersonalDetails.Profession != ""
}

// Clone returns a deep copy so snapshots handed to subscribers or callers
// never alias the authoritative document's lists.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.PersonalDetails.AdditionalLinks = append([]string{}, d.PersonalDetails.AdditionalLinks...)
	out.Skills = make([]SkillCategory, len(d.Skills))
	for i, sc := range d.Skills {
		out.Skills[i] = SkillCategory{Category: sc.Category, Skills: append([]string{}, sc.Skills...)}
	}
	out.Experience = append([]Experience{}, d.Experience...)
	out.Certifications = append([]Certification{}, d.Certifications...)
	out.Education = append([]Education{}, d.Education...)
	return out
}
