package usecase

import (
	"strings"
	"sync"

	"resume-builder/internal/model"
	"resume-builder/internal/store"
)

type PersonalDetailsDraft struct {
	Name            string   `json:"name"`
	Profession      string   `json:"profession"`
	MobileNumber    string   `json:"mobileNumber"`
	Email           string   `json:"email"`
	LinkedinProfile string   `json:"linkedinProfile"`
	PortfolioSite   string   `json:"portfolioSite"`
	AdditionalLinks []string `json:"additionalLinks"`
}

// PersonalDetailsEditor owns the working draft of the personal details
// section. A draft reaches the document store only when every field
// validates; an invalid draft is held locally with its field errors.
type PersonalDetailsEditor struct {
	mu    sync.Mutex
	store *store.Store
	draft PersonalDetailsDraft
}

func NewPersonalDetailsEditor(s *store.Store) *PersonalDetailsEditor {
	pd := s.Current().PersonalDetails
	return &PersonalDetailsEditor{store: s, draft: PersonalDetailsDraft{
		Name:            pd.Name,
		Profession:      pd.Profession,
		MobileNumber:    pd.MobileNumber,
		Email:           pd.Email,
		LinkedinProfile: pd.LinkedinProfile,
		PortfolioSite:   pd.PortfolioSite,
		AdditionalLinks: append([]string{}, pd.AdditionalLinks...),
	}}
}

func (e *PersonalDetailsEditor) Draft() PersonalDetailsDraft {
	e.mu.Lock()
	defer e.mu.Unlock()
	d := e.draft
	d.AdditionalLinks = append([]string{}, e.draft.AdditionalLinks...)
	return d
}

// Update replaces the draft and, when it is fully valid, pushes a
// normalized copy of the section into the store.
func (e *PersonalDetailsEditor) Update(draft PersonalDetailsDraft) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = draft
	if errs := validatePersonalDetails(draft); len(errs) > 0 {
		return errs
	}
	e.store.Apply(store.PersonalDetailsUpdate{Value: normalizePersonalDetails(draft)})
	return nil
}

func validatePersonalDetails(d PersonalDetailsDraft) FieldErrors {
	errs := FieldErrors{}

	if name := strings.TrimSpace(d.Name); name == "" {
		errs["name"] = "name is required"
	} else if len(name) < 2 {
		errs["name"] = "name must be at least 2 characters long"
	}

	if prof := strings.TrimSpace(d.Profession); prof == "" {
		errs["profession"] = "profession is required"
	} else if len(prof) < 2 {
		errs["profession"] = "profession must be at least 2 characters long"
	}

	if mobile := strings.TrimSpace(d.MobileNumber); mobile == "" {
		errs["mobileNumber"] = "mobile number is required"
	} else if !mobilePattern.MatchString(mobile) {
		errs["mobileNumber"] = "please enter a valid phone number"
	}

	if email := strings.TrimSpace(d.Email); email == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(email) {
		errs["email"] = "please enter a valid email address"
	}

	if l := strings.TrimSpace(d.LinkedinProfile); l != "" && !linkedinPattern.MatchString(l) {
		errs["linkedinProfile"] = "please enter a valid LinkedIn profile URL"
	}
	if p := strings.TrimSpace(d.PortfolioSite); p != "" && !urlPattern.MatchString(p) {
		errs["portfolioSite"] = "please enter a valid URL"
	}
	for i, link := range d.AdditionalLinks {
		if l := strings.TrimSpace(link); l != "" && !urlPattern.MatchString(l) {
			errs[fieldPath("additionalLinks", i, "")] = "please enter a valid URL"
		}
	}

	return errs
}

func normalizePersonalDetails(d PersonalDetailsDraft) model.PersonalDetails {
	links := make([]string, 0, len(d.AdditionalLinks))
	for _, link := range d.AdditionalLinks {
		if l := strings.TrimSpace(link); l != "" {
			links = append(links, l)
		}
	}
	return model.PersonalDetails{
		Name:            strings.TrimSpace(d.Name),
		Profession:      strings.TrimSpace(d.Profession),
		MobileNumber:    strings.TrimSpace(d.MobileNumber),
		Email:           strings.TrimSpace(d.Email),
		LinkedinProfile: strings.TrimSpace(d.LinkedinProfile),
		PortfolioSite:   strings.TrimSpace(d.PortfolioSite),
		AdditionalLinks: links,
	}
}
