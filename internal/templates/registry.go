package templates

import "sync"

// Style is a template's token set, applied to the rendered view.
type Style struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	TextColor      string `json:"textColor"`
	AccentColor    string `json:"accentColor"`
	FontFamily     string `json:"fontFamily"`
}

// Template is an immutable, compiled-in visual preset.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Preview     string `json:"preview"`
	Styles      Style  `json:"styles"`
}

// Registry is the static catalog of presets, read-only after
// construction. The current selection lives in Selector, not here.
type Registry struct {
	templates []Template
}

func NewRegistry() *Registry {
	return &Registry{templates: []Template{
		{
			ID:          "modern",
			Name:        "Modern",
			Description: "Clean and contemporary design with subtle colors",
			Preview:     "modern-preview",
			Styles: Style{
				PrimaryColor:   "#1976d2",
				SecondaryColor: "#f5f5f5",
				TextColor:      "#333",
				AccentColor:    "#ff4081",
				FontFamily:     "Roboto, Arial, sans-serif",
			},
		},
		{
			ID:          "minimal",
			Name:        "Minimal",
			Description: "Simple and elegant design with focus on content",
			Preview:     "minimal-preview",
			Styles: Style{
				PrimaryColor:   "#424242",
				SecondaryColor: "#ffffff",
				TextColor:      "#212121",
				AccentColor:    "#757575",
				FontFamily:     "Helvetica, Arial, sans-serif",
			},
		},
		{
			ID:          "ats",
			Name:        "ATS-Friendly",
			Description: "Optimized for Applicant Tracking Systems",
			Preview:     "ats-preview",
			Styles: Style{
				PrimaryColor:   "#000000",
				SecondaryColor: "#ffffff",
				TextColor:      "#000000",
				AccentColor:    "#333333",
				FontFamily:     "Arial, sans-serif",
			},
		},
		{
			ID:          "creative",
			Name:        "Creative",
			Description: "Bold design with vibrant colors",
			Preview:     "creative-preview",
			Styles: Style{
				PrimaryColor:   "#e91e63",
				SecondaryColor: "#fce4ec",
				TextColor:      "#333",
				AccentColor:    "#9c27b0",
				FontFamily:     "Montserrat, Arial, sans-serif",
			},
		},
	}}
}

// All returns the presets in registration order as a defensive copy.
func (r *Registry) All() []Template {
	return append([]Template{}, r.templates...)
}

// ByID returns the preset with the given id, or absent.
func (r *Registry) ByID(id string) (Template, bool) {
	for _, t := range r.templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// Default returns the first registered preset, always "modern".
func (r *Registry) Default() Template {
	return r.templates[0]
}

type selectorSub struct {
	id int
	fn func(string)
}

// Selector tracks the currently selected template id as a broadcast
// value, so the preview and the chooser stay in sync without a direct
// reference between them.
type Selector struct {
	mu      sync.Mutex
	current string
	subs    []selectorSub
	nextID  int
}

func NewSelector(initial string) *Selector {
	if initial == "" {
		initial = "modern"
	}
	return &Selector{current: initial}
}

// Current returns the selected template id.
func (s *Selector) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set publishes a new selection to every subscriber.
func (s *Selector) Set(id string) {
	s.mu.Lock()
	s.current = id
	subs := append([]selectorSub{}, s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(id)
	}
}

// Subscribe delivers the current selection immediately, then every
// subsequent Set, until the returned cancel func runs.
func (s *Selector) Subscribe(fn func(string)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, selectorSub{id: id, fn: fn})
	current := s.current
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
