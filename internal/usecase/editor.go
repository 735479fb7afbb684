package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// FieldErrors carries per-field validation messages, keyed by field path
// such as "experience[1].jobTitle". It is what an editor returns while a
// draft is held locally instead of being pushed to the store.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return strings.Join(parts, "; ")
}

var (
	mobilePattern   = regexp.MustCompile(`^[+]?[1-9][0-9]{0,15}$`)
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	linkedinPattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9-]+/?$`)
	urlPattern      = regexp.MustCompile(`^https?://.+`)
)

func fieldPath(section string, index int, field string) string {
	if field == "" {
		return fmt.Sprintf("%s[%d]", section, index)
	}
	return fmt.Sprintf("%s[%d].%s", section, index, field)
}

// dateLayouts are the input forms accepted from a date field, tried in
// order.
var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339}

func parseInputDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
