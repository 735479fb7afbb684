package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema string

// Validate checks a document against the embedded resume JSON schema.
// It is used where a full document crosses the boundary in one piece
// (import, restore), not on per-keystroke section updates.
func Validate(d ResumeDocument) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}

	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resumeSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
