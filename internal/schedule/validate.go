package schedule

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rsked-radio/rcald/internal/model"
)

var ErrNoVersion = errors.New("schedule document has no version")

// ValidateDocument checks a posted schedule document before it is accepted
// for installation: it must be well-formed JSON carrying a version stamp,
// and a full import of it must succeed. Returns the document's version.
func ValidateDocument(raw []byte) (string, error) {
	var doc struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("unparseable schedule: %w", err)
	}
	if doc.Version == "" {
		return "", ErrNoVersion
	}
	full, err := ParseDocument(raw)
	if err != nil {
		return "", err
	}
	if err := NewEditorState().ImportDocument(full); err != nil {
		return "", err
	}
	return doc.Version, nil
}

// ParseDocument unmarshals a schedule document.
func ParseDocument(raw []byte) (*model.ScheduleDoc, error) {
	var doc model.ScheduleDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unparseable schedule: %w", err)
	}
	return &doc, nil
}
