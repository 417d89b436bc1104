package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Document is a versioned plan file (.wallplan): the data contract the
// editor produces and the kernel consumes.
type Document struct {
	Version  int       `json:"version"`
	Name     string    `json:"name,omitempty"`
	Created  time.Time `json:"created,omitzero"`
	Modified time.Time `json:"modified,omitzero"`

	// Millimeters per drawing unit. The kernel makes no assumption
	// about its value.
	ScaleMMPerUnit float64 `json:"scale_mm_per_unit"`

	Walls    []Wall    `json:"walls"`
	Openings []Opening `json:"openings,omitempty"`
}

// NewDocument creates an empty plan document with the given scale.
func NewDocument(name string, scaleMMPerUnit float64) *Document {
	now := time.Now()
	return &Document{
		Version:        1,
		Name:           name,
		Created:        now,
		Modified:       now,
		ScaleMMPerUnit: scaleMMPerUnit,
	}
}

// Load loads a plan document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if doc.ScaleMMPerUnit <= 0 {
		return nil, fmt.Errorf("plan %s: scale_mm_per_unit must be positive", path)
	}

	return &doc, nil
}

// Save saves the document to a file.
func (d *Document) Save(path string) error {
	d.Modified = time.Now()

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
