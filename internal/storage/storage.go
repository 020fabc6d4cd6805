// Package storage holds what the document store backends share.
package storage

import (
	"encoding/json"
	"fmt"

	"roomBooker/internal/models"
)

// Encode renders doc the way every backend persists it: indented JSON.
func Encode(doc *models.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	return data, nil
}

func Decode(data []byte) (*models.Document, error) {
	var doc models.Document

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	doc.Normalize()

	return &doc, nil
}
