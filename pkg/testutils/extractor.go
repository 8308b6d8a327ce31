package testutils

import (
	"context"

	"github.com/entitylens/entitylens/pkg/models"
)

var _ models.Extractor = &StubExtractor{}

// StubExtractor is a deterministic Extractor for tests. Entities are keyed
// by exact input text; texts without an entry yield no entities.
type StubExtractor struct {
	Entities     map[string][]models.Entity
	Descriptions map[string]string
	Err          error

	// Calls records every text passed to Extract, in order.
	Calls []string
}

func (s *StubExtractor) Extract(_ context.Context, text string) ([]models.Entity, error) {
	s.Calls = append(s.Calls, text)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Entities[text], nil
}

func (s *StubExtractor) Describe(label string) (string, bool) {
	description, ok := s.Descriptions[label]
	return description, ok
}

// SpanEntity builds an Entity with a single match covering the given text.
func SpanEntity(text, label string) models.Entity {
	return models.Entity{
		Name:  text,
		Label: label,
		Matches: []models.EntityMatch{
			{Start: 0, End: len(text), Text: text},
		},
	}
}
