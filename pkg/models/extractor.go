package models

import "context"

// DescribeFunc returns a human-readable description for an entity label.
// The second return is false when the label is not recognized.
type DescribeFunc func(label string) (string, bool)

// Extractor is the boundary to the pre-trained entity extraction capability.
// Implementations must treat an empty result as a valid outcome, not an
// error, and must never fail on unrecognized labels.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]Entity, error)
	Describe(label string) (string, bool)
}
