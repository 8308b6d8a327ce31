package models

// EntityRecord is one row of analysis output: a single entity occurrence
// found in a source text. Records are immutable once created.
type EntityRecord struct {
	// TextID is the 1-based position of the source text in the corpus.
	TextID       int
	OriginalText string
	EntityText   string
	EntityType   string
	// Description is empty when the entity type is not in the label catalog.
	Description string
}

// ResultSet is the ordered collection of all entity occurrences found in one
// run. Insertion order follows (text, entity-within-text) traversal, so
// TextID values are non-decreasing.
type ResultSet []EntityRecord
