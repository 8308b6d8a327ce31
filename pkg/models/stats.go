package models

// TypeCount is the per-entity-type slice of a summary breakdown.
type TypeCount struct {
	Type        string
	Count       int
	Percentage  float64
	Description string
}

// EntityCount pairs an entity surface form with its occurrence count.
type EntityCount struct {
	Text  string
	Count int
}

// SummaryStatistics holds descriptive statistics derived from a ResultSet.
// It is recomputed each run and never persisted on its own.
type SummaryStatistics struct {
	TotalTexts         int
	TotalEntities      int
	UniqueEntities     int
	UniqueTypes        int
	AvgEntitiesPerText float64

	// TypeBreakdown is ordered by descending count, ties by first appearance.
	TypeBreakdown []TypeCount

	// TopEntities carries more entries than the console summary displays,
	// leaving headroom for downstream consumers of the full list.
	TopEntities []EntityCount
}
