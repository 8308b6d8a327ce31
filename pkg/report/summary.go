package report

import (
	"sort"

	"github.com/entitylens/entitylens/pkg/models"
)

// DefaultTopEntities is how many of the most frequent entities Summarize
// keeps when no explicit limit is given. Deliberately larger than the
// number the console summary displays.
const DefaultTopEntities = 10

// Summarize derives descriptive statistics from a ResultSet. It is pure:
// no logging, no printing. Returns models.ErrNoResults for an empty
// ResultSet so callers never divide by zero. The describe func may be nil.
func Summarize(
	results models.ResultSet,
	describe models.DescribeFunc,
	topEntities int,
) (*models.SummaryStatistics, error) {
	if len(results) == 0 {
		return nil, models.ErrNoResults
	}
	if topEntities <= 0 {
		topEntities = DefaultTopEntities
	}

	textIDs := make(map[int]struct{})
	typeCounts := make(map[string]int)
	entityCounts := make(map[string]int)
	var typeOrder []string
	var entityOrder []string

	for _, record := range results {
		textIDs[record.TextID] = struct{}{}

		if _, seen := typeCounts[record.EntityType]; !seen {
			typeOrder = append(typeOrder, record.EntityType)
		}
		typeCounts[record.EntityType]++

		if _, seen := entityCounts[record.EntityText]; !seen {
			entityOrder = append(entityOrder, record.EntityText)
		}
		entityCounts[record.EntityText]++
	}

	total := len(results)

	breakdown := make([]models.TypeCount, len(typeOrder))
	for i, entityType := range typeOrder {
		count := typeCounts[entityType]
		tc := models.TypeCount{
			Type:       entityType,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		}
		if describe != nil {
			tc.Description, _ = describe(entityType)
		}
		breakdown[i] = tc
	}
	// Stable sort keeps first-seen order for equal counts.
	sort.SliceStable(breakdown, func(a, b int) bool {
		return breakdown[a].Count > breakdown[b].Count
	})

	top := make([]models.EntityCount, len(entityOrder))
	for i, text := range entityOrder {
		top[i] = models.EntityCount{Text: text, Count: entityCounts[text]}
	}
	sort.SliceStable(top, func(a, b int) bool {
		return top[a].Count > top[b].Count
	})
	if len(top) > topEntities {
		top = top[:topEntities]
	}

	return &models.SummaryStatistics{
		TotalTexts:         len(textIDs),
		TotalEntities:      total,
		UniqueEntities:     len(entityCounts),
		UniqueTypes:        len(typeCounts),
		AvgEntitiesPerText: float64(total) / float64(len(textIDs)),
		TypeBreakdown:      breakdown,
		TopEntities:        top,
	}, nil
}
