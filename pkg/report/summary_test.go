package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entitylens/entitylens/pkg/extractors"
	"github.com/entitylens/entitylens/pkg/models"
)

func record(textID int, entityText, entityType string) models.EntityRecord {
	return models.EntityRecord{
		TextID:       textID,
		OriginalText: "text",
		EntityText:   entityText,
		EntityType:   entityType,
	}
}

func TestSummarizeEmptyResultSet(t *testing.T) {
	stats, err := Summarize(models.ResultSet{}, extractors.DescribeLabel, 0)
	assert.ErrorIs(t, err, models.ErrNoResults)
	assert.Nil(t, stats)

	stats, err = Summarize(nil, extractors.DescribeLabel, 0)
	assert.ErrorIs(t, err, models.ErrNoResults)
	assert.Nil(t, stats)
}

func TestSummarizeSingleTextScenario(t *testing.T) {
	text := "Barack Obama was the 44th President of the United States and was born in Hawaii."
	results := models.ResultSet{
		{TextID: 1, OriginalText: text, EntityText: "Barack Obama", EntityType: "PERSON"},
		{TextID: 1, OriginalText: text, EntityText: "44th", EntityType: "ORDINAL"},
		{TextID: 1, OriginalText: text, EntityText: "the United States", EntityType: "GPE"},
		{TextID: 1, OriginalText: text, EntityText: "Hawaii", EntityType: "GPE"},
	}

	stats, err := Summarize(results, extractors.DescribeLabel, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalTexts)
	assert.Equal(t, 4, stats.TotalEntities)
	assert.Equal(t, 4, stats.UniqueEntities)
	assert.Equal(t, 3, stats.UniqueTypes)
	assert.Equal(t, 4.0, stats.AvgEntitiesPerText)

	require.Len(t, stats.TypeBreakdown, 3)
	assert.Equal(t, "GPE", stats.TypeBreakdown[0].Type)
	assert.Equal(t, 2, stats.TypeBreakdown[0].Count)
	assert.Equal(t, "Countries, cities, states", stats.TypeBreakdown[0].Description)
}

func TestSummarizePercentagesSumTo100(t *testing.T) {
	results := models.ResultSet{
		record(1, "Obama", "PERSON"),
		record(1, "Hawaii", "GPE"),
		record(2, "Apple", "ORG"),
		record(2, "Cupertino", "GPE"),
		record(3, "1975", "DATE"),
		record(3, "Microsoft", "ORG"),
		record(3, "Bill Gates", "PERSON"),
	}

	stats, err := Summarize(results, nil, 0)
	require.NoError(t, err)

	var sum float64
	for _, tc := range stats.TypeBreakdown {
		sum += tc.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestSummarizeTopEntities(t *testing.T) {
	results := models.ResultSet{
		record(1, "Obama", "PERSON"),
		record(1, "Hawaii", "GPE"),
		record(2, "Obama", "PERSON"),
		record(3, "Obama", "PERSON"),
	}

	stats, err := Summarize(results, nil, 0)
	require.NoError(t, err)

	require.NotEmpty(t, stats.TopEntities)
	assert.Equal(t, "Obama", stats.TopEntities[0].Text)
	assert.Equal(t, 3, stats.TopEntities[0].Count)
}

func TestSummarizeTopEntitiesLimit(t *testing.T) {
	var results models.ResultSet
	names := []string{"a", "b", "c", "d", "e"}
	for i, name := range names {
		// decreasing counts so ordering is unambiguous
		for j := 0; j < len(names)-i; j++ {
			results = append(results, record(1, name, "PERSON"))
		}
	}

	stats, err := Summarize(results, nil, 3)
	require.NoError(t, err)

	require.Len(t, stats.TopEntities, 3)
	assert.Equal(t, "a", stats.TopEntities[0].Text)
	assert.Equal(t, 5, stats.TopEntities[0].Count)
	assert.Equal(t, "c", stats.TopEntities[2].Text)
}

func TestSummarizeTypeOrderTiesFirstSeen(t *testing.T) {
	results := models.ResultSet{
		record(1, "one", "ORDINAL"),
		record(1, "Paris", "GPE"),
		record(2, "two", "ORDINAL"),
		record(2, "London", "GPE"),
	}

	stats, err := Summarize(results, nil, 0)
	require.NoError(t, err)

	require.Len(t, stats.TypeBreakdown, 2)
	assert.Equal(t, "ORDINAL", stats.TypeBreakdown[0].Type)
	assert.Equal(t, "GPE", stats.TypeBreakdown[1].Type)
}

func TestSummarizeUnknownTypeHasNoDescription(t *testing.T) {
	results := models.ResultSet{
		record(1, "thing", "MADE_UP_LABEL"),
	}

	stats, err := Summarize(results, extractors.DescribeLabel, 0)
	require.NoError(t, err)

	require.Len(t, stats.TypeBreakdown, 1)
	assert.Empty(t, stats.TypeBreakdown[0].Description)
}
