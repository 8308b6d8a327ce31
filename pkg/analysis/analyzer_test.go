package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entitylens/entitylens/pkg/models"
	"github.com/entitylens/entitylens/pkg/testutils"
)

func TestAnalyzeFlattensEntitiesInOrder(t *testing.T) {
	texts := []string{
		"Barack Obama was the 44th President of the United States and was born in Hawaii.",
		"Nothing interesting here.",
		"Apple Inc. is based in Cupertino.",
	}
	stub := &testutils.StubExtractor{
		Entities: map[string][]models.Entity{
			texts[0]: {
				testutils.SpanEntity("Barack Obama", "PERSON"),
				testutils.SpanEntity("44th", "ORDINAL"),
				testutils.SpanEntity("the United States", "GPE"),
				testutils.SpanEntity("Hawaii", "GPE"),
			},
			texts[2]: {
				testutils.SpanEntity("Apple Inc.", "ORG"),
				testutils.SpanEntity("Cupertino", "GPE"),
			},
		},
		Descriptions: map[string]string{"PERSON": "People, including fictional"},
	}

	results, err := NewAnalyzer(stub).Analyze(context.Background(), texts)
	require.NoError(t, err)

	require.Len(t, results, 6)
	assert.Equal(t, texts, stub.Calls)

	wantTextIDs := []int{1, 1, 1, 1, 3, 3}
	for i, record := range results {
		assert.Equal(t, wantTextIDs[i], record.TextID)
	}

	assert.Equal(t, "Barack Obama", results[0].EntityText)
	assert.Equal(t, "PERSON", results[0].EntityType)
	assert.Equal(t, "People, including fictional", results[0].Description)
	assert.Equal(t, texts[0], results[0].OriginalText)

	// ORDINAL is not in the stub's catalog
	assert.Empty(t, results[1].Description)
}

func TestAnalyzeTextIDsNonDecreasing(t *testing.T) {
	texts, entities := testutils.FakeCorpus(20)
	stub := &testutils.StubExtractor{Entities: entities}

	results, err := NewAnalyzer(stub).Analyze(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, results, 40)

	prev := 0
	for _, record := range results {
		assert.GreaterOrEqual(t, record.TextID, prev)
		assert.GreaterOrEqual(t, record.TextID, 1)
		assert.LessOrEqual(t, record.TextID, len(texts))
		prev = record.TextID
	}
}

func TestAnalyzeEmptyCorpus(t *testing.T) {
	stub := &testutils.StubExtractor{}

	results, err := NewAnalyzer(stub).Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, stub.Calls)
}

func TestAnalyzeExtractorError(t *testing.T) {
	wantErr := errors.New("model exploded")
	stub := &testutils.StubExtractor{Err: wantErr}

	results, err := NewAnalyzer(stub).Analyze(context.Background(), []string{"some text"})
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, results)
}

func TestAnalyzeMultipleMatchesPerEntity(t *testing.T) {
	text := "China said China would respond."
	stub := &testutils.StubExtractor{
		Entities: map[string][]models.Entity{
			text: {
				{
					Name:  "China",
					Label: "GPE",
					Matches: []models.EntityMatch{
						{Start: 0, End: 5, Text: "China"},
						{Start: 11, End: 16, Text: "China"},
					},
				},
			},
		},
	}

	results, err := NewAnalyzer(stub).Analyze(context.Background(), []string{text})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "China", results[0].EntityText)
	assert.Equal(t, "China", results[1].EntityText)
}

func TestInspectWritesEntities(t *testing.T) {
	stub := &testutils.StubExtractor{
		Entities: map[string][]models.Entity{
			"Rohit Sharma bats.": {testutils.SpanEntity("Rohit Sharma", "PERSON")},
		},
		Descriptions: map[string]string{"PERSON": "People, including fictional"},
	}

	var buf strings.Builder
	err := NewAnalyzer(stub).Inspect(context.Background(), "Rohit Sharma bats.", &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Rohit Sharma")
	assert.Contains(t, buf.String(), "PERSON")
}

func TestInspectNoEntities(t *testing.T) {
	stub := &testutils.StubExtractor{}

	var buf strings.Builder
	err := NewAnalyzer(stub).Inspect(context.Background(), "nothing here", &buf)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "No entities found")
}

func TestSampleTexts(t *testing.T) {
	texts := SampleTexts()
	assert.Len(t, texts, 8)
	for _, text := range texts {
		assert.NotEmpty(t, text)
	}
}
