package analysis

import (
	"context"
	"fmt"
	"io"

	"github.com/entitylens/entitylens/internal"
	"github.com/entitylens/entitylens/pkg/models"
)

var log = internal.GetLogger()

// Analyzer runs a corpus of texts through an entity extractor and flattens
// the findings into a ResultSet.
type Analyzer struct {
	extractor models.Extractor
}

func NewAnalyzer(extractor models.Extractor) *Analyzer {
	return &Analyzer{extractor: extractor}
}

// Analyze extracts entities from each text in input order and returns one
// EntityRecord per entity occurrence. TextID is the 1-based corpus position,
// so the returned records carry non-decreasing TextID values. A text with no
// entities contributes no records and is not an error.
func (a *Analyzer) Analyze(ctx context.Context, texts []string) (models.ResultSet, error) {
	results := make(models.ResultSet, 0)

	for i, text := range texts {
		textID := i + 1
		log.Infof("--- Text %d ---", textID)
		log.Infof("Text: %s", text)

		entities, err := a.extractor.Extract(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("extracting entities from text %d: %w", textID, err)
		}

		if len(entities) == 0 {
			log.Info("No entities found")
			continue
		}

		for _, entity := range entities {
			description, _ := a.extractor.Describe(entity.Label)
			for _, occurrence := range occurrences(entity) {
				log.Infof("  - %s (%s)", occurrence, entity.Label)
				results = append(results, models.EntityRecord{
					TextID:       textID,
					OriginalText: text,
					EntityText:   occurrence,
					EntityType:   entity.Label,
					Description:  description,
				})
			}
		}
	}

	log.Infof("Total entities extracted: %d", len(results))
	return results, nil
}

// Inspect runs a single text through the extractor and writes its findings
// in a human-readable form. A demonstration path: nothing is recorded.
func (a *Analyzer) Inspect(ctx context.Context, text string, w io.Writer) error {
	fmt.Fprintf(w, "\nInspecting: %s\n", text)
	fmt.Fprintln(w, "Entities found:")

	entities, err := a.extractor.Extract(ctx, text)
	if err != nil {
		return fmt.Errorf("inspecting text: %w", err)
	}

	if len(entities) == 0 {
		fmt.Fprintln(w, "No entities found. Try adding some names, places, or organizations!")
		return nil
	}

	for _, entity := range entities {
		for _, occurrence := range occurrences(entity) {
			if description, ok := a.extractor.Describe(entity.Label); ok {
				fmt.Fprintf(w, "- '%s' -> %s (%s)\n", occurrence, entity.Label, description)
			} else {
				fmt.Fprintf(w, "- '%s' -> %s\n", occurrence, entity.Label)
			}
		}
	}
	return nil
}

// occurrences flattens an entity into its per-occurrence surface forms.
// Servers that omit match spans still yield a single occurrence.
func occurrences(entity models.Entity) []string {
	if len(entity.Matches) == 0 {
		return []string{entity.Name}
	}
	out := make([]string, len(entity.Matches))
	for i, match := range entity.Matches {
		out[i] = match.Text
	}
	return out
}
