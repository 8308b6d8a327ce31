package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/entitylens/entitylens/pkg/models"
)

// CSVHeader is the stable column order of the results file.
var CSVHeader = []string{"text_id", "original_text", "entity_text", "entity_type", "description"}

// Persister writes a run's results to disk: a CSV dump of every record and
// a plain-text summary report. Each run overwrites the previous files.
type Persister struct {
	resultsPath string
	reportPath  string
}

func NewPersister(resultsPath, reportPath string) *Persister {
	return &Persister{
		resultsPath: resultsPath,
		reportPath:  reportPath,
	}
}

// Save writes both output files. A failure is returned to the caller, who
// treats it as a warning; persistence is never fatal to the run.
func (p *Persister) Save(
	results models.ResultSet,
	stats *models.SummaryStatistics,
	runID uuid.UUID,
) error {
	if err := p.writeCSV(results); err != nil {
		return fmt.Errorf("writing %s: %w", p.resultsPath, err)
	}
	if err := p.writeReport(stats, runID, time.Now()); err != nil {
		return fmt.Errorf("writing %s: %w", p.reportPath, err)
	}
	return nil
}

func (p *Persister) writeCSV(results models.ResultSet) error {
	f, err := os.Create(p.resultsPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		return err
	}
	for _, record := range results {
		row := []string{
			strconv.Itoa(record.TextID),
			record.OriginalText,
			record.EntityText,
			record.EntityType,
			record.Description,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func (p *Persister) writeReport(
	stats *models.SummaryStatistics,
	runID uuid.UUID,
	generatedAt time.Time,
) error {
	f, err := os.Create(p.reportPath)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintln(f, "NAMED ENTITY RECOGNITION (NER) ANALYSIS REPORT")
	fmt.Fprintln(f, "=============================================")
	fmt.Fprintln(f)
	fmt.Fprintf(f, "Analysis Date: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(f, "Run ID: %s\n", runID)
	fmt.Fprintln(f)
	fmt.Fprintln(f, "OVERVIEW:")
	fmt.Fprintf(f, "- Total texts analyzed: %d\n", stats.TotalTexts)
	fmt.Fprintf(f, "- Total entities extracted: %d\n", stats.TotalEntities)
	fmt.Fprintf(f, "- Unique entities found: %d\n", stats.UniqueEntities)
	fmt.Fprintf(f, "- Different entity types: %d\n", stats.UniqueTypes)
	fmt.Fprintln(f)
	fmt.Fprintln(f, "ENTITY TYPE BREAKDOWN:")
	for _, tc := range stats.TypeBreakdown {
		fmt.Fprintf(f, "- %s: %d entities (%.1f%%)\n", tc.Type, tc.Count, tc.Percentage)
	}

	return f.Close()
}
