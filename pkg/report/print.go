package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/entitylens/entitylens/pkg/models"
)

// DefaultTopDisplay is how many of the most frequent entities the console
// summary shows.
const DefaultTopDisplay = 5

// Print renders a human-readable statistics summary. The output is
// informational only; nothing should parse it.
func Print(w io.Writer, stats *models.SummaryStatistics, topDisplay int) {
	if topDisplay <= 0 {
		topDisplay = DefaultTopDisplay
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "NER ANALYSIS SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintf(w, "Total texts analyzed: %s\n", humanize.Comma(int64(stats.TotalTexts)))
	fmt.Fprintf(w, "Total entities found: %s\n", humanize.Comma(int64(stats.TotalEntities)))
	fmt.Fprintf(w, "Unique entities: %s\n", humanize.Comma(int64(stats.UniqueEntities)))
	fmt.Fprintf(w, "Entity types found: %s\n", humanize.Comma(int64(stats.UniqueTypes)))
	fmt.Fprintf(w, "Average entities per text: %.1f\n", stats.AvgEntitiesPerText)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Entity Type Breakdown:")
	for _, tc := range stats.TypeBreakdown {
		if tc.Description != "" {
			fmt.Fprintf(w, "- %s: %d (%.1f%%) - %s\n", tc.Type, tc.Count, tc.Percentage, tc.Description)
		} else {
			fmt.Fprintf(w, "- %s: %d (%.1f%%)\n", tc.Type, tc.Count, tc.Percentage)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Most Common Entities:")
	top := stats.TopEntities
	if len(top) > topDisplay {
		top = top[:topDisplay]
	}
	for _, ec := range top {
		fmt.Fprintf(w, "- '%s': mentioned %d times\n", ec.Text, ec.Count)
	}
}
