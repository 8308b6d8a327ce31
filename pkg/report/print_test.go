package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/entitylens/entitylens/pkg/models"
)

// The console format is informational only, so this is a smoke test: Print
// must produce output and honor the display limit, nothing more.
func TestPrintSmoke(t *testing.T) {
	results := models.ResultSet{
		record(1, "Obama", "PERSON"),
		record(1, "Hawaii", "GPE"),
		record(2, "Obama", "PERSON"),
		record(2, "Apple", "ORG"),
		record(2, "Paris", "GPE"),
	}
	stats, err := Summarize(results, nil, 0)
	require.NoError(t, err)

	var buf strings.Builder
	Print(&buf, stats, 2)

	out := buf.String()
	assert.NotEmpty(t, out)
	assert.Equal(t, 2, strings.Count(out, "mentioned"))
}
