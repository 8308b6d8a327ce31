package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeLabel(t *testing.T) {
	description, ok := DescribeLabel("PERSON")
	assert.True(t, ok)
	assert.Equal(t, "People, including fictional", description)

	description, ok = DescribeLabel("NOT_A_LABEL")
	assert.False(t, ok)
	assert.Empty(t, description)
}
