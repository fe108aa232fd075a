package invoice

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNumber(t *testing.T) {
	projectID, err := uuid.Parse("4f2a9c10-0000-0000-0000-000000000000")
	require.NoError(t, err)

	assert.Equal(t, "INV-4F2A-0001", FormatNumber(projectID, 1))
	assert.Equal(t, "INV-4F2A-0042", FormatNumber(projectID, 42))
	assert.Equal(t, "INV-4F2A-12345", FormatNumber(projectID, 12345))
}

func TestFormatNumberOrdering(t *testing.T) {
	projectID := uuid.New()
	// Zero padding keeps lexicographic and numeric order aligned.
	assert.Less(t, FormatNumber(projectID, 7), FormatNumber(projectID, 8))
	assert.Less(t, FormatNumber(projectID, 99), FormatNumber(projectID, 100))
}
