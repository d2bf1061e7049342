package domain_test

import (
	"errors"
	"testing"

	"github.com/logcheck/logcheck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLogEntry_MissingFields(t *testing.T) {
	_, err := domain.BuildLogEntry([]string{"01/15/2024", "09:00", "10:00", "2"})
	require.Error(t, err)

	var se *domain.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Missing)
	assert.Equal(t, "Missing 1 Cells.", err.Error())
}

func TestBuildLogEntry_NoFields(t *testing.T) {
	_, err := domain.BuildLogEntry(nil)
	var se *domain.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 5, se.Missing)
}

func TestBuildLogEntry_ExtraFields(t *testing.T) {
	_, err := domain.BuildLogEntry([]string{"a", "b", "c", "d", "e", "f", "g"})
	var se *domain.StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Extra)
	assert.Equal(t, "You Have 1 Extra Cells.", err.Error())
	assert.Equal(t, "Line 9 Error: You Have 1 Extra Cells.", se.Finding(8).String())
}

func TestBuildLogEntry_FiveFields(t *testing.T) {
	entry, err := domain.BuildLogEntry([]string{"01/15/2024", "09:00", "10:00", "2", "7"})
	require.NoError(t, err)
	assert.Equal(t, domain.LogEntry{
		Date:         "01/15/2024",
		StartTime:    "09:00",
		EndTime:      "10:00",
		GroupSize:    "2",
		ActivityCode: "7",
	}, entry)
	assert.Empty(t, entry.Note)
}

func TestBuildLogEntry_SixFields(t *testing.T) {
	entry, err := domain.BuildLogEntry([]string{"01/15/2024", "09:00", "10:00", "2", "D", "office hours"})
	require.NoError(t, err)
	assert.Equal(t, "office hours", entry.Note)
	assert.Equal(t, "D", entry.ActivityCode)
}
