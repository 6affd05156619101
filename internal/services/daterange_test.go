package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRange_ExplicitDates(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	resolved, err := ResolveDateRange("2024-01-01", "2024-01-10", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), resolved.Start)
	// the end date itself is inclusive, so the window extends to the next midnight
	assert.Equal(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), resolved.End)
}

func TestResolveDateRange_Defaults(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)

	resolved, err := ResolveDateRange("", "", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), resolved.Start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), resolved.End)
}

func TestResolveDateRange_DefaultStartOnly(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	resolved, err := ResolveDateRange("", "2024-03-01", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), resolved.Start)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), resolved.End)
}

func TestResolveDateRange_InvalidFormat(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"slash separators", "2024/01/01", ""},
		{"reversed layout", "01-01-2024", ""},
		{"not a date", "", "yesterday"},
		{"truncated", "2024-01", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveDateRange(tc.start, tc.end, now)
			assert.ErrorIs(t, err, ErrInvalidDateFormat)
		})
	}
}

func TestResolveDateRange_StartAfterEnd(t *testing.T) {
	// An inverted range is not an error; it resolves to a window that
	// matches nothing
	resolved, err := ResolveDateRange("2024-02-01", "2024-01-01", time.Now())
	require.NoError(t, err)

	assert.True(t, resolved.Start.After(resolved.End))
}

func TestResolveDateRange_SingleDay(t *testing.T) {
	resolved, err := ResolveDateRange("2024-01-10", "2024-01-10", time.Now())
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, resolved.End.Sub(resolved.Start))
}
