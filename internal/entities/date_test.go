package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2023-01-15",
		" 2023-01-15 ",
		"2023-01-15T23:30:00-08:00",
		"2023-01-15T00:10:00+09:00",
		"Sun Jan 15 2023",
	} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		require.True(t, want.Equal(got), "%s parsed as %s", in, got)
		require.Equal(t, "2023-01-15", FormatDate(got))
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2023-13-01", "15/01/2023"} {
		_, err := ParseDate(in)
		require.ErrorIs(t, err, ErrInvalidArgument, in)
	}
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	got := DateOf(time.Date(2024, time.March, 2, 8, 0, 0, 0, loc))
	require.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)
}
