package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestYearBounds(t *testing.T) {
	start, end := YearBounds(2020, 2022)
	require.Equal(t, "2020-01-01", start.Format(layout))
	require.Equal(t, "2022-12-31", end.Format(layout))
	require.True(t, DateLte(start, end))
}

func TestElapsedMonths(t *testing.T) {
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	require.Equal(t, 9, ElapsedMonths(2026, now))
	require.Equal(t, 12, ElapsedMonths(2025, now))
	require.Equal(t, 0, ElapsedMonths(2027, now))
	require.Equal(t, 0, ElapsedMonths(2026, NewDate(2026, 1, 15)))
}
