package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// YearBounds returns midnight UTC on January 1st of start and the last
// instant of endYear.
func YearBounds(startYear, endYear int) (time.Time, time.Time) {
	return NewDate(startYear, 1, 1), NewDate(endYear+1, 1, 1).Add(-time.Nanosecond)
}

// ElapsedMonths is the number of whole months of year already behind now.
// Past years count as fully elapsed, future years as not started.
func ElapsedMonths(year int, now time.Time) int {
	now = now.UTC()
	switch {
	case year < now.Year():
		return 12
	case year > now.Year():
		return 0
	}
	return int(now.Month()) - 1
}
