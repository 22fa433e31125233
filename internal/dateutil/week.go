// Package dateutil provides the calendar math behind weekly stats rollover.
// Weeks start on Sunday and boundaries are evaluated in the time's own
// location, so a match recorded late Saturday and one recorded Sunday
// morning land in different weeks.
package dateutil

import "time"

// StartOfWeek returns midnight of the Sunday on or before t, in t's location.
func StartOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// IsSameWeek reports whether a and b fall in the same Sunday-start week.
func IsSameWeek(a, b time.Time) bool {
	return StartOfWeek(a).Equal(StartOfWeek(b.In(a.Location())))
}
