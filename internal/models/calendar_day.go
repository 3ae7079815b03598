package models

import "time"

// DayLayout formats a UTC calendar day.
const DayLayout = "2006-01-02"

// DayKey returns the UTC calendar date of t, e.g. "2025-12-28".
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// StartOfDay truncates t to midnight UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysInRange lists the UTC calendar days from start's date through end's date,
// both inclusive. It is empty when end's date precedes start's date.
func DaysInRange(start, end time.Time) []time.Time {
	first, last := StartOfDay(start), StartOfDay(end)
	if last.Before(first) {
		return nil
	}

	days := make([]time.Time, 0, int(last.Sub(first).Hours()/24)+1)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
