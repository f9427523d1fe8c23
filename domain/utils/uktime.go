package utils

import (
	"time"
)

// ukLocation is the timezone every "daily" feature resets in. The community
// the bot serves is UK-based, so day boundaries follow Europe/London
// (handling BST/GMT transitions), not UTC.
var ukLocation = mustLoadUK()

func mustLoadUK() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		panic("failed to load Europe/London timezone: " + err.Error())
	}
	return loc
}

// UKLocation returns the Europe/London location.
func UKLocation() *time.Location {
	return ukLocation
}

// UKDateString formats t as an ISO date (YYYY-MM-DD) in Europe/London.
// This is the canonical key for daily counters, streaks and cooldowns.
func UKDateString(t time.Time) string {
	return t.In(ukLocation).Format("2006-01-02")
}

// UKDayDiff returns the number of calendar days between two UK date strings
// (later minus earlier). Returns 0 and false if either string is malformed.
// The dates are re-anchored in UTC before subtracting so a 23- or 25-hour
// BST transition day still counts as exactly one day.
func UKDayDiff(earlier, later string) (int, bool) {
	a, err := time.ParseInLocation("2006-01-02", earlier, time.UTC)
	if err != nil {
		return 0, false
	}
	b, err := time.ParseInLocation("2006-01-02", later, time.UTC)
	if err != nil {
		return 0, false
	}
	return int(b.Sub(a).Hours() / 24), true
}

// NextUKMidnight returns the next day boundary after t in Europe/London,
// used for "resets at" messaging on the daily cap.
func NextUKMidnight(t time.Time) time.Time {
	lt := t.In(ukLocation)
	return time.Date(lt.Year(), lt.Month(), lt.Day()+1, 0, 0, 0, 0, ukLocation)
}

// HourIndex buckets t into hours since the Unix epoch. The bounty scheduler
// uses it to post at most one new prompt per clock hour per guild.
func HourIndex(t time.Time) int64 {
	return t.Unix() / 3600
}

// WithinHourPostWindow reports whether t falls inside the first windowSeconds
// of its clock hour. The scheduler only posts new bounty prompts inside this
// window so a drifting tick cannot post twice for the same hour.
func WithinHourPostWindow(t time.Time, windowSeconds int64) bool {
	return t.Unix()%3600 < windowSeconds
}
