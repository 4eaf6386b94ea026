// Package timeband computes the half-open time intervals behind the
// "today / yesterday / this week / ..." list filters, and the text match
// that combines with them.
package timeband

import (
	"strings"
	"time"
)

type Bucket string

const (
	All       Bucket = "all"
	Today     Bucket = "today"
	Yesterday Bucket = "yesterday"
	ThisWeek  Bucket = "thisWeek"
	ThisMonth Bucket = "thisMonth"
	Past      Bucket = "past"
	Custom    Bucket = "custom"
)

// WeekMode selects what "this week" means. The invoice list uses a rolling
// 7-day window, the expenditure list a calendar week starting Sunday.
type WeekMode int

const (
	WeekRolling WeekMode = iota
	WeekCalendar
)

// Range is a half-open interval [From, To). A zero bound is unbounded.
type Range struct {
	From time.Time
	To   time.Time
}

func (r Range) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func weekStart(now time.Time, mode WeekMode) time.Time {
	today := midnight(now)
	if mode == WeekCalendar {
		return today.AddDate(0, 0, -int(today.Weekday()))
	}
	return today.AddDate(0, 0, -7)
}

// ForBucket resolves a preset bucket into an interval relative to now.
// ok is false for All (and anything unknown): no time constraint.
func ForBucket(b Bucket, now time.Time, mode WeekMode) (r Range, ok bool) {
	today := midnight(now)
	switch b {
	case Today:
		return Range{From: today}, true
	case Yesterday:
		return Range{From: today.AddDate(0, 0, -1), To: today}, true
	case ThisWeek:
		return Range{From: weekStart(now, mode)}, true
	case ThisMonth:
		return Range{From: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())}, true
	case Past:
		return Range{To: weekStart(now, mode)}, true
	default:
		return Range{}, false
	}
}

// CustomRange builds an inclusive date range: start of the start day
// through end of the end day, as a half-open interval.
func CustomRange(start, end time.Time) Range {
	return Range{From: midnight(start), To: midnight(end).AddDate(0, 0, 1)}
}

// MatchText reports whether any field contains the query, case-insensitive.
// An empty query matches everything.
func MatchText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
