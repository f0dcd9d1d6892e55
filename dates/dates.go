// Package dates is the date toolkit behind the filtering pipeline: month
// canonicalization, float-encoded sort keys, calendar-aware begin/end date
// resolution, and the inclusive since/before/between predicates.
package dates

import (
	"fmt"
	"time"

	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
)

// SortKey encodes a date as year + month/100 + day/10000, e.g. 2015.0818
// for August 18th 2015. The encoding orders correctly for any
// (year, 1-12, 0-99) triple.
//
// This is an ordering key only, not a calendar distance: it is monotonic in
// (year, month, day) lexicographic order but differences between keys do
// not measure elapsed time. Never do arithmetic on it.
func SortKey(y int, m any, d int) (float64, error) {
	month, err := MonthToInt(m)
	if err != nil {
		return 0, err
	}
	return float64(y) + float64(month)/100.0 + float64(d)/10000.0, nil
}

// EndOfMonth returns the last valid day of the month, February being
// leap-year aware.
func EndOfMonth(year, month int) int {
	// Day 0 of the following month normalizes to this month's last day.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// BeginOf builds a calendar date for a range start. Day values < 1 default
// to the 1st.
func BeginOf(year int, month any, day int) (time.Time, error) {
	m, err := MonthToInt(month)
	if err != nil {
		return time.Time{}, err
	}
	if day < 1 {
		day = 1
	}
	return time.Date(year, time.Month(m), day, 0, 0, 0, 0, time.UTC), nil
}

// EndOf builds a calendar date for a range end. Day values < 1 default to
// the last day of the month.
func EndOf(year int, month any, day int) (time.Time, error) {
	m, err := MonthToInt(month)
	if err != nil {
		return time.Time{}, err
	}
	if day < 1 {
		day = EndOfMonth(year, m)
	}
	return time.Date(year, time.Month(m), day, 0, 0, 0, 0, time.UTC), nil
}

// BeginEnd extracts the begin and end dates of a document carrying
// begin_year/begin_month/begin_day and end_year/end_month/end_day fields at
// the top level. The begin day defaults to 1 and the end day to the last
// day of the end month; missing months default to January. A missing
// begin_year or end_year is ErrMissingField.
func BeginEnd(doc docs.Document) (time.Time, time.Time, error) {
	beginYear, ok := doc.Int("begin_year")
	if !ok {
		return time.Time{}, time.Time{}, errors.NewMissingFieldError("begin_year", doc.ID())
	}
	begin, err := BeginOf(beginYear, doc["begin_month"], doc.IntOr("begin_day", 0))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	endYear, ok := doc.Int("end_year")
	if !ok {
		return time.Time{}, time.Time{}, errors.NewMissingFieldError("end_year", doc.ID())
	}
	end, err := EndOf(endYear, doc["end_month"], doc.IntOr("end_day", 0))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return begin, end, nil
}

// IsSince reports whether target is on or after since (inclusive).
func IsSince(target, since time.Time) bool {
	return !target.Before(since)
}

// IsBefore reports whether target is on or before the bound (inclusive).
func IsBefore(target, before time.Time) bool {
	return !target.After(before)
}

// IsBetween reports whether target lies in [since, before], both bounds
// inclusive.
func IsBetween(target, since, before time.Time) bool {
	return IsSince(target, since) && IsBefore(target, before)
}

// MonthAndYear renders a month/year pair for display: "present" when the
// year is unknown, the year alone when the month is unknown, otherwise
// "Jan 2019". An unrecognized month falls back to the year alone.
func MonthAndYear(m, y any) string {
	year, ok := docs.AsInt(y)
	if !ok {
		return "present"
	}
	if m == nil {
		return fmt.Sprintf("%d", year)
	}
	month, err := MonthToInt(m)
	if err != nil || month < 1 || month > 12 {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%s %d", ShortMonthName(month), year)
}
