// Package filters implements the record-filtering pipeline: each filter
// gates a collection by participant relevance, gates by an optional time
// window, normalizes display fields, and sorts by a derived key. Filters
// operate on deep copies and never mutate the caller's collections.
//
// Absence of an optional field uses the documented default; absence of a
// required field is errors.ErrMissingField and aborts the batch with no
// partial output, unless the caller opts into skip-and-continue.
package filters

import (
	"sort"
	"time"

	"github.com/teranos/vitae/dates"
	"github.com/teranos/vitae/docs"
)

// NameSet is a set of target identities (names, ids, or aliases) a filter
// selects for.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from the given names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s NameSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// intersects reports whether any of the candidate names is in the set.
func (s NameSet) intersects(candidates []string) bool {
	for _, c := range candidates {
		if s.Has(c) {
			return true
		}
	}
	return false
}

// Window is an optional inclusive [Since, Before] time window. A nil bound
// leaves that side open.
type Window struct {
	Since  *time.Time
	Before *time.Time
}

// Contains reports whether t satisfies both set bounds.
func (w Window) Contains(t time.Time) bool {
	if w.Since != nil && !dates.IsSince(t, *w.Since) {
		return false
	}
	if w.Before != nil && !dates.IsBefore(t, *w.Before) {
		return false
	}
	return true
}

// DocDateKey derives a float ordering key from a document's year/month/day
// fields. Missing fields default to 1970/January/0 and an unrecognized
// month orders as January; the key is for ordering only.
func DocDateKey(d docs.Document) float64 {
	y := d.IntOr("year", 1970)
	m, err := dates.MonthToInt(d["month"])
	if err != nil {
		m = 1
	}
	day := d.IntOr("day", 0)
	return float64(y) + float64(m)/100.0 + float64(day)/10000.0
}

// EndDateKey derives a float ordering key from a document's end date,
// falling back to its plain year/month/day fields.
func EndDateKey(d docs.Document) float64 {
	y, ok := d.Int("end_year")
	if !ok {
		y = d.IntOr("year", 1970)
	}
	mv, has := d["end_month"]
	if !has {
		mv = d["month"]
	}
	m, err := dates.MonthToInt(mv)
	if err != nil {
		m = 1
	}
	day, ok := d.Int("end_day")
	if !ok {
		day = d.IntOr("day", 0)
	}
	return float64(y) + float64(m)/100.0 + float64(day)/10000.0
}

// IDKey derives the identity ordering key.
func IDKey(d docs.Document) string {
	return d.ID()
}

// DateKey returns the calendar date attached under "date", or the zero time
// when absent.
func DateKey(d docs.Document) time.Time {
	t, _ := d["date"].(time.Time)
	return t
}

// sortByFloatKey orders a collection by a float key, ascending unless
// reverse. The sort is stable: ties keep input order.
func sortByFloatKey(coll docs.Collection, key func(docs.Document) float64, reverse bool) {
	sort.SliceStable(coll, func(i, j int) bool {
		if reverse {
			return key(coll[i]) > key(coll[j])
		}
		return key(coll[i]) < key(coll[j])
	})
}

// NumberSuffix returns the ordinal suffix that adjectivises a number
// ("st", "nd", "rd", "th"). Days in (10,20) exclusive always take "th".
// A non-numeric value yields "".
func NumberSuffix(v any) string {
	n, ok := docs.AsInt(v)
	if !ok {
		return ""
	}
	if n > 10 && n < 20 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
