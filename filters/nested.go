package filters

import (
	"time"

	"github.com/teranos/vitae/dates"
	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
)

// now is swapped out in tests for records with open-ended dates.
var now = time.Now

// filterNestedRecords applies the per-person nested-record pattern shared
// by service, facilities and activities: keep each nested record under
// field whose type matches and whose effective end date is on or after the
// begin period, normalizing its month to a display abbreviation. A person
// survives only when at least one of their records does.
//
// The effective end year comes from "year", else "end_year", else today.
// End month defaults to December and end day to the last day of the month.
func filterNestedRecords(people docs.Collection, field, recordType string, beginPeriod time.Time) (docs.Collection, error) {
	var out docs.Collection
	for _, p := range people {
		p = p.DeepCopy()
		var kept []any
		for _, rec := range p.DocList(field) {
			if rec.Str("type") != recordType {
				continue
			}
			endDate, err := nestedEndDate(rec)
			if err != nil {
				return nil, errors.Wrapf(err, "%s record for %q", field, p.ID())
			}
			if !dates.IsSince(endDate, beginPeriod) {
				continue
			}
			if err := normalizeMonth(rec); err != nil {
				return nil, errors.Wrapf(err, "%s record for %q", field, p.ID())
			}
			kept = append(kept, rec)
		}
		p[field] = kept
		if len(kept) > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

// nestedEndDate resolves a nested record's effective end date: "year" wins,
// then "end_year", then the current year; month defaults to December and
// day to the last day of that month.
func nestedEndDate(rec docs.Document) (time.Time, error) {
	endYear, ok := rec.Int("year")
	if !ok {
		endYear, ok = rec.Int("end_year")
	}
	if !ok {
		endYear = now().Year()
	}
	month := rec["end_month"]
	if month == nil {
		month = 12
	}
	return dates.EndOf(endYear, month, rec.IntOr("end_day", 0))
}

// normalizeMonth rewrites a record's month to its display abbreviation,
// falling back to begin_month when no month is set. A record with neither
// gets an empty month.
func normalizeMonth(rec docs.Document) error {
	raw, has := rec["month"]
	if !has || raw == nil || raw == "" {
		raw = rec.IntOr("begin_month", 0)
	}
	m, err := dates.MonthToInt(raw)
	if err != nil {
		return err
	}
	rec["month"] = dates.ShortMonthName(m)
	return nil
}

// Service filters each person's "service" records by type and begin period.
func Service(people docs.Collection, beginPeriod time.Time, recordType string) (docs.Collection, error) {
	return filterNestedRecords(people, "service", recordType, beginPeriod)
}

// Facilities filters each person's "facilities" records by type and begin
// period.
func Facilities(people docs.Collection, beginPeriod time.Time, recordType string) (docs.Collection, error) {
	return filterNestedRecords(people, "facilities", recordType, beginPeriod)
}

// Activities filters each person's "activities" records by type and begin
// period.
func Activities(people docs.Collection, beginPeriod time.Time, recordType string) (docs.Collection, error) {
	return filterNestedRecords(people, "activities", recordType, beginPeriod)
}

// AdviseeEmployment selects one row per qualifying employment record: the
// record's status must match and its end date must be on or after the begin
// period. An open-ended record (no end_year) uses today and gets the
// current year attached as end_year. Each row is a copy of the person with
// the record's position under "role" plus the matched status and end year.
func AdviseeEmployment(people docs.Collection, beginPeriod time.Time, status string) (docs.Collection, error) {
	var advisees docs.Collection
	for _, p := range people {
		for _, emp := range p.DocList("employment") {
			if emp.Str("status") != status {
				continue
			}
			endYear, open := 0, false
			if y, ok := emp.Int("end_year"); ok {
				endYear = y
			} else {
				open = true
				endYear = now().Year()
			}
			var endDate time.Time
			var err error
			if open {
				endDate = now()
			} else {
				month := emp["end_month"]
				if month == nil {
					month = 12
				}
				endDate, err = dates.EndOf(endYear, month, emp.IntOr("end_day", 0))
				if err != nil {
					return nil, errors.Wrapf(err, "employment record for %q", p.ID())
				}
			}
			if !dates.IsSince(endDate, beginPeriod) {
				continue
			}
			row := p.DeepCopy()
			row["role"] = emp.Str("position")
			row["status"] = status
			row["end_year"] = endYear
			advisees = append(advisees, row)
		}
	}
	return advisees, nil
}
