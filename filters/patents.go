package filters

import (
	"sort"
	"time"

	"github.com/teranos/vitae/dates"
	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
)

// aliasFields are the candidate fields a person or institution reference is
// resolved against.
var aliasFields = []string{"aka", "name", "_id"}

// allowedIPStatuses gates patents and licenses to records still worth
// reporting.
var allowedIPStatuses = map[string]bool{
	"active":  true,
	"pending": true,
}

// Patents selects the patents from the intellectual-property collection on
// which the target person is an inventor. Records must carry an allowed
// status and the "patent" type tag. The window applies both to the record's
// end date and to its nested events, which come back date-sorted.
func Patents(ip, people docs.Collection, target string, window Window) (docs.Collection, error) {
	return filterIntellectualProperty(ip, people, target, "patent", window, false)
}

// Licenses selects the licenses from the intellectual-property collection
// on which the target person is an inventor. Besides the patent treatment,
// each license gets a "total_amount" field summing the amounts of all its
// events before the window restricts them.
func Licenses(ip, people docs.Collection, target string, window Window) (docs.Collection, error) {
	return filterIntellectualProperty(ip, people, target, "license", window, true)
}

func filterIntellectualProperty(ip, people docs.Collection, target, typeTag string, window Window, sumAmounts bool) (docs.Collection, error) {
	person := docs.FuzzyRetrieval(people, aliasFields, target, false)
	if person == nil {
		return nil, errors.NewUnresolvedReferenceError("person %q not found in people collection", target)
	}
	targetID := person.ID()

	var out docs.Collection
	for _, rec := range ip {
		if !allowedIPStatuses[rec.Str("status")] || rec.Str("type") != typeTag {
			continue
		}
		if !inventorMatches(rec, people, targetID) {
			continue
		}

		endYear, ok := rec.Int("end_year")
		if !ok {
			endYear = now().Year()
		}
		month := rec["end_month"]
		if month == nil {
			month = 12
		}
		endDate, err := dates.EndOf(endYear, month, rec.IntOr("end_day", 0))
		if err != nil {
			return nil, errors.Wrapf(err, "%s %q", typeTag, rec.ID())
		}
		if !window.Contains(endDate) {
			continue
		}

		rec = rec.DeepCopy()
		if err := normalizeMonth(rec); err != nil {
			return nil, errors.Wrapf(err, "%s %q", typeTag, rec.ID())
		}

		events := rec.DocList("events")
		if sumAmounts {
			// Total over all events, before the window trims them.
			total := 0.0
			for _, ev := range events {
				total += ev.FloatOr("amount", 0)
			}
			rec["total_amount"] = total
		}

		kept, err := windowedEvents(events, window, rec.ID())
		if err != nil {
			return nil, err
		}
		rec["events"] = kept
		out = append(out, rec)
	}
	return out, nil
}

// inventorMatches resolves each listed inventor against the people
// collection and reports whether the target is among them.
func inventorMatches(rec docs.Document, people docs.Collection, targetID string) bool {
	for _, inv := range rec.StrList("inventors") {
		inventor := docs.FuzzyRetrieval(people, aliasFields, inv, false)
		if inventor != nil && inventor.ID() == targetID {
			return true
		}
	}
	return false
}

// windowedEvents restricts a record's events to the window and sorts them
// chronologically. An event missing its year is a contract violation.
func windowedEvents(events []docs.Document, window Window, recID string) ([]any, error) {
	type dated struct {
		ev   docs.Document
		date time.Time
	}
	var kept []dated
	for _, ev := range events {
		year, ok := ev.Int("year")
		if !ok {
			return nil, errors.NewMissingFieldError("year", "event of "+recID)
		}
		d, err := dates.EndOf(year, ev["month"], ev.IntOr("day", 0))
		if err != nil {
			return nil, errors.Wrapf(err, "event of %q", recID)
		}
		if !window.Contains(d) {
			continue
		}
		kept = append(kept, dated{ev: ev, date: d})
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].date.Before(kept[j].date)
	})
	out := make([]any, len(kept))
	for i, k := range kept {
		out[i] = k.ev
	}
	return out, nil
}
