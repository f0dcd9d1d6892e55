package filters

import (
	"fmt"
	"strconv"
	"time"

	"github.com/teranos/vitae/dates"
	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/render"
)

// awardRow builds one {description, year, _key} entry. The float key exists
// only to order the list.
func awardRow(description string, year any, key float64) docs.Document {
	return docs.Document{
		"description": description,
		"year":        year,
		"_key":        key,
	}
}

// rowKey derives the ordering key of a funding/service/honor record from
// its year and optional month.
func rowKey(year int, month any) float64 {
	m := 0
	if month != nil {
		if n, err := dates.MonthToInt(month); err == nil {
			m = n
		}
	}
	return float64(year) + float64(m)/100.0
}

// AwardsGrantsHonors flattens a person's funding, service, and honors
// records into dated description rows, sorted most recent first. Labels
// pass through the escaper; funding rows get the amount rendered after the
// name, e.g. "Sloan Fellowship ($50,000)".
func AwardsGrantsHonors(p docs.Document, esc render.Escaper) docs.Collection {
	if esc == nil {
		esc = render.Identity
	}
	var rows docs.Collection

	for _, f := range p.DocList("funding") {
		currency := f.StrOr("currency", "$")
		currency = esc(currency)
		desc := fmt.Sprintf("%s (%s%s)",
			esc(f.Str("name")),
			currency,
			commafy(f.FloatOr("value", 0)),
		)
		year := f.IntOr("year", 0)
		rows = append(rows, awardRow(desc, year, rowKey(year, f["month"])))
	}

	records := append(p.DocList("service"), p.DocList("honors")...)
	for _, x := range records {
		row := docs.Document{"description": esc(x.Str("name"))}
		beginYear, hasBegin := x.Int("begin_year")
		switch {
		case x.Has("year"):
			year := x.IntOr("year", 0)
			row["year"] = year
			row["_key"] = rowKey(year, x["month"])
		case hasBegin && x.Has("end_year"):
			row["year"] = fmt.Sprintf("%d-%d", beginYear, x.IntOr("end_year", 0))
			row["_key"] = rowKey(beginYear, x["month"])
		case hasBegin:
			row["year"] = strconv.Itoa(beginYear)
			row["_key"] = rowKey(beginYear, x["month"])
		}
		rows = append(rows, row)
	}

	sortByFloatKey(rows, func(d docs.Document) float64 {
		return d.FloatOr("_key", 0)
	}, true)
	return rows
}

// Awards lists a person's honors on or after since, sorted most recent
// first. A zero since admits everything. An honor's effective date is the
// end of its (begin) year.
func Awards(p docs.Document, since time.Time, esc render.Escaper) docs.Collection {
	if esc == nil {
		esc = render.Identity
	}
	var rows docs.Collection

	for _, x := range p.DocList("honors") {
		var effectiveYear int
		var yearLabel any
		if year, ok := x.Int("year"); ok {
			effectiveYear = year
			yearLabel = year
		} else if beginYear, ok := x.Int("begin_year"); ok {
			effectiveYear = beginYear
			if endYear, hasEnd := x.Int("end_year"); hasEnd {
				yearLabel = fmt.Sprintf("%d-%d", beginYear, endYear)
			} else {
				yearLabel = strconv.Itoa(beginYear)
			}
		} else {
			continue
		}
		yearEnd := time.Date(effectiveYear, time.December, 31, 0, 0, 0, 0, time.UTC)
		if !since.IsZero() && !dates.IsSince(yearEnd, since) {
			continue
		}
		rows = append(rows, awardRow(esc(x.Str("name")), yearLabel, rowKey(effectiveYear, x["month"])))
	}

	sortByFloatKey(rows, func(d docs.Document) float64 {
		return d.FloatOr("_key", 0)
	}, true)
	return rows
}

// commafy renders a numeric amount with thousands separators, keeping two
// decimals only for non-whole values.
func commafy(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	whole := int64(v)
	frac := v - float64(whole)

	s := strconv.FormatInt(whole, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if frac > 0 {
		s += strconv.FormatFloat(frac, 'f', 2, 64)[1:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
