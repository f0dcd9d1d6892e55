package filters

import (
	"strings"

	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
)

// GrantMode selects how grant amounts are accounted to the matched
// participant.
type GrantMode int

const (
	// GrantModePI keeps only grants where the matched participant holds the
	// PI role and accumulates their amounts into the running total.
	GrantModePI GrantMode = iota
	// GrantModeMultiPI keeps all matched grants and attaches each one's
	// subaward amount and a multi-PI marker.
	GrantModeMultiPI
	// GrantModeSubaward keeps only grants where the matched participant is
	// not the PI, accumulating grant and subaward totals and attaching the
	// PI and participant references.
	GrantModeSubaward
)

// GrantOptions controls grant filtering.
type GrantOptions struct {
	Mode GrantMode
	// Reverse orders most-recent-first by end date
	Reverse bool
}

// GrantTotals carries the running amounts accumulated across the surviving
// grants.
type GrantTotals struct {
	Amount   float64
	Subaward float64
}

// Grants selects the grants whose team-member names intersect the target
// set, applies the accounting mode for the matched participant, and sorts
// by end-date key.
func Grants(input docs.Collection, names NameSet, opt GrantOptions) (docs.Collection, GrantTotals, error) {
	var grants docs.Collection
	var totals GrantTotals

	for _, grant := range input {
		team := grant.DocList("team")
		var person docs.Document
		for _, member := range team {
			if names.Has(member.Str("name")) {
				person = member
				break
			}
		}
		if person == nil {
			continue
		}

		grant = grant.DeepCopy()
		isPI := strings.EqualFold(person.Str("position"), "pi")

		switch opt.Mode {
		case GrantModePI:
			if !isPI {
				continue
			}
			amount, ok := grant.Float("amount")
			if !ok {
				return nil, GrantTotals{}, errors.NewMissingFieldError("amount", grant.ID())
			}
			totals.Amount += amount

		case GrantModeMultiPI:
			grant["subaward_amount"] = person.FloatOr("subaward_amount", 0)
			multiPI := false
			for _, member := range team {
				if member.Has("subaward_amount") {
					multiPI = true
					break
				}
			}
			grant["multi_pi"] = multiPI

		case GrantModeSubaward:
			if isPI {
				continue
			}
			amount, ok := grant.Float("amount")
			if !ok {
				return nil, GrantTotals{}, errors.NewMissingFieldError("amount", grant.ID())
			}
			totals.Amount += amount
			totals.Subaward += person.FloatOr("subaward_amount", 0)
			grant["subaward_amount"] = person.FloatOr("subaward_amount", 0)
			for _, member := range grant.DocList("team") {
				if strings.EqualFold(member.Str("position"), "pi") {
					grant["pi"] = member
					break
				}
			}
			for _, member := range grant.DocList("team") {
				if names.Has(member.Str("name")) {
					grant["me"] = member
					break
				}
			}
		}

		grants = append(grants, grant)
	}

	sortByFloatKey(grants, EndDateKey, opt.Reverse)
	return grants, totals, nil
}
