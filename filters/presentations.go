package filters

import (
	"sort"
	"strings"
	"time"

	"github.com/teranos/vitae/dates"
	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
	"github.com/teranos/vitae/logger"
)

// PresentationOptions controls presentation filtering. Empty allow-lists
// default to accepted-only statuses and all types.
type PresentationOptions struct {
	Window
	// Types is the type allow-list; "all" admits every type.
	// Known types: award, plenary, keynote, invited, colloquium, seminar,
	// tutorial, contributed-oral, poster.
	Types []string
	// Statuses is the status allow-list; "all" admits every status.
	// Known statuses: accepted, declined, cancelled.
	Statuses []string
}

// Presentations selects the presentations authored by the target person,
// applying four gates in fixed order: authorship, status allow-list, type
// allow-list, date window. Surviving presentations get their author list
// resolved to display names, a calendar "date" attached, day-ordinal
// suffixes computed, and institution/department references dereferenced.
// The result is sorted most recent first.
//
// The target is resolved against the people collection by id, name, or
// alias; an unresolvable target or institution reference is fatal
// (errors.ErrUnresolvedReference). A department that cannot be resolved
// degrades to a placeholder record with a warning.
func Presentations(people, presentations, institutions docs.Collection, target string, opt PresentationOptions) (docs.Collection, error) {
	person := docs.FuzzyRetrieval(people, aliasFields, target, false)
	if person == nil {
		return nil, errors.NewUnresolvedReferenceError("person %q not found in people collection", target)
	}
	targetID := person.ID()

	statuses := opt.Statuses
	if len(statuses) == 0 {
		statuses = []string{"accepted"}
	}
	types := opt.Types
	if len(types) == 0 {
		types = []string{"all"}
	}

	// Authorship gate: keep a presentation only when the target resolves to
	// one of its listed authors.
	var byAuthor docs.Collection
	for _, pres := range presentations {
		for _, author := range pres.StrList("authors") {
			resolved := docs.FuzzyRetrieval(people, aliasFields, author, false)
			if resolved != nil && resolved.ID() == targetID {
				byAuthor = append(byAuthor, pres)
				break
			}
		}
	}

	// Status and type gates, in fixed order.
	var byStatus docs.Collection
	for _, pres := range byAuthor {
		if allowlisted(pres.Str("status"), statuses) {
			byStatus = append(byStatus, pres)
		}
	}
	var byType docs.Collection
	for _, pres := range byStatus {
		if allowlisted(pres.Str("type"), types) {
			byType = append(byType, pres)
		}
	}

	// Date gate on the begin date.
	var clean docs.Collection
	for _, pres := range byType {
		presDate, err := presentationDate(pres)
		if err != nil {
			return nil, err
		}
		if !opt.Contains(presDate) {
			continue
		}
		clean = append(clean, pres.DeepCopy())
	}

	for _, pres := range clean {
		if err := enrichPresentation(pres, people, institutions); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(clean, func(i, j int) bool {
		return DateKey(clean[i]).After(DateKey(clean[j]))
	})
	return clean, nil
}

func allowlisted(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == "all" || strings.EqualFold(a, value) {
			return true
		}
	}
	return false
}

// presentationDate resolves the begin date; begin_year is required, the day
// defaults to the 1st.
func presentationDate(pres docs.Document) (time.Time, error) {
	year, ok := pres.Int("begin_year")
	if !ok {
		return time.Time{}, errors.NewMissingFieldError("begin_year", pres.ID())
	}
	d, err := dates.BeginOf(year, pres["begin_month"], pres.IntOr("begin_day", 0))
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "presentation %q", pres.ID())
	}
	return d, nil
}

// enrichPresentation normalizes a surviving presentation in place: display
// author names, integer begin_month, attached date, ordinal suffixes, and
// dereferenced institution/department.
func enrichPresentation(pres docs.Document, people, institutions docs.Collection) error {
	authors := pres.StrList("authors")
	names := make([]string, len(authors))
	for i, author := range authors {
		if resolved := docs.FuzzyRetrieval(people, aliasFields, author, false); resolved != nil {
			names[i] = resolved.Str("name")
		} else {
			names[i] = author
		}
	}
	pres["authors"] = strings.Join(names, ", ")

	month, err := dates.MonthToInt(pres["begin_month"])
	if err != nil {
		return errors.Wrapf(err, "presentation %q", pres.ID())
	}
	pres["begin_month"] = month

	d, err := presentationDate(pres)
	if err != nil {
		return err
	}
	pres["date"] = d

	pres["begin_day_suffix"] = NumberSuffix(pres["begin_day"])
	pres["end_day_suffix"] = NumberSuffix(pres["end_day"])

	instRef, hasInst := pres["institution"]
	if !hasInst {
		return nil
	}
	inst := docs.FuzzyRetrieval(institutions, aliasFields, instRef, false)
	if inst == nil {
		return errors.NewUnresolvedReferenceError(
			"institution %v not found in institutions collection", instRef)
	}
	pres["institution"] = inst.DeepCopy()

	if deptRef, hasDept := pres["department"]; hasDept {
		deptKey, _ := deptRef.(string)
		depts, _ := inst.Sub("departments")
		if dept, ok := depts.Sub(deptKey); ok {
			pres["department"] = dept.DeepCopy()
		} else {
			logger.Warnw("department not found in institution, using placeholder",
				"department", deptRef,
				"institution", inst.ID(),
			)
			pres["department"] = docs.Document{"name": deptRef}
		}
	}
	return nil
}
