package filters

import (
	"fmt"

	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
)

// DereferenceInstitution replaces a record's institution placeholder with
// the canonical institution data, in place: "institution" and
// "organization" become the canonical name, "location" becomes
// "City, State" for US institutions and "City, Country" otherwise, and a
// "department" reference is resolved against the institution's departments.
//
// The record must name its institution under "institution" or
// "organization"; a reference that cannot be resolved is
// errors.ErrUnresolvedReference. A record with no reference at all is left
// untouched.
func DereferenceInstitution(record docs.Document, institutions docs.Collection) error {
	ref := record["institution"]
	if ref == nil {
		ref = record["organization"]
	}
	if ref == nil {
		return nil
	}

	inst := docs.FuzzyRetrieval(institutions, []string{"name", "_id", "aka"}, ref, true)
	if inst == nil {
		return errors.NewUnresolvedReferenceError(
			"institution %v not found in institutions collection", ref)
	}

	record["institution"] = inst.Str("name")
	record["organization"] = inst.Str("name")

	stateCountry := inst.Str("country")
	if stateCountry == "USA" {
		stateCountry = inst.Str("state")
	}
	record["location"] = fmt.Sprintf("%s, %s", inst.Str("city"), stateCountry)

	if deptRef, has := record["department"]; has {
		if depts, ok := inst.Sub("departments"); ok {
			resolved := docs.FuzzyRetrieval(departmentDocs(depts), []string{"name", "aka", "_id"}, deptRef, true)
			if resolved != nil {
				record["department"] = resolved.DeepCopy()
			}
		}
	}
	return nil
}

// departmentDocs flattens an institution's departments mapping into a
// collection for fuzzy lookup.
func departmentDocs(depts docs.Document) docs.Collection {
	out := make(docs.Collection, 0, len(depts))
	for key, v := range depts {
		if dept, ok := docs.AsDocument(v); ok {
			dept = dept.DeepCopy()
			if !dept.Has("_id") {
				dept["_id"] = key
			}
			out = append(out, dept)
		}
	}
	return out
}
