package docs

import (
	"reflect"
	"strings"
)

// FuzzyRetrieval finds the first document in the collection whose value,
// under any of the candidate fields, equals the target value. Scalar field
// values are treated as one-element sequences and list values are flattened,
// so a person is found whether the target appears as their "_id", their
// "name", or one of several "aka" aliases.
//
// When caseSensitive is false, only string-typed field values and a
// string-typed target are compared, lowercased; a non-string target never
// matches case-insensitively.
//
// A nil return means no match. Absence is a valid outcome, not an error;
// callers decide whether it is fatal.
func FuzzyRetrieval(coll Collection, fields []string, value any, caseSensitive bool) Document {
	target, targetIsStr := value.(string)
	if !caseSensitive {
		if !targetIsStr {
			return nil
		}
		target = strings.ToLower(target)
	}

	for _, doc := range coll {
		var candidates []any
		for _, field := range fields {
			candidates = append(candidates, doc.List(field)...)
		}
		if !caseSensitive {
			for _, c := range candidates {
				if s, ok := c.(string); ok && strings.ToLower(s) == target {
					return doc
				}
			}
			continue
		}
		for _, c := range candidates {
			if scalarEqual(c, value) {
				return doc
			}
		}
	}
	return nil
}

// scalarEqual compares two candidate values without panicking on
// incomparable types (nested sequences never match a scalar target).
func scalarEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}
