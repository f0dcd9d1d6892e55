package docs

// MergeCollections joins two collections on a foreign-key relationship,
// overlaying each matched superior document on its inferior counterpart.
// A superior document b matches an inferior document a when
// b[foreignKey] == a["_id"].
//
// The result is the inner join: inferior documents with no matching
// superior document are dropped, and no document absent from the inferior
// collection is ever invented. Callers wanting the union should append the
// unmatched inferior documents themselves.
//
// When several superior documents carry the same foreign key, the last one
// in iteration order wins. Output order follows the inferior collection.
func MergeCollections(inferior, superior Collection, foreignKey string) []*Chain {
	supByTarget := make(map[string]Document, len(superior))
	for _, sup := range superior {
		target := sup.Str(foreignKey)
		if target == "" {
			continue
		}
		supByTarget[target] = sup
	}

	var merged []*Chain
	for _, inf := range inferior {
		id := inf.ID()
		if id == "" {
			continue
		}
		if sup, ok := supByTarget[id]; ok {
			merged = append(merged, Merge(inf, sup))
		}
	}
	return merged
}

// FlattenChains materializes a slice of merged views as plain documents,
// for callers that feed a merged collection into the filter pipeline.
func FlattenChains(chains []*Chain) Collection {
	if chains == nil {
		return nil
	}
	out := make(Collection, len(chains))
	for i, c := range chains {
		out[i] = c.Flatten()
	}
	return out
}
