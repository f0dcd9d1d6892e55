package filters

import (
	"sort"

	"github.com/teranos/vitae/docs"
)

// Projects selects the projects whose team-member names intersect the
// target set, restricts each surviving project's team list to the targets,
// and sorts by project identity.
func Projects(projects docs.Collection, authors NameSet, reverse bool) docs.Collection {
	var projs docs.Collection
	for _, proj := range projects {
		team := proj.DocList("team")
		names := make([]string, 0, len(team))
		for _, member := range team {
			names = append(names, member.Str("name"))
		}
		if !authors.intersects(names) {
			continue
		}

		proj = proj.DeepCopy()
		kept := make([]any, 0, len(team))
		for _, member := range proj.DocList("team") {
			if authors.Has(member.Str("name")) {
				kept = append(kept, member)
			}
		}
		proj["team"] = kept
		projs = append(projs, proj)
	}

	sort.SliceStable(projs, func(i, j int) bool {
		if reverse {
			return IDKey(projs[i]) > IDKey(projs[j])
		}
		return IDKey(projs[i]) < IDKey(projs[j])
	})
	return projs
}
