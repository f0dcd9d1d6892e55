package docs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCollections(t *testing.T) {
	proposals := Collection{
		{"_id": "prop1", "title": "Proposal One", "amount": 100000},
		{"_id": "prop2", "title": "Proposal Two", "amount": 50000},
		{"_id": "prop3", "title": "Proposal Three"},
	}
	grants := Collection{
		{"_id": "grant1", "proposal_id": "prop1", "amount": 90000},
		{"_id": "grant2", "proposal_id": "prop2"},
		{"_id": "grant9", "proposal_id": "unknown"},
	}

	t.Run("inner join on the foreign key", func(t *testing.T) {
		merged := MergeCollections(proposals, grants, "proposal_id")
		require.Len(t, merged, 2, "prop3 has no matching grant and is dropped")

		first := merged[0].Flatten()
		assert.Equal(t, "Proposal One", first.Str("title"), "inferior field falls through")
		amount, _ := first.Int("amount")
		assert.Equal(t, 90000, amount, "superior amount wins")

		second := merged[1].Flatten()
		amount, _ = second.Int("amount")
		assert.Equal(t, 50000, amount, "inferior amount survives when superior has none")
	})

	t.Run("never invents documents absent from the inferior collection", func(t *testing.T) {
		merged := MergeCollections(proposals, grants, "proposal_id")
		for _, c := range merged {
			title, ok := c.Get("title")
			require.True(t, ok)
			assert.Contains(t, []any{"Proposal One", "Proposal Two"}, title)
		}
	})

	t.Run("output follows inferior order", func(t *testing.T) {
		merged := MergeCollections(proposals, grants, "proposal_id")
		assert.Equal(t, "Proposal One", merged[0].Str("title"))
		assert.Equal(t, "Proposal Two", merged[1].Str("title"))
	})

	t.Run("duplicate foreign keys resolve last-seen-wins", func(t *testing.T) {
		dupes := Collection{
			{"_id": "grantA", "proposal_id": "prop1", "amount": 1},
			{"_id": "grantB", "proposal_id": "prop1", "amount": 2},
		}
		merged := MergeCollections(proposals, dupes, "proposal_id")
		require.Len(t, merged, 1)
		amount, _ := merged[0].Flatten().Int("amount")
		assert.Equal(t, 2, amount)
		assert.Equal(t, "grantB", merged[0].ID())
	})

	t.Run("empty superior drops everything", func(t *testing.T) {
		assert.Empty(t, MergeCollections(proposals, nil, "proposal_id"))
	})
}

func TestFlattenChains(t *testing.T) {
	chains := []*Chain{
		Merge(Document{"_id": "a", "x": 1}, Document{"y": 2}),
	}
	coll := FlattenChains(chains)
	require.Len(t, coll, 1)
	assert.Equal(t, Document{"_id": "a", "x": 1, "y": 2}, coll[0])
	assert.Nil(t, FlattenChains(nil))
}
