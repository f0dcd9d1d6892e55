package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/vitae/docs"
)

func testProjects() docs.Collection {
	return docs.Collection{
		{
			"_id": "zeta",
			"team": []any{
				map[string]any{"name": "A. Person", "position": "lead"},
				map[string]any{"name": "B. Other", "position": "member"},
			},
		},
		{
			"_id": "alpha",
			"team": []any{
				map[string]any{"name": "A. Person", "position": "member"},
			},
		},
		{
			"_id": "beta",
			"team": []any{
				map[string]any{"name": "D. Stranger", "position": "lead"},
			},
		},
	}
}

func TestProjects(t *testing.T) {
	authors := NewNameSet("A. Person")

	t.Run("keeps only projects with a matching team member", func(t *testing.T) {
		projs := Projects(testProjects(), authors, false)
		require.Len(t, projs, 2)
	})

	t.Run("sorted by id, reverse flips", func(t *testing.T) {
		projs := Projects(testProjects(), authors, false)
		assert.Equal(t, "alpha", projs[0].ID())
		assert.Equal(t, "zeta", projs[1].ID())

		projs = Projects(testProjects(), authors, true)
		assert.Equal(t, "zeta", projs[0].ID())
	})

	t.Run("team is restricted to the targets", func(t *testing.T) {
		projs := Projects(testProjects(), authors, false)
		team := projs[1].DocList("team")
		require.Len(t, team, 1)
		assert.Equal(t, "A. Person", team[0].Str("name"))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		input := testProjects()
		Projects(input, authors, false)
		assert.Len(t, input[0].DocList("team"), 2)
	})
}
