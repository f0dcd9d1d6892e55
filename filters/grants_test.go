package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
)

func testGrants() docs.Collection {
	return docs.Collection{
		{
			"_id":    "gPI",
			"amount": 100000.0,
			"team": []any{
				map[string]any{"name": "A. Person", "position": "PI"},
				map[string]any{"name": "B. Other", "position": "Co-PI"},
			},
			"end_year": 2022,
		},
		{
			"_id":    "gCoPI",
			"amount": 40000.0,
			"team": []any{
				map[string]any{"name": "Z. Lead", "position": "pi", "subaward_amount": 5000.0},
				map[string]any{"name": "A. Person", "position": "co-pi", "subaward_amount": 15000.0},
			},
			"end_year": 2021,
		},
		{
			"_id":    "gUnrelated",
			"amount": 9999.0,
			"team": []any{
				map[string]any{"name": "D. Stranger", "position": "pi"},
			},
			"end_year": 2023,
		},
	}
}

func TestGrantsPIMode(t *testing.T) {
	names := NewNameSet("A. Person")
	grants, totals, err := Grants(testGrants(), names, GrantOptions{Mode: GrantModePI})
	require.NoError(t, err)

	require.Len(t, grants, 1, "non-PI grants are excluded entirely")
	assert.Equal(t, "gPI", grants[0].ID())
	assert.Equal(t, 100000.0, totals.Amount)
	assert.Equal(t, 0.0, totals.Subaward)

	t.Run("role match is case-insensitive", func(t *testing.T) {
		// gPI uses "PI", gCoPI uses "pi"; both spellings count.
		grants, totals, err := Grants(testGrants(), NewNameSet("Z. Lead"), GrantOptions{Mode: GrantModePI})
		require.NoError(t, err)
		require.Len(t, grants, 1)
		assert.Equal(t, 40000.0, totals.Amount)
	})

	t.Run("missing amount is fatal", func(t *testing.T) {
		broken := docs.Collection{{
			"_id":  "gBroken",
			"team": []any{map[string]any{"name": "A. Person", "position": "pi"}},
		}}
		_, _, err := Grants(broken, names, GrantOptions{Mode: GrantModePI})
		require.Error(t, err)
		assert.True(t, errors.IsMissingField(err))
	})
}

func TestGrantsSubawardMode(t *testing.T) {
	names := NewNameSet("A. Person")
	grants, totals, err := Grants(testGrants(), names, GrantOptions{Mode: GrantModeSubaward})
	require.NoError(t, err)

	require.Len(t, grants, 1, "PI-role grants are excluded in subaward mode")
	grant := grants[0]
	assert.Equal(t, "gCoPI", grant.ID())
	assert.Equal(t, 40000.0, totals.Amount)
	assert.Equal(t, 15000.0, totals.Subaward)
	assert.Equal(t, 15000.0, grant.FloatOr("subaward_amount", -1))

	pi, ok := grant.Sub("pi")
	require.True(t, ok, "the grant's PI reference is attached")
	assert.Equal(t, "Z. Lead", pi.Str("name"))

	me, ok := grant.Sub("me")
	require.True(t, ok, "the matched participant is attached")
	assert.Equal(t, "A. Person", me.Str("name"))
}

func TestGrantsMultiPIMode(t *testing.T) {
	names := NewNameSet("A. Person")
	grants, _, err := Grants(testGrants(), names, GrantOptions{Mode: GrantModeMultiPI})
	require.NoError(t, err)

	require.Len(t, grants, 2, "multi-PI mode keeps every matched grant")
	for _, grant := range grants {
		if grant.ID() == "gCoPI" {
			assert.Equal(t, true, grant["multi_pi"])
			assert.Equal(t, 15000.0, grant.FloatOr("subaward_amount", -1))
		}
		if grant.ID() == "gPI" {
			assert.Equal(t, false, grant["multi_pi"])
			assert.Equal(t, 0.0, grant.FloatOr("subaward_amount", -1))
		}
	}
}

func TestGrantsSorting(t *testing.T) {
	names := NewNameSet("A. Person")
	grants, _, err := Grants(testGrants(), names, GrantOptions{Mode: GrantModeMultiPI, Reverse: true})
	require.NoError(t, err)
	require.Len(t, grants, 2)
	assert.Equal(t, "gPI", grants[0].ID(), "2022 before 2021 when reversed")
	assert.Equal(t, "gCoPI", grants[1].ID())
}

func TestGrantsDoNotMutateInput(t *testing.T) {
	input := testGrants()
	_, _, err := Grants(input, NewNameSet("A. Person"), GrantOptions{Mode: GrantModeSubaward})
	require.NoError(t, err)
	assert.False(t, input[1].Has("me"))
	assert.False(t, input[1].Has("pi"))
}
