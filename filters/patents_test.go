package filters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
	"github.com/teranos/vitae/internal/util"
)

func ipPeople() docs.Collection {
	return docs.Collection{
		{"_id": "jdoe", "name": "Jane Doe", "aka": []any{"J. Doe"}},
		{"_id": "rsmith", "name": "Robin Smith"},
	}
}

func ipCollection() docs.Collection {
	return docs.Collection{
		{
			"_id": "pat1", "type": "patent", "status": "active",
			"inventors": []any{"J. Doe", "Robin Smith"},
			"end_year":  2022, "month": 3,
			"events": []any{
				map[string]any{"year": 2021, "month": 6, "description": "filed"},
				map[string]any{"year": 2019, "month": 1, "description": "provisional"},
			},
		},
		{
			"_id": "pat2", "type": "patent", "status": "expired",
			"inventors": []any{"J. Doe"},
			"end_year":  2020,
			"events":    []any{},
		},
		{
			"_id": "lic1", "type": "license", "status": "pending",
			"inventors": []any{"jane doe"},
			"end_year":  2022,
			"events": []any{
				map[string]any{"year": 2021, "month": 2, "amount": 1000.0},
				map[string]any{"year": 2018, "month": 2, "amount": 500.0},
			},
		},
		{
			"_id": "patOther", "type": "patent", "status": "active",
			"inventors": []any{"Robin Smith"},
			"end_year":  2022,
			"events":    []any{},
		},
	}
}

func TestPatents(t *testing.T) {
	t.Run("gates by status, type tag, and inventor", func(t *testing.T) {
		patents, err := Patents(ipCollection(), ipPeople(), "jdoe", Window{})
		require.NoError(t, err)
		require.Len(t, patents, 1)
		assert.Equal(t, "pat1", patents[0].ID(),
			"expired pat2 and other-inventor patOther are excluded")
	})

	t.Run("inventor aliases resolve case-insensitively", func(t *testing.T) {
		patents, err := Patents(ipCollection(), ipPeople(), "Jane Doe", Window{})
		require.NoError(t, err)
		require.Len(t, patents, 1)
	})

	t.Run("events come back chronologically sorted", func(t *testing.T) {
		patents, err := Patents(ipCollection(), ipPeople(), "jdoe", Window{})
		require.NoError(t, err)
		events := patents[0].DocList("events")
		require.Len(t, events, 2)
		assert.Equal(t, "provisional", events[0].Str("description"))
		assert.Equal(t, "filed", events[1].Str("description"))
	})

	t.Run("window restricts both the record and its events", func(t *testing.T) {
		since := util.Ptr(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC))
		patents, err := Patents(ipCollection(), ipPeople(), "jdoe", Window{Since: since})
		require.NoError(t, err)
		require.Len(t, patents, 1)
		events := patents[0].DocList("events")
		require.Len(t, events, 1, "the 2019 provisional event is outside the window")
		assert.Equal(t, "filed", events[0].Str("description"))
	})

	t.Run("unresolvable target is fatal", func(t *testing.T) {
		_, err := Patents(ipCollection(), ipPeople(), "nobody", Window{})
		require.Error(t, err)
		assert.True(t, errors.IsUnresolvedReference(err))
	})

	t.Run("event without a year is fatal", func(t *testing.T) {
		broken := docs.Collection{{
			"_id": "patX", "type": "patent", "status": "active",
			"inventors": []any{"jdoe"},
			"end_year":  2022,
			"events":    []any{map[string]any{"month": 1}},
		}}
		_, err := Patents(broken, ipPeople(), "jdoe", Window{})
		require.Error(t, err)
		assert.True(t, errors.IsMissingField(err))
	})
}

func TestLicenses(t *testing.T) {
	t.Run("total amount sums all events before the window trims them", func(t *testing.T) {
		since := util.Ptr(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))
		licenses, err := Licenses(ipCollection(), ipPeople(), "jdoe", Window{Since: since})
		require.NoError(t, err)
		require.Len(t, licenses, 1)

		lic := licenses[0]
		assert.Equal(t, 1500.0, lic.FloatOr("total_amount", -1))
		events := lic.DocList("events")
		require.Len(t, events, 1, "the 2018 event is outside the window")
		assert.Equal(t, 1000.0, events[0].FloatOr("amount", -1))
	})

	t.Run("patents never get a total amount", func(t *testing.T) {
		patents, err := Patents(ipCollection(), ipPeople(), "jdoe", Window{})
		require.NoError(t, err)
		assert.False(t, patents[0].Has("total_amount"))
	})

	t.Run("input is not mutated", func(t *testing.T) {
		input := ipCollection()
		_, err := Licenses(input, ipPeople(), "jdoe", Window{})
		require.NoError(t, err)
		assert.False(t, input[2].Has("total_amount"))
		assert.Len(t, input[2].DocList("events"), 2)
	})
}
