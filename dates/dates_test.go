package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/vitae/docs"
	"github.com/teranos/vitae/errors"
)

func TestMonthToInt(t *testing.T) {
	t.Run("all spellings of a month agree", func(t *testing.T) {
		for _, m := range []any{5, "5", "May", "may", "MAY", "may."} {
			got, err := MonthToInt(m)
			require.NoError(t, err, "month %v", m)
			assert.Equal(t, 5, got, "month %v", m)
		}
		for _, m := range []any{9, "9", "Sep", "sep.", "Sept", "sept.", "September"} {
			got, err := MonthToInt(m)
			require.NoError(t, err, "month %v", m)
			assert.Equal(t, 9, got, "month %v", m)
		}
	})

	t.Run("empty string defaults to January", func(t *testing.T) {
		got, err := MonthToInt("")
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("nil defaults to January", func(t *testing.T) {
		got, err := MonthToInt(nil)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("unrecognized name is ErrInvalidMonth", func(t *testing.T) {
		_, err := MonthToInt("Maybruary")
		require.Error(t, err)
		assert.True(t, errors.IsInvalidMonth(err))
	})

	t.Run("whole float from a decoder is accepted", func(t *testing.T) {
		got, err := MonthToInt(float64(11))
		require.NoError(t, err)
		assert.Equal(t, 11, got)
	})
}

func TestShortMonthName(t *testing.T) {
	assert.Equal(t, "Jan", ShortMonthName(1))
	assert.Equal(t, "Sept", ShortMonthName(9))
	assert.Equal(t, "Dec", ShortMonthName(12))
	assert.Equal(t, "", ShortMonthName(0))
	assert.Equal(t, "", ShortMonthName(13))
}

func TestSortKey(t *testing.T) {
	t.Run("encodes year month day positionally", func(t *testing.T) {
		got, err := SortKey(2019, 1, 15)
		require.NoError(t, err)
		assert.InDelta(t, 2019.0115, got, 1e-9)

		got, err = SortKey(2019, "May", 0)
		require.NoError(t, err)
		assert.InDelta(t, 2019.05, got, 1e-9)

		got, err = SortKey(2019, "February", 2)
		require.NoError(t, err)
		assert.InDelta(t, 2019.0202, got, 1e-9)
	})

	t.Run("is lexicographically monotonic", func(t *testing.T) {
		prev := -1.0
		for _, d := range []struct {
			y, m, d int
		}{
			{2018, 12, 31},
			{2019, 1, 1},
			{2019, 1, 2},
			{2019, 2, 1},
			{2019, 12, 31},
			{2020, 1, 1},
		} {
			key, err := SortKey(d.y, d.m, d.d)
			require.NoError(t, err)
			assert.Greater(t, key, prev)
			prev = key
		}
	})

	t.Run("propagates invalid months", func(t *testing.T) {
		_, err := SortKey(2019, "Snowuary", 1)
		assert.True(t, errors.IsInvalidMonth(err))
	})
}

func TestEndOfMonth(t *testing.T) {
	assert.Equal(t, 30, EndOfMonth(2025, 11))
	assert.Equal(t, 31, EndOfMonth(2025, 12))
	assert.Equal(t, 28, EndOfMonth(2025, 2))
	assert.Equal(t, 29, EndOfMonth(2024, 2), "leap year")
	assert.Equal(t, 29, EndOfMonth(2000, 2), "century leap year")
	assert.Equal(t, 28, EndOfMonth(1900, 2), "century non-leap year")
}

func TestBeginEnd(t *testing.T) {
	t.Run("defaults begin day to 1 and end day to end of month", func(t *testing.T) {
		begin, end, err := BeginEnd(docs.Document{
			"begin_month": "Oct",
			"begin_year":  2019,
			"end_month":   "Nov",
			"end_year":    2025,
		})
		require.NoError(t, err)
		assert.Equal(t, time.Date(2019, time.October, 1, 0, 0, 0, 0, time.UTC), begin)
		assert.Equal(t, time.Date(2025, time.November, 30, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("February end day respects non-leap years", func(t *testing.T) {
		_, end, err := BeginEnd(docs.Document{
			"begin_year": 2019,
			"end_month":  "Feb",
			"end_year":   2025,
		})
		require.NoError(t, err)
		assert.Equal(t, 28, end.Day())
	})

	t.Run("explicit days win", func(t *testing.T) {
		begin, end, err := BeginEnd(docs.Document{
			"begin_year":  2019,
			"begin_month": 3,
			"begin_day":   14,
			"end_year":    2020,
			"end_month":   3,
			"end_day":     2,
		})
		require.NoError(t, err)
		assert.Equal(t, 14, begin.Day())
		assert.Equal(t, 2, end.Day())
	})

	t.Run("missing begin_year is ErrMissingField", func(t *testing.T) {
		_, _, err := BeginEnd(docs.Document{"end_year": 2025})
		require.Error(t, err)
		assert.True(t, errors.IsMissingField(err))
	})

	t.Run("missing end_year is ErrMissingField", func(t *testing.T) {
		_, _, err := BeginEnd(docs.Document{"begin_year": 2019})
		require.Error(t, err)
		assert.True(t, errors.IsMissingField(err))
	})
}

func TestPredicatesAreInclusive(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	since := day(2019, time.May, 10)
	before := day(2020, time.May, 10)

	t.Run("boundary dates satisfy the predicates", func(t *testing.T) {
		assert.True(t, IsSince(since, since))
		assert.True(t, IsBefore(before, before))
		assert.True(t, IsBetween(since, since, before))
		assert.True(t, IsBetween(before, since, before))
	})

	t.Run("between is the conjunction of since and before", func(t *testing.T) {
		for _, target := range []time.Time{
			day(2019, time.May, 9),
			day(2019, time.May, 10),
			day(2019, time.December, 1),
			day(2020, time.May, 10),
			day(2020, time.May, 11),
		} {
			assert.Equal(t,
				IsSince(target, since) && IsBefore(target, before),
				IsBetween(target, since, before),
				"target %v", target)
		}
	})

	t.Run("outside the window", func(t *testing.T) {
		assert.False(t, IsSince(day(2019, time.May, 9), since))
		assert.False(t, IsBefore(day(2020, time.May, 11), before))
	})
}

func TestBeginOfEndOf(t *testing.T) {
	begin, err := BeginOf(2019, "Oct", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, begin.Day())

	end, err := EndOf(2024, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 29, end.Day())

	end, err = EndOf(2024, 2, 12)
	require.NoError(t, err)
	assert.Equal(t, 12, end.Day())
}

func TestMonthAndYear(t *testing.T) {
	assert.Equal(t, "present", MonthAndYear(nil, nil))
	assert.Equal(t, "2019", MonthAndYear(nil, 2019))
	assert.Equal(t, "May 2019", MonthAndYear("May", 2019))
	assert.Equal(t, "Sept 2019", MonthAndYear(9, 2019))
}
