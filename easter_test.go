package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// BYEASTER=0 selects Western Easter Sunday itself, year after year.
func TestByEaster_EasterSunday(t *testing.T) {
	r, err := NewRRule(ROption{
		Freq:     Yearly,
		Byeaster: []int{0},
		Count:    3,
		Dtstart:  time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := pull(t, r.Iterator(), 3)
	want := []time.Time{
		time.Date(2022, time.April, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2023, time.April, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
	require.Equal(t, want, got)
}

// A nonzero BYEASTER offset selects a day relative to Easter Sunday --
// here, Easter Monday (offset 1) and Good Friday (offset -2).
func TestByEaster_OffsetsFromEasterSunday(t *testing.T) {
	r, err := NewRRule(ROption{
		Freq:     Yearly,
		Byeaster: []int{1},
		Count:    1,
		Dtstart:  time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	got := pull(t, r.Iterator(), 1)
	require.Equal(t, []time.Time{
		time.Date(2023, time.April, 10, 0, 0, 0, 0, time.UTC),
	}, got)

	rGoodFriday, err := NewRRule(ROption{
		Freq:     Yearly,
		Byeaster: []int{-2},
		Count:    1,
		Dtstart:  time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	gotGoodFriday := pull(t, rGoodFriday.Iterator(), 1)
	require.Equal(t, []time.Time{
		time.Date(2023, time.April, 7, 0, 0, 0, 0, time.UTC),
	}, gotGoodFriday)
}
