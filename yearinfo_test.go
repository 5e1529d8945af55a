package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// BYWEEKNO=20 with the default WKST=MO picks the Monday that starts ISO
// week 20 of each year.
func TestYearInfo_ByWeekNo(t *testing.T) {
	r, err := NewRRule(ROption{
		Freq:      Yearly,
		Byweekno:  []int{20},
		Byweekday: []Weekday{MO},
		Count:     3,
		Dtstart:   time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := pull(t, r.Iterator(), 3)
	want := []time.Time{
		time.Date(2020, time.May, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2021, time.May, 17, 0, 0, 0, 0, time.UTC),
		time.Date(2022, time.May, 16, 0, 0, 0, 0, time.UTC),
	}
	require.Equal(t, want, got)
}

// BYWEEKNO=-1 picks the final ISO week of the year. In years whose first
// days belong to the previous year's last week (2021 here), those days are
// marked too -- exercising the "last week of last year" branch -- but none
// of them is a Monday, so each year still yields exactly one Monday.
func TestYearInfo_ByWeekNoNegative(t *testing.T) {
	r, err := NewRRule(ROption{
		Freq:      Yearly,
		Byweekno:  []int{-1},
		Byweekday: []Weekday{MO},
		Count:     2,
		Dtstart:   time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := pull(t, r.Iterator(), 2)
	require.Len(t, got, 2)
	for _, occ := range got {
		require.Equal(t, time.Monday, occ.Weekday())
	}
}

// A WKST of SU shifts which day anchors week 1 relative to the default MO.
func TestYearInfo_WkstSunday(t *testing.T) {
	r, err := NewRRule(ROption{
		Freq:      Yearly,
		Byweekno:  []int{1},
		Byweekday: []Weekday{SU},
		Wkst:      SU,
		Count:     1,
		Dtstart:   time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := pull(t, r.Iterator(), 1)
	require.Len(t, got, 1)
	require.Equal(t, time.Sunday, got[0].Weekday())
}

// 2020 has 53 ISO weeks; BYWEEKNO=53 selects the Monday of that week,
// 28 December 2020.
func TestYearInfo_Week53Year(t *testing.T) {
	r, err := NewRRule(ROption{
		Freq:      Yearly,
		Byweekno:  []int{53},
		Byweekday: []Weekday{MO},
		Count:     1,
		Dtstart:   time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := pull(t, r.Iterator(), 1)
	require.Len(t, got, 1)
	require.Equal(t, 2020, got[0].Year())
	require.Equal(t, time.December, got[0].Month())
	require.Equal(t, 28, got[0].Day())
}
