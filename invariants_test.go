package rrule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Invariant 1 (monotonicity) + 2 (COUNT honoured): consecutive occurrences
// never go backwards, and the tally never exceeds COUNT.
func TestInvariant_MonotonicAndCountHonoured(t *testing.T) {
	r, err := NewRRule(ROption{
		Freq:     Daily,
		Interval: 3,
		Count:    25,
		Dtstart:  time.Date(2023, time.March, 1, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := pull(t, r.Iterator(), 1000)
	require.LessOrEqual(t, len(got), 25)
	for i := 1; i < len(got); i++ {
		require.False(t, got[i].Before(got[i-1]), "index %d went backwards", i)
	}
}

// Invariant 3 (UNTIL honoured) + 4 (DTSTART floor).
func TestInvariant_UntilAndDtstartFloor(t *testing.T) {
	dtstart := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2023, time.January, 20, 0, 0, 0, 0, time.UTC)
	r, err := NewRRule(ROption{
		Freq:    Daily,
		Dtstart: dtstart,
		Until:   until,
	})
	require.NoError(t, err)

	got := pull(t, r.Iterator(), 1000)
	require.NotEmpty(t, got)
	for _, occ := range got {
		require.False(t, occ.Before(dtstart))
		require.False(t, occ.After(until))
	}
}

// Invariant 5 (determinism): two iterators from equal options emit
// identical sequences.
func TestInvariant_Determinism(t *testing.T) {
	opt := ROption{
		Freq:      Monthly,
		Byweekday: []Weekday{MO.Nth(-1)},
		Count:     6,
		Dtstart:   time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	r1, err := NewRRule(opt)
	require.NoError(t, err)
	r2, err := NewRRule(opt)
	require.NoError(t, err)

	a := pull(t, r1.Iterator(), 100)
	b := pull(t, r2.Iterator(), 100)
	require.Equal(t, a, b)

	// Two iterators from the *same* RRule must also be independent and
	// isomorphic (spec.md §5).
	c := pull(t, r1.Iterator(), 100)
	require.Equal(t, a, c)
}

// Invariant 6 (BYSETPOS idempotence): selecting BYSETPOS=-1 internally
// matches taking the last candidate of each unrestricted cycle externally.
func TestInvariant_BysetposMatchesExternalFilter(t *testing.T) {
	withPos, err := NewRRule(ROption{
		Freq:      Monthly,
		Byweekday: []Weekday{MO, TU, WE, TH, FR},
		Bysetpos:  []int{-1},
		Count:     6,
		Dtstart:   time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	without, err := NewRRule(ROption{
		Freq:      Monthly,
		Byweekday: []Weekday{MO, TU, WE, TH, FR},
		Count:     200,
		Dtstart:   time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	withGot := pull(t, withPos.Iterator(), 6)

	all := pull(t, without.Iterator(), 200)
	byMonth := map[time.Month][]time.Time{}
	for _, occ := range all {
		byMonth[occ.Month()] = append(byMonth[occ.Month()], occ)
	}
	months := []time.Month{
		time.January, time.February, time.March, time.April, time.May, time.June,
	}
	var externallyFiltered []time.Time
	for _, m := range months {
		days := byMonth[m]
		require.NotEmpty(t, days)
		externallyFiltered = append(externallyFiltered, days[len(days)-1])
	}

	require.Equal(t, externallyFiltered, withGot)
}

// Invariant 7: an empty BY-set imposes no filter -- replacing BYMONTH with
// every valid month produces the same output as leaving it unset.
func TestInvariant_EmptyBySetIsNoFilter(t *testing.T) {
	base, err := NewRRule(ROption{
		Freq:    Daily,
		Count:   40,
		Dtstart: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	allMonths := make([]int, 12)
	for i := range allMonths {
		allMonths[i] = i + 1
	}
	explicit, err := NewRRule(ROption{
		Freq:    Daily,
		Bymonth: allMonths,
		Count:   40,
		Dtstart: time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Equal(t, pull(t, base.Iterator(), 40), pull(t, explicit.Iterator(), 40))
}

// Invariant 8: negative indexing equivalence for BYYEARDAY and BYMONTHDAY.
func TestInvariant_NegativeIndexing(t *testing.T) {
	yearly, err := NewRRule(ROption{
		Freq:      Yearly,
		Byyearday: []int{-1},
		Count:     3,
		Dtstart:   time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	got := pull(t, yearly.Iterator(), 3)
	for _, occ := range got {
		require.Equal(t, time.December, occ.Month())
		require.Equal(t, 31, occ.Day())
	}

	monthly, err := NewRRule(ROption{
		Freq:       Monthly,
		Bymonthday: []int{-1},
		Count:      3,
		Dtstart:    time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	gotM := pull(t, monthly.Iterator(), 3)
	want := []int{31, 28, 31}
	for i, occ := range gotM {
		require.Equal(t, want[i], occ.Day())
	}
}

// Invariant 9 (leap-year clamp): a yearly rule anchored on 29 Feb with no
// BYMONTH/BYMONTHDAY override relies on dtstart's own day as the implicit
// BYMONTHDAY, so non-leap years emit nothing for that cycle and only leap
// years ever produce a candidate.
func TestInvariant_LeapYearClamp(t *testing.T) {
	r, err := NewRRule(ROption{
		Freq:    Yearly,
		Count:   2,
		Dtstart: time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got := pull(t, r.Iterator(), 2)
	require.Equal(t, []time.Time{
		time.Date(2020, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
	}, got)
}
