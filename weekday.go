package rrule

// Weekday identifies a day of the week, optionally qualified with an
// ordinal (N), e.g. the "3rd Monday" in BYDAY=3MO is MO.Nth(3).
// Leaving N unset (0) means "every occurrence of this weekday".
type Weekday struct {
	weekday int
	n       int
}

// Nth returns a copy of wday qualified with ordinal n. n may be negative to
// count from the end of the enclosing period.
func (wday Weekday) Nth(n int) Weekday {
	return Weekday{weekday: wday.weekday, n: n}
}

// N returns the ordinal qualifier, e.g. 3 for 3MO, 0 if unqualified.
func (wday Weekday) N() int {
	return wday.n
}

// Day returns the weekday index, 0 (Monday) through 6 (Sunday).
func (wday Weekday) Day() int {
	return wday.weekday
}

// The seven weekdays, ISO order (Monday = 0).
var (
	MO = Weekday{weekday: 0}
	TU = Weekday{weekday: 1}
	WE = Weekday{weekday: 2}
	TH = Weekday{weekday: 3}
	FR = Weekday{weekday: 4}
	SA = Weekday{weekday: 5}
	SU = Weekday{weekday: 6}
)
