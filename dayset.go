package rrule

import "time"

// daySet is the DaysetBuilder (spec.md §4.4): it selects the contiguous
// window of candidate day-of-year indices for one expansion cycle of the
// driving frequency. The returned slice is yearlen (or yearlen+7 for
// Weekly, to cover cross-year windows) entries long, with every entry set
// to its own index except the candidates outside [start,end); callers only
// ever read dayset[start:end]. A nil entry (set later by the filter pass in
// driver.go) marks a day that failed a BY-filter.
func (c *yearCache) daySet(freq Frequency, year int, month time.Month, day int) (set []*int, start, end int) {
	switch freq {
	case Yearly:
		set = make([]*int, c.yearlen)
		for i := 0; i < c.yearlen; i++ {
			v := i
			set[i] = &v
		}
		return set, 0, c.yearlen

	case Monthly:
		set = make([]*int, c.yearlen)
		start, end = c.mrange[month-1], c.mrange[month]
		for i := start; i < end; i++ {
			v := i
			set[i] = &v
		}
		return set, start, end

	case Weekly:
		// Cross-year weeks are handled by over-allocating 7 extra slots and
		// letting i run past yearlen; the filter pass (driver.go) knows to
		// read those via nextyearlen.
		set = make([]*int, c.yearlen+7)
		i := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).YearDay() - 1
		start = i
		for j := 0; j < 7; j++ {
			v := i
			set[i] = &v
			i++
			if c.wdaymask[i] == c.opts.wkst {
				break
			}
		}
		return set, start, i
	}

	// Daily, Hourly, Minutely, Secondly: a single-element window.
	set = make([]*int, c.yearlen)
	i := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).YearDay() - 1
	set[i] = &i
	return set, i, i + 1
}
