package rrule

import "time"

// rebuildNWeekday is MonthInfo/NWeekdayMask (spec.md §4.2): the mask over
// day-of-year positions marking days that satisfy at least one ordinal
// BYDAY pair such as "3rd Monday". Scope is the current month when freq is
// Monthly, the whole year (or each BYMONTH month) when freq is Yearly.
func (c *yearCache) rebuildNWeekday(year int, month time.Month) {
	var ranges [][2]int
	switch c.opts.freq {
	case Yearly:
		if len(c.opts.bymonth) != 0 {
			for _, m := range c.opts.bymonth {
				ranges = append(ranges, [2]int{c.mrange[m-1], c.mrange[m]})
			}
		} else {
			ranges = [][2]int{{0, c.yearlen}}
		}
	case Monthly:
		ranges = [][2]int{{c.mrange[month-1], c.mrange[month]}}
	}
	if len(ranges) == 0 {
		// Weekly and finer frequencies never reach here: they don't carry
		// ordinal BYDAY pairs (spec.md §4.5(c)(4) only fires for Yearly and
		// Monthly).
		return
	}

	c.nwdaymask = make([]int, c.yearlen)
	for _, rng := range ranges {
		first, last := rng[0], rng[1]-1
		for _, pair := range c.opts.bynweekday {
			wday, n := pair.weekday, pair.n
			var i int
			if n < 0 {
				i = last + (n+1)*7
				i -= pymod(c.wdaymask[i]-wday, 7)
			} else {
				i = first + (n-1)*7
				i += pymod(7-c.wdaymask[i]+wday, 7)
			}
			if first <= i && i <= last {
				c.nwdaymask[i] = 1
			}
		}
	}

	c.log.Debug().Int("year", year).Int("month", int(month)).Msg("monthinfo (nweekday) rebuilt")
}
