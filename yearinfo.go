package rrule

import (
	"time"

	"github.com/rs/zerolog"
)

// yearCache is the per-year IterInfo of spec.md §3/§4.1-4.3: it lazily
// materialises YearInfo's day masks, MonthInfo/NWeekdayMask's ordinal-BYDAY
// mask and EasterMask's Easter-relative mask for one calendar year (plus
// enough of the next year's length to resolve wrap-around BYYEARDAY/weekly
// windows). It is owned by a single Iterator; nothing is shared across
// iterators (spec.md §5).
type yearCache struct {
	opts *parsedOptions
	log  zerolog.Logger

	lastyear  int
	lastmonth time.Month

	yearlen     int
	nextyearlen int
	firstyday   time.Time
	yearweekday int

	mmask    []int
	mrange   []int
	mdaymask []int
	nmdaymask []int
	wdaymask []int

	wnomask    []int // YearInfo: ISO week-number mask, nil unless Byweekno set.
	nwdaymask  []int // MonthInfo/NWeekdayMask: ordinal-BYDAY mask, nil unless Bynweekday set.
	eastermask []int // EasterMask, nil unless Byeaster set.
}

// refresh rebuilds whichever of YearInfo/MonthInfo/EasterMask are stale for
// (year, month). YearInfo only changes across a year boundary; MonthInfo
// additionally depends on the month when freq is Monthly.
func (c *yearCache) refresh(year int, month time.Month) {
	if year != c.lastyear {
		c.rebuildYear(year)
	}
	if len(c.opts.bynweekday) != 0 && (month != c.lastmonth || year != c.lastyear) {
		c.rebuildNWeekday(year, month)
	}
	if len(c.opts.byeaster) != 0 {
		c.rebuildEaster(year)
	}
	c.lastyear = year
	c.lastmonth = month
}

// rebuildYear is YearInfo (spec.md §4.1): the month/month-day/weekday/
// week-number masks indexable by day-of-year offset, plus yearlen,
// nextyearlen and the year's first day.
func (c *yearCache) rebuildYear(year int) {
	c.yearlen = 365 + leapInc(year)
	c.nextyearlen = 365 + leapInc(year+1)
	c.firstyday = time.Date(year, time.January, 1, 0, 0, 0, 0, c.opts.dtstart.Location())
	c.yearweekday = toPyWeekday(c.firstyday.Weekday())
	c.wdaymask = weekdayMask[c.yearweekday:]

	if c.yearlen == 365 {
		c.mmask = month365
		c.mdaymask = monthday365
		c.nmdaymask = negMonthday365
		c.mrange = monthRange365
	} else {
		c.mmask = month366
		c.mdaymask = monthday366
		c.nmdaymask = negMonthday366
		c.mrange = monthRange366
	}

	if len(c.opts.byweekno) == 0 {
		c.wnomask = nil
	} else {
		c.rebuildWeekNumbers(year)
	}

	c.log.Debug().Int("year", year).Int("yearlen", c.yearlen).Msg("yearinfo rebuilt")
}

// rebuildWeekNumbers is the YearInfo ISO-week-number mask (spec.md §4.1):
// a week belongs to year Y if its "week start + 3" day falls in Y, with
// wkst substituted for the ISO Thursday rule. Negative BYWEEKNO values are
// resolved against the year's total week count (52 or 53).
func (c *yearCache) rebuildWeekNumbers(year int) {
	c.wnomask = make([]int, c.yearlen+7)
	firstwkst := pymod(7-c.yearweekday+c.opts.wkst, 7)
	no1wkst := firstwkst
	var wyearlen int
	if no1wkst >= 4 {
		no1wkst = 0
		wyearlen = c.yearlen + pymod(c.yearweekday-c.opts.wkst, 7)
	} else {
		wyearlen = c.yearlen - no1wkst
	}
	div, mod := divmod(wyearlen, 7)
	numweeks := div + mod/4

	for _, n := range c.opts.byweekno {
		if n < 0 {
			n += numweeks + 1
		}
		if !(0 < n && n <= numweeks) {
			continue
		}
		var i int
		if n > 1 {
			i = no1wkst + (n-1)*7
			if no1wkst != firstwkst {
				i -= 7 - firstwkst
			}
		} else {
			i = no1wkst
		}
		for j := 0; j < 7; j++ {
			c.wnomask[i] = 1
			i++
			if c.wdaymask[i] == c.opts.wkst {
				break
			}
		}
	}

	if containsInt(c.opts.byweekno, 1) {
		// Week number 1 may start in the current year but finish in the
		// next; check its tail here too.
		i := no1wkst + numweeks*7
		if no1wkst != firstwkst {
			i -= 7 - firstwkst
		}
		if i < c.yearlen {
			for j := 0; j < 7; j++ {
				c.wnomask[i] = 1
				i++
				if c.wdaymask[i] == c.opts.wkst {
					break
				}
			}
		}
	}

	if no1wkst != 0 {
		// If no1wkst is 0 the year either started on wkst, or week 1 took
		// its days entirely from last year, so last year's final week
		// cannot bleed into this year in that case.
		var lnumweeks int
		if !containsInt(c.opts.byweekno, -1) {
			lyearweekday := toPyWeekday(time.Date(year-1, 1, 1, 0, 0, 0, 0, c.opts.dtstart.Location()).Weekday())
			lno1wkst := pymod(7-lyearweekday+c.opts.wkst, 7)
			lyearlen := 365 + leapInc(year-1)
			if lno1wkst >= 4 {
				lnumweeks = 52 + pymod(lyearlen+pymod(lyearweekday-c.opts.wkst, 7), 7)/4
			} else {
				lnumweeks = 52 + pymod(c.yearlen-no1wkst, 7)/4
			}
		} else {
			lnumweeks = -1
		}
		if containsInt(c.opts.byweekno, lnumweeks) {
			for i := 0; i < no1wkst; i++ {
				c.wnomask[i] = 1
			}
		}
	}
}

func leapInc(year int) int {
	if isLeap(year) {
		return 1
	}
	return 0
}
