package rrule

import (
	"sort"
	"time"
)

// buildTimeset is the below-Daily half of spec.md §4.5(d): the Cartesian
// product BYHOUR x BYMINUTE x BYSECOND, with the millisecond component
// fixed at DTSTART's own millisecond-of-second. Built once per Iterator, not
// once per cycle, since it never depends on the counter at these
// frequencies.
func buildTimeset(opts *parsedOptions) []time.Time {
	if opts.freq >= Hourly {
		return nil
	}
	millis := opts.dtstart.Nanosecond() / int(time.Millisecond)

	out := make([]time.Time, 0, len(opts.byhour)*len(opts.byminute)*len(opts.bysecond))
	for _, hour := range opts.byhour {
		for _, minute := range opts.byminute {
			for _, second := range opts.bysecond {
				out = append(out, time.Date(1, 1, 1, hour, minute, second, millis*int(time.Millisecond), opts.dtstart.Location()))
			}
		}
	}
	sort.Sort(timeSlice(out))
	return out
}

// timeSet is the at/above-Hourly half of spec.md §4.5(d): for the counter's
// current hour/minute/second, produce every in-scope finer-grained
// combination (hourly -> all minute x second; minutely -> all second;
// secondly -> the single point), preserving whichever fields are already
// fixed by the frequency.
func (c *yearCache) timeSet(freq Frequency, hour, minute, second int) []time.Time {
	var out []time.Time
	switch freq {
	case Hourly:
		for _, m := range c.opts.byminute {
			for _, s := range c.opts.bysecond {
				out = append(out, time.Date(1, 1, 1, hour, m, s, 0, c.opts.dtstart.Location()))
			}
		}
		sort.Sort(timeSlice(out))
	case Minutely:
		for _, s := range c.opts.bysecond {
			out = append(out, time.Date(1, 1, 1, hour, minute, s, 0, c.opts.dtstart.Location()))
		}
		sort.Sort(timeSlice(out))
	case Secondly:
		out = []time.Time{time.Date(1, 1, 1, hour, minute, second, 0, c.opts.dtstart.Location())}
	}
	return out
}

// makeTimeset combines buildTimeset/timeSet per spec.md §4.5(d): below
// Daily it's the fixed Cartesian product; at/above Hourly, a BYHOUR/
// BYMINUTE/BYSECOND mismatch against the counter produces an empty set
// (the cycle contributes nothing) instead of falling through to timeSet.
func makeTimeset(c *yearCache, counterDate time.Time, opts *parsedOptions) []time.Time {
	if opts.freq < Hourly {
		return buildTimeset(opts)
	}

	hour, minute, second := counterDate.Hour(), counterDate.Minute(), counterDate.Second()
	if (opts.freq >= Hourly && len(opts.byhour) != 0 && !containsInt(opts.byhour, hour)) ||
		(opts.freq >= Minutely && len(opts.byminute) != 0 && !containsInt(opts.byminute, minute)) ||
		(opts.freq >= Secondly && len(opts.bysecond) != 0 && !containsInt(opts.bysecond, second)) {
		return nil
	}

	return c.timeSet(opts.freq, hour, minute, second)
}
