package rrule

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Occurrence is one emitted instant paired with its zero-based position in
// the output stream (spec.md §6).
type Occurrence struct {
	Instant time.Time
	Index   int
}

// Iterator is the IterationDriver (spec.md §4.5): it owns the counter
// instant, one yearCache, and a small buffer of candidates produced by the
// cycle currently in progress. It is pull-driven -- each Next() call runs
// expansion cycles synchronously until one candidate is produced or the
// rule terminates -- and is not safe for concurrent use from multiple
// goroutines (spec.md §5: one iterator, one counter, no shared state).
type Iterator struct {
	opts  *parsedOptions
	cache *yearCache

	counter time.Time
	timeset []time.Time

	pending []Occurrence
	emitted int

	done   bool
	err    error
	closed bool
}

func newIterator(opts *parsedOptions, logger zerolog.Logger) *Iterator {
	it := &Iterator{opts: opts}
	it.counter = opts.dtstart
	it.cache = &yearCache{opts: opts, log: logger}
	it.cache.refresh(it.counter.Year(), it.counter.Month())

	if opts.freq < Hourly {
		it.timeset = buildTimeset(opts)
	} else {
		it.timeset = makeTimeset(it.cache, it.counter, opts)
	}

	return it
}

// Next is pull-next-value (spec.md §6): it returns the next occurrence, or
// ok=false once the rule is exhausted, or a non-nil error once an IterError
// has terminated the iterator. Once either terminal state is reached, every
// subsequent call returns the same terminal result.
func (it *Iterator) Next() (Occurrence, bool, error) {
	if it.closed {
		return Occurrence{}, false, nil
	}
	if it.err != nil {
		return Occurrence{}, false, it.err
	}
	if len(it.pending) == 0 && !it.done {
		if err := it.generate(); err != nil {
			it.err = err
			it.done = true
			return Occurrence{}, false, err
		}
	}
	if len(it.pending) == 0 {
		return Occurrence{}, false, nil
	}
	occ := it.pending[0]
	it.pending = it.pending[1:]
	return occ, true, nil
}

// Peek is current-counter-peek (spec.md §6): the iterator's raw counter
// instant, for debugging. It never advances the iterator or influences
// output.
func (it *Iterator) Peek() time.Time {
	return it.counter
}

// Close is drop (spec.md §6): it releases the iterator's IterInfo cache.
// Idempotent.
func (it *Iterator) Close() {
	it.closed = true
	it.pending = nil
	it.cache = nil
}

// generate runs expansion cycles (spec.md §4.5 steps a-h) until at least
// one candidate is buffered in it.pending or the rule terminates.
func (it *Iterator) generate() error {
	opts := it.opts
	for len(it.pending) == 0 && !it.done {
		year, month, day := it.counter.Date()
		dayset, start, end := it.cache.daySet(opts.freq, year, month, day)
		filtered := it.filterDayset(dayset, start, end)

		var err error
		if len(opts.bysetpos) != 0 && len(it.timeset) != 0 {
			err = it.emitBySetPos(dayset, start, end)
		} else {
			err = it.emitPlain(dayset, start, end)
		}
		if err != nil {
			it.done = true
			return err
		}
		if it.done {
			return nil
		}

		next, err := incrementCounter(it.counter, opts, filtered)
		if err != nil {
			it.done = true
			it.cache.log.Warn().Err(err).Msg("infeasible rule detected during advancement")
			return err
		}
		it.counter = next
		it.cache.refresh(it.counter.Year(), it.counter.Month())

		if opts.freq >= Hourly {
			it.timeset = makeTimeset(it.cache, it.counter, opts)
		}
	}
	return nil
}

// filterDayset is spec.md §4.5(c): mark every day in [start,end) that fails
// one of the seven BY-filters as absent (nil), and report whether any day
// was filtered (used by the Hourly/Minutely/Secondly fast-forward).
func (it *Iterator) filterDayset(dayset []*int, start, end int) bool {
	filtered := false
	for idx := start; idx < end; idx++ {
		p := dayset[idx]
		if p == nil {
			continue
		}
		if isFiltered(it.cache, *p, it.opts) {
			dayset[idx] = nil
			filtered = true
		}
	}
	return filtered
}

// isFiltered implements the seven tests of spec.md §4.5(c) in order; a
// day is absent if any one of them fails.
func isFiltered(c *yearCache, day int, opts *parsedOptions) bool {
	if len(opts.bymonth) != 0 && !containsInt(opts.bymonth, c.mmask[day]) {
		return true
	}
	if len(opts.byweekno) != 0 && c.wnomask[day] == 0 {
		return true
	}
	if len(opts.byweekday) != 0 && !containsInt(opts.byweekday, c.wdaymask[day]) {
		return true
	}
	if len(c.nwdaymask) != 0 && c.nwdaymask[day] == 0 {
		return true
	}
	if len(opts.byeaster) != 0 && c.eastermask[day] == 0 {
		return true
	}
	if (len(opts.bymonthday) != 0 || len(opts.bynmonthday) != 0) &&
		!containsInt(opts.bymonthday, c.mdaymask[day]) &&
		!containsInt(opts.bynmonthday, c.nmdaymask[day]) {
		return true
	}
	if len(opts.byyearday) != 0 {
		if day < c.yearlen {
			if !containsInt(opts.byyearday, day+1) && !containsInt(opts.byyearday, day-c.yearlen) {
				return true
			}
		} else if !containsInt(opts.byyearday, day+1-c.yearlen) && !containsInt(opts.byyearday, day-c.yearlen-c.nextyearlen) {
			return true
		}
	}
	return false
}

// emitPlain is spec.md §4.5(e)+(g) without a BYSETPOS filter: the plain
// ascending day x time cross product.
func (it *Iterator) emitPlain(dayset []*int, start, end int) error {
	for idx := start; idx < end; idx++ {
		p := dayset[idx]
		if p == nil {
			continue
		}
		date := it.cache.firstyday.AddDate(0, 0, *p)
		for _, tt := range it.timeset {
			res := time.Date(date.Year(), date.Month(), date.Day(), tt.Hour(), tt.Minute(), tt.Second(), tt.Nanosecond(), tt.Location())
			stop, err := it.consider(res)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		}
	}
	return nil
}

// emitBySetPos is spec.md §4.5(f): select candidates by ordinal position
// within this cycle's day x time cross product, de-duplicate, then emit in
// ascending order.
func (it *Iterator) emitBySetPos(dayset []*int, start, end int) error {
	var temp []int
	for idx := start; idx < end; idx++ {
		if dayset[idx] != nil {
			temp = append(temp, *dayset[idx])
		}
	}

	var poslist []time.Time
	for _, pos := range it.opts.bysetpos {
		var daypos, timepos int
		if pos < 0 {
			daypos, timepos = divmod(pos, len(it.timeset))
		} else {
			daypos, timepos = divmod(pos-1, len(it.timeset))
		}
		dayIdx, err := pySubscript(temp, daypos)
		if err != nil {
			continue
		}
		tt := it.timeset[timepos]
		date := it.cache.firstyday.AddDate(0, 0, dayIdx)
		res := time.Date(date.Year(), date.Month(), date.Day(), tt.Hour(), tt.Minute(), tt.Second(), tt.Nanosecond(), tt.Location())
		if !timeContains(poslist, res) {
			poslist = append(poslist, res)
		}
	}
	sort.Sort(timeSlice(poslist))

	for _, res := range poslist {
		stop, err := it.consider(res)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return nil
}

// consider applies spec.md §4.5(g): skip candidates before DTSTART, stop at
// UNTIL, buffer everything else and stop once COUNT is reached.
func (it *Iterator) consider(res time.Time) (stop bool, err error) {
	if !it.opts.until.IsZero() && res.After(it.opts.until) {
		it.done = true
		return true, nil
	}
	if res.Before(it.opts.dtstart) {
		return false, nil
	}
	it.pending = append(it.pending, Occurrence{Instant: res, Index: it.emitted})
	it.emitted++
	if it.opts.count != 0 && it.emitted >= it.opts.count {
		it.done = true
		return true, nil
	}
	return false, nil
}
