package rrule

import "time"

// Sub-daily advancement must not make more than 10 years of simulated
// progress without emitting a candidate (spec.md §4.5, §7): past this
// bound the rule is treated as effectively empty and reported as
// ErrInfeasibleRule. The prose in §7 ("more than 10 years of progress...
// at sub-daily frequency") covers Hourly, Minutely and Secondly alike, so
// all three share these bounds rather than each hard-coding its own.
const (
	infeasibleBoundHours   = 10 * 365 * 24
	infeasibleBoundMinutes = infeasibleBoundHours * 60
	infeasibleBoundSeconds = infeasibleBoundMinutes * 60
)

// clampedDate resolves open question #2 of spec.md §9: a target (year,
// month) is computed by the caller, and day is clamped in one step to
// min(day, lastDayOf(year, month)) -- no iterative "subtract a day and
// retry" loop.
func clampedDate(year int, month time.Month, day, hour, minute, second int, loc *time.Location) time.Time {
	if last := daysInMonth(month, year); day > last {
		day = last
	}
	return time.Date(year, month, day, hour, minute, second, 0, loc)
}

// incrementCounter advances the iteration counter by one cycle's worth of
// `interval` units of `opts.freq`, per the table in spec.md §4.5.1.
func incrementCounter(counter time.Time, opts *parsedOptions, filtered bool) (time.Time, error) {
	loc := counter.Location()

	switch opts.freq {
	case Yearly:
		newYear := counter.Year() + opts.interval
		return clampedDate(newYear, counter.Month(), counter.Day(), counter.Hour(), counter.Minute(), counter.Second(), loc), nil

	case Monthly:
		total := int(counter.Month()) + opts.interval - 1
		yearOffset, monthIdx := divmod(total, 12)
		newMonth := time.Month(monthIdx + 1)
		return clampedDate(counter.Year()+yearOffset, newMonth, counter.Day(), counter.Hour(), counter.Minute(), counter.Second(), loc), nil

	case Weekly:
		weekday := toPyWeekday(counter.Weekday())
		var dayDelta int
		if opts.wkst > weekday {
			dayDelta = -(weekday + 1 + (6 - opts.wkst)) + opts.interval*7
		} else {
			dayDelta = -(weekday - opts.wkst) + opts.interval*7
		}
		return counter.AddDate(0, 0, dayDelta), nil

	case Daily:
		return counter.AddDate(0, 0, opts.interval), nil

	case Hourly:
		return incrementHourly(counter, opts, filtered)

	case Minutely:
		return incrementMinutely(counter, opts, filtered)

	case Secondly:
		return incrementSecondly(counter, opts, filtered)
	}

	return counter, nil
}

// incrementHourly resolves open question #1 of spec.md §9: the fast-forward
// ("if filtered, jump to the last in-day multiple of interval") uses only
// integer arithmetic, never floating point.
func incrementHourly(counter time.Time, opts *parsedOptions, filtered bool) (time.Time, error) {
	loc := counter.Location()
	midnight := time.Date(counter.Year(), counter.Month(), counter.Day(), 0, 0, 0, 0, loc)
	hour := counter.Hour()

	if filtered {
		hour += ((23 - hour) / opts.interval) * opts.interval
	}

	advanced := 0
	for {
		hour += opts.interval
		advanced += opts.interval
		if advanced > infeasibleBoundHours {
			return time.Time{}, newIterError(ErrInfeasibleRule,
				"hourly advancement exceeded 10 years without a candidate (interval=%d)", opts.interval)
		}
		if len(opts.byhour) == 0 || containsInt(opts.byhour, hour%24) {
			break
		}
	}

	return midnight.Add(time.Duration(hour) * time.Hour), nil
}

// incrementMinutely resolves open question #3 of spec.md §9: on a filtered
// cycle, jump straight to the last in-day multiple of interval reachable
// from the counter's own minute-of-day without exceeding the day's final
// minute (1439), then resume the normal BYHOUR/BYMINUTE scan -- expressed
// as a plain integer minute-of-day delta relative to the counter itself
// (never an absolute multiple of interval from 0), so the result stays on
// the same interval-congruent phase as DTSTART.
func incrementMinutely(counter time.Time, opts *parsedOptions, filtered bool) (time.Time, error) {
	loc := counter.Location()
	midnight := time.Date(counter.Year(), counter.Month(), counter.Day(), 0, 0, 0, 0, loc)
	minuteOfDay := counter.Hour()*60 + counter.Minute()

	if filtered {
		minuteOfDay += ((1439 - minuteOfDay) / opts.interval) * opts.interval
	}

	advanced := 0
	for {
		minuteOfDay += opts.interval
		advanced += opts.interval
		if advanced > infeasibleBoundMinutes {
			return time.Time{}, newIterError(ErrInfeasibleRule,
				"minutely advancement exceeded 10 years without a candidate (interval=%d)", opts.interval)
		}
		hour := (minuteOfDay / 60) % 24
		minute := minuteOfDay % 60
		if (len(opts.byhour) == 0 || containsInt(opts.byhour, hour)) &&
			(len(opts.byminute) == 0 || containsInt(opts.byminute, minute)) {
			break
		}
	}

	return midnight.Add(time.Duration(minuteOfDay)*time.Minute + time.Duration(counter.Second())*time.Second), nil
}

// incrementSecondly is incrementMinutely's analogue one level finer, per
// spec.md §4.5.1's "analogous to Minutely with BYSECOND added": the
// filtered jump is likewise a delta relative to the counter's own
// second-of-day, preserving its phase against interval.
func incrementSecondly(counter time.Time, opts *parsedOptions, filtered bool) (time.Time, error) {
	loc := counter.Location()
	midnight := time.Date(counter.Year(), counter.Month(), counter.Day(), 0, 0, 0, 0, loc)
	secondOfDay := counter.Hour()*3600 + counter.Minute()*60 + counter.Second()

	if filtered {
		secondOfDay += ((86399 - secondOfDay) / opts.interval) * opts.interval
	}

	advanced := 0
	for {
		secondOfDay += opts.interval
		advanced += opts.interval
		if advanced > infeasibleBoundSeconds {
			return time.Time{}, newIterError(ErrInfeasibleRule,
				"secondly advancement exceeded 10 years without a candidate (interval=%d)", opts.interval)
		}
		hour := (secondOfDay / 3600) % 24
		minute := (secondOfDay / 60) % 60
		second := secondOfDay % 60
		if (len(opts.byhour) == 0 || containsInt(opts.byhour, hour)) &&
			(len(opts.byminute) == 0 || containsInt(opts.byminute, minute)) &&
			(len(opts.bysecond) == 0 || containsInt(opts.bysecond, second)) {
			break
		}
	}

	return midnight.Add(time.Duration(secondOfDay) * time.Second), nil
}
