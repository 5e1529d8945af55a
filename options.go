package rrule

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// ROption is the user-facing, not-yet-normalised constructor input. It
// mirrors the shape a parser layer (external to this core, per spec.md §1)
// would hand over after reading an RRULE string.
type ROption struct {
	Freq       Frequency
	Dtstart    time.Time
	Interval   int
	Wkst       Weekday
	Count      int
	Until      time.Time
	Bysetpos   []int
	Bymonth    []int
	Bymonthday []int
	Byyearday  []int
	Byweekno   []int
	Byweekday  []Weekday
	Byhour     []int
	Byminute   []int
	Bysecond   []int
	Byeaster   []int
}

// boundedFields is validated with go-playground/validator using two custom
// tag validations registered in init(): "bound=lo:hi" requires every
// element to fall in [lo,hi]; "boundpm=lo:hi" additionally accepts
// [-hi,-lo], for the RFC 5545 fields where a negative value counts from the
// end of the enclosing period (spec.md §3 invariants). The lo/hi separator
// is ":" rather than "|": validator reserves "|" at the tag level to mean
// "OR this validator with the next one", so a literal "|" inside a param
// (e.g. "bound=0|59") is split into the validator "bound=0" ORed with the
// bogus validator "59" and panics at struct-tag parse time.
type boundedFields struct {
	Bysecond   []int `validate:"dive,bound=0:59"`
	Byminute   []int `validate:"dive,bound=0:59"`
	Byhour     []int `validate:"dive,bound=0:23"`
	Bymonthday []int `validate:"dive,boundpm=1:31"`
	Byyearday  []int `validate:"dive,boundpm=1:366"`
	Byweekno   []int `validate:"dive,boundpm=1:53"`
	Bymonth    []int `validate:"dive,bound=1:12"`
	Bysetpos   []int `validate:"dive,boundpm=1:366"`
}

var optionValidator *validator.Validate

func init() {
	optionValidator = validator.New()
	_ = optionValidator.RegisterValidation("bound", boundValidator(false))
	_ = optionValidator.RegisterValidation("boundpm", boundValidator(true))
}

func boundValidator(plusMinus bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		lo, hi, ok := parseBoundParam(fl.Param())
		if !ok {
			return false
		}
		value := int(fl.Field().Int())
		if value >= lo && value <= hi {
			return true
		}
		if plusMinus && value <= -lo && value >= -hi {
			return true
		}
		return false
	}
}

func parseBoundParam(param string) (lo, hi int, ok bool) {
	sep := -1
	for i, r := range param {
		if r == ':' {
			sep = i
			break
		}
	}
	if sep < 0 {
		return 0, 0, false
	}
	lo = atoiMust(param[:sep])
	hi = atoiMust(param[sep+1:])
	return lo, hi, true
}

func atoiMust(s string) int {
	n := 0
	neg := false
	for i, r := range s {
		if i == 0 && r == '-' {
			neg = true
			continue
		}
		n = n*10 + int(r-'0')
	}
	if neg {
		n = -n
	}
	return n
}

// validateBounds checks arg's BY-fields against the bounds fixed by RFC
// 5545 (spec.md §3), plus the interval and BYDAY-ordinal rules the
// validator struct tags can't express declaratively.
func validateBounds(arg ROption) error {
	bf := boundedFields{
		Bysecond:   arg.Bysecond,
		Byminute:   arg.Byminute,
		Byhour:     arg.Byhour,
		Bymonthday: arg.Bymonthday,
		Byyearday:  arg.Byyearday,
		Byweekno:   arg.Byweekno,
		Bymonth:    arg.Bymonth,
		Bysetpos:   arg.Bysetpos,
	}
	if err := optionValidator.Struct(bf); err != nil {
		return errors.New("rrule: option out of bounds: " + err.Error())
	}

	for _, w := range arg.Byweekday {
		if w.n > 53 || w.n < -53 {
			return errors.New("rrule: byday ordinal must be between 1 and 53 or -1 and -53")
		}
	}

	if arg.Interval < 0 {
		return errors.New("rrule: interval must be greater than 0")
	}

	return nil
}

// parsedOptions is the immutable, normalised input the iteration core
// consumes (spec.md §3's ParsedOptions). Negative BYMONTHDAY values have
// already been split out into Bynmonthday, and ordinal BYDAY entries into
// Bynweekday, by normalizeOptions.
type parsedOptions struct {
	freq       Frequency
	dtstart    time.Time
	interval   int
	count      int
	until      time.Time
	wkst       int
	bysetpos   []int
	bymonth    []int
	bymonthday []int
	bynmonthday []int
	byyearday  []int
	byweekno   []int
	byweekday  []int
	bynweekday []Weekday
	byhour     []int
	byminute   []int
	bysecond   []int
	byeaster   []int
}

// normalizeOptions turns a validated ROption into a parsedOptions, applying
// the RFC 5545 default-BY-field inference rules (spec.md §3, §4): when no
// expanding BY-rule is given, DTSTART's own fields become the implicit
// BY-rule for the frequency in play.
func normalizeOptions(arg ROption) parsedOptions {
	var p parsedOptions
	p.freq = arg.Freq
	if arg.Dtstart.IsZero() {
		arg.Dtstart = time.Now().UTC()
	}
	p.dtstart = arg.Dtstart.Truncate(time.Second)

	if arg.Interval == 0 {
		p.interval = 1
	} else {
		p.interval = arg.Interval
	}
	p.count = arg.Count
	if arg.Until.IsZero() {
		// Largest representable duration from dtstart, ~290 years.
		p.until = p.dtstart.Add(time.Duration(1<<63 - 1))
	} else {
		p.until = arg.Until
	}
	p.wkst = arg.Wkst.weekday

	p.bysetpos = arg.Bysetpos
	p.bymonth = arg.Bymonth
	p.byyearday = arg.Byyearday
	p.byeaster = arg.Byeaster
	p.byweekno = arg.Byweekno

	if len(arg.Byweekno) == 0 &&
		len(arg.Byyearday) == 0 &&
		len(arg.Bymonthday) == 0 &&
		len(arg.Byweekday) == 0 &&
		len(arg.Byeaster) == 0 {
		switch p.freq {
		case Yearly:
			if len(arg.Bymonth) == 0 {
				p.bymonth = []int{int(p.dtstart.Month())}
			}
			arg.Bymonthday = []int{p.dtstart.Day()}
		case Monthly:
			arg.Bymonthday = []int{p.dtstart.Day()}
		case Weekly:
			arg.Byweekday = []Weekday{{weekday: toPyWeekday(p.dtstart.Weekday())}}
		}
	}

	for _, mday := range arg.Bymonthday {
		if mday > 0 {
			p.bymonthday = append(p.bymonthday, mday)
		} else if mday < 0 {
			p.bynmonthday = append(p.bynmonthday, mday)
		}
	}

	for _, wday := range arg.Byweekday {
		if wday.n == 0 || p.freq > Monthly {
			p.byweekday = append(p.byweekday, wday.weekday)
		} else {
			p.bynweekday = append(p.bynweekday, wday)
		}
	}

	if len(arg.Byhour) == 0 {
		if p.freq < Hourly {
			p.byhour = []int{p.dtstart.Hour()}
		}
	} else {
		p.byhour = arg.Byhour
	}
	if len(arg.Byminute) == 0 {
		if p.freq < Minutely {
			p.byminute = []int{p.dtstart.Minute()}
		}
	} else {
		p.byminute = arg.Byminute
	}
	if len(arg.Bysecond) == 0 {
		if p.freq < Secondly {
			p.bysecond = []int{p.dtstart.Second()}
		}
	} else {
		p.bysecond = arg.Bysecond
	}

	return p
}
