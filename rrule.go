package rrule

import (
	"time"

	"github.com/rs/zerolog"
)

// RRule is a fully-validated, normalised recurrence rule. It is the
// construct-with-options half of the core's external contract (spec.md
// §6); everything downstream -- RRULE-string parsing, RRULESET merges,
// convenience All/Between/Before/After wrappers -- is a collaborator built
// on top of this core, not part of it (spec.md §1).
type RRule struct {
	opts   parsedOptions
	logger zerolog.Logger
}

// NewRRule validates arg against the RFC 5545 bounds of spec.md §3 and
// normalises it into the ParsedOptions the iteration core consumes.
func NewRRule(arg ROption, options ...Option) (*RRule, error) {
	if err := validateBounds(arg); err != nil {
		return nil, err
	}

	cfg := rruleConfig{logger: zerolog.Nop()}
	for _, opt := range options {
		opt(&cfg)
	}

	return &RRule{
		opts:   normalizeOptions(arg),
		logger: cfg.logger,
	}, nil
}

// Iterator returns a fresh pull-style Iterator over r. Two iterators
// obtained from the same RRule are independent and, run to the same point,
// produce identical output (spec.md §5, §8 invariant 5): each gets its own
// counter and its own IterInfo cache.
func (r *RRule) Iterator() *Iterator {
	opts := r.opts
	return newIterator(&opts, r.logger)
}

// DTStart reports the rule's already timezone-resolved anchor instant.
func (r *RRule) DTStart() time.Time {
	return r.opts.dtstart
}

// Freq reports the rule's driving frequency.
func (r *RRule) Freq() Frequency {
	return r.opts.freq
}

// Interval reports the rule's effective interval (defaulted to 1 if the
// caller left it unset).
func (r *RRule) Interval() int {
	return r.opts.interval
}
