package rrule

import "github.com/rs/zerolog"

// rruleConfig carries construction-time options (spec.md's ambient logging
// concern; see SPEC_FULL.md's AMBIENT STACK section).
type rruleConfig struct {
	logger zerolog.Logger
}

// Option configures optional ambient behavior of a constructed RRule.
type Option func(*rruleConfig)

// WithLogger attaches a zerolog.Logger that receives Debug-level events on
// every YearInfo/MonthInfo cache rebuild (yearinfo.go, monthinfo.go) and a
// Warn-level event whenever the 10-year InfeasibleRule bound trips
// (driver.go). The default is zerolog.Nop(), i.e. silent -- most callers
// never need this.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *rruleConfig) {
		c.logger = logger
	}
}
