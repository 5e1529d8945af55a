package rrule

// rebuildEaster is EasterMask (spec.md §4.3): for each BYEASTER offset, mark
// the day-of-year offset that many days from Western Easter Sunday of
// year, dropping offsets that land outside [0, yearlen).
func (c *yearCache) rebuildEaster(year int) {
	c.eastermask = make([]int, c.yearlen+7)
	eyday := easterSunday(year).YearDay() - 1
	for _, offset := range c.opts.byeaster {
		d := eyday + offset
		if d >= 0 && d < c.yearlen {
			c.eastermask[d] = 1
		}
	}
}
