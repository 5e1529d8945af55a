package rrule

// Package-level lookup tables shared by every YearInfo rebuild. Each mask
// is indexable by day-of-year offset (0-based) and is built once, in
// init(), for both leap (366) and common (365) year lengths. Every mask is
// 7 entries longer than its nominal year length so that a weekly window
// starting near 31 December can always read 7 contiguous entries without a
// bounds check (see dayset.go).
var (
	month366      []int
	month365      []int
	monthday366   []int
	monthday365   []int
	negMonthday366 []int
	negMonthday365 []int
	weekdayMask   []int
	monthRange366 = []int{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}
	monthRange365 = []int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
)

func init() {
	month366 = concatInts(
		repeatInt(1, 31), repeatInt(2, 29), repeatInt(3, 31), repeatInt(4, 30),
		repeatInt(5, 31), repeatInt(6, 30), repeatInt(7, 31), repeatInt(8, 31),
		repeatInt(9, 30), repeatInt(10, 31), repeatInt(11, 30), repeatInt(12, 31),
		repeatInt(1, 7),
	)
	month365 = concatInts(month366[:59], month366[60:])

	m29, m30, m31 := rangeInts(1, 30), rangeInts(1, 31), rangeInts(1, 32)
	monthday366 = concatInts(m31, m29, m31, m30, m31, m30, m31, m31, m30, m31, m30, m31, m31[:7])
	monthday365 = concatInts(monthday366[:59], monthday366[60:])

	m29, m30, m31 = rangeInts(-29, 0), rangeInts(-30, 0), rangeInts(-31, 0)
	negMonthday366 = concatInts(m31, m29, m31, m30, m31, m30, m31, m31, m30, m31, m30, m31, m31[:7])
	negMonthday365 = concatInts(negMonthday366[:31], negMonthday366[32:])

	weekdayMask = make([]int, 0, 55*7)
	for i := 0; i < 55; i++ {
		weekdayMask = append(weekdayMask, 0, 1, 2, 3, 4, 5, 6)
	}
}
