package delivery

import "time"

// IsBusinessDay reports whether the date of "at" is a shipping day: a weekday
// that is not an observed holiday. Time of day is ignored.
func (c *Calendar) IsBusinessDay(at time.Time) bool {
	day := midnight(at)
	weekday := day.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false
	}
	return !c.isHoliday(day)
}

// NextBusinessDay returns the first business day strictly after the date of
// "at". It always moves forward, even when "at" is itself a business day.
func (c *Calendar) NextBusinessDay(at time.Time) time.Time {
	day := midnight(at).AddDate(0, 0, 1)
	for !c.IsBusinessDay(day) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// AddBusinessDays advances from the date of "from" until n business days have
// passed, skipping weekends and holidays without counting them. n = 0 returns
// the date of "from" unchanged.
func (c *Calendar) AddBusinessDays(from time.Time, n int) time.Time {
	day := midnight(from)
	for counted := 0; counted < n; {
		day = day.AddDate(0, 0, 1)
		if c.IsBusinessDay(day) {
			counted++
		}
	}
	return day
}
