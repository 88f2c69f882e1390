package delivery

import (
	"sort"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

//storefrontHolidays lists the ten federal holidays the fulfillment center
//closes for. Juneteenth is deliberately absent: the center ships on it.
var storefrontHolidays = []*cal.Holiday{
	us.NewYear,
	us.MlkDay,
	us.PresidentsDay,
	us.MemorialDay,
	us.IndependenceDay,
	us.LaborDay,
	us.ColumbusDay,
	us.VeteransDay,
	us.ThanksgivingDay,
	us.ChristmasDay,
}

// HolidaysForYear returns the observed holiday dates for a year as sorted
// YYYY-MM-DD strings. Fixed-date holidays falling on a Saturday are observed
// the preceding Friday, on a Sunday the following Monday, so an entry can land
// in late December of the prior year. Results are memoized per year.
func (c *Calendar) HolidaysForYear(year int) []string {
	yh := c.yearHolidays(year)
	dates := make([]string, len(yh.dates))
	copy(dates, yh.dates)
	return dates
}

//isHoliday reports whether the date of "at" is an observed holiday, matching
//by canonical date string against the year's memoized set
func (c *Calendar) isHoliday(at time.Time) bool {
	return c.yearHolidays(at.Year()).set[at.Format(dateKeyLayout)]
}

//yearHolidays returns the memoized holiday dates for a year, computing and
//recording them on first use. Two callers racing on the same year compute
//identical sets, so losing the store race is harmless.
func (c *Calendar) yearHolidays(year int) yearHolidays {
	c.mu.RLock()
	yh, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return yh
	}

	yh = yearHolidays{
		dates: make([]string, 0, len(c.holidays)),
		set:   make(map[string]bool, len(c.holidays)),
	}
	for _, holiday := range c.holidays {
		_, observed := holiday.Calc(year)
		key := observed.Format(dateKeyLayout)
		if !yh.set[key] {
			yh.set[key] = true
			yh.dates = append(yh.dates, key)
		}
	}
	sort.Strings(yh.dates)

	c.mu.Lock()
	if existing, ok := c.years[year]; ok {
		yh = existing
	} else {
		c.years[year] = yh
	}
	c.mu.Unlock()
	return yh
}
