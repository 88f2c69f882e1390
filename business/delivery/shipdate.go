package delivery

import "time"

// ShipDate returns the date an order placed at "now" leaves the fulfillment
// center. Orders placed before CutoffHour, measured strictly by the origin
// zone's wall clock, ship the same day when that day is a business day;
// everything else ships the next business day.
func (c *Calendar) ShipDate(now time.Time) time.Time {
	today := midnight(now)
	if c.originHour(now) < CutoffHour && c.IsBusinessDay(today) {
		return today
	}
	return c.NextBusinessDay(today)
}
