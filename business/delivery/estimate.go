package delivery

import (
	"fmt"
	"time"
)

// DeliveryEstimate is the result of a single estimate calculation. Values are
// computed fresh on every call and never mutated afterwards.
type DeliveryEstimate struct {
	ShipDate       time.Time
	DeliveryDate   time.Time
	TransitDays    int
	ShortDate      string // "March 17th"
	FullDate       string // "Monday, March 17th"
	DisplayMessage string // "Get it by March 17th"
}

// ShippingMethod describes one method offered at checkout.
type ShippingMethod struct {
	ID    string
	Name  string
	Price float64
}

//ShippingMethods lists the checkout methods in display order
var ShippingMethods = []ShippingMethod{
	{ID: MethodStandard, Name: "Standard Shipping", Price: 5.99},
	{ID: MethodExpress, Name: "Express Shipping", Price: 12.99},
	{ID: MethodOvernight, Name: "Overnight Shipping", Price: 24.99},
}

// MethodEstimate pairs a checkout method with its delivery estimate.
type MethodEstimate struct {
	Method ShippingMethod
	DeliveryEstimate
}

// Estimate computes the delivery estimate for an order placed at "now" to the
// destination ZIP. An empty methodID estimates standard zone-table transit.
func (c *Calendar) Estimate(now time.Time, destinationZip, methodID string) DeliveryEstimate {
	ship := c.ShipDate(now)
	transit := TransitDays(destinationZip)
	if methodID != "" {
		transit = TransitDaysForMethod(methodID, destinationZip)
	}
	deliver := c.AddBusinessDays(ship, transit)
	short := formatShortDate(deliver)
	return DeliveryEstimate{
		ShipDate:       ship,
		DeliveryDate:   deliver,
		TransitDays:    transit,
		ShortDate:      short,
		FullDate:       fmt.Sprintf("%s, %s", deliver.Weekday(), short),
		DisplayMessage: "Get it by " + short,
	}
}

// EstimatesForAllMethods computes an estimate for every checkout method, in
// the fixed order of ShippingMethods.
func (c *Calendar) EstimatesForAllMethods(now time.Time, destinationZip string) []MethodEstimate {
	estimates := make([]MethodEstimate, 0, len(ShippingMethods))
	for _, method := range ShippingMethods {
		estimates = append(estimates, MethodEstimate{
			Method:           method,
			DeliveryEstimate: c.Estimate(now, destinationZip, method.ID),
		})
	}
	return estimates
}

//formatShortDate renders a date as "March 17th"
func formatShortDate(at time.Time) string {
	return fmt.Sprintf("%s %d%s", at.Month(), at.Day(), ordinalSuffix(at.Day()))
}

//ordinalSuffix returns the English ordinal suffix for a day of month
func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
