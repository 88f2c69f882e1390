package delivery

import "strconv"

// Shipping method identifiers recognized by the transit resolver.
const (
	MethodStandard         = "standard"
	MethodExpress          = "express"
	MethodTwoDay           = "2-day"
	MethodOvernight        = "overnight"
	MethodExpressOvernight = "express-overnight"
)

// DefaultTransitDays is used when a destination ZIP cannot be parsed.
const DefaultTransitDays = 5

//transitZones maps destination ZIP ranges to standard transit days. The
//ranges cover the whole 00000-99999 space contiguously with no gaps.
var transitZones = []struct {
	low, high uint64
	days      int
}{
	{0, 19999, 1},
	{20000, 39999, 2},
	{40000, 59999, 3},
	{60000, 79999, 4},
	{80000, 99999, 5},
}

// TransitDays returns the standard transit-day count for a destination ZIP.
// A ZIP that fails to parse as a number falls back to DefaultTransitDays
// rather than erroring; validation of user input happens upstream.
func TransitDays(destinationZip string) int {
	numeric, err := strconv.ParseUint(destinationZip, 10, 64)
	if err != nil {
		return DefaultTransitDays
	}
	for _, zone := range transitZones {
		if numeric >= zone.low && numeric <= zone.high {
			return zone.days
		}
	}
	return DefaultTransitDays
}

// TransitDaysForMethod applies the shipping method's rule to the zone-table
// transit days for a destination. Overnight methods always take one day,
// express methods cap the zone value at two, and anything else, including
// unrecognized identifiers, uses the standard zone value.
func TransitDaysForMethod(methodID, destinationZip string) int {
	base := TransitDays(destinationZip)
	switch methodID {
	case MethodOvernight, MethodExpressOvernight:
		return 1
	case MethodExpress, MethodTwoDay:
		if base < 2 {
			return base
		}
		return 2
	default:
		return base
	}
}
