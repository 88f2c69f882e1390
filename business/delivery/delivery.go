// Package delivery estimates storefront delivery dates from business-day
// arithmetic: US federal holidays with weekend observance, a ZIP-range transit
// table and a same-day shipping cutoff in the fulfillment center's time zone.
// All operations are pure apart from the year-keyed holiday memo, so the same
// package backs both the web service and callers embedding it directly.
package delivery

import (
	"fmt"
	"sync"
	"time"

	"github.com/rickar/cal/v2"
)

// OriginZoneName is the civil time zone of the single fulfillment center.
// The shipping cutoff is evaluated against wall-clock hours in this zone,
// never against the caller's local zone.
const OriginZoneName = "America/Los_Angeles"

// CutoffHour is the origin-zone hour after which orders no longer ship same day.
const CutoffHour = 14

const dateKeyLayout = "2006-01-02"

//yearHolidays holds one year's computed holiday dates in both lookup shapes
type yearHolidays struct {
	dates []string
	set   map[string]bool
}

// Calendar answers business-day questions for the fulfillment center.
// Build one with MakeCalendar and share it; holiday sets are computed once
// per year and memoized for the life of the process.
type Calendar struct {
	holidays []*cal.Holiday
	origin   *time.Location

	//originHour reports the wall-clock hour of an instant in the origin zone,
	//kept as a field so tests can pin the clock
	originHour func(at time.Time) int

	mu    sync.RWMutex
	years map[int]yearHolidays
}

// MakeCalendar builds a Calendar observing the storefront holiday set.
func MakeCalendar() (*Calendar, error) {
	origin, err := time.LoadLocation(OriginZoneName)
	if err != nil {
		return nil, fmt.Errorf("loading origin zone %s: %w", OriginZoneName, err)
	}
	c := &Calendar{
		holidays: storefrontHolidays,
		origin:   origin,
		years:    map[int]yearHolidays{},
	}
	c.originHour = func(at time.Time) int {
		return at.In(c.origin).Hour()
	}
	return c, nil
}

//midnight normalizes an instant to its calendar date at local midnight
func midnight(at time.Time) time.Time {
	return time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
}
