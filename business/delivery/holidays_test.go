package delivery

import (
	"testing"

	"github.com/matryer/is"
)

func testCalendar(t *testing.T) *Calendar {
	c, err := MakeCalendar()
	if err != nil {
		t.Fatalf("unable to build calendar: %v", err)
	}
	return c
}

func TestCalendar_HolidaysForYear(t *testing.T) {
	c := testCalendar(t)
	tests := []struct {
		name string
		year int
		want []string
	}{
		{
			name: "2025, no weekend observance shifts",
			year: 2025,
			want: []string{
				"2025-01-01", // New Year's Day
				"2025-01-20", // MLK Day
				"2025-02-17", // Presidents Day
				"2025-05-26", // Memorial Day
				"2025-07-04", // Independence Day
				"2025-09-01", // Labor Day
				"2025-10-13", // Columbus Day
				"2025-11-11", // Veterans Day
				"2025-11-27", // Thanksgiving
				"2025-12-25", // Christmas
			},
		},
		{
			name: "2021, July 4th on Sunday and Christmas on Saturday",
			year: 2021,
			want: []string{
				"2021-01-01",
				"2021-01-18",
				"2021-02-15",
				"2021-05-31",
				"2021-07-05", // observed Monday
				"2021-09-06",
				"2021-10-11",
				"2021-11-11",
				"2021-11-25",
				"2021-12-24", // observed Friday
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			got := c.HolidaysForYear(tt.year)
			is.Equal(tt.want, got)
		})
	}
}

func TestCalendar_HolidaysForYear_memoized(t *testing.T) {
	is := is.New(t)
	c := testCalendar(t)

	first := c.HolidaysForYear(2026)
	second := c.HolidaysForYear(2026)
	is.Equal(first, second)
	is.Equal(10, len(first))

	// every year yields exactly ten unique dates
	for year := 2020; year <= 2035; year++ {
		dates := c.HolidaysForYear(year)
		seen := map[string]bool{}
		for _, d := range dates {
			seen[d] = true
		}
		is.Equal(10, len(seen))
	}
}
