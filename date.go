package fixedincome

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// DaysUntil returns the signed number of whole days from d to x.
func (d Date) DaysUntil(x Date) int {
	return int(x.time().Sub(d.time()) / (24 * time.Hour))
}

// YearsUntil returns the number of years from d to x, counting days over a
// 365-day year. Negative when x is before d.
func (d Date) YearsUntil(x Date) float64 {
	return float64(d.DaysUntil(x)) / 365.0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// dateFormats are the layouts accepted when coercing a table cell to a date.
var dateFormats = []string{
	DateFormat,
	"2006-1-2", // permissive single-digit month/day
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
	"Jan 2, 2006",
}

// ParseDate parses a Date from a string, accepting a few common layouts.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, str); err == nil {
			return NewDate(t.Date()), nil
		}
	}
	// Timestamps (e.g. "2031-06-15 00:00:00") keep only the day part.
	if fields := strings.Fields(str); len(fields) > 1 {
		return ParseDate(fields[0])
	}
	return Date{}, fmt.Errorf("invalid date %q", str)
}
