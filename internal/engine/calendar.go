package engine

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk and on-wire representation of a calendar day.
const DateLayout = "2006-01-02"

// FormatDate renders the local calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC of that day.
// UTC keeps day arithmetic free of DST shifts.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return d, nil
}

// AddDays returns the day n days after dateStr (n may be negative).
// An unparseable input yields "".
func AddDays(dateStr string, n int) string {
	d, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, n).Format(DateLayout)
}

// ISOWeekKey returns the ISO-8601 week of dateStr as "YYYY-Www". The year is
// the ISO year, which differs from the calendar year around New Year.
func ISOWeekKey(dateStr string) string {
	d, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	year, week := d.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// CalendarWeekKey returns a Sunday-started week numbering where week 1 is the
// week containing January 1st, keyed by calendar year. It is NOT ISO-8601 and
// is only used by the weekly_xp rule.
func CalendarWeekKey(dateStr string) string {
	d, err := ParseDate(dateStr)
	if err != nil {
		return ""
	}
	jan1 := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	offset := d.YearDay() - 1 + int(jan1.Weekday()) + 1
	week := (offset + 6) / 7
	return fmt.Sprintf("%04d-W%02d", d.Year(), week)
}

// MonthKey returns the "YYYY-MM" prefix of a date string.
func MonthKey(dateStr string) string {
	if len(dateStr) < 7 {
		return dateStr
	}
	return dateStr[:7]
}

// MonthDay truncates a date string to "MM-DD" for chart labels.
func MonthDay(dateStr string) string {
	if len(dateStr) < 10 {
		return dateStr
	}
	return dateStr[5:10]
}
