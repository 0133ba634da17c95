package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Style selects a display format for a picked date.
type Style int

const (
	// LongMonth renders "05 May 2025".
	LongMonth Style = iota
	// SlashShortYear renders "05/05/25".
	SlashShortYear
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the English name of month, or "" when out of range.
func MonthName(month int) string {
	if !validMonth(month) {
		return ""
	}
	return monthNames[month-1]
}

func (s Style) String() string {
	switch s {
	case LongMonth:
		return "long"
	case SlashShortYear:
		return "slash"
	default:
		return "style(" + strconv.Itoa(int(s)) + ")"
	}
}

// ParseStyle accepts "long", "long-month", "slash" and "slash-short-year".
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "long-month", "longmonth":
		return LongMonth, nil
	case "slash", "slash-short-year", "slashshortyear":
		return SlashShortYear, nil
	default:
		return 0, fmt.Errorf("%w: style %q (expected long|slash)", ErrInvalidArgument, s)
	}
}

func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Format renders a day/month/year triple. Output is always English and
// numeric regardless of locale.
func Format(day, month, year int, style Style) (string, error) {
	if !validMonth(month) {
		return "", invalidMonth(month)
	}
	switch style {
	case LongMonth:
		return pad2(day) + " " + monthNames[month-1] + " " + itoa(year), nil
	case SlashShortYear:
		yy := year % 100
		if yy < 0 {
			yy = -yy
		}
		return pad2(day) + "/" + pad2(month) + "/" + pad2(yy), nil
	default:
		return "", fmt.Errorf("%w: unknown style %d", ErrInvalidArgument, int(style))
	}
}

// Date is a picked calendar day.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Day: d, Month: int(m), Year: y}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q (expected YYYY-MM-DD)", ErrInvalidArgument, s)
	}
	return DateOf(t), nil
}

func (d Date) Format(style Style) (string, error) {
	return Format(d.Day, d.Month, d.Year, style)
}

// ISO renders YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) IsZero() bool { return d == Date{} }

func pad2(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func itoa(n int) string { return strconv.Itoa(n) }
