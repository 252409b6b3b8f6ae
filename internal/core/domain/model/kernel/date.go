package kernel

import (
	"fmt"
	"time"

	"nexa/internal/pkg/errs"
)

const dateLayout = "2006-01-02"

// ErrDateIsNotConstructed is returned when validating the zero Date.
var ErrDateIsNotConstructed = errs.NewValueIsRequiredError("Date must be created via NewDate, DateOf, or ParseDate")

// Date is a calendar day with no time of day and no zone. Internally it is stored as
// midnight UTC so dates compare and subtract without daylight saving surprises.
//
// Example:
//
//	loc, _ := time.LoadLocation("America/Sao_Paulo")
//	today := kernel.DateOf(time.Now().In(loc))
//	tomorrow := today.AddDays(1)
type Date struct {
	t time.Time
}

// NewDate validates year, month and day. Overflowing values such as February 30 are
// rejected instead of being normalized into the next month.
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < 1 || year > 9999 {
		return Date{}, errs.NewValueIsOutOfRangeError("year", year, 1, 9999)
	}
	if month < time.January || month > time.December {
		return Date{}, errs.NewValueIsOutOfRangeError("month", int(month), 1, 12)
	}
	if maxDay := DaysIn(year, month); day < 1 || day > maxDay {
		return Date{}, errs.NewValueIsOutOfRangeError("day", day, 1, maxDay)
	}
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, nil
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate reads the ISO "YYYY-MM-DD" form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return DateOf(t), nil
}

// DaysIn returns the number of days of the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

// AddDays moves the date by n days, n may be negative.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }

// IsZero reports whether the date was never set.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Validate returns ErrDateIsNotConstructed for the zero Date.
func (d Date) Validate() error {
	if d.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// String returns "YYYY-MM-DD", or an empty string for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// Format formats the date with a time layout, e.g. "02/01/2006".
func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text yields the zero Date.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", string(text), err)
	}
	*d = parsed
	return nil
}
