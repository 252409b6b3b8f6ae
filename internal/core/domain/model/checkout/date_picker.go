package checkout

import (
	"errors"
	"fmt"
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/errs"
)

// ErrDeliveryDateDisabled is returned when a customer picks a date the calendar shows
// as disabled.
var ErrDeliveryDateDisabled = errors.New("delivery date is not available")

// CalendarCell is one square of a month grid. Placeholder cells pad the first week so
// day 1 falls under its weekday column and carry no date.
type CalendarCell struct {
	Date     kernel.Date
	Disabled bool
	Selected bool
}

// IsPlaceholder reports whether the cell is leading padding.
func (c CalendarCell) IsPlaceholder() bool {
	return c.Date.IsZero()
}

// DatePickerOption configures a DatePicker.
type DatePickerOption func(*DatePicker)

// WithSundaysDisabled makes the picker follow the Monday to Saturday delivery policy.
func WithSundaysDisabled() DatePickerOption {
	return func(p *DatePicker) {
		p.sundaysDisabled = true
	}
}

// DatePicker lets a customer choose a delivery day. The cutoff is the "today" given
// at construction and is never re-evaluated, so a checkout left open across midnight
// keeps its original cutoff. Same day delivery is never offered.
//
// Example:
//
//	today := kernel.DateOf(time.Now().In(loc))
//	picker := checkout.NewDatePicker(today, checkout.WithSundaysDisabled())
//	cells, _ := picker.Month(2024, time.March)
//	err := picker.Select(today.AddDays(1))
type DatePicker struct {
	today           kernel.Date
	sundaysDisabled bool
	selected        kernel.Date
}

// NewDatePicker creates a picker whose cutoff is today.
func NewDatePicker(today kernel.Date, opts ...DatePickerOption) DatePicker {
	p := DatePicker{today: today}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Today returns the cutoff date.
func (p *DatePicker) Today() kernel.Date {
	return p.today
}

// SundaysDisabled reports whether the weekday policy is enforced.
func (p *DatePicker) SundaysDisabled() bool {
	return p.sundaysDisabled
}

// Month builds the grid of a month: one placeholder per weekday before day 1 (weeks
// start on Sunday), then every day in ascending order. Any month may be displayed,
// past or future.
func (p *DatePicker) Month(year int, month time.Month) ([]CalendarCell, error) {
	first, err := kernel.NewDate(year, month, 1)
	if err != nil {
		return nil, err
	}

	offset := int(first.Weekday())
	days := kernel.DaysIn(year, month)
	cells := make([]CalendarCell, offset, offset+days)

	for day := first; day.Month() == month; day = day.AddDays(1) {
		cells = append(cells, CalendarCell{
			Date:     day,
			Disabled: p.IsDisabled(day),
			Selected: !p.selected.IsZero() && p.selected.Equal(day),
		})
	}

	return cells, nil
}

// IsDisabled reports whether d cannot be chosen: it is on or before the cutoff, or it
// is a Sunday while the weekday policy is enforced.
func (p *DatePicker) IsDisabled(d kernel.Date) bool {
	if d.IsZero() || !d.After(p.today) {
		return true
	}
	return p.sundaysDisabled && d.Weekday() == time.Sunday
}

// Select replaces the chosen date. A disabled date is rejected and the previous
// selection is kept.
func (p *DatePicker) Select(d kernel.Date) error {
	if err := d.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryDate", err)
	}
	if p.IsDisabled(d) {
		return fmt.Errorf("%w: %s", ErrDeliveryDateDisabled, d)
	}
	p.selected = d
	return nil
}

// Selected returns the chosen date and whether there is one.
func (p *DatePicker) Selected() (kernel.Date, bool) {
	return p.selected, !p.selected.IsZero()
}
