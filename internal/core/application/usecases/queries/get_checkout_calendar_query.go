package queries

import (
	"errors"
	"time"

	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/errs"
	"nexa/internal/pkg/guard"
)

var ErrGetCheckoutCalendarQueryIsNotConstructed = errors.New(
	"GetCheckoutCalendarQuery must be created via NewGetCheckoutCalendarQuery constructor",
)

// GetCheckoutCalendarQuery reads one month of the delivery date picker. Navigation
// is unbounded, so any month of a valid year can be requested.
type GetCheckoutCalendarQuery struct {
	checkoutID kernel.UUID
	year       int
	month      time.Month

	guard guard.ConstructorGuard
}

func NewGetCheckoutCalendarQuery(checkoutID kernel.UUID, year int, month time.Month) (GetCheckoutCalendarQuery, error) {
	var rangeErrs []error
	if year < 1 || year > 9999 {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("year", year, 1, 9999))
	}
	if month < time.January || month > time.December {
		rangeErrs = append(rangeErrs, errs.NewValueIsOutOfRangeError("month", int(month), 1, 12))
	}

	if err := errors.Join(append(rangeErrs, checkoutID.Validate())...); err != nil {
		return GetCheckoutCalendarQuery{}, err
	}

	return GetCheckoutCalendarQuery{
		checkoutID: checkoutID,
		year:       year,
		month:      month,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCheckoutCalendarQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckoutCalendarQueryIsNotConstructed)
}

func (q GetCheckoutCalendarQuery) CheckoutID() kernel.UUID { return q.checkoutID }
func (q GetCheckoutCalendarQuery) Year() int               { return q.year }
func (q GetCheckoutCalendarQuery) Month() time.Month       { return q.month }

// GetCheckoutCalendarQueryResponse is the month grid. Cells start with placeholders
// for the weekday offset of day 1, Sunday first.
type GetCheckoutCalendarQueryResponse struct {
	Year  int
	Month time.Month
	Today kernel.Date
	Cells []checkout.CalendarCell
}
