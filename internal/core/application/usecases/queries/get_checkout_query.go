package queries

import (
	"errors"
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCheckoutQueryIsNotConstructed = errors.New(
	"GetCheckoutQuery must be created via NewGetCheckoutQuery constructor",
)

// GetCheckoutQuery reads the draft of an open checkout session.
type GetCheckoutQuery struct {
	checkoutID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCheckoutQuery(checkoutID kernel.UUID) (GetCheckoutQuery, error) {
	if err := checkoutID.Validate(); err != nil {
		return GetCheckoutQuery{}, err
	}

	return GetCheckoutQuery{
		checkoutID: checkoutID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCheckoutQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckoutQueryIsNotConstructed)
}

func (q GetCheckoutQuery) CheckoutID() kernel.UUID {
	return q.checkoutID
}

// GetCheckoutQueryResponse is the state of the order form. PackageID is empty and
// DeliveryDate is zero until chosen.
type GetCheckoutQueryResponse struct {
	ID              kernel.UUID
	OpenedAt        time.Time
	Today           kernel.Date
	SundaysDisabled bool

	PackageID      string
	PackageName    string
	Price          decimal.Decimal
	FormattedPrice string
	Size           string
	Contact        order.Contact
	DeliveryDate   kernel.Date
	Address        order.Address
	Observations   string

	// Submittable mirrors the enabled state of the submit button.
	Submittable bool
}
