package queries

import (
	"errors"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/pkg/guard"
)

var ErrGetWhatsAppLinkQueryIsNotConstructed = errors.New(
	"GetWhatsAppLinkQuery must be created via NewGetWhatsAppLinkQuery constructor",
)

// GetWhatsAppLinkQuery builds the click-to-chat link staff use to contact a customer.
type GetWhatsAppLinkQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWhatsAppLinkQuery(orderID kernel.UUID) (GetWhatsAppLinkQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetWhatsAppLinkQuery{}, err
	}

	return GetWhatsAppLinkQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWhatsAppLinkQuery) Validate() error {
	return q.guard.Validate(ErrGetWhatsAppLinkQueryIsNotConstructed)
}

func (q GetWhatsAppLinkQuery) OrderID() kernel.UUID {
	return q.orderID
}

type GetWhatsAppLinkQueryResponse struct {
	URL     string
	Message string
}
