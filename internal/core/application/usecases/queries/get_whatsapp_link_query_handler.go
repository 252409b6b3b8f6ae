package queries

import (
	"context"

	"nexa/internal/core/domain/services"
	"nexa/internal/core/ports"
)

type GetWhatsAppLinkQueryHandler struct {
	orders ports.OrderStore
	links  services.WhatsAppLinkBuilder
}

func NewGetWhatsAppLinkQueryHandler(orders ports.OrderStore, links services.WhatsAppLinkBuilder) GetWhatsAppLinkQueryHandler {
	return GetWhatsAppLinkQueryHandler{orders: orders, links: links}
}

// Handle reads the order and returns its link with the prefilled message.
func (h GetWhatsAppLinkQueryHandler) Handle(ctx context.Context, query GetWhatsAppLinkQuery) (GetWhatsAppLinkQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWhatsAppLinkQueryResponse{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetWhatsAppLinkQueryResponse{}, err
	}

	link, err := h.links.Link(o)
	if err != nil {
		return GetWhatsAppLinkQueryResponse{}, err
	}

	return GetWhatsAppLinkQueryResponse{URL: link, Message: h.links.Message(o)}, nil
}
