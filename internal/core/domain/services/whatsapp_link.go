package services

import (
	"fmt"
	"net/url"
	"strings"

	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"
)

const whatsAppBaseURL = "https://wa.me/"

// WhatsAppLinkBuilder builds click-to-chat links that open a conversation with the
// customer, prefilled with a summary of the order.
type WhatsAppLinkBuilder struct {
	countryCode string
	title       string
}

// NewWhatsAppLinkBuilder returns a builder that prefixes numbers with countryCode.
func NewWhatsAppLinkBuilder(countryCode, title string) WhatsAppLinkBuilder {
	return WhatsAppLinkBuilder{countryCode: countryCode, title: title}
}

// Message returns the order summary sent to the customer, with WhatsApp bold markers.
func (b WhatsAppLinkBuilder) Message(o *order.Order) string {
	lines := []string{
		fmt.Sprintf("*%s*", b.title),
		"",
		"*Cliente:* " + o.Contact().FullName,
		"*WhatsApp:* " + o.Contact().WhatsApp,
		"*Pacote:* " + o.PackageName(),
		"*Tamanho:* " + o.Size(),
		"*Entrega:* " + o.DeliveryDate().String(),
		fmt.Sprintf("*Endereço:* %s, %s - %s", o.Address().Street, o.Address().Number, o.Address().City),
	}
	return strings.Join(lines, "\n")
}

// Link returns https://wa.me/<country><digits>?text=<message>. Every non digit of the
// customer number is dropped.
func (b WhatsAppLinkBuilder) Link(o *order.Order) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, o.Contact().WhatsApp)
	if digits == "" {
		return "", errs.NewValueIsInvalidErrorWithCause("whatsapp", fmt.Errorf("%q has no digits", o.Contact().WhatsApp))
	}

	query := url.Values{"text": []string{b.Message(o)}}
	return whatsAppBaseURL + b.countryCode + digits + "?" + query.Encode(), nil
}
