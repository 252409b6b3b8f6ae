package local

import (
	"encoding/json"
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// orderRecord is one element of the slot array. Field names and the numeric price
// follow the layout the landing page wrote into browser storage, so those arrays can
// be read back as they are.
type orderRecord struct {
	ID           string      `json:"id"`
	CreatedAt    time.Time   `json:"createdAt"`
	PackageName  string      `json:"packageName"`
	PackagePrice json.Number `json:"packagePrice"`
	Size         string      `json:"size"`
	FullName     string      `json:"fullName"`
	WhatsApp     string      `json:"whatsapp"`
	Email        string      `json:"email,omitempty"`
	DeliveryDate kernel.Date `json:"deliveryDate"`
	CEP          string      `json:"cep,omitempty"`
	Street       string      `json:"street"`
	Number       string      `json:"number"`
	Complement   string      `json:"complement,omitempty"`
	Neighborhood string      `json:"neighborhood"`
	City         string      `json:"city"`
	Observations string      `json:"observations,omitempty"`
	Status       string      `json:"status"`
	AdminNotes   string      `json:"adminNotes,omitempty"`
}

func fromDomain(o *order.Order) (orderRecord, error) {
	status, err := o.Status().MarshalText()
	if err != nil {
		return orderRecord{}, err
	}

	contact := o.Contact()
	address := o.Address()
	return orderRecord{
		ID:           o.ID().String(),
		CreatedAt:    o.CreatedAt().UTC(),
		PackageName:  o.PackageName(),
		PackagePrice: json.Number(o.PackagePrice().String()),
		Size:         o.Size(),
		FullName:     contact.FullName,
		WhatsApp:     contact.WhatsApp,
		Email:        contact.Email,
		DeliveryDate: o.DeliveryDate(),
		CEP:          address.CEP,
		Street:       address.Street,
		Number:       address.Number,
		Complement:   address.Complement,
		Neighborhood: address.Neighborhood,
		City:         address.City,
		Observations: o.Observations(),
		Status:       string(status),
		AdminNotes:   o.AdminNotes(),
	}, nil
}

func toDomain(r orderRecord) (*order.Order, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(r.PackagePrice.String())
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, r.CreatedAt, order.Details{
		PackageName:  r.PackageName,
		PackagePrice: price,
		Size:         r.Size,
		Contact: order.Contact{
			FullName: r.FullName,
			WhatsApp: r.WhatsApp,
			Email:    r.Email,
		},
		DeliveryDate: r.DeliveryDate,
		Address: order.Address{
			CEP:          r.CEP,
			Street:       r.Street,
			Number:       r.Number,
			Complement:   r.Complement,
			Neighborhood: r.Neighborhood,
			City:         r.City,
		},
		Observations: r.Observations,
	}, status, r.AdminNotes)
}
