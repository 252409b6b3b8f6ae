// Package orderrepo stores orders in PostgreSQL through GORM. It is the remote order
// store and also receives orders reconciled from the local fallback store.
package orderrepo

import (
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of the orders table. Columns are snake_case; the status is
// stored by name.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	PackageName  string          `gorm:"not null"`
	PackagePrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Size         string          `gorm:"not null"`
	FullName     string          `gorm:"not null"`
	WhatsApp     string          `gorm:"column:whatsapp;not null"`
	Email        string
	DeliveryDate time.Time `gorm:"type:date;not null"`
	CEP          string    `gorm:"column:cep"`
	Street       string    `gorm:"not null"`
	Number       string    `gorm:"not null"`
	Complement   string
	Neighborhood string `gorm:"not null"`
	City         string `gorm:"not null"`
	Observations string
	Status       string `gorm:"type:varchar(16);not null;index"`
	AdminNotes   string
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) (OrderDTO, error) {
	status, err := o.Status().MarshalText()
	if err != nil {
		return OrderDTO{}, err
	}

	contact := o.Contact()
	address := o.Address()
	return OrderDTO{
		ID:           o.ID().Bytes(),
		CreatedAt:    o.CreatedAt(),
		PackageName:  o.PackageName(),
		PackagePrice: o.PackagePrice(),
		Size:         o.Size(),
		FullName:     contact.FullName,
		WhatsApp:     contact.WhatsApp,
		Email:        contact.Email,
		DeliveryDate: o.DeliveryDate().Time(),
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

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.CreatedAt, order.Details{
		PackageName:  dto.PackageName,
		PackagePrice: dto.PackagePrice,
		Size:         dto.Size,
		Contact: order.Contact{
			FullName: dto.FullName,
			WhatsApp: dto.WhatsApp,
			Email:    dto.Email,
		},
		DeliveryDate: kernel.DateOf(dto.DeliveryDate),
		Address: order.Address{
			CEP:          dto.CEP,
			Street:       dto.Street,
			Number:       dto.Number,
			Complement:   dto.Complement,
			Neighborhood: dto.Neighborhood,
			City:         dto.City,
		},
		Observations: dto.Observations,
	}, status, dto.AdminNotes)
}
