package queries

import (
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

// OrderView is the admin read model of a stored order.
type OrderView struct {
	ID             kernel.UUID
	CreatedAt      time.Time
	PackageName    string
	PackagePrice   decimal.Decimal
	FormattedPrice string
	Size           string
	Contact        order.Contact
	DeliveryDate   kernel.Date
	Address        order.Address
	Observations   string
	Status         order.Status
	StatusLabel    string
	AdminNotes     string
}

func newOrderView(o *order.Order, prices services.PriceFormatter) OrderView {
	return OrderView{
		ID:             o.ID(),
		CreatedAt:      o.CreatedAt(),
		PackageName:    o.PackageName(),
		PackagePrice:   o.PackagePrice(),
		FormattedPrice: prices.Format(o.PackagePrice()),
		Size:           o.Size(),
		Contact:        o.Contact(),
		DeliveryDate:   o.DeliveryDate(),
		Address:        o.Address(),
		Observations:   o.Observations(),
		Status:         o.Status(),
		StatusLabel:    o.Status().Label(),
		AdminNotes:     o.AdminNotes(),
	}
}
