package http

import (
	"nexa/internal/core/application/usecases/queries"
	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/samber/lo"
)

const priceScale = 2

func toDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func toOptionalDate(d kernel.Date) *openapi_types.Date {
	if d.IsZero() {
		return nil
	}
	return lo.ToPtr(toDate(d))
}

func toContact(c order.Contact) servers.Contact {
	return servers.Contact{
		FullName: c.FullName,
		Whatsapp: c.WhatsApp,
		Email:    lo.EmptyableToPtr(c.Email),
	}
}

func toAddress(a order.Address) servers.Address {
	return servers.Address{
		Cep:          lo.EmptyableToPtr(a.CEP),
		Street:       a.Street,
		Number:       a.Number,
		Complement:   lo.EmptyableToPtr(a.Complement),
		Neighborhood: a.Neighborhood,
		City:         a.City,
	}
}

func toCatalog(c queries.GetCatalogQueryResponse) servers.Catalog {
	return servers.Catalog{
		Currency: c.Currency,
		Packages: lo.Map(c.Packages, func(p queries.PackageView, _ int) servers.Package {
			return servers.Package{
				Id:                     p.ID,
				Name:                   p.Name,
				Pieces:                 p.Pieces,
				Price:                  p.Price.StringFixed(priceScale),
				FormattedPrice:         p.FormattedPrice,
				PricePerPiece:          p.PricePerPiece.StringFixed(priceScale),
				FormattedPricePerPiece: p.FormattedPricePerPiece,
				Badge:                  lo.EmptyableToPtr(p.Badge),
			}
		}),
		Sizes: lo.Map(c.Sizes, func(s queries.SizeView, _ int) servers.Size {
			return servers.Size{Label: s.Label, WeightRange: s.WeightRange}
		}),
	}
}

func toCheckout(c queries.GetCheckoutQueryResponse) servers.Checkout {
	response := servers.Checkout{
		Id:              c.ID.Bytes(),
		OpenedAt:        c.OpenedAt,
		Today:           toDate(c.Today),
		SundaysDisabled: c.SundaysDisabled,
		PackageId:       lo.EmptyableToPtr(c.PackageID),
		PackageName:     lo.EmptyableToPtr(c.PackageName),
		Size:            lo.EmptyableToPtr(c.Size),
		Contact:         toContact(c.Contact),
		DeliveryDate:    toOptionalDate(c.DeliveryDate),
		Address:         toAddress(c.Address),
		Observations:    lo.EmptyableToPtr(c.Observations),
		Submittable:     c.Submittable,
	}

	if c.PackageID != "" {
		response.Price = lo.ToPtr(c.Price.StringFixed(priceScale))
		response.FormattedPrice = lo.ToPtr(c.FormattedPrice)
	}
	return response
}

func toCalendar(c queries.GetCheckoutCalendarQueryResponse) servers.Calendar {
	return servers.Calendar{
		Year:  c.Year,
		Month: int(c.Month),
		Today: toDate(c.Today),
		Cells: lo.Map(c.Cells, func(cell checkout.CalendarCell, _ int) servers.CalendarCell {
			if cell.IsPlaceholder() {
				return servers.CalendarCell{Placeholder: true}
			}
			return servers.CalendarCell{
				Date:     toOptionalDate(cell.Date),
				Day:      lo.ToPtr(cell.Date.Day()),
				Disabled: cell.Disabled,
				Selected: cell.Selected,
			}
		}),
	}
}

func toOrder(v queries.OrderView) servers.Order {
	return servers.Order{
		Id:             v.ID.Bytes(),
		CreatedAt:      v.CreatedAt,
		PackageName:    v.PackageName,
		PackagePrice:   v.PackagePrice.StringFixed(priceScale),
		FormattedPrice: v.FormattedPrice,
		Size:           v.Size,
		Contact:        toContact(v.Contact),
		DeliveryDate:   toDate(v.DeliveryDate),
		Address:        toAddress(v.Address),
		Observations:   lo.EmptyableToPtr(v.Observations),
		Status:         servers.OrderStatus(v.Status.String()),
		StatusLabel:    v.StatusLabel,
		AdminNotes:     lo.EmptyableToPtr(v.AdminNotes),
	}
}
