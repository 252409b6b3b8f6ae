package queries

import (
	"context"

	"nexa/internal/core/domain/model/catalog"
	"nexa/internal/core/domain/services"

	"github.com/samber/lo"
)

// GetCatalogQueryHandler projects the catalog with display prices.
type GetCatalogQueryHandler struct {
	catalog *catalog.Catalog
	prices  services.PriceFormatter
}

func NewGetCatalogQueryHandler(cat *catalog.Catalog, prices services.PriceFormatter) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{catalog: cat, prices: prices}
}

// Handle returns the catalog read model.
func (h GetCatalogQueryHandler) Handle(_ context.Context, query GetCatalogQuery) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	return GetCatalogQueryResponse{
		Currency: h.prices.Currency().String(),
		Packages: lo.Map(h.catalog.Packages(), func(p catalog.Package, _ int) PackageView {
			return PackageView{
				ID:                     p.ID(),
				Name:                   p.Name(),
				Pieces:                 p.Pieces(),
				Price:                  p.Price(),
				FormattedPrice:         h.prices.Format(p.Price()),
				PricePerPiece:          p.PricePerPiece(),
				FormattedPricePerPiece: h.prices.Format(p.PricePerPiece()),
				Badge:                  p.Badge(),
			}
		}),
		Sizes: lo.Map(h.catalog.Sizes(), func(s catalog.Size, _ int) SizeView {
			return SizeView{Label: s.Label(), WeightRange: s.WeightRange()}
		}),
	}, nil
}
