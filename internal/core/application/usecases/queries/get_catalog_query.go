package queries

import (
	"errors"

	"nexa/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery reads the package tiers and sizes offered on the landing page.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates the parameterless query.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// PackageView is one tier as shown on the pricing cards.
type PackageView struct {
	ID                     string
	Name                   string
	Pieces                 int
	Price                  decimal.Decimal
	FormattedPrice         string
	PricePerPiece          decimal.Decimal
	FormattedPricePerPiece string
	Badge                  string
}

// SizeView is one size with its recommended weight range.
type SizeView struct {
	Label       string
	WeightRange string
}

// GetCatalogQueryResponse lists packages and sizes in catalog order.
type GetCatalogQueryResponse struct {
	Currency string
	Packages []PackageView
	Sizes    []SizeView
}
