package queries_test

import (
	"testing"

	"nexa/internal/core/application/usecases/queries"
	"nexa/internal/core/domain/model/catalog"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogQueryHandler_Handle(t *testing.T) {
	h := queries.NewGetCatalogQueryHandler(catalog.Default(), brl())

	result, err := h.Handle(t.Context(), queries.NewGetCatalogQuery())

	require.NoError(t, err)
	assert.Equal(t, "BRL", result.Currency)
	require.Len(t, result.Packages, 4)
	assert.Equal(t, []string{"1pc", "2pcs", "3pcs", "4pcs"},
		lo.Map(result.Packages, func(p queries.PackageView, _ int) string { return p.ID }))

	four := result.Packages[3]
	assert.Equal(t, "4 peças", four.Name)
	assert.Equal(t, "Mais vendido", four.Badge)
	assert.Equal(t, "259.90", four.Price.StringFixed(2))
	assert.Equal(t, "64.98", four.PricePerPiece.StringFixed(2))
	assert.Contains(t, four.FormattedPrice, "R$")

	assert.Equal(t, []queries.SizeView{
		{Label: "M", WeightRange: "60 – 74kg"},
		{Label: "G", WeightRange: "75 – 94kg"},
		{Label: "GG (2XG)", WeightRange: "95 – 135kg"},
	}, result.Sizes)
}

func TestGetCatalogQueryHandler_Handle_ValidationError(t *testing.T) {
	h := queries.NewGetCatalogQueryHandler(catalog.Default(), brl())

	_, err := h.Handle(t.Context(), queries.GetCatalogQuery{})

	require.ErrorIs(t, err, queries.ErrGetCatalogQueryIsNotConstructed)
}
