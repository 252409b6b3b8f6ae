package queries_test

import (
	"testing"
	"time"

	"nexa/internal/core/application/usecases/queries"
	"nexa/internal/core/domain/model/catalog"
	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCheckoutQueryHandler_Handle_EmptyDraft(t *testing.T) {
	ctx := t.Context()
	c, err := checkout.NewCheckout(kernel.NewUUID(), fixedNow, checkout.WithSundaysDisabled())
	require.NoError(t, err)

	repo := new(MockCheckoutRepository)
	repo.On("Get", ctx, c.ID()).Return(c, nil).Once()

	h := queries.NewGetCheckoutQueryHandler(repo, brl(), clock, 2*time.Hour)
	query, _ := queries.NewGetCheckoutQuery(c.ID())

	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", result.Today.String())
	assert.True(t, result.SundaysDisabled)
	assert.Empty(t, result.PackageID)
	assert.True(t, result.DeliveryDate.IsZero())
	assert.False(t, result.Submittable)
}

func TestGetCheckoutQueryHandler_Handle_WithPackage(t *testing.T) {
	ctx := t.Context()
	c, err := checkout.NewCheckout(kernel.NewUUID(), fixedNow)
	require.NoError(t, err)
	pkg, err := catalog.Default().Package("3pcs")
	require.NoError(t, err)
	require.NoError(t, c.UpdateDraft(func(d *order.Draft) error { return d.SelectPackage(pkg) }))

	repo := new(MockCheckoutRepository)
	repo.On("Get", ctx, c.ID()).Return(c, nil).Once()

	h := queries.NewGetCheckoutQueryHandler(repo, brl(), clock, 2*time.Hour)
	query, _ := queries.NewGetCheckoutQuery(c.ID())

	result, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "3pcs", result.PackageID)
	assert.Equal(t, "3 peças", result.PackageName)
	assert.Equal(t, "219.90", result.Price.StringFixed(2))
	assert.Contains(t, result.FormattedPrice, "219")
}

func TestGetCheckoutQueryHandler_Handle_Expired(t *testing.T) {
	ctx := t.Context()
	c, err := checkout.NewCheckout(kernel.NewUUID(), fixedNow.Add(-5*time.Hour))
	require.NoError(t, err)

	repo := new(MockCheckoutRepository)
	repo.On("Get", ctx, c.ID()).Return(c, nil).Once()

	h := queries.NewGetCheckoutQueryHandler(repo, brl(), clock, 2*time.Hour)
	query, _ := queries.NewGetCheckoutQuery(c.ID())

	_, err = h.Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
