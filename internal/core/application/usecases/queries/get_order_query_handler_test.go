package queries_test

import (
	"testing"

	"nexa/internal/core/application/usecases/queries"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	o := storedOrder(t, "Maria Silva", "11988887777", "São Paulo", order.Scheduled, fixedNow)
	missing := kernel.NewUUID()

	orders := new(MockOrderStore)
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("order", missing)).Once()

	h := queries.NewGetOrderQueryHandler(orders, brl())

	query, _ := queries.NewGetOrderQuery(o.ID())
	view, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "Agendado", view.StatusLabel)
	assert.Equal(t, o.Address(), view.Address)

	query, _ = queries.NewGetOrderQuery(missing)
	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
