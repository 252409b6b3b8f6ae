package commands_test

import (
	"context"
	"errors"
	"testing"

	"nexa/internal/core/application/usecases/commands"
	"nexa/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileOrdersCommandHandler_Handle_NoRemote(t *testing.T) {
	local := new(MockOrderStore)

	h := commands.NewReconcileOrdersCommandHandler(local, nil)
	result, err := h.Handle(t.Context(), commands.NewReconcileOrdersCommand())

	require.NoError(t, err)
	assert.True(t, result.Skipped)
	local.AssertNotCalled(t, "List", mock.Anything)
}

func TestReconcileOrdersCommandHandler_Handle_PushesEveryOrder(t *testing.T) {
	ctx := t.Context()
	first := storedOrder(t, order.New)
	second := storedOrder(t, order.Contacted)

	local := new(MockOrderStore)
	remote := new(MockOrderReplica)
	mock.InOrder(
		local.On("List", ctx).Return([]*order.Order{first, second}, nil).Once(),
		remote.On("Upsert", ctx, first).Return(nil).Once(),
		local.On("Delete", ctx, first.ID()).Return(nil).Once(),
		remote.On("Upsert", ctx, second).Return(nil).Once(),
		local.On("Delete", ctx, second.ID()).Return(nil).Once(),
	)

	h := commands.NewReconcileOrdersCommandHandler(local, remote)
	result, err := h.Handle(ctx, commands.NewReconcileOrdersCommand())

	require.NoError(t, err)
	assert.Equal(t, commands.ReconcileOrdersResult{Pending: 2, Pushed: 2}, result)
	local.AssertExpectations(t)
	remote.AssertExpectations(t)
}

func TestReconcileOrdersCommandHandler_Handle_FailedOrderStaysLocal(t *testing.T) {
	ctx := t.Context()
	failing := storedOrder(t, order.New)
	ok := storedOrder(t, order.New)

	local := new(MockOrderStore)
	remote := new(MockOrderReplica)
	local.On("List", ctx).Return([]*order.Order{failing, ok}, nil).Once()
	remote.On("Upsert", ctx, failing).Return(errors.New("connection refused")).Once()
	remote.On("Upsert", ctx, ok).Return(nil).Once()
	local.On("Delete", ctx, ok.ID()).Return(nil).Once()

	h := commands.NewReconcileOrdersCommandHandler(local, remote)
	result, err := h.Handle(ctx, commands.NewReconcileOrdersCommand())

	require.Error(t, err)
	assert.Contains(t, err.Error(), failing.ID().String())
	assert.Equal(t, 1, result.Pushed)
	assert.Equal(t, 1, result.Failed)
	local.AssertNotCalled(t, "Delete", ctx, failing.ID())
}

func TestReconcileOrdersCommandHandler_Handle_ListError(t *testing.T) {
	ctx := t.Context()

	local := new(MockOrderStore)
	remote := new(MockOrderReplica)
	local.On("List", ctx).Return(nil, errors.New("corrupt file")).Once()

	h := commands.NewReconcileOrdersCommandHandler(local, remote)
	_, err := h.Handle(ctx, commands.NewReconcileOrdersCommand())

	require.Error(t, err)
	remote.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestReconcileOrdersCommandHandler_Handle_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	local := new(MockOrderStore)
	remote := new(MockOrderReplica)
	local.On("List", ctx).Return([]*order.Order{storedOrder(t, order.New)}, nil).Once()

	h := commands.NewReconcileOrdersCommandHandler(local, remote)
	result, err := h.Handle(ctx, commands.NewReconcileOrdersCommand())

	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, result.Pushed)
	remote.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
