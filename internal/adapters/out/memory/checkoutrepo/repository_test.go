package checkoutrepo_test

import (
	"testing"
	"time"

	"nexa/internal/adapters/out/memory/checkoutrepo"
	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var opened = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newCheckout(t *testing.T, at time.Time) *checkout.Checkout {
	t.Helper()
	c, err := checkout.NewCheckout(kernel.NewUUID(), at)
	require.NoError(t, err)
	return c
}

func TestRepository_AddGetUpdate(t *testing.T) {
	ctx := t.Context()
	repo := checkoutrepo.NewRepository()
	c := newCheckout(t, opened)

	require.NoError(t, repo.Add(ctx, c))
	require.ErrorIs(t, repo.Add(ctx, c), errs.ErrValueIsInvalid)

	got, err := repo.Get(ctx, c.ID())
	require.NoError(t, err)
	require.NoError(t, got.UpdateDraft(func(d *order.Draft) error {
		d.SetObservations("deixar com o porteiro")
		return nil
	}))

	again, err := repo.Get(ctx, c.ID())
	require.NoError(t, err)
	assert.Empty(t, again.Draft().Observations(), "changes are invisible until Update")

	require.NoError(t, repo.Update(ctx, got))
	again, err = repo.Get(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "deixar com o porteiro", again.Draft().Observations())
}

func TestRepository_GetUnknown(t *testing.T) {
	repo := checkoutrepo.NewRepository()

	_, err := repo.Get(t.Context(), kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	err = repo.Update(t.Context(), newCheckout(t, opened))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_Delete(t *testing.T) {
	ctx := t.Context()
	repo := checkoutrepo.NewRepository()
	c := newCheckout(t, opened)
	require.NoError(t, repo.Add(ctx, c))

	require.NoError(t, repo.Delete(ctx, c.ID()))
	require.NoError(t, repo.Delete(ctx, c.ID()))
	assert.Zero(t, repo.Len())
}

func TestRepository_DeleteIdleSince(t *testing.T) {
	ctx := t.Context()
	repo := checkoutrepo.NewRepository()
	idle := newCheckout(t, opened)
	active := newCheckout(t, opened)
	active.Touch(opened.Add(90 * time.Minute))
	require.NoError(t, repo.Add(ctx, idle))
	require.NoError(t, repo.Add(ctx, active))

	removed, err := repo.DeleteIdleSince(ctx, opened.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	_, err = repo.Get(ctx, active.ID())
	require.NoError(t, err)
	_, err = repo.Get(ctx, idle.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
