package checkout_test

import (
	"errors"
	"testing"
	"time"

	"nexa/internal/core/domain/model/catalog"
	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openCheckout(t *testing.T, now time.Time) *checkout.Checkout {
	t.Helper()
	c, err := checkout.NewCheckout(kernel.NewUUID(), now)
	require.NoError(t, err)
	return c
}

func TestNewCheckout(t *testing.T) {
	t.Run("cutoff is the calendar day of now in its location", func(t *testing.T) {
		loc := time.FixedZone("BRT", -3*60*60)
		now := time.Date(2024, time.March, 15, 23, 30, 0, 0, loc)

		c := openCheckout(t, now)

		require.NoError(t, c.Validate())
		picker := c.Picker()
		assert.Equal(t, "2024-03-15", picker.Today().String())
		assert.Equal(t, now, c.OpenedAt())
		assert.False(t, c.Draft().IsSubmittable())
	})

	t.Run("requires id and time", func(t *testing.T) {
		_, err := checkout.NewCheckout(kernel.UUID{}, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = checkout.NewCheckout(kernel.NewUUID(), time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		var c *checkout.Checkout
		assert.ErrorIs(t, c.Validate(), checkout.ErrCheckoutIsNotConstructed)
		assert.ErrorIs(t, (&checkout.Checkout{}).Validate(), checkout.ErrCheckoutIsNotConstructed)
	})
}

func TestCheckout_CutoffIsFixedAcrossMidnight(t *testing.T) {
	opened := time.Date(2024, time.March, 15, 23, 50, 0, 0, time.UTC)
	c := openCheckout(t, opened)

	c.Touch(opened.Add(30 * time.Minute))

	// The session is now on the 16th but keeps the cutoff of the 15th.
	require.NoError(t, c.SelectDeliveryDate(date(t, 2024, time.March, 16)))
	picker := c.Picker()
	assert.Equal(t, "2024-03-15", picker.Today().String())
}

func TestCheckout_Expiry(t *testing.T) {
	opened := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	c := openCheckout(t, opened)
	ttl := 2 * time.Hour

	assert.False(t, c.IsExpired(opened.Add(ttl), ttl))
	assert.True(t, c.IsExpired(opened.Add(ttl+time.Second), ttl))
	assert.False(t, c.IsExpired(opened.Add(48*time.Hour), 0))

	c.Touch(opened.Add(time.Hour))
	assert.NoError(t, c.EnsureActive(opened.Add(ttl+time.Second), ttl))

	err := c.EnsureActive(opened.Add(4*time.Hour), ttl)
	require.ErrorIs(t, err, checkout.ErrCheckoutExpired)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	c.Touch(opened)
	assert.Equal(t, opened.Add(time.Hour), c.LastActivityAt())
}

func TestCheckout_UpdateDraft(t *testing.T) {
	cat := catalog.Default()
	pkg, _ := cat.Package("3pcs")

	t.Run("successful update is kept", func(t *testing.T) {
		c := openCheckout(t, time.Now())

		err := c.UpdateDraft(func(d *order.Draft) error {
			return d.SelectPackage(pkg)
		})

		require.NoError(t, err)
		got, ok := c.Draft().Package()
		require.True(t, ok)
		assert.Equal(t, "3pcs", got.ID())
	})

	t.Run("failed update leaves draft unchanged", func(t *testing.T) {
		c := openCheckout(t, time.Now())
		boom := errors.New("boom")

		err := c.UpdateDraft(func(d *order.Draft) error {
			d.SetContact(order.Contact{FullName: "Maria Silva"})
			return boom
		})

		require.ErrorIs(t, err, boom)
		assert.Empty(t, c.Draft().Contact().FullName)
	})

	t.Run("delivery date cannot bypass the picker", func(t *testing.T) {
		now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
		c := openCheckout(t, now)

		err := c.UpdateDraft(func(d *order.Draft) error {
			d.SetDeliveryDate(date(t, 2024, time.March, 1))
			return nil
		})

		require.NoError(t, err)
		assert.True(t, c.Draft().DeliveryDate().IsZero())
	})
}

func TestCheckout_SelectDeliveryDate(t *testing.T) {
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	c := openCheckout(t, now)

	require.ErrorIs(t, c.SelectDeliveryDate(date(t, 2024, time.March, 15)), checkout.ErrDeliveryDateDisabled)
	assert.True(t, c.Draft().DeliveryDate().IsZero())

	require.NoError(t, c.SelectDeliveryDate(date(t, 2024, time.March, 16)))
	assert.Equal(t, "2024-03-16", c.Draft().DeliveryDate().String())
}

func TestCheckout_Clone(t *testing.T) {
	c := openCheckout(t, time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC))
	clone := c.Clone()

	require.NoError(t, clone.SelectDeliveryDate(date(t, 2024, time.March, 18)))

	assert.True(t, c.Draft().DeliveryDate().IsZero())
	assert.True(t, c.ID().IsEqual(clone.ID()))
}
