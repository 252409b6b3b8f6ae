package order_test

import (
	"strings"
	"testing"
	"time"

	"nexa/internal/core/domain/model/catalog"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft(t *testing.T) order.Draft {
	t.Helper()

	c := catalog.Default()
	pkg, err := c.Package("2pcs")
	require.NoError(t, err)
	size, err := c.Size("G")
	require.NoError(t, err)
	tomorrow, err := kernel.NewDate(2024, time.March, 16)
	require.NoError(t, err)

	d := order.NewDraft()
	require.NoError(t, d.SelectPackage(pkg))
	require.NoError(t, d.SelectSize(size))
	d.SetDeliveryDate(tomorrow)
	d.SetContact(order.Contact{FullName: "Maria Silva", WhatsApp: "11988887777"})
	d.SetAddress(order.Address{
		CEP:          "40000-000",
		Street:       "Av. Sete de Setembro",
		Number:       "10",
		Neighborhood: "Centro",
		City:         "Salvador",
	})
	return d
}

func TestDraft_IsSubmittable(t *testing.T) {
	t.Run("complete draft with optional fields empty is submittable", func(t *testing.T) {
		d := completeDraft(t)

		assert.True(t, d.IsSubmittable())
		assert.NoError(t, d.Check())
	})

	t.Run("empty draft is not submittable", func(t *testing.T) {
		d := order.NewDraft()

		assert.False(t, d.IsSubmittable())
		assert.ErrorIs(t, d.Check(), order.ErrDraftIncomplete)
	})

	testCases := []struct {
		name   string
		mutate func(d *order.Draft)
	}{
		{"missing delivery date", func(d *order.Draft) { d.SetDeliveryDate(kernel.Date{}) }},
		{"name of three characters", func(d *order.Draft) {
			c := d.Contact()
			c.FullName = "Ana"
			d.SetContact(c)
		}},
		{"name padded with spaces", func(d *order.Draft) {
			c := d.Contact()
			c.FullName = "  Ana   "
			d.SetContact(c)
		}},
		{"short whatsapp", func(d *order.Draft) {
			c := d.Contact()
			c.WhatsApp = "119888877"
			d.SetContact(c)
		}},
		{"blank cep", func(d *order.Draft) {
			a := d.Address()
			a.CEP = "   "
			d.SetAddress(a)
		}},
		{"blank street", func(d *order.Draft) {
			a := d.Address()
			a.Street = ""
			d.SetAddress(a)
		}},
		{"blank number", func(d *order.Draft) {
			a := d.Address()
			a.Number = ""
			d.SetAddress(a)
		}},
		{"blank neighborhood", func(d *order.Draft) {
			a := d.Address()
			a.Neighborhood = "\t"
			d.SetAddress(a)
		}},
		{"blank city", func(d *order.Draft) {
			a := d.Address()
			a.City = ""
			d.SetAddress(a)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name+" is not submittable", func(t *testing.T) {
			d := completeDraft(t)
			tc.mutate(&d)

			assert.False(t, d.IsSubmittable())
			assert.ErrorIs(t, d.Check(), order.ErrDraftIncomplete)
		})
	}

	t.Run("name of four characters is enough", func(t *testing.T) {
		d := completeDraft(t)
		d.SetContact(order.Contact{FullName: "Joao", WhatsApp: "1198888777"})

		assert.True(t, d.IsSubmittable())
	})

	t.Run("missing package or size is not submittable", func(t *testing.T) {
		d := order.NewDraft()
		full := completeDraft(t)
		d.SetContact(full.Contact())
		d.SetAddress(full.Address())
		d.SetDeliveryDate(full.DeliveryDate())

		assert.False(t, d.IsSubmittable())

		pkg, _ := full.Package()
		require.NoError(t, d.SelectPackage(pkg))
		assert.False(t, d.IsSubmittable())
	})
}

func TestDraft_ReadOnlyMethodsOnCopies(t *testing.T) {
	draftOf := func() order.Draft { return completeDraft(t) }

	assert.True(t, draftOf().IsSubmittable())
	require.NoError(t, draftOf().Check())
	assert.Equal(t, "G", draftOf().Size())
	assert.Equal(t, "Salvador", draftOf().Address().City)

	o, err := draftOf().PlaceOrder()
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", o.Contact().FullName)
}

func TestDraft_SelectRejectsUnconstructedValues(t *testing.T) {
	d := order.NewDraft()

	require.ErrorIs(t, d.SelectPackage(catalog.Package{}), catalog.ErrPackageIsNotConstructed)
	require.ErrorIs(t, d.SelectSize(catalog.Size{}), catalog.ErrSizeIsNotConstructed)

	_, ok := d.Package()
	assert.False(t, ok)
	assert.Empty(t, d.Size())
}

func TestDraft_PlaceOrder(t *testing.T) {
	t.Run("should snapshot the package name and price", func(t *testing.T) {
		d := completeDraft(t)

		o, err := d.PlaceOrder()

		require.NoError(t, err)
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, "2 peças", o.PackageName())
		assert.True(t, o.PackagePrice().Equal(decimal.RequireFromString("169.90")))
		assert.Equal(t, "G", o.Size())
		assert.Equal(t, "2024-03-16", o.DeliveryDate().String())
		assert.False(t, o.HasIdentity())
	})

	t.Run("later catalog prices do not change the placed order", func(t *testing.T) {
		d := completeDraft(t)
		o, err := d.PlaceOrder()
		require.NoError(t, err)

		repriced, err := catalog.NewPackage("2pcs", "2 peças", 2, decimal.RequireFromString("199.90"))
		require.NoError(t, err)
		require.NoError(t, d.SelectPackage(repriced))

		assert.Equal(t, "169.90", o.PackagePrice().StringFixed(2))
	})

	t.Run("blank whatsapp of ten spaces is reported as incomplete", func(t *testing.T) {
		d := completeDraft(t)
		c := d.Contact()
		c.WhatsApp = strings.Repeat(" ", 10)
		d.SetContact(c)

		o, err := d.PlaceOrder()

		require.ErrorIs(t, err, order.ErrDraftIncomplete)
		assert.Equal(t, order.ErrDraftIncomplete, err)
		assert.Nil(t, o)
	})

	t.Run("incomplete draft places nothing", func(t *testing.T) {
		d := completeDraft(t)
		d.SetObservations(strings.Repeat("x", 10))
		d.SetContact(order.Contact{})

		o, err := d.PlaceOrder()

		require.ErrorIs(t, err, order.ErrDraftIncomplete)
		assert.Nil(t, o)
	})
}
