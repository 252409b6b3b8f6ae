package order_test

import (
	"testing"
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) order.Details {
	t.Helper()

	deliveryDate, err := kernel.NewDate(2024, time.March, 16)
	require.NoError(t, err)

	return order.Details{
		PackageName:  "2 peças",
		PackagePrice: decimal.RequireFromString("169.90"),
		Size:         "G",
		Contact: order.Contact{
			FullName: "Maria Silva",
			WhatsApp: "11988887777",
		},
		DeliveryDate: deliveryDate,
		Address: order.Address{
			CEP:          "50010-000",
			Street:       "Rua da Aurora",
			Number:       "120",
			Neighborhood: "Boa Vista",
			City:         "Recife",
		},
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a New order without identity", func(t *testing.T) {
		o, err := order.NewOrder(validDetails(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.New, o.Status())
		assert.False(t, o.HasIdentity())
		assert.True(t, o.CreatedAt().IsZero())
		assert.Equal(t, "2 peças", o.PackageName())
		assert.Equal(t, "169.9", o.PackagePrice().String())
		assert.Empty(t, o.AdminNotes())
	})

	t.Run("should trim text fields", func(t *testing.T) {
		details := validDetails(t)
		details.Contact.FullName = "  Maria Silva  "
		details.Address.City = "Recife\n"

		o, err := order.NewOrder(details)

		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", o.Contact().FullName)
		assert.Equal(t, "Recife", o.Address().City)
	})

	t.Run("should accept missing optional fields", func(t *testing.T) {
		details := validDetails(t)
		details.Address.CEP = ""
		details.Address.Complement = ""
		details.Contact.Email = ""
		details.Observations = ""

		_, err := order.NewOrder(details)
		require.NoError(t, err)
	})

	t.Run("should report every missing required field", func(t *testing.T) {
		o, err := order.NewOrder(order.Details{PackagePrice: decimal.NewFromInt(-1)})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		for _, field := range []string{
			"packageName", "size", "fullName", "whatsapp",
			"street", "number", "neighborhood", "city", "deliveryDate",
		} {
			assert.Contains(t, err.Error(), field)
		}
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2024, time.March, 15, 14, 0, 0, 0, time.UTC)

	t.Run("should restore any status with notes", func(t *testing.T) {
		o, err := order.RestoreOrder(id, createdAt, validDetails(t), order.Shipped, "saiu às 9h")

		require.NoError(t, err)
		assert.True(t, o.HasIdentity())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, "saiu às 9h", o.AdminNotes())
	})

	t.Run("should require identity and a valid status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.UUID{}, time.Time{}, validDetails(t), order.Unknown, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "createdAt")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		o := &order.Order{}
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AssignIdentity(t *testing.T) {
	t.Run("should assign identity once", func(t *testing.T) {
		o, _ := order.NewOrder(validDetails(t))
		id := kernel.NewUUID()
		now := time.Now()

		require.NoError(t, o.AssignIdentity(id, now))
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, now, o.CreatedAt())

		err := o.AssignIdentity(kernel.NewUUID(), now.Add(time.Hour))
		require.ErrorIs(t, err, order.ErrIdentityAlreadyAssigned)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, now, o.CreatedAt())
	})

	t.Run("should reject empty identity", func(t *testing.T) {
		o, _ := order.NewOrder(validDetails(t))

		err := o.AssignIdentity(kernel.UUID{}, time.Time{})

		require.Error(t, err)
		assert.False(t, o.HasIdentity())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Now()
	a, _ := order.RestoreOrder(id, createdAt, validDetails(t), order.New, "")
	b, _ := order.RestoreOrder(id, createdAt, validDetails(t), order.Cancelled, "")
	c, _ := order.RestoreOrder(kernel.NewUUID(), createdAt, validDetails(t), order.New, "")
	unsaved1, _ := order.NewOrder(validDetails(t))
	unsaved2, _ := order.NewOrder(validDetails(t))

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
	assert.False(t, unsaved1.IsEqual(unsaved2))
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("any status may move to any other", func(t *testing.T) {
		for _, from := range order.Statuses() {
			for _, to := range order.Statuses() {
				o, err := order.RestoreOrder(kernel.NewUUID(), time.Now(), validDetails(t), from, "")
				require.NoError(t, err)

				require.NoError(t, o.ChangeStatus(to, nil), "%s -> %s", from, to)
				assert.Equal(t, to, o.Status())
			}
		}
	})

	t.Run("nil notes keep the existing notes", func(t *testing.T) {
		o, _ := order.RestoreOrder(kernel.NewUUID(), time.Now(), validDetails(t), order.New, "ligar depois das 18h")

		require.NoError(t, o.ChangeStatus(order.Contacted, nil))
		assert.Equal(t, "ligar depois das 18h", o.AdminNotes())

		empty := ""
		require.NoError(t, o.ChangeStatus(order.Contacted, &empty))
		assert.Empty(t, o.AdminNotes())
	})

	t.Run("invalid status keeps order unchanged", func(t *testing.T) {
		o, _ := order.NewOrder(validDetails(t))
		notes := "x"

		err := o.ChangeStatus(order.Status(42), &notes)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.New, o.Status())
		assert.Empty(t, o.AdminNotes())
	})

	t.Run("changing status never touches the snapshot", func(t *testing.T) {
		o, _ := order.NewOrder(validDetails(t))
		before := o.Details()

		require.NoError(t, o.ChangeStatus(order.Completed, nil))

		assert.Equal(t, before, o.Details())
	})
}

func TestOrder_Clone(t *testing.T) {
	o, _ := order.RestoreOrder(kernel.NewUUID(), time.Now(), validDetails(t), order.New, "")
	clone := o.Clone()

	require.NoError(t, clone.ChangeStatus(order.Cancelled, nil))

	assert.Equal(t, order.New, o.Status())
	assert.True(t, o.IsEqual(clone))
}
