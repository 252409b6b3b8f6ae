package commands_test

import (
	"context"
	"testing"
	"time"

	"nexa/internal/core/domain/model/admin"
	"nexa/internal/core/domain/model/catalog"
	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCheckoutRepository struct{ mock.Mock }

func (m *MockCheckoutRepository) Add(ctx context.Context, c *checkout.Checkout) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCheckoutRepository) Get(ctx context.Context, id kernel.UUID) (*checkout.Checkout, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*checkout.Checkout)
	return c, args.Error(1)
}

func (m *MockCheckoutRepository) Update(ctx context.Context, c *checkout.Checkout) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCheckoutRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCheckoutRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)
	return args.Int(0), args.Error(1)
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Create(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderStore) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status, notes *string) error {
	return m.Called(ctx, id, status, notes).Error(0)
}

func (m *MockOrderStore) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderReplica struct{ mock.Mock }

func (m *MockOrderReplica) Upsert(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

type MockAdminSessionRepository struct{ mock.Mock }

func (m *MockAdminSessionRepository) Add(ctx context.Context, s *admin.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockAdminSessionRepository) Get(ctx context.Context, id kernel.UUID) (*admin.Session, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*admin.Session)
	return s, args.Error(1)
}

func (m *MockAdminSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

type MockPassphraseVerifier struct{ mock.Mock }

func (m *MockPassphraseVerifier) Verify(passphrase string) error {
	return m.Called(passphrase).Error(0)
}

// fixedNow is 2024-03-15 10:00 in UTC-3, the shop time zone of the tests.
var fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

func clock() time.Time { return fixedNow }

func newCheckout(t *testing.T) *checkout.Checkout {
	t.Helper()
	c, err := checkout.NewCheckout(kernel.NewUUID(), fixedNow)
	require.NoError(t, err)
	return c
}

// submittableCheckout holds the draft of the reference scenario: "2 peças", size G,
// delivery tomorrow, Maria Silva.
func submittableCheckout(t *testing.T) *checkout.Checkout {
	t.Helper()

	c := newCheckout(t)
	cat := catalog.Default()
	pkg, err := cat.Package("2pcs")
	require.NoError(t, err)
	size, err := cat.Size("G")
	require.NoError(t, err)

	require.NoError(t, c.UpdateDraft(func(d *order.Draft) error {
		if err := d.SelectPackage(pkg); err != nil {
			return err
		}
		if err := d.SelectSize(size); err != nil {
			return err
		}
		d.SetContact(order.Contact{FullName: "Maria Silva", WhatsApp: "11988887777"})
		d.SetAddress(order.Address{
			CEP:          "01310-100",
			Street:       "Av. Paulista",
			Number:       "1000",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
		})
		return nil
	}))

	tomorrow, err := kernel.NewDate(2024, time.March, 16)
	require.NoError(t, err)
	require.NoError(t, c.SelectDeliveryDate(tomorrow))

	return c
}

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	deliveryDate, err := kernel.NewDate(2024, time.March, 20)
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), fixedNow, order.Details{
		PackageName:  "1 peça",
		PackagePrice: catalog.Default().Packages()[0].Price(),
		Size:         "M",
		Contact:      order.Contact{FullName: "João Souza", WhatsApp: "71999990000"},
		DeliveryDate: deliveryDate,
		Address:      order.Address{Street: "Rua Chile", Number: "5", Neighborhood: "Centro", City: "Salvador"},
	}, status, "")
	require.NoError(t, err)
	return o
}
