package queries_test

import (
	"context"
	"testing"
	"time"

	"nexa/internal/core/domain/model/admin"
	"nexa/internal/core/domain/model/catalog"
	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/core/domain/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
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

var (
	saoPaulo = time.FixedZone("BRT", -3*60*60)
	fixedNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, saoPaulo)
)

func clock() time.Time { return fixedNow }

func brl() services.PriceFormatter {
	return services.NewPriceFormatter(currency.BRL, language.BrazilianPortuguese)
}

// storedOrder builds an order of the 2 peças tier with fake contact data.
func storedOrder(t *testing.T, fullName, whatsapp, city string, status order.Status, createdAt time.Time) *order.Order {
	t.Helper()

	pkg, err := catalog.Default().Package("2pcs")
	require.NoError(t, err)
	deliveryDate, err := kernel.NewDate(2024, time.March, 20)
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), createdAt, order.Details{
		PackageName:  pkg.Name(),
		PackagePrice: pkg.Price(),
		Size:         "G",
		Contact:      order.Contact{FullName: fullName, WhatsApp: whatsapp, Email: gofakeit.Email()},
		DeliveryDate: deliveryDate,
		Address: order.Address{
			Street:       gofakeit.Street(),
			Number:       gofakeit.StreetNumber(),
			Neighborhood: gofakeit.Word(),
			City:         city,
		},
	}, status, "")
	require.NoError(t, err)
	return o
}
