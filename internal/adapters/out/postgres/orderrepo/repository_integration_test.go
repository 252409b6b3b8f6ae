package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"nexa/internal/adapters/out/postgres"
	"nexa/internal/adapters/out/postgres/orderrepo"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// OrderStoreIntegrationTestSuite runs the remote store against a PostgreSQL container.
type OrderStoreIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	store     *orderrepo.GormOrderStore
}

func (suite *OrderStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres.Open(connStr)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.Migrate(ctx, db))
	suite.db = db
}

func (suite *OrderStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.store = orderrepo.NewGormOrderStore(suite.db)
}

func (suite *OrderStoreIntegrationTestSuite) TestCreate_AssignsIdentityAndPersists() {
	ctx := context.Background()
	o := suite.newOrder()

	suite.Require().NoError(suite.store.Create(ctx, o))

	suite.True(o.HasIdentity())
	suite.False(o.CreatedAt().IsZero())
	suite.assertOrderCount(1)

	stored, err := suite.store.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.assertSameOrder(o, stored)
	suite.Equal(order.New, stored.Status())
}

func (suite *OrderStoreIntegrationTestSuite) TestCreate_KeepsExistingIdentity() {
	ctx := context.Background()
	o := suite.newOrder()
	id := kernel.NewUUID()
	createdAt := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	suite.Require().NoError(o.AssignIdentity(id, createdAt))

	suite.Require().NoError(suite.store.Create(ctx, o))

	stored, err := suite.store.Get(ctx, id)
	suite.Require().NoError(err)
	suite.True(stored.CreatedAt().Equal(createdAt))
}

func (suite *OrderStoreIntegrationTestSuite) TestList_NewestFirst() {
	ctx := context.Background()
	base := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	var ids []kernel.UUID
	for i := range 3 {
		o := suite.newOrder()
		suite.Require().NoError(o.AssignIdentity(kernel.NewUUID(), base.Add(time.Duration(i)*time.Hour)))
		suite.Require().NoError(suite.store.Create(ctx, o))
		ids = append(ids, o.ID())
	}

	orders, err := suite.store.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.Equal(ids[2], orders[0].ID())
	suite.Equal(ids[1], orders[1].ID())
	suite.Equal(ids[0], orders[2].ID())
}

func (suite *OrderStoreIntegrationTestSuite) TestList_Empty() {
	orders, err := suite.store.List(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *OrderStoreIntegrationTestSuite) TestUpdateStatus() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.store.Create(ctx, o))

	suite.Run("status and notes", func() {
		notes := "cliente pediu entrega à tarde"
		suite.Require().NoError(suite.store.UpdateStatus(ctx, o.ID(), order.Scheduled, &notes))

		stored, err := suite.store.Get(ctx, o.ID())
		suite.Require().NoError(err)
		suite.Equal(order.Scheduled, stored.Status())
		suite.Equal(notes, stored.AdminNotes())
	})

	suite.Run("nil notes keep the notes", func() {
		suite.Require().NoError(suite.store.UpdateStatus(ctx, o.ID(), order.Shipped, nil))

		stored, err := suite.store.Get(ctx, o.ID())
		suite.Require().NoError(err)
		suite.Equal(order.Shipped, stored.Status())
		suite.Equal("cliente pediu entrega à tarde", stored.AdminNotes())
	})

	suite.Run("same status counts as written", func() {
		suite.Require().NoError(suite.store.UpdateStatus(ctx, o.ID(), order.Shipped, nil))
	})

	suite.Run("unknown order", func() {
		err := suite.store.UpdateStatus(ctx, kernel.NewUUID(), order.Completed, nil)
		suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	})
}

func (suite *OrderStoreIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(suite.store.Create(ctx, o))

	suite.Require().NoError(suite.store.Delete(ctx, o.ID()))
	suite.assertOrderCount(0)

	err := suite.store.Delete(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.store.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderStoreIntegrationTestSuite) TestUpsert_InsertsThenReplaces() {
	ctx := context.Background()
	o := suite.newOrder()
	suite.Require().NoError(o.AssignIdentity(kernel.NewUUID(), time.Date(2024, time.March, 2, 8, 0, 0, 0, time.UTC)))

	suite.Require().NoError(suite.store.Upsert(ctx, o))
	suite.assertOrderCount(1)

	suite.Require().NoError(o.ChangeStatus(order.Contacted, nil))
	suite.Require().NoError(suite.store.Upsert(ctx, o))
	suite.assertOrderCount(1)

	stored, err := suite.store.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Contacted, stored.Status())
}

func (suite *OrderStoreIntegrationTestSuite) TestUpsert_RequiresIdentity() {
	err := suite.store.Upsert(context.Background(), suite.newOrder())

	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
	suite.assertOrderCount(0)
}

func (suite *OrderStoreIntegrationTestSuite) newOrder() *order.Order {
	deliveryDate, err := kernel.NewDate(2024, time.March, 16)
	suite.Require().NoError(err)

	o, err := order.NewOrder(order.Details{
		PackageName:  "3 peças",
		PackagePrice: decimal.RequireFromString("219.90"),
		Size:         "GG (2XG)",
		Contact: order.Contact{
			FullName: gofakeit.Name(),
			WhatsApp: "11988887777",
			Email:    gofakeit.Email(),
		},
		DeliveryDate: deliveryDate,
		Address: order.Address{
			CEP:          "01310-100",
			Street:       gofakeit.Street(),
			Number:       gofakeit.StreetNumber(),
			Complement:   "apto 12",
			Neighborhood: "Bela Vista",
			City:         gofakeit.City(),
		},
		Observations: "portaria 24h",
	})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderStoreIntegrationTestSuite) assertSameOrder(want, got *order.Order) {
	suite.True(want.ID().IsEqual(got.ID()))
	suite.True(want.CreatedAt().Equal(got.CreatedAt()))
	suite.True(want.PackagePrice().Equal(got.PackagePrice()))
	suite.Equal(want.DeliveryDate().String(), got.DeliveryDate().String())

	// Price and date are compared above by value.
	opts := cmp.Options{
		cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) }),
		cmp.Comparer(func(a, b kernel.Date) bool { return a.Equal(b) }),
	}
	if diff := cmp.Diff(want.Details(), got.Details(), opts); diff != "" {
		suite.Failf("order details mismatch", "(-want +got):\n%s", diff)
	}
}

func (suite *OrderStoreIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderStoreIntegrationTestSuite))
}
