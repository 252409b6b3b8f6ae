package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderStore implements ports.OrderStore and ports.OrderReplica using GORM.
//
// The orders table is migrated on first use and the migration is retried by every
// call until it succeeds, so a database that comes up after the service does is
// picked up without a restart.
type GormOrderStore struct {
	db  *gorm.DB
	now func() time.Time

	schemaMu    sync.Mutex
	schemaReady bool
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db, now: time.Now}
}

// Migrate creates or updates the orders table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&OrderDTO{}); err != nil {
		return fmt.Errorf("migrate orders: %w", err)
	}
	return nil
}

// EnsureSchema migrates the orders table unless an earlier call already did.
func (s *GormOrderStore) EnsureSchema(ctx context.Context) error {
	s.schemaMu.Lock()
	defer s.schemaMu.Unlock()

	if s.schemaReady {
		return nil
	}
	if err := Migrate(ctx, s.db); err != nil {
		return err
	}
	s.schemaReady = true
	return nil
}

// Create inserts a new order, assigning its identifier and creation time first when
// the order has none.
func (s *GormOrderStore) Create(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.HasIdentity() {
		// PostgreSQL keeps microseconds.
		createdAt := s.now().UTC().Truncate(time.Microsecond)
		if err := o.AssignIdentity(kernel.NewUUID(), createdAt); err != nil {
			return err
		}
	}

	dto, err := fromDomain(o)
	if err != nil {
		return err
	}
	if err = s.EnsureSchema(ctx); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Create(&dto).Error
}

// Upsert writes an order under its own identifier, replacing any existing row.
func (s *GormOrderStore) Upsert(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.HasIdentity() {
		return errs.NewValueIsRequiredError("order id")
	}

	dto, err := fromDomain(o)
	if err != nil {
		return err
	}
	if err = s.EnsureSchema(ctx); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}

// List returns every order, newest first.
func (s *GormOrderStore) List(ctx context.Context) ([]*order.Order, error) {
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Get retrieves an order by ID.
func (s *GormOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus writes the status, and the admin notes when notes is not nil.
func (s *GormOrderStore) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status, notes *string) error {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return err
	}

	name, err := status.MarshalText()
	if err != nil {
		return err
	}

	if err = s.EnsureSchema(ctx); err != nil {
		return err
	}

	updates := map[string]any{"status": string(name)}
	if notes != nil {
		updates["admin_notes"] = *notes
	}

	result := s.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Delete removes an order.
func (s *GormOrderStore) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&OrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}
