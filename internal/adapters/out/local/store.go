package local

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/pkg/errs"

	"github.com/samber/lo"
)

// Store implements ports.OrderStore over a Slot. Every operation reads the whole
// array, changes it in memory and writes it back; a mutex serializes these cycles
// within the process.
type Store struct {
	slot Slot
	now  func() time.Time

	mu sync.Mutex
}

// NewStore creates a store writing to slot.
func NewStore(slot Slot) *Store {
	return &Store{slot: slot, now: time.Now}
}

// Create appends the order, assigning its identifier and creation time first when
// the order has none.
func (s *Store) Create(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	if !o.HasIdentity() {
		if err = o.AssignIdentity(kernel.NewUUID(), s.now().UTC()); err != nil {
			return err
		}
	}

	record, err := fromDomain(o)
	if err != nil {
		return err
	}

	return s.save(ctx, append(records, record))
}

// List returns every order, newest first.
func (s *Store) List(ctx context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	records, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(records))
	for _, r := range records {
		o, err := toDomain(r)
		if err != nil {
			return nil, fmt.Errorf("decode local order %q: %w", r.ID, err)
		}
		orders = append(orders, o)
	}

	slices.SortStableFunc(orders, func(a, b *order.Order) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	return orders, nil
}

// Get returns the order with id.
func (s *Store) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	records, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	r, ok := lo.Find(records, func(r orderRecord) bool { return r.ID == id.String() })
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return toDomain(r)
}

// UpdateStatus rewrites the status, and the admin notes when notes is not nil.
func (s *Store) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status, notes *string) error {
	name, err := status.MarshalText()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	_, index, ok := lo.FindIndexOf(records, func(r orderRecord) bool { return r.ID == id.String() })
	if !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	records[index].Status = string(name)
	if notes != nil {
		records[index].AdminNotes = *notes
	}
	return s.save(ctx, records)
}

// Delete removes the order with id.
func (s *Store) Delete(ctx context.Context, id kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := lo.Reject(records, func(r orderRecord, _ int) bool { return r.ID == id.String() })
	if len(kept) == len(records) {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return s.save(ctx, kept)
}

func (s *Store) load(ctx context.Context) ([]orderRecord, error) {
	data, err := s.slot.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var records []orderRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode local slot: %w", err)
	}
	return records, nil
}

func (s *Store) save(ctx context.Context, records []orderRecord) error {
	if records == nil {
		records = []orderRecord{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode local slot: %w", err)
	}
	return s.slot.Save(ctx, data)
}
