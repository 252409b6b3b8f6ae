// Package fallback combines the remote order store with the local one. The remote
// store is preferred; when it is missing or failing the local store takes over, and
// a warning is logged so staff know orders are waiting for reconciliation.
package fallback

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/core/ports"
	"nexa/internal/pkg/errs"

	"github.com/samber/lo"
)

// Store implements ports.OrderStore on top of an optional remote store and a
// required local store.
type Store struct {
	remote ports.OrderStore
	local  ports.OrderStore
	logger *slog.Logger
}

// NewStore creates the decorator. Pass a nil remote when no remote store is
// configured; every operation then goes to local directly.
func NewStore(remote, local ports.OrderStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		remote: remote,
		local:  local,
		logger: logger.With("component", "order_store"),
	}
}

// Create stores the order remotely, or locally when the remote write fails. The
// identifier assigned by a failed remote attempt is kept.
func (s *Store) Create(ctx context.Context, o *order.Order) error {
	if s.remote != nil {
		err := s.remote.Create(ctx, o)
		if err == nil {
			return nil
		}
		s.degraded(ctx, "create", err)
	}

	return s.local.Create(ctx, o)
}

// List reads the remote store, or the local one when the remote read fails. Orders
// still waiting in the local store are merged into a successful remote read, so an
// order written during an outage stays visible until reconciliation moves it.
func (s *Store) List(ctx context.Context) ([]*order.Order, error) {
	if s.remote == nil {
		return s.local.List(ctx)
	}

	remoteOrders, err := s.remote.List(ctx)
	if err != nil {
		s.degraded(ctx, "list", err)
		return s.local.List(ctx)
	}

	localOrders, err := s.local.List(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "local order store failed", "op", "list", "error", err)
		return remoteOrders, nil
	}

	return mergeNewestFirst(remoteOrders, localOrders), nil
}

// Get reads the remote store first, then the local one.
func (s *Store) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if s.remote == nil {
		return s.local.Get(ctx, id)
	}

	o, remoteErr := s.remote.Get(ctx, id)
	if remoteErr == nil {
		return o, nil
	}
	if !errors.Is(remoteErr, errs.ErrObjectNotFound) {
		s.degraded(ctx, "get", remoteErr)
	}

	o, localErr := s.local.Get(ctx, id)
	if localErr == nil {
		return o, nil
	}
	return nil, preferRemote(remoteErr, localErr)
}

// UpdateStatus writes remotely; on any remote failure, including not found, the
// local copy is updated when there is one.
func (s *Store) UpdateStatus(ctx context.Context, id kernel.UUID, status order.Status, notes *string) error {
	if s.remote == nil {
		return s.local.UpdateStatus(ctx, id, status, notes)
	}

	remoteErr := s.remote.UpdateStatus(ctx, id, status, notes)
	if remoteErr == nil {
		return nil
	}
	if !errors.Is(remoteErr, errs.ErrObjectNotFound) {
		s.degraded(ctx, "update_status", remoteErr)
	}

	localErr := s.local.UpdateStatus(ctx, id, status, notes)
	if localErr == nil {
		return nil
	}
	return preferRemote(remoteErr, localErr)
}

// Delete removes the order from both stores. It succeeds when either store removed
// it and reports not found when neither had it.
func (s *Store) Delete(ctx context.Context, id kernel.UUID) error {
	if s.remote == nil {
		return s.local.Delete(ctx, id)
	}

	remoteErr := s.remote.Delete(ctx, id)
	if remoteErr != nil && !errors.Is(remoteErr, errs.ErrObjectNotFound) {
		s.degraded(ctx, "delete", remoteErr)
	}

	localErr := s.local.Delete(ctx, id)
	if localErr != nil && !errors.Is(localErr, errs.ErrObjectNotFound) {
		s.logger.WarnContext(ctx, "local order store failed", "op", "delete", "error", localErr)
	}

	if remoteErr == nil || localErr == nil {
		return nil
	}
	return preferRemote(remoteErr, localErr)
}

func (s *Store) degraded(ctx context.Context, op string, err error) {
	s.logger.WarnContext(ctx, "remote order store failed, using local store", "op", op, "error", err)
}

// preferRemote picks the error to report when both stores failed: a real remote
// failure wins over the local store not having the order.
func preferRemote(remoteErr, localErr error) error {
	if errors.Is(localErr, errs.ErrObjectNotFound) && !errors.Is(remoteErr, errs.ErrObjectNotFound) {
		return remoteErr
	}
	return localErr
}

// mergeNewestFirst adds the local orders the remote store does not have yet. The
// remote copy wins when both hold the same order.
func mergeNewestFirst(remote, local []*order.Order) []*order.Order {
	if len(local) == 0 {
		return remote
	}

	known := lo.SliceToMap(remote, func(o *order.Order) (kernel.UUID, struct{}) {
		return o.ID(), struct{}{}
	})
	merged := append(slices.Clone(remote), lo.Reject(local, func(o *order.Order, _ int) bool {
		_, ok := known[o.ID()]
		return ok
	})...)

	slices.SortStableFunc(merged, func(a, b *order.Order) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	return merged
}
