package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"nexa/internal/adapters/out/local"
	"nexa/internal/adapters/out/memory/adminsessionrepo"
	"nexa/internal/adapters/out/memory/checkoutrepo"
	"nexa/internal/core/application/usecases/commands"
	"nexa/internal/core/domain/model/admin"
	"nexa/internal/core/domain/model/checkout"
	"nexa/internal/core/domain/model/kernel"
	"nexa/internal/core/domain/model/order"
	"nexa/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// replica records upserted orders and fails for the ids in reject.
type replica struct {
	mu     sync.Mutex
	pushed []kernel.UUID
	reject map[kernel.UUID]bool
}

func (r *replica) Upsert(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reject[o.ID()] {
		return errors.New("connection refused")
	}
	r.pushed = append(r.pushed, o.ID())
	return nil
}

func localOrder(t *testing.T, store *local.Store) *order.Order {
	t.Helper()
	date, err := kernel.NewDate(2024, time.March, 16)
	require.NoError(t, err)
	o, err := order.NewOrder(order.Details{
		PackageName:  "1 peça",
		PackagePrice: decimal.RequireFromString("129.90"),
		Size:         "M",
		Contact:      order.Contact{FullName: "Ana Paula", WhatsApp: "81999990000"},
		DeliveryDate: date,
		Address: order.Address{
			Street: "Rua do Bom Jesus", Number: "7", Neighborhood: "Recife Antigo", City: "Recife",
		},
	})
	require.NoError(t, err)
	require.NoError(t, store.Create(t.Context(), o))
	return o
}

func newLocalStore(t *testing.T) *local.Store {
	t.Helper()
	slot, err := local.NewFileSlot(t.TempDir(), local.DefaultSlotName)
	require.NoError(t, err)
	return local.NewStore(slot)
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOrderReconciliationJob_RunOnce(t *testing.T) {
	store := newLocalStore(t)
	pushed := localOrder(t, store)
	stuck := localOrder(t, store)
	remote := &replica{reject: map[kernel.UUID]bool{stuck.ID(): true}}

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	job := jobs.NewOrderReconciliationJob(commands.NewReconcileOrdersCommandHandler(store, remote), "", logger)

	result := job.RunOnce(t.Context())

	assert.Equal(t, 2, result.Pending)
	assert.Equal(t, 1, result.Pushed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []kernel.UUID{pushed.ID()}, remote.pushed)
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "connection refused")

	left, err := store.List(t.Context())
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.True(t, left[0].ID().IsEqual(stuck.ID()))
}

func TestSessionSweepJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	checkouts := checkoutrepo.NewRepository()
	sessions := adminsessionrepo.NewRepository()

	idle, err := checkout.NewCheckout(kernel.NewUUID(), now.Add(-3*time.Hour))
	require.NoError(t, err)
	require.NoError(t, checkouts.Add(ctx, idle))
	expired, err := admin.NewSession(kernel.NewUUID(), now.Add(-9*time.Hour), 8*time.Hour)
	require.NoError(t, err)
	require.NoError(t, sessions.Add(ctx, expired))

	handler := commands.NewSweepExpiredSessionsCommandHandler(checkouts, sessions, func() time.Time { return now }, 2*time.Hour)
	job := jobs.NewSessionSweepJob(handler, "", discard())

	result := job.RunOnce(ctx)

	assert.Equal(t, 1, result.Checkouts)
	assert.Equal(t, 1, result.AdminSessions)
}

func TestJobManager(t *testing.T) {
	store := newLocalStore(t)
	reconcile := commands.NewReconcileOrdersCommandHandler(store, nil)
	sweep := commands.NewSweepExpiredSessionsCommandHandler(
		checkoutrepo.NewRepository(), adminsessionrepo.NewRepository(), time.Now, time.Hour)

	t.Run("starts and stops every job", func(t *testing.T) {
		jm := jobs.NewJobManager(reconcile, sweep, jobs.Schedules{
			Reconciliation: "@every 1m",
			SessionSweep:   "@every 5m",
		}, discard())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("disabled schedules start nothing", func(t *testing.T) {
		jm := jobs.NewJobManager(reconcile, sweep, jobs.Schedules{}, discard())

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("invalid schedule stops started jobs", func(t *testing.T) {
		jm := jobs.NewJobManager(reconcile, sweep, jobs.Schedules{
			Reconciliation: "every minute",
			SessionSweep:   "@every 5m",
		}, discard())

		err := jm.StartAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order reconciliation job")
	})
}
