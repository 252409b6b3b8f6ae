package cmd

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	nexahttp "nexa/internal/adapters/in/http"
	"nexa/internal/adapters/out/credentials"
	"nexa/internal/adapters/out/fallback"
	"nexa/internal/adapters/out/local"
	"nexa/internal/adapters/out/memory/adminsessionrepo"
	"nexa/internal/adapters/out/memory/checkoutrepo"
	"nexa/internal/adapters/out/postgres"
	"nexa/internal/adapters/out/postgres/orderrepo"
	"nexa/internal/core/application/usecases/commands"
	"nexa/internal/core/application/usecases/queries"
	"nexa/internal/core/domain/model/catalog"
	"nexa/internal/core/domain/services"
	"nexa/internal/core/ports"
	"nexa/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

const (
	whatsAppCountryCode = "55"
	remoteProbeTimeout  = 5 * time.Second
)

type CompositionRoot struct {
	cfg      Config
	logger   *slog.Logger
	location *time.Location

	catalog *catalog.Catalog
	prices  services.PriceFormatter
	links   services.WhatsAppLinkBuilder

	checkouts *checkoutrepo.Repository
	sessions  *adminsessionrepo.Repository
	verifier  ports.PassphraseVerifier
	tokens    *nexahttp.TokenIssuer

	localStore *local.Store
	remote     *orderrepo.GormOrderStore
	orders     ports.OrderStore

	closers []func() error
}

// NewCompositionRoot builds every adapter. A remote store that cannot be reached at
// startup is only logged: each call falls back to the local store and reconciliation
// keeps retrying until the database answers.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *slog.Logger) (*CompositionRoot, error) {
	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", cfg.Currency, err)
	}

	verifier, err := credentials.NewBcryptVerifier(cfg.AdminPassphrase, bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	secret := []byte(cfg.AdminTokenSecret)
	if len(secret) == 0 {
		// Tokens do not survive a restart, neither do the sessions they point to.
		secret = []byte(rand.Text())
	}

	c := &CompositionRoot{
		cfg:       cfg,
		logger:    logger,
		location:  location,
		catalog:   catalog.Default(),
		prices:    services.NewPriceFormatter(unit, language.BrazilianPortuguese),
		links:     services.NewWhatsAppLinkBuilder(whatsAppCountryCode, "Pedido Nexa"),
		checkouts: checkoutrepo.NewRepository(),
		sessions:  adminsessionrepo.NewRepository(),
		verifier:  verifier,
	}

	if c.tokens, err = nexahttp.NewTokenIssuer(secret, c.now); err != nil {
		return nil, err
	}

	slot, err := c.openSlot(ctx)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.localStore = local.NewStore(slot)

	if cfg.RemoteEnabled() {
		db, dbErr := postgres.Open(cfg.DB().DSN())
		if dbErr != nil {
			_ = c.Close()
			return nil, dbErr
		}
		c.remote = orderrepo.NewGormOrderStore(db)
		c.closers = append(c.closers, func() error {
			sqlDB, sqlErr := db.DB()
			if sqlErr != nil {
				return sqlErr
			}
			return sqlDB.Close()
		})

		probeCtx, cancel := context.WithTimeout(ctx, remoteProbeTimeout)
		if err = c.remote.EnsureSchema(probeCtx); err != nil {
			logger.WarnContext(ctx, "remote order store not reachable yet, orders go to the local store until it recovers", "error", err)
		}
		cancel()
	}

	if c.remote != nil {
		c.orders = fallback.NewStore(c.remote, c.localStore, logger)
	} else {
		c.orders = fallback.NewStore(nil, c.localStore, logger)
	}

	return c, nil
}

func (c *CompositionRoot) openSlot(ctx context.Context) (local.Slot, error) {
	switch c.cfg.LocalSlotBackend {
	case SlotBackendSQLite:
		slot, err := local.OpenSQLiteSlot(ctx, c.cfg.LocalSQLitePath, c.cfg.LocalSlotName)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, slot.Close)
		return slot, nil
	case SlotBackendRedis:
		client := redis.NewClient(&redis.Options{Addr: c.cfg.RedisAddr})
		c.closers = append(c.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis %q: %w", c.cfg.RedisAddr, err)
		}
		return local.NewRedisSlot(client, c.cfg.LocalSlotName), nil
	default:
		return local.NewFileSlot(c.cfg.LocalFileDir, c.cfg.LocalSlotName)
	}
}

// now returns the current time in the shop time zone.
func (c *CompositionRoot) now() time.Time {
	return time.Now().In(c.location)
}

// remoteReplica keeps the interface nil when no remote store is configured.
func (c *CompositionRoot) remoteReplica() ports.OrderReplica {
	if c.remote == nil {
		return nil
	}
	return c.remote
}

// RemoteEnabled reports whether orders are written to the remote store.
func (c *CompositionRoot) RemoteEnabled() bool {
	return c.remote != nil
}

// Close releases the store connections.
func (c *CompositionRoot) Close() error {
	var closeErrs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		closeErrs = append(closeErrs, c.closers[i]())
	}
	return errors.Join(closeErrs...)
}

func (c *CompositionRoot) CreateOpenCheckoutCommandHandler() commands.OpenCheckoutCommandHandler {
	return commands.NewOpenCheckoutCommandHandler(c.checkouts, c.now, c.cfg.DeliveryEnforceWeekdays)
}

func (c *CompositionRoot) CreateUpdateCheckoutDraftCommandHandler() commands.UpdateCheckoutDraftCommandHandler {
	return commands.NewUpdateCheckoutDraftCommandHandler(c.checkouts, c.catalog, c.now, c.cfg.CheckoutSessionTTL)
}

func (c *CompositionRoot) CreateSelectDeliveryDateCommandHandler() commands.SelectDeliveryDateCommandHandler {
	return commands.NewSelectDeliveryDateCommandHandler(c.checkouts, c.now, c.cfg.CheckoutSessionTTL)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.checkouts, c.orders, c.prices, c.now, c.cfg.CheckoutSessionTTL)
}

func (c *CompositionRoot) CreateStartAdminSessionCommandHandler() commands.StartAdminSessionCommandHandler {
	return commands.NewStartAdminSessionCommandHandler(c.verifier, c.sessions, c.now, c.cfg.AdminSessionTTL)
}

func (c *CompositionRoot) CreateEndAdminSessionCommandHandler() commands.EndAdminSessionCommandHandler {
	return commands.NewEndAdminSessionCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateReconcileOrdersCommandHandler() commands.ReconcileOrdersCommandHandler {
	return commands.NewReconcileOrdersCommandHandler(c.localStore, c.remoteReplica())
}

func (c *CompositionRoot) CreateSweepExpiredSessionsCommandHandler() commands.SweepExpiredSessionsCommandHandler {
	return commands.NewSweepExpiredSessionsCommandHandler(c.checkouts, c.sessions, c.now, c.cfg.CheckoutSessionTTL)
}

func (c *CompositionRoot) CreateGetCatalogQueryHandler() queries.GetCatalogQueryHandler {
	return queries.NewGetCatalogQueryHandler(c.catalog, c.prices)
}

func (c *CompositionRoot) CreateGetCheckoutQueryHandler() queries.GetCheckoutQueryHandler {
	return queries.NewGetCheckoutQueryHandler(c.checkouts, c.prices, c.now, c.cfg.CheckoutSessionTTL)
}

func (c *CompositionRoot) CreateGetCheckoutCalendarQueryHandler() queries.GetCheckoutCalendarQueryHandler {
	return queries.NewGetCheckoutCalendarQueryHandler(c.checkouts, c.now, c.cfg.CheckoutSessionTTL)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders, c.prices)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders, c.prices)
}

func (c *CompositionRoot) CreateExportOrdersQueryHandler() queries.ExportOrdersQueryHandler {
	return queries.NewExportOrdersQueryHandler(c.orders, c.location)
}

func (c *CompositionRoot) CreateGetWhatsAppLinkQueryHandler() queries.GetWhatsAppLinkQueryHandler {
	return queries.NewGetWhatsAppLinkQueryHandler(c.orders, c.links)
}

func (c *CompositionRoot) CreateGetAdminSessionQueryHandler() queries.GetAdminSessionQueryHandler {
	return queries.NewGetAdminSessionQueryHandler(c.sessions, c.now)
}

// CreateHTTPServer wires every use case into the echo router.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := nexahttp.NewServer(nexahttp.Handlers{
		OpenCheckout:       c.CreateOpenCheckoutCommandHandler(),
		UpdateCheckout:     c.CreateUpdateCheckoutDraftCommandHandler(),
		SelectDeliveryDate: c.CreateSelectDeliveryDateCommandHandler(),
		SubmitOrder:        c.CreateSubmitOrderCommandHandler(),
		GetCatalog:         c.CreateGetCatalogQueryHandler(),
		GetCheckout:        c.CreateGetCheckoutQueryHandler(),
		GetCalendar:        c.CreateGetCheckoutCalendarQueryHandler(),
		StartAdminSession:  c.CreateStartAdminSessionCommandHandler(),
		EndAdminSession:    c.CreateEndAdminSessionCommandHandler(),
		ChangeOrderStatus:  c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		ReconcileOrders:    c.CreateReconcileOrdersCommandHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ExportOrders:       c.CreateExportOrdersQueryHandler(),
		GetWhatsAppLink:    c.CreateGetWhatsAppLinkQueryHandler(),
		GetAdminSession:    c.CreateGetAdminSessionQueryHandler(),
	}, c.tokens, c.logger)

	burst := max(int(c.cfg.CheckoutRateLimit*2), 1)
	return nexahttp.NewRouter(server, nexahttp.RouterConfig{
		CheckoutRate:  c.cfg.CheckoutRateLimit,
		CheckoutBurst: burst,
	}, c.logger)
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateReconcileOrdersCommandHandler(),
		c.CreateSweepExpiredSessionsCommandHandler(),
		jobs.Schedules{
			Reconciliation: c.cfg.ReconcileSchedule,
			SessionSweep:   c.cfg.SessionSweepSchedule,
		},
		c.logger,
	)
}
