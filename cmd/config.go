package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"nexa/internal/adapters/out/local"
	"nexa/internal/adapters/out/postgres"
	"nexa/internal/pkg/errs"
)

// Local slot backends.
const (
	SlotBackendFile   = "file"
	SlotBackendSQLite = "sqlite"
	SlotBackendRedis  = "redis"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LocalSlotBackend string
	LocalSlotName    string
	LocalFileDir     string
	LocalSQLitePath  string
	RedisAddr        string

	AdminPassphrase    string
	AdminTokenSecret   string
	AdminSessionTTL    time.Duration
	CheckoutSessionTTL time.Duration

	Timezone                string
	DeliveryEnforceWeekdays bool
	Currency                string

	ReconcileSchedule    string
	SessionSweepSchedule string
	CheckoutRateLimit    float64
}

// RemoteEnabled reports whether the remote order store is configured. Both the host
// and the user are needed; without them orders only go to the local store.
func (c Config) RemoteEnabled() bool {
	return c.DBHost != "" && c.DBUser != ""
}

// DB returns the connection settings of the remote store.
func (c Config) DB() postgres.Settings {
	return postgres.Settings{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SslMode:  c.DBSslMode,
	}
}

// LookupFunc reads one setting, reporting whether it is set. os.LookupEnv fits.
type LookupFunc func(key string) (string, bool)

// LoadConfig reads the settings through lookup and applies the defaults. Schedules
// keep an explicitly empty value, which disables the job.
func LoadConfig(lookup LookupFunc) (Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}
	schedule := func(key, fallback string) string {
		if v, ok := lookup(key); ok {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	cfg := Config{
		HTTPPort:             get("HTTP_PORT", "8080"),
		DBHost:               get("DB_HOST", ""),
		DBPort:               get("DB_PORT", "5432"),
		DBUser:               get("DB_USER", ""),
		DBPassword:           get("DB_PASSWORD", ""),
		DBName:               get("DB_NAME", "nexa"),
		DBSslMode:            get("DB_SSLMODE", "disable"),
		LocalSlotBackend:     strings.ToLower(get("LOCAL_SLOT_BACKEND", SlotBackendFile)),
		LocalSlotName:        get("LOCAL_SLOT_NAME", local.DefaultSlotName),
		LocalFileDir:         get("LOCAL_FILE_DIR", "data"),
		LocalSQLitePath:      get("LOCAL_SQLITE_PATH", "data/local.db"),
		RedisAddr:            get("REDIS_ADDR", "localhost:6379"),
		AdminPassphrase:      get("ADMIN_PASSPHRASE", ""),
		AdminTokenSecret:     get("ADMIN_TOKEN_SECRET", ""),
		Timezone:             get("TIMEZONE", "America/Sao_Paulo"),
		Currency:             get("CURRENCY", "BRL"),
		ReconcileSchedule:    schedule("RECONCILE_SCHEDULE", "@every 1m"),
		SessionSweepSchedule: schedule("SESSION_SWEEP_SCHEDULE", "@every 5m"),
	}

	var err error
	var parseErrs []error
	if cfg.AdminSessionTTL, err = time.ParseDuration(get("ADMIN_SESSION_TTL", "8h")); err != nil {
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("ADMIN_SESSION_TTL", err))
	}
	if cfg.CheckoutSessionTTL, err = time.ParseDuration(get("CHECKOUT_SESSION_TTL", "2h")); err != nil {
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("CHECKOUT_SESSION_TTL", err))
	}
	if cfg.DeliveryEnforceWeekdays, err = strconv.ParseBool(get("DELIVERY_ENFORCE_WEEKDAYS", "false")); err != nil {
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("DELIVERY_ENFORCE_WEEKDAYS", err))
	}
	if cfg.CheckoutRateLimit, err = strconv.ParseFloat(get("CHECKOUT_RATE_LIMIT", "10"), 64); err != nil {
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("CHECKOUT_RATE_LIMIT", err))
	}

	if cfg.AdminPassphrase == "" {
		parseErrs = append(parseErrs, errs.NewValueIsRequiredError("ADMIN_PASSPHRASE"))
	}
	switch cfg.LocalSlotBackend {
	case SlotBackendFile, SlotBackendSQLite, SlotBackendRedis:
	default:
		parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause("LOCAL_SLOT_BACKEND",
			fmt.Errorf("%q is not one of file, sqlite, redis", cfg.LocalSlotBackend)))
	}

	if len(parseErrs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %w", errors.Join(parseErrs...))
	}
	return cfg, nil
}
