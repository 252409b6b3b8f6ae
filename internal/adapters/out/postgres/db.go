// Package postgres opens the remote order database. Connections go through the lib/pq
// database/sql driver wrapped by GORM's postgres dialector.
package postgres

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Settings are the connection parameters of the remote database.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SslMode  string
}

// DSN returns the connection URL understood by lib/pq.
//
// Example:
//
//	Settings{Host: "localhost", Port: "5432", User: "nexa", Name: "nexa"}.DSN()
//	// postgres://nexa@localhost:5432/nexa?sslmode=disable
func (s Settings) DSN() string {
	sslMode := s.SslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	port := s.Port
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     s.Host + ":" + port,
		Path:     "/" + s.Name,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	if s.Password != "" {
		u.User = url.UserPassword(s.User, s.Password)
	} else {
		u.User = url.User(s.User)
	}
	return u.String()
}

// Open prepares a connection pool for dsn. It neither pings the server nor migrates,
// so it succeeds while the database is still unreachable; the order store migrates on
// first use.
func Open(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Warn),
		DisableAutomaticPing: true,
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	return db, nil
}
