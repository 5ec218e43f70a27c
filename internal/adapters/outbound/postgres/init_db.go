package postgres

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/XSAM/otelsql"
	"github.com/cleitonmarx/symbiont-ai-mixby/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// InitDB initializes the Postgres database connection, registers the pgvector types
// and runs the embedding table migrations.
type InitDB struct {
	db                 *sql.DB
	metricRegistration metric.Registration
	skipMigration      bool
	Logger             *log.Logger `resolve:""`
	DBUser             string      `config:"DB_USER"`
	DBPass             string      `config:"DB_PASS"`
	DBHost             string      `config:"DB_HOST"`
	DBPort             string      `config:"DB_PORT" default:"5432"`
	DBName             string      `config:"DB_NAME"`
	DBSSLMode          string      `config:"DB_SSLMODE" default:"disable"`
	DBMaxConns         int         `config:"DB_MAX_CONNS" default:"10"`
}

// Initialize opens the instrumented pool, migrates the embeddings schema and
// registers the *sql.DB in the dependency container.
func (di *InitDB) Initialize(ctx context.Context) (context.Context, error) {
	dsn, err := di.dsn()
	if err != nil {
		return ctx, err
	}

	pool, err := di.openPool(ctx, dsn)
	if err != nil {
		return ctx, err
	}

	if err := di.instrument(pool); err != nil {
		return ctx, err
	}

	if !di.skipMigration {
		if err := di.runMigrations(); err != nil {
			return ctx, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	depend.Register(di.db)

	return ctx, nil
}

// openPool creates a pgx pool whose connections understand the vector type.
func (di *InitDB) openPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if di.DBMaxConns > 0 {
		cfg.MaxConns = int32(di.DBMaxConns)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	return pool, nil
}

// instrument wraps the pool in a traced *sql.DB and exports its pool stats.
func (di *InitDB) instrument(pool *pgxpool.Pool) error {
	attrs := otelsql.WithAttributes(
		semconv.DBSystemNamePostgreSQL,
		semconv.DBNamespace(di.DBName),
	)

	di.db = otelsql.OpenDB(
		stdlib.GetPoolConnector(pool),
		attrs,
		otelsql.WithInstrumentAttributesGetter(withQueryAttributes(di.Logger)),
	)

	var err error
	di.metricRegistration, err = otelsql.RegisterDBStatsMetrics(di.db, attrs)
	if err != nil {
		return fmt.Errorf("failed to register db stats metrics: %w", err)
	}
	return nil
}

// dsn builds the connection URL, escaping credentials.
func (di *InitDB) dsn() (string, error) {
	required := []struct{ name, value string }{
		{"DB_USER", di.DBUser},
		{"DB_HOST", di.DBHost},
		{"DB_NAME", di.DBName},
	}
	for _, r := range required {
		if r.value == "" {
			return "", domain.NewConfigurationErr(r.name + " is required")
		}
	}

	sslMode := di.DBSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	port := di.DBPort
	if port == "" {
		port = "5432"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(di.DBUser, di.DBPass),
		Host:     di.DBHost + ":" + port,
		Path:     "/" + di.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return u.String(), nil
}

func (di *InitDB) runMigrations() error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(di.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		di.Logger.Println("InitDB: embeddings schema already up to date")
		return nil
	case err != nil:
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	if version, dirty, verr := m.Version(); verr == nil {
		di.Logger.Printf("InitDB: embeddings schema migrated to version %d (dirty=%t)", version, dirty)
	}
	return nil
}

func (di *InitDB) Close() {
	if di.db == nil {
		return
	}
	if di.metricRegistration != nil {
		if err := di.metricRegistration.Unregister(); err != nil {
			di.Logger.Printf("InitDB: failed to unregister db stats metrics: %v", err)
		}
	}
	if err := di.db.Close(); err != nil {
		di.Logger.Printf("InitDB: failed to close database connection: %v", err)
	}
}
