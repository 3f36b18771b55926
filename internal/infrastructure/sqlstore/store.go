// Package sqlstore implementa el almacén relacional local (SQLite embebido por
// defecto, PostgreSQL opcional) y los adaptadores de persistencia del dominio.
//
// Todas las consultas se escriben con placeholders "?" y se reescriben según el
// dialecto; nunca se concatenan valores en el SQL.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/obra-offline/pkg/config"
)

// Querier abstrae *sql.DB y *sql.Tx para que los repos funcionen con ambos.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store posee el único handle de base de datos del proceso.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Open abre el almacén según cfg.Driver. No ejecuta migraciones (ver Migrate).
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.ConnectionString())
	case config.DriverSQLite, "":
		return openSQLite(ctx, cfg.ConnectionString())
	default:
		return nil, fmt.Errorf("driver no soportado: %s", cfg.Driver)
	}
}

// OpenMemory abre un SQLite en memoria independiente (tests y modo offline por defecto).
func OpenMemory(ctx context.Context) (*Store, error) {
	return openSQLite(ctx, ":memory:")
}

func openSQLite(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// Una sola conexión: con ":memory:" cada conexión nueva sería otra base vacía.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Store{db: db, dialect: sqliteDialect}, nil
}

// sqliteDSN agrega los pragmas por conexión y un formato de fecha ordenable.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_time_format=sqlite&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func openPostgres(ctx context.Context, dsn string) (*Store, error) {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	// Registrar codec para NUMERIC -> shopspring/decimal en cada conexión.
	db := stdlib.OpenDB(*connCfg, stdlib.OptionAfterConnect(func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}))
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return &Store{db: db, dialect: postgresDialect}, nil
}

// DB expone el handle (migraciones, health checks).
func (s *Store) DB() *sql.DB { return s.db }

// Driver nombre del dialecto activo.
func (s *Store) Driver() string { return s.dialect.name }

// Close cierra el handle. Con SQLite en memoria se pierden los datos.
func (s *Store) Close() error { return s.db.Close() }

// conn acopla un Querier con el dialecto para reescribir placeholders.
type conn struct {
	q Querier
	d dialect
}

func (s *Store) conn() conn { return conn{q: s.db, d: s.dialect} }

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.q.ExecContext(ctx, c.d.rebind(query), args...)
}

func (c conn) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.q.QueryContext(ctx, c.d.rebind(query), args...)
}

func (c conn) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.q.QueryRowContext(ctx, c.d.rebind(query), args...)
}

// WithTx ejecuta fn dentro de una transacción y hace Commit o Rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
