package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Migrate crea las tablas si no existen. Usa un Provider de goose por Store
// (sin estado global) para que varias instancias convivan en paralelo.
func (s *Store) Migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrationsFS, s.dialect.migrationsDir)
	if err != nil {
		return fmt.Errorf("migraciones %s: %w", s.dialect.name, err)
	}
	provider, err := goose.NewProvider(s.dialect.goose, s.db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
