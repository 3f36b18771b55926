package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Datos de la empresa/usuario/proyecto de ejemplo. Los ids son fijos para que
// la siembra sea idempotente (ON CONFLICT DO NOTHING).
const (
	SeedCompanyID int64 = 1
	SeedUserID    int64 = 1
	SeedProjectID int64 = 1

	seedPassword = "offline-admin"
)

// Seed inserta una fila de ejemplo en companies, users y projects. Ejecutarlo
// varias veces deja exactamente una fila por tabla sembrada.
func (s *Store) Seed(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash de contraseña: %w", err)
	}
	now := time.Now().UTC()
	start := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)

	stmts := []struct {
		name  string
		query string
		args  []any
	}{
		{
			name: "company",
			query: `
				INSERT INTO companies (id, name, name_ar, type, location, location_ar, phone, email, website, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (id) DO NOTHING`,
			args: []any{
				SeedCompanyID, "Advanced Construction Co.", "شركة البناء المتقدمة", "contractor",
				"Riyadh, Saudi Arabia", "الرياض، المملكة العربية السعودية",
				"+966 11 000 0000", "info@advanced-construction.sa", "https://advanced-construction.sa", now,
			},
		},
		{
			name: "user",
			query: `
				INSERT INTO users (id, username, email, password_hash, full_name, full_name_ar, role, department, company_id, manager_id, is_active, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (id) DO NOTHING`,
			args: []any{
				SeedUserID, "admin", "admin@advanced-construction.sa", string(hash),
				"Ahmed Al-Rashid", "أحمد الراشد", "ceo", "Executive Management",
				SeedCompanyID, nil, true, now,
			},
		},
		{
			name: "project",
			query: `
				INSERT INTO projects (id, name, name_ar, description, description_ar, status, priority, budget,
					company_id, manager_id, location, location_ar, start_date, end_date, progress, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (id) DO NOTHING`,
			args: []any{
				SeedProjectID, "King Fahd Tower", "برج الملك فهد",
				"40-storey mixed-use tower", "برج متعدد الاستخدامات من 40 طابقاً",
				"active", "high", "15000000.00",
				SeedCompanyID, SeedUserID, "Riyadh", "الرياض", start, end, 35, now,
			},
		},
	}

	return s.WithTx(ctx, func(tx *sql.Tx) error {
		c := conn{q: tx, d: s.dialect}
		for _, st := range stmts {
			if _, err := c.exec(ctx, st.query, st.args...); err != nil {
				return fmt.Errorf("seed %s: %w", st.name, err)
			}
		}
		for _, q := range s.dialect.afterSeed {
			if _, err := c.exec(ctx, q); err != nil {
				return fmt.Errorf("seed: ajustar secuencias: %w", err)
			}
		}
		return nil
	})
}

// Initialize migra y siembra. Cualquier error es fatal para el arranque.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.Migrate(ctx); err != nil {
		return err
	}
	return s.Seed(ctx)
}
