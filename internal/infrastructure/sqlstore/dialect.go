package sqlstore

import (
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/obra-offline/internal/domain"
)

// dialect agrupa lo que cambia entre SQLite y PostgreSQL.
type dialect struct {
	name          string
	goose         goose.Dialect
	migrationsDir string
	positional    bool     // $1, $2 ... en lugar de ?
	afterSeed     []string // sentencias tras insertar filas con id explícito
}

var sqliteDialect = dialect{
	name:          "sqlite",
	goose:         goose.DialectSQLite3,
	migrationsDir: "migrations/sqlite",
}

var postgresDialect = dialect{
	name:          "postgres",
	goose:         goose.DialectPostgres,
	migrationsDir: "migrations/postgres",
	positional:    true,
	afterSeed: []string{
		`SELECT setval(pg_get_serial_sequence('companies', 'id'), (SELECT MAX(id) FROM companies))`,
		`SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))`,
		`SELECT setval(pg_get_serial_sequence('projects', 'id'), (SELECT MAX(id) FROM projects))`,
	},
}

// rebind convierte "?" en "$n" para PostgreSQL. Las consultas del paquete no
// contienen "?" dentro de literales.
func (d dialect) rebind(query string) string {
	if !d.positional {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// translateError convierte violaciones de restricciones en ValidationError y
// cualquier otro fallo del driver en StorageError.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if verr := constraintError(err); verr != nil {
		return verr
	}
	return &domain.StorageError{Op: op, Err: err}
}

func constraintError(err error) *domain.ValidationError {
	var se *sqlite.Error
	if errors.As(err, &se) {
		if se.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
			return nil
		}
		msg := se.Error()
		switch {
		case se.Code() == sqlite3.SQLITE_CONSTRAINT_NOTNULL || strings.Contains(msg, "NOT NULL"):
			return domain.NewValidationError(columnFromMessage(msg), "es requerido")
		case se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY || strings.Contains(msg, "FOREIGN KEY"):
			return domain.NewValidationError("", "referencia a un registro inexistente")
		case se.Code() == sqlite3.SQLITE_CONSTRAINT_CHECK || strings.Contains(msg, "CHECK"):
			return domain.NewValidationError("", "valor fuera del rango permitido")
		default:
			return domain.NewValidationError(columnFromMessage(msg), "ya existe")
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23502": // not_null_violation
			return domain.NewValidationError(camelCase(pgErr.ColumnName), "es requerido")
		case "23503": // foreign_key_violation
			return domain.NewValidationError("", "referencia a un registro inexistente")
		case "23514": // check_violation
			return domain.NewValidationError("", "valor fuera del rango permitido")
		case "23505": // unique_violation
			return domain.NewValidationError("", "ya existe")
		}
	}
	return nil
}

// columnFromMessage extrae "name_ar" de
// "constraint failed: NOT NULL constraint failed: projects.name_ar (1299)".
func columnFromMessage(msg string) string {
	i := strings.LastIndex(msg, "failed: ")
	if i < 0 {
		return ""
	}
	rest := msg[i+len("failed: "):]
	if j := strings.IndexAny(rest, " ,"); j >= 0 {
		rest = rest[:j]
	}
	if j := strings.LastIndexByte(rest, '.'); j >= 0 {
		rest = rest[j+1:]
	}
	return camelCase(rest)
}

// camelCase convierte snake_case a camelCase (nombres de campo del API).
func camelCase(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
