package sqlstore

import "strings"

// where acumula predicados de igualdad combinados con AND. Las columnas
// provienen siempre de constantes del paquete; los valores van como argumentos.
type where struct {
	clauses []string
	args    []any
}

func (w *where) eq(column string, value any) {
	w.clauses = append(w.clauses, column+" = ?")
	w.args = append(w.args, value)
}

// eqOpt agrega el predicado solo si v no es nil.
func eqOpt[T any](w *where, column string, v *T) {
	if v != nil {
		w.eq(column, *v)
	}
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// scanner cubre *sql.Row y *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
