package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	q := "SELECT 1 FROM t WHERE a = ? AND b = ?"
	assert.Equal(t, q, sqliteDialect.rebind(q))
	assert.Equal(t, "SELECT 1 FROM t WHERE a = $1 AND b = $2", postgresDialect.rebind(q))
}

func TestColumnFromMessage(t *testing.T) {
	assert.Equal(t, "nameAr", columnFromMessage("constraint failed: NOT NULL constraint failed: projects.name_ar (1299)"))
	assert.Equal(t, "username", columnFromMessage("UNIQUE constraint failed: users.username"))
	assert.Equal(t, "", columnFromMessage("FOREIGN KEY mismatch"))
}

func TestWhere(t *testing.T) {
	var w where
	assert.Equal(t, "", w.String())

	id := int64(3)
	var status *string
	eqOpt(&w, "company_id", &id)
	eqOpt(&w, "status", status)
	assert.Equal(t, " WHERE company_id = ?", w.String())
	assert.Equal(t, []any{int64(3)}, w.args)
}
