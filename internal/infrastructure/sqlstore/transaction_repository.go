package sqlstore

import (
	"context"
	"time"

	"github.com/jhoicas/obra-offline/internal/domain/entity"
	"github.com/jhoicas/obra-offline/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, type, category, COALESCE(description, ''), COALESCE(description_ar, ''),
	amount, currency, exchange_rate, company_id, project_id, created_by, transaction_date`

// TransactionRepo adaptador de persistencia para transacciones (sin update/delete).
type TransactionRepo struct {
	c conn
}

// NewTransactionRepository construye el adaptador sobre el Store.
func NewTransactionRepository(s *Store) *TransactionRepo {
	return &TransactionRepo{c: s.conn()}
}

// Create agrega una transacción y la relee por el id generado.
func (r *TransactionRepo) Create(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	date := t.TransactionDate
	if date.IsZero() {
		date = time.Now().UTC()
	}
	query := `
		INSERT INTO transactions (type, category, description, description_ar, amount, currency,
			exchange_rate, company_id, project_id, created_by, transaction_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`
	var id int64
	err := r.c.queryRow(ctx, query,
		nullIfEmpty(t.Type), nullIfEmpty(t.Category), nullIfEmpty(t.Description), nullIfEmpty(t.DescriptionAr),
		t.Amount, t.Currency, t.ExchangeRate, nullIfZero(t.CompanyID), t.ProjectID, nullIfZero(t.CreatedBy), date,
	).Scan(&id)
	if err != nil {
		return nil, translateError("insert transaction", err)
	}

	out, err := scanTransaction(r.c.queryRow(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id))
	if err != nil {
		return nil, translateError("get transaction", err)
	}
	return out, nil
}

// List devuelve transacciones filtradas por empresa y/o proyecto, más recientes primero.
func (r *TransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.Transaction, error) {
	var w where
	eqOpt(&w, "company_id", f.CompanyID)
	eqOpt(&w, "project_id", f.ProjectID)

	rows, err := r.c.query(ctx,
		`SELECT `+transactionColumns+` FROM transactions`+w.String()+` ORDER BY transaction_date DESC, id DESC`,
		w.args...)
	if err != nil {
		return nil, translateError("list transactions", err)
	}
	defer rows.Close()

	list := make([]*entity.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, translateError("scan transaction", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list transactions", err)
	}
	return list, nil
}

func scanTransaction(s scanner) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := s.Scan(&t.ID, &t.Type, &t.Category, &t.Description, &t.DescriptionAr,
		&t.Amount, &t.Currency, &t.ExchangeRate, &t.CompanyID, &t.ProjectID, &t.CreatedBy,
		&t.TransactionDate); err != nil {
		return nil, err
	}
	return &t, nil
}
