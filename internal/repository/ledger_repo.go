package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aditya-1310/experiment-dehix-sub000/internal/domain"
	"github.com/jmoiron/sqlx"
)

// LedgerRepo хранит баланс connects бизнеса.
type LedgerRepo struct{ db *sqlx.DB }

func NewLedgerRepo(db *sqlx.DB) *LedgerRepo { return &LedgerRepo{db: db} }

func (r *LedgerRepo) Balance(ctx context.Context, businessID string) (int, error) {
	var connects int
	err := r.db.GetContext(ctx, &connects, `select connects from businesses where id=$1`, businessID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrBusinessNotFound
	}
	return connects, err
}

func (r *LedgerRepo) Credit(ctx context.Context, businessID string, amount int) error {
	res, err := r.db.ExecContext(ctx, `update businesses set connects=connects+$2 where id=$1`, businessID, amount)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

// debitConnects списывает amount только при достаточном балансе; условие в
// самом update исключает гонку двух одновременных списаний.
func debitConnects(tx *sqlx.Tx, businessID string, amount int) error {
	res, err := tx.Exec(`update businesses set connects=connects-$2 where id=$1 and connects>=$2`, businessID, amount)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists bool
		if err := tx.Get(&exists, `select exists(select 1 from businesses where id=$1)`, businessID); err != nil {
			return err
		}
		if !exists {
			return domain.ErrBusinessNotFound
		}
		return domain.ErrInsufficientConnects
	}
	return nil
}
