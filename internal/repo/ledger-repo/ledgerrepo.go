package ledgerrepo

import (
	"context"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetPoints(ctx context.Context, userID int) (int, error) {
	query := `
        SELECT points
        FROM users
        WHERE id = $1
    `
	var points int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&points); err != nil {
		zap.L().Error("can't get user points", zap.Error(err))
		return 0, err
	}
	return points, nil
}

func (r *Repository) Credit(ctx context.Context, userID, amount int) (int, error) {
	query := `
        UPDATE users
        SET points = points + $1
        WHERE id = $2
        RETURNING points
    `
	var points int
	if err := r.db.QueryRow(ctx, query, amount, userID).Scan(&points); err != nil {
		zap.L().Error("can't credit points", zap.Error(err))
		return 0, err
	}
	return points, nil
}

// DebitIfSufficient decrements the balance only when it covers the amount,
// closing the check-then-debit window at the storage layer. It reports
// whether a row was updated.
func (r *Repository) DebitIfSufficient(ctx context.Context, userID, amount int) (bool, error) {
	query := `
        UPDATE users
        SET points = points - $1
        WHERE id = $2 AND points >= $1
    `
	tag, err := r.db.Exec(ctx, query, amount, userID)
	if err != nil {
		zap.L().Error("can't debit points", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SaveTransaction(ctx context.Context, trx *domain.PointTransaction) error {
	query := `
        INSERT INTO point_transactions (user_id, delta, reason, reference)
        VALUES ($1, $2, $3, $4)
    `
	if _, err := r.db.Exec(ctx, query, trx.UserID, trx.Delta, trx.Reason, trx.Reference); err != nil {
		zap.L().Error("can't save point transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindTransactionsByUserID(ctx context.Context, userID int) ([]domain.PointTransaction, error) {
	query := `
        SELECT id, user_id, delta, reason, reference, created_at
        FROM point_transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get point transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var trxs []domain.PointTransaction
	for rows.Next() {
		var trx domain.PointTransaction
		err := rows.Scan(&trx.ID, &trx.UserID, &trx.Delta, &trx.Reason, &trx.Reference, &trx.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan point transaction row", zap.Error(err))
			return nil, err
		}
		trxs = append(trxs, trx)
	}
	return trxs, nil
}
