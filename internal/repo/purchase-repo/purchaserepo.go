package purchaserepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

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

// PurchaseWithScript is a list row joined with catalog metadata.
type PurchaseWithScript struct {
	domain.Purchase
	ScriptTitle  string
	ResourceName string
}

func (r *Repository) Save(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `
        INSERT INTO purchases (user_id, script_id, price_paid, status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, user_id, script_id, price_paid, status, created_at
    `
	var created domain.Purchase
	err := r.db.QueryRow(ctx, query,
		purchase.UserID, purchase.ScriptID, purchase.PricePaid, purchase.Status).
		Scan(&created.ID, &created.UserID, &created.ScriptID, &created.PricePaid, &created.Status, &created.CreatedAt)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindByUserAndScript(ctx context.Context, userID, scriptID int) (*domain.Purchase, error) {
	query := `
        SELECT id, user_id, script_id, price_paid, status, created_at
        FROM purchases
        WHERE user_id = $1 AND script_id = $2
    `
	var purchase domain.Purchase
	err := r.db.QueryRow(ctx, query, userID, scriptID).
		Scan(&purchase.ID, &purchase.UserID, &purchase.ScriptID, &purchase.PricePaid, &purchase.Status, &purchase.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchase", zap.Error(err))
		return nil, err
	}
	return &purchase, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]PurchaseWithScript, error) {
	query := `
        SELECT p.id, p.user_id, p.script_id, p.price_paid, p.status, p.created_at, s.title, s.resource_name
        FROM purchases p
        JOIN scripts s ON s.id = p.script_id
        WHERE p.user_id = $1
        ORDER BY p.created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]PurchaseWithScript, error) {
	query := `
        SELECT p.id, p.user_id, p.script_id, p.price_paid, p.status, p.created_at, s.title, s.resource_name
        FROM purchases p
        JOIN scripts s ON s.id = p.script_id
        ORDER BY p.created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't list purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func collect(rows pgx.Rows) ([]PurchaseWithScript, error) {
	var purchases []PurchaseWithScript
	for rows.Next() {
		var p PurchaseWithScript
		err := rows.Scan(&p.ID, &p.UserID, &p.ScriptID, &p.PricePaid, &p.Status, &p.CreatedAt,
			&p.ScriptTitle, &p.ResourceName)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	query := `
        SELECT count(*)
        FROM purchases
    `
	var total int
	if err := r.db.QueryRow(ctx, query).Scan(&total); err != nil {
		zap.L().Error("can't count purchases", zap.Error(err))
		return 0, err
	}
	return total, nil
}
