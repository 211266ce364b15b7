package paymentrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicateEvent reports a webhook event id that was already recorded.
var ErrDuplicateEvent = errors.New("duplicate webhook event")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const paymentColumns = `id, user_id, amount, points, method, proof_image, reference_code, status, admin_note, created_at, processed_at`

func scanPayment(row pg.RowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	err := row.Scan(&payment.ID, &payment.UserID, &payment.Amount, &payment.Points,
		&payment.Method, &payment.ProofImage, &payment.ReferenceCode, &payment.Status,
		&payment.AdminNote, &payment.CreatedAt, &payment.ProcessedAt)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
        INSERT INTO payments (user_id, amount, points, method, proof_image, reference_code)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + paymentColumns + `
    `
	created, err := scanPayment(r.db.QueryRow(ctx, query,
		payment.UserID, payment.Amount, payment.Points, payment.Method,
		payment.ProofImage, payment.ReferenceCode))
	if err != nil {
		zap.L().Error("can't create payment", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE id = $1
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment by id", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByReferenceCode(ctx context.Context, referenceCode string) (*domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE reference_code = $1
    `
	payment, err := scanPayment(r.db.QueryRow(ctx, query, referenceCode))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment by reference code", zap.Error(err))
		return nil, err
	}
	return payment, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (r *Repository) List(ctx context.Context, status string, limit, offset int) ([]domain.Payment, error) {
	query := `
        SELECT ` + paymentColumns + `
        FROM payments
        WHERE $1 = '' OR status = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		zap.L().Error("can't list payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func collect(rows pgx.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, *payment)
	}
	return payments, nil
}

func (r *Repository) Count(ctx context.Context, status string) (int, error) {
	query := `
        SELECT count(*)
        FROM payments
        WHERE $1 = '' OR status = $1
    `
	var total int
	if err := r.db.QueryRow(ctx, query, status).Scan(&total); err != nil {
		zap.L().Error("can't count payments", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// MarkProcessed moves a PENDING payment to a terminal state. It reports
// whether the transition happened; zero rows means the payment already left
// PENDING and the caller must not credit.
func (r *Repository) MarkProcessed(ctx context.Context, id int, status, adminNote string, processedAt time.Time) (bool, error) {
	query := `
        UPDATE payments
        SET status = $1, admin_note = $2, processed_at = $3
        WHERE id = $4 AND status = 'PENDING'
    `
	tag, err := r.db.Exec(ctx, query, status, adminNote, processedAt, id)
	if err != nil {
		zap.L().Error("can't mark payment processed", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) SumApprovedAmount(ctx context.Context) (float64, error) {
	query := `
        SELECT coalesce(sum(amount), 0)
        FROM payments
        WHERE status IN ('APPROVED', 'COMPLETED')
    `
	var sum float64
	if err := r.db.QueryRow(ctx, query).Scan(&sum); err != nil {
		zap.L().Error("can't sum approved payments", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

// SaveWebhookEvent records a processor event id, returning ErrDuplicateEvent
// when the (provider, event_id) pair was seen before.
func (r *Repository) SaveWebhookEvent(ctx context.Context, provider, eventID string) error {
	query := `
        INSERT INTO webhook_events (provider, event_id)
        VALUES ($1, $2)
    `
	if _, err := r.db.Exec(ctx, query, provider, eventID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEvent
		}
		zap.L().Error("can't save webhook event", zap.Error(err))
		return err
	}
	return nil
}
