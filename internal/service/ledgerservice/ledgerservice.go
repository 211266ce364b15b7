package ledgerservice

import (
	"context"
	"errors"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/session"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock.go -package=ledgerservice

type LedgerRepo interface {
	GetPoints(ctx context.Context, userID int) (int, error)
	Credit(ctx context.Context, userID, amount int) (int, error)
	DebitIfSufficient(ctx context.Context, userID, amount int) (bool, error)
	SaveTransaction(ctx context.Context, trx *domain.PointTransaction) error
	FindTransactionsByUserID(ctx context.Context, userID int) ([]domain.PointTransaction, error)
}

const (
	ReasonCreditPayment string = "CREDIT_PAYMENT"
	ReasonDebitPurchase string = "DEBIT_PURCHASE"
	ReasonAdminAdjust   string = "ADMIN_ADJUST"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrInvalidAmount      = errors.New("amount must be positive")
)

// Service is the only mutation path for point balances. Every credit and
// debit writes an audit row and invalidates the cached session claims.
type Service struct {
	ledgerRepo LedgerRepo
	cache      session.Cache
}

func New(ledgerRepo LedgerRepo, cache session.Cache) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		cache:      cache,
	}
}

func (s *Service) Balance(ctx context.Context, userID int) (int, error) {
	points, err := s.ledgerRepo.GetPoints(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return points, nil
}

func (s *Service) Credit(ctx context.Context, userID, amount int, reason, reference string) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	points, err := s.ledgerRepo.Credit(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to credit points", zap.Error(err))
		return 0, err
	}
	err = s.ledgerRepo.SaveTransaction(ctx, &domain.PointTransaction{
		UserID:    userID,
		Delta:     amount,
		Reason:    reason,
		Reference: reference,
	})
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx, userID)
	return points, nil
}

func (s *Service) Debit(ctx context.Context, userID, amount int, reason, reference string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	ok, err := s.ledgerRepo.DebitIfSufficient(ctx, userID, amount)
	if err != nil {
		zap.L().Error("failed to debit points", zap.Error(err))
		return err
	}
	if !ok {
		return ErrInsufficientPoints
	}
	err = s.ledgerRepo.SaveTransaction(ctx, &domain.PointTransaction{
		UserID:    userID,
		Delta:     -amount,
		Reason:    reason,
		Reference: reference,
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, userID)
	return nil
}

// AdjustTo sets the balance to target via a compensating credit or debit so
// the audit trail stays complete.
func (s *Service) AdjustTo(ctx context.Context, userID, target int, reference string) error {
	if target < 0 {
		return ErrInvalidAmount
	}
	current, err := s.ledgerRepo.GetPoints(ctx, userID)
	if err != nil {
		return err
	}
	switch {
	case target > current:
		_, err = s.Credit(ctx, userID, target-current, ReasonAdminAdjust, reference)
	case target < current:
		err = s.Debit(ctx, userID, current-target, ReasonAdminAdjust, reference)
	}
	return err
}

func (s *Service) History(ctx context.Context, userID int) ([]domain.PointTransaction, error) {
	trxs, err := s.ledgerRepo.FindTransactionsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch point transactions", zap.Error(err))
		return nil, err
	}
	return trxs, nil
}
