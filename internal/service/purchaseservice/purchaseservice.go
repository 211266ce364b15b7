package purchaseservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/events"
	"github.com/velmoria/scriptstore/internal/metrics"
	"github.com/velmoria/scriptstore/internal/pg"
	purchaserepo "github.com/velmoria/scriptstore/internal/repo/purchase-repo"
	"github.com/velmoria/scriptstore/internal/service/catalogservice"
	"github.com/velmoria/scriptstore/internal/service/ledgerservice"
	"go.uber.org/zap"
)

//go:generate mockgen -source=purchaseservice.go -destination=mock.go -package=purchaseservice

type PurchaseRepo interface {
	Save(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	FindByUserAndScript(ctx context.Context, userID, scriptID int) (*domain.Purchase, error)
	FindByUserID(ctx context.Context, userID int) ([]purchaserepo.PurchaseWithScript, error)
}

type ScriptRepo interface {
	FindByResourceName(ctx context.Context, resourceName string) (*domain.Script, error)
}

type Ledger interface {
	Balance(ctx context.Context, userID int) (int, error)
	Debit(ctx context.Context, userID, amount int, reason, reference string) error
}

const StatusCompleted string = "COMPLETED"

var (
	ErrScriptNotFound     = errors.New("script not found")
	ErrAlreadyOwned       = errors.New("script already purchased")
	ErrInsufficientPoints = ledgerservice.ErrInsufficientPoints
)

type Service struct {
	purchaseRepo PurchaseRepo
	scriptRepo   ScriptRepo
	ledger       Ledger
	txManager    pg.TXManager
	publisher    events.Publisher
}

func New(purchaseRepo PurchaseRepo, scriptRepo ScriptRepo, ledger Ledger, txManager pg.TXManager, publisher events.Publisher) *Service {
	return &Service{
		purchaseRepo: purchaseRepo,
		scriptRepo:   scriptRepo,
		ledger:       ledger,
		txManager:    txManager,
		publisher:    publisher,
	}
}

// Purchase runs the precondition chain in order, then inserts the
// entitlement and debits the balance as one transaction. The debit is
// conditional on the balance inside the UPDATE itself, so a concurrent
// purchase of the same user cannot run it negative; the pre-check only
// exists to give the caller a distinct error before any write.
func (s *Service) Purchase(ctx context.Context, userID int, resourceName string) (*domain.Purchase, error) {
	script, err := s.scriptRepo.FindByResourceName(ctx, resourceName)
	if err != nil {
		return nil, err
	}
	if script == nil || script.Status != catalogservice.StatusActive {
		return nil, ErrScriptNotFound
	}

	existing, err := s.purchaseRepo.FindByUserAndScript(ctx, userID, script.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("script already owned",
			zap.Int("user_id", userID), zap.String("resource_name", resourceName))
		return nil, ErrAlreadyOwned
	}

	balance, err := s.ledger.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance < script.PricePoints {
		return nil, ErrInsufficientPoints
	}

	var created *domain.Purchase
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err = s.purchaseRepo.Save(ctx, &domain.Purchase{
			UserID:    userID,
			ScriptID:  script.ID,
			PricePaid: script.PricePoints,
			Status:    StatusCompleted,
		})
		if err != nil {
			return err
		}
		return s.ledger.Debit(ctx, userID, script.PricePoints,
			ledgerservice.ReasonDebitPurchase, fmt.Sprintf("purchase:%d", created.ID))
	})
	if err != nil {
		return nil, err
	}

	metrics.PurchasesCompleted.Inc()
	if err := s.publisher.PurchaseCompleted(ctx, events.PurchaseCompletedEvent{
		PurchaseID:   created.ID,
		UserID:       userID,
		ScriptID:     script.ID,
		ResourceName: script.ResourceName,
		PricePaid:    created.PricePaid,
		CompletedAt:  time.Now(),
	}); err != nil {
		zap.L().Error("can't publish purchase event", zap.Error(err))
	}

	zap.L().Info("purchase completed",
		zap.Int("user_id", userID), zap.String("resource_name", resourceName),
		zap.Int("price_paid", created.PricePaid))
	return created, nil
}

func (s *Service) GetPurchases(ctx context.Context, userID int) ([]purchaserepo.PurchaseWithScript, error) {
	purchases, err := s.purchaseRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
