package paymentservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/events"
	"github.com/velmoria/scriptstore/internal/metrics"
	"github.com/velmoria/scriptstore/internal/pg"
	paymentrepo "github.com/velmoria/scriptstore/internal/repo/payment-repo"
	"github.com/velmoria/scriptstore/internal/service/ledgerservice"
	"github.com/velmoria/scriptstore/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=paymentservice.go -destination=mock.go -package=paymentservice

type PaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	FindByID(ctx context.Context, id int) (*domain.Payment, error)
	FindByReferenceCode(ctx context.Context, referenceCode string) (*domain.Payment, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Payment, error)
	MarkProcessed(ctx context.Context, id int, status, adminNote string, processedAt time.Time) (bool, error)
	SaveWebhookEvent(ctx context.Context, provider, eventID string) error
}

type PackageRepo interface {
	FindByID(ctx context.Context, id int) (*domain.PointsPackage, error)
}

type Ledger interface {
	Credit(ctx context.Context, userID, amount int, reason, reference string) (int, error)
}

const (
	StatusPending   string = "PENDING"
	StatusApproved  string = "APPROVED"
	StatusCompleted string = "COMPLETED"
	StatusRejected  string = "REJECTED"
)

const referenceCodeLength = 10

var (
	ErrPaymentNotFound         = errors.New("payment not found")
	ErrPaymentAlreadyProcessed = errors.New("payment already processed")
	ErrPackageNotFound         = errors.New("points package not found")
	ErrInvalidDeposit          = errors.New("invalid deposit claim")
	ErrAmountMismatch          = errors.New("webhook amount does not match payment")
	ErrDuplicateEvent          = paymentrepo.ErrDuplicateEvent
)

type Service struct {
	paymentRepo  PaymentRepo
	packageRepo  PackageRepo
	ledger       Ledger
	txManager    pg.TXManager
	publisher    events.Publisher
	bonusPercent int
}

func New(paymentRepo PaymentRepo, packageRepo PackageRepo, ledger Ledger, txManager pg.TXManager, publisher events.Publisher, bonusPercent int) *Service {
	return &Service{
		paymentRepo:  paymentRepo,
		packageRepo:  packageRepo,
		ledger:       ledger,
		txManager:    txManager,
		publisher:    publisher,
		bonusPercent: bonusPercent,
	}
}

// CreateDeposit records a manual-review deposit claim. The balance is not
// touched until an admin or the processor webhook approves it.
func (s *Service) CreateDeposit(ctx context.Context, userID int, amount float64, method, proofImage string, packageID *int) (*domain.Payment, error) {
	if method == "" || proofImage == "" {
		return nil, ErrInvalidDeposit
	}

	var points int
	if packageID != nil {
		pkg, err := s.packageRepo.FindByID(ctx, *packageID)
		if err != nil {
			return nil, err
		}
		if pkg == nil || !pkg.IsActive {
			return nil, ErrPackageNotFound
		}
		amount = pkg.Amount
		points = pkg.Points + pkg.BonusPoints
	} else {
		if amount <= 0 {
			return nil, ErrInvalidDeposit
		}
		points = int(amount)
		points += points * s.bonusPercent / 100
	}

	payment, err := s.paymentRepo.Create(ctx, &domain.Payment{
		UserID:        userID,
		Amount:        amount,
		Points:        points,
		Method:        method,
		ProofImage:    proofImage,
		ReferenceCode: validate.NewReferenceCode(referenceCodeLength),
	})
	if err != nil {
		zap.L().Error("can't create payment", zap.Error(err))
		return nil, err
	}

	zap.L().Info("deposit claim created",
		zap.Int("user_id", userID), zap.Float64("amount", amount), zap.Int("points", points))
	return payment, nil
}

func (s *Service) GetPayments(ctx context.Context, userID int) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}

// Approve moves a PENDING payment to status (APPROVED or COMPLETED) and
// credits its points, as one transaction. The status flip is conditional on
// PENDING, so a second approval of the same payment fails instead of
// double-crediting.
func (s *Service) Approve(ctx context.Context, id int, adminNote, status string) error {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}
	return s.approve(ctx, payment, adminNote, status, nil)
}

// approve runs the conditional status flip and the credit as one
// transaction. An extra step, when given, joins the same unit of work so its
// writes roll back with a failed approval.
func (s *Service) approve(ctx context.Context, payment *domain.Payment, adminNote, status string, extra func(context.Context) error) error {
	approvedAt := time.Now()
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if extra != nil {
			if err := extra(ctx); err != nil {
				return err
			}
		}
		ok, err := s.paymentRepo.MarkProcessed(ctx, payment.ID, status, adminNote, approvedAt)
		if err != nil {
			return err
		}
		if !ok {
			return ErrPaymentAlreadyProcessed
		}
		_, err = s.ledger.Credit(ctx, payment.UserID, payment.Points,
			ledgerservice.ReasonCreditPayment, fmt.Sprintf("payment:%d", payment.ID))
		return err
	})
	if err != nil {
		return err
	}

	metrics.PaymentsProcessed.WithLabelValues(status).Inc()
	if err := s.publisher.PaymentApproved(ctx, events.PaymentApprovedEvent{
		PaymentID:  payment.ID,
		UserID:     payment.UserID,
		Points:     payment.Points,
		Amount:     payment.Amount,
		ApprovedAt: approvedAt,
	}); err != nil {
		zap.L().Error("can't publish payment event", zap.Error(err))
	}

	zap.L().Info("payment approved",
		zap.Int("payment_id", payment.ID), zap.Int("user_id", payment.UserID), zap.Int("points", payment.Points))
	return nil
}

// Reject is a status and note update only; the ledger is never touched.
func (s *Service) Reject(ctx context.Context, id int, adminNote string) error {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}

	ok, err := s.paymentRepo.MarkProcessed(ctx, id, StatusRejected, adminNote, time.Now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrPaymentAlreadyProcessed
	}

	metrics.PaymentsProcessed.WithLabelValues(StatusRejected).Inc()
	zap.L().Info("payment rejected", zap.Int("payment_id", id))
	return nil
}

// amountTolerance absorbs float64 conversion noise between the NUMERIC(12,2)
// column and the JSON-decoded webhook amount; anything past half a cent is a
// real mismatch.
const amountTolerance = 0.005

// HandleProcessorEvent reconciles a processor webhook against a pending
// deposit claim. The event-id dedup insert commits with the approval, so a
// failed approval releases the id and the processor's retry can land.
func (s *Service) HandleProcessorEvent(ctx context.Context, eventID, referenceCode string, amount float64) error {
	if !validate.IsLuhn(referenceCode) {
		return ErrPaymentNotFound
	}

	payment, err := s.paymentRepo.FindByReferenceCode(ctx, referenceCode)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrPaymentNotFound
	}
	if math.Abs(payment.Amount-amount) > amountTolerance {
		zap.L().Error("webhook amount mismatch",
			zap.Int("payment_id", payment.ID),
			zap.Float64("expected", payment.Amount), zap.Float64("got", amount))
		return ErrAmountMismatch
	}

	return s.approve(ctx, payment, "processor webhook", StatusCompleted, func(ctx context.Context) error {
		return s.paymentRepo.SaveWebhookEvent(ctx, "processor", eventID)
	})
}
