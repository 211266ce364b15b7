package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/session"
)

func NewMock(t *testing.T) (*Service, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	service := New(ledgerRepo, session.NoopCache{})
	defer ctrl.Finish()
	return service, ledgerRepo
}

func TestBalance(t *testing.T) {
	service, ledgerRepo := NewMock(t)
	tests := []struct {
		name           string
		userID         int
		prepareMock    func()
		expectedPoints int
		expectedError  error
	}{
		{
			name:   "Retrieve balance successfully",
			userID: 1,
			prepareMock: func() {
				ledgerRepo.EXPECT().GetPoints(gomock.Any(), 1).Return(500, nil)
			},
			expectedPoints: 500,
		},
		{
			name:   "Error retrieving balance",
			userID: 1,
			prepareMock: func() {
				ledgerRepo.EXPECT().GetPoints(gomock.Any(), 1).Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			points, err := service.Balance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPoints, points)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, ledgerRepo := NewMock(t)
	tests := []struct {
		name           string
		amount         int
		prepareMock    func()
		expectedPoints int
		expectedError  error
	}{
		{
			name:   "Credit writes an audit row",
			amount: 100,
			prepareMock: func() {
				ledgerRepo.EXPECT().Credit(gomock.Any(), 1, 100).Return(600, nil)
				ledgerRepo.EXPECT().SaveTransaction(gomock.Any(), &domain.PointTransaction{
					UserID:    1,
					Delta:     100,
					Reason:    ReasonCreditPayment,
					Reference: "payment:7",
				}).Return(nil)
			},
			expectedPoints: 600,
		},
		{
			name:          "Zero amount rejected",
			amount:        0,
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Negative amount rejected",
			amount:        -50,
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Repo error propagated",
			amount: 100,
			prepareMock: func() {
				ledgerRepo.EXPECT().Credit(gomock.Any(), 1, 100).Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			points, err := service.Credit(context.Background(), 1, tt.amount, ReasonCreditPayment, "payment:7")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedPoints, points)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, ledgerRepo := NewMock(t)
	tests := []struct {
		name          string
		amount        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Debit records a negative delta",
			amount: 2499,
			prepareMock: func() {
				ledgerRepo.EXPECT().DebitIfSufficient(gomock.Any(), 1, 2499).Return(true, nil)
				ledgerRepo.EXPECT().SaveTransaction(gomock.Any(), &domain.PointTransaction{
					UserID:    1,
					Delta:     -2499,
					Reason:    ReasonDebitPurchase,
					Reference: "purchase:3",
				}).Return(nil)
			},
		},
		{
			name:   "Insufficient balance",
			amount: 2499,
			prepareMock: func() {
				ledgerRepo.EXPECT().DebitIfSufficient(gomock.Any(), 1, 2499).Return(false, nil)
			},
			expectedError: ErrInsufficientPoints,
		},
		{
			name:          "Zero amount rejected",
			amount:        0,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Debit(context.Background(), 1, tt.amount, ReasonDebitPurchase, "purchase:3")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAdjustTo(t *testing.T) {
	service, ledgerRepo := NewMock(t)
	tests := []struct {
		name          string
		target        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Adjust up credits the difference",
			target: 800,
			prepareMock: func() {
				ledgerRepo.EXPECT().GetPoints(gomock.Any(), 1).Return(500, nil)
				ledgerRepo.EXPECT().Credit(gomock.Any(), 1, 300).Return(800, nil)
				ledgerRepo.EXPECT().SaveTransaction(gomock.Any(), &domain.PointTransaction{
					UserID:    1,
					Delta:     300,
					Reason:    ReasonAdminAdjust,
					Reference: "admin:user:1",
				}).Return(nil)
			},
		},
		{
			name:   "Adjust down debits the difference",
			target: 200,
			prepareMock: func() {
				ledgerRepo.EXPECT().GetPoints(gomock.Any(), 1).Return(500, nil)
				ledgerRepo.EXPECT().DebitIfSufficient(gomock.Any(), 1, 300).Return(true, nil)
				ledgerRepo.EXPECT().SaveTransaction(gomock.Any(), &domain.PointTransaction{
					UserID:    1,
					Delta:     -300,
					Reason:    ReasonAdminAdjust,
					Reference: "admin:user:1",
				}).Return(nil)
			},
		},
		{
			name:   "Equal target is a no-op",
			target: 500,
			prepareMock: func() {
				ledgerRepo.EXPECT().GetPoints(gomock.Any(), 1).Return(500, nil)
			},
		},
		{
			name:          "Negative target rejected",
			target:        -1,
			expectedError: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.AdjustTo(context.Background(), 1, tt.target, "admin:user:1")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHistory(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	trxs := []domain.PointTransaction{
		{ID: 1, UserID: 1, Delta: 500, Reason: ReasonCreditPayment},
		{ID: 2, UserID: 1, Delta: -100, Reason: ReasonDebitPurchase},
	}
	ledgerRepo.EXPECT().FindTransactionsByUserID(gomock.Any(), 1).Return(trxs, nil)

	got, err := service.History(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, trxs, got)
}
