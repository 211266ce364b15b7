package purchaseservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/events"
	"github.com/velmoria/scriptstore/internal/pg"
	purchaserepo "github.com/velmoria/scriptstore/internal/repo/purchase-repo"
	"github.com/velmoria/scriptstore/internal/service/catalogservice"
	"github.com/velmoria/scriptstore/internal/service/ledgerservice"
)

func NewMock(t *testing.T) (*Service, *MockPurchaseRepo, *MockScriptRepo, *MockLedger, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	scriptRepo := NewMockScriptRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(purchaseRepo, scriptRepo, ledger, txManager, events.NoopPublisher{})
	defer ctrl.Finish()
	return service, purchaseRepo, scriptRepo, ledger, txManager
}

func activeScript() *domain.Script {
	return &domain.Script{
		ID:           10,
		Title:        "Advanced Garage",
		ResourceName: "adv_garage",
		PricePoints:  2499,
		Status:       catalogservice.StatusActive,
	}
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestPurchase(t *testing.T) {
	service, purchaseRepo, scriptRepo, ledger, txManager := NewMock(t)
	tests := []struct {
		name          string
		resourceName  string
		prepareMock   func()
		expectedError error
	}{
		{
			name:         "Successful purchase",
			resourceName: "adv_garage",
			prepareMock: func() {
				scriptRepo.EXPECT().FindByResourceName(gomock.Any(), "adv_garage").Return(activeScript(), nil)
				purchaseRepo.EXPECT().FindByUserAndScript(gomock.Any(), 1, 10).Return(nil, nil)
				ledger.EXPECT().Balance(gomock.Any(), 1).Return(3000, nil)
				passthroughTx(txManager)
				purchaseRepo.EXPECT().Save(gomock.Any(), &domain.Purchase{
					UserID:    1,
					ScriptID:  10,
					PricePaid: 2499,
					Status:    StatusCompleted,
				}).Return(&domain.Purchase{ID: 5, UserID: 1, ScriptID: 10, PricePaid: 2499, Status: StatusCompleted}, nil)
				ledger.EXPECT().Debit(gomock.Any(), 1, 2499, ledgerservice.ReasonDebitPurchase, "purchase:5").Return(nil)
			},
		},
		{
			name:         "Unknown script",
			resourceName: "missing",
			prepareMock: func() {
				scriptRepo.EXPECT().FindByResourceName(gomock.Any(), "missing").Return(nil, nil)
			},
			expectedError: ErrScriptNotFound,
		},
		{
			name:         "Draft script is not purchasable",
			resourceName: "adv_garage",
			prepareMock: func() {
				draft := activeScript()
				draft.Status = catalogservice.StatusDraft
				scriptRepo.EXPECT().FindByResourceName(gomock.Any(), "adv_garage").Return(draft, nil)
			},
			expectedError: ErrScriptNotFound,
		},
		{
			name:         "Already owned",
			resourceName: "adv_garage",
			prepareMock: func() {
				scriptRepo.EXPECT().FindByResourceName(gomock.Any(), "adv_garage").Return(activeScript(), nil)
				purchaseRepo.EXPECT().FindByUserAndScript(gomock.Any(), 1, 10).Return(&domain.Purchase{ID: 2}, nil)
			},
			expectedError: ErrAlreadyOwned,
		},
		{
			name:         "Insufficient balance stops before any write",
			resourceName: "adv_garage",
			prepareMock: func() {
				scriptRepo.EXPECT().FindByResourceName(gomock.Any(), "adv_garage").Return(activeScript(), nil)
				purchaseRepo.EXPECT().FindByUserAndScript(gomock.Any(), 1, 10).Return(nil, nil)
				ledger.EXPECT().Balance(gomock.Any(), 1).Return(100, nil)
			},
			expectedError: ErrInsufficientPoints,
		},
		{
			name:         "Concurrent debit loses inside the transaction",
			resourceName: "adv_garage",
			prepareMock: func() {
				scriptRepo.EXPECT().FindByResourceName(gomock.Any(), "adv_garage").Return(activeScript(), nil)
				purchaseRepo.EXPECT().FindByUserAndScript(gomock.Any(), 1, 10).Return(nil, nil)
				ledger.EXPECT().Balance(gomock.Any(), 1).Return(2500, nil)
				passthroughTx(txManager)
				purchaseRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
					Return(&domain.Purchase{ID: 6, PricePaid: 2499}, nil)
				ledger.EXPECT().Debit(gomock.Any(), 1, 2499, ledgerservice.ReasonDebitPurchase, "purchase:6").
					Return(ledgerservice.ErrInsufficientPoints)
			},
			expectedError: ErrInsufficientPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			purchase, err := service.Purchase(context.Background(), 1, tt.resourceName)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, purchase)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusCompleted, purchase.Status)
				assert.Equal(t, 2499, purchase.PricePaid)
			}
		})
	}
}

func TestGetPurchases(t *testing.T) {
	service, purchaseRepo, _, _, _ := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expected      []purchaserepo.PurchaseWithScript
		expectedError error
	}{
		{
			name: "Returns purchases with script info",
			prepareMock: func() {
				purchases := []purchaserepo.PurchaseWithScript{
					{Purchase: domain.Purchase{ID: 1, PricePaid: 2499}, ScriptTitle: "Advanced Garage", ResourceName: "adv_garage"},
				}
				purchaseRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(purchases, nil)
			},
			expected: []purchaserepo.PurchaseWithScript{
				{Purchase: domain.Purchase{ID: 1, PricePaid: 2499}, ScriptTitle: "Advanced Garage", ResourceName: "adv_garage"},
			},
		},
		{
			name: "Repo error propagated",
			prepareMock: func() {
				purchaseRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			got, err := service.GetPurchases(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
