package purchases

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/dto"
	purchaserepo "github.com/velmoria/scriptstore/internal/repo/purchase-repo"
	"github.com/velmoria/scriptstore/internal/service/purchaseservice"
	"github.com/velmoria/scriptstore/pkg/auth"
)

func NewMock(t *testing.T) (*PurchaseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestCreateHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful purchase",
			body: `{"resource_name":"adv_garage"}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), 1, "adv_garage").
					Return(&domain.Purchase{ID: 5, UserID: 1, ScriptID: 10, PricePaid: 2499, Status: "COMPLETED", CreatedAt: time.Now()}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing resource name",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Unknown script",
			body: `{"resource_name":"ghost"}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), 1, "ghost").
					Return(nil, purchaseservice.ErrScriptNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Already owned",
			body: `{"resource_name":"adv_garage"}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), 1, "adv_garage").
					Return(nil, purchaseservice.ErrAlreadyOwned)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient points",
			body: `{"resource_name":"adv_garage"}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), 1, "adv_garage").
					Return(nil, purchaseservice.ErrInsufficientPoints)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: `{"resource_name":"adv_garage"}`,
			prepareMock: func() {
				service.EXPECT().
					Purchase(gomock.Any(), 1, "adv_garage").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/purchases", bytes.NewBufferString(tt.body))
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.Create(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusCreated {
				var body dto.PurchaseResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 5, body.ID)
				assert.Equal(t, "adv_garage", body.ResourceName)
				assert.Equal(t, 2499, body.PricePaid)
			}
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().
					GetPurchases(gomock.Any(), 1).
					Return([]purchaserepo.PurchaseWithScript{
						{
							Purchase:     domain.Purchase{ID: 5, UserID: 1, ScriptID: 10, PricePaid: 2499, Status: "COMPLETED"},
							ScriptTitle:  "Advanced Garage",
							ResourceName: "adv_garage",
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name: "Empty history",
			prepareMock: func() {
				service.EXPECT().
					GetPurchases(gomock.Any(), 1).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					GetPurchases(gomock.Any(), 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/purchases", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.List(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.PurchaseResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				if tt.expectedLen > 0 {
					assert.Equal(t, "Advanced Garage", body[0].Title)
				}
			}
		})
	}
}
