package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	_ "github.com/velmoria/scriptstore/docs"
	"github.com/velmoria/scriptstore/internal/config"
	adminhandlers "github.com/velmoria/scriptstore/internal/handlers/admin"
	authhandlers "github.com/velmoria/scriptstore/internal/handlers/auth"
	paymenthandlers "github.com/velmoria/scriptstore/internal/handlers/payments"
	purchasehandlers "github.com/velmoria/scriptstore/internal/handlers/purchases"
	scripthandlers "github.com/velmoria/scriptstore/internal/handlers/scripts"
	serveriphandlers "github.com/velmoria/scriptstore/internal/handlers/serverip"
	webhookhandlers "github.com/velmoria/scriptstore/internal/handlers/webhooks"
	"github.com/velmoria/scriptstore/internal/service"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
)

type staticRoles struct{ role string }

func (s staticRoles) Role(ctx context.Context, userID int) (string, error) {
	return s.role, nil
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:     authhandlers.NewMockService(ctrl),
		CatalogService:  scripthandlers.NewMockService(ctrl),
		PaymentService:  paymenthandlers.NewMockService(ctrl),
		PurchaseService: purchasehandlers.NewMockService(ctrl),
		LicenseService:  serveriphandlers.NewMockService(ctrl),
		Membership:      webhookhandlers.NewMockMembershipService(ctrl),
		ProcessorEvents: webhookhandlers.NewMockPaymentEventService(ctrl),
		AdminService:    adminhandlers.NewMockService(ctrl),
		PaymentReview:   adminhandlers.NewMockPaymentReviewService(ctrl),
		Downloads:       scripthandlers.NewMockDownloadService(ctrl),
		Roles:           staticRoles{role: "USER"},
	}

	h := New(&config.Config{}, services, pkgauth.NewJWTService("test-secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockScriptHandler := NewMockScriptHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockPurchaseHandler := NewMockPurchaseHandler(ctrl)
	mockServerIPHandler := NewMockServerIPHandler(ctrl)
	mockWebhookHandler := NewMockWebhookHandler(ctrl)
	mockAdminHandler := NewMockAdminHandler(ctrl)

	mockAuthHandler.EXPECT().Exchange(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockScriptHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockScriptHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockScriptHandler.EXPECT().Packages(gomock.Any(), gomock.Any()).AnyTimes()
	mockServerIPHandler.EXPECT().Verify(gomock.Any(), gomock.Any()).AnyTimes()
	mockServerIPHandler.EXPECT().VerifyKey(gomock.Any(), gomock.Any()).AnyTimes()
	mockWebhookHandler.EXPECT().Payment(gomock.Any(), gomock.Any()).AnyTimes()
	mockWebhookHandler.EXPECT().Membership(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:     mockAuthHandler,
		ScriptHandler:   mockScriptHandler,
		PaymentHandler:  mockPaymentHandler,
		PurchaseHandler: mockPurchaseHandler,
		ServerIPHandler: mockServerIPHandler,
		WebhookHandler:  mockWebhookHandler,
		AdminHandler:    mockAdminHandler,
		jwtService:      pkgauth.NewJWTService("test-secret"),
		roles:           staticRoles{role: "USER"},
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/exchange", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/auth/session", http.StatusUnauthorized},
		{"GET", "/api/scripts", http.StatusOK},
		{"GET", "/api/scripts/adv_garage", http.StatusOK},
		{"GET", "/api/points-packages", http.StatusOK},
		{"POST", "/api/license/verify", http.StatusOK},
		{"POST", "/api/license/verify-key", http.StatusOK},
		{"POST", "/api/webhooks/payment", http.StatusOK},
		{"POST", "/api/webhooks/membership", http.StatusOK},
		{"GET", "/api/scripts/adv_garage/download", http.StatusUnauthorized},
		{"POST", "/api/payments/", http.StatusUnauthorized},
		{"GET", "/api/payments/", http.StatusUnauthorized},
		{"POST", "/api/purchases/", http.StatusUnauthorized},
		{"GET", "/api/purchases/", http.StatusUnauthorized},
		{"PUT", "/api/server-ips/", http.StatusUnauthorized},
		{"GET", "/api/server-ips/", http.StatusUnauthorized},
		{"GET", "/api/admin/dashboard", http.StatusUnauthorized},
		{"GET", "/api/admin/users/", http.StatusUnauthorized},
		{"POST", "/api/admin/scripts/", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
