package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/dto"
	"github.com/velmoria/scriptstore/internal/identity"
	"github.com/velmoria/scriptstore/internal/service/authservice"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
)

func NewMock(t *testing.T) (*AuthHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func testUser() *domain.User {
	return &domain.User{
		ID:       1,
		Name:     "velma",
		Email:    "velma@example.com",
		Role:     domain.RoleUser,
		Points:   500,
		IsMember: true,
	}
}

func TestExchangeHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful exchange",
			body: `{"code":"provider-code"}`,
			prepareMock: func() {
				user := testUser()
				service.EXPECT().ExchangeCode(gomock.Any(), "provider-code").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("signed.jwt.token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing code",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Provider rejected the code",
			body: `{"code":"stale-code"}`,
			prepareMock: func() {
				service.EXPECT().ExchangeCode(gomock.Any(), "stale-code").Return(nil, identity.ErrExchangeFailed)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Token generation failure",
			body: `{"code":"provider-code"}`,
			prepareMock: func() {
				user := testUser()
				service.EXPECT().ExchangeCode(gomock.Any(), "provider-code").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("", errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/exchange", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Exchange(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "Bearer signed.jwt.token", w.Header().Get("Authorization"))
				var body dto.AuthResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "signed.jwt.token", body.Token)
				assert.Equal(t, "velma", body.User.Name)
				assert.True(t, body.User.IsMember)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful login",
			body: `{"email":"velma@example.com","password":"s3cret-pass"}`,
			prepareMock: func() {
				user := testUser()
				service.EXPECT().Login(gomock.Any(), "velma@example.com", "s3cret-pass").Return(user, nil)
				service.EXPECT().GenerateToken(user).Return("signed.jwt.token", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Wrong password",
			body: `{"email":"velma@example.com","password":"wrong"}`,
			prepareMock: func() {
				service.EXPECT().Login(gomock.Any(), "velma@example.com", "wrong").Return(nil, authservice.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.Login(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestSessionHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), pkgauth.UserIDKey, 1)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				service.EXPECT().Session(gomock.Any(), 1).Return(testUser(), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User no longer exists",
			prepareMock: func() {
				service.EXPECT().Session(gomock.Any(), 1).Return(nil, authservice.ErrUserNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Session(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()
			handler.Session(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.SessionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 500, body.Points)
				assert.Equal(t, domain.RoleUser, body.Role)
			}
		})
	}
}
