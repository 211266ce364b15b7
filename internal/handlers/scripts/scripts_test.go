package scripts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/dto"
	"github.com/velmoria/scriptstore/internal/service/catalogservice"
	"github.com/velmoria/scriptstore/internal/service/licenseservice"
	"github.com/velmoria/scriptstore/pkg/auth"
)

func NewMock(t *testing.T) (*ScriptHandler, *MockService, *MockDownloadService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	downloads := NewMockDownloadService(ctrl)
	handler := New(service, downloads)
	defer ctrl.Finish()
	return handler, service, downloads
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Default pagination",
			url:  "/api/scripts",
			prepareMock: func() {
				service.EXPECT().
					ListScripts(gomock.Any(), 20, 0).
					Return([]domain.Script{{ID: 10, Title: "Advanced Garage", ResourceName: "adv_garage", Status: "ACTIVE"}}, 14, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Explicit pagination",
			url:  "/api/scripts?limit=5&offset=10",
			prepareMock: func() {
				service.EXPECT().
					ListScripts(gomock.Any(), 5, 10).
					Return(nil, 14, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Oversized limit falls back to default",
			url:  "/api/scripts?limit=500",
			prepareMock: func() {
				service.EXPECT().
					ListScripts(gomock.Any(), 20, 0).
					Return(nil, 14, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Internal server error",
			url:  "/api/scripts",
			prepareMock: func() {
				service.EXPECT().
					ListScripts(gomock.Any(), 20, 0).
					Return(nil, 0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			w := httptest.NewRecorder()
			handler.List(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ScriptListResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 14, body.Total)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		resource     string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Existing script with versions",
			resource: "adv_garage",
			prepareMock: func() {
				service.EXPECT().
					GetScript(gomock.Any(), "adv_garage").
					Return(&domain.Script{
						ID:           10,
						Title:        "Advanced Garage",
						ResourceName: "adv_garage",
						PricePoints:  2499,
						Status:       "ACTIVE",
						Versions: []domain.ScriptVersion{
							{Version: "1.2.0", Notes: "bug fixes"},
							{Version: "1.0.0", Notes: "initial release"},
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Unknown script",
			resource: "ghost",
			prepareMock: func() {
				service.EXPECT().
					GetScript(gomock.Any(), "ghost").
					Return(nil, catalogservice.ErrScriptNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Internal server error",
			resource: "adv_garage",
			prepareMock: func() {
				service.EXPECT().
					GetScript(gomock.Any(), "adv_garage").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/scripts/"+tt.resource, nil)
			r = withURLParam(r, "resourceName", tt.resource)
			w := httptest.NewRecorder()
			handler.Get(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ScriptResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "adv_garage", body.ResourceName)
				assert.Len(t, body.Versions, 2)
			}
		})
	}
}

func TestPackagesHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().
		ListPackages(gomock.Any()).
		Return([]domain.PointsPackage{
			{ID: 2, Name: "Starter", Amount: 9.99, Points: 1000, BonusPoints: 100, IsActive: true},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/points-packages", nil)
	w := httptest.NewRecorder()
	handler.Packages(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	var body []dto.PointsPackageDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, 1000, body[0].Points)
}

func TestDownloadHandler(t *testing.T) {
	handler, _, downloads := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.UserIDKey, 1)

	tests := []struct {
		name         string
		url          string
		version      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Latest version authorized",
			url:  "/api/scripts/adv_garage/download",
			prepareMock: func() {
				downloads.EXPECT().
					AuthorizeDownload(gomock.Any(), 1, "adv_garage", "").
					Return("https://cdn.example.com/adv_garage-1.2.0.zip", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Specific version authorized",
			url:  "/api/scripts/adv_garage/download?version=1.0.0",
			prepareMock: func() {
				downloads.EXPECT().
					AuthorizeDownload(gomock.Any(), 1, "adv_garage", "1.0.0").
					Return("https://cdn.example.com/adv_garage-1.0.0.zip", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown version",
			url:  "/api/scripts/adv_garage/download?version=9.9.9",
			prepareMock: func() {
				downloads.EXPECT().
					AuthorizeDownload(gomock.Any(), 1, "adv_garage", "9.9.9").
					Return("", licenseservice.ErrVersionNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Not purchased",
			url:  "/api/scripts/adv_garage/download",
			prepareMock: func() {
				downloads.EXPECT().
					AuthorizeDownload(gomock.Any(), 1, "adv_garage", "").
					Return("", licenseservice.ErrPurchaseRequired)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Binding not verified",
			url:  "/api/scripts/adv_garage/download",
			prepareMock: func() {
				downloads.EXPECT().
					AuthorizeDownload(gomock.Any(), 1, "adv_garage", "").
					Return("", licenseservice.ErrNotVerified)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "No binding at all",
			url:  "/api/scripts/adv_garage/download",
			prepareMock: func() {
				downloads.EXPECT().
					AuthorizeDownload(gomock.Any(), 1, "adv_garage", "").
					Return("", licenseservice.ErrBindingNotFound)
			},
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			r = r.WithContext(ctx)
			r = withURLParam(r, "resourceName", "adv_garage")
			w := httptest.NewRecorder()
			handler.Download(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.DownloadResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.NotEmpty(t, body.DownloadURL)
			}
		})
	}
}
