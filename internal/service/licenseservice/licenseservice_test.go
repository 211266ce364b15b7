package licenseservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/service/purchaseservice"
)

func NewMock(t *testing.T) (*Service, *MockBindingRepo, *MockPurchaseRepo, *MockScriptRepo) {
	ctrl := gomock.NewController(t)
	bindingRepo := NewMockBindingRepo(ctrl)
	purchaseRepo := NewMockPurchaseRepo(ctrl)
	scriptRepo := NewMockScriptRepo(ctrl)
	service := New(bindingRepo, purchaseRepo, scriptRepo)
	defer ctrl.Finish()
	return service, bindingRepo, purchaseRepo, scriptRepo
}

func ownedScript(scriptRepo *MockScriptRepo, purchaseRepo *MockPurchaseRepo) {
	scriptRepo.EXPECT().FindByResourceName(gomock.Any(), "adv_garage").Return(&domain.Script{
		ID: 10, ResourceName: "adv_garage", Status: "ACTIVE",
	}, nil)
	purchaseRepo.EXPECT().FindByUserAndScript(gomock.Any(), 1, 10).Return(&domain.Purchase{
		ID: 5, Status: purchaseservice.StatusCompleted,
	}, nil)
}

func TestSetServerIP(t *testing.T) {
	service, bindingRepo, purchaseRepo, scriptRepo := NewMock(t)
	tests := []struct {
		name          string
		ipAddress     string
		prepareMock   func()
		check         func(t *testing.T, binding *domain.ServerIP)
		expectedError error
	}{
		{
			name:      "First binding gets a license key",
			ipAddress: "203.0.113.7",
			prepareMock: func() {
				ownedScript(scriptRepo, purchaseRepo)
				bindingRepo.EXPECT().FindByUserAndResource(gomock.Any(), 1, "adv_garage").Return(nil, nil)
				bindingRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, b *domain.ServerIP) (*domain.ServerIP, error) {
						assert.NotEmpty(t, b.LicenseKey)
						b.ID = 1
						return b, nil
					})
			},
			check: func(t *testing.T, binding *domain.ServerIP) {
				assert.Equal(t, "203.0.113.7", binding.IPAddress)
				assert.False(t, binding.IsVerified)
			},
		},
		{
			name:      "Changing address resets verification",
			ipAddress: "203.0.113.8",
			prepareMock: func() {
				ownedScript(scriptRepo, purchaseRepo)
				bindingRepo.EXPECT().FindByUserAndResource(gomock.Any(), 1, "adv_garage").Return(&domain.ServerIP{
					ID: 1, UserID: 1, ResourceName: "adv_garage",
					IPAddress: "203.0.113.7", IsActive: true, IsVerified: true,
				}, nil)
				bindingRepo.EXPECT().UpdateAddress(gomock.Any(), 1, "203.0.113.8").Return(nil)
			},
			check: func(t *testing.T, binding *domain.ServerIP) {
				assert.Equal(t, "203.0.113.8", binding.IPAddress)
				assert.False(t, binding.IsActive)
				assert.False(t, binding.IsVerified)
			},
		},
		{
			name:      "Same address is a no-op",
			ipAddress: "203.0.113.7",
			prepareMock: func() {
				ownedScript(scriptRepo, purchaseRepo)
				bindingRepo.EXPECT().FindByUserAndResource(gomock.Any(), 1, "adv_garage").Return(&domain.ServerIP{
					ID: 1, IPAddress: "203.0.113.7", IsActive: true, IsVerified: true,
				}, nil)
			},
			check: func(t *testing.T, binding *domain.ServerIP) {
				assert.True(t, binding.IsVerified)
			},
		},
		{
			name:          "Invalid address",
			ipAddress:     "not-an-ip",
			expectedError: ErrInvalidIPAddress,
		},
		{
			name:      "Purchase required",
			ipAddress: "203.0.113.7",
			prepareMock: func() {
				scriptRepo.EXPECT().FindByResourceName(gomock.Any(), "adv_garage").Return(&domain.Script{ID: 10}, nil)
				purchaseRepo.EXPECT().FindByUserAndScript(gomock.Any(), 1, 10).Return(nil, nil)
			},
			expectedError: ErrPurchaseRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			binding, err := service.SetServerIP(context.Background(), 1, "adv_garage", tt.ipAddress)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				tt.check(t, binding)
			}
		})
	}
}

func TestVerify(t *testing.T) {
	service, bindingRepo, _, _ := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Matching binding is activated and stamped",
			prepareMock: func() {
				bindingRepo.EXPECT().FindByResourceAndIP(gomock.Any(), "adv_garage", "203.0.113.7").Return(&domain.ServerIP{
					ID: 1, ResourceName: "adv_garage", IPAddress: "203.0.113.7",
				}, nil)
				bindingRepo.EXPECT().MarkVerified(gomock.Any(), 1, gomock.Any()).Return(nil)
			},
		},
		{
			name: "No binding for this address",
			prepareMock: func() {
				bindingRepo.EXPECT().FindByResourceAndIP(gomock.Any(), "adv_garage", "203.0.113.7").Return(nil, nil)
			},
			expectedError: ErrBindingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			binding, err := service.Verify(context.Background(), "adv_garage", "203.0.113.7", "srv-eu-01")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.True(t, binding.IsActive)
				assert.True(t, binding.IsVerified)
				assert.WithinDuration(t, time.Now(), *binding.LastActive, time.Minute)
			}
		})
	}
}

func TestVerifyKey(t *testing.T) {
	service, bindingRepo, _, _ := NewMock(t)
	tests := []struct {
		name          string
		ipAddress     string
		prepareMock   func()
		expectedError error
	}{
		{
			name:      "Key and address match",
			ipAddress: "203.0.113.7",
			prepareMock: func() {
				bindingRepo.EXPECT().FindByLicenseKey(gomock.Any(), "key-1").Return(&domain.ServerIP{
					ID: 1, ResourceName: "adv_garage", IPAddress: "203.0.113.7", LicenseKey: "key-1",
				}, nil)
				bindingRepo.EXPECT().FindByResourceAndIP(gomock.Any(), "adv_garage", "203.0.113.7").Return(&domain.ServerIP{
					ID: 1, ResourceName: "adv_garage", IPAddress: "203.0.113.7",
				}, nil)
				bindingRepo.EXPECT().MarkVerified(gomock.Any(), 1, gomock.Any()).Return(nil)
			},
		},
		{
			name:      "Key valid but address moved",
			ipAddress: "203.0.113.99",
			prepareMock: func() {
				bindingRepo.EXPECT().FindByLicenseKey(gomock.Any(), "key-1").Return(&domain.ServerIP{
					ID: 1, ResourceName: "adv_garage", IPAddress: "203.0.113.7", LicenseKey: "key-1",
				}, nil)
			},
			expectedError: ErrBindingNotFound,
		},
		{
			name:      "Unknown key",
			ipAddress: "203.0.113.7",
			prepareMock: func() {
				bindingRepo.EXPECT().FindByLicenseKey(gomock.Any(), "key-1").Return(nil, nil)
			},
			expectedError: ErrBindingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			_, err := service.VerifyKey(context.Background(), "key-1", tt.ipAddress, "srv-eu-01")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeDownload(t *testing.T) {
	versions := []domain.ScriptVersion{
		{ID: 2, ScriptID: 10, Version: "1.2.0", DownloadURL: "https://cdn.example.com/adv_garage/1.2.0.zip"},
		{ID: 1, ScriptID: 10, Version: "1.0.0", DownloadURL: "https://cdn.example.com/adv_garage/1.0.0.zip"},
	}

	service, bindingRepo, purchaseRepo, scriptRepo := NewMock(t)
	tests := []struct {
		name          string
		version       string
		prepareMock   func()
		expectedURL   string
		expectedError error
	}{
		{
			name:    "No version returns the latest",
			version: "",
			prepareMock: func() {
				ownedScript(scriptRepo, purchaseRepo)
				bindingRepo.EXPECT().FindByUserAndResource(gomock.Any(), 1, "adv_garage").Return(&domain.ServerIP{
					ID: 1, IsVerified: true,
				}, nil)
				scriptRepo.EXPECT().FindVersions(gomock.Any(), 10).Return(versions, nil)
			},
			expectedURL: "https://cdn.example.com/adv_garage/1.2.0.zip",
		},
		{
			name:    "Specific version",
			version: "1.0.0",
			prepareMock: func() {
				ownedScript(scriptRepo, purchaseRepo)
				bindingRepo.EXPECT().FindByUserAndResource(gomock.Any(), 1, "adv_garage").Return(&domain.ServerIP{
					ID: 1, IsVerified: true,
				}, nil)
				scriptRepo.EXPECT().FindVersions(gomock.Any(), 10).Return(versions, nil)
			},
			expectedURL: "https://cdn.example.com/adv_garage/1.0.0.zip",
		},
		{
			name:    "Unknown version",
			version: "9.9.9",
			prepareMock: func() {
				ownedScript(scriptRepo, purchaseRepo)
				bindingRepo.EXPECT().FindByUserAndResource(gomock.Any(), 1, "adv_garage").Return(&domain.ServerIP{
					ID: 1, IsVerified: true,
				}, nil)
				scriptRepo.EXPECT().FindVersions(gomock.Any(), 10).Return(versions, nil)
			},
			expectedError: ErrVersionNotFound,
		},
		{
			name:    "Unverified binding blocks the download",
			version: "",
			prepareMock: func() {
				ownedScript(scriptRepo, purchaseRepo)
				bindingRepo.EXPECT().FindByUserAndResource(gomock.Any(), 1, "adv_garage").Return(&domain.ServerIP{
					ID: 1, IsVerified: false,
				}, nil)
			},
			expectedError: ErrNotVerified,
		},
		{
			name:    "No binding at all",
			version: "",
			prepareMock: func() {
				ownedScript(scriptRepo, purchaseRepo)
				bindingRepo.EXPECT().FindByUserAndResource(gomock.Any(), 1, "adv_garage").Return(nil, nil)
			},
			expectedError: ErrNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			url, err := service.AuthorizeDownload(context.Background(), 1, "adv_garage", tt.version)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedURL, url)
			}
		})
	}
}
