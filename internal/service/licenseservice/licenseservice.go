package licenseservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/metrics"
	"github.com/velmoria/scriptstore/internal/service/purchaseservice"
	"github.com/velmoria/scriptstore/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=licenseservice.go -destination=mock.go -package=licenseservice

type BindingRepo interface {
	FindByUserAndResource(ctx context.Context, userID int, resourceName string) (*domain.ServerIP, error)
	FindByResourceAndIP(ctx context.Context, resourceName, ipAddress string) (*domain.ServerIP, error)
	FindByLicenseKey(ctx context.Context, licenseKey string) (*domain.ServerIP, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.ServerIP, error)
	Create(ctx context.Context, binding *domain.ServerIP) (*domain.ServerIP, error)
	UpdateAddress(ctx context.Context, id int, ipAddress string) error
	MarkVerified(ctx context.Context, id int, lastActive time.Time) error
}

type PurchaseRepo interface {
	FindByUserAndScript(ctx context.Context, userID, scriptID int) (*domain.Purchase, error)
}

type ScriptRepo interface {
	FindByResourceName(ctx context.Context, resourceName string) (*domain.Script, error)
	FindVersions(ctx context.Context, scriptID int) ([]domain.ScriptVersion, error)
}

var (
	ErrScriptNotFound   = errors.New("script not found")
	ErrPurchaseRequired = errors.New("no completed purchase for this script")
	ErrInvalidIPAddress = errors.New("invalid ip address")
	ErrBindingNotFound  = errors.New("no matching server binding")
	ErrNotVerified      = errors.New("server binding not verified")
	ErrVersionNotFound  = errors.New("script version not found")
)

type Service struct {
	bindingRepo  BindingRepo
	purchaseRepo PurchaseRepo
	scriptRepo   ScriptRepo
}

func New(bindingRepo BindingRepo, purchaseRepo PurchaseRepo, scriptRepo ScriptRepo) *Service {
	return &Service{
		bindingRepo:  bindingRepo,
		purchaseRepo: purchaseRepo,
		scriptRepo:   scriptRepo,
	}
}

func (s *Service) ownedScript(ctx context.Context, userID int, resourceName string) (*domain.Script, error) {
	script, err := s.scriptRepo.FindByResourceName(ctx, resourceName)
	if err != nil {
		return nil, err
	}
	if script == nil {
		return nil, ErrScriptNotFound
	}
	purchase, err := s.purchaseRepo.FindByUserAndScript(ctx, userID, script.ID)
	if err != nil {
		return nil, err
	}
	if purchase == nil || purchase.Status != purchaseservice.StatusCompleted {
		return nil, ErrPurchaseRequired
	}
	return script, nil
}

// SetServerIP binds a purchased script to one server address. A changed
// address always drops is_verified/is_active until the server reports in
// again.
func (s *Service) SetServerIP(ctx context.Context, userID int, resourceName, ipAddress string) (*domain.ServerIP, error) {
	if !validate.IsIPAddress(ipAddress) {
		return nil, ErrInvalidIPAddress
	}
	if _, err := s.ownedScript(ctx, userID, resourceName); err != nil {
		return nil, err
	}

	binding, err := s.bindingRepo.FindByUserAndResource(ctx, userID, resourceName)
	if err != nil {
		return nil, err
	}
	if binding == nil {
		created, err := s.bindingRepo.Create(ctx, &domain.ServerIP{
			UserID:       userID,
			ResourceName: resourceName,
			IPAddress:    ipAddress,
			LicenseKey:   uuid.NewString(),
		})
		if err != nil {
			return nil, err
		}
		zap.L().Info("server ip bound",
			zap.Int("user_id", userID), zap.String("resource_name", resourceName))
		return created, nil
	}

	if binding.IPAddress != ipAddress {
		if err := s.bindingRepo.UpdateAddress(ctx, binding.ID, ipAddress); err != nil {
			return nil, err
		}
		binding.IPAddress = ipAddress
		binding.IsActive = false
		binding.IsVerified = false
		zap.L().Info("server ip changed, verification reset",
			zap.Int("user_id", userID), zap.String("resource_name", resourceName))
	}
	return binding, nil
}

func (s *Service) GetServerIPs(ctx context.Context, userID int) ([]domain.ServerIP, error) {
	bindings, err := s.bindingRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch server ip bindings", zap.Error(err))
		return nil, err
	}
	return bindings, nil
}

// Verify handles the remote game-server callback. A binding matching
// resource and address is activated and stamped; anything else is rejected.
func (s *Service) Verify(ctx context.Context, resourceName, ipAddress, serverIdentifier string) (*domain.ServerIP, error) {
	binding, err := s.bindingRepo.FindByResourceAndIP(ctx, resourceName, ipAddress)
	if err != nil {
		return nil, err
	}
	if binding == nil {
		metrics.LicenseVerifications.WithLabelValues("rejected").Inc()
		zap.L().Info("verification rejected",
			zap.String("resource_name", resourceName), zap.String("ip_address", ipAddress),
			zap.String("server", serverIdentifier))
		return nil, ErrBindingNotFound
	}

	now := time.Now()
	if err := s.bindingRepo.MarkVerified(ctx, binding.ID, now); err != nil {
		return nil, err
	}
	binding.IsActive = true
	binding.IsVerified = true
	binding.LastActive = &now

	metrics.LicenseVerifications.WithLabelValues("verified").Inc()
	zap.L().Info("server verified",
		zap.String("resource_name", resourceName), zap.String("ip_address", ipAddress),
		zap.String("server", serverIdentifier))
	return binding, nil
}

// VerifyKey is the license-key-gated variant; the reported address must
// match the bound one.
func (s *Service) VerifyKey(ctx context.Context, licenseKey, ipAddress, serverIdentifier string) (*domain.ServerIP, error) {
	binding, err := s.bindingRepo.FindByLicenseKey(ctx, licenseKey)
	if err != nil {
		return nil, err
	}
	if binding == nil || binding.IPAddress != ipAddress {
		metrics.LicenseVerifications.WithLabelValues("rejected").Inc()
		return nil, ErrBindingNotFound
	}
	return s.Verify(ctx, binding.ResourceName, ipAddress, serverIdentifier)
}

// AuthorizeDownload is the coarse gate in front of download links: a
// COMPLETED purchase and a verified binding are both required.
func (s *Service) AuthorizeDownload(ctx context.Context, userID int, resourceName, version string) (string, error) {
	script, err := s.ownedScript(ctx, userID, resourceName)
	if err != nil {
		return "", err
	}

	binding, err := s.bindingRepo.FindByUserAndResource(ctx, userID, resourceName)
	if err != nil {
		return "", err
	}
	if binding == nil || !binding.IsVerified {
		return "", ErrNotVerified
	}

	versions, err := s.scriptRepo.FindVersions(ctx, script.ID)
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", ErrVersionNotFound
	}
	if version == "" {
		return versions[0].DownloadURL, nil
	}
	for _, v := range versions {
		if v.Version == version {
			return v.DownloadURL, nil
		}
	}
	return "", ErrVersionNotFound
}
