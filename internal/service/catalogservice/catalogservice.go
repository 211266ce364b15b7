package catalogservice

import (
	"context"
	"errors"

	"github.com/velmoria/scriptstore/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=catalogservice.go -destination=mock.go -package=catalogservice

type ScriptRepo interface {
	FindByResourceName(ctx context.Context, resourceName string) (*domain.Script, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Script, error)
	Count(ctx context.Context, status string) (int, error)
	FindVersions(ctx context.Context, scriptID int) ([]domain.ScriptVersion, error)
}

type PackageRepo interface {
	List(ctx context.Context, activeOnly bool) ([]domain.PointsPackage, error)
}

const (
	StatusDraft    string = "DRAFT"
	StatusActive   string = "ACTIVE"
	StatusInactive string = "INACTIVE"
)

var ErrScriptNotFound = errors.New("script not found")

type Service struct {
	scriptRepo  ScriptRepo
	packageRepo PackageRepo
}

func New(scriptRepo ScriptRepo, packageRepo PackageRepo) *Service {
	return &Service{
		scriptRepo:  scriptRepo,
		packageRepo: packageRepo,
	}
}

func (s *Service) ListScripts(ctx context.Context, limit, offset int) ([]domain.Script, int, error) {
	scripts, err := s.scriptRepo.List(ctx, StatusActive, limit, offset)
	if err != nil {
		zap.L().Error("failed to list scripts", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.scriptRepo.Count(ctx, StatusActive)
	if err != nil {
		return nil, 0, err
	}
	return scripts, total, nil
}

// GetScript returns an ACTIVE listing with its version entries attached.
// Drafts and retired scripts are invisible outside the admin console.
func (s *Service) GetScript(ctx context.Context, resourceName string) (*domain.Script, error) {
	script, err := s.scriptRepo.FindByResourceName(ctx, resourceName)
	if err != nil {
		return nil, err
	}
	if script == nil || script.Status != StatusActive {
		return nil, ErrScriptNotFound
	}
	versions, err := s.scriptRepo.FindVersions(ctx, script.ID)
	if err != nil {
		return nil, err
	}
	script.Versions = versions
	return script, nil
}

func (s *Service) ListPackages(ctx context.Context) ([]domain.PointsPackage, error) {
	pkgs, err := s.packageRepo.List(ctx, true)
	if err != nil {
		zap.L().Error("failed to list points packages", zap.Error(err))
		return nil, err
	}
	return pkgs, nil
}
