package adminservice

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/pg"
	purchaserepo "github.com/velmoria/scriptstore/internal/repo/purchase-repo"
	"github.com/velmoria/scriptstore/internal/session"
	"go.uber.org/zap"
)

//go:generate mockgen -source=adminservice.go -destination=mock.go -package=adminservice

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context, search string, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context, search string) (int, error)
	UpdateRole(ctx context.Context, id int, role string) error
}

type ScriptRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Script, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Script, error)
	Count(ctx context.Context, status string) (int, error)
	Create(ctx context.Context, script *domain.Script) (*domain.Script, error)
	Update(ctx context.Context, script *domain.Script) error
	Delete(ctx context.Context, id int) error
	FindVersions(ctx context.Context, scriptID int) ([]domain.ScriptVersion, error)
	ReplaceVersions(ctx context.Context, scriptID int, versions []domain.ScriptVersion) error
}

type PaymentRepo interface {
	List(ctx context.Context, status string, limit, offset int) ([]domain.Payment, error)
	Count(ctx context.Context, status string) (int, error)
	SumApprovedAmount(ctx context.Context) (float64, error)
}

type PurchaseRepo interface {
	List(ctx context.Context, limit, offset int) ([]purchaserepo.PurchaseWithScript, error)
	Count(ctx context.Context) (int, error)
}

type PackageRepo interface {
	FindByID(ctx context.Context, id int) (*domain.PointsPackage, error)
	List(ctx context.Context, activeOnly bool) ([]domain.PointsPackage, error)
	Create(ctx context.Context, pkg *domain.PointsPackage) (*domain.PointsPackage, error)
	Update(ctx context.Context, pkg *domain.PointsPackage) error
	Delete(ctx context.Context, id int) error
}

type Ledger interface {
	AdjustTo(ctx context.Context, userID, target int, reference string) error
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrForbidden       = errors.New("insufficient rank for this operation")
	ErrInvalidRole     = errors.New("unknown role")
	ErrScriptNotFound  = errors.New("script not found")
	ErrPackageNotFound = errors.New("points package not found")
)

var validRoles = map[string]bool{
	domain.RoleUser:       true,
	domain.RoleAdmin:      true,
	domain.RoleSuperAdmin: true,
}

type DashboardStats struct {
	Users          int
	Purchases      int
	Scripts        int
	ApprovedAmount float64
}

type Service struct {
	userRepo     UserRepo
	scriptRepo   ScriptRepo
	paymentRepo  PaymentRepo
	purchaseRepo PurchaseRepo
	packageRepo  PackageRepo
	ledger       Ledger
	txManager    pg.TXManager
	cache        session.Cache
}

func New(userRepo UserRepo, scriptRepo ScriptRepo, paymentRepo PaymentRepo, purchaseRepo PurchaseRepo, packageRepo PackageRepo, ledger Ledger, txManager pg.TXManager, cache session.Cache) *Service {
	return &Service{
		userRepo:     userRepo,
		scriptRepo:   scriptRepo,
		paymentRepo:  paymentRepo,
		purchaseRepo: purchaseRepo,
		packageRepo:  packageRepo,
		ledger:       ledger,
		txManager:    txManager,
		cache:        cache,
	}
}

func (s *Service) ListUsers(ctx context.Context, search string, limit, offset int) ([]domain.User, int, error) {
	users, err := s.userRepo.List(ctx, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx, search)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateUser mutates role and/or points. A SUPER_ADMIN target, or promoting
// anyone to SUPER_ADMIN, is reserved to SUPER_ADMIN actors. Point overrides
// go through the ledger so they leave an audit row.
func (s *Service) UpdateUser(ctx context.Context, actorRole string, userID int, role *string, points *int) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role == domain.RoleSuperAdmin && actorRole != domain.RoleSuperAdmin {
		return nil, ErrForbidden
	}

	if role != nil {
		if !validRoles[*role] {
			return nil, ErrInvalidRole
		}
		if *role == domain.RoleSuperAdmin && actorRole != domain.RoleSuperAdmin {
			return nil, ErrForbidden
		}
		if err := s.userRepo.UpdateRole(ctx, userID, *role); err != nil {
			return nil, err
		}
		s.cache.Invalidate(ctx, userID)
		zap.L().Info("user role updated", zap.Int("user_id", userID), zap.String("role", *role))
	}

	if points != nil {
		if err := s.ledger.AdjustTo(ctx, userID, *points, fmt.Sprintf("admin:user:%d", userID)); err != nil {
			return nil, err
		}
	}

	return s.userRepo.FindByID(ctx, userID)
}

func (s *Service) ListScripts(ctx context.Context, status string, limit, offset int) ([]domain.Script, int, error) {
	scripts, err := s.scriptRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.scriptRepo.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return scripts, total, nil
}

func (s *Service) CreateScript(ctx context.Context, script *domain.Script) (*domain.Script, error) {
	var created *domain.Script
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.scriptRepo.Create(ctx, script)
		if err != nil {
			return err
		}
		if len(script.Versions) > 0 {
			return s.scriptRepo.ReplaceVersions(ctx, created.ID, script.Versions)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't create script", zap.Error(err))
		return nil, err
	}
	created.Versions = script.Versions
	return created, nil
}

func (s *Service) UpdateScript(ctx context.Context, script *domain.Script) (*domain.Script, error) {
	existing, err := s.scriptRepo.FindByID(ctx, script.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrScriptNotFound
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.scriptRepo.Update(ctx, script); err != nil {
			return err
		}
		return s.scriptRepo.ReplaceVersions(ctx, script.ID, script.Versions)
	})
	if err != nil {
		zap.L().Error("can't update script", zap.Error(err))
		return nil, err
	}
	return script, nil
}

func (s *Service) DeleteScript(ctx context.Context, id int) error {
	existing, err := s.scriptRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrScriptNotFound
	}
	return s.scriptRepo.Delete(ctx, id)
}

func (s *Service) GetScript(ctx context.Context, id int) (*domain.Script, error) {
	script, err := s.scriptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if script == nil {
		return nil, ErrScriptNotFound
	}
	versions, err := s.scriptRepo.FindVersions(ctx, id)
	if err != nil {
		return nil, err
	}
	script.Versions = versions
	return script, nil
}

func (s *Service) ListPayments(ctx context.Context, status string, limit, offset int) ([]domain.Payment, int, error) {
	payments, err := s.paymentRepo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paymentRepo.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

func (s *Service) ListPurchases(ctx context.Context, limit, offset int) ([]purchaserepo.PurchaseWithScript, int, error) {
	purchases, err := s.purchaseRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.purchaseRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return purchases, total, nil
}

func (s *Service) ListPackages(ctx context.Context) ([]domain.PointsPackage, error) {
	return s.packageRepo.List(ctx, false)
}

func (s *Service) CreatePackage(ctx context.Context, pkg *domain.PointsPackage) (*domain.PointsPackage, error) {
	return s.packageRepo.Create(ctx, pkg)
}

func (s *Service) UpdatePackage(ctx context.Context, pkg *domain.PointsPackage) error {
	existing, err := s.packageRepo.FindByID(ctx, pkg.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPackageNotFound
	}
	return s.packageRepo.Update(ctx, pkg)
}

func (s *Service) DeletePackage(ctx context.Context, id int) error {
	existing, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPackageNotFound
	}
	return s.packageRepo.Delete(ctx, id)
}

// Dashboard fetches the aggregate counts concurrently; the queries are
// independent reads.
func (s *Service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Users, err = s.userRepo.Count(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		stats.Purchases, err = s.purchaseRepo.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Scripts, err = s.scriptRepo.Count(ctx, "")
		return err
	})
	g.Go(func() error {
		var err error
		stats.ApprovedAmount, err = s.paymentRepo.SumApprovedAmount(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to build dashboard stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}
