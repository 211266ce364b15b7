package service

import (
	"time"

	"github.com/velmoria/scriptstore/internal/config"
	"github.com/velmoria/scriptstore/internal/events"
	adminhandlers "github.com/velmoria/scriptstore/internal/handlers/admin"
	authhandlers "github.com/velmoria/scriptstore/internal/handlers/auth"
	paymenthandlers "github.com/velmoria/scriptstore/internal/handlers/payments"
	purchasehandlers "github.com/velmoria/scriptstore/internal/handlers/purchases"
	scripthandlers "github.com/velmoria/scriptstore/internal/handlers/scripts"
	serveriphandlers "github.com/velmoria/scriptstore/internal/handlers/serverip"
	webhookhandlers "github.com/velmoria/scriptstore/internal/handlers/webhooks"
	"github.com/velmoria/scriptstore/internal/identity"
	"github.com/velmoria/scriptstore/internal/pg"
	"github.com/velmoria/scriptstore/internal/repo"
	"github.com/velmoria/scriptstore/internal/service/adminservice"
	"github.com/velmoria/scriptstore/internal/service/authservice"
	"github.com/velmoria/scriptstore/internal/service/catalogservice"
	"github.com/velmoria/scriptstore/internal/service/ledgerservice"
	"github.com/velmoria/scriptstore/internal/service/licenseservice"
	"github.com/velmoria/scriptstore/internal/service/paymentservice"
	"github.com/velmoria/scriptstore/internal/service/purchaseservice"
	"github.com/velmoria/scriptstore/internal/session"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
)

type Services struct {
	AuthService     authhandlers.Service
	CatalogService  scripthandlers.Service
	PaymentService  paymenthandlers.Service
	PurchaseService purchasehandlers.Service
	LicenseService  serveriphandlers.Service
	Membership      webhookhandlers.MembershipService
	ProcessorEvents webhookhandlers.PaymentEventService
	AdminService    adminhandlers.Service
	PaymentReview   adminhandlers.PaymentReviewService
	Downloads       scripthandlers.DownloadService
	Roles           pkgauth.RoleResolver
}

func New(cfg *config.Config, repos *repo.Repositories, txManager pg.TXManager, cache session.Cache, publisher events.Publisher, provider identity.Provider, jwtService pkgauth.JWTServiceInterface) *Services {
	ledgerService := ledgerservice.New(repos.LedgerRepo, cache)
	catalogService := catalogservice.New(repos.ScriptRepo, repos.PackageRepo)
	paymentService := paymentservice.New(repos.PaymentRepo, repos.PackageRepo, ledgerService, txManager, publisher, cfg.DepositBonus)
	purchaseService := purchaseservice.New(repos.PurchaseRepo, repos.ScriptRepo, ledgerService, txManager, publisher)
	licenseService := licenseservice.New(repos.ServerIPRepo, repos.PurchaseRepo, repos.ScriptRepo)
	authService := authservice.New(repos.UserRepo, provider, &pkgauth.HashService{}, jwtService, cache,
		time.Duration(cfg.TokenTTLMin)*time.Minute)
	adminService := adminservice.New(repos.UserRepo, repos.ScriptRepo, repos.PaymentRepo,
		repos.PurchaseRepo, repos.PackageRepo, ledgerService, txManager, cache)

	return &Services{
		AuthService:     authService,
		CatalogService:  catalogService,
		PaymentService:  paymentService,
		PurchaseService: purchaseService,
		LicenseService:  licenseService,
		Membership:      authService,
		ProcessorEvents: paymentService,
		AdminService:    adminService,
		PaymentReview:   paymentService,
		Downloads:       licenseService,
		Roles:           authService,
	}
}
