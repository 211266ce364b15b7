package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/velmoria/scriptstore/docs"
	"github.com/velmoria/scriptstore/internal/config"
	"github.com/velmoria/scriptstore/internal/domain"
	adminhandlers "github.com/velmoria/scriptstore/internal/handlers/admin"
	authhandlers "github.com/velmoria/scriptstore/internal/handlers/auth"
	paymenthandlers "github.com/velmoria/scriptstore/internal/handlers/payments"
	purchasehandlers "github.com/velmoria/scriptstore/internal/handlers/purchases"
	scripthandlers "github.com/velmoria/scriptstore/internal/handlers/scripts"
	serveriphandlers "github.com/velmoria/scriptstore/internal/handlers/serverip"
	webhookhandlers "github.com/velmoria/scriptstore/internal/handlers/webhooks"
	"github.com/velmoria/scriptstore/internal/metrics"
	"github.com/velmoria/scriptstore/internal/service"
	"github.com/velmoria/scriptstore/pkg/auth"
)

type AuthHandler interface {
	Exchange(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type ScriptHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Packages(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PurchaseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type ServerIPHandler interface {
	Set(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	VerifyKey(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	Payment(w http.ResponseWriter, r *http.Request)
	Membership(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListUsers(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
	ListScripts(w http.ResponseWriter, r *http.Request)
	GetScript(w http.ResponseWriter, r *http.Request)
	CreateScript(w http.ResponseWriter, r *http.Request)
	UpdateScript(w http.ResponseWriter, r *http.Request)
	DeleteScript(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	ApprovePayment(w http.ResponseWriter, r *http.Request)
	RejectPayment(w http.ResponseWriter, r *http.Request)
	ListPurchases(w http.ResponseWriter, r *http.Request)
	ListPackages(w http.ResponseWriter, r *http.Request)
	CreatePackage(w http.ResponseWriter, r *http.Request)
	UpdatePackage(w http.ResponseWriter, r *http.Request)
	DeletePackage(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	ScriptHandler   ScriptHandler
	PaymentHandler  PaymentHandler
	PurchaseHandler PurchaseHandler
	ServerIPHandler ServerIPHandler
	WebhookHandler  WebhookHandler
	AdminHandler    AdminHandler

	jwtService auth.JWTServiceInterface
	roles      auth.RoleResolver
}

func New(cfg *config.Config, s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		ScriptHandler:   scripthandlers.New(s.CatalogService, s.Downloads),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		PurchaseHandler: purchasehandlers.New(s.PurchaseService),
		ServerIPHandler: serveriphandlers.New(s.LicenseService),
		WebhookHandler:  webhookhandlers.New(s.ProcessorEvents, s.Membership, cfg.PaymentWebhookSecret, cfg.MembershipPublicKey),
		AdminHandler:    adminhandlers.New(s.AdminService, s.PaymentReview),
		jwtService:      jwtService,
		roles:           s.Roles,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/exchange", h.AuthHandler.Exchange)
			r.Post("/login", h.AuthHandler.Login)
			r.Group(func(r chi.Router) {
				r.Use(auth.Authenticate(h.jwtService))
				r.Get("/session", h.AuthHandler.Session)
			})
		})

		r.Get("/scripts", h.ScriptHandler.List)
		r.Get("/scripts/{resourceName}", h.ScriptHandler.Get)
		r.Get("/points-packages", h.ScriptHandler.Packages)

		// Called by game servers and external processors, no session.
		r.Route("/license", func(r chi.Router) {
			r.Post("/verify", h.ServerIPHandler.Verify)
			r.Post("/verify-key", h.ServerIPHandler.VerifyKey)
		})
		r.Route("/webhooks", func(r chi.Router) {
			r.Post("/payment", h.WebhookHandler.Payment)
			r.Post("/membership", h.WebhookHandler.Membership)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate(h.jwtService))

			r.Get("/scripts/{resourceName}/download", h.ScriptHandler.Download)
			r.Route("/payments", func(r chi.Router) {
				r.Post("/", h.PaymentHandler.Create)
				r.Get("/", h.PaymentHandler.List)
			})
			r.Route("/purchases", func(r chi.Router) {
				r.Post("/", h.PurchaseHandler.Create)
				r.Get("/", h.PurchaseHandler.List)
			})
			r.Route("/server-ips", func(r chi.Router) {
				r.Put("/", h.ServerIPHandler.Set)
				r.Get("/", h.ServerIPHandler.List)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(
				auth.Authenticate(h.jwtService),
				auth.RequireRole(h.roles, domain.RoleAdmin, domain.RoleSuperAdmin),
			)

			r.Get("/dashboard", h.AdminHandler.Dashboard)
			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListUsers)
				r.Patch("/{id}", h.AdminHandler.UpdateUser)
			})
			r.Route("/scripts", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListScripts)
				r.Post("/", h.AdminHandler.CreateScript)
				r.Get("/{id}", h.AdminHandler.GetScript)
				r.Put("/{id}", h.AdminHandler.UpdateScript)
				r.Delete("/{id}", h.AdminHandler.DeleteScript)
			})
			r.Route("/payments", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListPayments)
				r.Post("/{id}/approve", h.AdminHandler.ApprovePayment)
				r.Post("/{id}/reject", h.AdminHandler.RejectPayment)
			})
			r.Get("/purchases", h.AdminHandler.ListPurchases)
			r.Route("/points-packages", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListPackages)
				r.Post("/", h.AdminHandler.CreatePackage)
				r.Put("/{id}", h.AdminHandler.UpdatePackage)
				r.Delete("/{id}", h.AdminHandler.DeletePackage)
			})
		})
	})

	return r
}
