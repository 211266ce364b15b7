package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/velmoria/scriptstore/internal/config"
	"github.com/velmoria/scriptstore/internal/events"
	"github.com/velmoria/scriptstore/internal/handlers"
	"github.com/velmoria/scriptstore/internal/identity"
	"github.com/velmoria/scriptstore/internal/pg"
	"github.com/velmoria/scriptstore/internal/repo"
	"github.com/velmoria/scriptstore/internal/service"
	"github.com/velmoria/scriptstore/internal/session"
	"github.com/velmoria/scriptstore/pkg/auth"
	"github.com/velmoria/scriptstore/pkg/clients"
	"github.com/velmoria/scriptstore/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	publisher events.Publisher

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	cache := newSessionCache(ctx, cfg)
	a.publisher = newPublisher(cfg)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	provider := identity.NewDiscordClient(cfg, clients.NewHTTPClient())

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(cfg, a.repo, txManager, cache, a.publisher, provider, jwtService)
	a.api = handlers.New(cfg, a.srv, jwtService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func newSessionCache(ctx context.Context, cfg *config.Config) session.Cache {
	if cfg.RedisAddr == "" {
		zap.L().Info("redis not configured, session cache disabled")
		return session.NoopCache{}
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unreachable, session cache disabled", zap.Error(err))
		return session.NoopCache{}
	}
	return session.NewRedisCache(rdb)
}

func newPublisher(cfg *config.Config) events.Publisher {
	if cfg.AMQPURL == "" {
		zap.L().Info("amqp not configured, event publishing disabled")
		return events.NoopPublisher{}
	}
	pub, err := events.NewAMQPPublisher(cfg.AMQPURL)
	if err != nil {
		zap.L().Warn("amqp unreachable, event publishing disabled", zap.Error(err))
		return events.NoopPublisher{}
	}
	return pub
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	if a.publisher != nil {
		a.publisher.Close()
	}
	close(a.errCh)
	wg.Wait()

	return appErr
}
