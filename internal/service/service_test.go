package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/velmoria/scriptstore/internal/config"
	"github.com/velmoria/scriptstore/internal/events"
	"github.com/velmoria/scriptstore/internal/pg"
	"github.com/velmoria/scriptstore/internal/repo"
	"github.com/velmoria/scriptstore/internal/session"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	cfg := &config.Config{TokenTTLMin: 60}
	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)
	jwtService := pkgauth.NewJWTService("test-secret")

	services := New(cfg, repos, txManager, session.NoopCache{}, events.NoopPublisher{}, nil, jwtService)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.PurchaseService)
	assert.NotNil(t, services.LicenseService)
	assert.NotNil(t, services.Membership)
	assert.NotNil(t, services.ProcessorEvents)
	assert.NotNil(t, services.AdminService)
	assert.NotNil(t, services.PaymentReview)
	assert.NotNil(t, services.Downloads)
	assert.NotNil(t, services.Roles)
}
