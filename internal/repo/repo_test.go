package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	ledgerrepo "github.com/velmoria/scriptstore/internal/repo/ledger-repo"
	packagerepo "github.com/velmoria/scriptstore/internal/repo/package-repo"
	paymentrepo "github.com/velmoria/scriptstore/internal/repo/payment-repo"
	purchaserepo "github.com/velmoria/scriptstore/internal/repo/purchase-repo"
	scriptrepo "github.com/velmoria/scriptstore/internal/repo/script-repo"
	serveriprepo "github.com/velmoria/scriptstore/internal/repo/serverip-repo"
	userrepo "github.com/velmoria/scriptstore/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.ScriptRepo)
	assert.NotNil(t, repo.PaymentRepo)
	assert.NotNil(t, repo.PurchaseRepo)
	assert.NotNil(t, repo.ServerIPRepo)
	assert.NotNil(t, repo.PackageRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &scriptrepo.Repository{}, repo.ScriptRepo)
	assert.IsType(t, &paymentrepo.Repository{}, repo.PaymentRepo)
	assert.IsType(t, &purchaserepo.Repository{}, repo.PurchaseRepo)
	assert.IsType(t, &serveriprepo.Repository{}, repo.ServerIPRepo)
	assert.IsType(t, &packagerepo.Repository{}, repo.PackageRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
