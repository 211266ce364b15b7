package repo

import (
	"github.com/velmoria/scriptstore/internal/pg"
	ledgerrepo "github.com/velmoria/scriptstore/internal/repo/ledger-repo"
	packagerepo "github.com/velmoria/scriptstore/internal/repo/package-repo"
	paymentrepo "github.com/velmoria/scriptstore/internal/repo/payment-repo"
	purchaserepo "github.com/velmoria/scriptstore/internal/repo/purchase-repo"
	scriptrepo "github.com/velmoria/scriptstore/internal/repo/script-repo"
	serveriprepo "github.com/velmoria/scriptstore/internal/repo/serverip-repo"
	userrepo "github.com/velmoria/scriptstore/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo     *userrepo.Repository
	LedgerRepo   *ledgerrepo.Repository
	ScriptRepo   *scriptrepo.Repository
	PaymentRepo  *paymentrepo.Repository
	PurchaseRepo *purchaserepo.Repository
	ServerIPRepo *serveriprepo.Repository
	PackageRepo  *packagerepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		ScriptRepo:   scriptrepo.New(conn),
		PaymentRepo:  paymentrepo.New(conn),
		PurchaseRepo: purchaserepo.New(conn),
		ServerIPRepo: serveriprepo.New(conn),
		PackageRepo:  packagerepo.New(conn),
	}
}
