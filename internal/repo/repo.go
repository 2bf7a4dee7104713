package repo

import (
	"github.com/alphapoints/platform/internal/pg"
	caprepo "github.com/alphapoints/platform/internal/repo/capability-repo"
	escrowrepo "github.com/alphapoints/platform/internal/repo/escrow-repo"
	eventrepo "github.com/alphapoints/platform/internal/repo/event-repo"
	ledgerrepo "github.com/alphapoints/platform/internal/repo/ledger-repo"
	oraclerepo "github.com/alphapoints/platform/internal/repo/oracle-repo"
	withdrawalrepo "github.com/alphapoints/platform/internal/repo/withdrawal-repo"
	"github.com/alphapoints/platform/internal/service/capservice"
	"github.com/alphapoints/platform/internal/service/ledgerservice"
	"github.com/alphapoints/platform/internal/service/oracleservice"
)

// EventRepo, EscrowRepo and WithdrawalRepo stay concrete: the event log and
// the escrow/ticket tables are shared between the services and the
// reconciler, which see them through different interfaces.
type Repositories struct {
	LedgerRepo     ledgerservice.Repo
	CapRepo        capservice.Repo
	OracleRepo     oracleservice.Repo
	EscrowRepo     *escrowrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	EventRepo      *eventrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	ledgerRepo := ledgerrepo.New(conn, txManager)
	capRepo := caprepo.New(conn)
	oracleRepo := oraclerepo.New(conn)
	escrowRepo := escrowrepo.New(conn, txManager)
	withdrawalRepo := withdrawalrepo.New(conn)
	eventRepo := eventrepo.New(conn)

	return &Repositories{
		LedgerRepo:     ledgerRepo,
		CapRepo:        capRepo,
		OracleRepo:     oracleRepo,
		EscrowRepo:     escrowRepo,
		WithdrawalRepo: withdrawalRepo,
		EventRepo:      eventRepo,
	}
}
