package service

import (
	escrowhandlers "github.com/alphapoints/platform/internal/handlers/escrow"
	ledgerhandlers "github.com/alphapoints/platform/internal/handlers/ledger"
	oraclehandlers "github.com/alphapoints/platform/internal/handlers/oracle"
	withdrawalhandlers "github.com/alphapoints/platform/internal/handlers/withdrawals"

	pkgauth "github.com/alphapoints/platform/pkg/auth"

	"github.com/alphapoints/platform/internal/pg"
	"github.com/alphapoints/platform/internal/repo"
	"github.com/alphapoints/platform/internal/service/capservice"
	"github.com/alphapoints/platform/internal/service/escrowservice"
	"github.com/alphapoints/platform/internal/service/ledgerservice"
	"github.com/alphapoints/platform/internal/service/oracleservice"
	"github.com/alphapoints/platform/internal/service/withdrawalservice"
)

// CapService stays concrete because each handler carves its own resolver
// interface out of it.
type Services struct {
	LedgerService     ledgerhandlers.Service
	EventService      ledgerhandlers.EventService
	EscrowService     escrowhandlers.Service
	OracleService     oraclehandlers.Service
	WithdrawalService withdrawalhandlers.Service
	CapService        *capservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.EventRepo, txManager)
	escrowService := escrowservice.New(repo.EscrowRepo, repo.EventRepo, txManager)
	oracleService := oracleservice.New(repo.OracleRepo, repo.EventRepo, txManager)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, repo.EventRepo, txManager)
	capService := capservice.New(repo.CapRepo, repo.EventRepo, txManager, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		LedgerService:     ledgerService,
		EventService:      repo.EventRepo,
		EscrowService:     escrowService,
		OracleService:     oracleService,
		WithdrawalService: withdrawalService,
		CapService:        capService,
	}
}
