package handlers

import (
	"net/http"

	_ "github.com/alphapoints/platform/docs"
	escrowhandlers "github.com/alphapoints/platform/internal/handlers/escrow"
	ledgerhandlers "github.com/alphapoints/platform/internal/handlers/ledger"
	oraclehandlers "github.com/alphapoints/platform/internal/handlers/oracle"
	partnerhandlers "github.com/alphapoints/platform/internal/handlers/partner"
	withdrawalhandlers "github.com/alphapoints/platform/internal/handlers/withdrawals"
	"github.com/alphapoints/platform/internal/service"
	"github.com/alphapoints/platform/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type LedgerHandler interface {
	Earn(w http.ResponseWriter, r *http.Request)
	Spend(w http.ResponseWriter, r *http.Request)
	Lock(w http.ResponseWriter, r *http.Request)
	Unlock(w http.ResponseWriter, r *http.Request)
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetSupply(w http.ResponseWriter, r *http.Request)
	PreviewPoints(w http.ResponseWriter, r *http.Request)
	GetEvents(w http.ResponseWriter, r *http.Request)
}

type EscrowHandler interface {
	CreateVault(w http.ResponseWriter, r *http.Request)
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetVault(w http.ResponseWriter, r *http.Request)
}

type OracleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateRate(w http.ResponseWriter, r *http.Request)
	UpdateThreshold(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Convert(w http.ResponseWriter, r *http.Request)
}

type PartnerHandler interface {
	Genesis(w http.ResponseWriter, r *http.Request)
	IssueToken(w http.ResponseWriter, r *http.Request)
	Mint(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	StoreTicket(w http.ResponseWriter, r *http.Request)
	HasTicket(w http.ResponseWriter, r *http.Request)
	GetTicket(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	LedgerHandler     LedgerHandler
	EscrowHandler     EscrowHandler
	OracleHandler     OracleHandler
	PartnerHandler    PartnerHandler
	WithdrawalHandler WithdrawalHandler
}

func New(s *service.Services, genesisSecret string) *Handlers {
	return &Handlers{
		LedgerHandler:     ledgerhandlers.New(s.LedgerService, s.EventService, s.CapService),
		EscrowHandler:     escrowhandlers.New(s.EscrowService, s.CapService),
		OracleHandler:     oraclehandlers.New(s.OracleService, s.CapService),
		PartnerHandler:    partnerhandlers.New(s.CapService, genesisSecret),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService, s.CapService),
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
	r.Route("/api", func(r chi.Router) {
		r.Route("/partner", func(r chi.Router) {
			r.Post("/genesis", h.PartnerHandler.Genesis)
			r.Post("/token", h.PartnerHandler.IssueToken)

			r.Group(func(r chi.Router) {
				r.Use(auth.CapabilityMiddleware)
				r.Post("/mint", h.PartnerHandler.Mint)
				r.Post("/transfer", h.PartnerHandler.Transfer)
				r.Post("/revoke", h.PartnerHandler.Revoke)
			})
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/balance/{accountID}", h.LedgerHandler.GetBalance)
			r.Get("/supply", h.LedgerHandler.GetSupply)
			r.Get("/preview", h.LedgerHandler.PreviewPoints)

			r.Group(func(r chi.Router) {
				r.Use(auth.CapabilityMiddleware)
				r.Post("/earn", h.LedgerHandler.Earn)
				r.Post("/spend", h.LedgerHandler.Spend)
				r.Post("/lock", h.LedgerHandler.Lock)
				r.Post("/unlock", h.LedgerHandler.Unlock)
			})
		})

		r.Route("/escrow", func(r chi.Router) {
			r.Get("/vaults/{assetType}", h.EscrowHandler.GetVault)

			r.Group(func(r chi.Router) {
				r.Use(auth.CapabilityMiddleware)
				r.Post("/vaults", h.EscrowHandler.CreateVault)
				r.Post("/deposit", h.EscrowHandler.Deposit)
				r.Post("/withdraw", h.EscrowHandler.Withdraw)
			})
		})

		r.Route("/oracle", func(r chi.Router) {
			r.Get("/", h.OracleHandler.Get)
			r.Get("/convert", h.OracleHandler.Convert)

			r.Group(func(r chi.Router) {
				r.Use(auth.CapabilityMiddleware)
				r.Post("/", h.OracleHandler.Create)
				r.Put("/rate", h.OracleHandler.UpdateRate)
				r.Put("/threshold", h.OracleHandler.UpdateThreshold)
			})
		})

		r.Route("/withdrawals", func(r chi.Router) {
			r.Get("/{stakeID}", h.WithdrawalHandler.GetTicket)
			r.Get("/{stakeID}/exists", h.WithdrawalHandler.HasTicket)

			r.Group(func(r chi.Router) {
				r.Use(auth.CapabilityMiddleware)
				r.Post("/", h.WithdrawalHandler.StoreTicket)
			})
		})

		r.Get("/events", h.LedgerHandler.GetEvents)
	})

	return r
}
