package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/alphapoints/platform/docs"
	escrowhandlers "github.com/alphapoints/platform/internal/handlers/escrow"
	ledgerhandlers "github.com/alphapoints/platform/internal/handlers/ledger"
	oraclehandlers "github.com/alphapoints/platform/internal/handlers/oracle"
	withdrawalhandlers "github.com/alphapoints/platform/internal/handlers/withdrawals"
	"github.com/alphapoints/platform/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		LedgerService:     ledgerhandlers.NewMockService(ctrl),
		EventService:      ledgerhandlers.NewMockEventService(ctrl),
		EscrowService:     escrowhandlers.NewMockService(ctrl),
		OracleService:     oraclehandlers.NewMockService(ctrl),
		WithdrawalService: withdrawalhandlers.NewMockService(ctrl),
	}

	h := New(services, "bootstrap-secret")
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLedgerHandler := NewMockLedgerHandler(ctrl)
	mockEscrowHandler := NewMockEscrowHandler(ctrl)
	mockOracleHandler := NewMockOracleHandler(ctrl)
	mockPartnerHandler := NewMockPartnerHandler(ctrl)
	mockWithdrawalHandler := NewMockWithdrawalHandler(ctrl)

	mockPartnerHandler.EXPECT().Genesis(gomock.Any(), gomock.Any()).AnyTimes()
	mockPartnerHandler.EXPECT().IssueToken(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetSupply(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().PreviewPoints(gomock.Any(), gomock.Any()).AnyTimes()
	mockLedgerHandler.EXPECT().GetEvents(gomock.Any(), gomock.Any()).AnyTimes()
	mockEscrowHandler.EXPECT().GetVault(gomock.Any(), gomock.Any()).AnyTimes()
	mockOracleHandler.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	mockOracleHandler.EXPECT().Convert(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().GetTicket(gomock.Any(), gomock.Any()).AnyTimes()
	mockWithdrawalHandler.EXPECT().HasTicket(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		LedgerHandler:     mockLedgerHandler,
		EscrowHandler:     mockEscrowHandler,
		OracleHandler:     mockOracleHandler,
		PartnerHandler:    mockPartnerHandler,
		WithdrawalHandler: mockWithdrawalHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/partner/genesis", http.StatusOK},
		{"POST", "/api/partner/token", http.StatusOK},
		{"POST", "/api/partner/mint", http.StatusUnauthorized},
		{"POST", "/api/partner/revoke", http.StatusUnauthorized},
		{"GET", "/api/ledger/balance/0x1a2b3c", http.StatusOK},
		{"GET", "/api/ledger/supply", http.StatusOK},
		{"GET", "/api/ledger/preview", http.StatusOK},
		{"POST", "/api/ledger/earn", http.StatusUnauthorized},
		{"POST", "/api/ledger/spend", http.StatusUnauthorized},
		{"POST", "/api/ledger/lock", http.StatusUnauthorized},
		{"GET", "/api/escrow/vaults/STAKED_SOL", http.StatusOK},
		{"POST", "/api/escrow/vaults", http.StatusUnauthorized},
		{"POST", "/api/escrow/deposit", http.StatusUnauthorized},
		{"GET", "/api/oracle/", http.StatusOK},
		{"GET", "/api/oracle/convert", http.StatusOK},
		{"PUT", "/api/oracle/rate", http.StatusUnauthorized},
		{"GET", "/api/withdrawals/stake-1", http.StatusOK},
		{"GET", "/api/withdrawals/stake-1/exists", http.StatusOK},
		{"POST", "/api/withdrawals/", http.StatusUnauthorized},
		{"GET", "/api/events", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
