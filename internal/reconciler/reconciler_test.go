package reconciler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/alphapoints/platform/internal/config"
	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/pg"
	"github.com/alphapoints/platform/pkg/clients"
)

func NewMock(t *testing.T) (*Service, *MockTicketRepo, *MockVaultRepo, *MockLedgerRepo, *MockEventRepo, *pg.MockTXManager, *clients.MockHTTPClientI) {
	cfg := &config.Config{CustodyAddress: "http://localhost:8081"}
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ticketRepo := NewMockTicketRepo(ctrl)
	vaultRepo := NewMockVaultRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	eventRepo := NewMockEventRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	client := clients.NewMockHTTPClientI(ctrl)
	service := New(cfg, ticketRepo, vaultRepo, ledgerRepo, eventRepo, txManager, client)
	return service, ticketRepo, vaultRepo, ledgerRepo, eventRepo, txManager, client
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().
		Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func TestService_Start(t *testing.T) {
	service, _, _, _, _, _, _ := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
}

func TestService_processTickets(t *testing.T) {
	tests := []struct {
		name            string
		mockFindMatured func(ctx context.Context, now time.Time, limit uint32) ([]domain.WithdrawalTicket, error)
		mockSubmit      func(ctx context.Context, task SettlementTask) error
		ticketCount     int
	}{
		{
			name: "matured tickets dispatched to the pool",
			mockFindMatured: func(ctx context.Context, now time.Time, limit uint32) ([]domain.WithdrawalTicket, error) {
				return []domain.WithdrawalTicket{
					{StakeID: "stake-a1", AssetType: "STAKED_SOL", ExpectedAmount: 10},
					{StakeID: "stake-a2", AssetType: "STAKED_SOL", ExpectedAmount: 20},
				}, nil
			},
			mockSubmit: func(ctx context.Context, task SettlementTask) error {
				return nil
			},
			ticketCount: 2,
		},
		{
			name: "fetch failure skips the cycle",
			mockFindMatured: func(ctx context.Context, now time.Time, limit uint32) ([]domain.WithdrawalTicket, error) {
				return nil, fmt.Errorf("failed to fetch matured withdrawals")
			},
			mockSubmit: func(ctx context.Context, task SettlementTask) error {
				return nil
			},
			ticketCount: 0,
		},
		{
			name: "worker pool rejection is surfaced",
			mockFindMatured: func(ctx context.Context, now time.Time, limit uint32) ([]domain.WithdrawalTicket, error) {
				return []domain.WithdrawalTicket{
					{StakeID: "stake-b1", AssetType: "STAKED_SOL", ExpectedAmount: 10},
				}, nil
			},
			mockSubmit: func(ctx context.Context, task SettlementTask) error {
				return fmt.Errorf("failed to submit settlement to pool")
			},
			ticketCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ticketRepo := NewMockTicketRepo(ctrl)
			workerPool := NewMockSettlementPoolI(ctrl)

			ticketRepo.EXPECT().
				FindMatured(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(tt.mockFindMatured).
				Times(1)
			for i := 0; i < tt.ticketCount; i++ {
				workerPool.EXPECT().
					Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(tt.mockSubmit).
					AnyTimes()
			}

			service := &Service{
				ticketRepo: ticketRepo,
				workerPool: workerPool,
				limit:      2,
			}

			logger := zap.NewExample()
			zap.ReplaceGlobals(logger)

			service.processTickets(context.Background())
		})
	}
}

func TestService_handleTicket(t *testing.T) {
	testCases := []struct {
		name          string
		ticket        domain.WithdrawalTicket
		httpStatus    int
		responseBody  string
		settled       bool
		expectedError string
		cancelContext bool
		retryError    error
		retryHeaders  http.Header
	}{
		{
			name:         "released with matching amount settles",
			ticket:       domain.WithdrawalTicket{StakeID: "stake-1", AccountID: "0x1a2b3c", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:   http.StatusOK,
			responseBody: `{"stake_id":"stake-1","status":"RELEASED","amount":42}`,
			settled:      true,
		},
		{
			name:         "released with mismatched amount is left for operator",
			ticket:       domain.WithdrawalTicket{StakeID: "stake-2", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:   http.StatusOK,
			responseBody: `{"stake_id":"stake-2","status":"RELEASED","amount":41}`,
		},
		{
			name:         "still pending at custody",
			ticket:       domain.WithdrawalTicket{StakeID: "stake-3", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:   http.StatusOK,
			responseBody: `{"stake_id":"stake-3","status":"PENDING"}`,
		},
		{
			name:         "rejected by custody",
			ticket:       domain.WithdrawalTicket{StakeID: "stake-4", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:   http.StatusOK,
			responseBody: `{"stake_id":"stake-4","status":"REJECTED"}`,
		},
		{
			name:          "stake id mismatch in response",
			ticket:        domain.WithdrawalTicket{StakeID: "stake-5", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:    http.StatusOK,
			responseBody:  `{"stake_id":"stake-other","status":"RELEASED","amount":42}`,
			expectedError: "stake id mismatch: expected stake-5, got stake-other",
		},
		{
			name:          "context canceled",
			ticket:        domain.WithdrawalTicket{StakeID: "stake-6", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:    http.StatusOK,
			responseBody:  `{"stake_id":"stake-6","status":"PENDING"}`,
			expectedError: context.Canceled.Error(),
			cancelContext: true,
		},
		{
			name:          "transport failure after retries",
			ticket:        domain.WithdrawalTicket{StakeID: "stake-7", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:    http.StatusInternalServerError,
			expectedError: "failed to query custody for stake stake-7 after 3 retries: server error",
			retryError:    fmt.Errorf("server error"),
		},
		{
			name:          "release unknown after retries",
			ticket:        domain.WithdrawalTicket{StakeID: "stake-8", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:    http.StatusNoContent,
			expectedError: "release for stake stake-8 unknown after 3 retries",
		},
		{
			name:          "unexpected status code",
			ticket:        domain.WithdrawalTicket{StakeID: "stake-9", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:    http.StatusTeapot,
			expectedError: "unexpected status code",
		},
		{
			name:         "rate limit handling",
			ticket:       domain.WithdrawalTicket{StakeID: "stake-10", AssetType: "STAKED_SOL", ExpectedAmount: 42},
			httpStatus:   http.StatusTooManyRequests,
			retryHeaders: http.Header{"Retry-After": []string{"1"}},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			service, ticketRepo, vaultRepo, ledgerRepo, eventRepo, txManager, client := NewMock(t)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if tt.cancelContext {
				cancel()
			} else if tt.retryError != nil {
				client.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, tt.retryError).Times(3)
			} else if tt.retryHeaders != nil {
				client.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), tt.retryHeaders, nil).Times(1)
			} else if tt.httpStatus == http.StatusNoContent {
				client.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, nil).Times(3)
			} else {
				client.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(tt.httpStatus, []byte(tt.responseBody), http.Header{}, nil).Times(1)
			}

			if tt.settled {
				passthroughTx(txManager)
				vaultRepo.EXPECT().
					FindVaultForUpdate(gomock.Any(), tt.ticket.AssetType).
					Return(&domain.Vault{ID: 1, AssetType: tt.ticket.AssetType, Balance: 100}, nil).
					Times(1)
				vaultRepo.EXPECT().
					SaveVault(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, vault *domain.Vault) error {
						assert.Equal(t, uint64(100-tt.ticket.ExpectedAmount), vault.Balance)
						return nil
					}).
					Times(1)
				ledgerRepo.EXPECT().
					FindBalanceForUpdate(gomock.Any(), tt.ticket.AccountID).
					Return(&domain.Balance{AccountID: tt.ticket.AccountID, Available: 5, Locked: 50}, nil).
					Times(1)
				ledgerRepo.EXPECT().
					SaveBalance(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, balance *domain.Balance) error {
						assert.Equal(t, uint64(50-tt.ticket.ExpectedAmount), balance.Locked)
						assert.Equal(t, uint64(5), balance.Available)
						return nil
					}).
					Times(1)
				ledgerRepo.EXPECT().SupplyForUpdate(gomock.Any()).Return(uint64(1000), nil).Times(1)
				ledgerRepo.EXPECT().SaveSupply(gomock.Any(), uint64(1000-tt.ticket.ExpectedAmount)).Return(nil).Times(1)
				ticketRepo.EXPECT().Delete(gomock.Any(), tt.ticket.StakeID).Return(nil).Times(1)
				eventRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event *domain.LedgerEvent) error {
						assert.Equal(t, domain.EventTicketSettled, event.Operation)
						assert.Equal(t, tt.ticket.StakeID, event.EntityID)
						assert.Equal(t, tt.ticket.ExpectedAmount, event.Amount)
						assert.Equal(t, uint64(50-tt.ticket.ExpectedAmount), event.LockedAfter)
						return nil
					}).
					Times(1)
			}

			err := service.handleTicket(ctx, tt.ticket)

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_settle(t *testing.T) {
	t.Run("release burns the locked points with the custody decrement", func(t *testing.T) {
		service, ticketRepo, vaultRepo, ledgerRepo, eventRepo, txManager, _ := NewMock(t)
		passthroughTx(txManager)

		ticket := domain.WithdrawalTicket{StakeID: "stake-burn", AccountID: "0x9f8e7d", AssetType: "STAKED_SOL", ExpectedAmount: 500}
		vaultRepo.EXPECT().
			FindVaultForUpdate(gomock.Any(), "STAKED_SOL").
			Return(&domain.Vault{ID: 1, AssetType: "STAKED_SOL", Balance: 1000}, nil)
		vaultRepo.EXPECT().
			SaveVault(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, vault *domain.Vault) error {
				assert.Equal(t, uint64(500), vault.Balance)
				return nil
			})
		ledgerRepo.EXPECT().
			FindBalanceForUpdate(gomock.Any(), "0x9f8e7d").
			Return(&domain.Balance{AccountID: "0x9f8e7d", Available: 30, Locked: 500}, nil)
		ledgerRepo.EXPECT().
			SaveBalance(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, balance *domain.Balance) error {
				assert.Equal(t, uint64(0), balance.Locked)
				assert.Equal(t, uint64(30), balance.Available)
				return nil
			})
		ledgerRepo.EXPECT().SupplyForUpdate(gomock.Any()).Return(uint64(2000), nil)
		ledgerRepo.EXPECT().SaveSupply(gomock.Any(), uint64(1500)).Return(nil)
		ticketRepo.EXPECT().Delete(gomock.Any(), "stake-burn").Return(nil)
		eventRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.LedgerEvent) error {
				assert.Equal(t, domain.EventTicketSettled, event.Operation)
				assert.Equal(t, uint64(30), event.AvailableAfter)
				assert.Equal(t, uint64(0), event.LockedAfter)
				assert.Equal(t, "0x9f8e7d", event.Reference)
				return nil
			})

		err := service.settle(context.Background(), ticket)
		assert.NoError(t, err)
	})

	t.Run("vault cannot cover the release", func(t *testing.T) {
		service, _, vaultRepo, _, _, txManager, _ := NewMock(t)
		passthroughTx(txManager)

		ticket := domain.WithdrawalTicket{StakeID: "stake-short", AssetType: "STAKED_SOL", ExpectedAmount: 200}
		vaultRepo.EXPECT().
			FindVaultForUpdate(gomock.Any(), "STAKED_SOL").
			Return(&domain.Vault{ID: 1, AssetType: "STAKED_SOL", Balance: 100}, nil)

		err := service.settle(context.Background(), ticket)
		assert.ErrorContains(t, err, "cannot cover release")
	})

	t.Run("missing vault aborts the transaction", func(t *testing.T) {
		service, _, vaultRepo, _, _, txManager, _ := NewMock(t)
		passthroughTx(txManager)

		ticket := domain.WithdrawalTicket{StakeID: "stake-novault", AssetType: "UNKNOWN", ExpectedAmount: 10}
		vaultRepo.EXPECT().
			FindVaultForUpdate(gomock.Any(), "UNKNOWN").
			Return(nil, nil)

		err := service.settle(context.Background(), ticket)
		assert.ErrorContains(t, err, "no vault for asset type")
	})

	t.Run("insufficient locked points abort before any write", func(t *testing.T) {
		service, _, vaultRepo, ledgerRepo, _, txManager, _ := NewMock(t)
		passthroughTx(txManager)

		ticket := domain.WithdrawalTicket{StakeID: "stake-unlocked", AccountID: "0x9f8e7d", AssetType: "STAKED_SOL", ExpectedAmount: 200}
		vaultRepo.EXPECT().
			FindVaultForUpdate(gomock.Any(), "STAKED_SOL").
			Return(&domain.Vault{ID: 1, AssetType: "STAKED_SOL", Balance: 1000}, nil)
		ledgerRepo.EXPECT().
			FindBalanceForUpdate(gomock.Any(), "0x9f8e7d").
			Return(&domain.Balance{AccountID: "0x9f8e7d", Available: 500, Locked: 100}, nil)

		err := service.settle(context.Background(), ticket)
		assert.ErrorContains(t, err, "has no 200 locked points to release")
	})

	t.Run("unknown account aborts before any write", func(t *testing.T) {
		service, _, vaultRepo, ledgerRepo, _, txManager, _ := NewMock(t)
		passthroughTx(txManager)

		ticket := domain.WithdrawalTicket{StakeID: "stake-noacct", AccountID: "0xmissing", AssetType: "STAKED_SOL", ExpectedAmount: 10}
		vaultRepo.EXPECT().
			FindVaultForUpdate(gomock.Any(), "STAKED_SOL").
			Return(&domain.Vault{ID: 1, AssetType: "STAKED_SOL", Balance: 1000}, nil)
		ledgerRepo.EXPECT().
			FindBalanceForUpdate(gomock.Any(), "0xmissing").
			Return(nil, nil)

		err := service.settle(context.Background(), ticket)
		assert.ErrorContains(t, err, "locked points to release")
	})
}
