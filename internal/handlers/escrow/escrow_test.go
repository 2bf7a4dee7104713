package escrow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/dto"
	"github.com/alphapoints/platform/internal/service/capservice"
	escrowservice "github.com/alphapoints/platform/internal/service/escrowservice"
	"github.com/alphapoints/platform/pkg/auth"
)

func NewMock(t *testing.T) (*EscrowHandler, *MockService, *MockCapResolver) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	caps := NewMockCapResolver(ctrl)
	handler := New(service, caps)
	defer ctrl.Finish()
	return handler, service, caps
}

func capRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	}
	return r.WithContext(context.WithValue(r.Context(), auth.CapabilityIDKey, "cap-1"))
}

func TestCreateVaultHandler(t *testing.T) {
	handler, service, caps := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Vault created",
			body: `{"asset_type":"STAKED_SOL"}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, nil)
				service.EXPECT().
					CreateVault(gomock.Any(), capservice.GovernCap{}, "STAKED_SOL").
					Return(&domain.Vault{AssetType: "STAKED_SOL", Balance: 0}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing capability",
			body: `{"asset_type":"STAKED_SOL"}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, capservice.ErrUnauthorized)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name: "Vault already exists",
			body: `{"asset_type":"STAKED_SOL"}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, nil)
				service.EXPECT().
					CreateVault(gomock.Any(), capservice.GovernCap{}, "STAKED_SOL").
					Return(nil, escrowservice.ErrVaultExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "vault already exists",
		},
		{
			name: "Internal server error",
			body: `{"asset_type":"STAKED_SOL"}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, nil)
				service.EXPECT().
					CreateVault(gomock.Any(), capservice.GovernCap{}, "STAKED_SOL").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.CreateVault(w, capRequest(http.MethodPost, "/vaults", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDepositHandler(t *testing.T) {
	handler, service, caps := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.VaultResponseDTO
	}{
		{
			name: "Successful deposit",
			body: `{"asset_type":"STAKED_SOL","value":1000}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, nil)
				service.EXPECT().
					Deposit(gomock.Any(), capservice.GovernCap{}, "STAKED_SOL", uint64(1000)).
					Return(&domain.Vault{AssetType: "STAKED_SOL", Balance: 1000}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.VaultResponseDTO{AssetType: "STAKED_SOL", Balance: 1000},
		},
		{
			name: "Vault not found",
			body: `{"asset_type":"UNKNOWN","value":1000}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, nil)
				service.EXPECT().
					Deposit(gomock.Any(), capservice.GovernCap{}, "UNKNOWN", uint64(1000)).
					Return(nil, escrowservice.ErrVaultNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Deposit overflows vault",
			body: `{"asset_type":"STAKED_SOL","value":1000}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, nil)
				service.EXPECT().
					Deposit(gomock.Any(), capservice.GovernCap{}, "STAKED_SOL", uint64(1000)).
					Return(nil, escrowservice.ErrVaultOverflow)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Deposit(w, capRequest(http.MethodPost, "/deposit", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.VaultResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestWithdrawHandler(t *testing.T) {
	handler, service, caps := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful withdrawal",
			body: `{"asset_type":"STAKED_SOL","amount":400,"recipient":"0x9f8e7d"}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, nil)
				service.EXPECT().
					Withdraw(gomock.Any(), capservice.GovernCap{}, "STAKED_SOL", uint64(400), "0x9f8e7d").
					Return(&domain.Vault{AssetType: "STAKED_SOL", Balance: 600}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			body: `{"asset_type":"STAKED_SOL","amount":400,"recipient":"0x9f8e7d"}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, nil)
				service.EXPECT().
					Withdraw(gomock.Any(), capservice.GovernCap{}, "STAKED_SOL", uint64(400), "0x9f8e7d").
					Return(nil, escrowservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "insufficient vault funds",
		},
		{
			name: "Invalid request body",
			body: `{"asset_type":"STAKED_SOL","amount":invalid}`,
			prepareMock: func() {
				caps.EXPECT().ResolveGovern(gomock.Any(), "cap-1").Return(capservice.GovernCap{}, nil)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Withdraw(w, capRequest(http.MethodPost, "/withdraw", tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetVaultHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.VaultResponseDTO
	}{
		{
			name: "Vault total returned",
			prepareMock: func() {
				service.EXPECT().TotalValue(gomock.Any(), "STAKED_SOL").Return(uint64(1500), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.VaultResponseDTO{AssetType: "STAKED_SOL", Balance: 1500},
		},
		{
			name: "Vault not found",
			prepareMock: func() {
				service.EXPECT().TotalValue(gomock.Any(), "STAKED_SOL").Return(uint64(0), escrowservice.ErrVaultNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/vaults/STAKED_SOL", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("assetType", "STAKED_SOL")
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()
			handler.GetVault(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.VaultResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
