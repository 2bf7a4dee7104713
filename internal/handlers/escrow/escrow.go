package escrow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/dto"
	"github.com/alphapoints/platform/internal/service/capservice"
	escrowservice "github.com/alphapoints/platform/internal/service/escrowservice"
	"github.com/alphapoints/platform/pkg/auth"
	"github.com/alphapoints/platform/pkg/utils"
)

type Service interface {
	CreateVault(ctx context.Context, cap capservice.GovernCap, assetType string) (*domain.Vault, error)
	Deposit(ctx context.Context, cap capservice.GovernCap, assetType string, value uint64) (*domain.Vault, error)
	Withdraw(ctx context.Context, cap capservice.GovernCap, assetType string, amount uint64, recipient string) (*domain.Vault, error)
	TotalValue(ctx context.Context, assetType string) (uint64, error)
}

type CapResolver interface {
	ResolveGovern(ctx context.Context, capID string) (capservice.GovernCap, error)
}

type EscrowHandler struct {
	escrowService Service
	caps          CapResolver
}

func New(escrowService Service, caps CapResolver) *EscrowHandler {
	return &EscrowHandler{
		escrowService: escrowService,
		caps:          caps,
	}
}

// CreateVault godoc
//
//	@Summary		Create the escrow vault for an asset type
//	@Description	One vault per asset type; a second create for the same asset fails.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateVaultRequestDTO	true	"Vault payload"
//	@Success		200		{object}	dto.VaultResponseDTO		"Created vault"
//	@Failure		401		{object}	utils.Response				"Missing or revoked capability"
//	@Failure		409		{object}	utils.Response				"Vault already exists"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/escrow/vaults [post]
func (h *EscrowHandler) CreateVault(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolveGovern(w, r)
	if !ok {
		return
	}

	var req dto.CreateVaultRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vault, err := h.escrowService.CreateVault(r.Context(), cap, req.AssetType)
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, escrowservice.ErrVaultExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, vaultDTO(vault))
}

// Deposit godoc
//
//	@Summary		Deposit backing value into a vault
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.VaultResponseDTO	"Updated vault"
//	@Failure		401		{object}	utils.Response			"Missing or revoked capability"
//	@Failure		404		{object}	utils.Response			"Vault not found"
//	@Failure		422		{object}	utils.Response			"Deposit overflows vault balance"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/escrow/deposit [post]
func (h *EscrowHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolveGovern(w, r)
	if !ok {
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vault, err := h.escrowService.Deposit(r.Context(), cap, req.AssetType, req.Value)
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, escrowservice.ErrVaultNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, escrowservice.ErrVaultOverflow):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, vaultDTO(vault))
}

// Withdraw godoc
//
//	@Summary		Withdraw custodied value to a recipient
//	@Description	All-or-nothing: the balance decreases by exactly the amount or not at all.
//	@Tags			Escrow
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdraw payload"
//	@Success		200		{object}	dto.VaultResponseDTO	"Updated vault"
//	@Failure		401		{object}	utils.Response			"Missing or revoked capability"
//	@Failure		402		{object}	utils.Response			"Insufficient vault funds"
//	@Failure		404		{object}	utils.Response			"Vault not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/escrow/withdraw [post]
func (h *EscrowHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolveGovern(w, r)
	if !ok {
		return
	}

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vault, err := h.escrowService.Withdraw(r.Context(), cap, req.AssetType, req.Amount, req.Recipient)
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, escrowservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, escrowservice.ErrVaultNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, vaultDTO(vault))
}

// GetVault godoc
//
//	@Summary		Get custodied total for an asset type
//	@Tags			Escrow
//	@Produce		json
//	@Param			assetType	path		string	true	"Asset type"
//	@Success		200			{object}	dto.VaultResponseDTO	"Vault total"
//	@Failure		404			{object}	utils.Response			"Vault not found"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/escrow/vaults/{assetType} [get]
func (h *EscrowHandler) GetVault(w http.ResponseWriter, r *http.Request) {
	assetType := chi.URLParam(r, "assetType")

	total, err := h.escrowService.TotalValue(r.Context(), assetType)
	if err != nil {
		switch {
		case errors.Is(err, escrowservice.ErrVaultNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VaultResponseDTO{AssetType: assetType, Balance: total})
}

func (h *EscrowHandler) resolveGovern(w http.ResponseWriter, r *http.Request) (capservice.GovernCap, bool) {
	capID, _ := r.Context().Value(auth.CapabilityIDKey).(string)
	cap, err := h.caps.ResolveGovern(r.Context(), capID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return capservice.GovernCap{}, false
	}
	return cap, true
}

func vaultDTO(vault *domain.Vault) dto.VaultResponseDTO {
	return dto.VaultResponseDTO{
		AssetType: vault.AssetType,
		Balance:   vault.Balance,
	}
}
