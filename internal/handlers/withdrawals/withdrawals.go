package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/dto"
	"github.com/alphapoints/platform/internal/service/capservice"
	"github.com/alphapoints/platform/internal/service/withdrawalservice"
	"github.com/alphapoints/platform/pkg/auth"
	"github.com/alphapoints/platform/pkg/utils"
)

type Service interface {
	StorePendingWithdrawalInfo(ctx context.Context, cap capservice.PartnerCap, ticket *domain.WithdrawalTicket) (*domain.WithdrawalTicket, error)
	HasPendingWithdrawalInfo(ctx context.Context, stakeID string) (bool, error)
	GetPendingWithdrawalExpectedAmount(ctx context.Context, stakeID string) (uint64, error)
}

type CapResolver interface {
	ResolvePartner(ctx context.Context, capID string) (capservice.PartnerCap, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
	capResolver       CapResolver
}

func New(withdrawalService Service, capResolver CapResolver) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
		capResolver:       capResolver,
	}
}

// StoreTicket godoc
//
//	@Summary		Record an expected withdrawal amount for an in-flight unstake
//	@Description	At most one ticket may exist per stake id; a duplicate is rejected.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StoreTicketRequestDTO	true	"Ticket payload"
//	@Success		200		{object}	dto.TicketResponseDTO		"Stored ticket"
//	@Failure		401		{object}	utils.Response				"Missing or revoked capability"
//	@Failure		409		{object}	utils.Response				"Ticket already recorded for stake"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) StoreTicket(w http.ResponseWriter, r *http.Request) {
	capID, _ := r.Context().Value(auth.CapabilityIDKey).(string)
	cap, err := h.capResolver.ResolvePartner(r.Context(), capID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.StoreTicketRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ticket, err := h.withdrawalService.StorePendingWithdrawalInfo(r.Context(), cap, &domain.WithdrawalTicket{
		StakeID:        req.StakeID,
		AccountID:      req.AccountID,
		AssetType:      req.AssetType,
		ExpectedAmount: req.ExpectedAmount,
		MaturesAt:      req.MaturesAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrDuplicateTicket):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TicketResponseDTO{
		StakeID:        ticket.StakeID,
		ExpectedAmount: ticket.ExpectedAmount,
		MaturesAt:      ticket.MaturesAt,
	})
}

// HasTicket godoc
//
//	@Summary		Check whether a pending withdrawal is recorded for a stake
//	@Tags			Withdrawals
//	@Produce		json
//	@Param			stakeID	path		string					true	"Stake id"
//	@Success		200		{object}	dto.HasTicketResponseDTO	"Existence flag"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/withdrawals/{stakeID}/exists [get]
func (h *WithdrawalHandler) HasTicket(w http.ResponseWriter, r *http.Request) {
	stakeID := chi.URLParam(r, "stakeID")
	exists, err := h.withdrawalService.HasPendingWithdrawalInfo(r.Context(), stakeID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HasTicketResponseDTO{Exists: exists})
}

// GetTicket godoc
//
//	@Summary		Get the expected amount recorded for a stake
//	@Tags			Withdrawals
//	@Produce		json
//	@Param			stakeID	path		string				true	"Stake id"
//	@Success		200		{object}	dto.TicketResponseDTO	"Recorded ticket"
//	@Failure		404		{object}	utils.Response			"No pending withdrawal for stake"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/withdrawals/{stakeID} [get]
func (h *WithdrawalHandler) GetTicket(w http.ResponseWriter, r *http.Request) {
	stakeID := chi.URLParam(r, "stakeID")
	amount, err := h.withdrawalService.GetPendingWithdrawalExpectedAmount(r.Context(), stakeID)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrTicketNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TicketResponseDTO{
		StakeID:        stakeID,
		ExpectedAmount: amount,
	})
}
