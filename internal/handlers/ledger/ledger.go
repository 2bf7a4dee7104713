package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/dto"
	"github.com/alphapoints/platform/internal/service/capservice"
	ledgerservice "github.com/alphapoints/platform/internal/service/ledgerservice"
	"github.com/alphapoints/platform/pkg/auth"
	"github.com/alphapoints/platform/pkg/utils"
	"github.com/alphapoints/platform/pkg/validate"
)

type Service interface {
	Earn(ctx context.Context, cap capservice.PartnerCap, accountID string, amount uint64) (*domain.Balance, error)
	Spend(ctx context.Context, cap capservice.PartnerCap, accountID string, amount uint64, orderRef string) (*domain.Balance, error)
	Lock(ctx context.Context, cap capservice.PartnerCap, accountID string, amount uint64) (*domain.Balance, error)
	Unlock(ctx context.Context, cap capservice.PartnerCap, accountID string, amount uint64) (*domain.Balance, error)
	BalanceOf(ctx context.Context, accountID string) (*domain.Balance, error)
	Supply(ctx context.Context) (uint64, error)
}

type CapResolver interface {
	ResolvePartner(ctx context.Context, capID string) (capservice.PartnerCap, error)
}

type EventService interface {
	List(ctx context.Context, limit, offset int) ([]domain.LedgerEvent, error)
}

type LedgerHandler struct {
	ledgerService Service
	eventService  EventService
	caps          CapResolver
}

func New(ledgerService Service, eventService EventService, caps CapResolver) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		eventService:  eventService,
		caps:          caps,
	}
}

// Earn godoc
//
//	@Summary		Credit points to an account
//	@Description	Increase the available balance and global supply for the given account. Requires a partner capability.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EarnRequestDTO	true	"Earn payload"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Updated balance"
//	@Failure		401		{object}	utils.Response			"Missing or revoked capability"
//	@Failure		422		{object}	utils.Response			"Amount overflows balance or supply"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/ledger/earn [post]
func (h *LedgerHandler) Earn(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolvePartner(w, r)
	if !ok {
		return
	}

	var req dto.EarnRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.ledgerService.Earn(r.Context(), cap, req.AccountID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, ledgerservice.ErrSupplyOverflow):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceDTO(balance))
}

// Spend godoc
//
//	@Summary		Redeem points from an account
//	@Description	Decrease the available balance and global supply against a redemption order number.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpendRequestDTO	true	"Spend payload"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Updated balance"
//	@Failure		401		{object}	utils.Response			"Missing or revoked capability"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		422		{object}	utils.Response			"Invalid order number"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/ledger/spend [post]
func (h *LedgerHandler) Spend(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolvePartner(w, r)
	if !ok {
		return
	}

	var req dto.SpendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !validate.IsLuhn(req.Order) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid order number")
		return
	}

	balance, err := h.ledgerService.Spend(r.Context(), cap, req.AccountID, req.Amount, req.Order)
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceDTO(balance))
}

// Lock godoc
//
//	@Summary		Lock points against an obligation
//	@Description	Move points from available to locked; supply is unchanged.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LockRequestDTO	true	"Lock payload"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Updated balance"
//	@Failure		401		{object}	utils.Response			"Missing or revoked capability"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/ledger/lock [post]
func (h *LedgerHandler) Lock(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolvePartner(w, r)
	if !ok {
		return
	}

	var req dto.LockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.ledgerService.Lock(r.Context(), cap, req.AccountID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceDTO(balance))
}

// Unlock godoc
//
//	@Summary		Unlock previously locked points
//	@Description	Move points from locked back to available; supply is unchanged.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UnlockRequestDTO	true	"Unlock payload"
//	@Success		200		{object}	dto.BalanceResponseDTO	"Updated balance"
//	@Failure		401		{object}	utils.Response			"Missing or revoked capability"
//	@Failure		402		{object}	utils.Response			"Insufficient locked balance"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/ledger/unlock [post]
func (h *LedgerHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolvePartner(w, r)
	if !ok {
		return
	}

	var req dto.UnlockRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	balance, err := h.ledgerService.Unlock(r.Context(), cap, req.AccountID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, ledgerservice.ErrInsufficientLockedBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceDTO(balance))
}

// GetBalance godoc
//
//	@Summary		Get account balance
//	@Description	Available, locked and derived total for one account. Unknown accounts read as zero.
//	@Tags			Ledger
//	@Produce		json
//	@Param			accountID	path		string	true	"Account identifier"
//	@Success		200			{object}	dto.BalanceResponseDTO	"Account balance"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/ledger/balance/{accountID} [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountID")

	balance, err := h.ledgerService.BalanceOf(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, balanceDTO(balance))
}

// GetSupply godoc
//
//	@Summary		Get global point supply
//	@Tags			Ledger
//	@Produce		json
//	@Success		200	{object}	dto.SupplyResponseDTO	"Global supply"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/ledger/supply [get]
func (h *LedgerHandler) GetSupply(w http.ResponseWriter, r *http.Request) {
	supply, err := h.ledgerService.Supply(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SupplyResponseDTO{Supply: supply})
}

// PreviewPoints godoc
//
//	@Summary		Preview points for a stake
//	@Description	Pure accrual preview: principal and duration of zero earn zero points.
//	@Tags			Ledger
//	@Produce		json
//	@Param			principal		query		int	true	"Stake principal"
//	@Param			duration_days	query		int	true	"Stake duration in days"
//	@Param			participation	query		int	false	"Participation level"
//	@Success		200				{object}	dto.PointsPreviewResponseDTO	"Projected points"
//	@Failure		400				{object}	utils.Response					"Invalid query parameters"
//	@Router			/api/ledger/preview [get]
func (h *LedgerHandler) PreviewPoints(w http.ResponseWriter, r *http.Request) {
	principal, err := strconv.ParseUint(r.URL.Query().Get("principal"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid principal")
		return
	}
	durationDays, err := strconv.ParseUint(r.URL.Query().Get("duration_days"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid duration_days")
		return
	}
	participation := uint64(0)
	if raw := r.URL.Query().Get("participation"); raw != "" {
		participation, err = strconv.ParseUint(raw, 10, 8)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "invalid participation")
			return
		}
	}

	points := ledgerservice.CalculatePointsToEarn(principal, durationDays, uint8(participation))
	utils.RespondWithJSON(w, http.StatusOK, dto.PointsPreviewResponseDTO{Points: points})
}

// GetEvents godoc
//
//	@Summary		List audit-trail events
//	@Tags			Ledger
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (default 100)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{array}		dto.EventResponseDTO	"Events, newest first"
//	@Success		204		{object}	utils.Response			"No events"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/events [get]
func (h *LedgerHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	events, err := h.eventService.List(r.Context(), limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}

	if len(events) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No events")
		return
	}

	response := make([]dto.EventResponseDTO, len(events))
	for i, ev := range events {
		response[i] = dto.EventResponseDTO{
			ID:             ev.ID,
			Operation:      ev.Operation,
			EntityID:       ev.EntityID,
			Amount:         ev.Amount,
			AvailableAfter: ev.AvailableAfter,
			LockedAfter:    ev.LockedAfter,
			Actor:          ev.Actor,
			Reference:      ev.Reference,
			CreatedAt:      ev.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func (h *LedgerHandler) resolvePartner(w http.ResponseWriter, r *http.Request) (capservice.PartnerCap, bool) {
	capID, _ := r.Context().Value(auth.CapabilityIDKey).(string)
	cap, err := h.caps.ResolvePartner(r.Context(), capID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return capservice.PartnerCap{}, false
	}
	return cap, true
}

func balanceDTO(balance *domain.Balance) dto.BalanceResponseDTO {
	return dto.BalanceResponseDTO{
		AccountID: balance.AccountID,
		Available: balance.Available,
		Locked:    balance.Locked,
		Total:     balance.Total(),
	}
}
