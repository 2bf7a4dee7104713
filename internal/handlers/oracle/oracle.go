package oracle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alphapoints/platform/internal/domain"
	"github.com/alphapoints/platform/internal/dto"
	"github.com/alphapoints/platform/internal/service/capservice"
	oracleservice "github.com/alphapoints/platform/internal/service/oracleservice"
	"github.com/alphapoints/platform/pkg/auth"
	"github.com/alphapoints/platform/pkg/utils"
)

type Service interface {
	CreateOracle(ctx context.Context, cap capservice.OracleCap, rate string, decimals uint8, stalenessThreshold uint64) (*domain.Oracle, error)
	UpdateRate(ctx context.Context, cap capservice.OracleCap, newRate string, currentTime uint64) error
	UpdateStalenessThreshold(ctx context.Context, cap capservice.OracleCap, threshold uint64) error
	GetOracle(ctx context.Context) (*domain.Oracle, error)
	IsStale(ctx context.Context, currentTime uint64) (bool, error)
	ConvertPointsToAsset(ctx context.Context, points uint64, currentTime uint64) (uint64, error)
	ConvertAssetToPoints(ctx context.Context, asset uint64, currentTime uint64) (uint64, error)
}

type CapResolver interface {
	ResolveOracle(ctx context.Context, capID string) (capservice.OracleCap, error)
}

type OracleHandler struct {
	oracleService Service
	caps          CapResolver
}

func New(oracleService Service, caps CapResolver) *OracleHandler {
	return &OracleHandler{
		oracleService: oracleService,
		caps:          caps,
	}
}

// Create godoc
//
//	@Summary		Create the rate oracle
//	@Tags			Oracle
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOracleRequestDTO	true	"Oracle payload"
//	@Success		200		{object}	dto.OracleResponseDTO		"Created oracle"
//	@Failure		401		{object}	utils.Response				"Missing or revoked capability"
//	@Failure		409		{object}	utils.Response				"Oracle already created"
//	@Failure		422		{object}	utils.Response				"Invalid rate or decimals"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/oracle [post]
func (h *OracleHandler) Create(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolveOracle(w, r)
	if !ok {
		return
	}

	var req dto.CreateOracleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	oracle, err := h.oracleService.CreateOracle(r.Context(), cap, req.Rate, req.Decimals, req.StalenessThreshold)
	if err != nil {
		h.respondOracleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, oracleDTO(oracle, false))
}

// UpdateRate godoc
//
//	@Summary		Update the conversion rate
//	@Description	Sets a new positive rate and stamps the caller-supplied time.
//	@Tags			Oracle
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateRateRequestDTO	true	"Rate payload"
//	@Success		200		{string}	string						"Rate updated"
//	@Failure		401		{object}	utils.Response				"Missing or revoked capability"
//	@Failure		404		{object}	utils.Response				"Oracle not found"
//	@Failure		422		{object}	utils.Response				"Invalid rate"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/oracle/rate [put]
func (h *OracleHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolveOracle(w, r)
	if !ok {
		return
	}

	var req dto.UpdateRateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.oracleService.UpdateRate(r.Context(), cap, req.Rate, req.CurrentTime); err != nil {
		h.respondOracleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "rate updated")
}

// UpdateThreshold godoc
//
//	@Summary		Update the staleness threshold
//	@Tags			Oracle
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateThresholdRequestDTO	true	"Threshold payload"
//	@Success		200		{string}	string							"Threshold updated"
//	@Failure		401		{object}	utils.Response					"Missing or revoked capability"
//	@Failure		404		{object}	utils.Response					"Oracle not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/oracle/threshold [put]
func (h *OracleHandler) UpdateThreshold(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolveOracle(w, r)
	if !ok {
		return
	}

	var req dto.UpdateThresholdRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.oracleService.UpdateStalenessThreshold(r.Context(), cap, req.Threshold); err != nil {
		h.respondOracleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "threshold updated")
}

// Get godoc
//
//	@Summary		Get the oracle state
//	@Description	Reports the rate feed plus staleness evaluated at the supplied time.
//	@Tags			Oracle
//	@Produce		json
//	@Param			t	query		int	true	"Current time (unix seconds)"
//	@Success		200	{object}	dto.OracleResponseDTO	"Oracle state"
//	@Failure		400	{object}	utils.Response			"Invalid time"
//	@Failure		404	{object}	utils.Response			"Oracle not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/oracle [get]
func (h *OracleHandler) Get(w http.ResponseWriter, r *http.Request) {
	currentTime, err := strconv.ParseUint(r.URL.Query().Get("t"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid time")
		return
	}

	oracle, err := h.oracleService.GetOracle(r.Context())
	if err != nil {
		h.respondOracleError(w, err)
		return
	}
	stale := oracleservice.Stale(oracle.LastUpdateTime, oracle.StalenessThreshold, currentTime)
	utils.RespondWithJSON(w, http.StatusOK, oracleDTO(oracle, stale))
}

// Convert godoc
//
//	@Summary		Convert between points and the backing asset
//	@Description	direction=points_to_asset or asset_to_points; the feed must be fresh at time t.
//	@Tags			Oracle
//	@Produce		json
//	@Param			direction	query		string	true	"Conversion direction"
//	@Param			amount		query		int		true	"Amount to convert"
//	@Param			t			query		int		true	"Current time (unix seconds)"
//	@Success		200			{object}	dto.ConvertResponseDTO	"Converted amount"
//	@Failure		400			{object}	utils.Response			"Invalid query parameters"
//	@Failure		404			{object}	utils.Response			"Oracle not found"
//	@Failure		409			{object}	utils.Response			"Oracle rate is stale"
//	@Failure		422			{object}	utils.Response			"Invalid rate or decimals"
//	@Failure		500			{object}	utils.Response			"Internal server error"
//	@Router			/api/oracle/convert [get]
func (h *OracleHandler) Convert(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseUint(r.URL.Query().Get("amount"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	currentTime, err := strconv.ParseUint(r.URL.Query().Get("t"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid time")
		return
	}

	var converted uint64
	switch r.URL.Query().Get("direction") {
	case "points_to_asset":
		converted, err = h.oracleService.ConvertPointsToAsset(r.Context(), amount, currentTime)
	case "asset_to_points":
		converted, err = h.oracleService.ConvertAssetToPoints(r.Context(), amount, currentTime)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "invalid direction")
		return
	}
	if err != nil {
		h.respondOracleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ConvertResponseDTO{Amount: converted})
}

func (h *OracleHandler) respondOracleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, capservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, oracleservice.ErrOracleNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, oracleservice.ErrOracleExists):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, oracleservice.ErrOracleStale):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, oracleservice.ErrInvalidRate), errors.Is(err, oracleservice.ErrInvalidDecimals):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *OracleHandler) resolveOracle(w http.ResponseWriter, r *http.Request) (capservice.OracleCap, bool) {
	capID, _ := r.Context().Value(auth.CapabilityIDKey).(string)
	cap, err := h.caps.ResolveOracle(r.Context(), capID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return capservice.OracleCap{}, false
	}
	return cap, true
}

func oracleDTO(oracle *domain.Oracle, stale bool) dto.OracleResponseDTO {
	return dto.OracleResponseDTO{
		Rate:               oracle.Rate,
		Decimals:           oracle.Decimals,
		LastUpdateTime:     oracle.LastUpdateTime,
		StalenessThreshold: oracle.StalenessThreshold,
		Stale:              stale,
	}
}
