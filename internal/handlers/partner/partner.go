package partner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alphapoints/platform/internal/dto"
	"github.com/alphapoints/platform/internal/service/capservice"
	"github.com/alphapoints/platform/pkg/auth"
	"github.com/alphapoints/platform/pkg/utils"
)

type Service interface {
	Genesis(ctx context.Context, adminHolder, governHolder string) (*capservice.MintedCapability, *capservice.MintedCapability, error)
	IssueToken(ctx context.Context, capID, secret string) (string, error)
	MintPartnerCap(ctx context.Context, cap capservice.GovernCap, holder string) (*capservice.MintedCapability, error)
	MintOracleCap(ctx context.Context, cap capservice.GovernCap, holder string) (*capservice.MintedCapability, error)
	Transfer(ctx context.Context, capID, newHolder string) error
	Revoke(ctx context.Context, cap capservice.GovernCap, capID string) error
	ResolveGovern(ctx context.Context, capID string) (capservice.GovernCap, error)
}

type PartnerHandler struct {
	capService    Service
	genesisSecret string
}

func New(capService Service, genesisSecret string) *PartnerHandler {
	return &PartnerHandler{
		capService:    capService,
		genesisSecret: genesisSecret,
	}
}

// Genesis godoc
//
//	@Summary		Mint the root capabilities
//	@Description	Runs once; mints the Admin and Govern trust anchors and returns their secrets a single time. Guarded by the configured bootstrap secret.
//	@Tags			Partner
//	@Accept			json
//	@Produce		json
//	@Param			X-Genesis-Secret	header		string					true	"Bootstrap secret"
//	@Param			request				body		dto.GenesisRequestDTO	true	"Genesis payload"
//	@Success		200					{object}	dto.GenesisResponseDTO	"Root capabilities with one-time secrets"
//	@Failure		401					{object}	utils.Response			"Wrong bootstrap secret"
//	@Failure		409					{object}	utils.Response			"Genesis already ran"
//	@Failure		500					{object}	utils.Response			"Internal server error"
//	@Router			/api/partner/genesis [post]
func (h *PartnerHandler) Genesis(w http.ResponseWriter, r *http.Request) {
	if h.genesisSecret == "" || r.Header.Get("X-Genesis-Secret") != h.genesisSecret {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.GenesisRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	admin, govern, err := h.capService.Genesis(r.Context(), req.AdminHolder, req.GovernHolder)
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrGenesisAlreadyRun):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GenesisResponseDTO{
		Admin:  mintedDTO(admin),
		Govern: mintedDTO(govern),
	})
}

// IssueToken godoc
//
//	@Summary		Exchange a capability secret for a bearer token
//	@Tags			Partner
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TokenRequestDTO		true	"Capability id and secret"
//	@Success		200		{object}	dto.TokenResponseDTO	"Bearer token"
//	@Failure		401		{object}	utils.Response			"Unknown capability or wrong secret"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/partner/token [post]
func (h *PartnerHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.capService.IssueToken(r.Context(), req.CapabilityID, req.Secret)
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.TokenResponseDTO{Token: token})
}

// Mint godoc
//
//	@Summary		Mint a partner or oracle capability
//	@Description	Requires the governance capability; returns the new capability's secret once.
//	@Tags			Partner
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.MintRequestDTO			true	"Mint payload"
//	@Success		200		{object}	dto.CapabilityResponseDTO	"Minted capability"
//	@Failure		400		{object}	utils.Response				"Unknown capability kind"
//	@Failure		401		{object}	utils.Response				"Missing or revoked capability"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/partner/mint [post]
func (h *PartnerHandler) Mint(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolveGovern(w, r)
	if !ok {
		return
	}

	var req dto.MintRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var minted *capservice.MintedCapability
	var err error
	switch req.Kind {
	case "PARTNER":
		minted, err = h.capService.MintPartnerCap(r.Context(), cap, req.Holder)
	case "ORACLE":
		minted, err = h.capService.MintOracleCap(r.Context(), cap, req.Holder)
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "unknown capability kind")
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, mintedDTO(minted))
}

// Transfer godoc
//
//	@Summary		Transfer the caller's capability to a new holder
//	@Description	Identity and validity are unchanged; only the holder moves.
//	@Tags			Partner
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO	true	"Transfer payload"
//	@Success		200		{string}	string					"Capability transferred"
//	@Failure		401		{object}	utils.Response			"Missing or revoked capability"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/partner/transfer [post]
func (h *PartnerHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	capID, _ := r.Context().Value(auth.CapabilityIDKey).(string)

	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.capService.Transfer(r.Context(), capID, req.NewHolder); err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "capability transferred")
}

// Revoke godoc
//
//	@Summary		Revoke a partner or oracle capability
//	@Description	Destroys the capability; later authorization attempts fail because the token no longer exists.
//	@Tags			Partner
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RevokeRequestDTO	true	"Revoke payload"
//	@Success		200		{string}	string					"Capability revoked"
//	@Failure		401		{object}	utils.Response			"Missing or revoked capability"
//	@Failure		403		{object}	utils.Response			"Root capabilities cannot be revoked"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/partner/revoke [post]
func (h *PartnerHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	cap, ok := h.resolveGovern(w, r)
	if !ok {
		return
	}

	var req dto.RevokeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.capService.Revoke(r.Context(), cap, req.CapabilityID); err != nil {
		switch {
		case errors.Is(err, capservice.ErrUnauthorized):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		case errors.Is(err, capservice.ErrCannotRevokeRoot):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "capability revoked")
}

func (h *PartnerHandler) resolveGovern(w http.ResponseWriter, r *http.Request) (capservice.GovernCap, bool) {
	capID, _ := r.Context().Value(auth.CapabilityIDKey).(string)
	cap, err := h.capService.ResolveGovern(r.Context(), capID)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return capservice.GovernCap{}, false
	}
	return cap, true
}

func mintedDTO(minted *capservice.MintedCapability) dto.CapabilityResponseDTO {
	return dto.CapabilityResponseDTO{
		ID:     minted.ID,
		Kind:   string(minted.Kind),
		Holder: minted.Holder,
		Secret: minted.Secret,
	}
}
