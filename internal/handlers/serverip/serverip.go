package serverip

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/dto"
	"github.com/velmoria/scriptstore/internal/service/licenseservice"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
	"github.com/velmoria/scriptstore/pkg/utils"
)

type Service interface {
	SetServerIP(ctx context.Context, userID int, resourceName, ipAddress string) (*domain.ServerIP, error)
	GetServerIPs(ctx context.Context, userID int) ([]domain.ServerIP, error)
	Verify(ctx context.Context, resourceName, ipAddress, serverIdentifier string) (*domain.ServerIP, error)
	VerifyKey(ctx context.Context, licenseKey, ipAddress, serverIdentifier string) (*domain.ServerIP, error)
}

type ServerIPHandler struct {
	licenseService Service
}

func New(licenseService Service) *ServerIPHandler {
	return &ServerIPHandler{
		licenseService: licenseService,
	}
}

func bindingDTO(b *domain.ServerIP, withKey bool) dto.ServerIPResponseDTO {
	out := dto.ServerIPResponseDTO{
		ResourceName: b.ResourceName,
		IPAddress:    b.IPAddress,
		IsActive:     b.IsActive,
		IsVerified:   b.IsVerified,
		LastActive:   b.LastActive,
	}
	if withKey {
		out.LicenseKey = b.LicenseKey
	}
	return out
}

// Set godoc
//
//	@Summary		Bind a server IP for an owned script
//	@Description	Creates or moves the binding; changing the address resets verification
//	@Tags			License
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SetServerIPRequestDTO	true	"Binding request body"
//	@Success		200		{object}	dto.ServerIPResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid IP address or script not purchased"
//	@Failure		404		{object}	utils.Response	"Script not found"
//	@Router			/api/server-ips [put]
func (h *ServerIPHandler) Set(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.SetServerIPRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	binding, err := h.licenseService.SetServerIP(r.Context(), userID, req.ResourceName, req.IPAddress)
	if err != nil {
		switch {
		case errors.Is(err, licenseservice.ErrInvalidIPAddress):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid IP address")
		case errors.Is(err, licenseservice.ErrScriptNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Script not found")
		case errors.Is(err, licenseservice.ErrPurchaseRequired):
			utils.RespondWithError(w, http.StatusBadRequest, "Script not purchased")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, bindingDTO(binding, true))
}

// List godoc
//
//	@Summary	List the caller's server bindings
//	@Tags		License
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.ServerIPResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/server-ips [get]
func (h *ServerIPHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	bindings, err := h.licenseService.GetServerIPs(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.ServerIPResponseDTO, 0, len(bindings))
	for i := range bindings {
		resp = append(resp, bindingDTO(&bindings[i], true))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Verify godoc
//
//	@Summary		Verify a game server against its registered binding
//	@Description	Called by the running game server; marks the binding verified on match
//	@Tags			License
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyRequestDTO	true	"Verification request body"
//	@Success		200		{object}	dto.VerifyResponseDTO
//	@Failure		403		{object}	utils.Response	"Verification rejected"
//	@Router			/api/license/verify [post]
func (h *ServerIPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	_, err := h.licenseService.Verify(r.Context(), req.ResourceName, req.IPAddress, req.ServerIdentifier)
	if err != nil {
		utils.RespondWithError(w, http.StatusForbidden, "Verification rejected")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{Verified: true})
}

// VerifyKey godoc
//
//	@Summary		Verify a game server by license key
//	@Description	Same check as verify but keyed by the per-binding license key
//	@Tags			License
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyKeyRequestDTO	true	"Verification request body"
//	@Success		200		{object}	dto.VerifyResponseDTO
//	@Failure		403		{object}	utils.Response	"Verification rejected"
//	@Router			/api/license/verify-key [post]
func (h *ServerIPHandler) VerifyKey(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyKeyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	_, err := h.licenseService.VerifyKey(r.Context(), req.LicenseKey, req.IPAddress, req.ServerIdentifier)
	if err != nil {
		utils.RespondWithError(w, http.StatusForbidden, "Verification rejected")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyResponseDTO{Verified: true})
}
