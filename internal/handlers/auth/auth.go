package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/dto"
	"github.com/velmoria/scriptstore/internal/service/authservice"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
	"github.com/velmoria/scriptstore/pkg/utils"
)

type Service interface {
	ExchangeCode(ctx context.Context, code string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Session(ctx context.Context, userID int) (*domain.User, error)
	GenerateToken(user *domain.User) (string, error)
}

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func sessionDTO(user *domain.User) dto.SessionResponseDTO {
	return dto.SessionResponseDTO{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Avatar:   user.Avatar,
		Role:     user.Role,
		Points:   user.Points,
		IsMember: user.IsMember,
	}
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, user *domain.User) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Token: token,
		User:  sessionDTO(user),
	})
}

// Exchange godoc
//
//	@Summary		Exchange a provider authorization code for a session
//	@Description	Trades the identity provider's code for a local user record and a JWT
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ExchangeRequestDTO	true	"Exchange request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Exchange rejected"
//	@Router			/api/auth/exchange [post]
func (h *AuthHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req dto.ExchangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.ExchangeCode(r.Context(), req.Code)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Exchange rejected")
		return
	}
	h.respondWithToken(w, user)
}

// Login godoc
//
//	@Summary		Authenticate with local credentials
//	@Description	Log in with email and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	h.respondWithToken(w, user)
}

// Session godoc
//
//	@Summary		Get the current session
//	@Description	Returns the authenticated user with authoritative role and point balance
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Router			/api/auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	user, err := h.authService.Session(r.Context(), userID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sessionDTO(user))
}
