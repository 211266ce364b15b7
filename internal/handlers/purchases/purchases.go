package purchases

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/dto"
	purchaserepo "github.com/velmoria/scriptstore/internal/repo/purchase-repo"
	"github.com/velmoria/scriptstore/internal/service/purchaseservice"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
	"github.com/velmoria/scriptstore/pkg/utils"
)

type Service interface {
	Purchase(ctx context.Context, userID int, resourceName string) (*domain.Purchase, error)
	GetPurchases(ctx context.Context, userID int) ([]purchaserepo.PurchaseWithScript, error)
}

type PurchaseHandler struct {
	purchaseService Service
}

func New(purchaseService Service) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

// Create godoc
//
//	@Summary		Buy a script with points
//	@Description	Debits the caller's balance and records the entitlement atomically
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePurchaseRequestDTO	true	"Purchase request body"
//	@Success		201		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body, insufficient points or script already owned"
//	@Failure		404		{object}	utils.Response	"Script not found"
//	@Router			/api/purchases [post]
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.CreatePurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ResourceName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	purchase, err := h.purchaseService.Purchase(r.Context(), userID, req.ResourceName)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrScriptNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Script not found")
		case errors.Is(err, purchaseservice.ErrAlreadyOwned):
			utils.RespondWithError(w, http.StatusBadRequest, "Script already owned")
		case errors.Is(err, purchaseservice.ErrInsufficientPoints):
			utils.RespondWithError(w, http.StatusBadRequest, "Insufficient points")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PurchaseResponseDTO{
		ID:           purchase.ID,
		ResourceName: req.ResourceName,
		PricePaid:    purchase.PricePaid,
		Status:       purchase.Status,
		CreatedAt:    purchase.CreatedAt,
	})
}

// List godoc
//
//	@Summary	List the caller's purchases
//	@Tags		Purchases
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.PurchaseResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/purchases [get]
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	purchases, err := h.purchaseService.GetPurchases(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PurchaseResponseDTO, 0, len(purchases))
	for _, p := range purchases {
		resp = append(resp, dto.PurchaseResponseDTO{
			ID:           p.ID,
			ResourceName: p.ResourceName,
			Title:        p.ScriptTitle,
			PricePaid:    p.PricePaid,
			Status:       p.Status,
			CreatedAt:    p.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
