package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/velmoria/scriptstore/internal/domain"
	"github.com/velmoria/scriptstore/internal/dto"
	"github.com/velmoria/scriptstore/internal/service/paymentservice"
	pkgauth "github.com/velmoria/scriptstore/pkg/auth"
	"github.com/velmoria/scriptstore/pkg/utils"
)

type Service interface {
	CreateDeposit(ctx context.Context, userID int, amount float64, method, proofImage string, packageID *int) (*domain.Payment, error)
	GetPayments(ctx context.Context, userID int) ([]domain.Payment, error)
}

type PaymentHandler struct {
	paymentService Service
}

func New(paymentService Service) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func PaymentDTO(p *domain.Payment) dto.PaymentResponseDTO {
	return dto.PaymentResponseDTO{
		ID:            p.ID,
		Amount:        p.Amount,
		Points:        p.Points,
		Method:        p.Method,
		ReferenceCode: p.ReferenceCode,
		Status:        p.Status,
		AdminNote:     p.AdminNote,
		CreatedAt:     p.CreatedAt,
		ProcessedAt:   p.ProcessedAt,
	}
}

// Create godoc
//
//	@Summary		Submit a deposit with a payment slip
//	@Description	Creates a PENDING payment awaiting admin review; points are credited on approval
//	@Tags			Payments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePaymentRequestDTO	true	"Deposit request body"
//	@Success		201		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid deposit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Router			/api/payments [post]
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	var req dto.CreatePaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	payment, err := h.paymentService.CreateDeposit(r.Context(), userID, req.Amount, req.Method, req.ProofImage, req.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, paymentservice.ErrInvalidDeposit):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid deposit")
		case errors.Is(err, paymentservice.ErrPackageNotFound):
			utils.RespondWithError(w, http.StatusBadRequest, "Unknown points package")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, PaymentDTO(payment))
}

// List godoc
//
//	@Summary	List the caller's deposits
//	@Tags		Payments
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		dto.PaymentResponseDTO
//	@Failure	401	{object}	utils.Response	"User not authorized"
//	@Router		/api/payments [get]
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(pkgauth.UserIDKey).(int)

	payments, err := h.paymentService.GetPayments(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PaymentResponseDTO, 0, len(payments))
	for i := range payments {
		resp = append(resp, PaymentDTO(&payments[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
