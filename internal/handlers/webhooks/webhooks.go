package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/velmoria/scriptstore/internal/dto"
	"github.com/velmoria/scriptstore/internal/metrics"
	"github.com/velmoria/scriptstore/internal/service/authservice"
	"github.com/velmoria/scriptstore/internal/service/paymentservice"
	"github.com/velmoria/scriptstore/pkg/utils"
	"github.com/velmoria/scriptstore/pkg/webhook"
)

// maxBodySize caps webhook payloads; signatures cover the raw body so it has
// to be buffered in full before parsing.
const maxBodySize = 1 << 20

type PaymentEventService interface {
	HandleProcessorEvent(ctx context.Context, eventID, referenceCode string, amount float64) error
}

type MembershipService interface {
	SetMembership(ctx context.Context, externalID string, isMember bool) error
}

type WebhookHandler struct {
	paymentEvents PaymentEventService
	membership    MembershipService

	paymentSecret       []byte
	membershipPublicKey string
}

func New(paymentEvents PaymentEventService, membership MembershipService, paymentSecret, membershipPublicKey string) *WebhookHandler {
	return &WebhookHandler{
		paymentEvents:       paymentEvents,
		membership:          membership,
		paymentSecret:       []byte(paymentSecret),
		membershipPublicKey: membershipPublicKey,
	}
}

// Payment godoc
//
//	@Summary		Payment processor callback
//	@Description	HMAC-SHA256 signed event confirming a deposit; duplicate events are rejected without effect
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Signature	header		string					true	"Hex HMAC-SHA256 over the raw body"
//	@Param			request		body		dto.PaymentWebhookDTO	true	"Event payload"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Unprocessable event"
//	@Failure		401			{object}	utils.Response	"Bad signature"
//	@Router			/api/webhooks/payment [post]
func (h *WebhookHandler) Payment(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := webhook.VerifyHMAC(h.paymentSecret, body, r.Header.Get("X-Signature")); err != nil {
		metrics.WebhookRejects.WithLabelValues("bad_signature").Inc()
		utils.RespondWithError(w, http.StatusUnauthorized, "Bad signature")
		return
	}

	var event dto.PaymentWebhookDTO
	if err := json.Unmarshal(body, &event); err != nil || event.EventID == "" {
		metrics.WebhookRejects.WithLabelValues("bad_payload").Inc()
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = h.paymentEvents.HandleProcessorEvent(r.Context(), event.EventID, event.ReferenceCode, event.Amount)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Processed"})
	case errors.Is(err, paymentservice.ErrDuplicateEvent):
		metrics.WebhookRejects.WithLabelValues("duplicate").Inc()
		utils.RespondWithError(w, http.StatusBadRequest, "Duplicate event")
	case errors.Is(err, paymentservice.ErrPaymentNotFound),
		errors.Is(err, paymentservice.ErrAmountMismatch),
		errors.Is(err, paymentservice.ErrInvalidDeposit):
		metrics.WebhookRejects.WithLabelValues("unprocessable").Inc()
		zap.L().Warn("payment webhook rejected", zap.String("eventID", event.EventID), zap.Error(err))
		utils.RespondWithError(w, http.StatusBadRequest, "Unprocessable event")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// Membership godoc
//
//	@Summary		Identity provider membership callback
//	@Description	Ed25519 signed event toggling the member flag for a user
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Signature-Ed25519		header		string						true	"Hex Ed25519 signature over timestamp and body"
//	@Param			X-Signature-Timestamp	header		string						true	"Signature timestamp"
//	@Param			request					body		dto.MembershipWebhookDTO	true	"Event payload"
//	@Success		200						{object}	utils.Response
//	@Failure		401						{object}	utils.Response	"Bad signature"
//	@Failure		404						{object}	utils.Response	"User not found"
//	@Router			/api/webhooks/membership [post]
func (h *WebhookHandler) Membership(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	timestamp := r.Header.Get("X-Signature-Timestamp")
	if err := webhook.VerifyEd25519(h.membershipPublicKey, timestamp, body, r.Header.Get("X-Signature-Ed25519")); err != nil {
		metrics.WebhookRejects.WithLabelValues("bad_signature").Inc()
		utils.RespondWithError(w, http.StatusUnauthorized, "Bad signature")
		return
	}

	var event dto.MembershipWebhookDTO
	if err := json.Unmarshal(body, &event); err != nil || event.ExternalID == "" {
		metrics.WebhookRejects.WithLabelValues("bad_payload").Inc()
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.membership.SetMembership(r.Context(), event.ExternalID, event.Action == "joined"); err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			metrics.WebhookRejects.WithLabelValues("unknown_user").Inc()
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Processed"})
}
