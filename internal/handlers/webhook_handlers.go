package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/client/billing"
	"github.com/aharewards/aha-api/internal/logger"
)

// maxWebhookBody bounds the webhook payload read. Stripe events are small.
const maxWebhookBody = 1 << 16

type WebhookHandler struct {
	common  *CommonServices
	billing billing.Provider
}

func NewWebhookHandler(common *CommonServices, provider billing.Provider) *WebhookHandler {
	return &WebhookHandler{common: common, billing: provider}
}

// HandleBillingWebhook verifies and processes a billing provider webhook.
// Signature failures return 400 so the provider retries; events the
// pipeline does not handle are acknowledged with 200.
func (h *WebhookHandler) HandleBillingWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read webhook payload", err)
		return
	}

	event, err := h.billing.ConstructWebhookEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Webhook signature verification failed", err)
		return
	}
	if event.Type == "" {
		// Verified but not an event type this pipeline consumes.
		sendSuccess(c, http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.common.events.HandleEvent(c.Request.Context(), &event); err != nil {
		logger.Error("Webhook event processing failed",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		sendError(c, http.StatusInternalServerError, "Event processing failed", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{"received": true})
}
