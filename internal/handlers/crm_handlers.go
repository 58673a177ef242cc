package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aharewards/aha-api/internal/services"
)

type CRMHandler struct {
	common *CommonServices
}

func NewCRMHandler(common *CommonServices) *CRMHandler {
	return &CRMHandler{common: common}
}

// crmAvailable guards every CRM route; the integration is optional.
func (h *CRMHandler) crmAvailable(c *gin.Context) bool {
	if h.common.crm == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "CRM integration is not configured"})
		return false
	}
	return true
}

// SyncCRM reconciles all customers' billing state into CRM contact tags.
func (h *CRMHandler) SyncCRM(c *gin.Context) {
	if !h.crmAvailable(c) {
		return
	}

	result, err := h.common.crm.SyncCustomers(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusBadGateway, "CRM sync failed", err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// BulkTag adds or removes tags on the CRM contacts linked to the given
// customers.
func (h *CRMHandler) BulkTag(c *gin.Context) {
	if !h.crmAvailable(c) {
		return
	}

	var op services.BulkTagOp
	if err := c.ShouldBindJSON(&op); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.common.crm.BulkTag(c.Request.Context(), op)
	if err != nil {
		sendError(c, http.StatusBadGateway, "Bulk tag operation failed", err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// CRMStatus reports CRM connectivity and circuit breaker state.
func (h *CRMHandler) CRMStatus(c *gin.Context) {
	if !h.crmAvailable(c) {
		return
	}
	sendSuccess(c, http.StatusOK, h.common.crm.Status(c.Request.Context()))
}
