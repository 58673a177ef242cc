package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aharewards/aha-api/internal/services"
)

type SyncHandler struct {
	common *CommonServices
}

func NewSyncHandler(common *CommonServices) *SyncHandler {
	return &SyncHandler{common: common}
}

// SyncCustomersRequest represents the request body for a sync run
type SyncCustomersRequest struct {
	Mode     string `json:"mode,omitempty"`
	Cursor   string `json:"cursor,omitempty"`
	MaxPages int    `json:"max_pages,omitempty"`
}

// SyncCustomers runs a customer synchronization pass against the billing
// provider. The body is optional; an empty body runs a full sync.
func (h *SyncHandler) SyncCustomers(c *gin.Context) {
	var req SyncCustomersRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	mode, err := services.ParseSyncMode(req.Mode)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid sync mode", err)
		return
	}

	result, err := h.common.sync.Run(c.Request.Context(), services.SyncRequest{
		Mode:     mode,
		Cursor:   req.Cursor,
		MaxPages: req.MaxPages,
	})
	if err != nil {
		sendError(c, http.StatusBadGateway, "Customer sync failed", err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}
