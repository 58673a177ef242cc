package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/logger"
	"github.com/aharewards/aha-api/internal/services"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db         db.Querier
	sync       *services.CustomerSyncService
	rewards    *services.RewardService
	redemption *services.RedemptionService
	events     *services.PaymentEventService
	crm        *services.CRMSyncService // nil when the CRM is not configured
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(
	queries db.Querier,
	sync *services.CustomerSyncService,
	rewards *services.RewardService,
	redemption *services.RedemptionService,
	events *services.PaymentEventService,
	crm *services.CRMSyncService,
) *CommonServices {
	return &CommonServices{
		db:         queries,
		sync:       sync,
		rewards:    rewards,
		redemption: redemption,
		events:     events,
		crm:        crm,
	}
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleDBError is a helper function that handles database errors and returns appropriate HTTP status codes
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendList is a helper function that sends a paginated list response
func sendList(c *gin.Context, items interface{}, total int64) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
		"total":  total,
	})
}
