package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aharewards/aha-api/internal/db"
)

const maxPageLimit = 100

type CustomerHandler struct {
	common *CommonServices
}

func NewCustomerHandler(common *CommonServices) *CustomerHandler {
	return &CustomerHandler{common: common}
}

// ListCustomers returns one page of synced customers. Query params: limit
// (default 50, max 100) and offset (default 0).
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	limit, err := parsePositiveInt(c.DefaultQuery("limit", "50"))
	if err != nil || limit > maxPageLimit {
		sendError(c, http.StatusBadRequest, "Invalid limit parameter", err)
		return
	}
	offset, err := parsePositiveInt(c.DefaultQuery("offset", "0"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid offset parameter", err)
		return
	}

	customers, err := h.common.db.ListCustomers(c.Request.Context(), db.ListCustomersParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		handleDBError(c, err, "Customers not found")
		return
	}

	total, err := h.common.db.CountCustomers(c.Request.Context())
	if err != nil {
		handleDBError(c, err, "Customers not found")
		return
	}

	sendList(c, customers, total)
}

// GetCustomer returns a single synced customer by ID.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid customer ID format", err)
		return
	}

	customer, err := h.common.db.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		handleDBError(c, err, "Customer not found")
		return
	}
	sendSuccess(c, http.StatusOK, customer)
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
