package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aharewards/aha-api/internal/mocks"
	"github.com/aharewards/aha-api/internal/services"
)

func TestCRMHandler_UnconfiguredReturns503(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No CRM service wired; every CRM route must refuse.
	handler := NewCRMHandler(NewCommonServices(mocks.NewMockQuerier(ctrl), nil, nil, nil, nil, nil))

	routes := []struct {
		name string
		call func(c *gin.Context)
	}{
		{"sync", handler.SyncCRM},
		{"bulk tag", handler.BulkTag},
		{"status", handler.CRMStatus},
	}

	for _, rt := range routes {
		t.Run(rt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "/crm")
			rt.call(c)
			assert.Equal(t, http.StatusServiceUnavailable, w.Code)
			assert.Contains(t, w.Body.String(), "not configured")
		})
	}
}

func TestCRMHandler_BulkTag_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	crmSvc := services.NewCRMSyncService(mockQuerier, nil)
	handler := NewCRMHandler(NewCommonServices(mockQuerier, nil, nil, nil, nil, crmSvc))

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", "not json"},
		{"missing tags", `{"customer_ids":["` + "00000000-0000-0000-0000-000000000001" + `"],"action":"add"}`},
		{"bad action", `{"customer_ids":["00000000-0000-0000-0000-000000000001"],"tags":["Promo"],"action":"toggle"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/crm/bulk-tag", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.BulkTag(c)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
