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
)

func TestSyncHandler_SyncCustomers_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", "{not json"},
		{"unknown mode", `{"mode":"incremental"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := NewSyncHandler(NewCommonServices(mocks.NewMockQuerier(ctrl), nil, nil, nil, nil, nil))

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/sync/customers", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			handler.SyncCustomers(c)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
