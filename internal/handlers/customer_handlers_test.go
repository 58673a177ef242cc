package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/logger"
	"github.com/aharewards/aha-api/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitTestLogger()
}

func newTestContext(method, target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, nil)
	return c, w
}

func TestCustomerHandler_ListCustomers(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		mockSetup  func(m *mocks.MockQuerier)
		wantStatus int
		wantTotal  float64
	}{
		{
			name:  "default pagination",
			query: "",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().ListCustomers(gomock.Any(), db.ListCustomersParams{Limit: 50, Offset: 0}).
					Return([]db.Customer{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
				m.EXPECT().CountCustomers(gomock.Any()).Return(int64(2), nil)
			},
			wantStatus: http.StatusOK,
			wantTotal:  2,
		},
		{
			name:  "explicit limit and offset",
			query: "?limit=10&offset=20",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().ListCustomers(gomock.Any(), db.ListCustomersParams{Limit: 10, Offset: 20}).
					Return([]db.Customer{}, nil)
				m.EXPECT().CountCustomers(gomock.Any()).Return(int64(0), nil)
			},
			wantStatus: http.StatusOK,
			wantTotal:  0,
		},
		{
			name:       "limit above maximum",
			query:      "?limit=500",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative offset",
			query:      "?offset=-1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "non-numeric limit",
			query:      "?limit=abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockQuerier)
			}

			handler := NewCustomerHandler(NewCommonServices(mockQuerier, nil, nil, nil, nil, nil))
			c, w := newTestContext(http.MethodGet, "/customers"+tt.query)
			handler.ListCustomers(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "list", response["object"])
				assert.Equal(t, tt.wantTotal, response["total"])
			}
		})
	}
}

func TestCustomerHandler_GetCustomer(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name       string
		customerID string
		mockSetup  func(m *mocks.MockQuerier)
		wantStatus int
	}{
		{
			name:       "found",
			customerID: customerID.String(),
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCustomer(gomock.Any(), customerID).
					Return(db.Customer{ID: customerID, Email: "jane@example.com"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			customerID: customerID.String(),
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetCustomer(gomock.Any(), customerID).
					Return(db.Customer{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid UUID",
			customerID: "not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockQuerier)
			}

			handler := NewCustomerHandler(NewCommonServices(mockQuerier, nil, nil, nil, nil, nil))
			c, w := newTestContext(http.MethodGet, "/customers/"+tt.customerID)
			c.Params = gin.Params{{Key: "customer_id", Value: tt.customerID}}
			handler.GetCustomer(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
