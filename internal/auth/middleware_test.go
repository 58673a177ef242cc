package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aharewards/aha-api/internal/auth"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/logger"
	"github.com/aharewards/aha-api/internal/mocks"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitTestLogger()
}

func signToken(t *testing.T, secret string, claims auth.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(userID uuid.UUID) auth.Claims {
	return auth.Claims{
		Email: "user@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func performRequest(middleware gin.HandlerFunc, authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	var captured *gin.Context
	router := gin.New()
	router.GET("/protected", middleware, func(c *gin.Context) {
		captured = c
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w, captured
}

func TestEnsureValidToken(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		authHeader string
		mockSetup  func(m *mocks.MockQuerier)
		wantStatus int
		wantRole   string
	}{
		{
			name:       "valid token resolves profile role",
			authHeader: "",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetProfile(gomock.Any(), userID).
					Return(db.Profile{ID: userID, Email: "user@example.com", Role: "admin"}, nil)
			},
			wantStatus: http.StatusOK,
			wantRole:   "admin",
		},
		{
			name:       "missing header",
			authHeader: "none",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			authHeader: "Token abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			authHeader: "wrong-secret",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "expired",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-uuid subject",
			authHeader: "bad-subject",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user",
			authHeader: "",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetProfile(gomock.Any(), userID).
					Return(db.Profile{}, assert.AnError)
			},
			wantStatus: http.StatusUnauthorized,
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

			header := tt.authHeader
			switch header {
			case "":
				header = "Bearer " + signToken(t, testSecret, validClaims(userID))
			case "none":
				header = ""
			case "wrong-secret":
				header = "Bearer " + signToken(t, "some-other-secret", validClaims(userID))
			case "expired":
				claims := validClaims(userID)
				claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
				header = "Bearer " + signToken(t, testSecret, claims)
			case "bad-subject":
				claims := validClaims(userID)
				claims.Subject = "not-a-uuid"
				header = "Bearer " + signToken(t, testSecret, claims)
			}

			w, captured := performRequest(auth.EnsureValidToken(mockQuerier, testSecret), header)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, captured)
				assert.Equal(t, userID.String(), captured.GetString("userID"))
				assert.Equal(t, "user@example.com", captured.GetString("userEmail"))
				assert.Equal(t, tt.wantRole, captured.GetString("userRole"))
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name       string
		userRole   string
		required   []string
		wantStatus int
	}{
		{"role allowed", "admin", []string{"admin", "support"}, http.StatusOK},
		{"second role allowed", "support", []string{"admin", "support"}, http.StatusOK},
		{"role denied", "customer", []string{"admin"}, http.StatusForbidden},
		{"no role set", "", []string{"admin"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router := gin.New()
			router.GET("/staff",
				func(c *gin.Context) {
					if tt.userRole != "" {
						c.Set("userRole", tt.userRole)
					}
				},
				auth.RequireRoles(tt.required...),
				func(c *gin.Context) { c.Status(http.StatusOK) },
			)

			req := httptest.NewRequest(http.MethodGet, "/staff", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGetUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := auth.GetUserID(c)
	assert.Error(t, err)

	want := uuid.New()
	c.Set("userID", want.String())
	got, err := auth.GetUserID(c)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
