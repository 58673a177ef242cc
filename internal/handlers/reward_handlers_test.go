package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aharewards/aha-api/internal/constants"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/mocks"
	"github.com/aharewards/aha-api/internal/services"
)

func newRewardHandler(q db.Querier) *RewardHandler {
	rewards := services.NewRewardService(q, nil)
	common := NewCommonServices(q, nil, rewards, nil, nil, nil)
	return NewRewardHandler(common)
}

func TestRewardHandler_ListRewards(t *testing.T) {
	callerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name       string
		userRole   string
		query      string
		mockSetup  func(m *mocks.MockQuerier)
		wantStatus int
	}{
		{
			name: "own rewards",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().ListLoyaltyRewardsByUser(gomock.Any(), callerID).
					Return([]db.LoyaltyReward{{ID: uuid.New(), UserID: callerID}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:     "staff lists another user",
			userRole: constants.RoleAdmin,
			query:    "?user_id=" + otherID.String(),
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().ListLoyaltyRewardsByUser(gomock.Any(), otherID).
					Return([]db.LoyaltyReward{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "non-staff denied another user",
			userRole:   constants.RoleUser,
			query:      "?user_id=" + otherID.String(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "invalid user_id",
			userRole:   constants.RoleAdmin,
			query:      "?user_id=not-a-uuid",
			wantStatus: http.StatusForbidden,
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

			c, w := newTestContext(http.MethodGet, "/rewards"+tt.query)
			c.Set("userID", callerID.String())
			if tt.userRole != "" {
				c.Set("userRole", tt.userRole)
			}

			newRewardHandler(mockQuerier).ListRewards(c)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRewardHandler_ApplyCredit_Validation(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, w := newTestContext(http.MethodPost, "/rewards/abc/apply-credit")
		c.Params = gin.Params{{Key: "reward_id", Value: uuid.NewString()}}

		newRewardHandler(mocks.NewMockQuerier(ctrl)).ApplyCredit(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid reward ID", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c, w := newTestContext(http.MethodPost, "/rewards/abc/apply-credit")
		c.Set("userID", uuid.NewString())
		c.Params = gin.Params{{Key: "reward_id", Value: "abc"}}

		newRewardHandler(mocks.NewMockQuerier(ctrl)).ApplyCredit(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
