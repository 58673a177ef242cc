package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aharewards/aha-api/internal/auth"
	"github.com/aharewards/aha-api/internal/constants"
	"github.com/aharewards/aha-api/internal/services"
)

type RewardHandler struct {
	common *CommonServices
}

func NewRewardHandler(common *CommonServices) *RewardHandler {
	return &RewardHandler{common: common}
}

// CalculateRewardsRequest represents the request body for a recalculation
type CalculateRewardsRequest struct {
	UserID string `json:"user_id,omitempty"`
}

// CalculateRewards reconciles a user's rewards with their payment history.
// Staff may pass user_id to recalculate on behalf of a member; everyone
// else recalculates their own.
func (h *RewardHandler) CalculateRewards(c *gin.Context) {
	var req CalculateRewardsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	userID, err := h.resolveTargetUser(c, req.UserID)
	if err != nil {
		sendError(c, http.StatusForbidden, err.Error(), err)
		return
	}

	result, err := h.common.rewards.Recalculate(c.Request.Context(), userID)
	if err != nil {
		sendError(c, http.StatusUnprocessableEntity, "Reward calculation failed", err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// ListRewards returns rewards for the authenticated user, or for the
// user_id query param when the caller is staff.
func (h *RewardHandler) ListRewards(c *gin.Context) {
	userID, err := h.resolveTargetUser(c, c.Query("user_id"))
	if err != nil {
		sendError(c, http.StatusForbidden, err.Error(), err)
		return
	}

	rewards, err := h.common.rewards.ListRewards(c.Request.Context(), userID)
	if err != nil {
		handleDBError(c, err, "Rewards not found")
		return
	}
	sendList(c, rewards, int64(len(rewards)))
}

// ApplyCredit redeems a pending reward as account credit.
func (h *RewardHandler) ApplyCredit(c *gin.Context) {
	userID, rewardID, ok := h.rewardRequest(c)
	if !ok {
		return
	}

	result, err := h.common.redemption.ApplyCredit(c.Request.Context(), userID, rewardID)
	if err != nil {
		h.sendRedemptionError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// ShareReward redeems a pending reward as a referral link with QR code.
func (h *RewardHandler) ShareReward(c *gin.Context) {
	userID, rewardID, ok := h.rewardRequest(c)
	if !ok {
		return
	}

	result, err := h.common.redemption.ShareReferral(c.Request.Context(), userID, rewardID)
	if err != nil {
		h.sendRedemptionError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

func (h *RewardHandler) rewardRequest(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, err := auth.GetUserID(c)
	if err != nil {
		sendError(c, http.StatusUnauthorized, "Not authenticated", err)
		return uuid.Nil, uuid.Nil, false
	}
	rewardID, err := uuid.Parse(c.Param("reward_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid reward ID format", err)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, rewardID, true
}

func (h *RewardHandler) sendRedemptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRewardProcessed):
		sendError(c, http.StatusConflict, "Reward already processed", err)
	case errors.Is(err, services.ErrNoStripeCustomer):
		sendError(c, http.StatusUnprocessableEntity, "No billing customer linked to profile", err)
	default:
		sendError(c, http.StatusUnprocessableEntity, "Redemption failed", err)
	}
}

// resolveTargetUser returns the requested user when the caller is staff,
// otherwise the caller's own ID. A non-staff caller naming another user is
// rejected.
func (h *RewardHandler) resolveTargetUser(c *gin.Context, requested string) (uuid.UUID, error) {
	callerID, err := auth.GetUserID(c)
	if err != nil {
		return uuid.Nil, err
	}
	if requested == "" {
		return callerID, nil
	}

	targetID, err := uuid.Parse(requested)
	if err != nil {
		return uuid.Nil, errors.New("invalid user ID format")
	}
	if targetID == callerID {
		return callerID, nil
	}

	role := c.GetString("userRole")
	for _, staff := range constants.StaffRoles {
		if role == staff {
			return targetID, nil
		}
	}
	return uuid.Nil, errors.New("cannot access another user's rewards")
}
