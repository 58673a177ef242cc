package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/constants"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/logger"
)

const (
	// milestoneInterval: every 3rd successful payment earns one month.
	milestoneInterval = 3

	// duplicateGuardWindow suppresses reward creation when one was already
	// created recently. Guards against duplicate webhook delivery.
	duplicateGuardWindow = 7 * 24 * time.Hour
)

// RewardNotifier is notified after new rewards are created. Implemented by
// the email service; may be nil.
type RewardNotifier interface {
	SendRewardEarned(ctx context.Context, toEmail string, monthsEarned int32) error
}

// RewardService derives loyalty rewards from successful-payment counts.
type RewardService struct {
	queries  db.Querier
	notifier RewardNotifier
	logger   *zap.Logger
}

// NewRewardService creates a reward calculator. notifier may be nil.
func NewRewardService(queries db.Querier, notifier RewardNotifier) *RewardService {
	return &RewardService{
		queries:  queries,
		notifier: notifier,
		logger:   logger.Log,
	}
}

// RecalculateResult summarizes an on-demand recalculation.
type RecalculateResult struct {
	PaymentCount      int64 `json:"payment_count"`
	ExpectedRewards   int64 `json:"expected_rewards"`
	ExistingRewards   int64 `json:"existing_rewards"`
	NewRewardsCreated int   `json:"new_rewards_created"`
}

// Recalculate converges the user's reward count with their total historical
// succeeded payments: floor(count/3) quarterly rewards must exist. This
// path deliberately ignores the subscription's current status; a canceled
// subscriber keeps rewards already earned.
func (s *RewardService) Recalculate(ctx context.Context, userID uuid.UUID) (*RecalculateResult, error) {
	subs, err := s.queries.ListSubscriptionsByUser(ctx, pgUUID(userID))
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	if len(subs) == 0 {
		return nil, fmt.Errorf("no subscription found for user")
	}
	sub := subs[0]

	paymentCount, err := s.queries.CountSucceededPayments(ctx, sub.StripeSubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	expected := paymentCount / milestoneInterval

	existing, err := s.queries.CountLoyaltyRewardsByUserAndType(ctx, db.CountLoyaltyRewardsByUserAndTypeParams{
		UserID:     userID,
		RewardType: constants.RewardTypeQuarterly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count existing rewards: %w", err)
	}

	result := &RecalculateResult{
		PaymentCount:    paymentCount,
		ExpectedRewards: expected,
		ExistingRewards: existing,
	}

	for i := existing; i < expected; i++ {
		if _, err := s.createReward(ctx, userID); err != nil {
			return nil, err
		}
		result.NewRewardsCreated++
	}

	if result.NewRewardsCreated > 0 {
		s.logger.Info("Created loyalty rewards from recalculation",
			zap.String("user_id", userID.String()),
			zap.Int("created", result.NewRewardsCreated),
			zap.Int64("payment_count", paymentCount))
		s.notify(ctx, userID, int32(result.NewRewardsCreated))
	}
	return result, nil
}

// HandlePaymentSucceeded is the reactive path, called after a succeeded
// payment is recorded. Unlike Recalculate it requires the subscription to
// be active and applies the duplicate-delivery guard.
func (s *RewardService) HandlePaymentSucceeded(ctx context.Context, userID uuid.UUID, stripeSubscriptionID string) error {
	sub, err := s.queries.GetSubscriptionByStripeID(ctx, stripeSubscriptionID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Debug("No local subscription for payment, skipping reward check",
				zap.String("stripe_subscription_id", stripeSubscriptionID))
			return nil
		}
		return fmt.Errorf("failed to load subscription: %w", err)
	}
	if sub.Status != "active" {
		// A payment settling on an already-canceled subscription earns nothing.
		s.logger.Debug("Subscription not active, skipping reward check",
			zap.String("stripe_subscription_id", stripeSubscriptionID),
			zap.String("status", sub.Status))
		return nil
	}

	paymentCount, err := s.queries.CountSucceededPayments(ctx, stripeSubscriptionID)
	if err != nil {
		return fmt.Errorf("failed to count payments: %w", err)
	}
	if paymentCount == 0 || paymentCount%milestoneInterval != 0 {
		return nil
	}

	recent, err := s.queries.CountRecentLoyaltyRewards(ctx, db.CountRecentLoyaltyRewardsParams{
		UserID:       userID,
		RewardType:   constants.RewardTypeQuarterly,
		CreatedAfter: ts(time.Now().Add(-duplicateGuardWindow)),
	})
	if err != nil {
		return fmt.Errorf("failed to check recent rewards: %w", err)
	}
	if recent > 0 {
		s.logger.Info("Reward for this milestone already created recently, skipping",
			zap.String("user_id", userID.String()),
			zap.Int64("payment_count", paymentCount))
		return nil
	}

	reward, err := s.createReward(ctx, userID)
	if err != nil {
		return err
	}
	s.logger.Info("Created loyalty reward at payment milestone",
		zap.String("user_id", userID.String()),
		zap.String("reward_id", reward.ID.String()),
		zap.Int64("payment_count", paymentCount))
	s.notify(ctx, userID, reward.MonthsEarned)
	return nil
}

// ListRewards returns the user's rewards, newest first.
func (s *RewardService) ListRewards(ctx context.Context, userID uuid.UUID) ([]db.LoyaltyReward, error) {
	rewards, err := s.queries.ListLoyaltyRewardsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

func (s *RewardService) createReward(ctx context.Context, userID uuid.UUID) (db.LoyaltyReward, error) {
	reward, err := s.queries.CreateLoyaltyReward(ctx, db.CreateLoyaltyRewardParams{
		UserID:       userID,
		RewardType:   constants.RewardTypeQuarterly,
		MonthsEarned: 1,
		ExpiresAt:    ts(time.Now().AddDate(1, 0, 0)),
	})
	if err != nil {
		return db.LoyaltyReward{}, fmt.Errorf("failed to create reward: %w", err)
	}
	return reward, nil
}

// notify sends the reward-earned email best-effort. Failures are logged and
// never fail the calculation.
func (s *RewardService) notify(ctx context.Context, userID uuid.UUID, months int32) {
	if s.notifier == nil {
		return
	}
	profile, err := s.queries.GetProfile(ctx, userID)
	if err != nil {
		s.logger.Warn("Could not load profile for reward notification",
			zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	if err := s.notifier.SendRewardEarned(ctx, profile.Email, months); err != nil {
		s.logger.Warn("Failed to send reward notification",
			zap.String("user_id", userID.String()), zap.Error(err))
	}
}
