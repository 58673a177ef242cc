package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/client/billing"
	"github.com/aharewards/aha-api/internal/constants"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/logger"
)

const (
	referralValidity = 30 * 24 * time.Hour
	referralCodeLen  = 16
	qrCodeSize       = 256
)

// ErrRewardProcessed is returned when a redemption targets a reward that
// already left the pending state.
var ErrRewardProcessed = errors.New("reward already processed")

// ErrNoStripeCustomer is returned when the profile has no billing customer
// to credit.
var ErrNoStripeCustomer = errors.New("no billing customer linked to profile")

// RedemptionService converts pending rewards into account credit or a
// shareable referral. Both paths are terminal for the reward.
type RedemptionService struct {
	queries    db.Querier
	billing    billing.Provider
	appBaseURL string
	logger     *zap.Logger
}

func NewRedemptionService(queries db.Querier, provider billing.Provider, appBaseURL string) *RedemptionService {
	return &RedemptionService{
		queries:    queries,
		billing:    provider,
		appBaseURL: appBaseURL,
		logger:     logger.Log,
	}
}

// ApplyCreditResult describes a successful credit redemption.
type ApplyCreditResult struct {
	RewardID     uuid.UUID `json:"reward_id"`
	MonthsEarned int32     `json:"months_earned"`
	CreditAmount int64     `json:"credit_amount"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
}

// ApplyCredit redeems a pending reward as a billing balance credit worth the
// reward's months at the customer's current unit price. The credit is posted
// before the reward flips to applied, so a sequential replay is rejected at
// the pending check before any credit is issued; when the flip itself loses
// the pending-state race the call reports ErrRewardProcessed.
func (s *RedemptionService) ApplyCredit(ctx context.Context, userID, rewardID uuid.UUID) (*ApplyCreditResult, error) {
	reward, err := s.loadPendingReward(ctx, userID, rewardID)
	if err != nil {
		return nil, err
	}

	profile, err := s.queries.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if !profile.StripeCustomerID.Valid || profile.StripeCustomerID.String == "" {
		return nil, ErrNoStripeCustomer
	}

	sub, err := s.queries.GetActiveSubscriptionByUser(ctx, pgUUID(userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("no active subscription to credit against")
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}

	unitAmount, currency, err := s.resolveUnitPrice(ctx, sub)
	if err != nil {
		return nil, err
	}
	creditAmount := unitAmount * int64(reward.MonthsEarned)

	description := fmt.Sprintf("Loyalty reward: %d month(s) free service", reward.MonthsEarned)
	_, err = s.billing.CreditCustomerBalance(ctx, profile.StripeCustomerID.String, -creditAmount, description, map[string]string{
		"reward_id":     reward.ID.String(),
		"user_id":       userID.String(),
		"months_earned": strconv.Itoa(int(reward.MonthsEarned)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to credit balance: %w", err)
	}

	if _, err := s.queries.ApplyLoyaltyReward(ctx, db.ApplyLoyaltyRewardParams{
		ID:        reward.ID,
		ClaimedAt: ts(time.Now()),
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRewardProcessed
		}
		return nil, fmt.Errorf("failed to mark reward applied: %w", err)
	}

	s.logger.Info("Applied loyalty reward as credit",
		zap.String("reward_id", reward.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int64("credit_amount", creditAmount))

	return &ApplyCreditResult{
		RewardID:     reward.ID,
		MonthsEarned: reward.MonthsEarned,
		CreditAmount: creditAmount,
		Currency:     currency,
		Status:       constants.RewardStatusApplied,
	}, nil
}

// ShareReferralResult describes a reward converted into a referral.
type ShareReferralResult struct {
	RewardID     uuid.UUID `json:"reward_id"`
	ReferralCode string    `json:"referral_code"`
	ReferralURL  string    `json:"referral_url"`
	QRCode       string    `json:"qr_code"`
	ExpiresAt    time.Time `json:"expires_at"`
	Status       string    `json:"status"`
}

// ShareReferral redeems a pending reward as a single-use referral link with
// a QR code, valid for 30 days.
func (s *RedemptionService) ShareReferral(ctx context.Context, userID, rewardID uuid.UUID) (*ShareReferralResult, error) {
	reward, err := s.loadPendingReward(ctx, userID, rewardID)
	if err != nil {
		return nil, err
	}

	code, err := generateReferralCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate referral code: %w", err)
	}
	expiresAt := time.Now().Add(referralValidity)

	if _, err := s.queries.ShareLoyaltyReward(ctx, db.ShareLoyaltyRewardParams{
		ID:                reward.ID,
		ClaimedAt:         ts(time.Now()),
		ReferralCode:      textOrNull(code),
		ReferralExpiresAt: ts(expiresAt),
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRewardProcessed
		}
		return nil, fmt.Errorf("failed to mark reward shared: %w", err)
	}

	referralURL := fmt.Sprintf("%s/auth/v1/register?ref=%s", s.appBaseURL, code)

	png, err := qrcode.Encode(referralURL, qrcode.Medium, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render referral QR code: %w", err)
	}

	s.logger.Info("Shared loyalty reward as referral",
		zap.String("reward_id", reward.ID.String()),
		zap.String("user_id", userID.String()))

	return &ShareReferralResult{
		RewardID:     reward.ID,
		ReferralCode: code,
		ReferralURL:  referralURL,
		QRCode:       "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		ExpiresAt:    expiresAt,
		Status:       constants.RewardStatusShared,
	}, nil
}

// loadPendingReward fetches the reward and enforces ownership and the
// pending precondition.
func (s *RedemptionService) loadPendingReward(ctx context.Context, userID, rewardID uuid.UUID) (db.LoyaltyReward, error) {
	reward, err := s.queries.GetLoyaltyReward(ctx, rewardID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.LoyaltyReward{}, errors.New("reward not found")
		}
		return db.LoyaltyReward{}, fmt.Errorf("failed to load reward: %w", err)
	}
	if reward.UserID != userID {
		// Do not leak existence of another user's reward.
		return db.LoyaltyReward{}, errors.New("reward not found")
	}
	if reward.Status != constants.RewardStatusPending {
		return db.LoyaltyReward{}, ErrRewardProcessed
	}
	return reward, nil
}

// resolveUnitPrice reads the live unit price from the billing provider,
// falling back to the stored plan amount when the provider call fails.
func (s *RedemptionService) resolveUnitPrice(ctx context.Context, sub db.Subscription) (int64, string, error) {
	live, err := s.billing.GetSubscription(ctx, sub.StripeSubscriptionID)
	if err == nil && live.UnitAmount > 0 {
		currency := live.Currency
		if currency == "" {
			currency = "usd"
		}
		return live.UnitAmount, currency, nil
	}
	if err != nil {
		s.logger.Warn("Falling back to stored plan amount",
			zap.String("stripe_subscription_id", sub.StripeSubscriptionID),
			zap.Error(err))
	}
	if sub.PlanAmount.Valid && sub.PlanAmount.Int64 > 0 {
		currency := "usd"
		if sub.Currency.Valid && sub.Currency.String != "" {
			currency = sub.Currency.String
		}
		return sub.PlanAmount.Int64, currency, nil
	}
	return 0, "", errors.New("could not determine subscription unit price")
}

func generateReferralCode() (string, error) {
	buf := make([]byte, referralCodeLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
