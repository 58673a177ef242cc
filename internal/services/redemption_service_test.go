package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aharewards/aha-api/internal/client/billing"
	"github.com/aharewards/aha-api/internal/constants"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/mocks"
	"github.com/aharewards/aha-api/internal/services"
)

const testAppBaseURL = "https://app.example.com"

func TestRedemptionService_ApplyCredit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	rewardID := uuid.New()

	var credited struct {
		customerID string
		amount     int64
		metadata   map[string]string
	}
	provider := &fakeProvider{
		getSubscription: func(_ context.Context, subscriptionID string) (billing.Subscription, error) {
			assert.Equal(t, "sub_123", subscriptionID)
			return billing.Subscription{ID: subscriptionID, UnitAmount: 5000, Currency: "usd"}, nil
		},
		creditBalance: func(_ context.Context, customerID string, amount int64, description string, metadata map[string]string) (billing.BalanceTransaction, error) {
			credited.customerID = customerID
			credited.amount = amount
			credited.metadata = metadata
			assert.Contains(t, description, "2 month(s)")
			return billing.BalanceTransaction{ID: "cbtxn_1", Amount: amount}, nil
		},
	}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(db.LoyaltyReward{
		ID:           rewardID,
		UserID:       userID,
		MonthsEarned: 2,
		Status:       constants.RewardStatusPending,
	}, nil)
	mockQuerier.EXPECT().GetProfile(gomock.Any(), userID).Return(db.Profile{
		ID:               userID,
		StripeCustomerID: pgtype.Text{String: "cus_1", Valid: true},
	}, nil)
	mockQuerier.EXPECT().GetActiveSubscriptionByUser(gomock.Any(), gomock.Any()).Return(db.Subscription{
		StripeSubscriptionID: "sub_123",
		Status:               "active",
	}, nil)
	mockQuerier.EXPECT().ApplyLoyaltyReward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ApplyLoyaltyRewardParams) (db.LoyaltyReward, error) {
			assert.Equal(t, rewardID, arg.ID)
			assert.True(t, arg.ClaimedAt.Valid)
			return db.LoyaltyReward{ID: rewardID, Status: constants.RewardStatusApplied}, nil
		})

	service := services.NewRedemptionService(mockQuerier, provider, testAppBaseURL)
	result, err := service.ApplyCredit(context.Background(), userID, rewardID)

	require.NoError(t, err)
	assert.Equal(t, int64(10000), result.CreditAmount)
	assert.Equal(t, "usd", result.Currency)
	assert.Equal(t, constants.RewardStatusApplied, result.Status)

	// The balance credit is negative and traceable back to the reward.
	assert.Equal(t, "cus_1", credited.customerID)
	assert.Equal(t, int64(-10000), credited.amount)
	assert.Equal(t, rewardID.String(), credited.metadata["reward_id"])
}

func TestRedemptionService_ApplyCredit_Preconditions(t *testing.T) {
	userID := uuid.New()
	rewardID := uuid.New()
	pending := db.LoyaltyReward{
		ID:           rewardID,
		UserID:       userID,
		MonthsEarned: 1,
		Status:       constants.RewardStatusPending,
	}

	tests := []struct {
		name        string
		mockSetup   func(m *mocks.MockQuerier)
		wantErr     error
		errorString string
	}{
		{
			name: "already applied",
			mockSetup: func(m *mocks.MockQuerier) {
				applied := pending
				applied.Status = constants.RewardStatusApplied
				m.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(applied, nil)
			},
			wantErr: services.ErrRewardProcessed,
		},
		{
			name: "already shared",
			mockSetup: func(m *mocks.MockQuerier) {
				shared := pending
				shared.Status = constants.RewardStatusShared
				m.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(shared, nil)
			},
			wantErr: services.ErrRewardProcessed,
		},
		{
			name: "reward belongs to someone else",
			mockSetup: func(m *mocks.MockQuerier) {
				other := pending
				other.UserID = uuid.New()
				m.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(other, nil)
			},
			errorString: "reward not found",
		},
		{
			name: "reward missing",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(db.LoyaltyReward{}, pgx.ErrNoRows)
			},
			errorString: "reward not found",
		},
		{
			name: "no billing customer on profile",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(pending, nil)
				m.EXPECT().GetProfile(gomock.Any(), userID).Return(db.Profile{ID: userID}, nil)
			},
			wantErr: services.ErrNoStripeCustomer,
		},
		{
			name: "no active subscription",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(pending, nil)
				m.EXPECT().GetProfile(gomock.Any(), userID).Return(db.Profile{
					ID:               userID,
					StripeCustomerID: pgtype.Text{String: "cus_1", Valid: true},
				}, nil)
				m.EXPECT().GetActiveSubscriptionByUser(gomock.Any(), gomock.Any()).
					Return(db.Subscription{}, pgx.ErrNoRows)
			},
			errorString: "no active subscription",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			service := services.NewRedemptionService(mockQuerier, &fakeProvider{}, testAppBaseURL)
			result, err := service.ApplyCredit(context.Background(), userID, rewardID)

			require.Error(t, err)
			assert.Nil(t, result)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errorString != "" {
				assert.Contains(t, err.Error(), tt.errorString)
			}
		})
	}
}

func TestRedemptionService_ApplyCredit_FallsBackToStoredPlanAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	rewardID := uuid.New()

	// getSubscription fails; the stored plan amount covers the credit.
	provider := &fakeProvider{
		creditBalance: func(_ context.Context, _ string, amount int64, _ string, _ map[string]string) (billing.BalanceTransaction, error) {
			assert.Equal(t, int64(-4500), amount)
			return billing.BalanceTransaction{}, nil
		},
	}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(db.LoyaltyReward{
		ID:           rewardID,
		UserID:       userID,
		MonthsEarned: 1,
		Status:       constants.RewardStatusPending,
	}, nil)
	mockQuerier.EXPECT().GetProfile(gomock.Any(), userID).Return(db.Profile{
		ID:               userID,
		StripeCustomerID: pgtype.Text{String: "cus_1", Valid: true},
	}, nil)
	mockQuerier.EXPECT().GetActiveSubscriptionByUser(gomock.Any(), gomock.Any()).Return(db.Subscription{
		StripeSubscriptionID: "sub_123",
		Status:               "active",
		PlanAmount:           pgtype.Int8{Int64: 4500, Valid: true},
		Currency:             pgtype.Text{String: "usd", Valid: true},
	}, nil)
	mockQuerier.EXPECT().ApplyLoyaltyReward(gomock.Any(), gomock.Any()).
		Return(db.LoyaltyReward{ID: rewardID}, nil)

	service := services.NewRedemptionService(mockQuerier, provider, testAppBaseURL)
	result, err := service.ApplyCredit(context.Background(), userID, rewardID)

	require.NoError(t, err)
	assert.Equal(t, int64(4500), result.CreditAmount)
}

func TestRedemptionService_ShareReferral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	rewardID := uuid.New()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(db.LoyaltyReward{
		ID:           rewardID,
		UserID:       userID,
		MonthsEarned: 1,
		Status:       constants.RewardStatusPending,
	}, nil)
	mockQuerier.EXPECT().ShareLoyaltyReward(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ShareLoyaltyRewardParams) (db.LoyaltyReward, error) {
			assert.Equal(t, rewardID, arg.ID)
			assert.True(t, arg.ReferralCode.Valid)
			assert.Len(t, arg.ReferralCode.String, 32)
			assert.True(t, arg.ReferralExpiresAt.Valid)
			return db.LoyaltyReward{ID: rewardID, Status: constants.RewardStatusShared}, nil
		})

	service := services.NewRedemptionService(mockQuerier, &fakeProvider{}, testAppBaseURL)
	result, err := service.ShareReferral(context.Background(), userID, rewardID)

	require.NoError(t, err)
	assert.Equal(t, constants.RewardStatusShared, result.Status)
	assert.True(t, strings.HasPrefix(result.ReferralURL, testAppBaseURL+"/auth/v1/register?ref="))
	assert.Contains(t, result.ReferralURL, result.ReferralCode)
	assert.True(t, strings.HasPrefix(result.QRCode, "data:image/png;base64,"))
	assert.False(t, result.ExpiresAt.IsZero())
}

func TestRedemptionService_ShareReferral_LosesPendingRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	rewardID := uuid.New()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().GetLoyaltyReward(gomock.Any(), rewardID).Return(db.LoyaltyReward{
		ID:           rewardID,
		UserID:       userID,
		MonthsEarned: 1,
		Status:       constants.RewardStatusPending,
	}, nil)
	// Another request claimed the reward between the read and the update.
	mockQuerier.EXPECT().ShareLoyaltyReward(gomock.Any(), gomock.Any()).
		Return(db.LoyaltyReward{}, pgx.ErrNoRows)

	service := services.NewRedemptionService(mockQuerier, &fakeProvider{}, testAppBaseURL)
	_, err := service.ShareReferral(context.Background(), userID, rewardID)

	assert.ErrorIs(t, err, services.ErrRewardProcessed)
}
