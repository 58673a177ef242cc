package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/aharewards/aha-api/internal/constants"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/logger"
	"github.com/aharewards/aha-api/internal/mocks"
	"github.com/aharewards/aha-api/internal/services"
)

func init() {
	// Initialize logger for tests
	logger.InitTestLogger()
}

type fakeNotifier struct {
	sentTo     []string
	sentMonths []int32
	err        error
}

func (f *fakeNotifier) SendRewardEarned(_ context.Context, toEmail string, months int32) error {
	f.sentTo = append(f.sentTo, toEmail)
	f.sentMonths = append(f.sentMonths, months)
	return f.err
}

func TestRewardService_Recalculate(t *testing.T) {
	userID := uuid.New()
	sub := db.Subscription{
		StripeSubscriptionID: "sub_123",
		Status:               "canceled",
	}

	tests := []struct {
		name        string
		mockSetup   func(m *mocks.MockQuerier)
		want        *services.RecalculateResult
		wantErr     bool
		errorString string
	}{
		{
			name: "creates missing rewards from payment history",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().ListSubscriptionsByUser(gomock.Any(), gomock.Any()).Return([]db.Subscription{sub}, nil)
				m.EXPECT().CountSucceededPayments(gomock.Any(), "sub_123").Return(int64(9), nil)
				m.EXPECT().CountLoyaltyRewardsByUserAndType(gomock.Any(), db.CountLoyaltyRewardsByUserAndTypeParams{
					UserID:     userID,
					RewardType: constants.RewardTypeQuarterly,
				}).Return(int64(1), nil)
				m.EXPECT().CreateLoyaltyReward(gomock.Any(), gomock.Any()).
					Return(db.LoyaltyReward{ID: uuid.New(), UserID: userID, MonthsEarned: 1}, nil).
					Times(2)
				m.EXPECT().GetProfile(gomock.Any(), userID).
					Return(db.Profile{ID: userID, Email: "member@example.com"}, nil)
			},
			want: &services.RecalculateResult{
				PaymentCount:      9,
				ExpectedRewards:   3,
				ExistingRewards:   1,
				NewRewardsCreated: 2,
			},
		},
		{
			name: "no new rewards when counts already converged",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().ListSubscriptionsByUser(gomock.Any(), gomock.Any()).Return([]db.Subscription{sub}, nil)
				m.EXPECT().CountSucceededPayments(gomock.Any(), "sub_123").Return(int64(8), nil)
				m.EXPECT().CountLoyaltyRewardsByUserAndType(gomock.Any(), gomock.Any()).Return(int64(2), nil)
			},
			want: &services.RecalculateResult{
				PaymentCount:    8,
				ExpectedRewards: 2,
				ExistingRewards: 2,
			},
		},
		{
			name: "two payments earn nothing",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().ListSubscriptionsByUser(gomock.Any(), gomock.Any()).Return([]db.Subscription{sub}, nil)
				m.EXPECT().CountSucceededPayments(gomock.Any(), "sub_123").Return(int64(2), nil)
				m.EXPECT().CountLoyaltyRewardsByUserAndType(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			want: &services.RecalculateResult{
				PaymentCount: 2,
			},
		},
		{
			name: "no subscription",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().ListSubscriptionsByUser(gomock.Any(), gomock.Any()).Return([]db.Subscription{}, nil)
			},
			wantErr:     true,
			errorString: "no subscription found",
		},
		{
			name: "payment count query fails",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().ListSubscriptionsByUser(gomock.Any(), gomock.Any()).Return([]db.Subscription{sub}, nil)
				m.EXPECT().CountSucceededPayments(gomock.Any(), "sub_123").Return(int64(0), errors.New("database error"))
			},
			wantErr:     true,
			errorString: "failed to count payments",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			notifier := &fakeNotifier{}
			service := services.NewRewardService(mockQuerier, notifier)
			got, err := service.Recalculate(context.Background(), userID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, err.Error(), tt.errorString)
				}
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRewardService_Recalculate_NotifiesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().ListSubscriptionsByUser(gomock.Any(), gomock.Any()).
		Return([]db.Subscription{{StripeSubscriptionID: "sub_123", Status: "active"}}, nil)
	mockQuerier.EXPECT().CountSucceededPayments(gomock.Any(), "sub_123").Return(int64(3), nil)
	mockQuerier.EXPECT().CountLoyaltyRewardsByUserAndType(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	mockQuerier.EXPECT().CreateLoyaltyReward(gomock.Any(), gomock.Any()).
		Return(db.LoyaltyReward{ID: uuid.New(), UserID: userID, MonthsEarned: 1}, nil)
	mockQuerier.EXPECT().GetProfile(gomock.Any(), userID).
		Return(db.Profile{ID: userID, Email: "member@example.com"}, nil)

	notifier := &fakeNotifier{}
	service := services.NewRewardService(mockQuerier, notifier)
	_, err := service.Recalculate(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, []string{"member@example.com"}, notifier.sentTo)
}

func TestRewardService_HandlePaymentSucceeded(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func(m *mocks.MockQuerier)
	}{
		{
			name: "creates reward at third payment",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetSubscriptionByStripeID(gomock.Any(), "sub_123").
					Return(db.Subscription{StripeSubscriptionID: "sub_123", Status: "active"}, nil)
				m.EXPECT().CountSucceededPayments(gomock.Any(), "sub_123").Return(int64(3), nil)
				m.EXPECT().CountRecentLoyaltyRewards(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				m.EXPECT().CreateLoyaltyReward(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreateLoyaltyRewardParams) (db.LoyaltyReward, error) {
						assert.Equal(t, userID, arg.UserID)
						assert.Equal(t, constants.RewardTypeQuarterly, arg.RewardType)
						assert.Equal(t, int32(1), arg.MonthsEarned)
						assert.True(t, arg.ExpiresAt.Valid)
						return db.LoyaltyReward{ID: uuid.New(), UserID: userID, MonthsEarned: 1}, nil
					})
				m.EXPECT().GetProfile(gomock.Any(), userID).
					Return(db.Profile{ID: userID, Email: "member@example.com"}, nil)
			},
		},
		{
			name: "fourth payment is not a milestone",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetSubscriptionByStripeID(gomock.Any(), "sub_123").
					Return(db.Subscription{StripeSubscriptionID: "sub_123", Status: "active"}, nil)
				m.EXPECT().CountSucceededPayments(gomock.Any(), "sub_123").Return(int64(4), nil)
			},
		},
		{
			name: "inactive subscription earns nothing",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetSubscriptionByStripeID(gomock.Any(), "sub_123").
					Return(db.Subscription{StripeSubscriptionID: "sub_123", Status: "canceled"}, nil)
			},
		},
		{
			name: "recent reward suppresses duplicate delivery",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetSubscriptionByStripeID(gomock.Any(), "sub_123").
					Return(db.Subscription{StripeSubscriptionID: "sub_123", Status: "active"}, nil)
				m.EXPECT().CountSucceededPayments(gomock.Any(), "sub_123").Return(int64(6), nil)
				m.EXPECT().CountRecentLoyaltyRewards(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "unknown subscription is skipped",
			mockSetup: func(m *mocks.MockQuerier) {
				m.EXPECT().GetSubscriptionByStripeID(gomock.Any(), "sub_123").
					Return(db.Subscription{}, pgx.ErrNoRows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.mockSetup(mockQuerier)

			service := services.NewRewardService(mockQuerier, &fakeNotifier{})
			err := service.HandlePaymentSucceeded(context.Background(), userID, "sub_123")
			assert.NoError(t, err)
		})
	}
}
