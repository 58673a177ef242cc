// Package stripe implements the billing.Provider contract against Stripe
// using the stripe-go v82 client API.
package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/logger"
)

// Service is the Stripe-backed billing provider. Construct it once at
// process start and inject it wherever billing access is needed; it holds no
// mutable state beyond the configured client.
type Service struct {
	client        *stripe.Client
	webhookSecret string
	logger        *zap.Logger
}

// NewService creates a configured Stripe service.
func NewService(apiKey, webhookSecret string) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe: api key is required")
	}
	return &Service{
		client:        stripe.NewClient(apiKey, nil),
		webhookSecret: webhookSecret,
		logger:        logger.Log,
	}, nil
}

// CheckConnection verifies the API key with a cheap account retrieve.
func (s *Service) CheckConnection(ctx context.Context) error {
	_, err := s.client.V1Accounts.Retrieve(ctx, &stripe.AccountRetrieveParams{})
	if err != nil {
		s.logger.Error("Stripe connection check failed", zap.Error(err))
		return fmt.Errorf("stripe: connection check failed: %w", err)
	}
	return nil
}
