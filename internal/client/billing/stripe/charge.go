package stripe

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/client/billing"
)

func mapCharge(ch *stripe.Charge) billing.Charge {
	out := billing.Charge{
		ID:        ch.ID,
		Amount:    ch.Amount,
		Currency:  string(ch.Currency),
		Succeeded: ch.Status == "succeeded",
		Created:   time.Unix(ch.Created, 0),
	}
	if ch.PaymentIntent != nil {
		out.PaymentIntentID = ch.PaymentIntent.ID
	}
	return out
}

// ListCharges returns the customer's most recent charges, newest first.
func (s *Service) ListCharges(ctx context.Context, customerID string, limit int) ([]billing.Charge, error) {
	params := &stripe.ChargeListParams{
		Customer: stripe.String(customerID),
	}
	if limit > 0 {
		params.Limit = stripe.Int64(int64(limit))
	}

	var charges []billing.Charge
	for ch, err := range s.client.V1Charges.List(ctx, params) {
		if err != nil {
			s.logger.Error("Error iterating Stripe charges list",
				zap.String("stripe_customer_id", customerID), zap.Error(err))
			return nil, fmt.Errorf("stripe: list charges for %s: %w", customerID, err)
		}
		if ch == nil {
			continue
		}
		charges = append(charges, mapCharge(ch))
		if limit > 0 && len(charges) >= limit {
			break
		}
	}
	return charges, nil
}
