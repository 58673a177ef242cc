package stripe

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/client/billing"
)

// mapSubscription flattens the first subscription item; the dashboard only
// sells single-item subscriptions. Billing-period timestamps live on the
// item in the v82 API.
func mapSubscription(sub *stripe.Subscription) billing.Subscription {
	out := billing.Subscription{
		ID:                sub.ID,
		Status:            string(sub.Status),
		CancelAtPeriodEnd: sub.CancelAtPeriodEnd,
		Created:           time.Unix(sub.Created, 0),
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0] != nil {
		item := sub.Items.Data[0]
		out.CurrentPeriodStart = time.Unix(item.CurrentPeriodStart, 0)
		out.CurrentPeriodEnd = time.Unix(item.CurrentPeriodEnd, 0)
		if item.Price != nil {
			out.PriceID = item.Price.ID
			out.PriceNickname = item.Price.Nickname
			out.PriceMetadata = item.Price.Metadata
			out.UnitAmount = item.Price.UnitAmount
			out.Currency = string(item.Price.Currency)
			if item.Price.Recurring != nil {
				out.Interval = string(item.Price.Recurring.Interval)
			}
			if item.Price.Product != nil {
				out.ProductID = item.Price.Product.ID
			}
		}
	}
	return out
}

// ListSubscriptions returns up to limit subscriptions for the customer.
// status of "" lists all statuses, newest first.
func (s *Service) ListSubscriptions(ctx context.Context, customerID, status string, limit int) ([]billing.Subscription, error) {
	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
	}
	if status != "" {
		params.Status = stripe.String(status)
	} else {
		params.Status = stripe.String("all")
	}
	if limit > 0 {
		params.Limit = stripe.Int64(int64(limit))
	}

	var subs []billing.Subscription
	for sub, err := range s.client.V1Subscriptions.List(ctx, params) {
		if err != nil {
			s.logger.Error("Error iterating Stripe subscriptions list",
				zap.String("stripe_customer_id", customerID), zap.Error(err))
			return nil, fmt.Errorf("stripe: list subscriptions for %s: %w", customerID, err)
		}
		if sub == nil {
			continue
		}
		subs = append(subs, mapSubscription(sub))
		if limit > 0 && len(subs) >= limit {
			break
		}
	}
	return subs, nil
}

// GetSubscription retrieves a single subscription.
func (s *Service) GetSubscription(ctx context.Context, subscriptionID string) (billing.Subscription, error) {
	sub, err := s.client.V1Subscriptions.Retrieve(ctx, subscriptionID, &stripe.SubscriptionRetrieveParams{})
	if err != nil {
		return billing.Subscription{}, fmt.Errorf("stripe: retrieve subscription %s: %w", subscriptionID, err)
	}
	return mapSubscription(sub), nil
}

// GetProduct resolves a product for plan-label display.
func (s *Service) GetProduct(ctx context.Context, productID string) (billing.Product, error) {
	prod, err := s.client.V1Products.Retrieve(ctx, productID, &stripe.ProductRetrieveParams{})
	if err != nil {
		return billing.Product{}, fmt.Errorf("stripe: retrieve product %s: %w", productID, err)
	}
	return billing.Product{ID: prod.ID, Name: prod.Name}, nil
}
