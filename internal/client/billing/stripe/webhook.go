package stripe

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/client/billing"
)

func mapInvoice(inv *stripe.Invoice) *billing.Invoice {
	out := &billing.Invoice{
		ID:            inv.ID,
		CustomerEmail: inv.CustomerEmail,
		AmountPaid:    inv.AmountPaid,
		AmountDue:     inv.AmountDue,
		Currency:      string(inv.Currency),
		Created:       time.Unix(inv.Created, 0),
	}
	if inv.Customer != nil {
		out.CustomerID = inv.Customer.ID
	}
	if inv.Parent != nil && inv.Parent.SubscriptionDetails != nil && inv.Parent.SubscriptionDetails.Subscription != nil {
		out.SubscriptionID = inv.Parent.SubscriptionDetails.Subscription.ID
	}
	if inv.Payments != nil && len(inv.Payments.Data) > 0 {
		p := inv.Payments.Data[0]
		if p != nil && p.Payment != nil && p.Payment.PaymentIntent != nil {
			out.PaymentIntentID = p.Payment.PaymentIntent.ID
		}
	}
	// Older API versions omit the payment list on the event payload; the
	// invoice ID is unique per billing attempt and serves as the dedup key.
	if out.PaymentIntentID == "" {
		out.PaymentIntentID = inv.ID
	}
	return out
}

// ConstructWebhookEvent verifies the Stripe signature and decodes the event
// into the canonical shape. Unhandled event types come back with an empty
// Type so the caller can acknowledge and skip them.
func (s *Service) ConstructWebhookEvent(payload []byte, signatureHeader string) (billing.WebhookEvent, error) {
	if s.webhookSecret == "" {
		return billing.WebhookEvent{}, fmt.Errorf("stripe: webhook secret not configured")
	}

	event, err := webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
	if err != nil {
		s.logger.Error("Webhook signature verification failed", zap.Error(err))
		return billing.WebhookEvent{}, fmt.Errorf("stripe: webhook signature verification failed: %w", err)
	}

	s.logger.Info("Received Stripe webhook event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))

	out := billing.WebhookEvent{ID: event.ID}

	switch event.Type {
	case stripe.EventTypeCustomerCreated, stripe.EventTypeCustomerUpdated:
		var cust stripe.Customer
		if err := json.Unmarshal(event.Data.Raw, &cust); err != nil {
			return out, fmt.Errorf("stripe: unmarshal %s data: %w", event.Type, err)
		}
		c := mapCustomer(&cust)
		out.Customer = &c
		out.Type = billing.EventType(event.Type)

	case stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionUpdated,
		stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return out, fmt.Errorf("stripe: unmarshal %s data: %w", event.Type, err)
		}
		sb := mapSubscription(&sub)
		out.Subscription = &sb
		out.Type = billing.EventType(event.Type)

	case stripe.EventTypeInvoicePaymentSucceeded, stripe.EventTypeInvoicePaymentFailed:
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return out, fmt.Errorf("stripe: unmarshal %s data: %w", event.Type, err)
		}
		out.Invoice = mapInvoice(&inv)
		out.Type = billing.EventType(event.Type)

	default:
		s.logger.Debug("Ignoring unhandled Stripe event type", zap.String("event_type", string(event.Type)))
	}

	return out, nil
}
