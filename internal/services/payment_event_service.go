package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/client/billing"
	"github.com/aharewards/aha-api/internal/constants"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/logger"
)

// PaymentEventService applies verified billing webhook events to local
// state. Events are idempotent: replays of a payment event are detected by
// the payment intent unique constraint and become no-ops.
type PaymentEventService struct {
	queries db.Querier
	rewards *RewardService
	logger  *zap.Logger
}

func NewPaymentEventService(queries db.Querier, rewards *RewardService) *PaymentEventService {
	return &PaymentEventService{
		queries: queries,
		rewards: rewards,
		logger:  logger.Log,
	}
}

// HandleEvent dispatches a webhook event to its handler. Unrecognized event
// types (Type empty after construction) are acknowledged without action.
func (s *PaymentEventService) HandleEvent(ctx context.Context, event *billing.WebhookEvent) error {
	switch event.Type {
	case billing.EventCustomerCreated, billing.EventCustomerUpdated:
		return s.handleCustomerUpserted(ctx, event.Customer)
	case billing.EventSubscriptionCreated, billing.EventSubscriptionUpdated, billing.EventSubscriptionDeleted:
		return s.handleSubscriptionChanged(ctx, event.Subscription)
	case billing.EventInvoicePaid:
		return s.handleInvoicePaid(ctx, event.Invoice)
	case billing.EventInvoiceFailed:
		return s.handleInvoicePaymentFailed(ctx, event.Invoice)
	default:
		s.logger.Debug("Ignoring webhook event", zap.String("type", string(event.Type)))
		return nil
	}
}

// handleCustomerUpserted refreshes the customer projection from the event
// payload. Customers without an email address are not tracked.
func (s *PaymentEventService) handleCustomerUpserted(ctx context.Context, cust *billing.Customer) error {
	if cust == nil || cust.ID == "" {
		return nil
	}
	if cust.Email == "" {
		s.logger.Debug("Skipping customer without email", zap.String("stripe_customer_id", cust.ID))
		return nil
	}

	existing, err := s.queries.GetCustomerByStripeID(ctx, cust.ID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to load customer: %w", err)
	}

	params := db.UpsertCustomerParams{
		StripeCustomerID: cust.ID,
		Email:            cust.Email,
		Name:             textOrNull(cust.Name),
		Phone:            textOrNull(cust.Phone),
	}
	if err == nil {
		// Preserve billing aggregates the event payload does not carry.
		params.SubscriptionStatus = existing.SubscriptionStatus
		params.DisplayStatus = existing.DisplayStatus
		params.Plan = existing.Plan
		params.PlanID = existing.PlanID
		params.CurrentPeriodEnd = existing.CurrentPeriodEnd
		params.HasCardOnFile = existing.HasCardOnFile
		params.PaymentCount = existing.PaymentCount
		params.FailedPaymentCount = existing.FailedPaymentCount
		params.TotalPaid = existing.TotalPaid
		params.LastPaymentDate = existing.LastPaymentDate
		params.LoyaltyProgress = existing.LoyaltyProgress
	}

	if _, err := s.queries.UpsertCustomer(ctx, params); err != nil {
		return fmt.Errorf("failed to upsert customer: %w", err)
	}
	s.logger.Info("Customer updated from webhook", zap.String("stripe_customer_id", cust.ID))
	return nil
}

// handleSubscriptionChanged upserts the subscription row and refreshes the
// denormalized summary on the customer projection. The user link is resolved
// through the profile that shares the customer's email, when one exists.
func (s *PaymentEventService) handleSubscriptionChanged(ctx context.Context, sub *billing.Subscription) error {
	if sub == nil || sub.ID == "" {
		return nil
	}

	userID := s.resolveUserID(ctx, sub.CustomerID)

	_, err := s.queries.UpsertSubscription(ctx, db.UpsertSubscriptionParams{
		UserID:               userID,
		StripeSubscriptionID: sub.ID,
		StripeCustomerID:     sub.CustomerID,
		Status:               sub.Status,
		PlanName:             textOrNull(sub.PriceNickname),
		PriceID:              textOrNull(sub.PriceID),
		PlanAmount:           pgtype.Int8{Int64: sub.UnitAmount, Valid: sub.UnitAmount > 0},
		Currency:             textOrNull(sub.Currency),
		CurrentPeriodStart:   tsOrNull(sub.CurrentPeriodStart),
		CurrentPeriodEnd:     tsOrNull(sub.CurrentPeriodEnd),
		CancelAtPeriodEnd:    sub.CancelAtPeriodEnd,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	_, err = s.queries.UpdateCustomerSubscriptionSummary(ctx, db.UpdateCustomerSubscriptionSummaryParams{
		StripeCustomerID:   sub.CustomerID,
		SubscriptionStatus: textOrNull(sub.Status),
		Plan:               textOrNull(sub.PriceNickname),
		PlanID:             textOrNull(sub.PriceID),
		CurrentPeriodEnd:   tsOrNull(sub.CurrentPeriodEnd),
	})
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to update customer summary: %w", err)
	}

	s.logger.Info("Subscription updated from webhook",
		zap.String("stripe_subscription_id", sub.ID),
		zap.String("status", sub.Status))
	return nil
}

// handleInvoicePaid records the payment, bumps the customer's aggregates and
// runs the reward milestone check. A replayed event stops at the duplicate
// payment intent and touches nothing else.
func (s *PaymentEventService) handleInvoicePaid(ctx context.Context, inv *billing.Invoice) error {
	if inv == nil || inv.SubscriptionID == "" {
		s.logger.Debug("Invoice without subscription, skipping")
		return nil
	}

	userID := s.resolveUserID(ctx, inv.CustomerID)
	paidAt := inv.Created

	_, err := s.queries.InsertPayment(ctx, db.InsertPaymentParams{
		UserID:                userID,
		StripeSubscriptionID:  inv.SubscriptionID,
		StripePaymentIntentID: inv.PaymentIntentID,
		AmountPaid:            inv.AmountPaid,
		Currency:              inv.Currency,
		Status:                constants.PaymentStatusSucceeded,
		PaymentDate:           ts(paidAt),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Info("Payment already recorded, skipping replay",
				zap.String("stripe_payment_intent_id", inv.PaymentIntentID))
			return nil
		}
		return fmt.Errorf("failed to record payment: %w", err)
	}

	if _, err := s.queries.RecordCustomerPayment(ctx, db.RecordCustomerPaymentParams{
		StripeCustomerID: inv.CustomerID,
		AmountPaid:       inv.AmountPaid,
		PaymentDate:      ts(paidAt),
	}); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to update customer payment aggregates: %w", err)
	}

	s.logger.Info("Recorded successful payment",
		zap.String("stripe_subscription_id", inv.SubscriptionID),
		zap.Int64("amount_paid", inv.AmountPaid))

	if !userID.Valid {
		// No profile linked yet; rewards are reconciled later by Recalculate.
		return nil
	}
	if err := s.rewards.HandlePaymentSucceeded(ctx, userID.Bytes, inv.SubscriptionID); err != nil {
		return fmt.Errorf("reward milestone check failed: %w", err)
	}
	return nil
}

func (s *PaymentEventService) handleInvoicePaymentFailed(ctx context.Context, inv *billing.Invoice) error {
	if inv == nil || inv.SubscriptionID == "" {
		return nil
	}

	userID := s.resolveUserID(ctx, inv.CustomerID)

	_, err := s.queries.InsertPayment(ctx, db.InsertPaymentParams{
		UserID:                userID,
		StripeSubscriptionID:  inv.SubscriptionID,
		StripePaymentIntentID: inv.PaymentIntentID,
		AmountPaid:            inv.AmountDue,
		Currency:              inv.Currency,
		Status:                constants.PaymentStatusFailed,
		PaymentDate:           ts(inv.Created),
	})
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to record failed payment: %w", err)
	}

	if _, err := s.queries.RecordCustomerFailedPayment(ctx, inv.CustomerID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to update failed payment count: %w", err)
	}

	s.logger.Warn("Recorded failed payment",
		zap.String("stripe_subscription_id", inv.SubscriptionID),
		zap.String("stripe_customer_id", inv.CustomerID))
	return nil
}

// resolveUserID maps a Stripe customer to a profile, first by the stored
// stripe_customer_id link and then by email match on the local projection.
func (s *PaymentEventService) resolveUserID(ctx context.Context, stripeCustomerID string) pgtype.UUID {
	if stripeCustomerID == "" {
		return pgtype.UUID{}
	}
	profile, err := s.queries.GetProfileByStripeCustomerID(ctx, textOrNull(stripeCustomerID))
	if err == nil {
		return pgtype.UUID{Bytes: profile.ID, Valid: true}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Warn("Profile lookup by customer id failed", zap.Error(err))
		return pgtype.UUID{}
	}

	cust, err := s.queries.GetCustomerByStripeID(ctx, stripeCustomerID)
	if err != nil {
		return pgtype.UUID{}
	}
	profile, err = s.queries.GetProfileByEmail(ctx, cust.Email)
	if err != nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: profile.ID, Valid: true}
}
