// Package billing defines the contract the application consumes from the
// external subscription-billing system. Stripe is the only implementation
// today (see the stripe subpackage); services depend on this interface so
// tests can substitute fakes.
package billing

import (
	"context"
	"time"
)

// Customer is the provider-agnostic projection of a billing customer.
type Customer struct {
	ID      string
	Email   string
	Name    string
	Phone   string
	Balance int64
	Created time.Time
}

// Subscription carries the fields the sync engine and redemption handler
// need; price metadata is kept raw so plan-label resolution can apply its
// precedence rules.
type Subscription struct {
	ID                 string
	CustomerID         string
	Status             string
	PriceID            string
	ProductID          string
	PriceNickname      string
	PriceMetadata      map[string]string
	UnitAmount         int64
	Currency           string
	Interval           string
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	CancelAtPeriodEnd  bool
	Created            time.Time
}

// Charge is a single payment attempt against a customer.
type Charge struct {
	ID              string
	PaymentIntentID string
	Amount          int64
	Currency        string
	Succeeded       bool
	Created         time.Time
}

// Product is the minimal product projection used for plan labels.
type Product struct {
	ID   string
	Name string
}

// BalanceTransaction is the result of crediting a customer balance.
type BalanceTransaction struct {
	ID       string
	Amount   int64
	Currency string
}

// ListParams bounds a customer page fetch.
type ListParams struct {
	Limit         int
	StartingAfter string
}

// Invoice is the slice of an invoice event the payment pipeline consumes.
type Invoice struct {
	ID              string
	CustomerID      string
	CustomerEmail   string
	SubscriptionID  string
	PaymentIntentID string
	AmountPaid      int64
	AmountDue       int64
	Currency        string
	Created         time.Time
}

// EventType enumerates the webhook events the pipeline handles.
type EventType string

const (
	EventCustomerCreated     EventType = "customer.created"
	EventCustomerUpdated     EventType = "customer.updated"
	EventSubscriptionCreated EventType = "customer.subscription.created"
	EventSubscriptionUpdated EventType = "customer.subscription.updated"
	EventSubscriptionDeleted EventType = "customer.subscription.deleted"
	EventInvoicePaid         EventType = "invoice.payment_succeeded"
	EventInvoiceFailed       EventType = "invoice.payment_failed"
)

// WebhookEvent is a verified, decoded webhook payload. Exactly one of the
// object fields is set, matching the event type.
type WebhookEvent struct {
	ID           string
	Type         EventType
	Customer     *Customer
	Subscription *Subscription
	Invoice      *Invoice
}

// Provider is the read/write contract against the billing source. All calls
// may fail transiently; batch callers isolate failures per item.
type Provider interface {
	// CheckConnection verifies credentials with a cheap authenticated call.
	CheckConnection(ctx context.Context) error

	// ListCustomers returns one page of customers plus the cursor for the
	// next page ("" when exhausted).
	ListCustomers(ctx context.Context, params ListParams) ([]Customer, string, error)

	// ListSubscriptions returns up to limit subscriptions for the customer,
	// optionally filtered by status ("" means all statuses).
	ListSubscriptions(ctx context.Context, customerID, status string, limit int) ([]Subscription, error)

	// GetSubscription retrieves a single subscription by its billing ID.
	GetSubscription(ctx context.Context, subscriptionID string) (Subscription, error)

	// HasCardOnFile reports whether the customer has at least one card
	// payment method attached.
	HasCardOnFile(ctx context.Context, customerID string) (bool, error)

	// ListCharges returns the customer's most recent charges, newest first.
	ListCharges(ctx context.Context, customerID string, limit int) ([]Charge, error)

	// GetProduct resolves a product for plan-label display.
	GetProduct(ctx context.Context, productID string) (Product, error)

	// CreditCustomerBalance posts a negative balance transaction (a credit)
	// against the customer.
	CreditCustomerBalance(ctx context.Context, customerID string, amount int64, description string, metadata map[string]string) (BalanceTransaction, error)

	// ConstructWebhookEvent verifies the signature and decodes the payload.
	ConstructWebhookEvent(payload []byte, signatureHeader string) (WebhookEvent, error)
}
