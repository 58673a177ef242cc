package stripe

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/client/billing"
)

func mapCustomer(c *stripe.Customer) billing.Customer {
	return billing.Customer{
		ID:      c.ID,
		Email:   c.Email,
		Name:    c.Name,
		Phone:   c.Phone,
		Balance: c.Balance,
		Created: time.Unix(c.Created, 0),
	}
}

// ListCustomers fetches one page of customers. The iterator lazily crosses
// pages, so iteration stops as soon as the requested page is full; the last
// ID is returned as the cursor for the next page.
func (s *Service) ListCustomers(ctx context.Context, params billing.ListParams) ([]billing.Customer, string, error) {
	stripeParams := &stripe.CustomerListParams{}
	if params.Limit > 0 {
		stripeParams.Limit = stripe.Int64(int64(params.Limit))
	}
	if params.StartingAfter != "" {
		stripeParams.StartingAfter = stripe.String(params.StartingAfter)
	}

	var customers []billing.Customer
	var lastID string
	for cust, err := range s.client.V1Customers.List(ctx, stripeParams) {
		if err != nil {
			s.logger.Error("Error iterating Stripe customers list", zap.Error(err))
			return nil, "", fmt.Errorf("stripe: list customers: %w", err)
		}
		if cust == nil || cust.Deleted {
			continue
		}
		customers = append(customers, mapCustomer(cust))
		lastID = cust.ID
		if params.Limit > 0 && len(customers) >= params.Limit {
			break
		}
	}

	nextCursor := ""
	if params.Limit > 0 && len(customers) == params.Limit {
		nextCursor = lastID
	}
	return customers, nextCursor, nil
}

// HasCardOnFile checks for at least one attached card payment method.
func (s *Service) HasCardOnFile(ctx context.Context, customerID string) (bool, error) {
	params := &stripe.PaymentMethodListParams{
		Customer: stripe.String(customerID),
		Type:     stripe.String("card"),
	}
	params.Limit = stripe.Int64(1)

	for pm, err := range s.client.V1PaymentMethods.List(ctx, params) {
		if err != nil {
			return false, fmt.Errorf("stripe: list payment methods for %s: %w", customerID, err)
		}
		if pm != nil {
			return true, nil
		}
	}
	return false, nil
}

// CreditCustomerBalance posts a balance transaction against the customer.
// Callers pass a negative amount for a credit.
func (s *Service) CreditCustomerBalance(ctx context.Context, customerID string, amount int64, description string, metadata map[string]string) (billing.BalanceTransaction, error) {
	params := &stripe.CustomerBalanceTransactionCreateParams{
		Customer:    stripe.String(customerID),
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(description),
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	txn, err := s.client.V1CustomerBalanceTransactions.Create(ctx, params)
	if err != nil {
		s.logger.Error("Failed to create Stripe balance transaction",
			zap.String("stripe_customer_id", customerID),
			zap.Int64("amount", amount),
			zap.Error(err))
		return billing.BalanceTransaction{}, fmt.Errorf("stripe: create balance transaction for %s: %w", customerID, err)
	}

	s.logger.Info("Created Stripe balance transaction",
		zap.String("stripe_customer_id", customerID),
		zap.String("transaction_id", txn.ID),
		zap.Int64("amount", txn.Amount))
	return billing.BalanceTransaction{
		ID:       txn.ID,
		Amount:   txn.Amount,
		Currency: string(txn.Currency),
	}, nil
}
