package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/client/crm"
	"github.com/aharewards/aha-api/internal/constants"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/logger"
)

// Tag names pushed to the CRM. Segmentation is additive: tags are added as
// customers cross thresholds and never removed by the reconciler.
const (
	TagActive         = "Stripe-Active"
	TagCanceled       = "Stripe-Canceled"
	TagPastDue        = "Stripe-PastDue"
	TagNoSubscription = "Stripe-NoSubscription"
	TagLoyalSix       = "Stripe-Loyal-6+"
	TagLoyalThree     = "Stripe-Loyal-3+"
	TagLoyalOne       = "Stripe-Loyal-1+"
	TagNew            = "Stripe-New"
	TagHighValue      = "Stripe-HighValue"
	TagFrequent       = "Stripe-Frequent"
)

const (
	highValueCents        = 10000
	frequentPaymentFloor  = 5
	loyaltySixThreshold   = 6
	loyaltyThreeThreshold = 3
)

// CRMContacts is the slice of the CRM client the reconciler needs.
type CRMContacts interface {
	TestConnection(ctx context.Context) error
	FindContactByEmail(ctx context.Context, email string) (crm.Contact, error)
	AddTags(ctx context.Context, contactID string, tags []string) error
	RemoveTags(ctx context.Context, contactID string, tags []string) error
	BreakerState() crm.BreakerState
}

// CRMSyncService reconciles customer billing state into CRM contact tags.
type CRMSyncService struct {
	queries db.Querier
	crm     CRMContacts
	logger  *zap.Logger
}

func NewCRMSyncService(queries db.Querier, client CRMContacts) *CRMSyncService {
	return &CRMSyncService{
		queries: queries,
		crm:     client,
		logger:  logger.Log,
	}
}

// CRMSyncDetail reports the outcome for one customer.
type CRMSyncDetail struct {
	Email     string `json:"email"`
	ContactID string `json:"contact_id,omitempty"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

// CRMSyncResult summarizes a reconciliation run.
type CRMSyncResult struct {
	Total   int             `json:"total"`
	Matched int             `json:"matched"`
	Updated int             `json:"updated"`
	Errors  int             `json:"errors"`
	Details []CRMSyncDetail `json:"details"`
}

// GenerateTags derives the CRM tag set from a customer's billing state.
func GenerateTags(customer db.Customer) []string {
	var tags []string

	switch customer.SubscriptionStatus.String {
	case "active", "trialing":
		tags = append(tags, TagActive)
	case "canceled":
		tags = append(tags, TagCanceled)
	case "past_due", "unpaid":
		tags = append(tags, TagPastDue)
	default:
		tags = append(tags, TagNoSubscription)
	}

	switch {
	case customer.LoyaltyProgress >= loyaltySixThreshold:
		tags = append(tags, TagLoyalSix)
	case customer.LoyaltyProgress >= loyaltyThreeThreshold:
		tags = append(tags, TagLoyalThree)
	case customer.LoyaltyProgress >= 1:
		tags = append(tags, TagLoyalOne)
	default:
		tags = append(tags, TagNew)
	}

	if customer.TotalPaid > highValueCents {
		tags = append(tags, TagHighValue)
	}
	if customer.PaymentCount > frequentPaymentFloor {
		tags = append(tags, TagFrequent)
	}
	return tags
}

// SyncCustomers reconciles every local customer against the CRM: contacts
// matched by email get any missing derived tags; customers with no matching
// contact have their stale linkage cleared. A missing contact is a normal
// outcome, not an error.
func (s *CRMSyncService) SyncCustomers(ctx context.Context) (*CRMSyncResult, error) {
	customers, err := s.queries.ListAllCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	result := &CRMSyncResult{Total: len(customers)}
	for i := range customers {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		detail := s.syncOne(ctx, &customers[i], result)
		result.Details = append(result.Details, detail)
	}

	s.logger.Info("CRM reconciliation complete",
		zap.Int("total", result.Total),
		zap.Int("matched", result.Matched),
		zap.Int("updated", result.Updated),
		zap.Int("errors", result.Errors))
	return result, nil
}

func (s *CRMSyncService) syncOne(ctx context.Context, customer *db.Customer, result *CRMSyncResult) CRMSyncDetail {
	detail := CRMSyncDetail{Email: customer.Email}

	contact, err := s.crm.FindContactByEmail(ctx, customer.Email)
	if err != nil {
		if errors.Is(err, crm.ErrContactNotFound) {
			detail.Status = constants.CRMSyncStatusNotFound
			if _, err := s.queries.ClearCustomerCRMLink(ctx, db.ClearCustomerCRMLinkParams{
				ID:            customer.ID,
				GhlSyncStatus: constants.CRMSyncStatusNotFound,
			}); err != nil {
				s.logger.Error("Failed to clear CRM link",
					zap.String("email", customer.Email), zap.Error(err))
			}
			return detail
		}
		result.Errors++
		detail.Status = constants.CRMSyncStatusError
		detail.Message = err.Error()
		s.markError(ctx, customer.ID)
		return detail
	}

	result.Matched++
	detail.ContactID = contact.ID

	desired := GenerateTags(*customer)
	missing := missingTags(contact.Tags, desired)
	if len(missing) > 0 {
		if err := s.crm.AddTags(ctx, contact.ID, missing); err != nil {
			result.Errors++
			detail.Status = constants.CRMSyncStatusError
			detail.Message = err.Error()
			s.markError(ctx, customer.ID)
			return detail
		}
		result.Updated++
	}

	if _, err := s.queries.UpdateCustomerCRMLink(ctx, db.UpdateCustomerCRMLinkParams{
		ID:            customer.ID,
		GhlContactID:  textOrNull(contact.ID),
		GhlSyncStatus: constants.CRMSyncStatusSynced,
		GhlTags:       unionTags(contact.Tags, missing),
	}); err != nil {
		result.Errors++
		detail.Status = constants.CRMSyncStatusError
		detail.Message = err.Error()
		return detail
	}

	detail.Status = constants.CRMSyncStatusSynced
	return detail
}

// markError records the failure status only. Errors are usually transient
// (timeout, open breaker), so the stored contact link and tag set stay
// intact for the next run; only a definitive not_found clears them.
func (s *CRMSyncService) markError(ctx context.Context, customerID uuid.UUID) {
	if _, err := s.queries.UpdateCustomerCRMSyncStatus(ctx, db.UpdateCustomerCRMSyncStatusParams{
		ID:            customerID,
		GhlSyncStatus: constants.CRMSyncStatusError,
	}); err != nil {
		s.logger.Error("Failed to mark CRM sync error", zap.Error(err))
	}
}

// BulkTagOp is a manual tag operation against a set of customers.
type BulkTagOp struct {
	CustomerIDs []uuid.UUID `json:"customer_ids" binding:"required,min=1"`
	Tags        []string    `json:"tags" binding:"required,min=1"`
	Action      string      `json:"action" binding:"required,oneof=add remove"`
}

// BulkTag applies or removes tags on the CRM contacts linked to the given
// customers. Customers without a CRM link are skipped.
func (s *CRMSyncService) BulkTag(ctx context.Context, op BulkTagOp) (*CRMSyncResult, error) {
	customers, err := s.queries.ListCustomersByIDs(ctx, op.CustomerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	result := &CRMSyncResult{Total: len(customers)}
	for i := range customers {
		customer := &customers[i]
		detail := CRMSyncDetail{Email: customer.Email}

		if !customer.GhlContactID.Valid || customer.GhlContactID.String == "" {
			detail.Status = constants.CRMSyncStatusNotSynced
			detail.Message = "customer has no linked CRM contact"
			result.Details = append(result.Details, detail)
			continue
		}
		detail.ContactID = customer.GhlContactID.String
		result.Matched++

		var tagErr error
		var newTags []string
		if op.Action == "add" {
			tagErr = s.crm.AddTags(ctx, customer.GhlContactID.String, op.Tags)
			newTags = unionTags(customer.GhlTags, op.Tags)
		} else {
			tagErr = s.crm.RemoveTags(ctx, customer.GhlContactID.String, op.Tags)
			newTags = subtractTags(customer.GhlTags, op.Tags)
		}
		if tagErr != nil {
			result.Errors++
			detail.Status = constants.CRMSyncStatusError
			detail.Message = tagErr.Error()
			result.Details = append(result.Details, detail)
			continue
		}

		if _, err := s.queries.UpdateCustomerCRMTags(ctx, db.UpdateCustomerCRMTagsParams{
			ID:      customer.ID,
			GhlTags: newTags,
		}); err != nil {
			result.Errors++
			detail.Status = constants.CRMSyncStatusError
			detail.Message = err.Error()
			result.Details = append(result.Details, detail)
			continue
		}

		result.Updated++
		detail.Status = constants.CRMSyncStatusSynced
		result.Details = append(result.Details, detail)
	}
	return result, nil
}

// Status reports CRM connectivity and the circuit breaker state.
type CRMStatus struct {
	Connected    bool   `json:"connected"`
	BreakerState string `json:"breaker_state"`
	Error        string `json:"error,omitempty"`
}

func (s *CRMSyncService) Status(ctx context.Context) CRMStatus {
	status := CRMStatus{BreakerState: string(s.crm.BreakerState())}
	if err := s.crm.TestConnection(ctx); err != nil {
		status.Error = err.Error()
		status.BreakerState = string(s.crm.BreakerState())
		return status
	}
	status.Connected = true
	return status
}

func missingTags(have, want []string) []string {
	seen := make(map[string]struct{}, len(have))
	for _, t := range have {
		seen[t] = struct{}{}
	}
	var missing []string
	for _, t := range want {
		if _, ok := seen[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

func unionTags(have, add []string) []string {
	out := make([]string, 0, len(have)+len(add))
	seen := make(map[string]struct{}, len(have)+len(add))
	for _, t := range append(append([]string{}, have...), add...) {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func subtractTags(have, remove []string) []string {
	drop := make(map[string]struct{}, len(remove))
	for _, t := range remove {
		drop[t] = struct{}{}
	}
	out := make([]string, 0, len(have))
	for _, t := range have {
		if _, ok := drop[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
