package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/aharewards/aha-api/internal/client/billing"
	"github.com/aharewards/aha-api/internal/db"
	"github.com/aharewards/aha-api/internal/logger"
)

// maxLoyaltyProgress caps the loyalty progress bar; twelve successful
// payments fill it.
const maxLoyaltyProgress = 12

// recentChargeWindow bounds how many charges feed the payment aggregates.
const recentChargeWindow = 20

// SyncMode is the closed set of sync operation kinds.
type SyncMode string

const (
	// SyncModeFull mirrors customers, subscription summaries and payment
	// aggregates into the local store.
	SyncModeFull SyncMode = "full"
	// SyncModeProfilesOnly only links billing customers to local profiles.
	SyncModeProfilesOnly SyncMode = "profiles_only"
	// SyncModeListOnly fetches one page from the billing source without
	// writing anything. Used for operator preview.
	SyncModeListOnly SyncMode = "list_only"
)

// ParseSyncMode validates an operator-supplied mode string.
func ParseSyncMode(s string) (SyncMode, error) {
	switch SyncMode(s) {
	case SyncModeFull, SyncModeProfilesOnly, SyncModeListOnly:
		return SyncMode(s), nil
	case "":
		return SyncModeFull, nil
	}
	return "", fmt.Errorf("unknown sync mode %q", s)
}

// SyncRequest is the typed request for one sync run.
type SyncRequest struct {
	Mode SyncMode
	// Cursor resumes listing after the given billing customer ID.
	Cursor string
	// MaxPages bounds the run; 0 means run to exhaustion.
	MaxPages int
}

// SyncErrorDetail records one isolated per-customer failure.
type SyncErrorDetail struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email,omitempty"`
	Message    string `json:"message"`
}

// SyncResult is the batch summary returned to the operator.
type SyncResult struct {
	Synced     int                `json:"synced"`
	Skipped    int                `json:"skipped"`
	Errors     int                `json:"errors"`
	Total      int                `json:"total"`
	NextCursor string             `json:"next_cursor,omitempty"`
	Strategy   string             `json:"strategy,omitempty"`
	Details    []SyncErrorDetail  `json:"details,omitempty"`
	Customers  []billing.Customer `json:"customers,omitempty"`
}

// FailureReason classifies why a sync strategy could not complete.
type FailureReason string

const (
	// FailureNotApplicable means the strategy's preconditions were not met
	// and the next strategy should be tried.
	FailureNotApplicable FailureReason = "not_applicable"
	// FailureProvider means the billing source rejected or aborted the run.
	FailureProvider FailureReason = "provider_error"
)

// StrategyFailure is the typed error a sync strategy reports.
type StrategyFailure struct {
	Strategy string
	Reason   FailureReason
	Err      error
}

func (e *StrategyFailure) Error() string {
	return fmt.Sprintf("sync strategy %s failed (%s): %v", e.Strategy, e.Reason, e.Err)
}

func (e *StrategyFailure) Unwrap() error { return e.Err }

// syncStrategy is one way to execute a full sync. Strategies are tried in
// order; a StrategyFailure with FailureNotApplicable falls through to the
// next one.
type syncStrategy interface {
	Name() string
	Run(ctx context.Context, req SyncRequest) (*SyncResult, error)
}

type syncHandler func(ctx context.Context, req SyncRequest) (*SyncResult, error)

// CustomerSyncService mirrors billing customers into the local store.
type CustomerSyncService struct {
	queries  db.Querier
	billing  billing.Provider
	limiter  *rate.Limiter
	pageSize int
	logger   *zap.Logger

	handlers   map[SyncMode]syncHandler
	strategies []syncStrategy
}

// NewCustomerSyncService creates the sync engine. pageDelay paces page
// fetches against the billing source's rate limits.
func NewCustomerSyncService(queries db.Querier, provider billing.Provider, pageSize int, pageDelay time.Duration) *CustomerSyncService {
	if pageSize <= 0 {
		pageSize = 50
	}
	if pageDelay <= 0 {
		pageDelay = time.Second
	}
	s := &CustomerSyncService{
		queries:  queries,
		billing:  provider,
		limiter:  rate.NewLimiter(rate.Every(pageDelay), 1),
		pageSize: pageSize,
		logger:   logger.Log,
	}
	s.handlers = map[SyncMode]syncHandler{
		SyncModeFull:         s.runFull,
		SyncModeProfilesOnly: s.runProfilesOnly,
		SyncModeListOnly:     s.runListOnly,
	}
	s.strategies = []syncStrategy{
		&cursorResumeStrategy{svc: s},
		&fullScanStrategy{svc: s},
	}
	return s
}

// Run dispatches a sync request by mode.
func (s *CustomerSyncService) Run(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	handler, ok := s.handlers[req.Mode]
	if !ok {
		return nil, fmt.Errorf("unknown sync mode %q", req.Mode)
	}
	return handler(ctx, req)
}

// runFull tries the ordered strategy chain.
func (s *CustomerSyncService) runFull(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	var lastErr error
	for _, strat := range s.strategies {
		result, err := strat.Run(ctx, req)
		if err == nil {
			result.Strategy = strat.Name()
			return result, nil
		}
		var failure *StrategyFailure
		if errors.As(err, &failure) && failure.Reason == FailureNotApplicable {
			s.logger.Debug("Sync strategy not applicable, trying next",
				zap.String("strategy", strat.Name()))
			lastErr = err
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("no applicable sync strategy: %w", lastErr)
}

// cursorResumeStrategy continues a previous run from its reported cursor.
type cursorResumeStrategy struct {
	svc *CustomerSyncService
}

func (st *cursorResumeStrategy) Name() string { return "cursor_resume" }

func (st *cursorResumeStrategy) Run(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	if req.Cursor == "" {
		return nil, &StrategyFailure{Strategy: st.Name(), Reason: FailureNotApplicable, Err: fmt.Errorf("no resume cursor supplied")}
	}
	result, err := st.svc.syncPages(ctx, req.Cursor, req.MaxPages)
	if err != nil {
		return nil, &StrategyFailure{Strategy: st.Name(), Reason: FailureProvider, Err: err}
	}
	return result, nil
}

// fullScanStrategy pages the whole customer list from the beginning.
type fullScanStrategy struct {
	svc *CustomerSyncService
}

func (st *fullScanStrategy) Name() string { return "full_scan" }

func (st *fullScanStrategy) Run(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	result, err := st.svc.syncPages(ctx, "", req.MaxPages)
	if err != nil {
		return nil, &StrategyFailure{Strategy: st.Name(), Reason: FailureProvider, Err: err}
	}
	return result, nil
}

// syncPages walks the customer list page by page. Per-customer errors are
// isolated and recorded; a page-level listing error aborts the run, leaving
// already-upserted rows valid.
func (s *CustomerSyncService) syncPages(ctx context.Context, cursor string, maxPages int) (*SyncResult, error) {
	result := &SyncResult{}
	pages := 0

	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("sync canceled: %w", err)
		}

		customers, nextCursor, err := s.billing.ListCustomers(ctx, billing.ListParams{
			Limit:         s.pageSize,
			StartingAfter: cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("list customers page: %w", err)
		}

		for _, cust := range customers {
			if err := ctx.Err(); err != nil {
				// Operator stop: in-flight work is done, nothing further
				// is processed. Committed upserts remain valid.
				result.NextCursor = cursor
				return result, nil
			}
			result.Total++

			synced, err := s.syncOne(ctx, cust)
			if err != nil {
				result.Errors++
				result.Details = append(result.Details, SyncErrorDetail{
					CustomerID: cust.ID,
					Email:      cust.Email,
					Message:    err.Error(),
				})
				s.logger.Error("Failed to sync customer",
					zap.String("billing_customer_id", cust.ID),
					zap.Error(err))
				continue
			}
			if synced {
				result.Synced++
			} else {
				result.Skipped++
			}
		}

		pages++
		cursor = nextCursor
		if cursor == "" {
			break
		}
		if maxPages > 0 && pages >= maxPages {
			result.NextCursor = cursor
			break
		}
	}

	s.logger.Info("Customer sync finished",
		zap.Int("synced", result.Synced),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", result.Errors),
		zap.Int("total", result.Total))
	return result, nil
}

// syncOne derives and upserts one customer row. Returns false when the
// customer is skipped (no email means no row at all).
func (s *CustomerSyncService) syncOne(ctx context.Context, cust billing.Customer) (bool, error) {
	if strings.TrimSpace(cust.Email) == "" {
		s.logger.Debug("Skipping customer without email", zap.String("billing_customer_id", cust.ID))
		return false, nil
	}

	sub, err := s.lookupSubscription(ctx, cust.ID)
	if err != nil {
		return false, err
	}

	planLabel := ""
	planID := ""
	var periodEnd time.Time
	status := ""
	if sub != nil {
		status = sub.Status
		planID = sub.PriceID
		periodEnd = sub.CurrentPeriodEnd
		planLabel = s.resolvePlanLabel(ctx, *sub)
	}

	hasCard, err := s.billing.HasCardOnFile(ctx, cust.ID)
	if err != nil {
		return false, err
	}

	charges, err := s.billing.ListCharges(ctx, cust.ID, recentChargeWindow)
	if err != nil {
		return false, err
	}
	agg := aggregateCharges(charges)

	_, err = s.queries.UpsertCustomer(ctx, db.UpsertCustomerParams{
		StripeCustomerID:   cust.ID,
		Email:              cust.Email,
		Name:               textOrNull(cust.Name),
		Phone:              textOrNull(cust.Phone),
		SubscriptionStatus: textOrNull(status),
		DisplayStatus:      textOrNull(displayStatus(status, hasCard)),
		Plan:               textOrNull(planLabel),
		PlanID:             textOrNull(planID),
		CurrentPeriodEnd:   tsOrNull(periodEnd),
		HasCardOnFile:      hasCard,
		PaymentCount:       agg.succeeded,
		FailedPaymentCount: agg.failed,
		TotalPaid:          agg.totalPaid,
		LastPaymentDate:    tsOrNull(agg.lastPayment),
		LoyaltyProgress:    loyaltyProgress(agg.succeeded),
	})
	if err != nil {
		return false, fmt.Errorf("upsert customer %s: %w", cust.ID, err)
	}
	return true, nil
}

// lookupSubscription prefers the customer's active subscription; when there
// is none it falls back to the most recent subscription of any status.
func (s *CustomerSyncService) lookupSubscription(ctx context.Context, customerID string) (*billing.Subscription, error) {
	active, err := s.billing.ListSubscriptions(ctx, customerID, "active", 1)
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return &active[0], nil
	}

	all, err := s.billing.ListSubscriptions(ctx, customerID, "", 5)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	latest := all[0]
	for _, sub := range all[1:] {
		if sub.Created.After(latest.Created) {
			latest = sub
		}
	}
	return &latest, nil
}

// resolvePlanLabel resolves a display label for the subscription's price.
// Precedence: product name, price nickname, price metadata plan_name, then
// a synthesized "$amount/interval" string.
func (s *CustomerSyncService) resolvePlanLabel(ctx context.Context, sub billing.Subscription) string {
	if sub.ProductID != "" {
		if product, err := s.billing.GetProduct(ctx, sub.ProductID); err == nil && product.Name != "" {
			return product.Name
		}
		// Product lookup failures are cosmetic; fall through.
	}
	if sub.PriceNickname != "" {
		return sub.PriceNickname
	}
	if name := sub.PriceMetadata["plan_name"]; name != "" {
		return name
	}
	if sub.UnitAmount > 0 {
		interval := sub.Interval
		if interval == "" {
			interval = "month"
		}
		return fmt.Sprintf("$%.2f/%s", float64(sub.UnitAmount)/100, interval)
	}
	return ""
}

type chargeAggregate struct {
	succeeded   int32
	failed      int32
	totalPaid   int64
	lastPayment time.Time
}

func aggregateCharges(charges []billing.Charge) chargeAggregate {
	var agg chargeAggregate
	for _, ch := range charges {
		if ch.Succeeded {
			agg.succeeded++
			agg.totalPaid += ch.Amount
			if ch.Created.After(agg.lastPayment) {
				agg.lastPayment = ch.Created
			}
		} else {
			agg.failed++
		}
	}
	return agg
}

func loyaltyProgress(succeededPayments int32) int32 {
	if succeededPayments > maxLoyaltyProgress {
		return maxLoyaltyProgress
	}
	return succeededPayments
}

// displayStatus is the advisory composite shown to operators when card
// presence and subscription status disagree. Reward logic never reads it;
// only the raw subscription status matters there.
func displayStatus(subscriptionStatus string, hasCard bool) string {
	switch {
	case subscriptionStatus == "" && hasCard:
		return "Has Card - No Subscription"
	case subscriptionStatus == "":
		return "No Subscription"
	case !hasCard:
		return subscriptionStatus + " - No Card"
	default:
		return subscriptionStatus
	}
}

// runProfilesOnly links billing customers to local profiles by email
// without touching the customer projection.
func (s *CustomerSyncService) runProfilesOnly(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	result := &SyncResult{}
	cursor := req.Cursor
	pages := 0

	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("sync canceled: %w", err)
		}

		customers, nextCursor, err := s.billing.ListCustomers(ctx, billing.ListParams{
			Limit:         s.pageSize,
			StartingAfter: cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("list customers page: %w", err)
		}

		for _, cust := range customers {
			if err := ctx.Err(); err != nil {
				result.NextCursor = cursor
				return result, nil
			}
			result.Total++
			if strings.TrimSpace(cust.Email) == "" {
				result.Skipped++
				continue
			}

			profile, err := s.queries.GetProfileByEmail(ctx, cust.Email)
			if errors.Is(err, pgx.ErrNoRows) {
				// No local profile for this billing customer; nothing to link.
				result.Skipped++
				continue
			}
			if err != nil {
				result.Errors++
				result.Details = append(result.Details, SyncErrorDetail{
					CustomerID: cust.ID,
					Email:      cust.Email,
					Message:    err.Error(),
				})
				continue
			}
			if profile.StripeCustomerID.Valid && profile.StripeCustomerID.String == cust.ID {
				result.Skipped++
				continue
			}

			if _, err := s.queries.UpdateProfileStripeCustomer(ctx, db.UpdateProfileStripeCustomerParams{
				ID:               profile.ID,
				StripeCustomerID: textOrNull(cust.ID),
			}); err != nil {
				result.Errors++
				result.Details = append(result.Details, SyncErrorDetail{
					CustomerID: cust.ID,
					Email:      cust.Email,
					Message:    err.Error(),
				})
				continue
			}
			result.Synced++
		}

		pages++
		cursor = nextCursor
		if cursor == "" {
			break
		}
		if req.MaxPages > 0 && pages >= req.MaxPages {
			result.NextCursor = cursor
			break
		}
	}
	return result, nil
}

// runListOnly fetches a single billing page for operator preview. Nothing
// is written.
func (s *CustomerSyncService) runListOnly(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	customers, nextCursor, err := s.billing.ListCustomers(ctx, billing.ListParams{
		Limit:         s.pageSize,
		StartingAfter: req.Cursor,
	})
	if err != nil {
		return nil, fmt.Errorf("list customers page: %w", err)
	}
	return &SyncResult{
		Total:      len(customers),
		NextCursor: nextCursor,
		Customers:  customers,
	}, nil
}
