package crm

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/aharewards/aha-api/internal/logger"
)

// ErrCircuitOpen is returned while the breaker is cooling down after
// repeated CRM failures.
var ErrCircuitOpen = errors.New("crm: circuit breaker open")

// BreakerState is the circuit breaker state.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half_open"
)

// CircuitBreaker guards the CRM API. After failureThreshold consecutive
// failures it opens and rejects calls until the cooldown elapses, then lets
// a single probe through (half-open). A successful probe closes it again; a
// failed probe re-opens it for another cooldown.
type CircuitBreaker struct {
	mu                  sync.Mutex
	state               BreakerState
	consecutiveFailures int
	failureThreshold    int
	cooldown            time.Duration
	lastFailureTime     time.Time
	logger              *zap.Logger
}

// NewCircuitBreaker creates a closed breaker.
func NewCircuitBreaker(failureThreshold int, cooldown time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		state:            BreakerClosed,
		failureThreshold: failureThreshold,
		cooldown:         cooldown,
		logger:           logger.Log,
	}
}

// Allow reports whether a call may proceed. While open, it transitions to
// half-open once the cooldown has elapsed and admits one probe call.
func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed, BreakerHalfOpen:
		return nil
	case BreakerOpen:
		if time.Since(b.lastFailureTime) >= b.cooldown {
			b.state = BreakerHalfOpen
			b.logger.Info("CRM circuit breaker half-open, allowing probe call")
			return nil
		}
		return ErrCircuitOpen
	}
	return nil
}

// RecordSuccess closes the breaker and clears the failure count.
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state != BreakerClosed {
		b.logger.Info("CRM circuit breaker closing after successful call")
	}
	b.state = BreakerClosed
	b.consecutiveFailures = 0
}

// RecordFailure counts a failure and opens the breaker at the threshold. A
// failed half-open probe re-opens immediately.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.consecutiveFailures++
	b.lastFailureTime = time.Now()

	if b.state == BreakerHalfOpen {
		b.state = BreakerOpen
		b.logger.Warn("CRM circuit breaker re-opened after failed probe")
		return
	}
	if b.consecutiveFailures >= b.failureThreshold && b.state != BreakerOpen {
		b.state = BreakerOpen
		b.logger.Warn("CRM circuit breaker opened",
			zap.Int("consecutive_failures", b.consecutiveFailures),
			zap.Int("threshold", b.failureThreshold),
			zap.Duration("cooldown", b.cooldown))
	}
}

// State returns the current breaker state.
func (b *CircuitBreaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}
