package priority

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const scorePlaces = 2

var (
	// ErrOrderPriorityIsNotConstructed is returned when using a zero-value OrderPriority.
	ErrOrderPriorityIsNotConstructed = errors.New("OrderPriority must be created via NewOrderPriority constructor")
	// ErrNoActiveOverride is returned when clearing an override that is not set.
	ErrNoActiveOverride = errors.New("priority has no active manual override")
)

// OrderPriority is the urgency assessment of one order. There is exactly one
// per order; a new scoring run supersedes the previous values in place.
//
// Invariants:
//   - Level equals LevelForScore(score) unless a manual override is active
//   - An override records who set it and why
//
// Example:
//
//	p, err := priority.NewOrderPriority(orderID, score, contributions, factors, now)
//	changed := p.Recompute(newScore, newContributions, newFactors, later)
type OrderPriority struct {
	orderID        kernel.UUID
	score          decimal.Decimal
	level          Level
	factors        Factors
	contributions  Contributions
	computedAt     time.Time
	manualOverride bool
	overrideReason string
	overriddenBy   string
	guard          guard.ConstructorGuard
}

// NewOrderPriority creates the first assessment of an order. The level is
// derived from the score.
func NewOrderPriority(
	orderID kernel.UUID,
	score decimal.Decimal,
	contributions Contributions,
	factors Factors,
	computedAt time.Time,
) (*OrderPriority, error) {
	p := &OrderPriority{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setOrderID(orderID),
		p.setComputedAt(computedAt),
	); err != nil {
		return nil, err
	}

	p.apply(score, contributions, factors, computedAt)
	return p, nil
}

// RestoreOrderPriority rebuilds an OrderPriority from persistence. The stored
// level is trusted only while an override is active; otherwise it is derived
// from the stored score again.
func RestoreOrderPriority(
	orderID kernel.UUID,
	score decimal.Decimal,
	level Level,
	contributions Contributions,
	factors Factors,
	computedAt time.Time,
	manualOverride bool,
	overrideReason string,
	overriddenBy string,
) (*OrderPriority, error) {
	p := &OrderPriority{guard: guard.NewConstructorGuard()}

	var levelErr error
	if manualOverride {
		levelErr = level.Validate()
	}

	if err := errors.Join(
		p.setOrderID(orderID),
		p.setComputedAt(computedAt),
		levelErr,
	); err != nil {
		return nil, err
	}

	p.apply(score, contributions, factors, computedAt)
	if manualOverride {
		p.level = level
		p.manualOverride = true
		p.overrideReason = overrideReason
		p.overriddenBy = overriddenBy
	}

	return p, nil
}

func (p *OrderPriority) Validate() error {
	if p == nil {
		return ErrOrderPriorityIsNotConstructed
	}
	return p.guard.Validate(ErrOrderPriorityIsNotConstructed)
}

func (p *OrderPriority) OrderID() kernel.UUID { return p.orderID }
func (p *OrderPriority) Score() decimal.Decimal { return p.score }
func (p *OrderPriority) Level() Level { return p.level }
func (p *OrderPriority) Factors() Factors { return p.factors }
func (p *OrderPriority) Contributions() Contributions { return p.contributions }
func (p *OrderPriority) ComputedAt() time.Time { return p.computedAt }
func (p *OrderPriority) HasManualOverride() bool { return p.manualOverride }
func (p *OrderPriority) OverrideReason() string { return p.overrideReason }
func (p *OrderPriority) OverriddenBy() string { return p.overriddenBy }

// Recompute replaces score, level and factor snapshot with a new scoring run.
// It is a no-op while a manual override is active and reports whether anything
// changed.
func (p *OrderPriority) Recompute(score decimal.Decimal, contributions Contributions, factors Factors, now time.Time) bool {
	if p.manualOverride {
		return false
	}
	p.apply(score, contributions, factors, now)
	return true
}

// Override pins the level chosen by an operator. The score and snapshot are
// kept so that clearing the override restores the computed level.
func (p *OrderPriority) Override(level Level, actor, reason string, now time.Time) error {
	if err := level.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(actor) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	p.level = level
	p.manualOverride = true
	p.overrideReason = reason
	p.overriddenBy = actor
	p.computedAt = now
	return nil
}

// ClearOverride removes an active override and restores the level derived
// from the last computed score.
func (p *OrderPriority) ClearOverride(actor string, now time.Time) error {
	if strings.TrimSpace(actor) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if !p.manualOverride {
		return ErrNoActiveOverride
	}

	p.manualOverride = false
	p.overrideReason = ""
	p.overriddenBy = ""
	p.level = LevelForScore(p.score)
	p.computedAt = now
	return nil
}

func (p *OrderPriority) apply(score decimal.Decimal, contributions Contributions, factors Factors, now time.Time) {
	p.score = score.Round(scorePlaces)
	p.level = LevelForScore(p.score)
	p.contributions = contributions
	p.factors = factors
	p.computedAt = now
}

func (p *OrderPriority) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.orderID = id
	return nil
}

func (p *OrderPriority) setComputedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("computedAt is invalid", errors.New("timestamp is zero"))
	}
	return nil
}
