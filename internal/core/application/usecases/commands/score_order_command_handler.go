package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/priority"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ScoreOrderResult is the priority stored for the order after scoring.
// Recomputed is false when an active override kept the stored level.
type ScoreOrderResult struct {
	OrderID        kernel.UUID
	Score          decimal.Decimal
	Level          priority.Level
	Contributions  priority.Contributions
	ManualOverride bool
	Recomputed     bool
}

// ScoreOrderCommandHandler scores orders and persists score, level and the
// factor snapshot. It never touches the order itself.
type ScoreOrderCommandHandler struct {
	uowFactory PriorityUoWFactory
	scorer     services.PriorityScorer
	clock      kernel.Clock
}

func NewScoreOrderCommandHandler(uowFactory PriorityUoWFactory, scorer services.PriorityScorer, clock kernel.Clock) ScoreOrderCommandHandler {
	return ScoreOrderCommandHandler{
		uowFactory: uowFactory,
		scorer:     scorer,
		clock:      clock,
	}
}

// Handle creates the priority on first scoring and recomputes it afterwards.
func (h *ScoreOrderCommandHandler) Handle(ctx context.Context, cmd ScoreOrderCommand) (ScoreOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return ScoreOrderResult{}, err
	}

	now := h.clock.Now()
	score, _, contributions := h.scorer.Score(cmd.Factors(), now)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ScoreOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PriorityRepository()
	current, err := repo.Get(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return ScoreOrderResult{}, err
	}

	recomputed := true
	if current == nil {
		current, err = priority.NewOrderPriority(cmd.OrderID(), score, contributions, cmd.Factors(), now)
		if err != nil {
			return ScoreOrderResult{}, err
		}
	} else {
		recomputed = current.Recompute(score, contributions, cmd.Factors(), now)
	}

	if recomputed {
		if err = repo.Save(ctx, current); err != nil {
			return ScoreOrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ScoreOrderResult{}, err
	}

	return ScoreOrderResult{
		OrderID:        current.OrderID(),
		Score:          current.Score(),
		Level:          current.Level(),
		Contributions:  current.Contributions(),
		ManualOverride: current.HasManualOverride(),
		Recomputed:     recomputed,
	}, nil
}
