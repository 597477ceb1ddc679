package services

import (
	"time"

	"fulfillment/internal/core/domain/model/priority"

	"github.com/shopspring/decimal"
)

var (
	baseScore       = decimal.NewFromInt(100)
	valueDivisor    = decimal.NewFromInt(1000)
	valueMultiplier = decimal.NewFromInt(5)
	maxValueBonus   = decimal.NewFromInt(50)
)

// PriorityScorer computes the priority score of an order from its factors.
//
//	score = 100
//	      + tier bonus (platinum 50, gold 30, silver 10, otherwise 0)
//	      + min(orderValue / 1000 × 5, 50)
//	      + urgency (ship today or overdue 100, tomorrow 75, within 3 days 25)
type PriorityScorer struct{}

func NewPriorityScorer() PriorityScorer {
	return PriorityScorer{}
}

// Score returns the score rounded to two decimal places, the level it maps to
// and the contribution of every factor.
func (s PriorityScorer) Score(factors priority.Factors, now time.Time) (decimal.Decimal, priority.Level, priority.Contributions) {
	contributions := priority.Contributions{
		Base:    baseScore,
		Tier:    factors.Tier.Bonus(),
		Value:   decimal.Min(factors.OrderValue.Decimal().Div(valueDivisor).Mul(valueMultiplier), maxValueBonus).Round(2),
		Urgency: urgencyBonus(factors.ShipDate, now),
	}

	score := contributions.Total().Round(2)
	return score, priority.LevelForScore(score), contributions
}

// urgencyBonus counts whole calendar days between today and the ship date in UTC.
func urgencyBonus(shipDate *time.Time, now time.Time) decimal.Decimal {
	if shipDate == nil {
		return decimal.Zero
	}

	days := calendarDays(now, *shipDate)
	switch {
	case days <= 0:
		return decimal.NewFromInt(100)
	case days <= 1:
		return decimal.NewFromInt(75)
	case days <= 3:
		return decimal.NewFromInt(25)
	default:
		return decimal.Zero
	}
}

func calendarDays(from, to time.Time) int {
	from = from.UTC()
	to = to.UTC()
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDay.Sub(fromDay).Hours() / 24)
}
