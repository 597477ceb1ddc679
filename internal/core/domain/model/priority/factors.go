package priority

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CustomerTier is the loyalty tier of the ordering customer.
type CustomerTier string

const (
	Platinum CustomerTier = "platinum"
	Gold     CustomerTier = "gold"
	Silver   CustomerTier = "silver"
	Bronze   CustomerTier = "bronze"
)

// NormalizeTier lower-cases and trims a tier name. Unrecognized names are kept
// as-is and earn no bonus.
func NormalizeTier(s string) CustomerTier {
	return CustomerTier(strings.ToLower(strings.TrimSpace(s)))
}

// Bonus returns the score bonus of the tier.
func (t CustomerTier) Bonus() decimal.Decimal {
	switch t {
	case Platinum:
		return decimal.NewFromInt(50)
	case Gold:
		return decimal.NewFromInt(30)
	case Silver:
		return decimal.NewFromInt(10)
	default:
		return decimal.Zero
	}
}

// Factors are the inputs of a scoring run. They are persisted next to the
// score as a snapshot.
type Factors struct {
	Tier       CustomerTier
	OrderValue kernel.Money
	ShipDate   *time.Time
	Extra      map[string]string
}

// Contributions records how much each factor added to the score.
type Contributions struct {
	Base    decimal.Decimal
	Tier    decimal.Decimal
	Value   decimal.Decimal
	Urgency decimal.Decimal
}

// Total sums all contributions.
func (c Contributions) Total() decimal.Decimal {
	return c.Base.Add(c.Tier).Add(c.Value).Add(c.Urgency)
}
