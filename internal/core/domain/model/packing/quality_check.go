package packing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Criterion is one checklist entry of a packing quality check.
type Criterion struct {
	Name     string
	Passed   bool
	Critical bool
}

// QualityCheck aggregates a criteria checklist into a pass rate and the
// follow-up flags.
type QualityCheck struct {
	criteria             []Criterion
	minPassRate          decimal.Decimal
	passRate             decimal.Decimal
	hasCriticalFailures  bool
	requiresRepack       bool
	requiresReinspection bool
	inspectorID          string
	checkedAt            time.Time
}

// NewQualityCheck evaluates criteria. Any critical failure forces repack and
// reinspection regardless of the pass rate; a pass rate below minPassRate
// forces reinspection.
func NewQualityCheck(criteria []Criterion, minPassRate decimal.Decimal, inspectorID string, checkedAt time.Time) (QualityCheck, error) {
	var criteriaErr error
	if len(criteria) == 0 {
		criteriaErr = errs.NewValueIsRequiredError("criteria")
	}
	var rateErr error
	if minPassRate.IsNegative() || minPassRate.GreaterThan(decimal.NewFromInt(100)) {
		rateErr = errs.NewValueIsOutOfRangeError("minPassRate", minPassRate, 0, 100)
	}
	var inspectorErr error
	if strings.TrimSpace(inspectorID) == "" {
		inspectorErr = errs.NewValueIsRequiredError("inspectorId")
	}
	if err := errors.Join(criteriaErr, rateErr, inspectorErr); err != nil {
		return QualityCheck{}, err
	}

	passed := 0
	critical := false
	for i, c := range criteria {
		if strings.TrimSpace(c.Name) == "" {
			return QualityCheck{}, errs.NewValueIsRequiredErrorWithCause("criteria name", fmt.Errorf("criterion %d has no name", i))
		}
		if c.Passed {
			passed++
		} else if c.Critical {
			critical = true
		}
	}

	rate := kernel.Percent(decimal.NewFromInt(int64(passed)), decimal.NewFromInt(int64(len(criteria))))
	copied := make([]Criterion, len(criteria))
	copy(copied, criteria)

	return QualityCheck{
		criteria:             copied,
		minPassRate:          minPassRate,
		passRate:             rate,
		hasCriticalFailures:  critical,
		requiresRepack:       critical,
		requiresReinspection: critical || rate.LessThan(minPassRate),
		inspectorID:          inspectorID,
		checkedAt:            checkedAt,
	}, nil
}

func (q QualityCheck) Criteria() []Criterion {
	out := make([]Criterion, len(q.criteria))
	copy(out, q.criteria)
	return out
}

func (q QualityCheck) MinPassRate() decimal.Decimal { return q.minPassRate }
func (q QualityCheck) PassRate() decimal.Decimal { return q.passRate }
func (q QualityCheck) HasCriticalFailures() bool { return q.hasCriticalFailures }
func (q QualityCheck) RequiresRepack() bool { return q.requiresRepack }
func (q QualityCheck) RequiresReinspection() bool { return q.requiresReinspection }
func (q QualityCheck) InspectorID() string { return q.inspectorID }
func (q QualityCheck) CheckedAt() time.Time { return q.checkedAt }
