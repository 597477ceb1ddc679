package packing

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	percentagePlaces = 2
	warningFactor    = 2
)

// VerificationStatus is the outcome of a tolerance check.
type VerificationStatus int

const (
	UnknownVerificationStatus VerificationStatus = iota
	Pass
	Warning
	Fail
)

func (s VerificationStatus) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warning:
		return "warning"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// ParseVerificationStatus is used when restoring verifications.
func ParseVerificationStatus(s string) (VerificationStatus, error) {
	for _, v := range []VerificationStatus{Pass, Warning, Fail} {
		if v.String() == s {
			return v, nil
		}
	}
	return UnknownVerificationStatus, errs.NewValueIsInvalidErrorWithCause("verification status is invalid", fmt.Errorf("%q is unknown", s))
}

// VarianceType describes the direction of a deviation, for reporting.
type VarianceType int

const (
	Exact VarianceType = iota
	Overweight
	Underweight
	Oversized
	Undersized
)

func (v VarianceType) String() string {
	switch v {
	case Overweight:
		return "overweight"
	case Underweight:
		return "underweight"
	case Oversized:
		return "oversized"
	case Undersized:
		return "undersized"
	default:
		return "exact"
	}
}

// ParseVarianceType is used when restoring verifications.
func ParseVarianceType(s string) (VarianceType, error) {
	for _, v := range []VarianceType{Exact, Overweight, Underweight, Oversized, Undersized} {
		if v.String() == s {
			return v, nil
		}
	}
	return Exact, errs.NewValueIsInvalidErrorWithCause("variance type is invalid", fmt.Errorf("%q is unknown", s))
}

// classify maps a percentage deviation onto pass/warning/fail. pct must be
// the exact deviation; only the reported DifferencePct is rounded.
func classify(differencePct, tolerance decimal.Decimal) VerificationStatus {
	switch {
	case differencePct.LessThanOrEqual(tolerance):
		return Pass
	case differencePct.LessThanOrEqual(tolerance.Mul(decimal.NewFromInt(warningFactor))):
		return Warning
	default:
		return Fail
	}
}

func validateTolerance(tolerance decimal.Decimal) error {
	if tolerance.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("tolerance is invalid", fmt.Errorf("%s is negative", tolerance))
	}
	return nil
}

// Result is the common part of both verification kinds.
type Result struct {
	Tolerance     decimal.Decimal
	Difference    decimal.Decimal
	DifferencePct decimal.Decimal
	Status        VerificationStatus
	Variance      VarianceType
	InspectorID   string
	VerifiedAt    time.Time
}

// WeightVerification compares the scale weight of a carton to its expected weight.
type WeightVerification struct {
	Expected kernel.Weight
	Actual   kernel.Weight
	Result
}

// VerifyWeight computes difference, percentage, status and variance.
// expected must be positive.
func VerifyWeight(expected, actual kernel.Weight, tolerance decimal.Decimal, inspectorID string, now time.Time) (WeightVerification, error) {
	if err := validateTolerance(tolerance); err != nil {
		return WeightVerification{}, err
	}
	if !expected.IsPositive() {
		return WeightVerification{}, errs.NewValueIsInvalidErrorWithCause("expectedWeight is invalid", fmt.Errorf("%s is not greater than 0", expected))
	}

	signed := actual.Decimal().Sub(expected.Decimal())
	diff := signed.Abs()
	pct := diff.Div(expected.Decimal()).Mul(decimal.NewFromInt(100))

	variance := Exact
	switch signed.Sign() {
	case 1:
		variance = Overweight
	case -1:
		variance = Underweight
	}

	return WeightVerification{
		Expected: expected,
		Actual:   actual,
		Result: Result{
			Tolerance:     tolerance,
			Difference:    diff,
			DifferencePct: pct.Round(percentagePlaces),
			Status:        classify(pct, tolerance),
			Variance:      variance,
			InspectorID:   inspectorID,
			VerifiedAt:    now,
		},
	}, nil
}

// DimensionVerification compares measured carton dimensions to the expected
// ones axis by axis. The largest per-axis deviation decides the status; the
// sign of the volume deviation decides the variance type.
type DimensionVerification struct {
	Expected kernel.Dimensions
	Actual   kernel.Dimensions
	Result
}

// VerifyDimensions computes the verification of actual against expected.
func VerifyDimensions(expected, actual kernel.Dimensions, tolerance decimal.Decimal, inspectorID string, now time.Time) (DimensionVerification, error) {
	if err := validateTolerance(tolerance); err != nil {
		return DimensionVerification{}, err
	}
	if err := expected.Validate(); err != nil {
		return DimensionVerification{}, err
	}
	if err := actual.Validate(); err != nil {
		return DimensionVerification{}, err
	}

	e := expected.Axes()
	a := actual.Axes()
	diff := decimal.Zero
	pct := decimal.Zero
	for i := range e {
		d := a[i].Sub(e[i]).Abs()
		p := d.Div(e[i]).Mul(decimal.NewFromInt(100))
		if p.GreaterThan(pct) {
			pct = p
			diff = d
		}
	}

	variance := Exact
	switch actual.Volume().Cmp(expected.Volume()) {
	case 1:
		variance = Oversized
	case -1:
		variance = Undersized
	}

	return DimensionVerification{
		Expected: expected,
		Actual:   actual,
		Result: Result{
			Tolerance:     tolerance,
			Difference:    diff,
			DifferencePct: pct.Round(percentagePlaces),
			Status:        classify(pct, tolerance),
			Variance:      variance,
			InspectorID:   inspectorID,
			VerifiedAt:    now,
		},
	}, nil
}
