package packing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPackedCartonIsNotConstructed is returned when using a zero-value PackedCarton.
var ErrPackedCartonIsNotConstructed = errors.New("PackedCarton must be created via NewPackedCarton constructor")

// PackedItem is one product line inside a carton.
type PackedItem struct {
	ProductID kernel.UUID
	Quantity  kernel.Quantity
}

// Override records an inspector accepting a carton despite a failed verification.
type Override struct {
	InspectorID string
	Reason      string
	At          time.Time
}

// Tolerances are the allowed percentage deviations for one validation run.
type Tolerances struct {
	Weight    decimal.Decimal
	Dimension decimal.Decimal
}

// ValidationResult is what validateCarton reports.
type ValidationResult struct {
	Weight    WeightVerification
	Dimension DimensionVerification
}

// Passed reports whether both verifications are within tolerance.
func (r ValidationResult) Passed() bool {
	return r.Weight.Status == Pass && r.Dimension.Status == Pass
}

// PackedCarton is one physical package of an order.
//
// Invariants:
//   - A carton with a failed or warning verification cannot ship unless overridden
//   - A carton whose last quality check requires repack or reinspection cannot ship
//   - Re-packing clears previous verifications, override and quality check
type PackedCarton struct {
	id               kernel.UUID
	orderID          kernel.UUID
	cartonType       CartonType
	items            []PackedItem
	expectedWeight   kernel.Weight
	actualWeight     kernel.Weight
	actualDimensions kernel.Dimensions
	status           CartonStatus
	weightCheck      *WeightVerification
	dimensionCheck   *DimensionVerification
	qualityCheck     *QualityCheck
	override         *Override
	packedAt         time.Time
	guard            guard.ConstructorGuard
}

// NewPackedCarton records a freshly packed carton with its measured weight and
// dimensions.
func NewPackedCarton(
	id kernel.UUID,
	orderID kernel.UUID,
	cartonType CartonType,
	items []PackedItem,
	expectedWeight kernel.Weight,
	actualWeight kernel.Weight,
	actualDimensions kernel.Dimensions,
	packedAt time.Time,
) (*PackedCarton, error) {
	c := &PackedCarton{
		status:   Packed,
		packedAt: packedAt,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrderID(orderID),
		c.setCartonType(cartonType),
		c.setItems(items),
		c.setMeasurements(expectedWeight, actualWeight, actualDimensions),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestorePackedCarton rebuilds a PackedCarton from persistence.
func RestorePackedCarton(
	id kernel.UUID,
	orderID kernel.UUID,
	cartonType CartonType,
	items []PackedItem,
	expectedWeight kernel.Weight,
	actualWeight kernel.Weight,
	actualDimensions kernel.Dimensions,
	status CartonStatus,
	weightCheck *WeightVerification,
	dimensionCheck *DimensionVerification,
	qualityCheck *QualityCheck,
	override *Override,
	packedAt time.Time,
) (*PackedCarton, error) {
	c, err := NewPackedCarton(id, orderID, cartonType, items, expectedWeight, actualWeight, actualDimensions, packedAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	c.status = status
	c.weightCheck = weightCheck
	c.dimensionCheck = dimensionCheck
	c.qualityCheck = qualityCheck
	c.override = override
	return c, nil
}

func (c *PackedCarton) Validate() error {
	if c == nil {
		return ErrPackedCartonIsNotConstructed
	}
	return c.guard.Validate(ErrPackedCartonIsNotConstructed)
}

func (c *PackedCarton) ID() kernel.UUID { return c.id }
func (c *PackedCarton) OrderID() kernel.UUID { return c.orderID }
func (c *PackedCarton) CartonType() CartonType { return c.cartonType }
func (c *PackedCarton) ExpectedWeight() kernel.Weight { return c.expectedWeight }
func (c *PackedCarton) ActualWeight() kernel.Weight { return c.actualWeight }
func (c *PackedCarton) ActualDimensions() kernel.Dimensions { return c.actualDimensions }
func (c *PackedCarton) Status() CartonStatus { return c.status }
func (c *PackedCarton) WeightVerification() *WeightVerification { return c.weightCheck }
func (c *PackedCarton) DimensionVerification() *DimensionVerification { return c.dimensionCheck }
func (c *PackedCarton) QualityCheck() *QualityCheck { return c.qualityCheck }
func (c *PackedCarton) Override() *Override { return c.override }
func (c *PackedCarton) PackedAt() time.Time { return c.packedAt }

func (c *PackedCarton) Items() []PackedItem {
	out := make([]PackedItem, len(c.items))
	copy(out, c.items)
	return out
}

// ValidateMeasurements verifies the measured weight against the expected
// weight and the measured dimensions against the carton type. Only two passes
// verify the carton; a warning or a failure leaves it packed and blocked.
func (c *PackedCarton) ValidateMeasurements(tolerances Tolerances, inspectorID string, now time.Time) (ValidationResult, error) {
	if err := c.status.validateOnFloor("validate"); err != nil {
		return ValidationResult{}, err
	}

	weight, err := VerifyWeight(c.expectedWeight, c.actualWeight, tolerances.Weight, inspectorID, now)
	if err != nil {
		return ValidationResult{}, err
	}
	dims, err := VerifyDimensions(c.cartonType.Dimensions(), c.actualDimensions, tolerances.Dimension, inspectorID, now)
	if err != nil {
		return ValidationResult{}, err
	}

	result := ValidationResult{Weight: weight, Dimension: dims}
	c.weightCheck = &weight
	c.dimensionCheck = &dims
	c.override = nil
	if result.Passed() {
		c.status = Verified
	} else {
		c.status = Packed
	}

	return result, nil
}

// Repack records new measurements after the carton was re-packed. Previous
// verifications, override and quality check no longer apply.
func (c *PackedCarton) Repack(items []PackedItem, expectedWeight, actualWeight kernel.Weight, actualDimensions kernel.Dimensions, now time.Time) error {
	if err := c.status.validateOnFloor("repack"); err != nil {
		return err
	}
	if err := errors.Join(c.setItems(items), c.setMeasurements(expectedWeight, actualWeight, actualDimensions)); err != nil {
		return err
	}

	c.status = Packed
	c.weightCheck = nil
	c.dimensionCheck = nil
	c.qualityCheck = nil
	c.override = nil
	c.packedAt = now
	return nil
}

// OverrideVerification lets an inspector accept a carton whose verification
// warned or failed.
func (c *PackedCarton) OverrideVerification(inspectorID, reason string, now time.Time) error {
	if err := c.status.validateOnFloor("override"); err != nil {
		return err
	}
	if strings.TrimSpace(inspectorID) == "" {
		return errs.NewValueIsRequiredError("inspectorId")
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if !c.outOfTolerance() {
		return errs.NewValueIsInvalidErrorWithCause("override is invalid", errors.New("carton has no verification out of tolerance"))
	}

	c.override = &Override{InspectorID: inspectorID, Reason: reason, At: now}
	c.status = Verified
	return nil
}

// RecordQualityCheck attaches the latest quality check. A check that requires
// repack sends a verified carton back to packed. One that only requires
// reinspection blocks shipping until a later check clears it.
func (c *PackedCarton) RecordQualityCheck(q QualityCheck) error {
	if err := c.status.validateOnFloor("record a quality check"); err != nil {
		return err
	}
	c.qualityCheck = &q
	if q.RequiresRepack() {
		c.status = Packed
	}
	return nil
}

// CanShip returns the reason the carton may not leave the packing area, or nil.
func (c *PackedCarton) CanShip() error {
	if c.qualityCheck != nil && c.qualityCheck.RequiresRepack() {
		return ErrRepackRequired
	}
	if c.qualityCheck != nil && c.qualityCheck.RequiresReinspection() {
		return ErrReinspectionRequired
	}
	if c.outOfTolerance() && c.override == nil {
		return ErrToleranceExceeded
	}
	if c.status != Verified {
		return fmt.Errorf("%w: status is %s", ErrNotVerified, c.status)
	}
	return nil
}

// Ship hands the carton over to loading.
func (c *PackedCarton) Ship() error {
	if err := c.CanShip(); err != nil {
		return err
	}
	c.status = Shipped
	return nil
}

// MarkDamaged takes the carton out of the flow.
func (c *PackedCarton) MarkDamaged() error {
	if err := c.status.validateOnFloor("mark damaged"); err != nil {
		return err
	}
	c.status = Damaged
	return nil
}

func (c *PackedCarton) outOfTolerance() bool {
	return (c.weightCheck != nil && c.weightCheck.Status != Pass) ||
		(c.dimensionCheck != nil && c.dimensionCheck.Status != Pass)
}

func (c *PackedCarton) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *PackedCarton) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *PackedCarton) setCartonType(t CartonType) error {
	if err := t.ID().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("cartonType", err)
	}
	c.cartonType = t
	return nil
}

func (c *PackedCarton) setItems(items []PackedItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause(fmt.Sprintf("items[%d].productId", i), err)
		}
		if !item.Quantity.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].quantity is invalid", i), fmt.Errorf("%s is not greater than 0", item.Quantity))
		}
	}
	c.items = make([]PackedItem, len(items))
	copy(c.items, items)
	return nil
}

func (c *PackedCarton) setMeasurements(expected, actual kernel.Weight, dims kernel.Dimensions) error {
	if !expected.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("expectedWeight is invalid", fmt.Errorf("%s is not greater than 0", expected))
	}
	if err := dims.Validate(); err != nil {
		return err
	}
	c.expectedWeight = expected
	c.actualWeight = actual
	c.actualDimensions = dims
	return nil
}
