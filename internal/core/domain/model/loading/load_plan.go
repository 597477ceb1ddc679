package loading

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

// ErrLoadPlanIsNotConstructed is returned when using a zero-value LoadPlan.
var ErrLoadPlanIsNotConstructed = errors.New("LoadPlan must be created via NewLoadPlan constructor")

// LoadPlan is the set of shipments assigned to one vehicle trip.
//
// Invariants:
//   - Add never leaves total weight above capacity weight nor total volume
//     above capacity volume
//   - Totals and utilization percentages are derived from the shipments on
//     every read and are never stored as truth
//
// The repository loads a plan row FOR UPDATE before Add, so concurrent
// assignments to the same plan are evaluated one after the other.
type LoadPlan struct {
	id             kernel.UUID
	warehouseID    kernel.UUID
	vehicleID      string
	capacityWeight kernel.Weight
	capacityVolume kernel.Volume
	shipments      []Shipment
	status         LoadPlanStatus
	createdAt      time.Time
	guard          guard.ConstructorGuard
}

// NewLoadPlan creates an empty Planned plan for a vehicle.
func NewLoadPlan(
	id kernel.UUID,
	warehouseID kernel.UUID,
	vehicleID string,
	capacityWeight kernel.Weight,
	capacityVolume kernel.Volume,
	createdAt time.Time,
) (*LoadPlan, error) {
	p := &LoadPlan{
		status:    Planned,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setWarehouseID(warehouseID),
		p.setVehicleID(vehicleID),
		p.setCapacity(capacityWeight, capacityVolume),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreLoadPlan rebuilds a LoadPlan from persistence. Shipments are trusted
// as stored; an overridden plan may legitimately exceed its capacity.
func RestoreLoadPlan(
	id kernel.UUID,
	warehouseID kernel.UUID,
	vehicleID string,
	capacityWeight kernel.Weight,
	capacityVolume kernel.Volume,
	shipments []Shipment,
	status LoadPlanStatus,
	createdAt time.Time,
) (*LoadPlan, error) {
	p, err := NewLoadPlan(id, warehouseID, vehicleID, capacityWeight, capacityVolume, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	p.shipments = make([]Shipment, len(shipments))
	copy(p.shipments, shipments)
	return p, nil
}

func (p *LoadPlan) Validate() error {
	if p == nil {
		return ErrLoadPlanIsNotConstructed
	}
	return p.guard.Validate(ErrLoadPlanIsNotConstructed)
}

func (p *LoadPlan) ID() kernel.UUID { return p.id }
func (p *LoadPlan) WarehouseID() kernel.UUID { return p.warehouseID }
func (p *LoadPlan) VehicleID() string { return p.vehicleID }
func (p *LoadPlan) CapacityWeight() kernel.Weight { return p.capacityWeight }
func (p *LoadPlan) CapacityVolume() kernel.Volume { return p.capacityVolume }
func (p *LoadPlan) Status() LoadPlanStatus { return p.status }
func (p *LoadPlan) CreatedAt() time.Time { return p.createdAt }

// Shipments returns the assigned shipments in assignment order.
func (p *LoadPlan) Shipments() []Shipment {
	out := make([]Shipment, len(p.shipments))
	copy(out, p.shipments)
	return out
}

// TotalWeight sums shipment weights.
func (p *LoadPlan) TotalWeight() kernel.Weight {
	total := kernel.ZeroQuantity()
	for _, s := range p.shipments {
		total = total.Add(s.weight)
	}
	return total
}

// TotalVolume sums shipment volumes.
func (p *LoadPlan) TotalVolume() kernel.Volume {
	total := kernel.ZeroQuantity()
	for _, s := range p.shipments {
		total = total.Add(s.volume)
	}
	return total
}

// WeightUtilization returns totalWeight/capacityWeight × 100.
func (p *LoadPlan) WeightUtilization() decimal.Decimal {
	return kernel.Percent(p.TotalWeight().Decimal(), p.capacityWeight.Decimal())
}

// VolumeUtilization returns totalVolume/capacityVolume × 100.
func (p *LoadPlan) VolumeUtilization() decimal.Decimal {
	return kernel.Percent(p.TotalVolume().Decimal(), p.capacityVolume.Decimal())
}

// RemainingWeight returns the weight capacity still free (zero when overloaded).
func (p *LoadPlan) RemainingWeight() kernel.Weight {
	return p.capacityWeight.Sub(p.TotalWeight())
}

// RemainingVolume returns the volume capacity still free (zero when overloaded).
func (p *LoadPlan) RemainingVolume() kernel.Volume {
	return p.capacityVolume.Sub(p.TotalVolume())
}

// IsOverweight is an advisory check for plans assembled with overrides.
func (p *LoadPlan) IsOverweight() bool {
	return p.TotalWeight().GreaterThan(p.capacityWeight)
}

// IsOverVolume is an advisory check for plans assembled with overrides.
func (p *LoadPlan) IsOverVolume() bool {
	return p.TotalVolume().GreaterThan(p.capacityVolume)
}

// Contains reports whether the shipment is already on the plan.
func (p *LoadPlan) Contains(shipmentID kernel.UUID) bool {
	for _, s := range p.shipments {
		if s.id == shipmentID {
			return true
		}
	}
	return false
}

// Evaluate returns why s would be rejected, or "" when it fits.
func (p *LoadPlan) Evaluate(s Shipment) RejectionReason {
	switch {
	case !p.status.IsOpen():
		return PlanNotOpen
	case p.Contains(s.id):
		return AlreadyAssigned
	case p.TotalWeight().Add(s.weight).GreaterThan(p.capacityWeight):
		return WeightCapacityExceeded
	case p.TotalVolume().Add(s.volume).GreaterThan(p.capacityVolume):
		return VolumeCapacityExceeded
	default:
		return ""
	}
}

// Add assigns s if it fits. A refusal is a *RejectionError.
func (p *LoadPlan) Add(s Shipment) error {
	if reason := p.Evaluate(s); reason != "" {
		return &RejectionError{Reason: reason}
	}
	p.shipments = append(p.shipments, s)
	return nil
}

// AddWithOverride assigns s ignoring capacity. It is the only way a plan can
// exceed its capacity and requires the acting user and a reason.
func (p *LoadPlan) AddWithOverride(s Shipment, actor, reason string) error {
	if strings.TrimSpace(actor) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	switch r := p.Evaluate(s); r {
	case PlanNotOpen, AlreadyAssigned:
		return &RejectionError{Reason: r}
	}
	p.shipments = append(p.shipments, s)
	return nil
}

// Remove takes a shipment off a plan that has not started loading.
func (p *LoadPlan) Remove(shipmentID kernel.UUID) error {
	if p.status != Planned {
		return &RejectionError{Reason: PlanNotOpen}
	}
	for i, s := range p.shipments {
		if s.id == shipmentID {
			p.shipments = append(p.shipments[:i], p.shipments[i+1:]...)
			return nil
		}
	}
	return ErrShipmentNotAssigned
}

// ChangeStatus moves the plan one step forward in its lifecycle.
func (p *LoadPlan) ChangeStatus(target LoadPlanStatus) error {
	next, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}
	p.status = next
	return nil
}

func (p *LoadPlan) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *LoadPlan) setWarehouseID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}
	p.warehouseID = id
	return nil
}

func (p *LoadPlan) setVehicleID(vehicleID string) error {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return errs.NewValueIsRequiredError("vehicleId")
	}
	p.vehicleID = vehicleID
	return nil
}

func (p *LoadPlan) setCapacity(weight kernel.Weight, volume kernel.Volume) error {
	var weightErr, volumeErr error
	if !weight.IsPositive() {
		weightErr = errs.NewValueIsInvalidErrorWithCause("capacityWeight is invalid", fmt.Errorf("%s is not greater than 0", weight))
	}
	if !volume.IsPositive() {
		volumeErr = errs.NewValueIsInvalidErrorWithCause("capacityVolume is invalid", fmt.Errorf("%s is not greater than 0", volume))
	}
	if err := errors.Join(weightErr, volumeErr); err != nil {
		return err
	}
	p.capacityWeight = weight
	p.capacityVolume = volume
	return nil
}
