// Package loadplanrepo persists load plans with their shipment lines and the
// dock schedules that reference them.
package loadplanrepo

import (
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoadPlanDTO is the row of load_plans. Totals are not stored.
type LoadPlanDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	WarehouseID    uuid.UUID       `gorm:"type:uuid;index"`
	VehicleID      string
	CapacityWeight decimal.Decimal `gorm:"type:numeric(14,3)"`
	CapacityVolume decimal.Decimal `gorm:"type:numeric(14,3)"`
	Status         int             `gorm:"type:smallint"`
	CreatedAt      time.Time
}

func (LoadPlanDTO) TableName() string {
	return "load_plans"
}

// ShipmentDTO is the row of load_plan_shipments.
type ShipmentDTO struct {
	LoadPlanID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID       `gorm:"type:uuid"`
	Weight     decimal.Decimal `gorm:"type:numeric(14,3)"`
	Volume     decimal.Decimal `gorm:"type:numeric(14,3)"`
	Position   int
}

func (ShipmentDTO) TableName() string {
	return "load_plan_shipments"
}

// DockScheduleDTO is the row of dock_schedules.
type DockScheduleDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	DockID      uuid.UUID `gorm:"type:uuid;index"`
	LoadPlanID  uuid.UUID `gorm:"type:uuid"`
	WindowStart time.Time
	WindowEnd   time.Time
	Status      int `gorm:"type:smallint"`
	ScheduledBy string
	Notes       string
	CreatedAt   time.Time
}

func (DockScheduleDTO) TableName() string {
	return "dock_schedules"
}

func planFromDomain(p *loading.LoadPlan) (LoadPlanDTO, []ShipmentDTO) {
	planID := p.ID().Bytes()
	plan := LoadPlanDTO{
		ID:             planID,
		WarehouseID:    p.WarehouseID().Bytes(),
		VehicleID:      p.VehicleID(),
		CapacityWeight: p.CapacityWeight().Decimal(),
		CapacityVolume: p.CapacityVolume().Decimal(),
		Status:         int(p.Status()),
		CreatedAt:      p.CreatedAt(),
	}

	shipments := make([]ShipmentDTO, 0, len(p.Shipments()))
	for n, s := range p.Shipments() {
		shipments = append(shipments, ShipmentDTO{
			LoadPlanID: planID,
			ShipmentID: s.ID().Bytes(),
			OrderID:    s.OrderID().Bytes(),
			Weight:     s.Weight().Decimal(),
			Volume:     s.Volume().Decimal(),
			Position:   n,
		})
	}
	return plan, shipments
}

func planToDomain(plan LoadPlanDTO, shipmentDTOs []ShipmentDTO) (*loading.LoadPlan, error) {
	id, idErr := pgmap.ID(plan.ID)
	warehouseID, warehouseErr := pgmap.ID(plan.WarehouseID)
	capacityWeight, weightErr := pgmap.Quantity(plan.CapacityWeight)
	capacityVolume, volumeErr := pgmap.Quantity(plan.CapacityVolume)
	if err := errors.Join(idErr, warehouseErr, weightErr, volumeErr); err != nil {
		return nil, err
	}

	shipments := make([]loading.Shipment, 0, len(shipmentDTOs))
	for _, dto := range shipmentDTOs {
		s, err := shipmentToDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return loading.RestoreLoadPlan(
		id,
		warehouseID,
		plan.VehicleID,
		capacityWeight,
		capacityVolume,
		shipments,
		loading.LoadPlanStatus(plan.Status),
		plan.CreatedAt,
	)
}

func shipmentToDomain(dto ShipmentDTO) (loading.Shipment, error) {
	id, idErr := pgmap.ID(dto.ShipmentID)
	orderID, orderErr := pgmap.ID(dto.OrderID)
	weight, weightErr := pgmap.Quantity(dto.Weight)
	volume, volumeErr := pgmap.Quantity(dto.Volume)
	if err := errors.Join(idErr, orderErr, weightErr, volumeErr); err != nil {
		return loading.Shipment{}, err
	}
	return loading.NewShipment(id, orderID, weight, volume)
}

func scheduleFromDomain(d *loading.DockSchedule) DockScheduleDTO {
	return DockScheduleDTO{
		ID:          d.ID().Bytes(),
		DockID:      d.DockID().Bytes(),
		LoadPlanID:  d.LoadPlanID().Bytes(),
		WindowStart: d.Window().Start(),
		WindowEnd:   d.Window().End(),
		Status:      int(d.Status()),
		ScheduledBy: d.ScheduledBy(),
		Notes:       d.Notes(),
		CreatedAt:   d.CreatedAt(),
	}
}

func scheduleToDomain(dto DockScheduleDTO) (*loading.DockSchedule, error) {
	id, idErr := pgmap.ID(dto.ID)
	dockID, dockErr := pgmap.ID(dto.DockID)
	planID, planErr := pgmap.ID(dto.LoadPlanID)
	window, windowErr := kernel.RestoreTimeWindow(dto.WindowStart, dto.WindowEnd)
	if err := errors.Join(idErr, dockErr, planErr, windowErr); err != nil {
		return nil, err
	}

	return loading.RestoreDockSchedule(
		id, dockID, planID, window, loading.DockScheduleStatus(dto.Status), dto.ScheduledBy, dto.Notes, dto.CreatedAt,
	)
}
