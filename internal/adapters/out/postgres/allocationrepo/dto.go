// Package allocationrepo persists inventory holds and backorders.
package allocationrepo

import (
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/allocation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineDTO is the order line reference embedded in both tables.
type LineDTO struct {
	OrderID     uuid.UUID `gorm:"type:uuid"`
	OrderLineID uuid.UUID `gorm:"type:uuid;index"`
	ProductID   uuid.UUID `gorm:"type:uuid"`
	WarehouseID uuid.UUID `gorm:"type:uuid;index"`
}

// AllocationDTO is the row of allocations.
type AllocationDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Line              LineDTO   `gorm:"embedded"`
	InventoryRecordID uuid.UUID `gorm:"type:uuid"`
	LocationZone      string
	LocationAisle     int
	LocationPosition  int
	Lot               string
	Serial            string
	Allocated         decimal.Decimal `gorm:"type:numeric(18,4)"`
	Picked            decimal.Decimal `gorm:"type:numeric(18,4)"`
	Status            int             `gorm:"type:smallint"`
	CreatedAt         time.Time
	ExpiresAt         time.Time
}

func (AllocationDTO) TableName() string {
	return "allocations"
}

// BackOrderDTO is the row of backorders.
type BackOrderDTO struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Line                    LineDTO         `gorm:"embedded"`
	Backordered             decimal.Decimal `gorm:"type:numeric(18,4)"`
	Fulfilled               decimal.Decimal `gorm:"type:numeric(18,4)"`
	Status                  int             `gorm:"type:smallint"`
	ExpectedFulfillmentDate *time.Time
	AutoFulfill             bool
	CreatedAt               time.Time
}

func (BackOrderDTO) TableName() string {
	return "backorders"
}

func lineFromDomain(l allocation.Line) LineDTO {
	return LineDTO{
		OrderID:     l.OrderID.Bytes(),
		OrderLineID: l.OrderLineID.Bytes(),
		ProductID:   l.ProductID.Bytes(),
		WarehouseID: l.WarehouseID.Bytes(),
	}
}

func lineToDomain(dto LineDTO) (allocation.Line, error) {
	orderID, orderErr := pgmap.ID(dto.OrderID)
	lineID, lineErr := pgmap.ID(dto.OrderLineID)
	productID, productErr := pgmap.ID(dto.ProductID)
	warehouseID, warehouseErr := pgmap.ID(dto.WarehouseID)
	if err := errors.Join(orderErr, lineErr, productErr, warehouseErr); err != nil {
		return allocation.Line{}, err
	}
	return allocation.Line{OrderID: orderID, OrderLineID: lineID, ProductID: productID, WarehouseID: warehouseID}, nil
}

func allocationFromDomain(a *allocation.Allocation) AllocationDTO {
	src := a.Source()
	return AllocationDTO{
		ID:                a.ID().Bytes(),
		Line:              lineFromDomain(a.Line()),
		InventoryRecordID: src.InventoryRecordID.Bytes(),
		LocationZone:      src.Location.Zone(),
		LocationAisle:     src.Location.Aisle(),
		LocationPosition:  src.Location.Position(),
		Lot:               src.Lot,
		Serial:            src.Serial,
		Allocated:         a.AllocatedQuantity().Decimal(),
		Picked:            a.PickedQuantity().Decimal(),
		Status:            int(a.Status()),
		CreatedAt:         a.CreatedAt(),
		ExpiresAt:         a.ExpiresAt(),
	}
}

func allocationToDomain(dto AllocationDTO) (*allocation.Allocation, error) {
	id, err := pgmap.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	line, err := lineToDomain(dto.Line)
	if err != nil {
		return nil, err
	}
	recordID, err := pgmap.ID(dto.InventoryRecordID)
	if err != nil {
		return nil, err
	}
	location, err := pgmap.Location(dto.LocationZone, dto.LocationAisle, dto.LocationPosition)
	if err != nil {
		return nil, err
	}
	allocated, allocatedErr := pgmap.Quantity(dto.Allocated)
	picked, pickedErr := pgmap.Quantity(dto.Picked)
	if err = errors.Join(allocatedErr, pickedErr); err != nil {
		return nil, err
	}

	return allocation.RestoreAllocation(
		id,
		line,
		allocation.Source{InventoryRecordID: recordID, Location: location, Lot: dto.Lot, Serial: dto.Serial},
		allocated,
		picked,
		allocation.Status(dto.Status),
		dto.CreatedAt,
		dto.ExpiresAt,
	)
}

func backOrderFromDomain(b *allocation.BackOrder) BackOrderDTO {
	return BackOrderDTO{
		ID:                      b.ID().Bytes(),
		Line:                    lineFromDomain(b.Line()),
		Backordered:             b.BackorderedQuantity().Decimal(),
		Fulfilled:               b.FulfilledQuantity().Decimal(),
		Status:                  int(b.Status()),
		ExpectedFulfillmentDate: b.ExpectedFulfillmentDate(),
		AutoFulfill:             b.AutoFulfill(),
		CreatedAt:               b.CreatedAt(),
	}
}

func backOrderToDomain(dto BackOrderDTO) (*allocation.BackOrder, error) {
	id, err := pgmap.ID(dto.ID)
	if err != nil {
		return nil, err
	}
	line, err := lineToDomain(dto.Line)
	if err != nil {
		return nil, err
	}
	backordered, backorderedErr := pgmap.Quantity(dto.Backordered)
	fulfilled, fulfilledErr := pgmap.Quantity(dto.Fulfilled)
	if err = errors.Join(backorderedErr, fulfilledErr); err != nil {
		return nil, err
	}

	return allocation.RestoreBackOrder(
		id,
		line,
		backordered,
		fulfilled,
		allocation.BackOrderStatus(dto.Status),
		dto.ExpectedFulfillmentDate,
		dto.AutoFulfill,
		dto.CreatedAt,
	)
}
