// Package picklistrepo persists pick lists with their items, the append-only
// confirmation log and pick exceptions, one table each.
package picklistrepo

import (
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/picking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PickListDTO is the row of pick_lists.
type PickListDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID  `gorm:"type:uuid"`
	WaveID      *uuid.UUID `gorm:"type:uuid"`
	PickerID    string
	Status      int `gorm:"type:smallint"`
	CreatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
}

func (PickListDTO) TableName() string {
	return "pick_lists"
}

// ItemDTO is the row of pick_list_items.
type ItemDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	PickListID       uuid.UUID `gorm:"type:uuid;index"`
	AllocationID     uuid.UUID `gorm:"type:uuid"`
	ProductID        uuid.UUID `gorm:"type:uuid"`
	LocationZone     string
	LocationAisle    int
	LocationPosition int
	ToPick           decimal.Decimal `gorm:"type:numeric(18,4)"`
	Picked           decimal.Decimal `gorm:"type:numeric(18,4)"`
	Status           int             `gorm:"type:smallint"`
	Sequence         int
	CreationIndex    int
}

func (ItemDTO) TableName() string {
	return "pick_list_items"
}

// ConfirmationDTO is the row of pick_confirmations. Position keeps the append
// order of the log.
type ConfirmationDTO struct {
	PickListID  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ID          string          `gorm:"primaryKey"`
	ItemID      uuid.UUID       `gorm:"type:uuid"`
	Quantity    decimal.Decimal `gorm:"type:numeric(18,4)"`
	PickerID    string
	Method      int `gorm:"type:smallint"`
	Notes       string
	ExceptionID *uuid.UUID `gorm:"type:uuid"`
	ConfirmedAt time.Time
	Position    int
}

func (ConfirmationDTO) TableName() string {
	return "pick_confirmations"
}

// ExceptionDTO is the row of pick_exceptions.
type ExceptionDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PickListID uuid.UUID       `gorm:"type:uuid;index"`
	ItemID     uuid.UUID       `gorm:"type:uuid"`
	Type       int             `gorm:"type:smallint"`
	Expected   decimal.Decimal `gorm:"type:numeric(18,4)"`
	Actual     decimal.Decimal `gorm:"type:numeric(18,4)"`
	Status     int             `gorm:"type:smallint"`
	ReportedBy string
	ResolvedBy string
	Resolution string
	ReportedAt time.Time
	ResolvedAt *time.Time
}

func (ExceptionDTO) TableName() string {
	return "pick_exceptions"
}

type rows struct {
	list          PickListDTO
	items         []ItemDTO
	confirmations []ConfirmationDTO
	exceptions    []ExceptionDTO
}

func fromDomain(l *picking.PickList) rows {
	listID := l.ID().Bytes()
	out := rows{
		list: PickListDTO{
			ID:          listID,
			WarehouseID: l.WarehouseID().Bytes(),
			WaveID:      pgmap.NullableID(l.WaveID()),
			PickerID:    l.PickerID(),
			Status:      int(l.Status()),
			CreatedAt:   l.CreatedAt(),
			StartedAt:   l.StartedAt(),
			CompletedAt: l.CompletedAt(),
		},
	}

	for _, item := range l.Items() {
		out.items = append(out.items, ItemDTO{
			ID:               item.ID().Bytes(),
			PickListID:       listID,
			AllocationID:     item.AllocationID().Bytes(),
			ProductID:        item.ProductID().Bytes(),
			LocationZone:     item.Location().Zone(),
			LocationAisle:    item.Location().Aisle(),
			LocationPosition: item.Location().Position(),
			ToPick:           item.QuantityToPick().Decimal(),
			Picked:           item.QuantityPicked().Decimal(),
			Status:           int(item.Status()),
			Sequence:         item.Sequence(),
			CreationIndex:    item.CreationIndex(),
		})
	}

	for n, c := range l.Confirmations() {
		out.confirmations = append(out.confirmations, ConfirmationDTO{
			PickListID:  listID,
			ID:          c.ID(),
			ItemID:      c.ItemID().Bytes(),
			Quantity:    c.Quantity().Decimal(),
			PickerID:    c.PickerID(),
			Method:      int(c.Method()),
			Notes:       c.Notes(),
			ExceptionID: pgmap.NullableID(c.ExceptionID()),
			ConfirmedAt: c.ConfirmedAt(),
			Position:    n,
		})
	}

	for _, e := range l.Exceptions() {
		out.exceptions = append(out.exceptions, ExceptionDTO{
			ID:         e.ID().Bytes(),
			PickListID: listID,
			ItemID:     e.ItemID().Bytes(),
			Type:       int(e.Type()),
			Expected:   e.ExpectedQuantity().Decimal(),
			Actual:     e.ActualQuantity().Decimal(),
			Status:     int(e.Status()),
			ReportedBy: e.ReportedBy(),
			ResolvedBy: e.ResolvedBy(),
			Resolution: e.Resolution(),
			ReportedAt: e.ReportedAt(),
			ResolvedAt: e.ResolvedAt(),
		})
	}

	return out
}

func toDomain(r rows) (*picking.PickList, error) {
	id, idErr := pgmap.ID(r.list.ID)
	warehouseID, warehouseErr := pgmap.ID(r.list.WarehouseID)
	waveID, waveErr := pgmap.OptionalID(r.list.WaveID)
	if err := errors.Join(idErr, warehouseErr, waveErr); err != nil {
		return nil, err
	}

	items := make([]*picking.Item, 0, len(r.items))
	for _, dto := range r.items {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	confirmations := make([]picking.Confirmation, 0, len(r.confirmations))
	for _, dto := range r.confirmations {
		c, err := confirmationToDomain(dto)
		if err != nil {
			return nil, err
		}
		confirmations = append(confirmations, c)
	}

	exceptions := make([]*picking.Exception, 0, len(r.exceptions))
	for _, dto := range r.exceptions {
		e, err := exceptionToDomain(dto)
		if err != nil {
			return nil, err
		}
		exceptions = append(exceptions, e)
	}

	return picking.RestorePickList(
		id,
		warehouseID,
		waveID,
		r.list.PickerID,
		picking.ListStatus(r.list.Status),
		items,
		confirmations,
		exceptions,
		r.list.CreatedAt,
		r.list.StartedAt,
		r.list.CompletedAt,
	)
}

func itemToDomain(dto ItemDTO) (*picking.Item, error) {
	id, idErr := pgmap.ID(dto.ID)
	allocationID, allocationErr := pgmap.ID(dto.AllocationID)
	productID, productErr := pgmap.ID(dto.ProductID)
	location, locationErr := pgmap.Location(dto.LocationZone, dto.LocationAisle, dto.LocationPosition)
	toPick, toPickErr := pgmap.Quantity(dto.ToPick)
	picked, pickedErr := pgmap.Quantity(dto.Picked)
	if err := errors.Join(idErr, allocationErr, productErr, locationErr, toPickErr, pickedErr); err != nil {
		return nil, err
	}

	return picking.RestoreItem(
		id, allocationID, productID, location, toPick, picked,
		picking.ItemStatus(dto.Status), dto.Sequence, dto.CreationIndex,
	)
}

func confirmationToDomain(dto ConfirmationDTO) (picking.Confirmation, error) {
	itemID, itemErr := pgmap.ID(dto.ItemID)
	exceptionID, exceptionErr := pgmap.OptionalID(dto.ExceptionID)
	quantity, quantityErr := pgmap.Quantity(dto.Quantity)
	if err := errors.Join(itemErr, exceptionErr, quantityErr); err != nil {
		return picking.Confirmation{}, err
	}

	return picking.RestoreConfirmation(
		dto.ID, itemID, quantity, dto.PickerID, picking.Method(dto.Method), dto.Notes, exceptionID, dto.ConfirmedAt,
	), nil
}

func exceptionToDomain(dto ExceptionDTO) (*picking.Exception, error) {
	id, idErr := pgmap.ID(dto.ID)
	itemID, itemErr := pgmap.ID(dto.ItemID)
	expected, expectedErr := pgmap.Quantity(dto.Expected)
	actual, actualErr := pgmap.Quantity(dto.Actual)
	if err := errors.Join(idErr, itemErr, expectedErr, actualErr); err != nil {
		return nil, err
	}

	return picking.RestoreException(
		id, itemID, picking.ExceptionType(dto.Type), expected, actual, picking.ExceptionStatus(dto.Status),
		dto.ReportedBy, dto.ResolvedBy, dto.Resolution, dto.ReportedAt, dto.ResolvedAt,
	)
}
