package allocationrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var openBackOrderStatuses = []int{int(allocation.Pending), int(allocation.PartiallyFulfilled)}

// GormBackOrderRepository implements ports.BackOrderRepository using GORM.
type GormBackOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormBackOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormBackOrderRepository {
	return &GormBackOrderRepository{db: db, tracker: tracker}
}

func (r *GormBackOrderRepository) Add(ctx context.Context, aggregate *allocation.BackOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := backOrderFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBackOrderRepository) Update(ctx context.Context, aggregate *allocation.BackOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := backOrderFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BackOrderDTO{}).Where("id = ?", dto.ID).
		Select("backordered", "fulfilled", "status", "expected_fulfillment_date").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("backOrderId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBackOrderRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.BackOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BackOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if pgmap.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("backOrderId", id.String())
		}
		return nil, err
	}
	return backOrderToDomain(dto)
}

func (r *GormBackOrderRepository) FindOpenForLine(ctx context.Context, orderLineID kernel.UUID) (*allocation.BackOrder, error) {
	if err := orderLineID.Validate(); err != nil {
		return nil, err
	}

	var dto BackOrderDTO
	if err := r.db.WithContext(ctx).
		Where("order_line_id = ? AND status IN ?", orderLineID.Bytes(), openBackOrderStatuses).
		First(&dto).Error; err != nil {
		if pgmap.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("orderLineId", orderLineID.String())
		}
		return nil, err
	}
	return backOrderToDomain(dto)
}

func (r *GormBackOrderRepository) FindPendingBackorders(
	ctx context.Context,
	warehouseID kernel.UUID,
	autoFulfillOnly bool,
) ([]*allocation.BackOrder, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Where("warehouse_id = ? AND status IN ?", warehouseID.Bytes(), openBackOrderStatuses)
	if autoFulfillOnly {
		query = query.Where("auto_fulfill")
	}

	var dtos []BackOrderDTO
	if err := query.Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]*allocation.BackOrder, 0, len(dtos))
	for _, dto := range dtos {
		b, err := backOrderToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *GormBackOrderRepository) FindWarehousesWithPending(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&BackOrderDTO{}).
		Where("status IN ? AND auto_fulfill", openBackOrderStatuses).
		Distinct().
		Order("warehouse_id").
		Pluck("warehouse_id", &raw).Error; err != nil {
		return nil, err
	}

	out := make([]kernel.UUID, 0, len(raw))
	for _, u := range raw {
		id, err := pgmap.ID(u)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
