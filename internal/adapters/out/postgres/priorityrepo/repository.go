package priorityrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/priority"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPriorityRepository implements ports.PriorityRepository using GORM.
type GormPriorityRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPriorityRepository(db *gorm.DB, tracker aggregateTracker) *GormPriorityRepository {
	return &GormPriorityRepository{db: db, tracker: tracker}
}

// Save upserts the priority of an order.
func (r *GormPriorityRepository) Save(ctx context.Context, aggregate *priority.OrderPriority) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "order_id"}}, UpdateAll: true}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

func (r *GormPriorityRepository) Get(ctx context.Context, orderID kernel.UUID) (*priority.OrderPriority, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderPriorityDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if pgmap.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
