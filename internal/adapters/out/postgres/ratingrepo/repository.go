package ratingrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormShoppingResultRepository implements ports.ShoppingResultRepository using GORM.
type GormShoppingResultRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormShoppingResultRepository(db *gorm.DB, tracker aggregateTracker) *GormShoppingResultRepository {
	return &GormShoppingResultRepository{db: db, tracker: tracker}
}

func (r *GormShoppingResultRepository) Add(ctx context.Context, aggregate *rating.ShoppingResult) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormShoppingResultRepository) GetLatestForOrder(ctx context.Context, orderID kernel.UUID) (*rating.ShoppingResult, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto ShoppingResultDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("quoted_at DESC, id").
		Take(&dto).Error
	if err != nil {
		if pgmap.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("orderId", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
