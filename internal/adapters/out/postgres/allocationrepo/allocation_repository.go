package allocationrepo

import (
	"context"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormAllocationRepository implements ports.AllocationRepository using GORM.
type GormAllocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormAllocationRepository(db *gorm.DB, tracker aggregateTracker) *GormAllocationRepository {
	return &GormAllocationRepository{db: db, tracker: tracker}
}

func (r *GormAllocationRepository) Add(ctx context.Context, aggregate *allocation.Allocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := allocationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update only writes rows that are still live. A row that was expired or
// cancelled since it was read yields allocation.ErrAllocationNotAvailable.
func (r *GormAllocationRepository) Update(ctx context.Context, aggregate *allocation.Allocation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := allocationFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AllocationDTO{}).
		Where("id = ? AND status IN ?", dto.ID, liveStatuses()).
		Select("picked", "status", "expires_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		if _, err := r.Get(ctx, aggregate.ID()); err != nil {
			return err
		}
		return allocation.ErrAllocationNotAvailable
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormAllocationRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	return r.load(r.db.WithContext(ctx), id)
}

func (r *GormAllocationRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormAllocationRepository) load(tx *gorm.DB, id kernel.UUID) (*allocation.Allocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AllocationDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if pgmap.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("allocationId", id.String())
		}
		return nil, err
	}

	return allocationToDomain(dto)
}

func (r *GormAllocationRepository) FindByOrderLine(ctx context.Context, orderLineID kernel.UUID) ([]*allocation.Allocation, error) {
	if err := orderLineID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AllocationDTO
	if err := r.db.WithContext(ctx).
		Where("order_line_id = ?", orderLineID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return allocationsToDomain(dtos)
}

// FindExpirable reads candidates without locking; CompareAndExpire decides.
func (r *GormAllocationRepository) FindExpirable(ctx context.Context, now time.Time, limit int) ([]*allocation.Allocation, error) {
	var dtos []AllocationDTO
	if err := r.db.WithContext(ctx).
		Where("status = ? AND picked = 0 AND expires_at < ?", int(allocation.Allocated), now).
		Order("expires_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	return allocationsToDomain(dtos)
}

func (r *GormAllocationRepository) CompareAndExpire(ctx context.Context, aggregate *allocation.Allocation) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Model(&AllocationDTO{}).
		Where("id = ? AND status = ? AND picked = 0", aggregate.ID().Bytes(), int(allocation.Allocated)).
		Update("status", int(aggregate.Status()))
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return true, nil
}

func liveStatuses() []int {
	return []int{int(allocation.Allocated), int(allocation.PartiallyPicked)}
}

func allocationsToDomain(dtos []AllocationDTO) ([]*allocation.Allocation, error) {
	out := make([]*allocation.Allocation, 0, len(dtos))
	for _, dto := range dtos {
		a, err := allocationToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
