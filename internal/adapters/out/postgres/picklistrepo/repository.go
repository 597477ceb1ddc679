package picklistrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPickListRepository implements ports.PickListRepository using GORM.
type GormPickListRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPickListRepository(db *gorm.DB, tracker aggregateTracker) *GormPickListRepository {
	return &GormPickListRepository{db: db, tracker: tracker}
}

func (r *GormPickListRepository) Add(ctx context.Context, aggregate *picking.PickList) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&dto.list).Error; err != nil {
		return err
	}
	if len(dto.items) > 0 {
		if err := db.Create(&dto.items).Error; err != nil {
			return err
		}
	}
	if err := r.saveLog(db, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update rewrites list and item state. Confirmations are insert-only; a row
// already stored under the same id is left untouched.
func (r *GormPickListRepository) Update(ctx context.Context, aggregate *picking.PickList) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&PickListDTO{}).Where("id = ?", dto.list.ID).
		Select("picker_id", "status", "started_at", "completed_at").
		Updates(&dto.list)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pickListId", aggregate.ID().String())
	}

	for i := range dto.items {
		item := dto.items[i]
		if err := db.Model(&ItemDTO{}).Where("id = ?", item.ID).
			Select("picked", "status", "sequence").
			Updates(&item).Error; err != nil {
			return err
		}
	}

	if err := r.saveLog(db, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPickListRepository) saveLog(db *gorm.DB, dto rows) error {
	if len(dto.exceptions) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "resolved_by", "resolution", "resolved_at"}),
		}).Create(&dto.exceptions).Error
		if err != nil {
			return err
		}
	}
	if len(dto.confirmations) > 0 {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.confirmations).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *GormPickListRepository) Get(ctx context.Context, id kernel.UUID) (*picking.PickList, error) {
	return r.load(r.db.WithContext(ctx), id)
}

func (r *GormPickListRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*picking.PickList, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormPickListRepository) load(db *gorm.DB, id kernel.UUID) (*picking.PickList, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto rows
	if err := db.First(&dto.list, "id = ?", id.Bytes()).Error; err != nil {
		if pgmap.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("pickListId", id.String())
		}
		return nil, err
	}

	// Child reads must not inherit the row lock clause.
	children := db.Session(&gorm.Session{NewDB: true})
	if err := children.Where("pick_list_id = ?", id.Bytes()).Order("sequence").Find(&dto.items).Error; err != nil {
		return nil, err
	}
	if err := children.Where("pick_list_id = ?", id.Bytes()).Order("position").Find(&dto.confirmations).Error; err != nil {
		return nil, err
	}
	if err := children.Where("pick_list_id = ?", id.Bytes()).Order("reported_at, id").Find(&dto.exceptions).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}
