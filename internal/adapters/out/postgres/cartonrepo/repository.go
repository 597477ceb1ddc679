package cartonrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCartonRepository implements ports.CartonRepository using GORM.
type GormCartonRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormCartonRepository(db *gorm.DB, tracker aggregateTracker) *GormCartonRepository {
	return &GormCartonRepository{db: db, tracker: tracker}
}

func (r *GormCartonRepository) Add(ctx context.Context, aggregate *packing.PackedCarton) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	// The catalog row already exists; only the carton is inserted.
	if err = r.db.WithContext(ctx).Omit("CartonType").Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCartonRepository) Update(ctx context.Context, aggregate *packing.PackedCarton) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&PackedCartonDTO{}).Where("id = ?", dto.ID).
		Select(
			"items", "expected_weight", "actual_weight", "actual_length", "actual_width", "actual_height",
			"status", "weight_check", "dimension_check", "quality_check", "override",
		).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartonId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCartonRepository) Get(ctx context.Context, id kernel.UUID) (*packing.PackedCarton, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PackedCartonDTO
	err := r.db.WithContext(ctx).Joins("CartonType").First(&dto, "packed_cartons.id = ?", id.Bytes()).Error
	if err != nil {
		if pgmap.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("cartonId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GormCartonTypeRepository implements ports.CartonTypeRepository using GORM.
type GormCartonTypeRepository struct {
	db *gorm.DB
}

func NewGormCartonTypeRepository(db *gorm.DB) *GormCartonTypeRepository {
	return &GormCartonTypeRepository{db: db}
}

// Add stores a catalog entry. The catalog is seeded out of band, so this is
// used by tooling and tests only.
func (r *GormCartonTypeRepository) Add(ctx context.Context, t packing.CartonType) error {
	dto := cartonTypeFromDomain(t)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormCartonTypeRepository) Get(ctx context.Context, id kernel.UUID) (packing.CartonType, error) {
	if err := id.Validate(); err != nil {
		return packing.CartonType{}, err
	}

	var dto CartonTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if pgmap.IsNotFound(err) {
			return packing.CartonType{}, errs.NewObjectNotFoundError("cartonTypeId", id.String())
		}
		return packing.CartonType{}, err
	}

	return cartonTypeToDomain(dto)
}

func (r *GormCartonTypeRepository) GetActive(ctx context.Context) ([]packing.CartonType, error) {
	var dtos []CartonTypeDTO
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	out := make([]packing.CartonType, 0, len(dtos))
	for _, dto := range dtos {
		t, err := cartonTypeToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
