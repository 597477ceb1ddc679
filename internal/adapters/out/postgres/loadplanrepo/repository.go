package loadplanrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shipmentOnOnePlan is the unique index that keeps a shipment on one plan.
const shipmentOnOnePlan = "load_plan_shipments_shipment_key"

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormLoadPlanRepository implements ports.LoadPlanRepository using GORM.
type GormLoadPlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormLoadPlanRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadPlanRepository {
	return &GormLoadPlanRepository{db: db, tracker: tracker}
}

func (r *GormLoadPlanRepository) Add(ctx context.Context, aggregate *loading.LoadPlan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	plan, shipments := planFromDomain(aggregate)
	db := r.db.WithContext(ctx)
	if err := db.Create(&plan).Error; err != nil {
		return err
	}
	if len(shipments) > 0 {
		if err := db.Create(&shipments).Error; err != nil {
			return shipmentError(err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the status and replaces the shipment lines of the plan.
func (r *GormLoadPlanRepository) Update(ctx context.Context, aggregate *loading.LoadPlan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	plan, shipments := planFromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&LoadPlanDTO{}).Where("id = ?", plan.ID).Update("status", plan.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("loadPlanId", aggregate.ID().String())
	}

	if err := db.Where("load_plan_id = ?", plan.ID).Delete(&ShipmentDTO{}).Error; err != nil {
		return err
	}
	if len(shipments) > 0 {
		if err := db.Create(&shipments).Error; err != nil {
			return shipmentError(err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLoadPlanRepository) AssignedPlans(ctx context.Context, shipmentIDs []kernel.UUID) (map[kernel.UUID]kernel.UUID, error) {
	assigned := make(map[kernel.UUID]kernel.UUID, len(shipmentIDs))
	if len(shipmentIDs) == 0 {
		return assigned, nil
	}

	raw := make([]uuid.UUID, 0, len(shipmentIDs))
	for _, id := range shipmentIDs {
		raw = append(raw, id.Bytes())
	}

	var rows []ShipmentDTO
	if err := r.db.WithContext(ctx).
		Select("load_plan_id", "shipment_id").
		Where("shipment_id IN ?", raw).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		shipmentID, err := pgmap.ID(row.ShipmentID)
		if err != nil {
			return nil, err
		}
		planID, err := pgmap.ID(row.LoadPlanID)
		if err != nil {
			return nil, err
		}
		assigned[shipmentID] = planID
	}
	return assigned, nil
}

func (r *GormLoadPlanRepository) Get(ctx context.Context, id kernel.UUID) (*loading.LoadPlan, error) {
	return r.load(r.db.WithContext(ctx), id)
}

func (r *GormLoadPlanRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*loading.LoadPlan, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormLoadPlanRepository) FindOpenForUpdate(ctx context.Context, warehouseID kernel.UUID) ([]*loading.LoadPlan, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var plans []LoadPlanDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("warehouse_id = ? AND status IN ?", warehouseID.Bytes(), []int{int(loading.Planned), int(loading.Loading)}).
		Order("created_at, id").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}

	out := make([]*loading.LoadPlan, 0, len(plans))
	for _, plan := range plans {
		p, err := r.withShipments(r.db.WithContext(ctx), plan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// shipmentError turns a write that would put a shipment on a second plan into
// the domain rejection.
func shipmentError(err error) error {
	if pgmap.IsUniqueViolation(err, shipmentOnOnePlan) {
		return &loading.RejectionError{Reason: loading.AlreadyAssigned}
	}
	return err
}

func (r *GormLoadPlanRepository) load(db *gorm.DB, id kernel.UUID) (*loading.LoadPlan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var plan LoadPlanDTO
	if err := db.First(&plan, "id = ?", id.Bytes()).Error; err != nil {
		if pgmap.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("loadPlanId", id.String())
		}
		return nil, err
	}

	return r.withShipments(db.Session(&gorm.Session{NewDB: true}), plan)
}

func (r *GormLoadPlanRepository) withShipments(db *gorm.DB, plan LoadPlanDTO) (*loading.LoadPlan, error) {
	var shipments []ShipmentDTO
	if err := db.Where("load_plan_id = ?", plan.ID).Order("position").Find(&shipments).Error; err != nil {
		return nil, err
	}
	return planToDomain(plan, shipments)
}

// GormDockScheduleRepository implements ports.DockScheduleRepository using GORM.
type GormDockScheduleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormDockScheduleRepository(db *gorm.DB, tracker aggregateTracker) *GormDockScheduleRepository {
	return &GormDockScheduleRepository{db: db, tracker: tracker}
}

func (r *GormDockScheduleRepository) Add(ctx context.Context, aggregate *loading.DockSchedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := scheduleFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDockScheduleRepository) Update(ctx context.Context, aggregate *loading.DockSchedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := scheduleFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DockScheduleDTO{}).Where("id = ?", dto.ID).Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dockScheduleId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDockScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*loading.DockSchedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DockScheduleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if pgmap.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("dockScheduleId", id.String())
		}
		return nil, err
	}

	return scheduleToDomain(dto)
}

// LockDock takes a transaction-scoped advisory lock keyed by the dock id. It
// has no effect outside a transaction.
func (r *GormDockScheduleRepository) LockDock(ctx context.Context, dockID kernel.UUID) error {
	if err := dockID.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", dockID.String()).Error
}

func (r *GormDockScheduleRepository) FindActiveByDock(ctx context.Context, dockID kernel.UUID) ([]*loading.DockSchedule, error) {
	if err := dockID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DockScheduleDTO
	err := r.db.WithContext(ctx).
		Where("dock_id = ? AND status NOT IN ?", dockID.Bytes(), []int{int(loading.DockCancelled), int(loading.NoShow)}).
		Order("window_start, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	out := make([]*loading.DockSchedule, 0, len(dtos))
	for _, dto := range dtos {
		d, err := scheduleToDomain(dto)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
