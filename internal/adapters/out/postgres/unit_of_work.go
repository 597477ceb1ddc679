// Package postgres provides the GORM-based Unit of Work used by every command
// handler. A UnitOfWork hands out repositories bound to one transaction, so a
// handler that loads an allocation, a pick list and a backorder writes all of
// them or none.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	plan, err := uow.LoadPlanRepository().GetForUpdate(ctx, planID)
//	if err != nil {
//	    return err
//	}
//	// mutate plan
//	if err := uow.LoadPlanRepository().Update(ctx, plan); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit returns gorm.ErrInvalidTransaction, which
// the deferred call ignores.
//
// Repositories obtained before Begin use the plain connection pool and are
// meant for reads only. Row locks (GetForUpdate, FindOpenForUpdate) and the
// dock advisory lock only last as long as the transaction.
package postgres

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/allocationrepo"
	"fulfillment/internal/adapters/out/postgres/cartonrepo"
	"fulfillment/internal/adapters/out/postgres/loadplanrepo"
	"fulfillment/internal/adapters/out/postgres/picklistrepo"
	"fulfillment/internal/adapters/out/postgres/priorityrepo"
	"fulfillment/internal/adapters/out/postgres/ratingrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm returns the concrete type, for callers that need TrackedAggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) PriorityRepository() ports.PriorityRepository {
	return priorityrepo.NewGormPriorityRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) AllocationRepository() ports.AllocationRepository {
	return allocationrepo.NewGormAllocationRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) BackOrderRepository() ports.BackOrderRepository {
	return allocationrepo.NewGormBackOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PickListRepository() ports.PickListRepository {
	return picklistrepo.NewGormPickListRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CartonRepository() ports.CartonRepository {
	return cartonrepo.NewGormCartonRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CartonTypeRepository() ports.CartonTypeRepository {
	return cartonrepo.NewGormCartonTypeRepository(uow.conn())
}

func (uow *GormUnitOfWork) LoadPlanRepository() ports.LoadPlanRepository {
	return loadplanrepo.NewGormLoadPlanRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DockScheduleRepository() ports.DockScheduleRepository {
	return loadplanrepo.NewGormDockScheduleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ShoppingResultRepository() ports.ShoppingResultRepository {
	return ratingrepo.NewGormShoppingResultRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the ids of aggregates written through this unit
// of work since it was created or last rolled back.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.UUID {
	out := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		out = append(out, t.ID)
	}
	return out
}
