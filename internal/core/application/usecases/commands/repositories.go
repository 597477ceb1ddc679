// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PriorityRepoFactory interface {
		PriorityRepository() ports.PriorityRepository
	}

	AllocationRepoFactory interface {
		AllocationRepository() ports.AllocationRepository
	}

	BackOrderRepoFactory interface {
		BackOrderRepository() ports.BackOrderRepository
	}

	PickListRepoFactory interface {
		PickListRepository() ports.PickListRepository
	}

	CartonRepoFactory interface {
		CartonRepository() ports.CartonRepository
	}

	CartonTypeRepoFactory interface {
		CartonTypeRepository() ports.CartonTypeRepository
	}

	LoadPlanRepoFactory interface {
		LoadPlanRepository() ports.LoadPlanRepository
	}

	DockScheduleRepoFactory interface {
		DockScheduleRepository() ports.DockScheduleRepository
	}

	ShoppingResultRepoFactory interface {
		ShoppingResultRepository() ports.ShoppingResultRepository
	}

	// PriorityUoW manages transactions of the priority engine.
	PriorityUoW interface {
		TxManager
		PriorityRepoFactory
	}

	PriorityUoWFactory interface {
		Create() PriorityUoW
	}

	// AllocationUoW manages transactions over allocations and backorders.
	AllocationUoW interface {
		TxManager
		AllocationRepoFactory
		BackOrderRepoFactory
	}

	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// PickingUoW manages transactions over pick lists. Picks update the
	// allocation they consume in the same transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   list, err := uow.PickListRepository().GetForUpdate(ctx, id)
	//   hold, err := uow.AllocationRepository().Get(ctx, outcome.AllocationID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PickingUoW interface {
		TxManager
		PickListRepoFactory
		AllocationRepoFactory
	}

	PickingUoWFactory interface {
		Create() PickingUoW
	}

	// PackingUoW manages transactions over packed cartons and the carton catalog.
	PackingUoW interface {
		TxManager
		CartonRepoFactory
		CartonTypeRepoFactory
	}

	PackingUoWFactory interface {
		Create() PackingUoW
	}

	// LoadingUoW manages transactions over load plans and dock schedules.
	LoadingUoW interface {
		TxManager
		LoadPlanRepoFactory
		DockScheduleRepoFactory
	}

	LoadingUoWFactory interface {
		Create() LoadingUoW
	}

	// RatingUoW manages transactions over rate-shopping results.
	RatingUoW interface {
		TxManager
		ShoppingResultRepoFactory
	}

	RatingUoWFactory interface {
		Create() RatingUoW
	}
)
