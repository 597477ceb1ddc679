package http

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/metrics"
)

// UseCase is a command or query handler that returns a result.
type UseCase[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Action is a command handler that only reports success.
type Action[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	// Priority
	ScoreOrder            UseCase[commands.ScoreOrderCommand, commands.ScoreOrderResult]
	OverridePriority      Action[commands.OverridePriorityCommand]
	ClearPriorityOverride Action[commands.ClearPriorityOverrideCommand]

	// Allocation
	AllocateOrderLine UseCase[commands.AllocateOrderLineCommand, services.AllocationResult]
	ReleaseExpired    UseCase[commands.ReleaseExpiredAllocationsCommand, []kernel.UUID]
	CancelAllocation  UseCase[commands.CancelAllocationCommand, kernel.Quantity]
	RenewAllocation   UseCase[commands.RenewAllocationCommand, time.Time]
	FulfillBackorders UseCase[commands.FulfillBackordersCommand, []commands.BackOrderFulfillment]
	CancelBackOrder   Action[commands.CancelBackOrderCommand]
	GetBackorders     UseCase[queries.GetBackordersByWarehouseQuery, []queries.GetBackordersByWarehouseQueryResponse]

	// Picking
	CreatePickList           UseCase[commands.CreatePickListCommand, *picking.PickList]
	ConfirmPick              UseCase[commands.ConfirmPickCommand, picking.PickOutcome]
	ReportPickException      UseCase[commands.ReportPickExceptionCommand, *picking.Exception]
	InvestigatePickException Action[commands.InvestigatePickExceptionCommand]
	ResolvePickException     Action[commands.ResolvePickExceptionCommand]
	GetPickProgress          UseCase[queries.GetPickProgressQuery, queries.GetPickProgressQueryResponse]

	// Packing
	PackCarton                 UseCase[commands.PackCartonCommand, *packing.PackedCarton]
	ValidateCarton             UseCase[commands.ValidateCartonCommand, packing.ValidationResult]
	OverrideCartonVerification Action[commands.OverrideCartonVerificationCommand]
	RecordQualityCheck         UseCase[commands.RecordQualityCheckCommand, packing.QualityCheck]
	RepackCarton               Action[commands.RepackCartonCommand]
	ShipCarton                 Action[commands.ShipCartonCommand]

	// Loading
	CreateLoadPlan           UseCase[commands.CreateLoadPlanCommand, *loading.LoadPlan]
	AssignShipment           UseCase[commands.AssignShipmentToLoadCommand, commands.AssignmentResult]
	RemoveShipment           Action[commands.RemoveShipmentFromLoadCommand]
	ChangeLoadPlanStatus     Action[commands.ChangeLoadPlanStatusCommand]
	PlanLoads                UseCase[commands.PlanLoadsCommand, services.PlanningResult]
	GetLoadUtilization       UseCase[queries.GetLoadUtilizationQuery, queries.GetLoadUtilizationQueryResponse]
	ScheduleDock             UseCase[commands.ScheduleDockCommand, commands.ScheduleResult]
	ChangeDockScheduleStatus Action[commands.ChangeDockScheduleStatusCommand]

	// Rating
	ShopRates     UseCase[commands.ShopRatesCommand, *rating.ShoppingResult]
	GetUsableRate UseCase[queries.GetUsableRateQuery, queries.GetUsableRateQueryResponse]
}

// Defaults fill request fields a caller may omit.
type Defaults struct {
	RenewTTL     time.Duration
	ReleaseBatch int
}

// Server implements the generated ServerInterface on top of the use cases.
type Server struct {
	handlers Handlers
	defaults Defaults
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, defaults Defaults, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		defaults: defaults,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
}
