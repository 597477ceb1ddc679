package cmd

import (
	"log/slog"

	httpadapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/metrics"

	"gorm.io/gorm"
)

// Collaborators are the outbound adapters built by main.
type Collaborators struct {
	Inventory ports.InventoryService
	Carriers  ports.CarrierQuoteService
	RateCache ports.RateCache
	Audit     ports.AuditService
}

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	deps       Collaborators
	clock      kernel.Clock
	tolerances packing.Tolerances
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	deps Collaborators,
	m *metrics.Metrics,
	logger *slog.Logger,
) (CompositionRoot, error) {
	tolerances, err := cfg.Tolerances()
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		deps:       deps,
		clock:      kernel.SystemClock(),
		tolerances: tolerances,
		metrics:    m,
		logger:     logger,
	}, nil
}

// Priority

func (c *CompositionRoot) priorityUoW() commands.PriorityUoWFactory {
	return FuncPriorityUoWFactory(func() commands.PriorityUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateScoreOrderCommandHandler() *commands.ScoreOrderCommandHandler {
	h := commands.NewScoreOrderCommandHandler(c.priorityUoW(), services.NewPriorityScorer(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateOverridePriorityCommandHandler() *commands.OverridePriorityCommandHandler {
	h := commands.NewOverridePriorityCommandHandler(c.priorityUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateClearPriorityOverrideCommandHandler() *commands.ClearPriorityOverrideCommandHandler {
	h := commands.NewClearPriorityOverrideCommandHandler(c.priorityUoW(), c.deps.Audit, c.clock)
	return &h
}

// Allocation

func (c *CompositionRoot) allocationUoW() commands.AllocationUoWFactory {
	return FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAllocateOrderLineCommandHandler() *commands.AllocateOrderLineCommandHandler {
	h := commands.NewAllocateOrderLineCommandHandler(
		c.allocationUoW(), c.deps.Inventory, services.NewAllocator(), c.deps.Audit, c.clock, c.cfg.AllocationTTL,
	)
	return &h
}

func (c *CompositionRoot) CreateFulfillBackordersCommandHandler() *commands.FulfillBackordersCommandHandler {
	h := commands.NewFulfillBackordersCommandHandler(
		c.allocationUoW(), c.deps.Inventory, services.NewAllocator(), c.deps.Audit, c.clock, c.cfg.AllocationTTL,
	)
	return &h
}

func (c *CompositionRoot) CreateReleaseExpiredAllocationsCommandHandler() *commands.ReleaseExpiredAllocationsCommandHandler {
	h := commands.NewReleaseExpiredAllocationsCommandHandler(c.allocationUoW(), c.deps.Inventory, c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateCancelAllocationCommandHandler() *commands.CancelAllocationCommandHandler {
	h := commands.NewCancelAllocationCommandHandler(c.allocationUoW(), c.deps.Inventory, c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateRenewAllocationCommandHandler() *commands.RenewAllocationCommandHandler {
	h := commands.NewRenewAllocationCommandHandler(c.allocationUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateCancelBackOrderCommandHandler() *commands.CancelBackOrderCommandHandler {
	h := commands.NewCancelBackOrderCommandHandler(c.allocationUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetBackordersByWarehouseQueryHandler() queries.GetBackordersByWarehouseQueryHandler {
	return queries.NewGetBackordersByWarehouseQueryHandler(c.gormDB)
}

// Picking

func (c *CompositionRoot) pickingUoW() commands.PickingUoWFactory {
	return FuncPickingUoWFactory(func() commands.PickingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreatePickListCommandHandler() *commands.CreatePickListCommandHandler {
	h := commands.NewCreatePickListCommandHandler(c.pickingUoW(), services.NewPickSequencer(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateConfirmPickCommandHandler() *commands.ConfirmPickCommandHandler {
	h := commands.NewConfirmPickCommandHandler(c.pickingUoW(), c.deps.Inventory, c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateReportPickExceptionCommandHandler() *commands.ReportPickExceptionCommandHandler {
	h := commands.NewReportPickExceptionCommandHandler(c.pickingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateInvestigatePickExceptionCommandHandler() *commands.InvestigatePickExceptionCommandHandler {
	h := commands.NewInvestigatePickExceptionCommandHandler(c.pickingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateResolvePickExceptionCommandHandler() *commands.ResolvePickExceptionCommandHandler {
	h := commands.NewResolvePickExceptionCommandHandler(c.pickingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetPickProgressQueryHandler() queries.GetPickProgressQueryHandler {
	return queries.NewGetPickProgressQueryHandler(c.gormDB)
}

// Packing

func (c *CompositionRoot) packingUoW() commands.PackingUoWFactory {
	return FuncPackingUoWFactory(func() commands.PackingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreatePackCartonCommandHandler() *commands.PackCartonCommandHandler {
	h := commands.NewPackCartonCommandHandler(c.packingUoW(), services.NewCartonSelector(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateValidateCartonCommandHandler() *commands.ValidateCartonCommandHandler {
	h := commands.NewValidateCartonCommandHandler(c.packingUoW(), c.deps.Audit, c.clock, c.tolerances)
	return &h
}

func (c *CompositionRoot) CreateOverrideCartonVerificationCommandHandler() *commands.OverrideCartonVerificationCommandHandler {
	h := commands.NewOverrideCartonVerificationCommandHandler(c.packingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateRecordQualityCheckCommandHandler() *commands.RecordQualityCheckCommandHandler {
	h := commands.NewRecordQualityCheckCommandHandler(c.packingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateRepackCartonCommandHandler() *commands.RepackCartonCommandHandler {
	h := commands.NewRepackCartonCommandHandler(c.packingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateShipCartonCommandHandler() *commands.ShipCartonCommandHandler {
	h := commands.NewShipCartonCommandHandler(c.packingUoW(), c.deps.Audit, c.clock)
	return &h
}

// Loading

func (c *CompositionRoot) loadingUoW() commands.LoadingUoWFactory {
	return FuncLoadingUoWFactory(func() commands.LoadingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateLoadPlanCommandHandler() *commands.CreateLoadPlanCommandHandler {
	h := commands.NewCreateLoadPlanCommandHandler(c.loadingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateAssignShipmentToLoadCommandHandler() *commands.AssignShipmentToLoadCommandHandler {
	h := commands.NewAssignShipmentToLoadCommandHandler(c.loadingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateRemoveShipmentFromLoadCommandHandler() *commands.RemoveShipmentFromLoadCommandHandler {
	h := commands.NewRemoveShipmentFromLoadCommandHandler(c.loadingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateChangeLoadPlanStatusCommandHandler() *commands.ChangeLoadPlanStatusCommandHandler {
	h := commands.NewChangeLoadPlanStatusCommandHandler(c.loadingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreatePlanLoadsCommandHandler() *commands.PlanLoadsCommandHandler {
	h := commands.NewPlanLoadsCommandHandler(c.loadingUoW(), services.NewLoadPlanner(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateScheduleDockCommandHandler() *commands.ScheduleDockCommandHandler {
	h := commands.NewScheduleDockCommandHandler(c.loadingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateChangeDockScheduleStatusCommandHandler() *commands.ChangeDockScheduleStatusCommandHandler {
	h := commands.NewChangeDockScheduleStatusCommandHandler(c.loadingUoW(), c.deps.Audit, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetLoadUtilizationQueryHandler() queries.GetLoadUtilizationQueryHandler {
	return queries.NewGetLoadUtilizationQueryHandler(c.gormDB)
}

// Rating

func (c *CompositionRoot) CreateShopRatesCommandHandler() *commands.ShopRatesCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewShopRatesCommandHandler(
		f,
		c.deps.Carriers,
		services.NewRateSelector(),
		c.deps.RateCache,
		c.deps.Audit,
		c.clock,
		c.cfg.QuoteValidity,
		c.cfg.CarrierTimeout,
	)
	return &h
}

// CreateGetUsableRateQueryHandler reads stored results outside a transaction.
func (c *CompositionRoot) CreateGetUsableRateQueryHandler() queries.GetUsableRateQueryHandler {
	return queries.NewGetUsableRateQueryHandler(
		c.deps.RateCache,
		c.uowFactory.Create().ShoppingResultRepository(),
		c.clock,
	)
}

// HTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) HTTPServer() *httpadapter.Server {
	handlers := httpadapter.Handlers{
		ScoreOrder:            c.CreateScoreOrderCommandHandler(),
		OverridePriority:      c.CreateOverridePriorityCommandHandler(),
		ClearPriorityOverride: c.CreateClearPriorityOverrideCommandHandler(),

		AllocateOrderLine: c.CreateAllocateOrderLineCommandHandler(),
		ReleaseExpired:    c.CreateReleaseExpiredAllocationsCommandHandler(),
		CancelAllocation:  c.CreateCancelAllocationCommandHandler(),
		RenewAllocation:   c.CreateRenewAllocationCommandHandler(),
		FulfillBackorders: c.CreateFulfillBackordersCommandHandler(),
		CancelBackOrder:   c.CreateCancelBackOrderCommandHandler(),
		GetBackorders:     c.CreateGetBackordersByWarehouseQueryHandler(),

		CreatePickList:           c.CreateCreatePickListCommandHandler(),
		ConfirmPick:              c.CreateConfirmPickCommandHandler(),
		ReportPickException:      c.CreateReportPickExceptionCommandHandler(),
		InvestigatePickException: c.CreateInvestigatePickExceptionCommandHandler(),
		ResolvePickException:     c.CreateResolvePickExceptionCommandHandler(),
		GetPickProgress:          c.CreateGetPickProgressQueryHandler(),

		PackCarton:                 c.CreatePackCartonCommandHandler(),
		ValidateCarton:             c.CreateValidateCartonCommandHandler(),
		OverrideCartonVerification: c.CreateOverrideCartonVerificationCommandHandler(),
		RecordQualityCheck:         c.CreateRecordQualityCheckCommandHandler(),
		RepackCarton:               c.CreateRepackCartonCommandHandler(),
		ShipCarton:                 c.CreateShipCartonCommandHandler(),

		CreateLoadPlan:           c.CreateCreateLoadPlanCommandHandler(),
		AssignShipment:           c.CreateAssignShipmentToLoadCommandHandler(),
		RemoveShipment:           c.CreateRemoveShipmentFromLoadCommandHandler(),
		ChangeLoadPlanStatus:     c.CreateChangeLoadPlanStatusCommandHandler(),
		PlanLoads:                c.CreatePlanLoadsCommandHandler(),
		GetLoadUtilization:       c.CreateGetLoadUtilizationQueryHandler(),
		ScheduleDock:             c.CreateScheduleDockCommandHandler(),
		ChangeDockScheduleStatus: c.CreateChangeDockScheduleStatusCommandHandler(),

		ShopRates:     c.CreateShopRatesCommandHandler(),
		GetUsableRate: c.CreateGetUsableRateQueryHandler(),
	}
	defaults := httpadapter.Defaults{
		RenewTTL:     c.cfg.RenewTTL,
		ReleaseBatch: c.cfg.ReleaseBatch,
	}
	return httpadapter.NewServer(handlers, defaults, c.metrics, c.logger)
}

// Jobs builds the expiry and backorder sweeps.
func (c *CompositionRoot) Jobs() *jobs.JobManager {
	expired := jobs.NewExpiredAllocationsJob(
		c.CreateReleaseExpiredAllocationsCommandHandler(),
		c.cfg.ReleaseBatch,
		c.cfg.ExpirySweepSchedule,
		c.metrics,
		c.logger,
	)
	backorders := jobs.NewBackorderFulfillmentJob(
		c.CreateFulfillBackordersCommandHandler(),
		c.cfg.AllocationTTL,
		c.cfg.BackorderSchedule,
		c.metrics,
		c.logger,
	)
	return jobs.NewJobManager(expired, backorders)
}

type FuncPriorityUoWFactory func() commands.PriorityUoW

func (f FuncPriorityUoWFactory) Create() commands.PriorityUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncPickingUoWFactory func() commands.PickingUoW

func (f FuncPickingUoWFactory) Create() commands.PickingUoW {
	return f()
}

type FuncPackingUoWFactory func() commands.PackingUoW

func (f FuncPackingUoWFactory) Create() commands.PackingUoW {
	return f()
}

type FuncLoadingUoWFactory func() commands.LoadingUoW

func (f FuncLoadingUoWFactory) Create() commands.LoadingUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}
