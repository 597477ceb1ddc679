package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

type PackCartonCommandHandler struct {
	uowFactory PackingUoWFactory
	selector   services.CartonSelector
	audit      ports.AuditService
	clock      kernel.Clock
}

func NewPackCartonCommandHandler(
	uowFactory PackingUoWFactory,
	selector services.CartonSelector,
	audit ports.AuditService,
	clock kernel.Clock,
) PackCartonCommandHandler {
	return PackCartonCommandHandler{uowFactory: uowFactory, selector: selector, audit: audit, clock: clock}
}

// Handle stores the carton. packing.ErrNoCartonFits is returned when the
// catalog has no suitable type.
func (h *PackCartonCommandHandler) Handle(ctx context.Context, cmd PackCartonCommand) (*packing.PackedCarton, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartonType, err := h.cartonType(ctx, uow, cmd)
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	carton, err := packing.NewPackedCarton(
		kernel.NewUUID(),
		cmd.OrderID(),
		cartonType,
		cmd.Items(),
		cmd.ExpectedWeight(),
		cmd.ActualWeight(),
		cmd.ActualDimensions(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.CartonRepository().Add(ctx, carton); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.audit, "carton.pack", cmd.PackerID(), "carton", carton.ID().String(),
		map[string]any{"orderId": cmd.OrderID().String(), "cartonType": cartonType.Code()}, now)
	return carton, nil
}

func (h *PackCartonCommandHandler) cartonType(ctx context.Context, uow PackingUoW, cmd PackCartonCommand) (packing.CartonType, error) {
	types := uow.CartonTypeRepository()
	if !cmd.CartonTypeID().IsZero() {
		return types.Get(ctx, cmd.CartonTypeID())
	}

	catalog, err := types.GetActive(ctx)
	if err != nil {
		return packing.CartonType{}, err
	}
	return h.selector.Select(cmd.ItemDimensions(), cmd.ExpectedWeight(), catalog)
}
