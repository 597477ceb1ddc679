package http

import (
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/core/domain/model/rating"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Request side.

func toUUID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	out, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return out, nil
}

// toOptionalUUID maps an absent id to the zero UUID.
func toOptionalUUID(name string, id *openapi_types.UUID) (kernel.UUID, error) {
	if id == nil {
		return kernel.UUID{}, nil
	}
	return toUUID(name, *id)
}

func toUUIDs(name string, ids []openapi_types.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := toUUID(name, id)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func toQuantity(name string, d decimal.Decimal) (kernel.Quantity, error) {
	q, err := kernel.NewQuantity(d)
	if err != nil {
		return kernel.Quantity{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return q, nil
}

func toDimensions(d servers.DimensionsInput) (kernel.Dimensions, error) {
	return kernel.NewDimensions(d.Length, d.Width, d.Height)
}

func toPackedItems(items []servers.PackedItemInput) ([]packing.PackedItem, error) {
	out := make([]packing.PackedItem, 0, len(items))
	for _, item := range items {
		productID, err := toUUID("productId", item.ProductId)
		if err != nil {
			return nil, err
		}
		qty, err := toQuantity("quantity", item.Quantity)
		if err != nil {
			return nil, err
		}
		out = append(out, packing.PackedItem{ProductID: productID, Quantity: qty})
	}
	return out, nil
}

func toShipment(in servers.ShipmentInput) (loading.Shipment, error) {
	id, err := toUUID("shipment.id", in.Id)
	if err != nil {
		return loading.Shipment{}, err
	}
	orderID, err := toUUID("shipment.orderId", in.OrderId)
	if err != nil {
		return loading.Shipment{}, err
	}
	weight, err := toQuantity("shipment.weight", in.Weight)
	if err != nil {
		return loading.Shipment{}, err
	}
	volume, err := toQuantity("shipment.volume", in.Volume)
	if err != nil {
		return loading.Shipment{}, err
	}
	return loading.NewShipment(id, orderID, weight, volume)
}

func seconds(n *int) time.Duration {
	if n == nil {
		return 0
	}
	return time.Duration(*n) * time.Second
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Response side.

func fromUUIDs(ids []kernel.UUID) []openapi_types.UUID {
	out := make([]openapi_types.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Bytes())
	}
	return out
}

func fromAllocation(a *allocation.Allocation) servers.Allocation {
	line := a.Line()
	source := a.Source()
	return servers.Allocation{
		Id:                a.ID().Bytes(),
		OrderId:           line.OrderID.Bytes(),
		OrderLineId:       line.OrderLineID.Bytes(),
		ProductId:         line.ProductID.Bytes(),
		WarehouseId:       line.WarehouseID.Bytes(),
		InventoryRecordId: source.InventoryRecordID.Bytes(),
		Location:          source.Location.String(),
		Lot:               optional(source.Lot),
		Serial:            optional(source.Serial),
		AllocatedQuantity: a.AllocatedQuantity().String(),
		PickedQuantity:    a.PickedQuantity().String(),
		Status:            a.Status().String(),
		CreatedAt:         a.CreatedAt(),
		ExpiresAt:         a.ExpiresAt(),
	}
}

func fromBackOrder(b *allocation.BackOrder) servers.Backorder {
	line := b.Line()
	return servers.Backorder{
		Id:                      b.ID().Bytes(),
		OrderId:                 line.OrderID.Bytes(),
		OrderLineId:             line.OrderLineID.Bytes(),
		ProductId:               line.ProductID.Bytes(),
		Backordered:             b.BackorderedQuantity().String(),
		Fulfilled:               b.FulfilledQuantity().String(),
		Remaining:               b.Remaining().String(),
		Status:                  b.Status().String(),
		AutoFulfill:             b.AutoFulfill(),
		ExpectedFulfillmentDate: b.ExpectedFulfillmentDate(),
		CreatedAt:               b.CreatedAt(),
	}
}

func fromPickList(l *picking.PickList) servers.PickList {
	items := make([]servers.PickListItem, 0, len(l.Items()))
	for _, item := range l.Items() {
		items = append(items, servers.PickListItem{
			Id:             item.ID().Bytes(),
			AllocationId:   item.AllocationID().Bytes(),
			ProductId:      item.ProductID().Bytes(),
			Location:       item.Location().String(),
			QuantityToPick: item.QuantityToPick().String(),
			QuantityPicked: item.QuantityPicked().String(),
			Status:         item.Status().String(),
			Sequence:       item.Sequence(),
		})
	}

	out := servers.PickList{
		Id:                 l.ID().Bytes(),
		WarehouseId:        l.WarehouseID().Bytes(),
		PickerId:           l.PickerID(),
		Status:             l.Status().String(),
		CreatedAt:          l.CreatedAt(),
		StartedAt:          l.StartedAt(),
		CompletedAt:        l.CompletedAt(),
		Items:              items,
		ProgressPercentage: l.ProgressPercentage().String(),
	}
	if !l.WaveID().IsZero() {
		wave := l.WaveID().Bytes()
		out.WaveId = &wave
	}
	return out
}

func fromPickException(e *picking.Exception) servers.PickException {
	return servers.PickException{
		Id:               e.ID().Bytes(),
		ItemId:           e.ItemID().Bytes(),
		Type:             e.Type().String(),
		ExpectedQuantity: e.ExpectedQuantity().String(),
		ActualQuantity:   e.ActualQuantity().String(),
		Status:           e.Status().String(),
		ReportedBy:       e.ReportedBy(),
		ResolvedBy:       optional(e.ResolvedBy()),
		Resolution:       optional(e.Resolution()),
		ReportedAt:       e.ReportedAt(),
		ResolvedAt:       e.ResolvedAt(),
	}
}

func fromVerification(r packing.Result) servers.Verification {
	return servers.Verification{
		Status:        r.Status.String(),
		Variance:      r.Variance.String(),
		Tolerance:     r.Tolerance.String(),
		Difference:    r.Difference.String(),
		DifferencePct: r.DifferencePct.String(),
		InspectorId:   r.InspectorID,
		VerifiedAt:    r.VerifiedAt,
	}
}

func fromQualityCheck(q packing.QualityCheck) servers.QualityCheck {
	return servers.QualityCheck{
		PassRate:             q.PassRate().String(),
		MinPassRate:          q.MinPassRate().String(),
		HasCriticalFailures:  q.HasCriticalFailures(),
		RequiresRepack:       q.RequiresRepack(),
		RequiresReinspection: q.RequiresReinspection(),
		InspectorId:          q.InspectorID(),
		CheckedAt:            q.CheckedAt(),
	}
}

func fromDimensions(d kernel.Dimensions) servers.Dimensions {
	return servers.Dimensions{
		Length: d.Length().String(),
		Width:  d.Width().String(),
		Height: d.Height().String(),
	}
}

func fromCarton(c *packing.PackedCarton) servers.Carton {
	items := make([]servers.PackedItem, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, servers.PackedItem{
			ProductId: item.ProductID.Bytes(),
			Quantity:  item.Quantity.String(),
		})
	}

	out := servers.Carton{
		Id:               c.ID().Bytes(),
		OrderId:          c.OrderID().Bytes(),
		CartonTypeId:     c.CartonType().ID().Bytes(),
		CartonTypeCode:   c.CartonType().Code(),
		Status:           c.Status().String(),
		Items:            items,
		ExpectedWeight:   c.ExpectedWeight().String(),
		ActualWeight:     c.ActualWeight().String(),
		ActualDimensions: fromDimensions(c.ActualDimensions()),
		PackedAt:         c.PackedAt(),
	}
	if w := c.WeightVerification(); w != nil {
		v := fromVerification(w.Result)
		out.WeightVerification = &v
	}
	if d := c.DimensionVerification(); d != nil {
		v := fromVerification(d.Result)
		out.DimensionVerification = &v
	}
	if q := c.QualityCheck(); q != nil {
		qc := fromQualityCheck(*q)
		out.QualityCheck = &qc
	}
	if o := c.Override(); o != nil {
		out.Override = &servers.CartonOverride{InspectorId: o.InspectorID, Reason: o.Reason, At: o.At}
	}
	return out
}

func fromLoadPlan(p *loading.LoadPlan) servers.LoadPlan {
	shipments := make([]servers.Shipment, 0, len(p.Shipments()))
	for _, s := range p.Shipments() {
		shipments = append(shipments, servers.Shipment{
			Id:      s.ID().Bytes(),
			OrderId: s.OrderID().Bytes(),
			Weight:  s.Weight().String(),
			Volume:  s.Volume().String(),
		})
	}
	return servers.LoadPlan{
		Id:                p.ID().Bytes(),
		WarehouseId:       p.WarehouseID().Bytes(),
		VehicleId:         p.VehicleID(),
		Status:            p.Status().String(),
		CapacityWeight:    p.CapacityWeight().String(),
		CapacityVolume:    p.CapacityVolume().String(),
		TotalWeight:       p.TotalWeight().String(),
		TotalVolume:       p.TotalVolume().String(),
		WeightUtilization: p.WeightUtilization().String(),
		VolumeUtilization: p.VolumeUtilization().String(),
		Shipments:         shipments,
		CreatedAt:         p.CreatedAt(),
	}
}

func fromDockSchedule(d *loading.DockSchedule) servers.DockSchedule {
	return servers.DockSchedule{
		Id:          d.ID().Bytes(),
		DockId:      d.DockID().Bytes(),
		LoadPlanId:  d.LoadPlanID().Bytes(),
		Start:       d.Window().Start(),
		End:         d.Window().End(),
		Status:      d.Status().String(),
		ScheduledBy: d.ScheduledBy(),
		Notes:       optional(d.Notes()),
		CreatedAt:   d.CreatedAt(),
	}
}

func fromQuote(q rating.Quote) servers.Quote {
	return servers.Quote{
		Carrier:     q.Carrier,
		Service:     q.Service,
		Cost:        q.Cost.String(),
		TransitDays: q.TransitDays,
	}
}

func fromShoppingResult(r *rating.ShoppingResult) servers.ShoppingResult {
	quotes := make([]servers.Quote, 0, len(r.Quotes()))
	for _, q := range r.Quotes() {
		quotes = append(quotes, fromQuote(q))
	}
	return servers.ShoppingResult{
		Id:        r.ID().Bytes(),
		OrderId:   r.OrderID().Bytes(),
		Strategy:  r.Criteria().Strategy.String(),
		Selected:  fromQuote(r.Selected()),
		Quotes:    quotes,
		QuotedAt:  r.QuotedAt(),
		ExpiresAt: r.ExpiresAt(),
	}
}
