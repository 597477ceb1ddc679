package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/loading"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetLoadUtilizationQueryHandler struct {
	db *gorm.DB
}

func NewGetLoadUtilizationQueryHandler(db *gorm.DB) GetLoadUtilizationQueryHandler {
	return GetLoadUtilizationQueryHandler{db: db}
}

func (h GetLoadUtilizationQueryHandler) Handle(
	ctx context.Context,
	query GetLoadUtilizationQuery,
) (GetLoadUtilizationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLoadUtilizationQueryResponse{}, err
	}

	var row struct {
		VehicleID      string
		Status         int
		CapacityWeight decimal.Decimal
		CapacityVolume decimal.Decimal
		TotalWeight    decimal.Decimal
		TotalVolume    decimal.Decimal
		ShipmentCount  int
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			p.vehicle_id,
			p.status,
			p.capacity_weight,
			p.capacity_volume,
			COALESCE(SUM(s.weight), 0) AS total_weight,
			COALESCE(SUM(s.volume), 0) AS total_volume,
			COUNT(s.shipment_id)       AS shipment_count
		FROM load_plans p
		LEFT JOIN load_plan_shipments s ON s.load_plan_id = p.id
		WHERE p.id = ?
		GROUP BY p.id
	`, query.LoadPlanID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetLoadUtilizationQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetLoadUtilizationQueryResponse{}, errs.NewObjectNotFoundError("loadPlanId", query.LoadPlanID().String())
	}

	return GetLoadUtilizationQueryResponse{
		LoadPlanID:        query.LoadPlanID(),
		VehicleID:         row.VehicleID,
		Status:            loading.LoadPlanStatus(row.Status).String(),
		ShipmentCount:     row.ShipmentCount,
		TotalWeight:       row.TotalWeight,
		TotalVolume:       row.TotalVolume,
		CapacityWeight:    row.CapacityWeight,
		CapacityVolume:    row.CapacityVolume,
		WeightUtilization: kernel.Percent(row.TotalWeight, row.CapacityWeight),
		VolumeUtilization: kernel.Percent(row.TotalVolume, row.CapacityVolume),
		IsOverweight:      row.TotalWeight.GreaterThan(row.CapacityWeight),
		IsOverVolume:      row.TotalVolume.GreaterThan(row.CapacityVolume),
	}, nil
}
