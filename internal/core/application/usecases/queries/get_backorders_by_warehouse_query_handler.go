package queries

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetBackordersByWarehouseQueryHandler struct {
	db *gorm.DB
}

func NewGetBackordersByWarehouseQueryHandler(db *gorm.DB) GetBackordersByWarehouseQueryHandler {
	return GetBackordersByWarehouseQueryHandler{db: db}
}

func (h GetBackordersByWarehouseQueryHandler) Handle(
	ctx context.Context,
	query GetBackordersByWarehouseQuery,
) ([]GetBackordersByWarehouseQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := []int{
		int(allocation.Pending),
		int(allocation.PartiallyFulfilled),
		int(allocation.Fulfilled),
		int(allocation.BackOrderCancelled),
	}
	if query.OpenOnly() {
		statuses = statuses[:2]
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			order_line_id,
			product_id,
			backordered,
			fulfilled,
			status,
			auto_fulfill,
			expected_fulfillment_date,
			created_at
		FROM backorders
		WHERE warehouse_id = ? AND status IN ?
		ORDER BY created_at, id
	`, query.WarehouseID().Bytes(), statuses).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	backorders := make([]GetBackordersByWarehouseQueryResponse, 0)
	for rows.Next() {
		var (
			id, orderID, lineID, productID uuid.UUID
			backordered, fulfilled         decimal.Decimal
			status                         int
			autoFulfill                    bool
			expected                       *time.Time
			createdAt                      time.Time
		)
		if err = rows.Scan(&id, &orderID, &lineID, &productID, &backordered, &fulfilled,
			&status, &autoFulfill, &expected, &createdAt); err != nil {
			return nil, err
		}

		boID, idErr := kernel.UUIDFromBytes(id[:])
		boOrderID, orderErr := kernel.UUIDFromBytes(orderID[:])
		boLineID, lineErr := kernel.UUIDFromBytes(lineID[:])
		boProductID, productErr := kernel.UUIDFromBytes(productID[:])
		if err = errors.Join(idErr, orderErr, lineErr, productErr); err != nil {
			return nil, err
		}

		backorders = append(backorders, GetBackordersByWarehouseQueryResponse{
			ID:                      boID,
			OrderID:                 boOrderID,
			OrderLineID:             boLineID,
			ProductID:               boProductID,
			Backordered:             backordered,
			Fulfilled:               fulfilled,
			Remaining:               backordered.Sub(fulfilled),
			Status:                  allocation.BackOrderStatus(status).String(),
			AutoFulfill:             autoFulfill,
			ExpectedFulfillmentDate: expected,
			CreatedAt:               createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backorders, nil
}
