package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/picking"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetPickProgressQueryHandler struct {
	db *gorm.DB
}

func NewGetPickProgressQueryHandler(db *gorm.DB) GetPickProgressQueryHandler {
	return GetPickProgressQueryHandler{db: db}
}

func (h GetPickProgressQueryHandler) Handle(ctx context.Context, query GetPickProgressQuery) (GetPickProgressQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPickProgressQueryResponse{}, err
	}

	var row struct {
		Status         int
		TotalPicks     int
		CompletedPicks int
		ShortPicks     int
		OpenExceptions int
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			l.status,
			(SELECT COUNT(*) FROM pick_list_items i WHERE i.pick_list_id = l.id) AS total_picks,
			(SELECT COUNT(*) FROM pick_list_items i
				WHERE i.pick_list_id = l.id AND i.status IN (?, ?)) AS completed_picks,
			(SELECT COUNT(*) FROM pick_list_items i
				WHERE i.pick_list_id = l.id AND i.status = ?) AS short_picks,
			(SELECT COUNT(*) FROM pick_exceptions e
				WHERE e.pick_list_id = l.id AND e.status IN (?, ?)) AS open_exceptions
		FROM pick_lists l
		WHERE l.id = ?
	`,
		int(picking.ItemPicked), int(picking.ItemShortPicked),
		int(picking.ItemShortPicked),
		int(picking.ExceptionOpen), int(picking.ExceptionInvestigating),
		query.PickListID().Bytes(),
	).Scan(&row)
	if result.Error != nil {
		return GetPickProgressQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetPickProgressQueryResponse{}, errs.NewObjectNotFoundError("pickListId", query.PickListID().String())
	}

	return GetPickProgressQueryResponse{
		PickListID:     query.PickListID(),
		Status:         picking.ListStatus(row.Status).String(),
		TotalPicks:     row.TotalPicks,
		CompletedPicks: row.CompletedPicks,
		ShortPicks:     row.ShortPicks,
		OpenExceptions: row.OpenExceptions,
		ProgressPercentage: kernel.Percent(
			decimal.NewFromInt(int64(row.CompletedPicks)),
			decimal.NewFromInt(int64(row.TotalPicks)),
		),
	}, nil
}
