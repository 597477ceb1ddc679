// Package inventory holds the adapters of the inventory collaborator: a
// PostgreSQL ledger reached through pgx and an in-memory store for local runs
// and tests.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const collaborator = "inventory"

var _ ports.InventoryService = (*Ledger)(nil)

// Ledger reserves against the inventory_records table. Every call runs under
// its own timeout; a missed deadline or a lost connection is reported as
// errs.RetryableError.
type Ledger struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewLedger(pool *pgxpool.Pool, timeout time.Duration) *Ledger {
	return &Ledger{pool: pool, timeout: timeout}
}

// EligibleRecords orders by expiry first (FEFO), then by receipt (FIFO).
// Records without an expiry date come after dated ones.
func (l *Ledger) EligibleRecords(ctx context.Context, productID, warehouseID kernel.UUID) ([]ports.InventoryRecord, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	rows, err := l.pool.Query(ctx, `
		SELECT id, location_zone, location_aisle, location_position, lot, serial,
		       (on_hand - reserved)::text
		FROM inventory_records
		WHERE product_id = $1 AND warehouse_id = $2 AND on_hand - reserved > 0
		ORDER BY expires_on NULLS LAST, received_at, id
	`, productID.Bytes(), warehouseID.Bytes())
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	records := make([]ports.InventoryRecord, 0)
	for rows.Next() {
		var (
			id              pgtype.UUID
			zone, lot, sn   string
			aisle, position int
			available       string
		)
		if err = rows.Scan(&id, &zone, &aisle, &position, &lot, &sn, &available); err != nil {
			return nil, classify(err)
		}

		record, err := toRecord(id, productID, warehouseID, zone, aisle, position, lot, sn, available)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, classify(err)
	}
	return records, nil
}

// Reserve is a single conditional update, so two callers racing for the last
// units cannot both succeed.
func (l *Ledger) Reserve(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	tag, err := l.pool.Exec(ctx, `
		UPDATE inventory_records
		SET reserved = reserved + $2::numeric
		WHERE id = $1 AND on_hand - reserved >= $2::numeric
	`, recordID.Bytes(), quantity.String())
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: record %s cannot cover %s", allocation.ErrInsufficientInventory, recordID, quantity)
	}
	return nil
}

// Release never drives reserved below zero.
func (l *Ledger) Release(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	tag, err := l.pool.Exec(ctx, `
		UPDATE inventory_records
		SET reserved = GREATEST(reserved - $2::numeric, 0)
		WHERE id = $1
	`, recordID.Bytes(), quantity.String())
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return errs.NewObjectNotFoundError("inventoryRecordId", recordID.String())
	}
	return nil
}

// Commit removes picked stock from the record. Both on_hand and reserved drop
// by quantity; a record with less than quantity reserved is left untouched.
func (l *Ledger) Commit(ctx context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	tag, err := l.pool.Exec(ctx, `
		UPDATE inventory_records
		SET on_hand = on_hand - $2::numeric, reserved = reserved - $2::numeric
		WHERE id = $1 AND reserved >= $2::numeric
	`, recordID.Bytes(), quantity.String())
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		if _, err = l.Reserved(ctx, recordID); err != nil {
			return err
		}
		return fmt.Errorf("%w: record %s cannot commit %s", allocation.ErrInsufficientInventory, recordID, quantity)
	}
	return nil
}

// OnHand reports the physical stock of a record.
func (l *Ledger) OnHand(ctx context.Context, recordID kernel.UUID) (kernel.Quantity, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	var onHand string
	err := l.pool.QueryRow(ctx, `SELECT on_hand::text FROM inventory_records WHERE id = $1`, recordID.Bytes()).
		Scan(&onHand)
	if errors.Is(err, pgx.ErrNoRows) {
		return kernel.Quantity{}, errs.NewObjectNotFoundError("inventoryRecordId", recordID.String())
	}
	if err != nil {
		return kernel.Quantity{}, classify(err)
	}
	return parseQuantity(onHand)
}

// Receive books new stock. The orchestrator never calls it; it exists for
// seeding local environments and tests.
func (l *Ledger) Receive(ctx context.Context, record ports.InventoryRecord, receivedAt time.Time, expiresOn *time.Time) error {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	_, err := l.pool.Exec(ctx, `
		INSERT INTO inventory_records
			(id, product_id, warehouse_id, location_zone, location_aisle, location_position,
			 lot, serial, on_hand, reserved, received_at, expires_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, 0, $10, $11)
		ON CONFLICT (id) DO UPDATE SET on_hand = inventory_records.on_hand + EXCLUDED.on_hand
	`,
		record.ID.Bytes(), record.ProductID.Bytes(), record.WarehouseID.Bytes(),
		record.Location.Zone(), record.Location.Aisle(), record.Location.Position(),
		record.Lot, record.Serial, record.Available.String(), receivedAt, expiresOn,
	)
	return classify(err)
}

// Reserved reports the reserved quantity of a record.
func (l *Ledger) Reserved(ctx context.Context, recordID kernel.UUID) (kernel.Quantity, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	var reserved string
	err := l.pool.QueryRow(ctx, `SELECT reserved::text FROM inventory_records WHERE id = $1`, recordID.Bytes()).
		Scan(&reserved)
	if errors.Is(err, pgx.ErrNoRows) {
		return kernel.Quantity{}, errs.NewObjectNotFoundError("inventoryRecordId", recordID.String())
	}
	if err != nil {
		return kernel.Quantity{}, classify(err)
	}
	return parseQuantity(reserved)
}

func (l *Ledger) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, l.timeout)
}

// classify keeps server-side rejections as they are and marks everything
// else (deadlines, dial and I/O failures) as retryable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return err
	}
	return errs.NewRetryableError(collaborator, err)
}

func toRecord(
	id pgtype.UUID,
	productID, warehouseID kernel.UUID,
	zone string,
	aisle, position int,
	lot, serial, available string,
) (ports.InventoryRecord, error) {
	recordID, err := kernel.UUIDFromBytes(id.Bytes[:])
	if err != nil {
		return ports.InventoryRecord{}, err
	}
	location, err := kernel.NewBinLocation(zone, aisle, position)
	if err != nil {
		return ports.InventoryRecord{}, err
	}
	quantity, err := parseQuantity(available)
	if err != nil {
		return ports.InventoryRecord{}, err
	}
	return ports.InventoryRecord{
		ID:          recordID,
		ProductID:   productID,
		WarehouseID: warehouseID,
		Location:    location,
		Lot:         lot,
		Serial:      serial,
		Available:   quantity,
	}, nil
}

func parseQuantity(s string) (kernel.Quantity, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return kernel.Quantity{}, err
	}
	return kernel.NewQuantity(d)
}
