package inventory_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/inventory"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var received = time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)

func record(productID, warehouseID kernel.UUID, lot, available string) ports.InventoryRecord {
	return ports.InventoryRecord{
		ID:          kernel.NewUUID(),
		ProductID:   productID,
		WarehouseID: warehouseID,
		Location:    kernel.MustBinLocation("A", 1, 1),
		Lot:         lot,
		Available:   kernel.MustQuantity(available),
	}
}

func TestMemory_EligibleRecords_ExpiryThenReceipt(t *testing.T) {
	ctx := t.Context()
	store := inventory.NewMemory()
	productID, warehouseID := kernel.NewUUID(), kernel.NewUUID()

	undated := record(productID, warehouseID, "undated", "5")
	late := record(productID, warehouseID, "late", "5")
	early := record(productID, warehouseID, "early", "5")
	older := record(productID, warehouseID, "older-undated", "5")
	other := record(kernel.NewUUID(), warehouseID, "other", "5")

	lateExpiry := received.AddDate(0, 6, 0)
	earlyExpiry := received.AddDate(0, 1, 0)
	require.NoError(t, store.Receive(ctx, undated, received, nil))
	require.NoError(t, store.Receive(ctx, late, received, &lateExpiry))
	require.NoError(t, store.Receive(ctx, early, received.Add(time.Hour), &earlyExpiry))
	require.NoError(t, store.Receive(ctx, older, received.Add(-time.Hour), nil))
	require.NoError(t, store.Receive(ctx, other, received, nil))

	records, err := store.EligibleRecords(ctx, productID, warehouseID)
	require.NoError(t, err)

	lots := make([]string, 0, len(records))
	for _, r := range records {
		lots = append(lots, r.Lot)
	}
	assert.Equal(t, []string{"early", "late", "older-undated", "undated"}, lots)
}

func TestMemory_ReserveOrFail(t *testing.T) {
	ctx := t.Context()
	store := inventory.NewMemory()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "10")
	require.NoError(t, store.Receive(ctx, r, received, nil))

	require.NoError(t, store.Reserve(ctx, r.ID, kernel.MustQuantity("7")))
	err := store.Reserve(ctx, r.ID, kernel.MustQuantity("4"))
	require.ErrorIs(t, err, allocation.ErrInsufficientInventory)

	reserved, err := store.Reserved(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "7", reserved.String())

	records, err := store.EligibleRecords(ctx, r.ProductID, r.WarehouseID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "3", records[0].Available.String())
}

func TestMemory_FullyReservedRecordIsNotEligible(t *testing.T) {
	ctx := t.Context()
	store := inventory.NewMemory()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "2")
	require.NoError(t, store.Receive(ctx, r, received, nil))
	require.NoError(t, store.Reserve(ctx, r.ID, kernel.MustQuantity("2")))

	records, err := store.EligibleRecords(ctx, r.ProductID, r.WarehouseID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestMemory_ReleaseSaturatesAtZero(t *testing.T) {
	ctx := t.Context()
	store := inventory.NewMemory()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "10")
	require.NoError(t, store.Receive(ctx, r, received, nil))
	require.NoError(t, store.Reserve(ctx, r.ID, kernel.MustQuantity("3")))

	require.NoError(t, store.Release(ctx, r.ID, kernel.MustQuantity("5")))
	reserved, err := store.Reserved(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, reserved.IsZero())

	err = store.Release(ctx, kernel.NewUUID(), kernel.MustQuantity("1"))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemory_ConcurrentReservesNeverOversell(t *testing.T) {
	ctx := t.Context()
	store := inventory.NewMemory()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "10")
	require.NoError(t, store.Receive(ctx, r, received, nil))

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Reserve(ctx, r.ID, kernel.MustQuantity("1")) == nil {
				succeeded.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(10), succeeded.Load())
	reserved, err := store.Reserved(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", reserved.String())
}

func TestMemory_CommitWithdrawsPickedStock(t *testing.T) {
	ctx := t.Context()
	store := inventory.NewMemory()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "10")
	require.NoError(t, store.Receive(ctx, r, received, nil))
	require.NoError(t, store.Reserve(ctx, r.ID, kernel.MustQuantity("4")))

	require.NoError(t, store.Commit(ctx, r.ID, kernel.MustQuantity("3")))

	reserved, err := store.Reserved(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", reserved.String())
	onHand, err := store.OnHand(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "7", onHand.String())

	records, err := store.EligibleRecords(ctx, r.ProductID, r.WarehouseID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "6", records[0].Available.String())
}

func TestMemory_CommitMoreThanReserved(t *testing.T) {
	ctx := t.Context()
	store := inventory.NewMemory()
	r := record(kernel.NewUUID(), kernel.NewUUID(), "L1", "10")
	require.NoError(t, store.Receive(ctx, r, received, nil))
	require.NoError(t, store.Reserve(ctx, r.ID, kernel.MustQuantity("2")))

	err := store.Commit(ctx, r.ID, kernel.MustQuantity("3"))
	require.ErrorIs(t, err, allocation.ErrInsufficientInventory)

	onHand, err := store.OnHand(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "10", onHand.String())

	err = store.Commit(ctx, kernel.NewUUID(), kernel.MustQuantity("1"))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemory_RecordsDoNotShareALock(t *testing.T) {
	ctx := t.Context()
	store := inventory.NewMemory()
	productID, warehouseID := kernel.NewUUID(), kernel.NewUUID()
	first := record(productID, warehouseID, "L1", "50")
	second := record(productID, warehouseID, "L2", "50")
	require.NoError(t, store.Receive(ctx, first, received, nil))
	require.NoError(t, store.Receive(ctx, second, received.Add(time.Minute), nil))

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Reserve(ctx, first.ID, kernel.MustQuantity("1")))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Reserve(ctx, second.ID, kernel.MustQuantity("1")))
			assert.NoError(t, store.Commit(ctx, second.ID, kernel.MustQuantity("1")))
		}()
	}
	wg.Wait()

	reserved, err := store.Reserved(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "50", reserved.String())
	onHand, err := store.OnHand(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, onHand.IsZero())

	records, err := store.EligibleRecords(ctx, productID, warehouseID)
	require.NoError(t, err)
	assert.Empty(t, records)
}
