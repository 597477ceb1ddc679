package inventory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var _ ports.InventoryService = (*Memory)(nil)

type memoryRecord struct {
	mu         sync.Mutex
	record     ports.InventoryRecord
	onHand     kernel.Quantity
	reserved   kernel.Quantity
	receivedAt time.Time
	expiresOn  *time.Time
}

// Memory is an in-process inventory with the same ordering and
// reserve-or-fail semantics as Ledger. mu guards the map only; quantities
// are guarded by the mutex of their record.
type Memory struct {
	mu      sync.RWMutex
	records map[kernel.UUID]*memoryRecord
}

func NewMemory() *Memory {
	return &Memory{records: make(map[kernel.UUID]*memoryRecord)}
}

// Receive books record.Available as on-hand stock. Receiving an existing id
// adds to it.
func (m *Memory) Receive(_ context.Context, record ports.InventoryRecord, receivedAt time.Time, expiresOn *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.records[record.ID]; ok {
		existing.mu.Lock()
		existing.onHand = existing.onHand.Add(record.Available)
		existing.mu.Unlock()
		return nil
	}
	m.records[record.ID] = &memoryRecord{
		record:     record,
		onHand:     record.Available,
		reserved:   kernel.ZeroQuantity(),
		receivedAt: receivedAt,
		expiresOn:  expiresOn,
	}
	return nil
}

func (m *Memory) EligibleRecords(_ context.Context, productID, warehouseID kernel.UUID) ([]ports.InventoryRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type candidate struct {
		entry     *memoryRecord
		available kernel.Quantity
	}

	eligible := make([]candidate, 0)
	for _, r := range m.records {
		if !r.record.ProductID.IsEqual(productID) || !r.record.WarehouseID.IsEqual(warehouseID) {
			continue
		}
		r.mu.Lock()
		available := r.available()
		r.mu.Unlock()
		if !available.IsPositive() {
			continue
		}
		eligible = append(eligible, candidate{entry: r, available: available})
	}
	slices.SortFunc(eligible, func(a, b candidate) int {
		return compareRotation(a.entry, b.entry)
	})

	out := make([]ports.InventoryRecord, 0, len(eligible))
	for _, c := range eligible {
		record := c.entry.record
		record.Available = c.available
		out = append(out, record)
	}
	return out, nil
}

func (m *Memory) Reserve(_ context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	return m.withRecord(recordID, func(r *memoryRecord) error {
		if r.available().LessThan(quantity) {
			return fmt.Errorf("%w: record %s cannot cover %s", allocation.ErrInsufficientInventory, recordID, quantity)
		}
		r.reserved = r.reserved.Add(quantity)
		return nil
	})
}

// Release never drives reserved below zero.
func (m *Memory) Release(_ context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	return m.withRecord(recordID, func(r *memoryRecord) error {
		r.reserved = r.reserved.Sub(quantity)
		return nil
	})
}

// Commit takes picked stock out of the record: on-hand and reserved both
// drop by quantity. It fails when less than quantity is reserved.
func (m *Memory) Commit(_ context.Context, recordID kernel.UUID, quantity kernel.Quantity) error {
	return m.withRecord(recordID, func(r *memoryRecord) error {
		if r.reserved.LessThan(quantity) {
			return fmt.Errorf("%w: record %s has %s reserved, cannot commit %s",
				allocation.ErrInsufficientInventory, recordID, r.reserved, quantity)
		}
		r.reserved = r.reserved.Sub(quantity)
		r.onHand = r.onHand.Sub(quantity)
		return nil
	})
}

func (m *Memory) Reserved(_ context.Context, recordID kernel.UUID) (kernel.Quantity, error) {
	var reserved kernel.Quantity
	err := m.withRecord(recordID, func(r *memoryRecord) error {
		reserved = r.reserved
		return nil
	})
	return reserved, err
}

// OnHand reports the physical stock of a record.
func (m *Memory) OnHand(_ context.Context, recordID kernel.UUID) (kernel.Quantity, error) {
	var onHand kernel.Quantity
	err := m.withRecord(recordID, func(r *memoryRecord) error {
		onHand = r.onHand
		return nil
	})
	return onHand, err
}

// withRecord runs fn with the record's mutex held. Calls on different records
// do not wait for each other.
func (m *Memory) withRecord(recordID kernel.UUID, fn func(r *memoryRecord) error) error {
	m.mu.RLock()
	r, ok := m.records[recordID]
	m.mu.RUnlock()
	if !ok {
		return errs.NewObjectNotFoundError("inventoryRecordId", recordID.String())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r)
}

func (r *memoryRecord) available() kernel.Quantity {
	return r.onHand.Sub(r.reserved)
}

func compareRotation(a, b *memoryRecord) int {
	switch {
	case a.expiresOn != nil && b.expiresOn == nil:
		return -1
	case a.expiresOn == nil && b.expiresOn != nil:
		return 1
	case a.expiresOn != nil && !a.expiresOn.Equal(*b.expiresOn):
		return a.expiresOn.Compare(*b.expiresOn)
	}
	if c := a.receivedAt.Compare(b.receivedAt); c != 0 {
		return c
	}
	return compareIDs(a.record.ID, b.record.ID)
}

func compareIDs(a, b kernel.UUID) int {
	ab, bb := a.Bytes(), b.Bytes()
	return slices.Compare(ab[:], bb[:])
}
