package picking

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPickListIsNotConstructed is returned when using a zero-value PickList.
var ErrPickListIsNotConstructed = errors.New("PickList must be created via NewPickList constructor")

// PickRequest is one pick attempt reported by a picker.
type PickRequest struct {
	ConfirmationID string
	ItemID         kernel.UUID
	Quantity       kernel.Quantity
	PickerID       string
	Method         Method
	Notes          string
}

// Validate checks the request fields that do not depend on list state.
func (r PickRequest) Validate() error {
	return errors.Join(
		requireActor("confirmationId", r.ConfirmationID),
		requireID("itemId", r.ItemID),
		requirePositive("quantity", r.Quantity),
		requireActor("pickerId", r.PickerID),
		r.Method.Validate(),
	)
}

// PickOutcome is what a pick did. Replayed is set when the confirmation id
// had already been processed and the stored outcome is returned.
type PickOutcome struct {
	ItemID        kernel.UUID
	AllocationID  kernel.UUID
	PickedQty     kernel.Quantity
	ItemStatus    ItemStatus
	Exception     *Exception
	Replayed      bool
	ListCompleted bool
}

// PickList is the unit of pick work for one picker or wave. It owns its items,
// the append-only confirmation log and the exceptions raised against items.
//
// The list is mutated by a single writer at a time: the repository locks the
// list row for the duration of the transaction that calls Pick.
type PickList struct {
	id            kernel.UUID
	warehouseID   kernel.UUID
	waveID        kernel.UUID
	pickerID      string
	status        ListStatus
	items         []*Item
	confirmations []Confirmation
	exceptions    []*Exception
	createdAt     time.Time
	startedAt     *time.Time
	completedAt   *time.Time
	guard         guard.ConstructorGuard
}

// NewPickList creates a pending list. items must already be in walk order;
// they are numbered 1..n in the given order. waveID may be zero.
func NewPickList(
	id kernel.UUID,
	warehouseID kernel.UUID,
	waveID kernel.UUID,
	pickerID string,
	items []*Item,
	createdAt time.Time,
) (*PickList, error) {
	l := &PickList{
		status:    ListPending,
		waveID:    waveID,
		pickerID:  strings.TrimSpace(pickerID),
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireID("pickListId", id),
		requireID("warehouseId", warehouseID),
		validateItems(items),
	); err != nil {
		return nil, err
	}

	l.id = id
	l.warehouseID = warehouseID
	l.items = make([]*Item, len(items))
	for n, item := range items {
		item.sequence = n + 1
		l.items[n] = item
	}

	return l, nil
}

// RestorePickList rebuilds a PickList from persistence. Items keep their
// stored sequence numbers and are ordered by them.
func RestorePickList(
	id kernel.UUID,
	warehouseID kernel.UUID,
	waveID kernel.UUID,
	pickerID string,
	status ListStatus,
	items []*Item,
	confirmations []Confirmation,
	exceptions []*Exception,
	createdAt time.Time,
	startedAt *time.Time,
	completedAt *time.Time,
) (*PickList, error) {
	if err := errors.Join(
		requireID("pickListId", id),
		requireID("warehouseId", warehouseID),
		validateItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &PickList{
		id:            id,
		warehouseID:   warehouseID,
		waveID:        waveID,
		pickerID:      pickerID,
		status:        status,
		items:         items,
		confirmations: confirmations,
		exceptions:    exceptions,
		createdAt:     createdAt,
		startedAt:     startedAt,
		completedAt:   completedAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func validateItems(items []*Item) error {
	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, dup := seen[item.allocationID]; dup {
			return errs.NewValueIsInvalidErrorWithCause("items are invalid", errors.New("allocation listed twice"))
		}
		seen[item.allocationID] = struct{}{}
	}
	return nil
}

func (l *PickList) Validate() error {
	if l == nil {
		return ErrPickListIsNotConstructed
	}
	return l.guard.Validate(ErrPickListIsNotConstructed)
}

func (l *PickList) ID() kernel.UUID { return l.id }
func (l *PickList) WarehouseID() kernel.UUID { return l.warehouseID }
func (l *PickList) WaveID() kernel.UUID { return l.waveID }
func (l *PickList) PickerID() string { return l.pickerID }
func (l *PickList) Status() ListStatus { return l.status }
func (l *PickList) CreatedAt() time.Time { return l.createdAt }
func (l *PickList) StartedAt() *time.Time { return l.startedAt }
func (l *PickList) CompletedAt() *time.Time { return l.completedAt }

// Items returns the items in sequence order.
func (l *PickList) Items() []*Item {
	out := make([]*Item, len(l.items))
	copy(out, l.items)
	return out
}

// Confirmations returns the confirmation log in append order.
func (l *PickList) Confirmations() []Confirmation {
	out := make([]Confirmation, len(l.confirmations))
	copy(out, l.confirmations)
	return out
}

func (l *PickList) Exceptions() []*Exception {
	out := make([]*Exception, len(l.exceptions))
	copy(out, l.exceptions)
	return out
}

// TotalPicks is the number of items.
func (l *PickList) TotalPicks() int {
	return len(l.items)
}

// CompletedPicks counts items in a terminal pick state. It is always derived.
func (l *PickList) CompletedPicks() int {
	n := 0
	for _, item := range l.items {
		if item.status.IsTerminal() {
			n++
		}
	}
	return n
}

// ProgressPercentage returns completed/total × 100, or 0 for an empty list.
func (l *PickList) ProgressPercentage() decimal.Decimal {
	return kernel.Percent(decimal.NewFromInt(int64(l.CompletedPicks())), decimal.NewFromInt(int64(l.TotalPicks())))
}

// Item looks an item up by id.
func (l *PickList) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range l.items {
		if item.id == itemID {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

// Exception looks an exception up by id.
func (l *PickList) Exception(exceptionID kernel.UUID) (*Exception, error) {
	for _, e := range l.exceptions {
		if e.id == exceptionID {
			return e, nil
		}
	}
	return nil, ErrExceptionNotFound
}

// HasUnresolvedException reports whether itemID is blocked.
func (l *PickList) HasUnresolvedException(itemID kernel.UUID) bool {
	for _, e := range l.exceptions {
		if e.itemID == itemID && e.status.IsUnresolved() {
			return true
		}
	}
	return false
}

// Pick records a pick against one item.
//
// A confirmation id that was already processed returns the stored outcome
// with Replayed set and changes nothing. Otherwise the quantity is clamped to
// what remains; a full pick marks the item picked, anything less marks it
// short picked and opens a short_pick exception. The list starts on its first
// pick and completes when every item is terminal.
func (l *PickList) Pick(req PickRequest, now time.Time) (PickOutcome, error) {
	if req.ConfirmationID != "" {
		if outcome, ok, err := l.replay(req); ok || err != nil {
			return outcome, err
		}
	}

	if err := req.Validate(); err != nil {
		return PickOutcome{}, err
	}
	if err := l.status.validateActive("pick"); err != nil {
		return PickOutcome{}, err
	}

	item, err := l.Item(req.ItemID)
	if err != nil {
		return PickOutcome{}, err
	}
	if item.status.IsTerminal() {
		return PickOutcome{}, ErrItemAlreadyPicked
	}
	if l.HasUnresolvedException(item.id) {
		return PickOutcome{}, ErrExceptionOpen
	}

	if l.status == ListPending {
		l.status = ListInProgress
		l.startedAt = &now
	}

	expected := item.Remaining()
	applied := item.pick(req.Quantity)

	outcome := PickOutcome{
		ItemID:       item.id,
		AllocationID: item.allocationID,
		PickedQty:    applied,
		ItemStatus:   item.status,
	}

	var exceptionID kernel.UUID
	if item.status == ItemShortPicked {
		e, err := NewException(kernel.NewUUID(), item.id, ShortPick, expected, applied, req.PickerID, now)
		if err != nil {
			return PickOutcome{}, err
		}
		l.exceptions = append(l.exceptions, e)
		exceptionID = e.id
		outcome.Exception = e
	}

	l.confirmations = append(l.confirmations, Confirmation{
		id:          req.ConfirmationID,
		itemID:      item.id,
		quantity:    applied,
		pickerID:    req.PickerID,
		method:      req.Method,
		notes:       req.Notes,
		exceptionID: exceptionID,
		confirmedAt: now,
	})

	outcome.ListCompleted = l.recomputeProgress(now)
	return outcome, nil
}

func (l *PickList) replay(req PickRequest) (PickOutcome, bool, error) {
	for _, c := range l.confirmations {
		if c.id != req.ConfirmationID {
			continue
		}
		if c.itemID != req.ItemID {
			return PickOutcome{}, true, ErrConfirmationConflict
		}

		item, err := l.Item(c.itemID)
		if err != nil {
			return PickOutcome{}, true, err
		}

		outcome := PickOutcome{
			ItemID:        item.id,
			AllocationID:  item.allocationID,
			PickedQty:     c.quantity,
			ItemStatus:    item.status,
			Replayed:      true,
			ListCompleted: l.status == ListCompleted,
		}
		if !c.exceptionID.IsZero() {
			if e, err := l.Exception(c.exceptionID); err == nil {
				outcome.Exception = e
			}
		}
		return outcome, true, nil
	}
	return PickOutcome{}, false, nil
}

// recomputeProgress completes the list when every item is terminal.
func (l *PickList) recomputeProgress(now time.Time) bool {
	if l.status == ListInProgress && l.CompletedPicks() == l.TotalPicks() {
		l.status = ListCompleted
		l.completedAt = &now
		return true
	}
	return false
}

// ReportException opens a manual exception against an item of the list.
func (l *PickList) ReportException(
	itemID kernel.UUID,
	kind ExceptionType,
	expected kernel.Quantity,
	actual kernel.Quantity,
	reportedBy string,
	now time.Time,
) (*Exception, error) {
	if _, err := l.Item(itemID); err != nil {
		return nil, err
	}

	e, err := NewException(kernel.NewUUID(), itemID, kind, expected, actual, reportedBy, now)
	if err != nil {
		return nil, err
	}

	l.exceptions = append(l.exceptions, e)
	return e, nil
}

// InvestigateException moves an open exception to investigating.
func (l *PickList) InvestigateException(exceptionID kernel.UUID) error {
	e, err := l.Exception(exceptionID)
	if err != nil {
		return err
	}
	return e.investigate()
}

// ResolveException closes an exception and unblocks its item.
func (l *PickList) ResolveException(exceptionID kernel.UUID, actor, resolution string, now time.Time) error {
	e, err := l.Exception(exceptionID)
	if err != nil {
		return err
	}
	return e.resolve(actor, resolution, now)
}

// Cancel abandons an active list.
func (l *PickList) Cancel() error {
	if err := l.status.validateActive("cancel"); err != nil {
		return err
	}
	l.status = ListCancelled
	return nil
}
