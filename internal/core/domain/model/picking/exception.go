package picking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrExceptionIsNotConstructed is returned when using a zero-value Exception.
var ErrExceptionIsNotConstructed = errors.New("Exception must be created via NewException constructor")

// ExceptionType classifies a mismatch found while picking.
type ExceptionType int

const (
	UnknownExceptionType ExceptionType = iota
	ShortPick
	Damaged
	WrongItem
	LocationEmpty
)

func getExceptionTypeStrings() map[ExceptionType]string {
	return map[ExceptionType]string{
		UnknownExceptionType: "unknown",
		ShortPick:            "short_pick",
		Damaged:              "damaged",
		WrongItem:            "wrong_item",
		LocationEmpty:        "location_empty",
	}
}

// ParseExceptionType converts a type name into an ExceptionType.
func ParseExceptionType(s string) (ExceptionType, error) {
	for t, name := range getExceptionTypeStrings() {
		if t != UnknownExceptionType && strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return UnknownExceptionType, errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%q is not a valid exception type", s))
}

func (t ExceptionType) Validate() error {
	if t <= UnknownExceptionType || t > LocationEmpty {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid exception type", t))
	}
	return nil
}

func (t ExceptionType) String() string {
	if s, ok := getExceptionTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}

// ExceptionStatus is the adjudication state of an Exception.
//
//	Open ──> Investigating ──> Resolved
//	  └────────────────────────────^
type ExceptionStatus int

const (
	UnknownExceptionStatus ExceptionStatus = iota
	ExceptionOpen
	ExceptionInvestigating
	ExceptionResolved
)

func getExceptionStatusStrings() map[ExceptionStatus]string {
	return map[ExceptionStatus]string{
		UnknownExceptionStatus: "unknown",
		ExceptionOpen:          "open",
		ExceptionInvestigating: "investigating",
		ExceptionResolved:      "resolved",
	}
}

func (s ExceptionStatus) Validate() error {
	if s <= UnknownExceptionStatus || s > ExceptionResolved {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid exception status", s))
	}
	return nil
}

func (s ExceptionStatus) String() string {
	if str, ok := getExceptionStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsUnresolved reports whether the exception still blocks its item.
func (s ExceptionStatus) IsUnresolved() bool {
	return s == ExceptionOpen || s == ExceptionInvestigating
}

// Exception records the expected versus actual quantity of a pick mismatch.
// Exceptions never resolve on their own.
type Exception struct {
	id         kernel.UUID
	itemID     kernel.UUID
	kind       ExceptionType
	expected   kernel.Quantity
	actual     kernel.Quantity
	status     ExceptionStatus
	reportedBy string
	resolvedBy string
	resolution string
	reportedAt time.Time
	resolvedAt *time.Time
	guard      guard.ConstructorGuard
}

// NewException opens an exception against itemID.
func NewException(
	id kernel.UUID,
	itemID kernel.UUID,
	kind ExceptionType,
	expected kernel.Quantity,
	actual kernel.Quantity,
	reportedBy string,
	reportedAt time.Time,
) (*Exception, error) {
	if err := errors.Join(
		requireID("exceptionId", id),
		requireID("itemId", itemID),
		kind.Validate(),
		requireActor("reportedBy", reportedBy),
	); err != nil {
		return nil, err
	}

	return &Exception{
		id:         id,
		itemID:     itemID,
		kind:       kind,
		expected:   expected,
		actual:     actual,
		status:     ExceptionOpen,
		reportedBy: reportedBy,
		reportedAt: reportedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreException rebuilds an Exception from persistence.
func RestoreException(
	id kernel.UUID,
	itemID kernel.UUID,
	kind ExceptionType,
	expected kernel.Quantity,
	actual kernel.Quantity,
	status ExceptionStatus,
	reportedBy string,
	resolvedBy string,
	resolution string,
	reportedAt time.Time,
	resolvedAt *time.Time,
) (*Exception, error) {
	e, err := NewException(id, itemID, kind, expected, actual, reportedBy, reportedAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	e.status = status
	e.resolvedBy = resolvedBy
	e.resolution = resolution
	e.resolvedAt = resolvedAt
	return e, nil
}

func (e *Exception) Validate() error {
	if e == nil {
		return ErrExceptionIsNotConstructed
	}
	return e.guard.Validate(ErrExceptionIsNotConstructed)
}

func (e *Exception) ID() kernel.UUID { return e.id }
func (e *Exception) ItemID() kernel.UUID { return e.itemID }
func (e *Exception) Type() ExceptionType { return e.kind }
func (e *Exception) ExpectedQuantity() kernel.Quantity { return e.expected }
func (e *Exception) ActualQuantity() kernel.Quantity { return e.actual }
func (e *Exception) Status() ExceptionStatus { return e.status }
func (e *Exception) ReportedBy() string { return e.reportedBy }
func (e *Exception) ResolvedBy() string { return e.resolvedBy }
func (e *Exception) Resolution() string { return e.resolution }
func (e *Exception) ReportedAt() time.Time { return e.reportedAt }
func (e *Exception) ResolvedAt() *time.Time { return e.resolvedAt }

// Delta returns actual - expected as a signed decimal string, for audit.
func (e *Exception) Delta() string {
	return e.actual.Decimal().Sub(e.expected.Decimal()).StringFixed(3)
}

func (e *Exception) investigate() error {
	if e.status != ExceptionOpen {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to investigate", e.status),
		)
	}
	e.status = ExceptionInvestigating
	return nil
}

func (e *Exception) resolve(actor, resolution string, now time.Time) error {
	if !e.status.IsUnresolved() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to resolve", e.status),
		)
	}
	if err := errors.Join(requireActor("resolvedBy", actor), requireActor("resolution", resolution)); err != nil {
		return err
	}
	e.status = ExceptionResolved
	e.resolvedBy = actor
	e.resolution = resolution
	e.resolvedAt = &now
	return nil
}

func requireActor(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
