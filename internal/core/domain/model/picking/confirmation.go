package picking

import (
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Method is how the picker confirmed the pick.
type Method int

const (
	UnknownMethod Method = iota
	Scan
	Manual
	Voice
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		UnknownMethod: "unknown",
		Scan:          "scan",
		Manual:        "manual",
		Voice:         "voice",
	}
}

// ParseMethod converts a method name into a Method.
func ParseMethod(s string) (Method, error) {
	for m, name := range getMethodStrings() {
		if m != UnknownMethod && strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%q is not a valid pick method", s))
}

func (m Method) Validate() error {
	if m <= UnknownMethod || m > Voice {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%d is not a valid pick method", m))
	}
	return nil
}

func (m Method) String() string {
	if s, ok := getMethodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

// Confirmation is the immutable record of one pick event. ExceptionID is set
// when the pick was short and opened an exception.
type Confirmation struct {
	id          string
	itemID      kernel.UUID
	quantity    kernel.Quantity
	pickerID    string
	method      Method
	notes       string
	exceptionID kernel.UUID
	confirmedAt time.Time
}

// RestoreConfirmation rebuilds a Confirmation from persistence.
func RestoreConfirmation(
	id string,
	itemID kernel.UUID,
	quantity kernel.Quantity,
	pickerID string,
	method Method,
	notes string,
	exceptionID kernel.UUID,
	confirmedAt time.Time,
) Confirmation {
	return Confirmation{
		id:          id,
		itemID:      itemID,
		quantity:    quantity,
		pickerID:    pickerID,
		method:      method,
		notes:       notes,
		exceptionID: exceptionID,
		confirmedAt: confirmedAt,
	}
}

func (c Confirmation) ID() string { return c.id }
func (c Confirmation) ItemID() kernel.UUID { return c.itemID }
func (c Confirmation) Quantity() kernel.Quantity { return c.quantity }
func (c Confirmation) PickerID() string { return c.pickerID }
func (c Confirmation) Method() Method { return c.method }
func (c Confirmation) Notes() string { return c.notes }
func (c Confirmation) ExceptionID() kernel.UUID { return c.exceptionID }
func (c Confirmation) ConfirmedAt() time.Time { return c.confirmedAt }
