package commands

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func requireText(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errs.NewValueIsRequiredError(name)
	}
	return value, nil
}

func requirePositive(name string, q kernel.Quantity) error {
	if !q.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%s is not greater than 0", q))
	}
	return nil
}

func asRetryable(err error) error {
	if errs.IsRetryable(err) {
		return err
	}
	return errs.NewRetryableError("inventory", err)
}
