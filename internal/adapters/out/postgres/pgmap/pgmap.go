// Package pgmap holds the column conversions shared by the repository DTOs.
package pgmap

import (
	"encoding/json"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// jsonNull is stored instead of SQL NULL in optional jsonb columns.
var jsonNull = datatypes.JSON("null")

// ID converts a uuid column into a kernel.UUID.
func ID(u uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(u[:])
}

// OptionalID converts a nullable uuid column. NULL becomes the zero UUID.
func OptionalID(u *uuid.UUID) (kernel.UUID, error) {
	if u == nil {
		return kernel.UUID{}, nil
	}
	return ID(*u)
}

// NullableID returns nil for the zero UUID.
func NullableID(id kernel.UUID) *uuid.UUID {
	if id.IsZero() {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func Quantity(d decimal.Decimal) (kernel.Quantity, error) {
	return kernel.NewQuantity(d)
}

func Location(zone string, aisle, position int) (kernel.BinLocation, error) {
	return kernel.NewBinLocation(zone, aisle, position)
}

func Dimensions(length, width, height decimal.Decimal) (kernel.Dimensions, error) {
	return kernel.NewDimensions(length, width, height)
}

// JSON encodes v for a jsonb column; a nil v is stored as JSON null.
func JSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return jsonNull, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// FromJSON decodes a jsonb column. It returns nil for JSON null or an empty
// column.
func FromJSON[T any](j datatypes.JSON) (*T, error) {
	if len(j) == 0 || string(j) == string(jsonNull) {
		return nil, nil
	}
	var out T
	if err := json.Unmarshal(j, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// IsNotFound reports whether err is gorm's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsUniqueViolation reports whether err is a unique_violation raised by the
// named constraint or index.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
