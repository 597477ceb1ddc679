// Package cartonrepo persists the carton catalog and packed cartons. Packed
// items and the verification records are stored as jsonb next to the carton.
package cartonrepo

import (
	"errors"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgmap"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CartonTypeDTO is the row of carton_types.
type CartonTypeDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code      string          `gorm:"uniqueIndex"`
	Length    decimal.Decimal `gorm:"type:numeric(12,2)"`
	Width     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Height    decimal.Decimal `gorm:"type:numeric(12,2)"`
	MaxWeight decimal.Decimal `gorm:"type:numeric(12,3)"`
	Active    bool
}

func (CartonTypeDTO) TableName() string {
	return "carton_types"
}

// PackedCartonDTO is the row of packed_cartons.
type PackedCartonDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID       `gorm:"type:uuid;index"`
	CartonTypeID   uuid.UUID       `gorm:"type:uuid"`
	CartonType     CartonTypeDTO   `gorm:"foreignKey:CartonTypeID"`
	Items          datatypes.JSON  `gorm:"type:jsonb"`
	ExpectedWeight decimal.Decimal `gorm:"type:numeric(12,3)"`
	ActualWeight   decimal.Decimal `gorm:"type:numeric(12,3)"`
	ActualLength   decimal.Decimal `gorm:"type:numeric(12,2)"`
	ActualWidth    decimal.Decimal `gorm:"type:numeric(12,2)"`
	ActualHeight   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status         int             `gorm:"type:smallint"`
	WeightCheck    datatypes.JSON  `gorm:"type:jsonb"`
	DimensionCheck datatypes.JSON  `gorm:"type:jsonb"`
	QualityCheck   datatypes.JSON  `gorm:"type:jsonb"`
	Override       datatypes.JSON  `gorm:"type:jsonb"`
	PackedAt       time.Time
}

func (PackedCartonDTO) TableName() string {
	return "packed_cartons"
}

type itemJSON struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
}

type resultJSON struct {
	Tolerance     decimal.Decimal `json:"tolerance"`
	Difference    decimal.Decimal `json:"difference"`
	DifferencePct decimal.Decimal `json:"differencePct"`
	Status        string          `json:"status"`
	Variance      string          `json:"variance"`
	InspectorID   string          `json:"inspectorId"`
	VerifiedAt    time.Time       `json:"verifiedAt"`
}

type weightCheckJSON struct {
	Expected decimal.Decimal `json:"expected"`
	Actual   decimal.Decimal `json:"actual"`
	resultJSON
}

type dimensionsJSON struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
}

type dimensionCheckJSON struct {
	Expected dimensionsJSON `json:"expected"`
	Actual   dimensionsJSON `json:"actual"`
	resultJSON
}

type criterionJSON struct {
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Critical bool   `json:"critical"`
}

// qualityCheckJSON keeps only the inputs; the derived flags are recomputed on
// load.
type qualityCheckJSON struct {
	Criteria    []criterionJSON `json:"criteria"`
	MinPassRate decimal.Decimal `json:"minPassRate"`
	InspectorID string          `json:"inspectorId"`
	CheckedAt   time.Time       `json:"checkedAt"`
}

type overrideJSON struct {
	InspectorID string    `json:"inspectorId"`
	Reason      string    `json:"reason"`
	At          time.Time `json:"at"`
}

func cartonTypeFromDomain(t packing.CartonType) CartonTypeDTO {
	return CartonTypeDTO{
		ID:        t.ID().Bytes(),
		Code:      t.Code(),
		Length:    t.Dimensions().Length(),
		Width:     t.Dimensions().Width(),
		Height:    t.Dimensions().Height(),
		MaxWeight: t.MaxWeight().Decimal(),
		Active:    t.IsActive(),
	}
}

func cartonTypeToDomain(dto CartonTypeDTO) (packing.CartonType, error) {
	id, idErr := pgmap.ID(dto.ID)
	dims, dimsErr := pgmap.Dimensions(dto.Length, dto.Width, dto.Height)
	maxWeight, weightErr := pgmap.Quantity(dto.MaxWeight)
	if err := errors.Join(idErr, dimsErr, weightErr); err != nil {
		return packing.CartonType{}, err
	}
	return packing.NewCartonType(id, dto.Code, dims, maxWeight, dto.Active)
}

func resultFromDomain(r packing.Result) resultJSON {
	return resultJSON{
		Tolerance:     r.Tolerance,
		Difference:    r.Difference,
		DifferencePct: r.DifferencePct,
		Status:        r.Status.String(),
		Variance:      r.Variance.String(),
		InspectorID:   r.InspectorID,
		VerifiedAt:    r.VerifiedAt,
	}
}

func (r resultJSON) toDomain() (packing.Result, error) {
	status, statusErr := packing.ParseVerificationStatus(r.Status)
	variance, varianceErr := packing.ParseVarianceType(r.Variance)
	if err := errors.Join(statusErr, varianceErr); err != nil {
		return packing.Result{}, err
	}
	return packing.Result{
		Tolerance:     r.Tolerance,
		Difference:    r.Difference,
		DifferencePct: r.DifferencePct,
		Status:        status,
		Variance:      variance,
		InspectorID:   r.InspectorID,
		VerifiedAt:    r.VerifiedAt,
	}, nil
}

func dimensionsFromDomain(d kernel.Dimensions) dimensionsJSON {
	return dimensionsJSON{Length: d.Length(), Width: d.Width(), Height: d.Height()}
}

func (d dimensionsJSON) toDomain() (kernel.Dimensions, error) {
	return pgmap.Dimensions(d.Length, d.Width, d.Height)
}

func fromDomain(c *packing.PackedCarton) (PackedCartonDTO, error) {
	items := make([]itemJSON, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, itemJSON{ProductID: item.ProductID.Bytes(), Quantity: item.Quantity.Decimal()})
	}
	itemsJSON, err := pgmap.JSON(items)
	if err != nil {
		return PackedCartonDTO{}, err
	}

	var weight, dimension, quality, override any
	if v := c.WeightVerification(); v != nil {
		weight = weightCheckJSON{
			Expected:   v.Expected.Decimal(),
			Actual:     v.Actual.Decimal(),
			resultJSON: resultFromDomain(v.Result),
		}
	}
	if v := c.DimensionVerification(); v != nil {
		dimension = dimensionCheckJSON{
			Expected:   dimensionsFromDomain(v.Expected),
			Actual:     dimensionsFromDomain(v.Actual),
			resultJSON: resultFromDomain(v.Result),
		}
	}
	if q := c.QualityCheck(); q != nil {
		criteria := make([]criterionJSON, 0, len(q.Criteria()))
		for _, cr := range q.Criteria() {
			criteria = append(criteria, criterionJSON{Name: cr.Name, Passed: cr.Passed, Critical: cr.Critical})
		}
		quality = qualityCheckJSON{
			Criteria:    criteria,
			MinPassRate: q.MinPassRate(),
			InspectorID: q.InspectorID(),
			CheckedAt:   q.CheckedAt(),
		}
	}
	if o := c.Override(); o != nil {
		override = overrideJSON{InspectorID: o.InspectorID, Reason: o.Reason, At: o.At}
	}

	weightJSON, weightErr := pgmap.JSON(weight)
	dimensionJSON, dimensionErr := pgmap.JSON(dimension)
	qualityJSON, qualityErr := pgmap.JSON(quality)
	overrideJSONValue, overrideErr := pgmap.JSON(override)
	if err = errors.Join(weightErr, dimensionErr, qualityErr, overrideErr); err != nil {
		return PackedCartonDTO{}, err
	}

	dims := c.ActualDimensions()
	return PackedCartonDTO{
		ID:             c.ID().Bytes(),
		OrderID:        c.OrderID().Bytes(),
		CartonTypeID:   c.CartonType().ID().Bytes(),
		Items:          itemsJSON,
		ExpectedWeight: c.ExpectedWeight().Decimal(),
		ActualWeight:   c.ActualWeight().Decimal(),
		ActualLength:   dims.Length(),
		ActualWidth:    dims.Width(),
		ActualHeight:   dims.Height(),
		Status:         int(c.Status()),
		WeightCheck:    weightJSON,
		DimensionCheck: dimensionJSON,
		QualityCheck:   qualityJSON,
		Override:       overrideJSONValue,
		PackedAt:       c.PackedAt(),
	}, nil
}

func toDomain(dto PackedCartonDTO) (*packing.PackedCarton, error) {
	id, idErr := pgmap.ID(dto.ID)
	orderID, orderErr := pgmap.ID(dto.OrderID)
	cartonType, typeErr := cartonTypeToDomain(dto.CartonType)
	expected, expectedErr := pgmap.Quantity(dto.ExpectedWeight)
	actual, actualErr := pgmap.Quantity(dto.ActualWeight)
	dims, dimsErr := pgmap.Dimensions(dto.ActualLength, dto.ActualWidth, dto.ActualHeight)
	if err := errors.Join(idErr, orderErr, typeErr, expectedErr, actualErr, dimsErr); err != nil {
		return nil, err
	}

	items, err := itemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}
	weightCheck, weightErr := weightCheckToDomain(dto.WeightCheck)
	dimensionCheck, dimensionErr := dimensionCheckToDomain(dto.DimensionCheck)
	qualityCheck, qualityErr := qualityCheckToDomain(dto.QualityCheck)
	override, overrideErr := overrideToDomain(dto.Override)
	if err = errors.Join(weightErr, dimensionErr, qualityErr, overrideErr); err != nil {
		return nil, err
	}

	return packing.RestorePackedCarton(
		id,
		orderID,
		cartonType,
		items,
		expected,
		actual,
		dims,
		packing.CartonStatus(dto.Status),
		weightCheck,
		dimensionCheck,
		qualityCheck,
		override,
		dto.PackedAt,
	)
}

func itemsToDomain(raw datatypes.JSON) ([]packing.PackedItem, error) {
	decoded, err := pgmap.FromJSON[[]itemJSON](raw)
	if err != nil || decoded == nil {
		return nil, err
	}
	items := make([]packing.PackedItem, 0, len(*decoded))
	for _, item := range *decoded {
		productID, productErr := pgmap.ID(item.ProductID)
		quantity, quantityErr := pgmap.Quantity(item.Quantity)
		if err = errors.Join(productErr, quantityErr); err != nil {
			return nil, err
		}
		items = append(items, packing.PackedItem{ProductID: productID, Quantity: quantity})
	}
	return items, nil
}

func weightCheckToDomain(raw datatypes.JSON) (*packing.WeightVerification, error) {
	decoded, err := pgmap.FromJSON[weightCheckJSON](raw)
	if err != nil || decoded == nil {
		return nil, err
	}
	expected, expectedErr := pgmap.Quantity(decoded.Expected)
	actual, actualErr := pgmap.Quantity(decoded.Actual)
	result, resultErr := decoded.resultJSON.toDomain()
	if err = errors.Join(expectedErr, actualErr, resultErr); err != nil {
		return nil, err
	}
	return &packing.WeightVerification{Expected: expected, Actual: actual, Result: result}, nil
}

func dimensionCheckToDomain(raw datatypes.JSON) (*packing.DimensionVerification, error) {
	decoded, err := pgmap.FromJSON[dimensionCheckJSON](raw)
	if err != nil || decoded == nil {
		return nil, err
	}
	expected, expectedErr := decoded.Expected.toDomain()
	actual, actualErr := decoded.Actual.toDomain()
	result, resultErr := decoded.resultJSON.toDomain()
	if err = errors.Join(expectedErr, actualErr, resultErr); err != nil {
		return nil, err
	}
	return &packing.DimensionVerification{Expected: expected, Actual: actual, Result: result}, nil
}

func qualityCheckToDomain(raw datatypes.JSON) (*packing.QualityCheck, error) {
	decoded, err := pgmap.FromJSON[qualityCheckJSON](raw)
	if err != nil || decoded == nil {
		return nil, err
	}
	criteria := make([]packing.Criterion, 0, len(decoded.Criteria))
	for _, c := range decoded.Criteria {
		criteria = append(criteria, packing.Criterion{Name: c.Name, Passed: c.Passed, Critical: c.Critical})
	}
	q, err := packing.NewQualityCheck(criteria, decoded.MinPassRate, decoded.InspectorID, decoded.CheckedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func overrideToDomain(raw datatypes.JSON) (*packing.Override, error) {
	decoded, err := pgmap.FromJSON[overrideJSON](raw)
	if err != nil || decoded == nil {
		return nil, err
	}
	return &packing.Override{InspectorID: decoded.InspectorID, Reason: decoded.Reason, At: decoded.At}, nil
}
