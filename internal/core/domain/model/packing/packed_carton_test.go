package packing_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tolerances = packing.Tolerances{Weight: decimal.NewFromInt(5), Dimension: decimal.NewFromInt(10)}

func newCarton(t *testing.T, actualWeight string, dims kernel.Dimensions) *packing.PackedCarton {
	t.Helper()
	ct := mustCartonType(t, "B-20", 20, 10, 5, "15", true)
	c, err := packing.NewPackedCarton(
		kernel.NewUUID(), kernel.NewUUID(), ct,
		[]packing.PackedItem{{ProductID: kernel.NewUUID(), Quantity: kernel.MustQuantity("2")}},
		kernel.MustQuantity("10"), kernel.MustQuantity(actualWeight), dims, now,
	)
	require.NoError(t, err)
	return c
}

func TestPackedCarton_ValidateMeasurements(t *testing.T) {
	t.Run("passing carton is verified and can ship", func(t *testing.T) {
		c := newCarton(t, "10.2", kernel.MustDimensions(20, 10, 5))

		result, err := c.ValidateMeasurements(tolerances, "qa-1", now)

		require.NoError(t, err)
		assert.True(t, result.Passed())
		assert.Equal(t, packing.Verified, c.Status())
		require.NoError(t, c.Ship())
		assert.Equal(t, packing.Shipped, c.Status())
	})

	t.Run("failed weight blocks shipping", func(t *testing.T) {
		c := newCarton(t, "12", kernel.MustDimensions(20, 10, 5))

		result, err := c.ValidateMeasurements(tolerances, "qa-1", now)

		require.NoError(t, err)
		assert.Equal(t, packing.Fail, result.Weight.Status)
		assert.Equal(t, packing.Packed, c.Status())
		require.ErrorIs(t, c.Ship(), packing.ErrToleranceExceeded)
	})

	t.Run("inspector override unblocks a failed carton", func(t *testing.T) {
		c := newCarton(t, "12", kernel.MustDimensions(20, 10, 5))
		_, err := c.ValidateMeasurements(tolerances, "qa-1", now)
		require.NoError(t, err)

		require.NoError(t, c.OverrideVerification("qa-lead", "scale recalibrated", now))

		require.NoError(t, c.CanShip())
		assert.Equal(t, "qa-lead", c.Override().InspectorID)
	})

	t.Run("warning keeps the carton packed until overridden", func(t *testing.T) {
		c := newCarton(t, "10.8", kernel.MustDimensions(20, 10, 5))

		result, err := c.ValidateMeasurements(tolerances, "qa-1", now)

		require.NoError(t, err)
		assert.Equal(t, packing.Warning, result.Weight.Status)
		assert.False(t, result.Passed())
		assert.Equal(t, packing.Packed, c.Status())
		require.ErrorIs(t, c.Ship(), packing.ErrToleranceExceeded)

		require.NoError(t, c.OverrideVerification("qa-lead", "scale drift", now))
		require.NoError(t, c.Ship())
	})

	t.Run("passing re-validation clears a warning", func(t *testing.T) {
		c := newCarton(t, "10.8", kernel.MustDimensions(20, 10, 5))
		_, err := c.ValidateMeasurements(tolerances, "qa-1", now)
		require.NoError(t, err)

		require.NoError(t, c.Repack(c.Items(), kernel.MustQuantity("10"), kernel.MustQuantity("10.2"), kernel.MustDimensions(20, 10, 5), now))
		_, err = c.ValidateMeasurements(tolerances, "qa-1", now)
		require.NoError(t, err)

		require.NoError(t, c.CanShip())
	})

	t.Run("override requires a failed verification", func(t *testing.T) {
		c := newCarton(t, "10", kernel.MustDimensions(20, 10, 5))

		require.Error(t, c.OverrideVerification("qa-lead", "why not", now))
	})

	t.Run("repack followed by re-validation unblocks", func(t *testing.T) {
		c := newCarton(t, "12", kernel.MustDimensions(20, 10, 5))
		_, err := c.ValidateMeasurements(tolerances, "qa-1", now)
		require.NoError(t, err)

		require.NoError(t, c.Repack(c.Items(), kernel.MustQuantity("10"), kernel.MustQuantity("10.1"), kernel.MustDimensions(20, 10, 5), now))
		require.ErrorIs(t, c.CanShip(), packing.ErrNotVerified)

		result, err := c.ValidateMeasurements(tolerances, "qa-1", now)
		require.NoError(t, err)
		assert.True(t, result.Passed())
		require.NoError(t, c.CanShip())
	})

	t.Run("quality check requiring repack blocks shipping", func(t *testing.T) {
		c := newCarton(t, "10", kernel.MustDimensions(20, 10, 5))
		_, err := c.ValidateMeasurements(tolerances, "qa-1", now)
		require.NoError(t, err)
		q, err := packing.NewQualityCheck([]packing.Criterion{{Name: "seal", Passed: false, Critical: true}}, decimal.NewFromInt(90), "qa-1", now)
		require.NoError(t, err)

		require.NoError(t, c.RecordQualityCheck(q))

		require.ErrorIs(t, c.Ship(), packing.ErrRepackRequired)
		assert.Equal(t, packing.Packed, c.Status())
	})

	t.Run("quality check requiring reinspection blocks shipping", func(t *testing.T) {
		c := newCarton(t, "10", kernel.MustDimensions(20, 10, 5))
		_, err := c.ValidateMeasurements(tolerances, "qa-1", now)
		require.NoError(t, err)
		low, err := packing.NewQualityCheck([]packing.Criterion{
			{Name: "seal", Passed: true},
			{Name: "label", Passed: false},
		}, decimal.NewFromInt(90), "qa-1", now)
		require.NoError(t, err)
		require.True(t, low.RequiresReinspection())
		require.False(t, low.RequiresRepack())

		require.NoError(t, c.RecordQualityCheck(low))

		assert.Equal(t, packing.Verified, c.Status())
		require.ErrorIs(t, c.Ship(), packing.ErrReinspectionRequired)

		clean, err := packing.NewQualityCheck([]packing.Criterion{{Name: "label", Passed: true}}, decimal.NewFromInt(90), "qa-2", now)
		require.NoError(t, err)
		require.NoError(t, c.RecordQualityCheck(clean))
		require.NoError(t, c.Ship())
	})

	t.Run("damaged cartons leave the flow", func(t *testing.T) {
		c := newCarton(t, "10", kernel.MustDimensions(20, 10, 5))

		require.NoError(t, c.MarkDamaged())

		_, err := c.ValidateMeasurements(tolerances, "qa-1", now)
		require.Error(t, err)
	})
}
