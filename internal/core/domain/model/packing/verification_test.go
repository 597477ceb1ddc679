package packing_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)

func TestVerifyWeight(t *testing.T) {
	tests := []struct {
		name     string
		actual   string
		status   packing.VerificationStatus
		variance packing.VarianceType
		pct      string
	}{
		{name: "exact", actual: "10", status: packing.Pass, variance: packing.Exact, pct: "0"},
		{name: "at tolerance", actual: "10.5", status: packing.Pass, variance: packing.Overweight, pct: "5"},
		{name: "warning band", actual: "9.2", status: packing.Warning, variance: packing.Underweight, pct: "8"},
		{name: "at twice tolerance", actual: "11", status: packing.Warning, variance: packing.Overweight, pct: "10"},
		{name: "fail", actual: "11.2", status: packing.Fail, variance: packing.Overweight, pct: "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := packing.VerifyWeight(kernel.MustQuantity("10"), kernel.MustQuantity(tt.actual), decimal.NewFromInt(5), "qa-1", now)

			require.NoError(t, err)
			assert.Equal(t, tt.status, v.Status)
			assert.Equal(t, tt.variance, v.Variance)
			assert.True(t, v.DifferencePct.Equal(decimal.RequireFromString(tt.pct)), "pct %s", v.DifferencePct)
		})
	}

	t.Run("just above tolerance is not a pass", func(t *testing.T) {
		v, err := packing.VerifyWeight(kernel.MustQuantity("100"), kernel.MustQuantity("105.004"), decimal.NewFromInt(5), "qa-1", now)

		require.NoError(t, err)
		assert.Equal(t, packing.Warning, v.Status)
		assert.True(t, v.DifferencePct.Equal(decimal.NewFromInt(5)), "pct %s", v.DifferencePct)
	})

	t.Run("rejects zero expected weight", func(t *testing.T) {
		_, err := packing.VerifyWeight(kernel.ZeroQuantity(), kernel.MustQuantity("1"), decimal.NewFromInt(5), "qa-1", now)

		require.Error(t, err)
	})

	t.Run("rejects negative tolerance", func(t *testing.T) {
		_, err := packing.VerifyWeight(kernel.MustQuantity("1"), kernel.MustQuantity("1"), decimal.NewFromInt(-1), "qa-1", now)

		require.Error(t, err)
	})
}

func TestVerifyDimensions(t *testing.T) {
	t.Run("largest axis deviation decides", func(t *testing.T) {
		v, err := packing.VerifyDimensions(kernel.MustDimensions(20, 10, 5), kernel.MustDimensions(20, 10, 6), decimal.NewFromInt(10), "qa-1", now)

		require.NoError(t, err)
		assert.True(t, v.DifferencePct.Equal(decimal.NewFromInt(20)))
		assert.True(t, v.Difference.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, packing.Warning, v.Status)
		assert.Equal(t, packing.Oversized, v.Variance)
	})

	t.Run("just above tolerance is not a pass", func(t *testing.T) {
		expected, err := kernel.NewDimensions(decimal.NewFromInt(300), decimal.NewFromInt(10), decimal.NewFromInt(10))
		require.NoError(t, err)
		actual, err := kernel.NewDimensions(decimal.RequireFromString("330.01"), decimal.NewFromInt(10), decimal.NewFromInt(10))
		require.NoError(t, err)

		v, err := packing.VerifyDimensions(expected, actual, decimal.NewFromInt(10), "qa-1", now)

		require.NoError(t, err)
		assert.Equal(t, packing.Warning, v.Status)
		assert.True(t, v.DifferencePct.Equal(decimal.NewFromInt(10)), "pct %s", v.DifferencePct)
	})

	t.Run("variance follows the volume", func(t *testing.T) {
		v, err := packing.VerifyDimensions(kernel.MustDimensions(20, 10, 5), kernel.MustDimensions(19, 10, 5), decimal.NewFromInt(10), "qa-1", now)

		require.NoError(t, err)
		assert.Equal(t, packing.Pass, v.Status)
		assert.Equal(t, packing.Undersized, v.Variance)
	})
}

func TestNewQualityCheck(t *testing.T) {
	t.Run("critical failure forces repack regardless of pass rate", func(t *testing.T) {
		q, err := packing.NewQualityCheck([]packing.Criterion{
			{Name: "sealed", Passed: true},
			{Name: "labels", Passed: true},
			{Name: "void fill", Passed: true},
			{Name: "hazmat marking", Passed: false, Critical: true},
		}, decimal.NewFromInt(50), "qa-1", now)

		require.NoError(t, err)
		assert.True(t, q.PassRate().Equal(decimal.NewFromInt(75)))
		assert.True(t, q.HasCriticalFailures())
		assert.True(t, q.RequiresRepack())
		assert.True(t, q.RequiresReinspection())
	})

	t.Run("low pass rate forces reinspection only", func(t *testing.T) {
		q, err := packing.NewQualityCheck([]packing.Criterion{
			{Name: "sealed", Passed: true},
			{Name: "labels", Passed: false},
		}, decimal.NewFromInt(80), "qa-1", now)

		require.NoError(t, err)
		assert.False(t, q.RequiresRepack())
		assert.True(t, q.RequiresReinspection())
	})

	t.Run("requires criteria and inspector", func(t *testing.T) {
		_, err := packing.NewQualityCheck(nil, decimal.NewFromInt(101), "", now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "criteria")
		assert.Contains(t, err.Error(), "minPassRate")
		assert.Contains(t, err.Error(), "inspectorId")
	})
}
