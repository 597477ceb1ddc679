package packing_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCartonType(t *testing.T, code string, l, w, h int64, maxWeight string, active bool) packing.CartonType {
	t.Helper()
	ct, err := packing.NewCartonType(kernel.NewUUID(), code, kernel.MustDimensions(l, w, h), kernel.MustQuantity(maxWeight), active)
	require.NoError(t, err)
	return ct
}

func TestCartonType_CanFitDimensions(t *testing.T) {
	item := kernel.MustDimensions(10, 5, 20)

	assert.True(t, mustCartonType(t, "B-20", 20, 10, 5, "10", true).CanFitDimensions(item))
	assert.False(t, mustCartonType(t, "B-20S", 20, 10, 4, "10", true).CanFitDimensions(item))
}

func TestCartonType_CanHoldWeight(t *testing.T) {
	ct := mustCartonType(t, "B-20", 20, 10, 5, "10", true)

	assert.True(t, ct.CanHoldWeight(kernel.MustQuantity("10")))
	assert.False(t, ct.CanHoldWeight(kernel.MustQuantity("10.001")))
}

func TestNewCartonType(t *testing.T) {
	_, err := packing.NewCartonType(kernel.UUID{}, " ", kernel.Dimensions{}, kernel.ZeroQuantity(), true)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "code")
	assert.Contains(t, err.Error(), "maxWeight")
}
