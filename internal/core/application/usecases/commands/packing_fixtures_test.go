package commands_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var defaultTolerances = packing.Tolerances{Weight: decimal.NewFromInt(5), Dimension: decimal.NewFromInt(5)}

func cartonType(t *testing.T, code string, l, w, h int64, maxWeight string) packing.CartonType {
	t.Helper()
	ct, err := packing.NewCartonType(kernel.NewUUID(), code, kernel.MustDimensions(l, w, h), kernel.MustQuantity(maxWeight), true)
	require.NoError(t, err)
	return ct
}

func packedItems() []packing.PackedItem {
	return []packing.PackedItem{{ProductID: kernel.NewUUID(), Quantity: kernel.MustQuantity("2")}}
}

func newCarton(t *testing.T, expected, actual string) *packing.PackedCarton {
	t.Helper()
	carton, err := packing.NewPackedCarton(
		kernel.NewUUID(),
		kernel.NewUUID(),
		cartonType(t, "M", 40, 30, 20, "10"),
		packedItems(),
		kernel.MustQuantity(expected),
		kernel.MustQuantity(actual),
		kernel.MustDimensions(40, 30, 20),
		testNow,
	)
	require.NoError(t, err)
	return carton
}

func expectCartonLoaded(uow *MockUoW, repo *MockCartonRepository, factory *MockPackingUoWFactory, carton *packing.PackedCarton) {
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("CartonRepository").Return(repo).Once()
	repo.On("Get", mock.Anything, carton.ID()).Return(carton, nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()
}
