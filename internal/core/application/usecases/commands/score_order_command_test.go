package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/priority"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScoreOrderCommand_NormalizesTier(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewScoreOrderCommand(id, priority.Factors{Tier: " Gold "})
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, priority.Gold, cmd.Factors().Tier)
}

func TestNewScoreOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewScoreOrderCommand(kernel.UUID{}, priority.Factors{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewOverridePriorityCommand(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewOverridePriorityCommand(id, priority.Critical, " ops-1 ", "vip escalation")
	require.NoError(t, err)
	assert.Equal(t, "ops-1", cmd.Actor())
	assert.Equal(t, priority.Critical, cmd.Level())

	_, err = commands.NewOverridePriorityCommand(id, priority.UnknownLevel, "ops-1", "reason")
	require.Error(t, err)

	_, err = commands.NewOverridePriorityCommand(id, priority.High, "ops-1", "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewClearPriorityOverrideCommand_RequiresActor(t *testing.T) {
	_, err := commands.NewClearPriorityOverrideCommand(kernel.NewUUID(), "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
