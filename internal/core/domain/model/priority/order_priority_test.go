package priority_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/priority"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var computedAt = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func newPriority(t *testing.T, score string) *priority.OrderPriority {
	t.Helper()
	p, err := priority.NewOrderPriority(
		kernel.NewUUID(),
		decimal.RequireFromString(score),
		priority.Contributions{Base: decimal.NewFromInt(100)},
		priority.Factors{Tier: priority.Gold, OrderValue: kernel.MustMoney("1200")},
		computedAt,
	)
	require.NoError(t, err)
	return p
}

func TestNewOrderPriority(t *testing.T) {
	t.Run("should derive level from score", func(t *testing.T) {
		p := newPriority(t, "205.126")

		require.NoError(t, p.Validate())
		assert.Equal(t, "205.13", p.Score().String())
		assert.Equal(t, priority.Urgent, p.Level())
		assert.False(t, p.HasManualOverride())
		assert.Equal(t, computedAt, p.ComputedAt())
	})

	t.Run("should fail with invalid order id and timestamp", func(t *testing.T) {
		_, err := priority.NewOrderPriority(kernel.UUID{}, decimal.Zero, priority.Contributions{}, priority.Factors{}, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "computedAt is invalid")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p priority.OrderPriority

		require.ErrorIs(t, p.Validate(), priority.ErrOrderPriorityIsNotConstructed)
	})
}

func TestOrderPriority_Override(t *testing.T) {
	t.Run("override pins the level and blocks recomputation", func(t *testing.T) {
		p := newPriority(t, "120")

		require.NoError(t, p.Override(priority.Critical, "supervisor-7", "VIP escalation", computedAt.Add(time.Hour)))

		changed := p.Recompute(decimal.NewFromInt(300), priority.Contributions{}, priority.Factors{}, computedAt.Add(2*time.Hour))

		assert.False(t, changed)
		assert.Equal(t, priority.Critical, p.Level())
		assert.Equal(t, "120", p.Score().String())
		assert.Equal(t, "supervisor-7", p.OverriddenBy())
		assert.Equal(t, "VIP escalation", p.OverrideReason())
	})

	t.Run("override requires actor and reason", func(t *testing.T) {
		p := newPriority(t, "120")

		require.ErrorIs(t, p.Override(priority.High, "", "reason", computedAt), errs.ErrValueIsRequired)
		require.ErrorIs(t, p.Override(priority.High, "actor", " ", computedAt), errs.ErrValueIsRequired)
		require.Error(t, p.Override(priority.UnknownLevel, "actor", "reason", computedAt))
	})

	t.Run("clearing restores the computed level", func(t *testing.T) {
		p := newPriority(t, "120")
		require.NoError(t, p.Override(priority.Critical, "supervisor-7", "VIP escalation", computedAt))

		require.NoError(t, p.ClearOverride("supervisor-7", computedAt.Add(time.Hour)))

		assert.False(t, p.HasManualOverride())
		assert.Equal(t, priority.Normal, p.Level())
		assert.True(t, p.Recompute(decimal.NewFromInt(260), priority.Contributions{}, priority.Factors{}, computedAt))
		assert.Equal(t, priority.Critical, p.Level())
	})

	t.Run("clearing without override fails", func(t *testing.T) {
		p := newPriority(t, "120")

		require.ErrorIs(t, p.ClearOverride("supervisor-7", computedAt), priority.ErrNoActiveOverride)
	})
}

func TestRestoreOrderPriority(t *testing.T) {
	t.Run("derives level when no override is stored", func(t *testing.T) {
		p, err := priority.RestoreOrderPriority(
			kernel.NewUUID(), decimal.NewFromInt(160), priority.Low,
			priority.Contributions{}, priority.Factors{}, computedAt, false, "", "",
		)

		require.NoError(t, err)
		assert.Equal(t, priority.High, p.Level())
	})

	t.Run("keeps stored level for an override", func(t *testing.T) {
		p, err := priority.RestoreOrderPriority(
			kernel.NewUUID(), decimal.NewFromInt(160), priority.Low,
			priority.Contributions{}, priority.Factors{}, computedAt, true, "hold", "ops-1",
		)

		require.NoError(t, err)
		assert.Equal(t, priority.Low, p.Level())
		assert.True(t, p.HasManualOverride())
	})
}
