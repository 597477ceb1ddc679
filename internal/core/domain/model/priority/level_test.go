package priority_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/priority"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForScore(t *testing.T) {
	tests := []struct {
		score    string
		expected priority.Level
	}{
		{score: "0", expected: priority.Normal},
		{score: "74", expected: priority.Low},
		{score: "74.99", expected: priority.Low},
		{score: "75", expected: priority.Normal},
		{score: "149.99", expected: priority.Normal},
		{score: "150", expected: priority.High},
		{score: "200", expected: priority.Urgent},
		{score: "250", expected: priority.Critical},
		{score: "1000", expected: priority.Critical},
		{score: "-5", expected: priority.Normal},
	}

	for _, tt := range tests {
		t.Run(tt.score, func(t *testing.T) {
			assert.Equal(t, tt.expected, priority.LevelForScore(decimal.RequireFromString(tt.score)))
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Run("should parse case-insensitively", func(t *testing.T) {
		l, err := priority.ParseLevel("URGENT")

		require.NoError(t, err)
		assert.Equal(t, priority.Urgent, l)
		assert.Equal(t, "urgent", l.String())
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := priority.ParseLevel("unknown")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "level is invalid")
	})
}

func TestLevel_Validate(t *testing.T) {
	require.NoError(t, priority.Critical.Validate())
	require.Error(t, priority.UnknownLevel.Validate())
	require.Error(t, priority.Level(42).Validate())
	assert.Equal(t, "unknown", priority.Level(42).String())
}
