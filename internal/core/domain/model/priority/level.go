package priority

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Level classifies an order's urgency.
type Level int

const (
	UnknownLevel Level = iota
	Low
	Normal
	High
	Urgent
	Critical
)

var (
	criticalThreshold = decimal.NewFromInt(250)
	urgentThreshold   = decimal.NewFromInt(200)
	highThreshold     = decimal.NewFromInt(150)
	lowThreshold      = decimal.NewFromInt(75)
)

func getLevelStrings() map[Level]string {
	return map[Level]string{
		UnknownLevel: "unknown",
		Low:          "low",
		Normal:       "normal",
		High:         "high",
		Urgent:       "urgent",
		Critical:     "critical",
	}
}

// LevelForScore maps a score onto a level:
//
//	score >= 250       critical
//	score >= 200       urgent
//	score >= 150       high
//	0 < score < 75     low
//	otherwise          normal
//
// A zero (or negative) score carries no signal and stays normal.
func LevelForScore(score decimal.Decimal) Level {
	switch {
	case score.GreaterThanOrEqual(criticalThreshold):
		return Critical
	case score.GreaterThanOrEqual(urgentThreshold):
		return Urgent
	case score.GreaterThanOrEqual(highThreshold):
		return High
	case score.IsPositive() && score.LessThan(lowThreshold):
		return Low
	default:
		return Normal
	}
}

// ParseLevel converts a level name (case-insensitive) into a Level.
func ParseLevel(s string) (Level, error) {
	for l, name := range getLevelStrings() {
		if l != UnknownLevel && strings.EqualFold(name, s) {
			return l, nil
		}
	}
	return UnknownLevel, errs.NewValueIsInvalidErrorWithCause("level is invalid", fmt.Errorf("%q is not a valid level", s))
}

func (l Level) Validate() error {
	if l <= UnknownLevel || l > Critical {
		return errs.NewValueIsInvalidErrorWithCause("level is invalid", fmt.Errorf("%d is not a valid level", l))
	}
	return nil
}

func (l Level) String() string {
	if s, ok := getLevelStrings()[l]; ok {
		return s
	}
	return "unknown"
}
