package kernel

import (
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
)

// TimeWindow is a half-open interval [start, end). A window whose end is
// before its start spans midnight and is normalized by adding 24h to end.
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// NewTimeWindow normalizes overnight spans. A window with end == start is
// empty and rejected.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return TimeWindow{}, errs.NewValueIsRequiredError("time window bounds")
	}
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	if !end.After(start) {
		return TimeWindow{}, errs.NewValueIsInvalidErrorWithCause(
			"time window is invalid",
			fmt.Errorf("end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}
	return TimeWindow{start: start, end: end}, nil
}

// RestoreTimeWindow rebuilds an already normalized window from storage.
func RestoreTimeWindow(start, end time.Time) (TimeWindow, error) {
	return NewTimeWindow(start, end)
}

func (w TimeWindow) Start() time.Time { return w.start }
func (w TimeWindow) End() time.Time { return w.end }

func (w TimeWindow) Duration() time.Duration {
	return w.end.Sub(w.start)
}

// Overlaps reports whether the windows share any instant. Touching windows
// (one ends exactly when the other starts) do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

func (w TimeWindow) IsZero() bool {
	return w.start.IsZero() && w.end.IsZero()
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.start.Format(time.RFC3339), w.end.Format(time.RFC3339))
}
