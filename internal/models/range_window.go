package models

import (
	"fmt"
	"time"
)

// RangeWindow is the coarse "last N" selector offered by the dashboard.
type RangeWindow string

const (
	RangeLast24Hours RangeWindow = "24h"
	RangeLast7Days   RangeWindow = "7d"
	RangeLast30Days  RangeWindow = "30d"
	RangeLast90Days  RangeWindow = "90d"
)

// NewRangeWindowFromString parses a selector such as "7d".
func NewRangeWindowFromString(s string) (RangeWindow, error) {
	switch w := RangeWindow(s); w {
	case RangeLast24Hours, RangeLast7Days, RangeLast30Days, RangeLast90Days:
		return w, nil
	default:
		return "", fmt.Errorf("invalid range window: %q", s)
	}
}

func (w RangeWindow) Duration() time.Duration {
	switch w {
	case RangeLast24Hours:
		return 24 * time.Hour
	case RangeLast7Days:
		return 7 * 24 * time.Hour
	case RangeLast30Days:
		return 30 * 24 * time.Hour
	case RangeLast90Days:
		return 90 * 24 * time.Hour
	default:
		panic(fmt.Sprintf("invalid RangeWindow: %q", w))
	}
}

// Bounds converts the selector into concrete UTC instants ending at now.
func (w RangeWindow) Bounds(now time.Time) (start, end time.Time) {
	end = now.UTC()
	return end.Add(-w.Duration()), end
}
