package models

import "time"

const (
	minuteKeyLayout  = "20060102T1504Z"
	instantKeyLayout = "20060102T150405.000000000Z"
)

// SummaryRange is the interval a summary is computed over. Window is set when
// the interval was derived from a "last N" selector and empty for explicit ranges.
type SummaryRange struct {
	Start  time.Time
	End    time.Time
	Window RangeWindow
}

// NewWindowRange resolves window to the interval ending at now.
func NewWindowRange(window RangeWindow, now time.Time) SummaryRange {
	start, end := window.Bounds(now)
	return SummaryRange{Start: start, End: end, Window: window}
}

// NewExplicitRange is an interval given by its bounds.
func NewExplicitRange(start, end time.Time) SummaryRange {
	return SummaryRange{Start: start.UTC(), End: end.UTC()}
}

// IsWindow reports whether the range came from a selector.
func (r SummaryRange) IsWindow() bool {
	return r.Window != ""
}

// CacheKey identifies the computed summary. Window ranges are truncated to the
// minute so that requests within one minute share an entry; explicit ranges
// are keyed by their exact instants.
func (r SummaryRange) CacheKey() string {
	if r.IsWindow() {
		return "range-" + string(r.Window) + "_" +
			r.Start.UTC().Truncate(time.Minute).Format(minuteKeyLayout) + "_" +
			r.End.UTC().Truncate(time.Minute).Format(minuteKeyLayout)
	}
	return r.instantKey()
}

// SnapshotKey identifies the last good summary kept for fallback. There is one
// snapshot per selector, overwritten on every computation.
func (r SummaryRange) SnapshotKey() string {
	if r.IsWindow() {
		return "range-" + string(r.Window)
	}
	return r.instantKey()
}

func (r SummaryRange) instantKey() string {
	return r.Start.UTC().Format(instantKeyLayout) + "_" + r.End.UTC().Format(instantKeyLayout)
}
