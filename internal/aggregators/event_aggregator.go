package aggregators

import (
	"cmp"
	"net/url"
	"slices"
	"strings"
	"time"

	"dealer-analytics/internal/models"
)

// topListLimit bounds TopPages and TopEvents.
const topListLimit = 10

// EventAggregator computes a Summary from the materialized events of a range.
//
// Aggregate is pure: it performs no I/O, never mutates events, and never fails.
// Malformed optional fields fall back to their documented defaults. Calendar days
// are UTC. Rankings order by count descending, then by key ascending.
//
//go:generate mockgen -source=event_aggregator.go -destination=./mocks/event_aggregator_mock.go -package=mocks
type EventAggregator interface {
	Aggregate(events []models.Event, rangeStart, rangeEnd time.Time) *models.Summary
}

type eventAggregator struct{}

func NewEventAggregator() EventAggregator {
	return &eventAggregator{}
}

func (a *eventAggregator) Aggregate(events []models.Event, rangeStart, rangeEnd time.Time) *models.Summary {
	mid := rangeStart.Add(rangeEnd.Sub(rangeStart) / 2)

	var (
		pageviews, otherEvents int
		sessionTotal           float64
		sessionCount           int

		pageCounts   = make(map[string]int)
		kindCounts   = make(map[string]int)
		deviceCounts = make(map[string]int)
		dailyViews   = make(map[string]int)

		// every identity seen, with its page-view count
		viewsByUser = make(map[string]int)
		firstHalf   = make(map[string]struct{})
		secondHalf  = make(map[string]struct{})
	)

	for i := range events {
		event := &events[i]

		id, hasID := event.Identity()
		if hasID {
			if _, seen := viewsByUser[id]; !seen {
				viewsByUser[id] = 0
			}
			if event.Timestamp.Before(mid) {
				firstHalf[id] = struct{}{}
			} else {
				secondHalf[id] = struct{}{}
			}
		}

		if event.IsPageview() {
			pageviews++
			pageCounts[pageKey(event)]++
			dailyViews[models.DayKey(event.Timestamp)]++
			if hasID {
				viewsByUser[id]++
			}
		} else {
			otherEvents++
			kindCounts[event.Kind]++
		}

		deviceCounts[event.Device()]++

		if seconds, ok := event.SessionSeconds(); ok {
			sessionTotal += seconds
			sessionCount++
		}
	}

	return &models.Summary{
		RangeStart:         rangeStart,
		RangeEnd:           rangeEnd,
		TotalUsers:         len(viewsByUser),
		TotalPageviews:     pageviews,
		TotalEvents:        otherEvents,
		BounceRate:         bounceRate(viewsByUser),
		PageviewsOverTime:  dailySeries(dailyViews, rangeStart, rangeEnd),
		TopPages:           topPages(pageCounts),
		TopEvents:          topEvents(kindCounts),
		DeviceTypes:        deviceShares(deviceCounts, len(events)),
		UserGrowth:         growth(len(firstHalf), len(secondHalf)),
		AvgSessionDuration: ratio(sessionTotal, float64(sessionCount)),
	}
}

// pageKey is the URL path of an absolute currentUrl; otherwise the raw value,
// or UnknownValue when the property is absent.
func pageKey(event *models.Event) string {
	raw := event.Properties.CurrentURL
	if raw == nil {
		return models.UnknownValue
	}

	u, err := url.Parse(*raw)
	if err != nil || !u.IsAbs() {
		return *raw
	}
	if u.Opaque != "" {
		return u.Opaque
	}
	if path := u.EscapedPath(); path != "" {
		return path
	}
	return "/"
}

// bounceRate is the share of identities with exactly one page view.
func bounceRate(viewsByUser map[string]int) float64 {
	bounced := 0
	for _, views := range viewsByUser {
		if views == 1 {
			bounced++
		}
	}
	return 100 * ratio(float64(bounced), float64(len(viewsByUser)))
}

// growth compares distinct users of the two halves. An empty first half yields 0.
func growth(firstHalf, secondHalf int) float64 {
	return 100 * ratio(float64(secondHalf-firstHalf), float64(firstHalf))
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func dailySeries(dailyViews map[string]int, rangeStart, rangeEnd time.Time) []models.DailyPageviews {
	days := models.DaysInRange(rangeStart, rangeEnd)
	series := make([]models.DailyPageviews, 0, len(days))
	for _, day := range days {
		key := models.DayKey(day)
		series = append(series, models.DailyPageviews{Date: key, Views: dailyViews[key]})
	}
	return series
}

func topPages(counts map[string]int) []models.PageCount {
	ranked := rankByCount(counts, topListLimit)
	pages := make([]models.PageCount, 0, len(ranked))
	for _, r := range ranked {
		pages = append(pages, models.PageCount{Page: r.key, Views: r.count})
	}
	return pages
}

func topEvents(counts map[string]int) []models.EventCount {
	ranked := rankByCount(counts, topListLimit)
	kinds := make([]models.EventCount, 0, len(ranked))
	for _, r := range ranked {
		kinds = append(kinds, models.EventCount{Event: r.key, Count: r.count})
	}
	return kinds
}

func deviceShares(counts map[string]int, total int) []models.DeviceShare {
	ranked := rankByCount(counts, 0)
	shares := make([]models.DeviceShare, 0, len(ranked))
	for _, r := range ranked {
		shares = append(shares, models.DeviceShare{
			Device:     r.key,
			Count:      r.count,
			Percentage: 100 * ratio(float64(r.count), float64(total)),
		})
	}
	return shares
}

type rankedKey struct {
	key   string
	count int
}

// rankByCount sorts by count descending, then key ascending. limit <= 0 keeps all.
func rankByCount(counts map[string]int, limit int) []rankedKey {
	ranked := make([]rankedKey, 0, len(counts))
	for key, count := range counts {
		ranked = append(ranked, rankedKey{key: key, count: count})
	}

	slices.SortFunc(ranked, func(a, b rankedKey) int {
		if c := cmp.Compare(b.count, a.count); c != 0 {
			return c
		}
		return strings.Compare(a.key, b.key)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
