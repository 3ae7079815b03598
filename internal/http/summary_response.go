package http

import (
	"time"

	"dealer-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// SummaryResponse is the dashboard view of a summary. Percentages and averages
// are rounded to two decimals here and nowhere else.
type SummaryResponse struct {
	RangeStart         time.Time               `json:"rangeStart"`
	RangeEnd           time.Time               `json:"rangeEnd"`
	TotalUsers         int                     `json:"totalUsers"`
	TotalPageviews     int                     `json:"totalPageviews"`
	TotalEvents        int                     `json:"totalEvents"`
	BounceRate         float64                 `json:"bounceRate"`
	PageviewsOverTime  []models.DailyPageviews `json:"pageviewsOverTime"`
	TopPages           []models.PageCount      `json:"topPages"`
	TopEvents          []models.EventCount     `json:"topEvents"`
	DeviceTypes        []DeviceShareResponse   `json:"deviceTypes"`
	UserGrowth         float64                 `json:"userGrowth"`
	AvgSessionDuration float64                 `json:"avgSessionDuration"`
	Stale              bool                    `json:"stale"`
}

type DeviceShareResponse struct {
	Device     string  `json:"device"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

func newSummaryResponse(summary *models.Summary, stale bool) SummaryResponse {
	devices := make([]DeviceShareResponse, 0, len(summary.DeviceTypes))
	for _, d := range summary.DeviceTypes {
		devices = append(devices, DeviceShareResponse{
			Device:     d.Device,
			Count:      d.Count,
			Percentage: round2(d.Percentage),
		})
	}

	return SummaryResponse{
		RangeStart:         summary.RangeStart,
		RangeEnd:           summary.RangeEnd,
		TotalUsers:         summary.TotalUsers,
		TotalPageviews:     summary.TotalPageviews,
		TotalEvents:        summary.TotalEvents,
		BounceRate:         round2(summary.BounceRate),
		PageviewsOverTime:  nonNil(summary.PageviewsOverTime),
		TopPages:           nonNil(summary.TopPages),
		TopEvents:          nonNil(summary.TopEvents),
		DeviceTypes:        devices,
		UserGrowth:         round2(summary.UserGrowth),
		AvgSessionDuration: round2(summary.AvgSessionDuration),
		Stale:              stale,
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// nonNil keeps empty lists rendered as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
