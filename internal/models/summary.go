package models

import "time"

// Summary is the outcome of aggregating the events of one time range.
// Percentages and averages are unrounded.
type Summary struct {
	RangeStart         time.Time        `json:"rangeStart"`
	RangeEnd           time.Time        `json:"rangeEnd"`
	TotalUsers         int              `json:"totalUsers"`
	TotalPageviews     int              `json:"totalPageviews"`
	TotalEvents        int              `json:"totalEvents"`
	BounceRate         float64          `json:"bounceRate"`
	PageviewsOverTime  []DailyPageviews `json:"pageviewsOverTime"`
	TopPages           []PageCount      `json:"topPages"`
	TopEvents          []EventCount     `json:"topEvents"`
	DeviceTypes        []DeviceShare    `json:"deviceTypes"`
	UserGrowth         float64          `json:"userGrowth"`
	AvgSessionDuration float64          `json:"avgSessionDuration"`
}

// DailyPageviews is one UTC calendar day of the page-view series.
type DailyPageviews struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Views int    `json:"views"`
}

type PageCount struct {
	Page  string `json:"page"`
	Views int    `json:"views"`
}

type EventCount struct {
	Event string `json:"event"`
	Count int    `json:"count"`
}

type DeviceShare struct {
	Device     string  `json:"device"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}
