package events

import (
	"dealer-analytics/internal/models"
)

// DayPartitionEvent carries the slice of one intake batch that falls on a single
// UTC calendar day. The ingestion service publishes one per day touched by a batch,
// and the rollup service merges it into that day's bucket.
//
// Example JSON:
//
//	{
//	  "batchId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "source": "web",
//	  "day": "2025-12-28",
//	  "events": [
//	    {"kind": "$pageview", "timestamp": "2025-12-28T18:03:15Z", "distinctId": "v-1",
//	     "properties": {"currentUrl": "https://dealer.example.com/trucks/123"}},
//	    {"kind": "trade_in_submitted", "timestamp": "2025-12-28T18:04:02Z", "distinctId": "v-1"}
//	  ]
//	}
//
// Two events of batch 01ARZ3... landed on 2025-12-28; any events of the same batch
// on other days travel in their own DayPartitionEvent.
type DayPartitionEvent struct {
	BatchID string         `json:"batchId"`
	Source  string         `json:"source"`
	Day     string         `json:"day"` // YYYY-MM-DD, UTC
	Events  []models.Event `json:"events"`
}
