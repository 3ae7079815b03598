package models

import "slices"

// DayBucket holds every stored event whose timestamp falls on one UTC calendar day.
// BatchIDs lists the batches already rolled in, so a replayed batch is not counted twice.
type DayBucket struct {
	Date     string   `json:"date"` // YYYY-MM-DD
	BatchIDs []string `json:"batchIds"`
	Events   []Event  `json:"events"`
}

func NewEmptyDayBucket(date string) *DayBucket {
	return &DayBucket{
		Date:     date,
		BatchIDs: []string{},
		Events:   []Event{},
	}
}

func (b *DayBucket) IsNewBucket() bool {
	return len(b.BatchIDs) == 0
}

func (b *DayBucket) HasBatch(batchID string) bool {
	return slices.Contains(b.BatchIDs, batchID)
}
