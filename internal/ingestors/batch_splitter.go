package ingestors

import (
	"slices"

	"dealer-analytics/internal/events"
	"dealer-analytics/internal/models"
)

// BatchSplitter cuts an intake batch into one partition per UTC calendar day.
//
//go:generate mockgen -source=batch_splitter.go -destination=./mocks/batch_splitter_mock.go -package=mocks
type BatchSplitter interface {
	Split(batch *models.EventBatch) []events.DayPartitionEvent
}

type dayBatchSplitter struct{}

func NewDayBatchSplitter() BatchSplitter {
	return &dayBatchSplitter{}
}

// Split keeps the batch order of events within a day. Partitions are ordered by day.
func (s *dayBatchSplitter) Split(batch *models.EventBatch) []events.DayPartitionEvent {
	byDay := make(map[string][]models.Event)
	for _, event := range batch.Events {
		day := models.DayKey(event.Timestamp)
		byDay[day] = append(byDay[day], event)
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	slices.Sort(days)

	partitions := make([]events.DayPartitionEvent, 0, len(days))
	for _, day := range days {
		partitions = append(partitions, events.DayPartitionEvent{
			BatchID: batch.BatchID,
			Source:  batch.Source,
			Day:     day,
			Events:  byDay[day],
		})
	}
	return partitions
}
