package models

// EventBatch is one intake request: the events posted together under a batch ID.
type EventBatch struct {
	BatchID string  `json:"batchId"`
	Source  string  `json:"source"`
	Events  []Event `json:"events"`
}
