package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"dealer-analytics/internal/models"
	"dealer-analytics/internal/shared/loggers"
	"dealer-analytics/internal/shared/metrics"
	"dealer-analytics/internal/shared/ulid"
	"dealer-analytics/internal/shared/validators"
	"dealer-analytics/internal/stores"
	"dealer-analytics/internal/streams"
)

const (
	maxBatchBytes = 2 * 1024 * 1024

	// DefaultSource names batches posted without an explicit source.
	DefaultSource = "web"
)

const (
	FormatJSON = "json"
)

var (
	// batch IDs and sources become storage path segments
	batchIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)
	sourcePattern  = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID  string
	Accepted int
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch stores a JSON array of events and hands it to the day rollup.
	IngestBatch(ctx context.Context, source string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
}

type ingestionService struct {
	batchSplitter        BatchSplitter
	batchStore           stores.EventBatchStore
	dayPartitionProducer streams.DayPartitionProducer
	validate             *validators.Validate
}

func NewIngestionService(batchSplitter BatchSplitter, batchStore stores.EventBatchStore, dayPartitionProducer streams.DayPartitionProducer) IngestionService {
	return &ingestionService{
		batchSplitter:        batchSplitter,
		batchStore:           batchStore,
		dayPartitionProducer: dayPartitionProducer,
		validate:             validators.New(),
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, source string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	source = strings.ToLower(strings.TrimSpace(source))
	if source == "" {
		source = DefaultSource
	}
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting batch with source: %s, idempotency key: %s, format: %s", source, idempotencyKey, format)

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULID()
	}

	eventList, err := s.validateEventBatch(source, batchID, format, r)
	if err != nil {
		return nil, err
	}

	eventBatch := &models.EventBatch{
		BatchID: batchID,
		Source:  source,
		Events:  eventList,
	}

	err = s.batchStore.Put(ctx, eventBatch)
	if err != nil {
		if errors.Is(err, stores.ErrEventBatchAlreadyExist) {
			svcError := errEventBatchAlreadyProcessed(err)
			metricBatchIngestedTotal.WithLabelValues(source, svcError.Code).Inc()
			return nil, svcError
		}
		svcError := errInternalEventBatchStoreFailed(err)
		metricBatchIngestedTotal.WithLabelValues(source, svcError.Code).Inc()
		return nil, svcError
	}

	partitions := s.batchSplitter.Split(eventBatch)
	err = s.dayPartitionProducer.Produce(ctx, partitions)
	if err != nil {
		svcError := errInternalDayPartitionPublishFailed(err)
		metricBatchIngestedTotal.WithLabelValues(source, svcError.Code).Inc()
		return nil, svcError
	}

	logger.Info().
		Str(loggers.FieldBatchID, batchID).
		Str(loggers.FieldSource, source).
		Int(loggers.FieldEventCount, len(eventList)).
		Int("day_count", len(partitions)).
		Msg("event batch accepted")
	metricBatchIngestedTotal.WithLabelValues(source, metrics.ValueNoError).Inc()
	metricEventsIngestedTotal.WithLabelValues(source).Add(float64(len(eventList)))
	return &IngestResult{BatchID: batchID, Accepted: len(eventList)}, nil
}

func (s *ingestionService) validateEventBatch(source, batchID, format string, r io.Reader) ([]models.Event, error) {
	if !sourcePattern.MatchString(source) {
		return nil, errValidationFailed(fmt.Sprintf("invalid source: %q", source), nil)
	}
	if !batchIDPattern.MatchString(batchID) {
		return nil, errValidationFailed("invalid idempotency key: use up to 128 letters, digits, '.', '_' or '-'", nil)
	}

	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxBatchBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxBatchBytes {
		return nil, errValidationFailed("batch too large: must be <= 2MB", nil)
	}

	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}

	eventList, err := s.parseJSON(buf)
	if err != nil {
		return nil, err
	}
	if len(eventList) == 0 {
		return nil, errValidationFailed("events cannot be empty", nil)
	}
	return eventList, nil
}

// incomingEvent is the intake wire shape of an event.
type incomingEvent struct {
	Kind       string             `json:"kind" validate:"required,max=256"`
	Timestamp  string             `json:"timestamp" validate:"required"`
	DistinctID string             `json:"distinctId" validate:"max=256"`
	Properties incomingProperties `json:"properties"`
}

// incomingProperties keeps sessionDuration raw; a non-numeric value is dropped.
type incomingProperties struct {
	DistinctID      string          `json:"distinctId" validate:"max=256"`
	CurrentURL      *string         `json:"currentUrl" validate:"omitempty,max=2048"`
	DeviceType      *string         `json:"deviceType" validate:"omitempty,max=64"`
	SessionDuration json.RawMessage `json:"sessionDuration"`
	UserAgent       string          `json:"userAgent" validate:"max=1024"`
}

// parseJSON parses buf as a JSON array of event objects.
func (s *ingestionService) parseJSON(buf []byte) ([]models.Event, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(buf, &items); err != nil {
		return nil, errValidationFailed("invalid json: expected an array of events", err)
	}

	eventList := make([]models.Event, 0, len(items))
	for i, item := range items {
		var in incomingEvent
		if err := json.Unmarshal(item, &in); err != nil {
			return nil, errValidationFailed(fmt.Sprintf("item at index %d: invalid event object", i), err)
		}
		event, err := s.toEvent(&in, i)
		if err != nil {
			return nil, err
		}
		eventList = append(eventList, event)
	}
	return eventList, nil
}

func (s *ingestionService) toEvent(in *incomingEvent, index int) (models.Event, error) {
	normalizeIncomingEvent(in)
	if err := s.validate.Struct(in); err != nil {
		return models.Event{}, errValidationFailed(fmt.Sprintf("item at index %d: %s", index, validators.Describe(err)), err)
	}

	ts, err := time.Parse(time.RFC3339Nano, in.Timestamp)
	if err != nil {
		return models.Event{}, errValidationFailed(fmt.Sprintf("item at index %d: invalid time format: %s", index, in.Timestamp), nil)
	}

	event := models.Event{
		Kind:       in.Kind,
		Timestamp:  ts.UTC(),
		DistinctID: in.DistinctID,
		Properties: models.EventProperties{
			DistinctID:      in.Properties.DistinctID,
			CurrentURL:      in.Properties.CurrentURL,
			DeviceType:      in.Properties.DeviceType,
			SessionDuration: models.NumberOrNil(in.Properties.SessionDuration),
			UserAgent:       in.Properties.UserAgent,
		},
	}
	if event.Properties.DeviceType == nil && event.Properties.UserAgent != "" {
		if device, ok := classifyDevice(event.Properties.UserAgent); ok {
			event.Properties.DeviceType = &device
		}
	}
	return event, nil
}

// normalizeIncomingEvent trims every string and turns blank optional values into absent ones.
func normalizeIncomingEvent(in *incomingEvent) {
	in.Kind = strings.TrimSpace(in.Kind)
	in.Timestamp = strings.TrimSpace(in.Timestamp)
	in.DistinctID = strings.TrimSpace(in.DistinctID)

	props := &in.Properties
	props.DistinctID = strings.TrimSpace(props.DistinctID)
	props.UserAgent = strings.TrimSpace(props.UserAgent)
	props.CurrentURL = trimOptional(props.CurrentURL)
	props.DeviceType = trimOptional(props.DeviceType)
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
