package ingestors

import (
	"fmt"

	"dealer-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed      = "EVT_1000"
	codeBatchAlreadyProcessed = "EVT_1001"

	codeInternalEventBatchStoreFailed     = "EVT_9000"
	codeInternalDayPartitionPublishFailed = "EVT_9001"
)

// errValidationFailed returns an error for validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errEventBatchAlreadyProcessed returns an error when an event batch has already been accepted.
func errEventBatchAlreadyProcessed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeBatchAlreadyProcessed, "event batch already processed", cause)
}

// errInternalEventBatchStoreFailed returns an error when an event batch store operation fails.
func errInternalEventBatchStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventBatchStoreFailed, fmt.Errorf("eventBatchStoreFailed: %w", cause))
}

// errInternalDayPartitionPublishFailed returns an error when day partitions cannot be published.
func errInternalDayPartitionPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDayPartitionPublishFailed, fmt.Errorf("dayPartitionPublishFailed: %w", cause))
}
