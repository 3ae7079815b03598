package aggregators

import (
	"fmt"

	"dealer-analytics/internal/shared/svcerrors"
)

// SummaryService errors
const (
	codeInvalidRange = "ANL_1000"

	codeEventSourceUnavailable = "ANL_9000"
)

// RollupService errors
const (
	codeInternalDayBucketRollupFailed = "AGG_9000"
	codeInternalDayBucketStoreFailed  = "AGG_9001"
)

// errInvalidRange returns an error when the requested range cannot be summarized.
func errInvalidRange(msg string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidRange, msg, nil)
}

// errEventSourceUnavailable returns an error when events cannot be fetched and no snapshot exists.
func errEventSourceUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUpstreamUnavailableError(codeEventSourceUnavailable, "analytics data is temporarily unavailable", cause)
}

// errInternalDayBucketRollupFailed returns an error when a partition cannot be merged into its bucket.
func errInternalDayBucketRollupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDayBucketRollupFailed, fmt.Errorf("dayBucketRollupFailed: %w", cause))
}

// errInternalDayBucketStoreFailed returns an error when a day bucket store operation fails.
func errInternalDayBucketStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDayBucketStoreFailed, fmt.Errorf("dayBucketStoreFailed: %w", cause))
}
