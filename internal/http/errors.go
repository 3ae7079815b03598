package http

import (
	"dealer-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidSummaryQuery = "ANL_1000"
	codeUnauthenticated     = "AUTH_1000"
)

// errInvalidSummaryQuery returns an error when the summary query parameters cannot be parsed.
func errInvalidSummaryQuery(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidSummaryQuery, msg, cause)
}

func errUnauthenticated() *svcerrors.ServiceError {
	return svcerrors.NewUnauthenticatedError(codeUnauthenticated, "authentication required", nil)
}
