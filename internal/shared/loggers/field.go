package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"
	FieldBatchID     = "batch_id"
	FieldDay         = "day"
	FieldRangeStart  = "range_start"
	FieldRangeEnd    = "range_end"
	FieldRangeWindow = "range_window"
	FieldEventCount  = "event_count"
	FieldSource      = "source"
)
