package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingResultIDKey   = "result_id"
	LoggingPatientIDKey  = "patient_id"
	LoggingExamIDKey     = "exam_id"
	LoggingExamNameKey   = "exam_name"
	LoggingAnalysisIDKey = "analysis_id"
	LoggingItemIndexKey  = "item_index"
)
