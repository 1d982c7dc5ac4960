package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingVisitIDKey       = "visit_id"
	LoggingTokenNoKey       = "token_no"
	LoggingLocationIDKey    = "location_id"
	LoggingEmpNoKey         = "emp_no"
	LoggingSequenceKey      = "sequence"
	LoggingRowCountKey      = "row_count"
	LoggingQueueKey         = "queue"
	LoggingEntityKey        = "entity"
	LoggingActionKey        = "action"
	LoggingObjectNameKey    = "object_name"
	LoggingResponseCountKey = "response_count"
)
