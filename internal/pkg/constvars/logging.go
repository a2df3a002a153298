package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingResponseCountKey  = "response_count"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingOperationKey      = "operation"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingQueueNameKey      = "queue_name"
	LoggingURLKey            = "url"

	LoggingAccountIDKey               = "account_id"
	LoggingScreeningFlowIDKey         = "screening_flow_id"
	LoggingScreeningFlowVersionIDKey  = "screening_flow_version_id"
	LoggingScreeningSessionIDKey      = "screening_session_id"
	LoggingScreeningQuestionContextID = "screening_question_context_id"
	LoggingPatientOrderIDKey          = "patient_order_id"
	LoggingDestinationIDKey           = "destination_id"
	LoggingFlowStateKey               = "flow_state"
	LoggingSessionCountKey            = "session_count"
	LoggingIncompleteSessionCountKey  = "incomplete_session_count"
	LoggingPhoneFingerprintKey        = "phone_fingerprint"
	LoggingNavigationURLKey           = "navigation_url"
	LoggingAnalyticsEventKey          = "analytics_event"
)
