package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"min":          "must be at least %s",
	"max":          "must be at most %s",
	"oneof":        "must be one of [%s]",
	"e164":         "must be a valid phone number in international format",
	"phone_number": "phone number must be in international format, for example +12155551234",
	"required_if":  "is required",
	"dive":         "is invalid",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientScreeningUnavailable          = "this assessment is not available right now, please try again later"
	ErrClientScreeningSessionNotFound      = "we could not find the assessment you were working on"
	ErrClientPhoneNumberRequired           = "please provide a phone number before continuing"
	ErrClientScreeningNotSkippable         = "this assessment cannot be skipped"
	ErrClientPhoneGateNotOpen              = "there is no pending phone number request for this assessment"
	ErrClientScreeningAlreadyStarting      = "your assessment is already being prepared, please wait"
	ErrClientInvalidAnswerCount            = "please select a valid number of answers"
	ErrClientFreeformAnswerRequired        = "please enter an answer"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevReadBody                  = "failed to read body"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevURLParamValidationFailed  = "url param %s failed validation"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevServerProcess             = "server failed to process request"
	ErrDevTooManyRequests           = "rate limit exceeded for %s"
	ErrDevRequestBodyTooLarge       = "request body exceeds %d bytes"
	ErrDevRequestAborted            = "request aborted by caller"
	ErrDevOutboundRateLimitWait     = "outbound rate limiter wait failed"

	// Authentication messages
	ErrDevAuthSigningMethod  = "unexpected signing method"
	ErrDevAuthTokenInvalid   = "invalid token"
	ErrDevAuthTokenMissing   = "token missing"
	ErrDevAuthAccountMissing = "account id claim missing from token"

	// Cobalt API messages
	ErrDevCobaltAPIRequestFailed = "cobalt api request to %s failed with status %d"
	ErrDevCobaltAPIDecodeFailed  = "failed to decode cobalt api response from %s"

	// Screening messages
	ErrDevUnknownActiveFlowVersion         = "Unknown Active Flow Version"
	ErrDevIncompleteSessionNotFound        = "screening session %s is not among incomplete sessions"
	ErrDevMissingScreeningFlowID           = "screening flow id is required"
	ErrDevPhoneGateOpen                    = "phone collection gate is open for this flow"
	ErrDevPhoneGateNotOpen                 = "phone collection gate is not open for this flow"
	ErrDevFlowVersionNotSkippable          = "screening flow version %s is not skippable"
	ErrDevSessionCreateInProgress          = "screening session creation already in progress"
	ErrDevInvalidDestination               = "invalid screening session destination"
	ErrDevMissingDestinationPatientOrderID = "destination %s requires context.patientOrderId"
	ErrDevUnsupportedQuestionConfiguration = "freeform text question %s declares supplement answer options"
	ErrDevAnswerCountOutOfRange            = "answer count %d is outside [%d, %d]"
	ErrDevUnknownAnswerOption              = "answer option %s does not belong to question %s"
	ErrDevFreeformAnswerRequired           = "freeform text question requires a text answer"
	ErrDevNoNextStep                       = "screening session %s has neither a next question nor a destination"
	ErrDevInvalidFlowTransition            = "invalid screening flow transition from %s to %s"

	// Redis messages
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data into redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisUnlock         = "failed to unlock redis lock"
	ErrDevRedisDecodeSnapshot = "failed to decode cached snapshot for key %s"

	// Mongo messages
	ErrDevDBFailedToInsertDocument = "failed to insert document into database"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"
)
