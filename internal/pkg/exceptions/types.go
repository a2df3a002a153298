package exceptions

import (
	"cobalt-screening-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrReadBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevReadBody)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrRequestAborted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusClientClosedRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevRequestAborted)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenAccountMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthAccountMissing)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrOutboundRateLimit = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientServerLongRespond, constvars.ErrDevOutboundRateLimitWait)
	}

	// Cobalt API
	ErrCobaltAPI = func(err error, statusCode int, resource string) *CustomError {
		clientStatus := constvars.StatusBadGateway
		if statusCode >= constvars.StatusBadRequest && statusCode < constvars.StatusInternalServerError {
			clientStatus = statusCode
		}
		return BuildNewCustomError(err, clientStatus, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCobaltAPIRequestFailed, resource, statusCode))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevCobaltAPIDecodeFailed, resource))
	}

	// Screening flow
	ErrMissingScreeningFlowID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevMissingScreeningFlowID)
	}
	ErrUnknownActiveFlowVersion = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientScreeningUnavailable, constvars.ErrDevUnknownActiveFlowVersion)
	}
	ErrIncompleteSessionNotFound = func(err error, screeningSessionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientScreeningSessionNotFound, fmt.Sprintf(constvars.ErrDevIncompleteSessionNotFound, screeningSessionID))
	}
	ErrNoNextStep = func(err error, screeningSessionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientScreeningUnavailable, fmt.Sprintf(constvars.ErrDevNoNextStep, screeningSessionID))
	}
	ErrInvalidFlowTransition = func(err error, from, to string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidFlowTransition, from, to))
	}
	ErrSessionCreateInProgress = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientScreeningAlreadyStarting, constvars.ErrDevSessionCreateInProgress)
	}

	// Phone collection gate
	ErrPhoneGateOpen = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientPhoneNumberRequired, constvars.ErrDevPhoneGateOpen)
	}
	ErrPhoneGateNotOpen = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientPhoneGateNotOpen, constvars.ErrDevPhoneGateNotOpen)
	}
	ErrFlowVersionNotSkippable = func(err error, screeningFlowVersionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientScreeningNotSkippable, fmt.Sprintf(constvars.ErrDevFlowVersionNotSkippable, screeningFlowVersionID))
	}

	// Destinations
	ErrInvalidDestination = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevInvalidDestination)
	}
	ErrMissingDestinationPatientOrderID = func(err error, destinationID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMissingDestinationPatientOrderID, destinationID))
	}

	// Questions
	ErrUnsupportedQuestionConfiguration = func(err error, screeningQuestionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevUnsupportedQuestionConfiguration, screeningQuestionID))
	}
	ErrAnswerCountOutOfRange = func(err error, count, minimum, maximum int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientInvalidAnswerCount, fmt.Sprintf(constvars.ErrDevAnswerCountOutOfRange, count, minimum, maximum))
	}
	ErrUnknownAnswerOption = func(err error, screeningAnswerOptionID, screeningQuestionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownAnswerOption, screeningAnswerOptionID, screeningQuestionID))
	}
	ErrFreeformAnswerRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessableEntity, constvars.ErrClientFreeformAnswerRequired, constvars.ErrDevFreeformAnswerRequired)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
	ErrRedisDecodeSnapshot = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisDecodeSnapshot, redisKey))
	}

	// Mongo DB
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// Default Server
	ErrTooManyRequests = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevTooManyRequests, key))
	}
	ErrRequestBodyTooLarge = func(err error, limit int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooLarge, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevRequestBodyTooLarge, limit))
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
