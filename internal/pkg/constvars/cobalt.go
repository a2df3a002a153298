package constvars

// Cobalt API resources.
const (
	ResourceScreeningSessions         = "/screening-sessions"
	ResourceScreeningFlowVersions     = "/screening-flow-versions"
	ResourceScreeningQuestionContexts = "/screening-question-contexts"
	ResourceAnswerQuestion            = "/answer-question"
	ResourceAccounts                  = "/accounts"
)

// Screening session destinations as sent by the Cobalt API.
const (
	DestinationCrisis                           = "CRISIS"
	DestinationContentList                      = "CONTENT_LIST"
	DestinationGroupSessionList                 = "GROUP_SESSION_LIST"
	DestinationOneOnOneProviderList             = "ONE_ON_ONE_PROVIDER_LIST"
	DestinationIcMhicScreeningSessionResults    = "IC_MHIC_SCREENING_SESSION_RESULTS"
	DestinationIcPatientScreeningSessionResults = "IC_PATIENT_SCREENING_SESSION_RESULTS"
	DestinationHome                             = "HOME"
)

const (
	DestinationContextPatientOrderID = "patientOrderId"
)

// Screening answer formats.
const (
	AnswerFormatSingleSelect = "SINGLE_SELECT"
	AnswerFormatMultiSelect  = "MULTI_SELECT"
	AnswerFormatFreeformText = "FREEFORM_TEXT"
)

// Web client routes.
const (
	RouteHome                    = "/"
	RouteResourceLibrary         = "/resource-library"
	RouteGroupSessions           = "/group-sessions"
	RouteConnectWithSupport      = "/connect-with-support"
	RouteMhicOrderAssessment     = "/ic/mhic/order-assessment/%s/%s"
	RouteMhicOrderAssessmentDone = "/ic/mhic/order-assessment/%s/complete"
	RoutePatientAssessment       = "/ic/patient/assessment/%s"
	RoutePatientAssessmentDone   = "/ic/patient/assessment-complete"
	RouteScreeningQuestion       = "/screening-questions/%s"
)

const (
	AnalyticsEventCrisisDestination = "CRISIS_DESTINATION_REACHED"
)

const (
	RedisKeyScreeningSessionsFormat = "screening_sessions:%s:%s:%s"
	RedisKeyFlowVersionsFormat      = "screening_flow_versions:%s"
	RedisKeyPhoneGateFormat         = "screening_phone_gate:%s:%s:%s"
	RedisKeyCreateSessionLockFormat = "screening_session_create_lock:%s:%s:%s"
)
