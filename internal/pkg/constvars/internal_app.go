package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ACCOUNT_KEY              ContextKey = "account"
)

const (
	REQUEST_ID_PREFIX = "CBLT_SCR_"
)

const (
	AuthorizationBearerPrefix = "Bearer "
)

const (
	RoleIdPatient       = "PATIENT"
	RoleIdMhic          = "MHIC"
	RoleIdAdministrator = "ADMINISTRATOR"
)

const (
	QueryParamSkipped     = "skipped"
	QueryParamRecommended = "recommended"
)

const (
	URLParamScreeningFlowID            = "screening_flow_id"
	URLParamScreeningQuestionContextID = "screening_question_context_id"
)
