package constvars

const (
	ResponseUnknown = "unknown"

	CheckScreeningFlowSuccessMessage      = "screening flow checked successfully"
	StartScreeningFlowSuccessMessage      = "screening flow started successfully"
	ResumeScreeningSessionSuccessMessage  = "screening session resumed successfully"
	SkipScreeningFlowSuccessMessage       = "screening flow skipped successfully"
	CompletePhoneCollectionSuccessMessage = "phone number saved successfully"
	ResolveDestinationSuccessMessage      = "destination resolved successfully"
	GetScreeningQuestionSuccessMessage    = "get screening question successfully"
	AnswerScreeningQuestionSuccessMessage = "screening question answered successfully"
	HealthCheckSuccessMessage             = "service is healthy"
)
