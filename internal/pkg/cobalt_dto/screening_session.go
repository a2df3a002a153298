package cobalt_dto

import "time"

type ScreeningSession struct {
	ScreeningSessionID             string                       `json:"screeningSessionId"`
	ScreeningFlowVersionID         string                       `json:"screeningFlowVersionId"`
	TargetAccountID                string                       `json:"targetAccountId,omitempty"`
	CreatedByAccountID             string                       `json:"createdByAccountId,omitempty"`
	PatientOrderID                 string                       `json:"patientOrderId,omitempty"`
	Completed                      bool                         `json:"completed"`
	Skipped                        bool                         `json:"skipped"`
	CrisisIndicated                bool                         `json:"crisisIndicated"`
	Created                        time.Time                    `json:"created"`
	CreatedDescription             string                       `json:"createdDescription,omitempty"`
	NextScreeningQuestionContextID string                       `json:"nextScreeningQuestionContextId,omitempty"`
	ScreeningSessionDestination    *ScreeningSessionDestination `json:"screeningSessionDestination,omitempty"`
}

type ScreeningSessionDestination struct {
	ScreeningSessionDestinationID string            `json:"screeningSessionDestinationId"`
	Context                       map[string]string `json:"context,omitempty"`
}

type FindScreeningSessionsResponse struct {
	ScreeningSessions []ScreeningSession `json:"screeningSessions"`
}

type ScreeningSessionResponse struct {
	ScreeningSession ScreeningSession `json:"screeningSession"`
}

type CreateScreeningSessionRequest struct {
	ScreeningFlowVersionID string `json:"screeningFlowVersionId"`
	TargetAccountID        string `json:"targetAccountId,omitempty"`
	PatientOrderID         string `json:"patientOrderId,omitempty"`
}

type FindScreeningSessionsQuery struct {
	ScreeningFlowID string
	TargetAccountID string
	PatientOrderID  string
}
