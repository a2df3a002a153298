package responses

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
)

// ScreeningFlowDecision is what the web client should do for a screening flow.
// Navigation is set only once the flow leaves the page.
type ScreeningFlowDecision struct {
	State                        models.FlowState   `json:"state"`
	ScreeningFlowID              string             `json:"screeningFlowId,omitempty"`
	ActiveScreeningFlowVersionID string             `json:"activeScreeningFlowVersionId,omitempty"`
	HasCompletedScreening        bool               `json:"hasCompletedScreening"`
	HasIncompleteScreening       bool               `json:"hasIncompleteScreening"`
	IncompleteSessionCount       int                `json:"incompleteSessionCount"`
	DidCheckScreeningSessions    bool               `json:"didCheckScreeningSessions"`
	ScreeningSessionID           string             `json:"screeningSessionId,omitempty"`
	PhoneGate                    *models.PhoneGate  `json:"phoneGate,omitempty"`
	Navigation                   *models.Navigation `json:"navigation,omitempty"`
}

type ScreeningQuestionContext struct {
	ScreeningQuestionContextID         string                             `json:"screeningQuestionContextId"`
	PreviousScreeningQuestionContextID string                             `json:"previousScreeningQuestionContextId,omitempty"`
	ScreeningSessionID                 string                             `json:"screeningSessionId,omitempty"`
	ScreeningQuestion                  cobalt_dto.ScreeningQuestion       `json:"screeningQuestion"`
	ScreeningAnswerOptions             []cobalt_dto.ScreeningAnswerOption `json:"screeningAnswerOptions"`
	ScreeningAnswers                   []cobalt_dto.ScreeningAnswer       `json:"screeningAnswers"`
	PreviouslyAnswered                 bool                               `json:"previouslyAnswered"`
	ShowNextButton                     bool                               `json:"showNextButton"`
	AutoAdvance                        bool                               `json:"autoAdvance"`
}
