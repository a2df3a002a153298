package requests

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
)

// ScreeningFlow is the body shared by the check, start, resume and phone gate endpoints.
// ScreeningFlowID and AccountID are filled from the URL and the access token.
type ScreeningFlow struct {
	ScreeningFlowID    string            `json:"-"`
	AccountID          string            `json:"-"`
	TargetAccountID    string            `json:"targetAccountId,omitempty"`
	PatientOrderID     string            `json:"patientOrderId,omitempty"`
	ScreeningSessionID string            `json:"screeningSessionId,omitempty"`
	InstantiateOnLoad  bool              `json:"instantiateOnLoad"`
	Skipped            bool              `json:"skipped"`
	RouteScope         models.RouteScope `json:"routeScope" validate:"omitempty,dive"`
	DestinationParams  map[string]string `json:"destinationParams,omitempty"`
}

// FlowKey returns the key used for the cache, the gate and the create lock.
func (r *ScreeningFlow) FlowKey() models.FlowKey {
	return models.FlowKey{
		AccountID:       r.TargetAccountIDOrSelf(),
		ScreeningFlowID: r.ScreeningFlowID,
		PatientOrderID:  r.PatientOrderID,
	}
}

func (r *ScreeningFlow) TargetAccountIDOrSelf() string {
	if r.TargetAccountID != "" {
		return r.TargetAccountID
	}
	return r.AccountID
}

type CompletePhoneCollection struct {
	ScreeningFlow
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
}

type AnswerQuestion struct {
	ScreeningQuestionContextID string                                `json:"-"`
	AccountID                  string                                `json:"-"`
	ScreeningFlowID            string                                `json:"screeningFlowId,omitempty"`
	TargetAccountID            string                                `json:"targetAccountId,omitempty"`
	PatientOrderID             string                                `json:"patientOrderId,omitempty"`
	Answers                    []cobalt_dto.ScreeningAnswerSelection `json:"answers" validate:"dive"`
	Force                      bool                                  `json:"force"`
	RouteScope                 models.RouteScope                     `json:"routeScope" validate:"omitempty,dive"`
}

// FlowKey is only meaningful when the answer belongs to a known screening flow.
func (r *AnswerQuestion) FlowKey() models.FlowKey {
	accountID := r.TargetAccountID
	if accountID == "" {
		accountID = r.AccountID
	}
	return models.FlowKey{
		AccountID:       accountID,
		ScreeningFlowID: r.ScreeningFlowID,
		PatientOrderID:  r.PatientOrderID,
	}
}

type ResolveDestination struct {
	Destination cobalt_dto.ScreeningSessionDestination `json:"destination"`
	Params      map[string]string                      `json:"params,omitempty"`
	Replace     bool                                   `json:"replace"`
}
