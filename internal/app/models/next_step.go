package models

import "cobalt-screening-service/internal/pkg/cobalt_dto"

// NextStep is what follows a screening session or an answered question:
// the next question context when there is one, otherwise the destination.
type NextStep struct {
	ScreeningSessionID             string
	NextScreeningQuestionContextID string
	ScreeningSessionDestination    *cobalt_dto.ScreeningSessionDestination
	RouteScope                     RouteScope
	Params                         map[string]string
	Replace                        bool
}

func NextStepFromSession(session *cobalt_dto.ScreeningSession, scope RouteScope, params map[string]string, replace bool) *NextStep {
	return &NextStep{
		ScreeningSessionID:             session.ScreeningSessionID,
		NextScreeningQuestionContextID: session.NextScreeningQuestionContextID,
		ScreeningSessionDestination:    session.ScreeningSessionDestination,
		RouteScope:                     scope,
		Params:                         params,
		Replace:                        replace,
	}
}
