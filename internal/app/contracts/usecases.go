package contracts

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/dto/responses"
	"context"
)

type DestinationRouter interface {
	NavigateToDestination(destination models.Destination, params map[string]string, replace bool) models.Navigation
	NavigateToQuestion(screeningQuestionContextID string, scope models.RouteScope) models.Navigation
}

type DestinationUsecase interface {
	ResolveDestination(ctx context.Context, request *requests.ResolveDestination) (*models.Navigation, error)
	// FollowDestination routes to destination and emits the side effects the destination carries.
	FollowDestination(ctx context.Context, destination models.Destination, params map[string]string, replace bool) (*models.Navigation, error)
	NavigateToNextStep(ctx context.Context, step *models.NextStep) (*models.Navigation, error)
}

type ScreeningFlowUsecase interface {
	CheckScreeningFlow(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error)
	StartScreeningFlowIfNoneCompleted(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error)
	StartScreeningFlow(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error)
	ResumeOrCreateScreeningSession(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error)
	CreateScreeningSession(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error)
}

type PhoneGateUsecase interface {
	SkipScreeningFlow(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error)
	CompletePhoneCollection(ctx context.Context, request *requests.CompletePhoneCollection) (*responses.ScreeningFlowDecision, error)
}

type ScreeningQuestionUsecase interface {
	FindQuestionContext(ctx context.Context, screeningQuestionContextID string) (*responses.ScreeningQuestionContext, error)
	AnswerQuestion(ctx context.Context, request *requests.AnswerQuestion) (*models.Navigation, error)
}
