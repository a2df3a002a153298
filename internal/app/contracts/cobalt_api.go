package contracts

import (
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"context"
)

type ScreeningSessionClient interface {
	FindScreeningSessions(ctx context.Context, query *cobalt_dto.FindScreeningSessionsQuery) ([]cobalt_dto.ScreeningSession, error)
	CreateScreeningSession(ctx context.Context, request *cobalt_dto.CreateScreeningSessionRequest) (*cobalt_dto.ScreeningSession, error)
}

type ScreeningFlowVersionClient interface {
	FindScreeningFlowVersions(ctx context.Context, screeningFlowID string) (*cobalt_dto.FindScreeningFlowVersionsResponse, error)
	SkipScreeningFlowVersion(ctx context.Context, screeningFlowVersionID string, request *cobalt_dto.SkipScreeningFlowVersionRequest) (*cobalt_dto.ScreeningSession, error)
}

type ScreeningQuestionContextClient interface {
	FindScreeningQuestionContextByID(ctx context.Context, screeningQuestionContextID string) (*cobalt_dto.ScreeningQuestionContext, error)
	AnswerQuestion(ctx context.Context, screeningQuestionContextID string, request *cobalt_dto.AnswerQuestionRequest) (*cobalt_dto.AnswerQuestionResponse, error)
}

type AccountClient interface {
	UpdatePhoneNumber(ctx context.Context, accountID string, request *cobalt_dto.UpdatePhoneNumberRequest) (*cobalt_dto.Account, error)
}
