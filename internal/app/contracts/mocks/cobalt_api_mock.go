package mocks

import (
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockScreeningSessionClient struct {
	mock.Mock
}

func (m *MockScreeningSessionClient) FindScreeningSessions(ctx context.Context, query *cobalt_dto.FindScreeningSessionsQuery) ([]cobalt_dto.ScreeningSession, error) {
	args := m.Called(ctx, query)
	sessions, _ := args.Get(0).([]cobalt_dto.ScreeningSession)
	return sessions, args.Error(1)
}

func (m *MockScreeningSessionClient) CreateScreeningSession(ctx context.Context, request *cobalt_dto.CreateScreeningSessionRequest) (*cobalt_dto.ScreeningSession, error) {
	args := m.Called(ctx, request)
	session, _ := args.Get(0).(*cobalt_dto.ScreeningSession)
	return session, args.Error(1)
}

type MockScreeningFlowVersionClient struct {
	mock.Mock
}

func (m *MockScreeningFlowVersionClient) FindScreeningFlowVersions(ctx context.Context, screeningFlowID string) (*cobalt_dto.FindScreeningFlowVersionsResponse, error) {
	args := m.Called(ctx, screeningFlowID)
	result, _ := args.Get(0).(*cobalt_dto.FindScreeningFlowVersionsResponse)
	return result, args.Error(1)
}

func (m *MockScreeningFlowVersionClient) SkipScreeningFlowVersion(ctx context.Context, screeningFlowVersionID string, request *cobalt_dto.SkipScreeningFlowVersionRequest) (*cobalt_dto.ScreeningSession, error) {
	args := m.Called(ctx, screeningFlowVersionID, request)
	session, _ := args.Get(0).(*cobalt_dto.ScreeningSession)
	return session, args.Error(1)
}

type MockScreeningQuestionContextClient struct {
	mock.Mock
}

func (m *MockScreeningQuestionContextClient) FindScreeningQuestionContextByID(ctx context.Context, screeningQuestionContextID string) (*cobalt_dto.ScreeningQuestionContext, error) {
	args := m.Called(ctx, screeningQuestionContextID)
	result, _ := args.Get(0).(*cobalt_dto.ScreeningQuestionContext)
	return result, args.Error(1)
}

func (m *MockScreeningQuestionContextClient) AnswerQuestion(ctx context.Context, screeningQuestionContextID string, request *cobalt_dto.AnswerQuestionRequest) (*cobalt_dto.AnswerQuestionResponse, error) {
	args := m.Called(ctx, screeningQuestionContextID, request)
	result, _ := args.Get(0).(*cobalt_dto.AnswerQuestionResponse)
	return result, args.Error(1)
}

type MockAccountClient struct {
	mock.Mock
}

func (m *MockAccountClient) UpdatePhoneNumber(ctx context.Context, accountID string, request *cobalt_dto.UpdatePhoneNumberRequest) (*cobalt_dto.Account, error) {
	args := m.Called(ctx, accountID, request)
	account, _ := args.Get(0).(*cobalt_dto.Account)
	return account, args.Error(1)
}
