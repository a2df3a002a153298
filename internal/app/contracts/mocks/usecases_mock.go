package mocks

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockDestinationUsecase struct {
	mock.Mock
}

func (m *MockDestinationUsecase) ResolveDestination(ctx context.Context, request *requests.ResolveDestination) (*models.Navigation, error) {
	args := m.Called(ctx, request)
	navigation, _ := args.Get(0).(*models.Navigation)
	return navigation, args.Error(1)
}

func (m *MockDestinationUsecase) FollowDestination(ctx context.Context, destination models.Destination, params map[string]string, replace bool) (*models.Navigation, error) {
	args := m.Called(ctx, destination, params, replace)
	navigation, _ := args.Get(0).(*models.Navigation)
	return navigation, args.Error(1)
}

func (m *MockDestinationUsecase) NavigateToNextStep(ctx context.Context, step *models.NextStep) (*models.Navigation, error) {
	args := m.Called(ctx, step)
	navigation, _ := args.Get(0).(*models.Navigation)
	return navigation, args.Error(1)
}

type MockScreeningFlowUsecase struct {
	mock.Mock
}

func (m *MockScreeningFlowUsecase) decision(args mock.Arguments) (*responses.ScreeningFlowDecision, error) {
	decision, _ := args.Get(0).(*responses.ScreeningFlowDecision)
	return decision, args.Error(1)
}

func (m *MockScreeningFlowUsecase) CheckScreeningFlow(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	return m.decision(m.Called(ctx, request))
}

func (m *MockScreeningFlowUsecase) StartScreeningFlowIfNoneCompleted(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	return m.decision(m.Called(ctx, request))
}

func (m *MockScreeningFlowUsecase) StartScreeningFlow(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	return m.decision(m.Called(ctx, request))
}

func (m *MockScreeningFlowUsecase) ResumeOrCreateScreeningSession(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	return m.decision(m.Called(ctx, request))
}

func (m *MockScreeningFlowUsecase) CreateScreeningSession(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	return m.decision(m.Called(ctx, request))
}

type MockPhoneGateUsecase struct {
	mock.Mock
}

func (m *MockPhoneGateUsecase) SkipScreeningFlow(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	args := m.Called(ctx, request)
	decision, _ := args.Get(0).(*responses.ScreeningFlowDecision)
	return decision, args.Error(1)
}

func (m *MockPhoneGateUsecase) CompletePhoneCollection(ctx context.Context, request *requests.CompletePhoneCollection) (*responses.ScreeningFlowDecision, error) {
	args := m.Called(ctx, request)
	decision, _ := args.Get(0).(*responses.ScreeningFlowDecision)
	return decision, args.Error(1)
}

type MockScreeningQuestionUsecase struct {
	mock.Mock
}

func (m *MockScreeningQuestionUsecase) FindQuestionContext(ctx context.Context, screeningQuestionContextID string) (*responses.ScreeningQuestionContext, error) {
	args := m.Called(ctx, screeningQuestionContextID)
	questionContext, _ := args.Get(0).(*responses.ScreeningQuestionContext)
	return questionContext, args.Error(1)
}

func (m *MockScreeningQuestionUsecase) AnswerQuestion(ctx context.Context, request *requests.AnswerQuestion) (*models.Navigation, error) {
	args := m.Called(ctx, request)
	navigation, _ := args.Get(0).(*models.Navigation)
	return navigation, args.Error(1)
}
