package phone_gate

import (
	"cobalt-screening-service/internal/app/contracts/mocks"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/app/services/core/destinations"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/dto/responses"
	"cobalt-screening-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type gateUsecaseMocks struct {
	gates        *mocks.MockPhoneGateStore
	versions     *mocks.MockScreeningFlowVersionClient
	accounts     *mocks.MockAccountClient
	flows        *mocks.MockScreeningFlowUsecase
	destinations *mocks.MockDestinationUsecase
	cache        *mocks.MockSessionCache
	audits       *mocks.MockAuditRepository
}

func newTestPhoneGateUsecase() (*phoneGateUsecase, *gateUsecaseMocks) {
	m := &gateUsecaseMocks{
		gates:        new(mocks.MockPhoneGateStore),
		versions:     new(mocks.MockScreeningFlowVersionClient),
		accounts:     new(mocks.MockAccountClient),
		flows:        new(mocks.MockScreeningFlowUsecase),
		destinations: new(mocks.MockDestinationUsecase),
		cache:        new(mocks.MockSessionCache),
		audits:       new(mocks.MockAuditRepository),
	}
	m.audits.On("Record", mock.Anything, mock.Anything).Return(nil).Maybe()

	uc := &phoneGateUsecase{
		PhoneGateStore:             m.gates,
		ScreeningFlowVersionClient: m.versions,
		AccountClient:              m.accounts,
		ScreeningFlowUsecase:       m.flows,
		DestinationUsecase:         m.destinations,
		SessionCache:               m.cache,
		AuditRepository:            m.audits,
		Log:                        zap.NewNop(),
	}
	return uc, m
}

func testGateRequest() *requests.ScreeningFlow {
	return &requests.ScreeningFlow{ScreeningFlowID: "flow-1", AccountID: "acc-1"}
}

func TestSkipScreeningFlow_RoutesToContentListWithSkipped(t *testing.T) {
	uc, m := newTestPhoneGateUsecase()
	uc.DestinationUsecase = destinations.NewDestinationUsecase(
		destinations.NewDestinationRouter("/in-crisis"),
		new(mocks.MockAnalyticsPublisher),
		zap.NewNop(),
	)
	request := testGateRequest()
	m.gates.On("Find", mock.Anything, request.FlowKey()).Return(&models.PhoneGate{
		ScreeningFlowID:        "flow-1",
		ScreeningFlowVersionID: "v-1",
		Skippable:              true,
	}, nil)
	m.versions.On("SkipScreeningFlowVersion", mock.Anything, "v-1", &cobalt_dto.SkipScreeningFlowVersionRequest{}).Return(&cobalt_dto.ScreeningSession{
		ScreeningSessionID: "s-1",
		Completed:          true,
		Skipped:            true,
		ScreeningSessionDestination: &cobalt_dto.ScreeningSessionDestination{
			ScreeningSessionDestinationID: constvars.DestinationContentList,
		},
	}, nil)
	m.gates.On("Close", mock.Anything, request.FlowKey()).Return(nil).Once()
	m.cache.On("Invalidate", mock.Anything, request.FlowKey()).Return(nil).Once()

	decision, err := uc.SkipScreeningFlow(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, models.FlowStateSessionActive, decision.State)
	assert.Equal(t, "/resource-library?recommended=true&skipped=true", decision.Navigation.URL)
	assert.True(t, decision.Navigation.Replace)
	m.versions.AssertExpectations(t)
	m.gates.AssertExpectations(t)
	m.cache.AssertExpectations(t)
}

func TestSkipScreeningFlow_KeepsCallerParams(t *testing.T) {
	uc, m := newTestPhoneGateUsecase()
	request := testGateRequest()
	request.DestinationParams = map[string]string{"source": "intake"}
	m.gates.On("Find", mock.Anything, request.FlowKey()).Return(&models.PhoneGate{ScreeningFlowVersionID: "v-1", Skippable: true}, nil)
	m.versions.On("SkipScreeningFlowVersion", mock.Anything, "v-1", mock.Anything).Return(&cobalt_dto.ScreeningSession{
		ScreeningSessionID:          "s-1",
		ScreeningSessionDestination: &cobalt_dto.ScreeningSessionDestination{ScreeningSessionDestinationID: constvars.DestinationGroupSessionList},
	}, nil)
	m.gates.On("Close", mock.Anything, request.FlowKey()).Return(errors.New("redis down"))
	m.cache.On("Invalidate", mock.Anything, request.FlowKey()).Return(nil)
	m.destinations.On("FollowDestination", mock.Anything, models.GroupSessionListDestination{}, map[string]string{
		"source":                    "intake",
		constvars.QueryParamSkipped: "true",
	}, true).Return(&models.Navigation{URL: "/group-sessions?skipped=true&source=intake", Replace: true}, nil)

	decision, err := uc.SkipScreeningFlow(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, "/group-sessions?skipped=true&source=intake", decision.Navigation.URL)
	assert.Equal(t, map[string]string{"source": "intake"}, request.DestinationParams)
}

func TestSkipScreeningFlow_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		gate    *models.PhoneGate
		wantDev string
	}{
		{name: "no gate open", gate: nil, wantDev: constvars.ErrDevPhoneGateNotOpen},
		{name: "not skippable", gate: &models.PhoneGate{ScreeningFlowVersionID: "v-1"}, wantDev: "screening flow version v-1 is not skippable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, m := newTestPhoneGateUsecase()
			request := testGateRequest()
			m.gates.On("Find", mock.Anything, request.FlowKey()).Return(tt.gate, nil)

			_, err := uc.SkipScreeningFlow(context.Background(), request)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
			assert.Equal(t, tt.wantDev, customErr.DevMessage)
			m.versions.AssertNotCalled(t, "SkipScreeningFlowVersion", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCompletePhoneCollection_CreatesSession(t *testing.T) {
	uc, m := newTestPhoneGateUsecase()
	request := &requests.CompletePhoneCollection{
		ScreeningFlow: requests.ScreeningFlow{ScreeningFlowID: "flow-1", AccountID: "acc-1", TargetAccountID: "patient-1"},
		PhoneNumber:   "+1 (215) 555-1234",
	}
	m.gates.On("Find", mock.Anything, request.FlowKey()).Return(&models.PhoneGate{ScreeningFlowVersionID: "v-1"}, nil)
	m.accounts.On("UpdatePhoneNumber", mock.Anything, "patient-1", &cobalt_dto.UpdatePhoneNumberRequest{PhoneNumber: "+12155551234"}).
		Return(&cobalt_dto.Account{AccountID: "patient-1"}, nil)
	m.gates.On("Close", mock.Anything, request.FlowKey()).Return(nil)
	m.cache.On("Invalidate", mock.Anything, request.FlowKey()).Return(nil)
	want := &responses.ScreeningFlowDecision{
		State:              models.FlowStateSessionActive,
		ScreeningSessionID: "s-2",
		Navigation:         &models.Navigation{URL: "/screening-questions/q-1"},
	}
	m.flows.On("CreateScreeningSession", mock.Anything, &request.ScreeningFlow).Return(want, nil)

	decision, err := uc.CompletePhoneCollection(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, want, decision)
	m.accounts.AssertExpectations(t)
	m.flows.AssertExpectations(t)
}

func TestCompletePhoneCollection_InvalidPhoneNumber(t *testing.T) {
	uc, m := newTestPhoneGateUsecase()
	request := &requests.CompletePhoneCollection{
		ScreeningFlow: *testGateRequest(),
		PhoneNumber:   "555-1234",
	}

	_, err := uc.CompletePhoneCollection(context.Background(), request)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	m.gates.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
	m.accounts.AssertNotCalled(t, "UpdatePhoneNumber", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompletePhoneCollection_UpdateFailureKeepsGateOpen(t *testing.T) {
	uc, m := newTestPhoneGateUsecase()
	request := &requests.CompletePhoneCollection{
		ScreeningFlow: *testGateRequest(),
		PhoneNumber:   "+12155551234",
	}
	m.gates.On("Find", mock.Anything, request.FlowKey()).Return(&models.PhoneGate{ScreeningFlowVersionID: "v-1"}, nil)
	remoteErr := exceptions.ErrCobaltAPI(errors.New("invalid"), 422, "accounts")
	m.accounts.On("UpdatePhoneNumber", mock.Anything, "acc-1", mock.Anything).Return(nil, remoteErr)

	_, err := uc.CompletePhoneCollection(context.Background(), request)

	assert.ErrorIs(t, err, remoteErr)
	m.gates.AssertNotCalled(t, "Close", mock.Anything, mock.Anything)
	m.flows.AssertNotCalled(t, "CreateScreeningSession", mock.Anything, mock.Anything)
}
