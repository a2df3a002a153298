package routers

import (
	"bytes"
	"cobalt-screening-service/internal/app/config"
	"cobalt-screening-service/internal/app/contracts/mocks"
	"cobalt-screening-service/internal/app/delivery/http/controllers"
	"cobalt-screening-service/internal/app/delivery/http/middlewares"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/dto/responses"
	"cobalt-screening-service/internal/pkg/exceptions"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "router-secret"

type routerHarness struct {
	router             *chi.Mux
	flowUsecase        *mocks.MockScreeningFlowUsecase
	phoneGateUsecase   *mocks.MockPhoneGateUsecase
	destinationUsecase *mocks.MockDestinationUsecase
	questionUsecase    *mocks.MockScreeningQuestionUsecase
}

func newRouterHarness(mutationsPerMinute int) *routerHarness {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			Version:                    "v1",
			EndpointPrefix:             "api",
			AllowedOrigins:             []string{"*"},
			RequestBodyLimitInMegabyte: 1,
		},
		JWT: config.AppJWT{Secret: testSecret},
	}

	h := &routerHarness{
		router:             chi.NewRouter(),
		flowUsecase:        new(mocks.MockScreeningFlowUsecase),
		phoneGateUsecase:   new(mocks.MockPhoneGateUsecase),
		destinationUsecase: new(mocks.MockDestinationUsecase),
		questionUsecase:    new(mocks.MockScreeningQuestionUsecase),
	}

	SetupRoutes(
		h.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		middlewares.NewRateLimiter(mutationsPerMinute, time.Minute, time.Minute, logger),
		&Controllers{
			ScreeningFlow:     &controllers.ScreeningFlowController{Log: logger, InternalConfig: internalConfig, ScreeningFlowUsecase: h.flowUsecase},
			PhoneGate:         &controllers.PhoneGateController{Log: logger, InternalConfig: internalConfig, PhoneGateUsecase: h.phoneGateUsecase},
			Destination:       &controllers.DestinationController{Log: logger, InternalConfig: internalConfig, DestinationUsecase: h.destinationUsecase},
			ScreeningQuestion: &controllers.ScreeningQuestionController{Log: logger, InternalConfig: internalConfig, ScreeningQuestionUsecase: h.questionUsecase},
			Health:            controllers.NewHealthController(internalConfig),
		},
	)
	return h
}

func (h *routerHarness) do(t *testing.T, method, path string, body interface{}, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"accountId": "acc-1",
			"exp":       time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte(testSecret))
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.router.ServeHTTP(rr, req)
	return rr
}

func decodeDecision(t *testing.T, rr *httptest.ResponseRecorder) responses.ScreeningFlowDecision {
	t.Helper()
	var body struct {
		Success bool                            `json:"success"`
		Data    responses.ScreeningFlowDecision `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.True(t, body.Success)
	return body.Data
}

func TestScreeningFlowRoutes_StartBindsRequest(t *testing.T) {
	h := newRouterHarness(0)
	h.flowUsecase.On("StartScreeningFlow", mock.Anything, mock.MatchedBy(func(request *requests.ScreeningFlow) bool {
		return request.ScreeningFlowID == "flow-1" &&
			request.AccountID == "acc-1" &&
			request.PatientOrderID == "po-1"
	})).Return(&responses.ScreeningFlowDecision{State: models.FlowStateNeedsPhone, ScreeningFlowID: "flow-1"}, nil)

	rr := h.do(t, http.MethodPost, "/api/v1/screening-flows/flow-1/start", map[string]string{"patientOrderId": "po-1"}, true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	assert.Equal(t, models.FlowStateNeedsPhone, decodeDecision(t, rr).State)
	h.flowUsecase.AssertExpectations(t)
}

func TestScreeningFlowRoutes_CheckWithoutFlow(t *testing.T) {
	h := newRouterHarness(0)
	h.flowUsecase.On("CheckScreeningFlow", mock.Anything, mock.MatchedBy(func(request *requests.ScreeningFlow) bool {
		return request.ScreeningFlowID == "" && request.AccountID == "acc-1"
	})).Return(&responses.ScreeningFlowDecision{State: models.FlowStateBypassed, DidCheckScreeningSessions: true}, nil)

	rr := h.do(t, http.MethodPost, "/api/v1/screening-flows/check", nil, true)

	assert.Equal(t, http.StatusOK, rr.Code)
	decision := decodeDecision(t, rr)
	assert.Equal(t, models.FlowStateBypassed, decision.State)
	assert.True(t, decision.DidCheckScreeningSessions)
}

func TestScreeningFlowRoutes_RequireAuthentication(t *testing.T) {
	h := newRouterHarness(0)

	rr := h.do(t, http.MethodPost, "/api/v1/screening-flows/flow-1/resume", nil, false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	h.flowUsecase.AssertNotCalled(t, "ResumeOrCreateScreeningSession", mock.Anything, mock.Anything)
}

func TestScreeningFlowRoutes_UsecaseErrorStatus(t *testing.T) {
	h := newRouterHarness(0)
	h.flowUsecase.On("StartScreeningFlowIfNoneCompleted", mock.Anything, mock.Anything).Return(nil, exceptions.ErrPhoneGateOpen(nil))

	rr := h.do(t, http.MethodPost, "/api/v1/screening-flows/flow-1/start-if-none-completed", nil, true)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestScreeningFlowRoutes_MutationsAreRateLimited(t *testing.T) {
	h := newRouterHarness(1)
	h.flowUsecase.On("ResumeOrCreateScreeningSession", mock.Anything, mock.Anything).
		Return(&responses.ScreeningFlowDecision{State: models.FlowStateSessionActive}, nil)
	h.flowUsecase.On("CheckScreeningFlow", mock.Anything, mock.Anything).
		Return(&responses.ScreeningFlowDecision{State: models.FlowStateReady}, nil)

	assert.Equal(t, http.StatusOK, h.do(t, http.MethodPost, "/api/v1/screening-flows/flow-1/resume", nil, true).Code)
	assert.Equal(t, http.StatusTooManyRequests, h.do(t, http.MethodPost, "/api/v1/screening-flows/flow-1/resume", nil, true).Code)
	assert.Equal(t, http.StatusTooManyRequests, h.do(t, http.MethodPost, "/api/v1/screening-flows/flow-1/check", nil, true).Code)
	assert.Equal(t, http.StatusOK, h.do(t, http.MethodPost, "/api/v1/screening-flows/check", nil, true).Code)
	h.flowUsecase.AssertNumberOfCalls(t, "ResumeOrCreateScreeningSession", 1)
	h.flowUsecase.AssertNumberOfCalls(t, "CheckScreeningFlow", 1)
}

func TestScreeningFlowRoutes_InstantiatingCheckIsRateLimited(t *testing.T) {
	h := newRouterHarness(1)
	h.flowUsecase.On("CheckScreeningFlow", mock.Anything, mock.MatchedBy(func(request *requests.ScreeningFlow) bool {
		return request.InstantiateOnLoad && request.ScreeningFlowID == "flow-1"
	})).Return(&responses.ScreeningFlowDecision{State: models.FlowStateSessionActive, ScreeningSessionID: "s-1"}, nil)

	body := map[string]bool{"instantiateOnLoad": true}
	assert.Equal(t, http.StatusOK, h.do(t, http.MethodPost, "/api/v1/screening-flows/flow-1/check", body, true).Code)
	assert.Equal(t, http.StatusTooManyRequests, h.do(t, http.MethodPost, "/api/v1/screening-flows/flow-1/check", body, true).Code)
	h.flowUsecase.AssertNumberOfCalls(t, "CheckScreeningFlow", 1)
}

func TestPhoneGateRoutes_Complete(t *testing.T) {
	h := newRouterHarness(0)
	h.phoneGateUsecase.On("CompletePhoneCollection", mock.Anything, mock.MatchedBy(func(request *requests.CompletePhoneCollection) bool {
		return request.ScreeningFlowID == "flow-1" &&
			request.AccountID == "acc-1" &&
			request.PhoneNumber == "2155551234"
	})).Return(&responses.ScreeningFlowDecision{State: models.FlowStateSessionActive, ScreeningSessionID: "s-1"}, nil)

	rr := h.do(t, http.MethodPost, "/api/v1/screening-flows/flow-1/phone-gate/complete", map[string]string{"phoneNumber": "2155551234"}, true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "s-1", decodeDecision(t, rr).ScreeningSessionID)
}

func TestScreeningQuestionRoutes_AnswerUsesPathContext(t *testing.T) {
	h := newRouterHarness(0)
	h.questionUsecase.On("AnswerQuestion", mock.Anything, mock.MatchedBy(func(request *requests.AnswerQuestion) bool {
		return request.ScreeningQuestionContextID == "qc-7" && request.AccountID == "acc-1"
	})).Return(&models.Navigation{URL: "/screening-questions/qc-8"}, nil)

	rr := h.do(t, http.MethodPost, "/api/v1/screening-question-contexts/qc-7/answers", map[string]interface{}{
		"answers": []cobalt_dto.ScreeningAnswerSelection{{ScreeningAnswerOptionID: "opt-1"}},
	}, true)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/screening-questions/qc-8")
}

func TestHealthRoute(t *testing.T) {
	h := newRouterHarness(0)

	rr := h.do(t, http.MethodGet, "/api/v1/health", nil, false)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"version":"v1"`)
}
