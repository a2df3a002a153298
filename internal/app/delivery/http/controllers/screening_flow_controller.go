package controllers

import (
	"cobalt-screening-service/internal/app/config"
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/dto/responses"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type ScreeningFlowController struct {
	Log                  *zap.Logger
	InternalConfig       *config.InternalConfig
	ScreeningFlowUsecase contracts.ScreeningFlowUsecase
}

var (
	screeningFlowControllerInstance *ScreeningFlowController
	onceScreeningFlowController     sync.Once
)

func NewScreeningFlowController(logger *zap.Logger, internalConfig *config.InternalConfig, screeningFlowUsecase contracts.ScreeningFlowUsecase) *ScreeningFlowController {
	onceScreeningFlowController.Do(func() {
		instance := &ScreeningFlowController{
			Log:                  logger,
			InternalConfig:       internalConfig,
			ScreeningFlowUsecase: screeningFlowUsecase,
		}
		screeningFlowControllerInstance = instance
	})
	return screeningFlowControllerInstance
}

type screeningFlowHandler func(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error)

func (ctrl *ScreeningFlowController) CheckScreeningFlow(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r, "ScreeningFlowController.CheckScreeningFlow", constvars.CheckScreeningFlowSuccessMessage, ctrl.ScreeningFlowUsecase.CheckScreeningFlow)
}

func (ctrl *ScreeningFlowController) StartScreeningFlow(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r, "ScreeningFlowController.StartScreeningFlow", constvars.StartScreeningFlowSuccessMessage, ctrl.ScreeningFlowUsecase.StartScreeningFlow)
}

func (ctrl *ScreeningFlowController) StartScreeningFlowIfNoneCompleted(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r, "ScreeningFlowController.StartScreeningFlowIfNoneCompleted", constvars.StartScreeningFlowSuccessMessage, ctrl.ScreeningFlowUsecase.StartScreeningFlowIfNoneCompleted)
}

func (ctrl *ScreeningFlowController) ResumeOrCreateScreeningSession(w http.ResponseWriter, r *http.Request) {
	ctrl.handle(w, r, "ScreeningFlowController.ResumeOrCreateScreeningSession", constvars.ResumeScreeningSessionSuccessMessage, ctrl.ScreeningFlowUsecase.ResumeOrCreateScreeningSession)
}

func (ctrl *ScreeningFlowController) handle(w http.ResponseWriter, r *http.Request, name, successMessage string, fn screeningFlowHandler) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info(name+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ScreeningFlow)
	if err := bindScreeningFlow(r, request); err != nil {
		ctrl.Log.Error(name+" error binding request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := fn(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info(name+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowStateKey, string(response.State)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, response)
}
