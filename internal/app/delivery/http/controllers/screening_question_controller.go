package controllers

import (
	"cobalt-screening-service/internal/app/config"
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScreeningQuestionController struct {
	Log                      *zap.Logger
	InternalConfig           *config.InternalConfig
	ScreeningQuestionUsecase contracts.ScreeningQuestionUsecase
}

var (
	screeningQuestionControllerInstance *ScreeningQuestionController
	onceScreeningQuestionController     sync.Once
)

func NewScreeningQuestionController(logger *zap.Logger, internalConfig *config.InternalConfig, screeningQuestionUsecase contracts.ScreeningQuestionUsecase) *ScreeningQuestionController {
	onceScreeningQuestionController.Do(func() {
		instance := &ScreeningQuestionController{
			Log:                      logger,
			InternalConfig:           internalConfig,
			ScreeningQuestionUsecase: screeningQuestionUsecase,
		}
		screeningQuestionControllerInstance = instance
	})
	return screeningQuestionControllerInstance
}

func (ctrl *ScreeningQuestionController) FindQuestionContext(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	contextID := chi.URLParam(r, constvars.URLParamScreeningQuestionContextID)
	ctrl.Log.Info("ScreeningQuestionController.FindQuestionContext called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningQuestionContextID, contextID),
	)

	if contextID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamScreeningQuestionContextID))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.ScreeningQuestionUsecase.FindQuestionContext(ctx, contextID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScreeningQuestionSuccessMessage, response)
}

func (ctrl *ScreeningQuestionController) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ScreeningQuestionController.AnswerQuestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.AnswerQuestion)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("ScreeningQuestionController.AnswerQuestion error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.ScreeningQuestionContextID = chi.URLParam(r, constvars.URLParamScreeningQuestionContextID)
	if account, ok := models.AccountFromContext(r.Context()); ok {
		request.AccountID = account.AccountID
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ScreeningQuestionController.AnswerQuestion validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.ScreeningQuestionUsecase.AnswerQuestion(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ScreeningQuestionController.AnswerQuestion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNavigationURLKey, response.URL),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnswerScreeningQuestionSuccessMessage, response)
}
