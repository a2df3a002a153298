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

type PhoneGateController struct {
	Log              *zap.Logger
	InternalConfig   *config.InternalConfig
	PhoneGateUsecase contracts.PhoneGateUsecase
}

var (
	phoneGateControllerInstance *PhoneGateController
	oncePhoneGateController     sync.Once
)

func NewPhoneGateController(logger *zap.Logger, internalConfig *config.InternalConfig, phoneGateUsecase contracts.PhoneGateUsecase) *PhoneGateController {
	oncePhoneGateController.Do(func() {
		instance := &PhoneGateController{
			Log:              logger,
			InternalConfig:   internalConfig,
			PhoneGateUsecase: phoneGateUsecase,
		}
		phoneGateControllerInstance = instance
	})
	return phoneGateControllerInstance
}

func (ctrl *PhoneGateController) SkipScreeningFlow(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PhoneGateController.SkipScreeningFlow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ScreeningFlow)
	if err := bindScreeningFlow(r, request); err != nil {
		ctrl.Log.Error("PhoneGateController.SkipScreeningFlow error binding request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.PhoneGateUsecase.SkipScreeningFlow(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PhoneGateController.SkipScreeningFlow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SkipScreeningFlowSuccessMessage, response)
}

func (ctrl *PhoneGateController) CompletePhoneCollection(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PhoneGateController.CompletePhoneCollection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CompletePhoneCollection)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("PhoneGateController.CompletePhoneCollection error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	account, ok := models.AccountFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenAccountMissing(nil))
		return
	}
	request.AccountID = account.AccountID
	request.ScreeningFlowID = chi.URLParam(r, constvars.URLParamScreeningFlowID)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	// validated by the usecase once the number is normalized
	response, err := ctrl.PhoneGateUsecase.CompletePhoneCollection(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PhoneGateController.CompletePhoneCollection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompletePhoneCollectionSuccessMessage, response)
}
