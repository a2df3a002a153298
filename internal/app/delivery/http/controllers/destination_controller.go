package controllers

import (
	"cobalt-screening-service/internal/app/config"
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type DestinationController struct {
	Log                *zap.Logger
	InternalConfig     *config.InternalConfig
	DestinationUsecase contracts.DestinationUsecase
}

var (
	destinationControllerInstance *DestinationController
	onceDestinationController     sync.Once
)

func NewDestinationController(logger *zap.Logger, internalConfig *config.InternalConfig, destinationUsecase contracts.DestinationUsecase) *DestinationController {
	onceDestinationController.Do(func() {
		instance := &DestinationController{
			Log:                logger,
			InternalConfig:     internalConfig,
			DestinationUsecase: destinationUsecase,
		}
		destinationControllerInstance = instance
	})
	return destinationControllerInstance
}

func (ctrl *DestinationController) ResolveDestination(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("DestinationController.ResolveDestination called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ResolveDestination)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("DestinationController.ResolveDestination error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	response, err := ctrl.DestinationUsecase.ResolveDestination(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResolveDestinationSuccessMessage, response)
}
