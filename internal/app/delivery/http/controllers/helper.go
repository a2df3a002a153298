package controllers

import (
	"cobalt-screening-service/internal/app/config"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := defaultRequestTimeout
	if internalConfig != nil && internalConfig.App.RequestTimeoutInSeconds > 0 {
		timeout = time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

// buildUsecaseErrorResponse reports an expired deadline as a gateway timeout
// whatever status the wrapped error carried.
func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) || customErr.StatusCode != constvars.StatusGatewayTimeout {
			log.Warn("usecase deadline exceeded", zap.Error(err))
			err = exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded)
		}
	}
	utils.BuildErrorResponse(log, w, err)
}

// bindScreeningFlow fills request from the body, the url and the caller's account.
func bindScreeningFlow(r *http.Request, request *requests.ScreeningFlow) error {
	err := utils.DecodeJSONBody(r, request)
	if err != nil {
		return err
	}

	request.ScreeningFlowID = chi.URLParam(r, constvars.URLParamScreeningFlowID)
	if account, ok := models.AccountFromContext(r.Context()); ok {
		request.AccountID = account.AccountID
	}
	if request.AccountID == "" {
		return exceptions.ErrTokenAccountMissing(nil)
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
