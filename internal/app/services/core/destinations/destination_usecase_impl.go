package destinations

import (
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	destinationUsecaseInstance contracts.DestinationUsecase
	onceDestinationUsecase     sync.Once
)

type destinationUsecase struct {
	DestinationRouter  contracts.DestinationRouter
	AnalyticsPublisher contracts.AnalyticsPublisher
	Log                *zap.Logger
}

func NewDestinationUsecase(
	destinationRouter contracts.DestinationRouter,
	analyticsPublisher contracts.AnalyticsPublisher,
	logger *zap.Logger,
) contracts.DestinationUsecase {
	onceDestinationUsecase.Do(func() {
		instance := &destinationUsecase{
			DestinationRouter:  destinationRouter,
			AnalyticsPublisher: analyticsPublisher,
			Log:                logger,
		}
		destinationUsecaseInstance = instance
	})
	return destinationUsecaseInstance
}

// ResolveDestination previews where a raw destination leads without emitting any event.
func (uc *destinationUsecase) ResolveDestination(ctx context.Context, request *requests.ResolveDestination) (*models.Navigation, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("destinationUsecase.ResolveDestination called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDestinationIDKey, request.Destination.ScreeningSessionDestinationID),
	)

	destination, err := models.DecodeDestination(&request.Destination)
	if err != nil {
		uc.Log.Error("destinationUsecase.ResolveDestination error decoding destination",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	navigation := uc.DestinationRouter.NavigateToDestination(destination, request.Params, request.Replace)
	return &navigation, nil
}

// FollowDestination routes to destination and publishes its analytics event.
// A failed publish is logged and never blocks the navigation.
func (uc *destinationUsecase) FollowDestination(ctx context.Context, destination models.Destination, params map[string]string, replace bool) (*models.Navigation, error) {
	requestID := utils.GetRequestID(ctx)
	navigation := uc.DestinationRouter.NavigateToDestination(destination, params, replace)

	if navigation.AnalyticsEvent != nil && uc.AnalyticsPublisher != nil {
		err := uc.AnalyticsPublisher.Publish(ctx, navigation.AnalyticsEvent)
		if err != nil && !utils.IsAborted(err) {
			uc.Log.Error("destinationUsecase.FollowDestination error calling AnalyticsPublisher.Publish",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAnalyticsEventKey, navigation.AnalyticsEvent.EventName),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("destinationUsecase.FollowDestination succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDestinationIDKey, destination.DestinationID()),
		zap.String(constvars.LoggingNavigationURLKey, navigation.URL),
	)
	return &navigation, nil
}

func (uc *destinationUsecase) NavigateToNextStep(ctx context.Context, step *models.NextStep) (*models.Navigation, error) {
	requestID := utils.GetRequestID(ctx)

	if step.NextScreeningQuestionContextID != "" {
		navigation := uc.DestinationRouter.NavigateToQuestion(step.NextScreeningQuestionContextID, step.RouteScope)
		navigation.Replace = step.Replace
		uc.Log.Info("destinationUsecase.NavigateToNextStep routed to question",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningQuestionContextID, step.NextScreeningQuestionContextID),
			zap.String(constvars.LoggingNavigationURLKey, navigation.URL),
		)
		return &navigation, nil
	}

	if step.ScreeningSessionDestination == nil {
		err := exceptions.ErrNoNextStep(nil, step.ScreeningSessionID)
		uc.Log.Error("destinationUsecase.NavigateToNextStep no question and no destination",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningSessionIDKey, step.ScreeningSessionID),
			zap.Error(err),
		)
		return nil, err
	}

	destination, err := models.DecodeDestination(step.ScreeningSessionDestination)
	if err != nil {
		uc.Log.Error("destinationUsecase.NavigateToNextStep error decoding destination",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningSessionIDKey, step.ScreeningSessionID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.FollowDestination(ctx, destination, step.Params, step.Replace)
}
