package screening_questions

import (
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/dto/responses"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	screeningQuestionUsecaseInstance contracts.ScreeningQuestionUsecase
	onceScreeningQuestionUsecase     sync.Once
)

type screeningQuestionUsecase struct {
	ScreeningQuestionContextClient contracts.ScreeningQuestionContextClient
	DestinationUsecase             contracts.DestinationUsecase
	SessionCache                   contracts.SessionCache
	Log                            *zap.Logger
}

func NewScreeningQuestionUsecase(
	screeningQuestionContextClient contracts.ScreeningQuestionContextClient,
	destinationUsecase contracts.DestinationUsecase,
	sessionCache contracts.SessionCache,
	logger *zap.Logger,
) contracts.ScreeningQuestionUsecase {
	onceScreeningQuestionUsecase.Do(func() {
		instance := &screeningQuestionUsecase{
			ScreeningQuestionContextClient: screeningQuestionContextClient,
			DestinationUsecase:             destinationUsecase,
			SessionCache:                   sessionCache,
			Log:                            logger,
		}
		screeningQuestionUsecaseInstance = instance
	})
	return screeningQuestionUsecaseInstance
}

func (uc *screeningQuestionUsecase) FindQuestionContext(ctx context.Context, screeningQuestionContextID string) (*responses.ScreeningQuestionContext, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("screeningQuestionUsecase.FindQuestionContext called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningQuestionContextID, screeningQuestionContextID),
	)

	questionContext, err := uc.ScreeningQuestionContextClient.FindScreeningQuestionContextByID(ctx, screeningQuestionContextID)
	if err != nil {
		if !utils.IsAborted(err) {
			uc.Log.Error("screeningQuestionUsecase.FindQuestionContext error calling ScreeningQuestionContextClient.FindScreeningQuestionContextByID",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	response, err := presentQuestionContext(questionContext)
	if err != nil {
		uc.Log.Error("screeningQuestionUsecase.FindQuestionContext unsupported question configuration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningQuestionContextID, screeningQuestionContextID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("screeningQuestionUsecase.FindQuestionContext succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("auto_advance", response.AutoAdvance),
	)
	return response, nil
}

// AnswerQuestion checks the selections against the question, submits them and
// routes to whatever comes next.
func (uc *screeningQuestionUsecase) AnswerQuestion(ctx context.Context, request *requests.AnswerQuestion) (*models.Navigation, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("screeningQuestionUsecase.AnswerQuestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningQuestionContextID, request.ScreeningQuestionContextID),
		zap.Int(constvars.LoggingResponseCountKey, len(request.Answers)),
	)

	questionContext, err := uc.ScreeningQuestionContextClient.FindScreeningQuestionContextByID(ctx, request.ScreeningQuestionContextID)
	if err != nil {
		return nil, err
	}

	err = validateAnswers(questionContext, request.Answers)
	if err != nil {
		uc.Log.Error("screeningQuestionUsecase.AnswerQuestion invalid answers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := uc.ScreeningQuestionContextClient.AnswerQuestion(ctx, request.ScreeningQuestionContextID, &cobalt_dto.AnswerQuestionRequest{
		ScreeningQuestionContextID: request.ScreeningQuestionContextID,
		Answers:                    request.Answers,
		Force:                      request.Force,
	})
	if err != nil {
		if !utils.IsAborted(err) {
			uc.Log.Error("screeningQuestionUsecase.AnswerQuestion error calling ScreeningQuestionContextClient.AnswerQuestion",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if request.ScreeningFlowID != "" {
		if err := uc.SessionCache.Invalidate(ctx, request.FlowKey()); err != nil {
			uc.Log.Warn("screeningQuestionUsecase.AnswerQuestion error calling SessionCache.Invalidate",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	navigation, err := uc.DestinationUsecase.NavigateToNextStep(ctx, &models.NextStep{
		ScreeningSessionID:             questionContext.ScreeningSessionID,
		NextScreeningQuestionContextID: result.NextScreeningQuestionContextID,
		ScreeningSessionDestination:    result.ScreeningSessionDestination,
		RouteScope:                     request.RouteScope,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("screeningQuestionUsecase.AnswerQuestion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNavigationURLKey, navigation.URL),
	)
	return navigation, nil
}
