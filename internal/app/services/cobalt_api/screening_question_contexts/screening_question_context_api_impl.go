package screening_question_contexts

import (
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/services/cobalt_api/apiclient"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"context"
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

var (
	screeningQuestionContextClientInstance contracts.ScreeningQuestionContextClient
	onceScreeningQuestionContextClient     sync.Once
)

type screeningQuestionContextClient struct {
	Client *apiclient.Client
	Log    *zap.Logger
}

func NewScreeningQuestionContextClient(client *apiclient.Client, logger *zap.Logger) contracts.ScreeningQuestionContextClient {
	onceScreeningQuestionContextClient.Do(func() {
		screeningQuestionContextClientInstance = &screeningQuestionContextClient{
			Client: client,
			Log:    logger,
		}
	})
	return screeningQuestionContextClientInstance
}

func (c *screeningQuestionContextClient) FindScreeningQuestionContextByID(ctx context.Context, screeningQuestionContextID string) (*cobalt_dto.ScreeningQuestionContext, error) {
	var result cobalt_dto.ScreeningQuestionContext
	err := c.Client.Do(ctx, &apiclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf("%s/%s", constvars.ResourceScreeningQuestionContexts, url.PathEscape(screeningQuestionContextID)),
		Resource: constvars.ResourceScreeningQuestionContexts,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *screeningQuestionContextClient) AnswerQuestion(ctx context.Context, screeningQuestionContextID string, request *cobalt_dto.AnswerQuestionRequest) (*cobalt_dto.AnswerQuestionResponse, error) {
	var result cobalt_dto.AnswerQuestionResponse
	err := c.Client.Do(ctx, &apiclient.Request{
		Method:   constvars.MethodPost,
		Path:     fmt.Sprintf("%s/%s", constvars.ResourceAnswerQuestion, url.PathEscape(screeningQuestionContextID)),
		Body:     request,
		Resource: constvars.ResourceAnswerQuestion,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
