package screening_sessions

import (
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/services/cobalt_api/apiclient"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"context"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

var (
	screeningSessionClientInstance contracts.ScreeningSessionClient
	onceScreeningSessionClient     sync.Once
)

type screeningSessionClient struct {
	Client *apiclient.Client
	Log    *zap.Logger
}

func NewScreeningSessionClient(client *apiclient.Client, logger *zap.Logger) contracts.ScreeningSessionClient {
	onceScreeningSessionClient.Do(func() {
		screeningSessionClientInstance = &screeningSessionClient{
			Client: client,
			Log:    logger,
		}
	})
	return screeningSessionClientInstance
}

func (c *screeningSessionClient) FindScreeningSessions(ctx context.Context, query *cobalt_dto.FindScreeningSessionsQuery) ([]cobalt_dto.ScreeningSession, error) {
	values := url.Values{}
	values.Set("screeningFlowId", query.ScreeningFlowID)
	if query.TargetAccountID != "" {
		values.Set("targetAccountId", query.TargetAccountID)
	}
	if query.PatientOrderID != "" {
		values.Set("patientOrderId", query.PatientOrderID)
	}

	var result cobalt_dto.FindScreeningSessionsResponse
	err := c.Client.Do(ctx, &apiclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceScreeningSessions,
		Query:    values,
		Resource: constvars.ResourceScreeningSessions,
	}, &result)
	if err != nil {
		return nil, err
	}

	return result.ScreeningSessions, nil
}

func (c *screeningSessionClient) CreateScreeningSession(ctx context.Context, request *cobalt_dto.CreateScreeningSessionRequest) (*cobalt_dto.ScreeningSession, error) {
	var result cobalt_dto.ScreeningSessionResponse
	err := c.Client.Do(ctx, &apiclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.ResourceScreeningSessions,
		Body:     request,
		Resource: constvars.ResourceScreeningSessions,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result.ScreeningSession, nil
}
