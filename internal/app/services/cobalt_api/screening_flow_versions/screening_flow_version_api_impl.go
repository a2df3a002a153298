package screening_flow_versions

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
	screeningFlowVersionClientInstance contracts.ScreeningFlowVersionClient
	onceScreeningFlowVersionClient     sync.Once
)

type screeningFlowVersionClient struct {
	Client *apiclient.Client
	Log    *zap.Logger
}

func NewScreeningFlowVersionClient(client *apiclient.Client, logger *zap.Logger) contracts.ScreeningFlowVersionClient {
	onceScreeningFlowVersionClient.Do(func() {
		screeningFlowVersionClientInstance = &screeningFlowVersionClient{
			Client: client,
			Log:    logger,
		}
	})
	return screeningFlowVersionClientInstance
}

func (c *screeningFlowVersionClient) FindScreeningFlowVersions(ctx context.Context, screeningFlowID string) (*cobalt_dto.FindScreeningFlowVersionsResponse, error) {
	var result cobalt_dto.FindScreeningFlowVersionsResponse
	err := c.Client.Do(ctx, &apiclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceScreeningFlowVersions,
		Query:    url.Values{"screeningFlowId": []string{screeningFlowID}},
		Resource: constvars.ResourceScreeningFlowVersions,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// SkipScreeningFlowVersion records a skipped session and returns it with its destination.
func (c *screeningFlowVersionClient) SkipScreeningFlowVersion(ctx context.Context, screeningFlowVersionID string, request *cobalt_dto.SkipScreeningFlowVersionRequest) (*cobalt_dto.ScreeningSession, error) {
	var result cobalt_dto.ScreeningSessionResponse
	err := c.Client.Do(ctx, &apiclient.Request{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf("%s/%s/skip", constvars.ResourceScreeningFlowVersions, url.PathEscape(screeningFlowVersionID)),
		Body:     request,
		Resource: constvars.ResourceScreeningFlowVersions,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result.ScreeningSession, nil
}
