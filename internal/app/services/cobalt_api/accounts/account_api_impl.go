package accounts

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
	accountClientInstance contracts.AccountClient
	onceAccountClient     sync.Once
)

type accountClient struct {
	Client *apiclient.Client
	Log    *zap.Logger
}

func NewAccountClient(client *apiclient.Client, logger *zap.Logger) contracts.AccountClient {
	onceAccountClient.Do(func() {
		accountClientInstance = &accountClient{
			Client: client,
			Log:    logger,
		}
	})
	return accountClientInstance
}

func (c *accountClient) UpdatePhoneNumber(ctx context.Context, accountID string, request *cobalt_dto.UpdatePhoneNumberRequest) (*cobalt_dto.Account, error) {
	var result cobalt_dto.AccountResponse
	err := c.Client.Do(ctx, &apiclient.Request{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf("%s/%s/phone-number", constvars.ResourceAccounts, url.PathEscape(accountID)),
		Body:     request,
		Resource: constvars.ResourceAccounts,
	}, &result)
	if err != nil {
		return nil, err
	}

	return &result.Account, nil
}
