package apiclient

import (
	"bytes"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// Client sends JSON requests to the Cobalt API on behalf of the caller in ctx.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
}

// NewClient builds a shared client. A zero timeout leaves deadlines to the caller's context.
func NewClient(baseUrl string, requestsPerSecond float64, burst int, timeout time.Duration) *Client {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
	}

	return &Client{
		BaseUrl:    baseUrl,
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    limiter,
	}
}

type Request struct {
	Method   string
	Path     string
	Query    url.Values
	Body     interface{}
	Resource string
}

// Do sends request and decodes a successful response body into out.
func (c *Client) Do(ctx context.Context, request *Request, out interface{}) error {
	if c.Limiter != nil {
		err := c.Limiter.Wait(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return exceptions.ErrRequestAborted(err)
			}
			return exceptions.ErrOutboundRateLimit(err)
		}
	}

	endpoint := c.BaseUrl + request.Path
	if len(request.Query) > 0 {
		endpoint = endpoint + "?" + request.Query.Encode()
	}

	var bodyReader io.Reader
	if request.Body != nil {
		requestJSON, err := json.Marshal(request.Body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		bodyReader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, request.Method, endpoint, bodyReader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if request.Body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if account, ok := models.AccountFromContext(ctx); ok && account.AccessToken != "" {
		req.Header.Set(constvars.HeaderCobaltAccessToken, account.AccessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return exceptions.ErrRequestAborted(err)
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= constvars.StatusBadRequest {
		return decodeErrorResponse(resp, request.Resource)
	}

	if out == nil || resp.StatusCode == constvars.StatusNoContent {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, request.Resource)
	}
	return nil
}

func decodeErrorResponse(resp *http.Response, resource string) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrCobaltAPI(err, resp.StatusCode, resource)
	}

	var outcome cobalt_dto.ErrorResponse
	if err := json.Unmarshal(bodyBytes, &outcome); err != nil || outcome.Message == "" {
		return exceptions.ErrCobaltAPI(fmt.Errorf("%s", http.StatusText(resp.StatusCode)), resp.StatusCode, resource)
	}

	return exceptions.ErrCobaltAPI(errors.New(outcome.Message), resp.StatusCode, resource)
}
