package apiclient

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Value string `json:"value"`
}

func TestDo_ForwardsTokenAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/things", r.URL.Path)
		assert.Equal(t, "a", r.URL.Query().Get("q"))
		assert.Equal(t, "token-1", r.Header.Get(constvars.HeaderCobaltAccessToken))
		assert.Equal(t, "req-1", r.Header.Get(constvars.HeaderXRequestID))
		assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"value":"in"}`, string(body))

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write([]byte(`{"value":"out"}`))
	}))
	defer server.Close()

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	ctx = models.ContextWithAccount(ctx, &models.Account{AccountID: "acc-1", AccessToken: "token-1"})

	client := NewClient(server.URL, 0, 0, 0)
	var out echo
	err := client.Do(ctx, &Request{
		Method:   constvars.MethodPost,
		Path:     "/things",
		Query:    url.Values{"q": []string{"a"}},
		Body:     echo{Value: "in"},
		Resource: "/things",
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "out", out.Value)
}

func TestDo_MapsRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"NOT_FOUND","message":"no such session"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, 0, 0)
	err := client.Do(context.Background(), &Request{Method: constvars.MethodGet, Path: "/x", Resource: "/x"}, nil)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
	assert.Contains(t, customErr.Error(), "no such session")
}

func TestDo_ServerErrorBecomesBadGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, 0, 0)
	err := client.Do(context.Background(), &Request{Method: constvars.MethodGet, Path: "/x", Resource: "/x"}, nil)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
}

func TestDo_CancelledContextIsAborted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL, 10, 1, 0)
	err := client.Do(ctx, &Request{Method: constvars.MethodGet, Path: "/x", Resource: "/x"}, nil)

	require.Error(t, err)
	assert.True(t, utils.IsAborted(err))
}
