package screening_flow_versions

import (
	"cobalt-screening-service/internal/app/services/cobalt_api/apiclient"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFindScreeningFlowVersions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/screening-flow-versions", r.URL.Path)
		assert.Equal(t, "flow-1", r.URL.Query().Get("screeningFlowId"))
		w.Write([]byte(`{"activeScreeningFlowVersionId":"v-2","screeningFlowVersions":[
			{"screeningFlowVersionId":"v-1","screeningFlowId":"flow-1","versionNumber":1},
			{"screeningFlowVersionId":"v-2","screeningFlowId":"flow-1","versionNumber":2,"skippable":true,"phoneNumberRequired":true}
		]}`))
	}))
	defer server.Close()

	client := &screeningFlowVersionClient{Client: apiclient.NewClient(server.URL, 0, 0, 0), Log: zap.NewNop()}
	result, err := client.FindScreeningFlowVersions(context.Background(), "flow-1")

	require.NoError(t, err)
	assert.Equal(t, "v-2", result.ActiveScreeningFlowVersionID)
	require.Len(t, result.ScreeningFlowVersions, 2)
	assert.True(t, result.ScreeningFlowVersions[1].PhoneNumberRequired)
}

func TestSkipScreeningFlowVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/screening-flow-versions/v-2/skip", r.URL.Path)
		w.Write([]byte(`{"screeningSession":{"screeningSessionId":"s-5","skipped":true,"completed":true,"created":"2024-03-03T10:00:00Z",
			"screeningSessionDestination":{"screeningSessionDestinationId":"CONTENT_LIST"}}}`))
	}))
	defer server.Close()

	client := &screeningFlowVersionClient{Client: apiclient.NewClient(server.URL, 0, 0, 0), Log: zap.NewNop()}
	session, err := client.SkipScreeningFlowVersion(context.Background(), "v-2", &cobalt_dto.SkipScreeningFlowVersionRequest{})

	require.NoError(t, err)
	assert.True(t, session.Skipped)
	assert.Equal(t, "CONTENT_LIST", session.ScreeningSessionDestination.ScreeningSessionDestinationID)
}
