package screening_sessions

import (
	"cobalt-screening-service/internal/app/services/cobalt_api/apiclient"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFindScreeningSessions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/screening-sessions", r.URL.Path)
		assert.Equal(t, "flow-1", r.URL.Query().Get("screeningFlowId"))
		assert.Equal(t, "po-9", r.URL.Query().Get("patientOrderId"))
		assert.False(t, r.URL.Query().Has("targetAccountId"))

		w.Write([]byte(`{"screeningSessions":[
			{"screeningSessionId":"s-1","completed":false,"created":"2024-03-01T10:00:00Z","nextScreeningQuestionContextId":"q-1"},
			{"screeningSessionId":"s-2","completed":true,"skipped":true,"created":"2024-03-02T10:00:00Z",
			 "screeningSessionDestination":{"screeningSessionDestinationId":"CONTENT_LIST","context":{}}}
		]}`))
	}))
	defer server.Close()

	client := &screeningSessionClient{Client: apiclient.NewClient(server.URL, 0, 0, 0), Log: zap.NewNop()}
	sessions, err := client.FindScreeningSessions(context.Background(), &cobalt_dto.FindScreeningSessionsQuery{
		ScreeningFlowID: "flow-1",
		PatientOrderID:  "po-9",
	})

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "q-1", sessions[0].NextScreeningQuestionContextID)
	assert.True(t, sessions[1].Skipped)
	require.NotNil(t, sessions[1].ScreeningSessionDestination)
	assert.Equal(t, "CONTENT_LIST", sessions[1].ScreeningSessionDestination.ScreeningSessionDestinationID)
}

func TestCreateScreeningSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"screeningFlowVersionId":"v-2","patientOrderId":"po-9"}`, string(body))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"screeningSession":{"screeningSessionId":"s-3","screeningFlowVersionId":"v-2","nextScreeningQuestionContextId":"q-9","created":"2024-03-03T10:00:00Z"}}`))
	}))
	defer server.Close()

	client := &screeningSessionClient{Client: apiclient.NewClient(server.URL, 0, 0, 0), Log: zap.NewNop()}
	session, err := client.CreateScreeningSession(context.Background(), &cobalt_dto.CreateScreeningSessionRequest{
		ScreeningFlowVersionID: "v-2",
		PatientOrderID:         "po-9",
	})

	require.NoError(t, err)
	assert.Equal(t, "s-3", session.ScreeningSessionID)
	assert.Equal(t, "q-9", session.NextScreeningQuestionContextID)
}
