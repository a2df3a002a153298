package screening_flows

import (
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day int) time.Time {
	return time.Date(2024, time.March, day, 10, 0, 0, 0, time.UTC)
}

func TestNewFlowSnapshot(t *testing.T) {
	sessions := []cobalt_dto.ScreeningSession{
		{ScreeningSessionID: "newest", Created: at(5)},
		{ScreeningSessionID: "skipped", Completed: true, Skipped: true, Created: at(1)},
		{ScreeningSessionID: "oldest", Created: at(2)},
		{ScreeningSessionID: "middle", Created: at(3)},
	}

	snapshot := newFlowSnapshot(sessions, nil)

	assert.False(t, snapshot.HasCompletedScreening, "skipped sessions do not count as completed")
	assert.True(t, snapshot.HasIncompleteScreening)
	require.Len(t, snapshot.IncompleteSessions, 3)
	assert.Equal(t, "oldest", snapshot.IncompleteSessions[0].ScreeningSessionID)
	assert.Equal(t, "newest", snapshot.IncompleteSessions[2].ScreeningSessionID)

	session, ok := snapshot.sessionToResume("")
	require.True(t, ok)
	assert.Equal(t, "newest", session.ScreeningSessionID)

	session, ok = snapshot.sessionToResume("middle")
	require.True(t, ok)
	assert.Equal(t, "middle", session.ScreeningSessionID)

	_, ok = snapshot.sessionToResume("skipped")
	assert.False(t, ok)
}

func TestNewFlowSnapshot_Completed(t *testing.T) {
	snapshot := newFlowSnapshot([]cobalt_dto.ScreeningSession{{ScreeningSessionID: "done", Completed: true}}, nil)

	assert.True(t, snapshot.HasCompletedScreening)
	assert.False(t, snapshot.HasIncompleteScreening)
	_, ok := snapshot.sessionToResume("")
	assert.False(t, ok)
}

func TestFindActiveFlowVersion(t *testing.T) {
	result := &cobalt_dto.FindScreeningFlowVersionsResponse{
		ActiveScreeningFlowVersionID: "v-2",
		ScreeningFlowVersions: []cobalt_dto.ScreeningFlowVersion{
			{ScreeningFlowVersionID: "v-1"},
			{ScreeningFlowVersionID: "v-2", PhoneNumberRequired: true},
		},
	}

	version, ok := findActiveFlowVersion(result)
	require.True(t, ok)
	assert.True(t, version.PhoneNumberRequired)

	result.ActiveScreeningFlowVersionID = "v-9"
	_, ok = findActiveFlowVersion(result)
	assert.False(t, ok)
}
