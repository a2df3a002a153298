package screening_flows

import (
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"sort"
)

// flowSnapshot is everything known about a flow after sessions and versions were fetched.
type flowSnapshot struct {
	Sessions               []cobalt_dto.ScreeningSession
	IncompleteSessions     []cobalt_dto.ScreeningSession
	ActiveFlowVersion      *cobalt_dto.ScreeningFlowVersion
	HasCompletedScreening  bool
	HasIncompleteScreening bool
}

func newFlowSnapshot(sessions []cobalt_dto.ScreeningSession, activeFlowVersion *cobalt_dto.ScreeningFlowVersion) *flowSnapshot {
	snapshot := &flowSnapshot{
		Sessions:          sessions,
		ActiveFlowVersion: activeFlowVersion,
	}

	for _, session := range sessions {
		if !session.Completed {
			snapshot.IncompleteSessions = append(snapshot.IncompleteSessions, session)
		}
		if session.Completed && !session.Skipped {
			snapshot.HasCompletedScreening = true
		}
	}

	// oldest first, so the last element is the most recently created
	sort.SliceStable(snapshot.IncompleteSessions, func(i, j int) bool {
		return snapshot.IncompleteSessions[i].Created.Before(snapshot.IncompleteSessions[j].Created)
	})
	snapshot.HasIncompleteScreening = len(snapshot.IncompleteSessions) > 0

	return snapshot
}

// sessionToResume picks the requested incomplete session, or the most recent one when none is requested.
func (s *flowSnapshot) sessionToResume(screeningSessionID string) (*cobalt_dto.ScreeningSession, bool) {
	if screeningSessionID == "" {
		if len(s.IncompleteSessions) == 0 {
			return nil, false
		}
		return &s.IncompleteSessions[len(s.IncompleteSessions)-1], true
	}

	for i := range s.IncompleteSessions {
		if s.IncompleteSessions[i].ScreeningSessionID == screeningSessionID {
			return &s.IncompleteSessions[i], true
		}
	}
	return nil, false
}

func findActiveFlowVersion(result *cobalt_dto.FindScreeningFlowVersionsResponse) (*cobalt_dto.ScreeningFlowVersion, bool) {
	if result == nil {
		return nil, false
	}
	for i := range result.ScreeningFlowVersions {
		if result.ScreeningFlowVersions[i].ScreeningFlowVersionID == result.ActiveScreeningFlowVersionID {
			return &result.ScreeningFlowVersions[i], true
		}
	}
	return nil, false
}
