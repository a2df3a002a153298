package models

import "time"

// ScreeningDecisionAudit records one decision taken for a screening flow.
type ScreeningDecisionAudit struct {
	ID                     string    `bson:"_id,omitempty"`
	RequestID              string    `bson:"requestId"`
	AccountID              string    `bson:"accountId"`
	ScreeningFlowID        string    `bson:"screeningFlowId,omitempty"`
	ScreeningFlowVersionID string    `bson:"screeningFlowVersionId,omitempty"`
	ScreeningSessionID     string    `bson:"screeningSessionId,omitempty"`
	PatientOrderID         string    `bson:"patientOrderId,omitempty"`
	Event                  FlowEvent `bson:"event"`
	State                  FlowState `bson:"state"`
	NavigationURL          string    `bson:"navigationUrl,omitempty"`
	PhoneFingerprint       string    `bson:"phoneFingerprint,omitempty"`
	CreatedAt              time.Time `bson:"createdAt"`
}
