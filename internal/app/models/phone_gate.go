package models

import "time"

// PhoneGate is the open phone collection interstitial for a flow.
type PhoneGate struct {
	ScreeningFlowID        string    `json:"screeningFlowId"`
	ScreeningFlowVersionID string    `json:"screeningFlowVersionId"`
	PatientOrderID         string    `json:"patientOrderId,omitempty"`
	Skippable              bool      `json:"skippable"`
	OpenedAt               time.Time `json:"openedAt"`
}
