package models

import (
	"cobalt-screening-service/internal/pkg/constvars"
	"fmt"
)

// FlowKey identifies one screening flow as seen by one account, optionally
// scoped to a patient order.
type FlowKey struct {
	AccountID       string
	ScreeningFlowID string
	PatientOrderID  string
}

func (k FlowKey) SessionsRedisKey() string {
	return fmt.Sprintf(constvars.RedisKeyScreeningSessionsFormat, k.ScreeningFlowID, k.AccountID, k.PatientOrderID)
}

func (k FlowKey) PhoneGateRedisKey() string {
	return fmt.Sprintf(constvars.RedisKeyPhoneGateFormat, k.ScreeningFlowID, k.AccountID, k.PatientOrderID)
}

func (k FlowKey) CreateSessionLockRedisKey() string {
	return fmt.Sprintf(constvars.RedisKeyCreateSessionLockFormat, k.ScreeningFlowID, k.AccountID, k.PatientOrderID)
}
