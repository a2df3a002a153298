package models

type FlowState string

const (
	FlowStateUnchecked       FlowState = "UNCHECKED"
	FlowStateBypassed        FlowState = "BYPASSED"
	FlowStateReady           FlowState = "READY"
	FlowStateAlreadyComplete FlowState = "ALREADY_COMPLETE"
	FlowStateNeedsPhone      FlowState = "NEEDS_PHONE"
	FlowStateNoPhoneNeeded   FlowState = "NO_PHONE_NEEDED"
	FlowStateSessionActive   FlowState = "SESSION_ACTIVE"
)

type FlowEvent string

const (
	EvBypassed         FlowEvent = "BYPASSED"
	EvChecked          FlowEvent = "CHECKED"
	EvAlreadyComplete  FlowEvent = "ALREADY_COMPLETE"
	EvPhoneRequired    FlowEvent = "PHONE_REQUIRED"
	EvPhoneNotRequired FlowEvent = "PHONE_NOT_REQUIRED"
	EvSessionStarted   FlowEvent = "SESSION_STARTED"
	EvGateSkipped      FlowEvent = "GATE_SKIPPED"
	EvGateCompleted    FlowEvent = "GATE_COMPLETED"
)

// FlowTransition is a single allowed edge of the screening flow state machine.
type FlowTransition struct {
	From  FlowState
	To    FlowState
	Event FlowEvent
}

var flowTransitions = []FlowTransition{
	{From: FlowStateUnchecked, To: FlowStateBypassed, Event: EvBypassed},
	{From: FlowStateUnchecked, To: FlowStateReady, Event: EvChecked},

	// Start path
	{From: FlowStateReady, To: FlowStateAlreadyComplete, Event: EvAlreadyComplete},
	{From: FlowStateReady, To: FlowStateNeedsPhone, Event: EvPhoneRequired},
	{From: FlowStateReady, To: FlowStateNoPhoneNeeded, Event: EvPhoneNotRequired},
	{From: FlowStateReady, To: FlowStateSessionActive, Event: EvSessionStarted},
	{From: FlowStateNoPhoneNeeded, To: FlowStateSessionActive, Event: EvSessionStarted},

	// Gate exits
	{From: FlowStateNeedsPhone, To: FlowStateSessionActive, Event: EvGateSkipped},
	{From: FlowStateNeedsPhone, To: FlowStateSessionActive, Event: EvGateCompleted},
}

// IsTerminal reports whether nothing else happens to the flow in this page view.
func (s FlowState) IsTerminal() bool {
	return s == FlowStateAlreadyComplete || s == FlowStateSessionActive || s == FlowStateBypassed
}

// NextFlowState returns the state reached from "from" on event, if allowed.
func NextFlowState(from FlowState, event FlowEvent) (FlowState, bool) {
	for _, transition := range flowTransitions {
		if transition.From == from && transition.Event == event {
			return transition.To, true
		}
	}
	return from, false
}
