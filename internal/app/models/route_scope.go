package models

type ScopeKind string

const (
	ScopeKindMhicOrder ScopeKind = "MHIC_ORDER"
	ScopeKindPatient   ScopeKind = "PATIENT"
)

type ScopeFrame struct {
	Kind           ScopeKind `json:"kind" validate:"required,oneof=MHIC_ORDER PATIENT"`
	PatientOrderID string    `json:"patientOrderId,omitempty"`
}

// RouteScope lists the page scopes the caller is nested in, outermost first.
type RouteScope []ScopeFrame

// InnermostQuestionFrame returns the innermost frame that decides where the
// next question is shown: an MHIC order frame carrying a patient order id, or
// a patient frame.
func (s RouteScope) InnermostQuestionFrame() (ScopeFrame, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		frame := s[i]
		if frame.Kind == ScopeKindMhicOrder && frame.PatientOrderID != "" {
			return frame, true
		}
		if frame.Kind == ScopeKindPatient {
			return frame, true
		}
	}
	return ScopeFrame{}, false
}

// PatientOrderID is the patient order id of the innermost frame that has one.
func (s RouteScope) PatientOrderID() string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].PatientOrderID != "" {
			return s[i].PatientOrderID
		}
	}
	return ""
}
