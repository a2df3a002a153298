package models

import (
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/exceptions"
)

// Destination is where the web client goes once a screening session is done
// or skipped. Each variant carries only the fields its route needs.
type Destination interface {
	DestinationID() string
	isDestination()
}

type CrisisDestination struct{}

type ContentListDestination struct{}

type GroupSessionListDestination struct{}

type ProviderListDestination struct{}

type MhicResultsDestination struct {
	PatientOrderID string
}

type PatientResultsDestination struct{}

type HomeDestination struct{}

func (CrisisDestination) DestinationID() string { return constvars.DestinationCrisis }
func (ContentListDestination) DestinationID() string { return constvars.DestinationContentList }
func (GroupSessionListDestination) DestinationID() string {
	return constvars.DestinationGroupSessionList
}
func (ProviderListDestination) DestinationID() string {
	return constvars.DestinationOneOnOneProviderList
}
func (MhicResultsDestination) DestinationID() string {
	return constvars.DestinationIcMhicScreeningSessionResults
}
func (PatientResultsDestination) DestinationID() string {
	return constvars.DestinationIcPatientScreeningSessionResults
}
func (HomeDestination) DestinationID() string { return constvars.DestinationHome }

func (CrisisDestination) isDestination()           {}
func (ContentListDestination) isDestination()      {}
func (GroupSessionListDestination) isDestination() {}
func (ProviderListDestination) isDestination()     {}
func (MhicResultsDestination) isDestination()      {}
func (PatientResultsDestination) isDestination()   {}
func (HomeDestination) isDestination()             {}

// DecodeDestination turns the loosely typed API destination into a Destination.
// Unknown ids fall back to the provider list, matching the router's default case.
func DecodeDestination(raw *cobalt_dto.ScreeningSessionDestination) (Destination, error) {
	if raw == nil || raw.ScreeningSessionDestinationID == "" {
		return nil, exceptions.ErrInvalidDestination(nil)
	}

	switch raw.ScreeningSessionDestinationID {
	case constvars.DestinationCrisis:
		return CrisisDestination{}, nil
	case constvars.DestinationContentList:
		return ContentListDestination{}, nil
	case constvars.DestinationGroupSessionList:
		return GroupSessionListDestination{}, nil
	case constvars.DestinationIcMhicScreeningSessionResults:
		patientOrderID := raw.Context[constvars.DestinationContextPatientOrderID]
		if patientOrderID == "" {
			return nil, exceptions.ErrMissingDestinationPatientOrderID(nil, raw.ScreeningSessionDestinationID)
		}
		return MhicResultsDestination{PatientOrderID: patientOrderID}, nil
	case constvars.DestinationIcPatientScreeningSessionResults:
		return PatientResultsDestination{}, nil
	case constvars.DestinationHome:
		return HomeDestination{}, nil
	default:
		return ProviderListDestination{}, nil
	}
}
