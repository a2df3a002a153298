package models

import (
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDestination(t *testing.T) {
	tests := []struct {
		name string
		raw  *cobalt_dto.ScreeningSessionDestination
		want Destination
	}{
		{"crisis", &cobalt_dto.ScreeningSessionDestination{ScreeningSessionDestinationID: constvars.DestinationCrisis}, CrisisDestination{}},
		{"content list", &cobalt_dto.ScreeningSessionDestination{ScreeningSessionDestinationID: constvars.DestinationContentList}, ContentListDestination{}},
		{"group sessions", &cobalt_dto.ScreeningSessionDestination{ScreeningSessionDestinationID: constvars.DestinationGroupSessionList}, GroupSessionListDestination{}},
		{"provider list", &cobalt_dto.ScreeningSessionDestination{ScreeningSessionDestinationID: constvars.DestinationOneOnOneProviderList}, ProviderListDestination{}},
		{"patient results", &cobalt_dto.ScreeningSessionDestination{ScreeningSessionDestinationID: constvars.DestinationIcPatientScreeningSessionResults}, PatientResultsDestination{}},
		{"home", &cobalt_dto.ScreeningSessionDestination{ScreeningSessionDestinationID: constvars.DestinationHome}, HomeDestination{}},
		{
			"mhic results",
			&cobalt_dto.ScreeningSessionDestination{
				ScreeningSessionDestinationID: constvars.DestinationIcMhicScreeningSessionResults,
				Context:                       map[string]string{constvars.DestinationContextPatientOrderID: "po-9"},
			},
			MhicResultsDestination{PatientOrderID: "po-9"},
		},
		{"unknown falls back to provider list", &cobalt_dto.ScreeningSessionDestination{ScreeningSessionDestinationID: "SOMETHING_NEW"}, ProviderListDestination{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDestination(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeDestination_Errors(t *testing.T) {
	_, err := DecodeDestination(nil)
	assert.Error(t, err)

	_, err = DecodeDestination(&cobalt_dto.ScreeningSessionDestination{})
	assert.Error(t, err)

	_, err = DecodeDestination(&cobalt_dto.ScreeningSessionDestination{
		ScreeningSessionDestinationID: constvars.DestinationIcMhicScreeningSessionResults,
	})
	assert.Error(t, err)
}
