package cobalt_dto

type ScreeningFlowVersion struct {
	ScreeningFlowVersionID  string `json:"screeningFlowVersionId"`
	ScreeningFlowID         string `json:"screeningFlowId"`
	VersionNumber           int    `json:"versionNumber"`
	Skippable               bool   `json:"skippable"`
	PhoneNumberRequired     bool   `json:"phoneNumberRequired"`
	ScreeningFlowSkipTypeID string `json:"screeningFlowSkipTypeId,omitempty"`
	InitialScreeningID      string `json:"initialScreeningId,omitempty"`
}

type FindScreeningFlowVersionsResponse struct {
	ScreeningFlowVersions        []ScreeningFlowVersion `json:"screeningFlowVersions"`
	ActiveScreeningFlowVersionID string                 `json:"activeScreeningFlowVersionId"`
}

type SkipScreeningFlowVersionRequest struct {
	TargetAccountID string `json:"targetAccountId,omitempty"`
	PatientOrderID  string `json:"patientOrderId,omitempty"`
}
