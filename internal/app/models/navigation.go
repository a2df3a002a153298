package models

// Navigation is the page transition the web client should perform.
type Navigation struct {
	URL              string          `json:"url"`
	Replace          bool            `json:"replace"`
	FullPageRedirect bool            `json:"fullPageRedirect"`
	RefreshPageData  bool            `json:"refreshPageData"`
	AnalyticsEvent   *AnalyticsEvent `json:"analyticsEvent,omitempty"`
}

type AnalyticsEvent struct {
	EventName     string `json:"eventName"`
	DestinationID string `json:"destinationId"`
}
