package destinations

import (
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/constvars"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

type destinationRouter struct {
	CrisisUrl string
}

// NewDestinationRouter returns the router. It holds no state beyond config,
// so identical inputs always yield identical navigations.
func NewDestinationRouter(crisisUrl string) contracts.DestinationRouter {
	return &destinationRouter{CrisisUrl: crisisUrl}
}

func (r *destinationRouter) NavigateToDestination(destination models.Destination, params map[string]string, replace bool) models.Navigation {
	switch d := destination.(type) {
	case models.CrisisDestination:
		return models.Navigation{
			URL:              r.CrisisUrl,
			Replace:          replace,
			FullPageRedirect: true,
			AnalyticsEvent: &models.AnalyticsEvent{
				EventName:     constvars.AnalyticsEventCrisisDestination,
				DestinationID: d.DestinationID(),
			},
		}
	case models.ContentListDestination:
		return models.Navigation{
			URL:     buildURL(constvars.RouteResourceLibrary, [][2]string{{constvars.QueryParamRecommended, "true"}}, params),
			Replace: replace,
		}
	case models.GroupSessionListDestination:
		return models.Navigation{
			URL:     buildURL(constvars.RouteGroupSessions, nil, params),
			Replace: replace,
		}
	case models.MhicResultsDestination:
		return models.Navigation{
			URL:             fmt.Sprintf(constvars.RouteMhicOrderAssessmentDone, url.PathEscape(d.PatientOrderID)),
			Replace:         replace,
			RefreshPageData: true,
		}
	case models.PatientResultsDestination:
		return models.Navigation{
			URL:             constvars.RoutePatientAssessmentDone,
			Replace:         replace,
			RefreshPageData: true,
		}
	case models.HomeDestination:
		return models.Navigation{
			URL:              constvars.RouteHome,
			Replace:          replace,
			FullPageRedirect: true,
		}
	default:
		return models.Navigation{
			URL:     buildURL(constvars.RouteConnectWithSupport, nil, params),
			Replace: replace,
		}
	}
}

func (r *destinationRouter) NavigateToQuestion(screeningQuestionContextID string, scope models.RouteScope) models.Navigation {
	contextID := url.PathEscape(screeningQuestionContextID)

	frame, ok := scope.InnermostQuestionFrame()
	if !ok {
		return models.Navigation{URL: fmt.Sprintf(constvars.RouteScreeningQuestion, contextID)}
	}

	switch frame.Kind {
	case models.ScopeKindMhicOrder:
		return models.Navigation{URL: fmt.Sprintf(constvars.RouteMhicOrderAssessment, url.PathEscape(frame.PatientOrderID), contextID)}
	default:
		return models.Navigation{URL: fmt.Sprintf(constvars.RoutePatientAssessment, contextID)}
	}
}

// buildURL appends the fixed parameters in order, then params sorted by key.
// Keys already present in fixed are not repeated.
func buildURL(path string, fixed [][2]string, params map[string]string) string {
	parts := make([]string, 0, len(fixed)+len(params))
	seen := make(map[string]bool, len(fixed))
	for _, kv := range fixed {
		parts = append(parts, url.QueryEscape(kv[0])+"="+url.QueryEscape(kv[1]))
		seen[kv[0]] = true
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(params[key]))
	}

	if len(parts) == 0 {
		return path
	}
	return path + "?" + strings.Join(parts, "&")
}
