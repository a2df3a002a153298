package contracts

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"context"
)

// SessionCache holds the sessions fetched for one (flow, account, patient order)
// for a short while so repeated checks within a page view do not refetch.
type SessionCache interface {
	Get(ctx context.Context, key models.FlowKey) ([]cobalt_dto.ScreeningSession, bool, error)
	Put(ctx context.Context, key models.FlowKey, sessions []cobalt_dto.ScreeningSession) error
	Invalidate(ctx context.Context, key models.FlowKey) error
}

type AnalyticsPublisher interface {
	Publish(ctx context.Context, event *models.AnalyticsEvent) error
}

type PhoneGateStore interface {
	Open(ctx context.Context, key models.FlowKey, gate *models.PhoneGate) error
	Find(ctx context.Context, key models.FlowKey) (*models.PhoneGate, error)
	Close(ctx context.Context, key models.FlowKey) error
}

type AuditRepository interface {
	Record(ctx context.Context, audit *models.ScreeningDecisionAudit) error
}
