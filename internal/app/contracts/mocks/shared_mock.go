package mocks

import (
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockSessionCache struct {
	mock.Mock
}

func (m *MockSessionCache) Get(ctx context.Context, key models.FlowKey) ([]cobalt_dto.ScreeningSession, bool, error) {
	args := m.Called(ctx, key)
	sessions, _ := args.Get(0).([]cobalt_dto.ScreeningSession)
	return sessions, args.Bool(1), args.Error(2)
}

func (m *MockSessionCache) Put(ctx context.Context, key models.FlowKey, sessions []cobalt_dto.ScreeningSession) error {
	args := m.Called(ctx, key, sessions)
	return args.Error(0)
}

func (m *MockSessionCache) Invalidate(ctx context.Context, key models.FlowKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockAnalyticsPublisher struct {
	mock.Mock
}

func (m *MockAnalyticsPublisher) Publish(ctx context.Context, event *models.AnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockPhoneGateStore struct {
	mock.Mock
}

func (m *MockPhoneGateStore) Open(ctx context.Context, key models.FlowKey, gate *models.PhoneGate) error {
	args := m.Called(ctx, key, gate)
	return args.Error(0)
}

func (m *MockPhoneGateStore) Find(ctx context.Context, key models.FlowKey) (*models.PhoneGate, error) {
	args := m.Called(ctx, key)
	gate, _ := args.Get(0).(*models.PhoneGate)
	return gate, args.Error(1)
}

func (m *MockPhoneGateStore) Close(ctx context.Context, key models.FlowKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Record(ctx context.Context, audit *models.ScreeningDecisionAudit) error {
	args := m.Called(ctx, audit)
	return args.Error(0)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}
