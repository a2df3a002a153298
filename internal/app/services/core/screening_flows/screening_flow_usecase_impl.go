package screening_flows

import (
	"cobalt-screening-service/internal/app/config"
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/dto/responses"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	screeningFlowUsecaseInstance contracts.ScreeningFlowUsecase
	onceScreeningFlowUsecase     sync.Once
)

type screeningFlowUsecase struct {
	ScreeningSessionClient     contracts.ScreeningSessionClient
	ScreeningFlowVersionClient contracts.ScreeningFlowVersionClient
	DestinationUsecase         contracts.DestinationUsecase
	SessionCache               contracts.SessionCache
	PhoneGateStore             contracts.PhoneGateStore
	LockerService              contracts.LockerService
	AuditRepository            contracts.AuditRepository
	InternalConfig             *config.InternalConfig
	Log                        *zap.Logger
}

func NewScreeningFlowUsecase(
	screeningSessionClient contracts.ScreeningSessionClient,
	screeningFlowVersionClient contracts.ScreeningFlowVersionClient,
	destinationUsecase contracts.DestinationUsecase,
	sessionCache contracts.SessionCache,
	phoneGateStore contracts.PhoneGateStore,
	lockerService contracts.LockerService,
	auditRepository contracts.AuditRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScreeningFlowUsecase {
	onceScreeningFlowUsecase.Do(func() {
		instance := &screeningFlowUsecase{
			ScreeningSessionClient:     screeningSessionClient,
			ScreeningFlowVersionClient: screeningFlowVersionClient,
			DestinationUsecase:         destinationUsecase,
			SessionCache:               sessionCache,
			PhoneGateStore:             phoneGateStore,
			LockerService:              lockerService,
			AuditRepository:            auditRepository,
			InternalConfig:             internalConfig,
			Log:                        logger,
		}
		screeningFlowUsecaseInstance = instance
	})
	return screeningFlowUsecaseInstance
}

// CheckScreeningFlow runs on page load. Without a flow id, or once the flow was
// skipped, nothing is fetched and the page renders as is.
func (uc *screeningFlowUsecase) CheckScreeningFlow(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("screeningFlowUsecase.CheckScreeningFlow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
		zap.Bool("instantiate_on_load", request.InstantiateOnLoad),
		zap.Bool(constvars.QueryParamSkipped, request.Skipped),
	)

	if request.ScreeningFlowID == "" || request.Skipped {
		state, err := uc.transition(models.FlowStateUnchecked, models.EvBypassed)
		if err != nil {
			return nil, err
		}
		return &responses.ScreeningFlowDecision{
			State:                     state,
			ScreeningFlowID:           request.ScreeningFlowID,
			DidCheckScreeningSessions: true,
		}, nil
	}

	gate, err := uc.PhoneGateStore.Find(ctx, request.FlowKey())
	if err != nil {
		uc.Log.Error("screeningFlowUsecase.CheckScreeningFlow error calling PhoneGateStore.Find",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	// a check that may start the flow reads sessions fresh
	snapshot, err := uc.fetchFlowSnapshot(ctx, request, !request.InstantiateOnLoad)
	if err != nil {
		return nil, err
	}

	state, err := uc.transition(models.FlowStateUnchecked, models.EvChecked)
	if err != nil {
		return nil, err
	}

	if gate != nil {
		state, err = uc.transition(state, models.EvPhoneRequired)
		if err != nil {
			return nil, err
		}
		decision := uc.buildDecision(request, snapshot, state)
		decision.PhoneGate = gate
		return decision, nil
	}

	if request.InstantiateOnLoad {
		return uc.startIfNoneCompleted(ctx, request, snapshot, state)
	}

	uc.Log.Info("screeningFlowUsecase.CheckScreeningFlow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowStateKey, string(state)),
	)
	return uc.buildDecision(request, snapshot, state), nil
}

func (uc *screeningFlowUsecase) StartScreeningFlowIfNoneCompleted(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	uc.Log.Info("screeningFlowUsecase.StartScreeningFlowIfNoneCompleted called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
	)

	snapshot, state, err := uc.prepare(ctx, request)
	if err != nil {
		return nil, err
	}
	return uc.startIfNoneCompleted(ctx, request, snapshot, state)
}

func (uc *screeningFlowUsecase) StartScreeningFlow(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	uc.Log.Info("screeningFlowUsecase.StartScreeningFlow called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
	)

	snapshot, state, err := uc.prepare(ctx, request)
	if err != nil {
		return nil, err
	}
	return uc.startFlow(ctx, request, snapshot, state)
}

func (uc *screeningFlowUsecase) ResumeOrCreateScreeningSession(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	uc.Log.Info("screeningFlowUsecase.ResumeOrCreateScreeningSession called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
		zap.String(constvars.LoggingScreeningSessionIDKey, request.ScreeningSessionID),
	)

	snapshot, state, err := uc.prepare(ctx, request)
	if err != nil {
		return nil, err
	}
	return uc.resumeOrCreate(ctx, request, snapshot, state, models.EvSessionStarted)
}

// CreateScreeningSession always creates a new session against the active
// version. It is the exit taken once the phone number was collected, so the
// flow is expected to be waiting on the phone gate.
func (uc *screeningFlowUsecase) CreateScreeningSession(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	uc.Log.Info("screeningFlowUsecase.CreateScreeningSession called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
	)

	if request.ScreeningFlowID == "" {
		return nil, exceptions.ErrMissingScreeningFlowID(nil)
	}

	snapshot, err := uc.fetchFlowSnapshot(ctx, request, false)
	if err != nil {
		return nil, err
	}
	return uc.createAndNavigate(ctx, request, snapshot, models.FlowStateNeedsPhone, models.EvGateCompleted)
}

// prepare rejects calls while the phone gate is open, then fetches the flow.
func (uc *screeningFlowUsecase) prepare(ctx context.Context, request *requests.ScreeningFlow) (*flowSnapshot, models.FlowState, error) {
	requestID := utils.GetRequestID(ctx)

	if request.ScreeningFlowID == "" {
		return nil, models.FlowStateUnchecked, exceptions.ErrMissingScreeningFlowID(nil)
	}

	gate, err := uc.PhoneGateStore.Find(ctx, request.FlowKey())
	if err != nil {
		uc.Log.Error("screeningFlowUsecase.prepare error calling PhoneGateStore.Find",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, models.FlowStateUnchecked, err
	}
	if gate != nil {
		err := exceptions.ErrPhoneGateOpen(nil)
		uc.Log.Info("screeningFlowUsecase.prepare phone gate is open",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
		)
		return nil, models.FlowStateUnchecked, err
	}

	snapshot, err := uc.fetchFlowSnapshot(ctx, request, false)
	if err != nil {
		return nil, models.FlowStateUnchecked, err
	}

	state, err := uc.transition(models.FlowStateUnchecked, models.EvChecked)
	if err != nil {
		return nil, models.FlowStateUnchecked, err
	}
	return snapshot, state, nil
}

func (uc *screeningFlowUsecase) startIfNoneCompleted(ctx context.Context, request *requests.ScreeningFlow, snapshot *flowSnapshot, state models.FlowState) (*responses.ScreeningFlowDecision, error) {
	if !snapshot.HasCompletedScreening {
		return uc.startFlow(ctx, request, snapshot, state)
	}

	state, err := uc.transition(state, models.EvAlreadyComplete)
	if err != nil {
		return nil, err
	}

	uc.recordDecision(ctx, request, &models.ScreeningDecisionAudit{
		ScreeningFlowVersionID: snapshot.ActiveFlowVersion.ScreeningFlowVersionID,
		Event:                  models.EvAlreadyComplete,
		State:                  state,
	})
	uc.Log.Info("screeningFlowUsecase.startIfNoneCompleted flow already complete",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
	)
	return uc.buildDecision(request, snapshot, state), nil
}

func (uc *screeningFlowUsecase) startFlow(ctx context.Context, request *requests.ScreeningFlow, snapshot *flowSnapshot, state models.FlowState) (*responses.ScreeningFlowDecision, error) {
	requestID := utils.GetRequestID(ctx)

	if !snapshot.ActiveFlowVersion.PhoneNumberRequired {
		state, err := uc.transition(state, models.EvPhoneNotRequired)
		if err != nil {
			return nil, err
		}
		return uc.resumeOrCreate(ctx, request, snapshot, state, models.EvSessionStarted)
	}

	state, err := uc.transition(state, models.EvPhoneRequired)
	if err != nil {
		return nil, err
	}

	gate := &models.PhoneGate{
		ScreeningFlowID:        request.ScreeningFlowID,
		ScreeningFlowVersionID: snapshot.ActiveFlowVersion.ScreeningFlowVersionID,
		PatientOrderID:         request.PatientOrderID,
		Skippable:              snapshot.ActiveFlowVersion.Skippable,
		OpenedAt:               time.Now().UTC(),
	}
	err = uc.PhoneGateStore.Open(ctx, request.FlowKey(), gate)
	if err != nil {
		uc.Log.Error("screeningFlowUsecase.startFlow error calling PhoneGateStore.Open",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.recordDecision(ctx, request, &models.ScreeningDecisionAudit{
		ScreeningFlowVersionID: gate.ScreeningFlowVersionID,
		Event:                  models.EvPhoneRequired,
		State:                  state,
	})
	uc.Log.Info("screeningFlowUsecase.startFlow phone gate opened",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningFlowVersionIDKey, gate.ScreeningFlowVersionID),
	)

	decision := uc.buildDecision(request, snapshot, state)
	decision.PhoneGate = gate
	return decision, nil
}

func (uc *screeningFlowUsecase) resumeOrCreate(ctx context.Context, request *requests.ScreeningFlow, snapshot *flowSnapshot, state models.FlowState, event models.FlowEvent) (*responses.ScreeningFlowDecision, error) {
	requestID := utils.GetRequestID(ctx)

	if request.ScreeningSessionID == "" && !snapshot.HasIncompleteScreening {
		return uc.createAndNavigate(ctx, request, snapshot, state, event)
	}

	session, ok := snapshot.sessionToResume(request.ScreeningSessionID)
	if !ok {
		err := exceptions.ErrIncompleteSessionNotFound(nil, request.ScreeningSessionID)
		uc.Log.Error("screeningFlowUsecase.resumeOrCreate requested session is not incomplete",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningSessionIDKey, request.ScreeningSessionID),
			zap.Int(constvars.LoggingIncompleteSessionCountKey, len(snapshot.IncompleteSessions)),
			zap.Error(err),
		)
		return nil, err
	}

	nextState, err := uc.transition(state, event)
	if err != nil {
		return nil, err
	}

	navigation, err := uc.DestinationUsecase.NavigateToNextStep(ctx, models.NextStepFromSession(session, request.RouteScope, request.DestinationParams, false))
	if err != nil {
		return nil, err
	}

	uc.recordDecision(ctx, request, &models.ScreeningDecisionAudit{
		ScreeningFlowVersionID: session.ScreeningFlowVersionID,
		ScreeningSessionID:     session.ScreeningSessionID,
		Event:                  event,
		State:                  nextState,
		NavigationURL:          navigation.URL,
	})
	uc.Log.Info("screeningFlowUsecase.resumeOrCreate resumed session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningSessionIDKey, session.ScreeningSessionID),
		zap.String(constvars.LoggingNavigationURLKey, navigation.URL),
	)

	decision := uc.buildDecision(request, snapshot, nextState)
	decision.ScreeningSessionID = session.ScreeningSessionID
	decision.Navigation = navigation
	return decision, nil
}

// createAndNavigate creates a session under a per flow lock so a double submit
// cannot create two sessions.
func (uc *screeningFlowUsecase) createAndNavigate(ctx context.Context, request *requests.ScreeningFlow, snapshot *flowSnapshot, state models.FlowState, event models.FlowEvent) (*responses.ScreeningFlowDecision, error) {
	requestID := utils.GetRequestID(ctx)

	nextState, err := uc.transition(state, event)
	if err != nil {
		return nil, err
	}

	flowKey := request.FlowKey()
	lockKey := flowKey.CreateSessionLockRedisKey()
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, uc.InternalConfig.Screening.CreateSessionLockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSessionCreateInProgress(nil)
	}
	defer func() {
		// the request context may already be done here
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := uc.LockerService.Unlock(unlockCtx, lockKey, lockValue); err != nil {
			uc.Log.Warn("screeningFlowUsecase.createAndNavigate error calling LockerService.Unlock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	createRequest := &cobalt_dto.CreateScreeningSessionRequest{
		ScreeningFlowVersionID: snapshot.ActiveFlowVersion.ScreeningFlowVersionID,
		TargetAccountID:        request.TargetAccountID,
		PatientOrderID:         request.PatientOrderID,
	}
	session, err := uc.ScreeningSessionClient.CreateScreeningSession(ctx, createRequest)
	if err != nil {
		if !utils.IsAborted(err) {
			uc.Log.Error("screeningFlowUsecase.createAndNavigate error calling ScreeningSessionClient.CreateScreeningSession",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingScreeningFlowVersionIDKey, createRequest.ScreeningFlowVersionID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	if err := uc.SessionCache.Invalidate(ctx, flowKey); err != nil {
		uc.Log.Warn("screeningFlowUsecase.createAndNavigate error calling SessionCache.Invalidate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	navigation, err := uc.DestinationUsecase.NavigateToNextStep(ctx, models.NextStepFromSession(session, request.RouteScope, request.DestinationParams, false))
	if err != nil {
		return nil, err
	}

	uc.recordDecision(ctx, request, &models.ScreeningDecisionAudit{
		ScreeningFlowVersionID: session.ScreeningFlowVersionID,
		ScreeningSessionID:     session.ScreeningSessionID,
		Event:                  event,
		State:                  nextState,
		NavigationURL:          navigation.URL,
	})
	uc.Log.Info("screeningFlowUsecase.createAndNavigate created session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningSessionIDKey, session.ScreeningSessionID),
		zap.String(constvars.LoggingNavigationURLKey, navigation.URL),
	)

	decision := uc.buildDecision(request, snapshot, nextState)
	decision.ScreeningSessionID = session.ScreeningSessionID
	decision.HasIncompleteScreening = !session.Completed
	decision.Navigation = navigation
	return decision, nil
}

// fetchFlowSnapshot loads sessions and flow versions concurrently. Both must
// succeed before the active version is selected. Only read-only checks may
// pass useCache; every path that can create or resume a session reads fresh.
func (uc *screeningFlowUsecase) fetchFlowSnapshot(ctx context.Context, request *requests.ScreeningFlow, useCache bool) (*flowSnapshot, error) {
	requestID := utils.GetRequestID(ctx)

	var (
		sessions []cobalt_dto.ScreeningSession
		versions *cobalt_dto.FindScreeningFlowVersionsResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sessions, err = uc.findSessions(gctx, request, useCache)
		return err
	})
	g.Go(func() error {
		var err error
		versions, err = uc.ScreeningFlowVersionClient.FindScreeningFlowVersions(gctx, request.ScreeningFlowID)
		return err
	})

	if err := g.Wait(); err != nil {
		switch {
		case errors.Is(ctx.Err(), context.Canceled):
			return nil, exceptions.ErrRequestAborted(ctx.Err())
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			uc.Log.Error("screeningFlowUsecase.fetchFlowSnapshot deadline exceeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
				zap.Error(err),
			)
			return nil, exceptions.ErrServerDeadlineExceeded(ctx.Err())
		}
		if !utils.IsAborted(err) {
			uc.Log.Error("screeningFlowUsecase.fetchFlowSnapshot error fetching sessions or versions",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	activeFlowVersion, ok := findActiveFlowVersion(versions)
	if !ok {
		err := exceptions.ErrUnknownActiveFlowVersion(nil)
		uc.Log.Error("screeningFlowUsecase.fetchFlowSnapshot active version not in version list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
			zap.Error(err),
		)
		return nil, err
	}

	snapshot := newFlowSnapshot(sessions, activeFlowVersion)
	uc.Log.Debug("screeningFlowUsecase.fetchFlowSnapshot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSessionCountKey, len(snapshot.Sessions)),
		zap.Int(constvars.LoggingIncompleteSessionCountKey, len(snapshot.IncompleteSessions)),
		zap.String(constvars.LoggingScreeningFlowVersionIDKey, activeFlowVersion.ScreeningFlowVersionID),
	)
	return snapshot, nil
}

// findSessions reads through the session cache when useCache is set, otherwise
// it always asks the API. Either way the fetched list refreshes the cache.
// Cache failures fall back to the API.
func (uc *screeningFlowUsecase) findSessions(ctx context.Context, request *requests.ScreeningFlow, useCache bool) ([]cobalt_dto.ScreeningSession, error) {
	requestID := utils.GetRequestID(ctx)
	flowKey := request.FlowKey()

	if useCache {
		cached, ok, err := uc.SessionCache.Get(ctx, flowKey)
		if err != nil {
			uc.Log.Warn("screeningFlowUsecase.findSessions error calling SessionCache.Get",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if ok {
			return cached, nil
		}
	}

	sessions, err := uc.ScreeningSessionClient.FindScreeningSessions(ctx, &cobalt_dto.FindScreeningSessionsQuery{
		ScreeningFlowID: request.ScreeningFlowID,
		TargetAccountID: request.TargetAccountID,
		PatientOrderID:  request.PatientOrderID,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.SessionCache.Put(ctx, flowKey, sessions); err != nil {
		uc.Log.Warn("screeningFlowUsecase.findSessions error calling SessionCache.Put",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return sessions, nil
}

func (uc *screeningFlowUsecase) transition(from models.FlowState, event models.FlowEvent) (models.FlowState, error) {
	next, ok := models.NextFlowState(from, event)
	if !ok {
		return from, exceptions.ErrInvalidFlowTransition(nil, string(from), string(event))
	}
	return next, nil
}

// recordDecision writes the audit trail. Failures are logged and never fail the request.
func (uc *screeningFlowUsecase) recordDecision(ctx context.Context, request *requests.ScreeningFlow, audit *models.ScreeningDecisionAudit) {
	if uc.AuditRepository == nil {
		return
	}

	audit.RequestID = utils.GetRequestID(ctx)
	audit.AccountID = request.AccountID
	audit.ScreeningFlowID = request.ScreeningFlowID
	audit.PatientOrderID = request.PatientOrderID

	// failures are logged by LogOperation and never surface to the caller
	_ = utils.LogOperation(uc.Log, "AuditRepository.Record", audit.RequestID, func() error {
		return uc.AuditRepository.Record(ctx, audit)
	})
}

func (uc *screeningFlowUsecase) buildDecision(request *requests.ScreeningFlow, snapshot *flowSnapshot, state models.FlowState) *responses.ScreeningFlowDecision {
	return &responses.ScreeningFlowDecision{
		State:                        state,
		ScreeningFlowID:              request.ScreeningFlowID,
		ActiveScreeningFlowVersionID: snapshot.ActiveFlowVersion.ScreeningFlowVersionID,
		HasCompletedScreening:        snapshot.HasCompletedScreening,
		HasIncompleteScreening:       snapshot.HasIncompleteScreening,
		IncompleteSessionCount:       len(snapshot.IncompleteSessions),
		DidCheckScreeningSessions:    true,
	}
}
