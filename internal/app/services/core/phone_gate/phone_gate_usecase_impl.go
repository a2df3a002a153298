package phone_gate

import (
	"cobalt-screening-service/internal/app/contracts"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/dto/responses"
	"cobalt-screening-service/internal/pkg/exceptions"
	"cobalt-screening-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

var (
	phoneGateUsecaseInstance contracts.PhoneGateUsecase
	oncePhoneGateUsecase     sync.Once
)

type phoneGateUsecase struct {
	PhoneGateStore             contracts.PhoneGateStore
	ScreeningFlowVersionClient contracts.ScreeningFlowVersionClient
	AccountClient              contracts.AccountClient
	ScreeningFlowUsecase       contracts.ScreeningFlowUsecase
	DestinationUsecase         contracts.DestinationUsecase
	SessionCache               contracts.SessionCache
	AuditRepository            contracts.AuditRepository
	Log                        *zap.Logger
}

func NewPhoneGateUsecase(
	phoneGateStore contracts.PhoneGateStore,
	screeningFlowVersionClient contracts.ScreeningFlowVersionClient,
	accountClient contracts.AccountClient,
	screeningFlowUsecase contracts.ScreeningFlowUsecase,
	destinationUsecase contracts.DestinationUsecase,
	sessionCache contracts.SessionCache,
	auditRepository contracts.AuditRepository,
	logger *zap.Logger,
) contracts.PhoneGateUsecase {
	oncePhoneGateUsecase.Do(func() {
		instance := &phoneGateUsecase{
			PhoneGateStore:             phoneGateStore,
			ScreeningFlowVersionClient: screeningFlowVersionClient,
			AccountClient:              accountClient,
			ScreeningFlowUsecase:       screeningFlowUsecase,
			DestinationUsecase:         destinationUsecase,
			SessionCache:               sessionCache,
			AuditRepository:            auditRepository,
			Log:                        logger,
		}
		phoneGateUsecaseInstance = instance
	})
	return phoneGateUsecaseInstance
}

// SkipScreeningFlow leaves the gate through the skip endpoint and routes to the
// destination of the skipped session, replacing the gate in history.
func (uc *phoneGateUsecase) SkipScreeningFlow(ctx context.Context, request *requests.ScreeningFlow) (*responses.ScreeningFlowDecision, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("phoneGateUsecase.SkipScreeningFlow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
	)

	flowKey := request.FlowKey()
	gate, err := uc.findOpenGate(ctx, flowKey)
	if err != nil {
		return nil, err
	}

	if !gate.Skippable {
		err := exceptions.ErrFlowVersionNotSkippable(nil, gate.ScreeningFlowVersionID)
		uc.Log.Error("phoneGateUsecase.SkipScreeningFlow flow version is not skippable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningFlowVersionIDKey, gate.ScreeningFlowVersionID),
			zap.Error(err),
		)
		return nil, err
	}

	state, ok := models.NextFlowState(models.FlowStateNeedsPhone, models.EvGateSkipped)
	if !ok {
		return nil, exceptions.ErrInvalidFlowTransition(nil, string(models.FlowStateNeedsPhone), string(models.EvGateSkipped))
	}

	session, err := uc.ScreeningFlowVersionClient.SkipScreeningFlowVersion(ctx, gate.ScreeningFlowVersionID, &cobalt_dto.SkipScreeningFlowVersionRequest{
		TargetAccountID: request.TargetAccountID,
		PatientOrderID:  request.PatientOrderID,
	})
	if err != nil {
		if !utils.IsAborted(err) {
			uc.Log.Error("phoneGateUsecase.SkipScreeningFlow error calling ScreeningFlowVersionClient.SkipScreeningFlowVersion",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingScreeningFlowVersionIDKey, gate.ScreeningFlowVersionID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	uc.closeGate(ctx, flowKey)

	destination, err := models.DecodeDestination(session.ScreeningSessionDestination)
	if err != nil {
		uc.Log.Error("phoneGateUsecase.SkipScreeningFlow error decoding destination",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningSessionIDKey, session.ScreeningSessionID),
			zap.Error(err),
		)
		return nil, err
	}

	params := make(map[string]string, len(request.DestinationParams)+1)
	for key, value := range request.DestinationParams {
		params[key] = value
	}
	params[constvars.QueryParamSkipped] = "true"

	navigation, err := uc.DestinationUsecase.FollowDestination(ctx, destination, params, true)
	if err != nil {
		return nil, err
	}

	uc.recordDecision(ctx, request, &models.ScreeningDecisionAudit{
		ScreeningFlowVersionID: gate.ScreeningFlowVersionID,
		ScreeningSessionID:     session.ScreeningSessionID,
		Event:                  models.EvGateSkipped,
		State:                  state,
		NavigationURL:          navigation.URL,
	})
	uc.Log.Info("phoneGateUsecase.SkipScreeningFlow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningSessionIDKey, session.ScreeningSessionID),
		zap.String(constvars.LoggingNavigationURLKey, navigation.URL),
	)

	return &responses.ScreeningFlowDecision{
		State:                        state,
		ScreeningFlowID:              request.ScreeningFlowID,
		ActiveScreeningFlowVersionID: gate.ScreeningFlowVersionID,
		DidCheckScreeningSessions:    true,
		ScreeningSessionID:           session.ScreeningSessionID,
		Navigation:                   navigation,
	}, nil
}

// CompletePhoneCollection stores the phone number on the target account and
// then starts a brand new session for the flow.
func (uc *phoneGateUsecase) CompletePhoneCollection(ctx context.Context, request *requests.CompletePhoneCollection) (*responses.ScreeningFlowDecision, error) {
	requestID := utils.GetRequestID(ctx)

	request.PhoneNumber = utils.NormalizePhoneNumber(request.PhoneNumber)
	fingerprint := utils.FingerprintPhoneNumber(request.PhoneNumber)
	uc.Log.Info("phoneGateUsecase.CompletePhoneCollection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningFlowIDKey, request.ScreeningFlowID),
		zap.String(constvars.LoggingPhoneFingerprintKey, fingerprint),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("phoneGateUsecase.CompletePhoneCollection error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	flowKey := request.FlowKey()
	gate, err := uc.findOpenGate(ctx, flowKey)
	if err != nil {
		return nil, err
	}

	accountID := request.TargetAccountIDOrSelf()
	_, err = uc.AccountClient.UpdatePhoneNumber(ctx, accountID, &cobalt_dto.UpdatePhoneNumberRequest{
		PhoneNumber: request.PhoneNumber,
	})
	if err != nil {
		if !utils.IsAborted(err) {
			uc.Log.Error("phoneGateUsecase.CompletePhoneCollection error calling AccountClient.UpdatePhoneNumber",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAccountIDKey, accountID),
				zap.String(constvars.LoggingPhoneFingerprintKey, fingerprint),
				zap.Error(err),
			)
		}
		return nil, err
	}

	uc.closeGate(ctx, flowKey)

	decision, err := uc.ScreeningFlowUsecase.CreateScreeningSession(ctx, &request.ScreeningFlow)
	if err != nil {
		return nil, err
	}

	uc.recordDecision(ctx, &request.ScreeningFlow, &models.ScreeningDecisionAudit{
		ScreeningFlowVersionID: gate.ScreeningFlowVersionID,
		ScreeningSessionID:     decision.ScreeningSessionID,
		Event:                  models.EvGateCompleted,
		State:                  decision.State,
		PhoneFingerprint:       fingerprint,
	})
	uc.Log.Info("phoneGateUsecase.CompletePhoneCollection succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScreeningSessionIDKey, decision.ScreeningSessionID),
	)
	return decision, nil
}

func (uc *phoneGateUsecase) findOpenGate(ctx context.Context, flowKey models.FlowKey) (*models.PhoneGate, error) {
	requestID := utils.GetRequestID(ctx)

	gate, err := uc.PhoneGateStore.Find(ctx, flowKey)
	if err != nil {
		uc.Log.Error("phoneGateUsecase.findOpenGate error calling PhoneGateStore.Find",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if gate == nil {
		err := exceptions.ErrPhoneGateNotOpen(nil)
		uc.Log.Info("phoneGateUsecase.findOpenGate no gate open",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScreeningFlowIDKey, flowKey.ScreeningFlowID),
		)
		return nil, err
	}
	return gate, nil
}

// closeGate drops the gate and the cached sessions. An unclosed gate still
// expires with its ttl.
func (uc *phoneGateUsecase) closeGate(ctx context.Context, flowKey models.FlowKey) {
	requestID := utils.GetRequestID(ctx)

	if err := uc.PhoneGateStore.Close(ctx, flowKey); err != nil {
		uc.Log.Warn("phoneGateUsecase.closeGate error calling PhoneGateStore.Close",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if err := uc.SessionCache.Invalidate(ctx, flowKey); err != nil {
		uc.Log.Warn("phoneGateUsecase.closeGate error calling SessionCache.Invalidate",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *phoneGateUsecase) recordDecision(ctx context.Context, request *requests.ScreeningFlow, audit *models.ScreeningDecisionAudit) {
	if uc.AuditRepository == nil {
		return
	}

	audit.RequestID = utils.GetRequestID(ctx)
	audit.AccountID = request.AccountID
	audit.ScreeningFlowID = request.ScreeningFlowID
	audit.PatientOrderID = request.PatientOrderID

	utils.LogBusinessEvent(uc.Log, string(audit.Event), audit.RequestID,
		zap.String(constvars.LoggingScreeningFlowIDKey, audit.ScreeningFlowID),
		zap.String(constvars.LoggingFlowStateKey, string(audit.State)),
	)

	if err := uc.AuditRepository.Record(ctx, audit); err != nil && !utils.IsAborted(err) {
		uc.Log.Warn("phoneGateUsecase.recordDecision error calling AuditRepository.Record",
			zap.String(constvars.LoggingRequestIDKey, audit.RequestID),
			zap.Error(err),
		)
	}
}
