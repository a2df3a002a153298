package screening_questions

import (
	"cobalt-screening-service/internal/app/contracts/mocks"
	"cobalt-screening-service/internal/app/models"
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/requests"
	"cobalt-screening-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestQuestionUsecase() (*screeningQuestionUsecase, *mocks.MockScreeningQuestionContextClient, *mocks.MockDestinationUsecase, *mocks.MockSessionCache) {
	client := new(mocks.MockScreeningQuestionContextClient)
	destinationUsecase := new(mocks.MockDestinationUsecase)
	cache := new(mocks.MockSessionCache)
	return &screeningQuestionUsecase{
		ScreeningQuestionContextClient: client,
		DestinationUsecase:             destinationUsecase,
		SessionCache:                   cache,
		Log:                            zap.NewNop(),
	}, client, destinationUsecase, cache
}

func questionContext(format string, answered bool, supplement bool) *cobalt_dto.ScreeningQuestionContext {
	qc := &cobalt_dto.ScreeningQuestionContext{
		ScreeningQuestionContextID: "qc-1",
		ScreeningSessionID:         "s-1",
		ScreeningQuestion: cobalt_dto.ScreeningQuestion{
			ScreeningQuestionID:     "q-1",
			ScreeningAnswerFormatID: format,
			MinimumAnswerCount:      1,
			MaximumAnswerCount:      2,
		},
		ScreeningAnswerOptions: []cobalt_dto.ScreeningAnswerOption{
			{ScreeningAnswerOptionID: "opt-1"},
			{ScreeningAnswerOptionID: "opt-2", FreeformSupplement: supplement},
			{ScreeningAnswerOptionID: "opt-3"},
		},
	}
	if answered {
		qc.ScreeningAnswers = []cobalt_dto.ScreeningAnswer{{ScreeningAnswerID: "a-1", ScreeningAnswerOptionID: "opt-1"}}
	}
	return qc
}

func TestFindQuestionContext_NextControl(t *testing.T) {
	tests := []struct {
		name            string
		questionContext *cobalt_dto.ScreeningQuestionContext
		wantAutoAdvance bool
	}{
		{name: "single select first answer", questionContext: questionContext(constvars.AnswerFormatSingleSelect, false, false), wantAutoAdvance: true},
		{name: "single select previously answered", questionContext: questionContext(constvars.AnswerFormatSingleSelect, true, false)},
		{name: "single select with supplement", questionContext: questionContext(constvars.AnswerFormatSingleSelect, false, true)},
		{name: "multi select", questionContext: questionContext(constvars.AnswerFormatMultiSelect, false, false)},
		{name: "freeform text", questionContext: questionContext(constvars.AnswerFormatFreeformText, false, false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, client, _, _ := newTestQuestionUsecase()
			client.On("FindScreeningQuestionContextByID", mock.Anything, "qc-1").Return(tt.questionContext, nil)

			response, err := uc.FindQuestionContext(context.Background(), "qc-1")

			require.NoError(t, err)
			assert.Equal(t, tt.wantAutoAdvance, response.AutoAdvance)
			assert.Equal(t, !tt.wantAutoAdvance, response.ShowNextButton)
			assert.Equal(t, len(tt.questionContext.ScreeningAnswers) > 0, response.PreviouslyAnswered)
		})
	}
}

func TestFindQuestionContext_FreeformWithSupplementIsUnsupported(t *testing.T) {
	uc, client, _, _ := newTestQuestionUsecase()
	client.On("FindScreeningQuestionContextByID", mock.Anything, "qc-1").Return(questionContext(constvars.AnswerFormatFreeformText, false, true), nil)

	_, err := uc.FindQuestionContext(context.Background(), "qc-1")

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
}

func TestAnswerQuestion_RoutesToNextQuestionInScope(t *testing.T) {
	uc, client, destinationUsecase, cache := newTestQuestionUsecase()
	request := &requests.AnswerQuestion{
		ScreeningQuestionContextID: "qc-1",
		AccountID:                  "acc-1",
		ScreeningFlowID:            "flow-1",
		PatientOrderID:             "po-9",
		Answers:                    []cobalt_dto.ScreeningAnswerSelection{{ScreeningAnswerOptionID: "opt-1"}},
		RouteScope:                 models.RouteScope{{Kind: models.ScopeKindMhicOrder, PatientOrderID: "po-9"}},
	}
	client.On("FindScreeningQuestionContextByID", mock.Anything, "qc-1").Return(questionContext(constvars.AnswerFormatSingleSelect, false, false), nil)
	client.On("AnswerQuestion", mock.Anything, "qc-1", &cobalt_dto.AnswerQuestionRequest{
		ScreeningQuestionContextID: "qc-1",
		Answers:                    request.Answers,
	}).Return(&cobalt_dto.AnswerQuestionResponse{NextScreeningQuestionContextID: "q-55"}, nil)
	cache.On("Invalidate", mock.Anything, models.FlowKey{AccountID: "acc-1", ScreeningFlowID: "flow-1", PatientOrderID: "po-9"}).Return(nil).Once()
	destinationUsecase.On("NavigateToNextStep", mock.Anything, &models.NextStep{
		ScreeningSessionID:             "s-1",
		NextScreeningQuestionContextID: "q-55",
		RouteScope:                     request.RouteScope,
	}).Return(&models.Navigation{URL: "/ic/mhic/order-assessment/po-9/q-55"}, nil)

	navigation, err := uc.AnswerQuestion(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, "/ic/mhic/order-assessment/po-9/q-55", navigation.URL)
	cache.AssertExpectations(t)
}

func TestAnswerQuestion_WithoutFlowSkipsCache(t *testing.T) {
	uc, client, destinationUsecase, cache := newTestQuestionUsecase()
	destination := &cobalt_dto.ScreeningSessionDestination{ScreeningSessionDestinationID: constvars.DestinationHome}
	client.On("FindScreeningQuestionContextByID", mock.Anything, "qc-1").Return(questionContext(constvars.AnswerFormatMultiSelect, false, false), nil)
	client.On("AnswerQuestion", mock.Anything, "qc-1", mock.Anything).Return(&cobalt_dto.AnswerQuestionResponse{ScreeningSessionDestination: destination}, nil)
	destinationUsecase.On("NavigateToNextStep", mock.Anything, mock.Anything).Return(&models.Navigation{URL: "/", FullPageRedirect: true}, nil)

	navigation, err := uc.AnswerQuestion(context.Background(), &requests.AnswerQuestion{
		ScreeningQuestionContextID: "qc-1",
		Answers: []cobalt_dto.ScreeningAnswerSelection{
			{ScreeningAnswerOptionID: "opt-1"},
			{ScreeningAnswerOptionID: "opt-3"},
		},
	})

	require.NoError(t, err)
	assert.True(t, navigation.FullPageRedirect)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestAnswerQuestion_InvalidAnswers(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		answers []cobalt_dto.ScreeningAnswerSelection
		wantDev string
	}{
		{
			name:    "no selection",
			format:  constvars.AnswerFormatSingleSelect,
			wantDev: "answer count 0 is outside [1, 1]",
		},
		{
			name:    "two selections for single select",
			format:  constvars.AnswerFormatSingleSelect,
			answers: []cobalt_dto.ScreeningAnswerSelection{{ScreeningAnswerOptionID: "opt-1"}, {ScreeningAnswerOptionID: "opt-3"}},
			wantDev: "answer count 2 is outside [1, 1]",
		},
		{
			name:   "too many for multi select",
			format: constvars.AnswerFormatMultiSelect,
			answers: []cobalt_dto.ScreeningAnswerSelection{
				{ScreeningAnswerOptionID: "opt-1"},
				{ScreeningAnswerOptionID: "opt-2"},
				{ScreeningAnswerOptionID: "opt-3"},
			},
			wantDev: "answer count 3 is outside [1, 2]",
		},
		{
			name:    "unknown option",
			format:  constvars.AnswerFormatSingleSelect,
			answers: []cobalt_dto.ScreeningAnswerSelection{{ScreeningAnswerOptionID: "opt-9"}},
			wantDev: "answer option opt-9 does not belong to question q-1",
		},
		{
			name:    "blank freeform text",
			format:  constvars.AnswerFormatFreeformText,
			answers: []cobalt_dto.ScreeningAnswerSelection{{ScreeningAnswerOptionID: "opt-1", Text: "  "}},
			wantDev: constvars.ErrDevFreeformAnswerRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, client, _, _ := newTestQuestionUsecase()
			client.On("FindScreeningQuestionContextByID", mock.Anything, "qc-1").Return(questionContext(tt.format, false, false), nil)

			_, err := uc.AnswerQuestion(context.Background(), &requests.AnswerQuestion{
				ScreeningQuestionContextID: "qc-1",
				Answers:                    tt.answers,
			})

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, tt.wantDev, customErr.DevMessage)
			client.AssertNotCalled(t, "AnswerQuestion", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
