package screening_questions

import (
	"cobalt-screening-service/internal/pkg/cobalt_dto"
	"cobalt-screening-service/internal/pkg/constvars"
	"cobalt-screening-service/internal/pkg/dto/responses"
	"cobalt-screening-service/internal/pkg/exceptions"
	"strings"
)

func hasSupplementOptions(options []cobalt_dto.ScreeningAnswerOption) bool {
	for _, option := range options {
		if option.FreeformSupplement {
			return true
		}
	}
	return false
}

// presentQuestionContext decides the controls shown for a question. A first
// answer to a single select question without supplements advances on select.
func presentQuestionContext(questionContext *cobalt_dto.ScreeningQuestionContext) (*responses.ScreeningQuestionContext, error) {
	question := questionContext.ScreeningQuestion
	supplements := hasSupplementOptions(questionContext.ScreeningAnswerOptions)

	if question.ScreeningAnswerFormatID == constvars.AnswerFormatFreeformText && supplements {
		return nil, exceptions.ErrUnsupportedQuestionConfiguration(nil, question.ScreeningQuestionID)
	}

	previouslyAnswered := len(questionContext.ScreeningAnswers) > 0
	autoAdvance := question.ScreeningAnswerFormatID == constvars.AnswerFormatSingleSelect &&
		!previouslyAnswered &&
		!supplements

	return &responses.ScreeningQuestionContext{
		ScreeningQuestionContextID:         questionContext.ScreeningQuestionContextID,
		PreviousScreeningQuestionContextID: questionContext.PreviousScreeningQuestionContextID,
		ScreeningSessionID:                 questionContext.ScreeningSessionID,
		ScreeningQuestion:                  question,
		ScreeningAnswerOptions:             questionContext.ScreeningAnswerOptions,
		ScreeningAnswers:                   questionContext.ScreeningAnswers,
		PreviouslyAnswered:                 previouslyAnswered,
		ShowNextButton:                     !autoAdvance,
		AutoAdvance:                        autoAdvance,
	}, nil
}

// answerCountBounds returns the allowed number of selections. A single select
// question never takes more than one.
func answerCountBounds(question cobalt_dto.ScreeningQuestion, optionCount int) (int, int) {
	minimum, maximum := question.MinimumAnswerCount, question.MaximumAnswerCount
	switch question.ScreeningAnswerFormatID {
	case constvars.AnswerFormatSingleSelect:
		if minimum <= 0 {
			minimum = 1
		}
		maximum = 1
	case constvars.AnswerFormatFreeformText:
		minimum, maximum = 1, 1
	default:
		if maximum <= 0 {
			maximum = optionCount
		}
	}
	return minimum, maximum
}

func validateAnswers(questionContext *cobalt_dto.ScreeningQuestionContext, answers []cobalt_dto.ScreeningAnswerSelection) error {
	question := questionContext.ScreeningQuestion

	if question.ScreeningAnswerFormatID == constvars.AnswerFormatFreeformText && hasSupplementOptions(questionContext.ScreeningAnswerOptions) {
		return exceptions.ErrUnsupportedQuestionConfiguration(nil, question.ScreeningQuestionID)
	}

	minimum, maximum := answerCountBounds(question, len(questionContext.ScreeningAnswerOptions))
	if len(answers) < minimum || len(answers) > maximum {
		return exceptions.ErrAnswerCountOutOfRange(nil, len(answers), minimum, maximum)
	}

	options := make(map[string]cobalt_dto.ScreeningAnswerOption, len(questionContext.ScreeningAnswerOptions))
	for _, option := range questionContext.ScreeningAnswerOptions {
		options[option.ScreeningAnswerOptionID] = option
	}

	for _, answer := range answers {
		if _, ok := options[answer.ScreeningAnswerOptionID]; !ok {
			return exceptions.ErrUnknownAnswerOption(nil, answer.ScreeningAnswerOptionID, question.ScreeningQuestionID)
		}
		if question.ScreeningAnswerFormatID == constvars.AnswerFormatFreeformText && strings.TrimSpace(answer.Text) == "" {
			return exceptions.ErrFreeformAnswerRequired(nil)
		}
	}
	return nil
}
