package cobalt_dto

type ScreeningQuestion struct {
	ScreeningQuestionID     string `json:"screeningQuestionId"`
	ScreeningAnswerFormatID string `json:"screeningAnswerFormatId"`
	QuestionText            string `json:"questionText"`
	IntroText               string `json:"introText,omitempty"`
	FooterText              string `json:"footerText,omitempty"`
	MinimumAnswerCount      int    `json:"minimumAnswerCount"`
	MaximumAnswerCount      int    `json:"maximumAnswerCount"`
}

type ScreeningAnswerOption struct {
	ScreeningAnswerOptionID string `json:"screeningAnswerOptionId"`
	AnswerOptionText        string `json:"answerOptionText"`
	DisplayOrder            int    `json:"displayOrder"`
	FreeformSupplement      bool   `json:"freeformSupplement"`
	FreeformSupplementText  string `json:"freeformSupplementText,omitempty"`
}

type ScreeningAnswer struct {
	ScreeningAnswerID       string `json:"screeningAnswerId"`
	ScreeningAnswerOptionID string `json:"screeningAnswerOptionId"`
	Text                    string `json:"text,omitempty"`
}

type ScreeningQuestionContext struct {
	ScreeningQuestionContextID         string                       `json:"screeningQuestionContextId"`
	ScreeningSessionID                 string                       `json:"screeningSessionId,omitempty"`
	PreviousScreeningQuestionContextID string                       `json:"previousScreeningQuestionContextId,omitempty"`
	ScreeningQuestion                  ScreeningQuestion            `json:"screeningQuestion"`
	ScreeningAnswerOptions             []ScreeningAnswerOption      `json:"screeningAnswerOptions"`
	ScreeningAnswers                   []ScreeningAnswer            `json:"screeningAnswers"`
	ScreeningSessionDestination        *ScreeningSessionDestination `json:"screeningSessionDestination,omitempty"`
}

type ScreeningAnswerSelection struct {
	ScreeningAnswerOptionID string `json:"screeningAnswerOptionId"`
	Text                    string `json:"text,omitempty"`
}

type AnswerQuestionRequest struct {
	ScreeningQuestionContextID string                     `json:"screeningQuestionContextId"`
	Answers                    []ScreeningAnswerSelection `json:"answers"`
	Force                      bool                       `json:"force,omitempty"`
}

type AnswerQuestionResponse struct {
	NextScreeningQuestionContextID string                       `json:"nextScreeningQuestionContextId,omitempty"`
	ScreeningSessionDestination    *ScreeningSessionDestination `json:"screeningSessionDestination,omitempty"`
}
