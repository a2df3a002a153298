package routers

import (
	"cobalt-screening-service/internal/app/delivery/http/controllers"
	"cobalt-screening-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachScreeningQuestionRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	mutationLimiter *middlewares.RateLimiter,
	screeningQuestionController *controllers.ScreeningQuestionController,
) {
	router.Use(middlewares.Authenticate)
	router.Get("/{screening_question_context_id}", screeningQuestionController.FindQuestionContext)
	router.With(mutationLimiter.Limit).Post("/{screening_question_context_id}/answers", screeningQuestionController.AnswerQuestion)
}
