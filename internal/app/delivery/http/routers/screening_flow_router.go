package routers

import (
	"cobalt-screening-service/internal/app/delivery/http/controllers"
	"cobalt-screening-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachScreeningFlowRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	mutationLimiter *middlewares.RateLimiter,
	screeningFlowController *controllers.ScreeningFlowController,
	phoneGateController *controllers.PhoneGateController,
) {
	router.Use(middlewares.Authenticate)

	// without a flow id the check is always bypassed
	router.Post("/check", screeningFlowController.CheckScreeningFlow)
	router.Route("/{screening_flow_id}", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			// check may instantiate a session on load
			r.Use(mutationLimiter.Limit)
			r.Post("/check", screeningFlowController.CheckScreeningFlow)
			r.Post("/start", screeningFlowController.StartScreeningFlow)
			r.Post("/start-if-none-completed", screeningFlowController.StartScreeningFlowIfNoneCompleted)
			r.Post("/resume", screeningFlowController.ResumeOrCreateScreeningSession)
			r.Post("/phone-gate/skip", phoneGateController.SkipScreeningFlow)
			r.Post("/phone-gate/complete", phoneGateController.CompletePhoneCollection)
		})
	})
}
