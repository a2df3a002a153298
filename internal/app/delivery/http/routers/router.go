package routers

import (
	"cobalt-screening-service/internal/app/config"
	"cobalt-screening-service/internal/app/delivery/http/controllers"
	"cobalt-screening-service/internal/app/delivery/http/middlewares"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	ScreeningFlow     *controllers.ScreeningFlowController
	PhoneGate         *controllers.PhoneGateController
	Destination       *controllers.DestinationController
	ScreeningQuestion *controllers.ScreeningQuestionController
	Health            *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	mutationLimiter *middlewares.RateLimiter,
	ctrl *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", ctrl.Health.Health)

			r.Route("/screening-flows", func(r chi.Router) {
				attachScreeningFlowRoutes(r, middlewares, mutationLimiter, ctrl.ScreeningFlow, ctrl.PhoneGate)
			})

			r.Route("/destinations", func(r chi.Router) {
				attachDestinationRoutes(r, middlewares, ctrl.Destination)
			})

			r.Route("/screening-question-contexts", func(r chi.Router) {
				attachScreeningQuestionRoutes(r, middlewares, mutationLimiter, ctrl.ScreeningQuestion)
			})
		})
	})
}
