package routers

import (
	"cobalt-screening-service/internal/app/delivery/http/controllers"
	"cobalt-screening-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDestinationRoutes(router chi.Router, middlewares *middlewares.Middlewares, destinationController *controllers.DestinationController) {
	router.With(middlewares.Authenticate).Post("/resolve", destinationController.ResolveDestination)
}
