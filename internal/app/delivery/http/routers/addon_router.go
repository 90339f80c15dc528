package routers

import (
	"wardlab-service/internal/app/delivery/http/controllers"
	"wardlab-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAddonRouter(router chi.Router, middlewares *middlewares.Middlewares, addonController *controllers.AddonController) {
	router.With(middlewares.Authenticate).Post("/", addonController.CreateAddonRequest)
	router.With(middlewares.Authenticate).Get("/", addonController.ListAddonRequests)
	router.With(middlewares.Authenticate).Post("/{requestID}/approve", addonController.ApproveAddonRequest)
	router.With(middlewares.Authenticate).Post("/{requestID}/reject", addonController.RejectAddonRequest)
	router.With(middlewares.Authenticate).Post("/{requestID}/complete", addonController.CompleteAddonRequest)
	router.With(middlewares.Authenticate).Get("/{requestID}/logs", addonController.GetAuditTrail)
}
