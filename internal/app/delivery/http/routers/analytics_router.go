package routers

import (
	"wardlab-service/internal/app/delivery/http/controllers"
	"wardlab-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAnalyticsRouter(router chi.Router, middlewares *middlewares.Middlewares, analyticsController *controllers.AnalyticsController) {
	router.With(middlewares.Authenticate).Get("/addon-stats", analyticsController.GetAddonStats)
	router.With(middlewares.Authenticate).Get("/addon-trends", analyticsController.GetAddonTrends)
}
