package routers

import (
	"net/http"
	"time"

	"wardlab-service/internal/app/config"
	"wardlab-service/internal/app/delivery/http/controllers"
	"wardlab-service/internal/app/delivery/http/middlewares"
	"wardlab-service/internal/pkg/constvars"
	"wardlab-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	wardController *controllers.WardController,
	addonController *controllers.AddonController,
	analyticsController *controllers.AnalyticsController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRouter(r, middlewares, authController)
		})

		r.Route("/wards", func(r chi.Router) {
			attachWardRouter(r, middlewares, wardController)
		})

		r.Route("/addon-requests", func(r chi.Router) {
			attachAddonRouter(r, middlewares, addonController)
		})

		r.Route("/analytics", func(r chi.Router) {
			attachAnalyticsRouter(r, middlewares, analyticsController)
		})

		r.With(middlewares.Authenticate).Get("/critical-call/search", wardController.SearchContacts)
	})

	router.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthSuccessMessage, map[string]string{
			"service": "wardlab-service",
			"status":  "running",
		})
	})
}
