package routers

import (
	"wardlab-service/internal/app/delivery/http/controllers"
	"wardlab-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachWardRouter(router chi.Router, middlewares *middlewares.Middlewares, wardController *controllers.WardController) {
	router.With(middlewares.Authenticate).Get("/", wardController.ListWards)
	router.With(middlewares.Authenticate).Post("/", wardController.CreateWard)
	router.With(middlewares.Authenticate).Get("/{wardID}/rooms", wardController.ListRooms)
	router.With(middlewares.Authenticate).Post("/{wardID}/rooms/bulk", wardController.BulkUpdateRooms)
}
