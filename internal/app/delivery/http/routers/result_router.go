package routers

import (
	"psyexam-service/internal/app/delivery/http/middlewares"
	"psyexam-service/internal/app/services/core/results"

	"github.com/go-chi/chi/v5"
)

func attachResultRoutes(router chi.Router, middlewares *middlewares.Middlewares, resultController *results.ResultController) {
	router.Post("/", resultController.CreateResult)
	router.Get("/{resultID}", resultController.FindResultByID)
}
