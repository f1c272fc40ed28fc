package routers

import (
	"psyexam-service/internal/app/delivery/http/middlewares"
	"psyexam-service/internal/app/services/core/analyses"

	"github.com/go-chi/chi/v5"
)

func attachExamRoutes(router chi.Router, middlewares *middlewares.Middlewares, analysisController *analyses.AnalysisController) {
	router.Get("/{examName}/domains", analysisController.ListExamDomains)
}
