package routers

import (
	"psyexam-service/internal/app/delivery/http/middlewares"
	"psyexam-service/internal/app/services/core/analyses"

	"github.com/go-chi/chi/v5"
)

func attachAnalysisRoutes(router chi.Router, middlewares *middlewares.Middlewares, analysisController *analyses.AnalysisController) {
	router.Post("/{resultID}", analysisController.AnalyzeResult)
	router.Get("/{resultID}", analysisController.FindByResultID)
	router.Delete("/{analysisID}", analysisController.DeleteByID)
}

func attachPatientAnalysisRoutes(router chi.Router, middlewares *middlewares.Middlewares, analysisController *analyses.AnalysisController) {
	router.Get("/{patientID}/analyses", analysisController.FindAllByPatientID)
}
