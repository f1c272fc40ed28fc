package routers

import (
	"fmt"
	"net/http"
	"time"

	"psyexam-service/internal/app/config"
	"psyexam-service/internal/app/delivery/http/middlewares"
	"psyexam-service/internal/app/services/core/analyses"
	"psyexam-service/internal/app/services/core/results"
	"psyexam-service/internal/pkg/constvars"
	"psyexam-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	analysisController *analyses.AnalysisController,
	resultController *results.ResultController,
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

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
				utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, nil)
			})

			r.Route("/analyses", func(r chi.Router) {
				attachAnalysisRoutes(r, middlewares, analysisController)
			})

			r.Route("/results", func(r chi.Router) {
				attachResultRoutes(r, middlewares, resultController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientAnalysisRoutes(r, middlewares, analysisController)
			})

			r.Route("/exams", func(r chi.Router) {
				attachExamRoutes(r, middlewares, analysisController)
			})
		})
	})
}
