package analyses

import (
	"context"
	"net/http"
	"time"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/pkg/constvars"
	"psyexam-service/internal/pkg/exceptions"
	"psyexam-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AnalysisController struct {
	Log             *zap.Logger
	AnalysisUsecase contracts.AnalysisUsecase
}

func NewAnalysisController(logger *zap.Logger, analysisUsecase contracts.AnalysisUsecase) *AnalysisController {
	return &AnalysisController{
		Log:             logger,
		AnalysisUsecase: analysisUsecase,
	}
}

func (ctrl *AnalysisController) AnalyzeResult(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, constvars.URLParamResultID)
	if resultID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamResultID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalysisUsecase.AnalyzeResult(ctx, resultID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalyzeResultSuccessMessage, response)
}

func (ctrl *AnalysisController) FindByResultID(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, constvars.URLParamResultID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalysisUsecase.FindByResultID(ctx, resultID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAnalysisSuccessMessage, response)
}

func (ctrl *AnalysisController) FindAllByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalysisUsecase.FindAllByPatientID(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindPatientAnalysesSuccessMessage, response)
}

func (ctrl *AnalysisController) DeleteByID(w http.ResponseWriter, r *http.Request) {
	analysisID := chi.URLParam(r, constvars.URLParamAnalysisID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AnalysisUsecase.DeleteByID(ctx, analysisID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAnalysisSuccessMessage, nil)
}

func (ctrl *AnalysisController) ListExamDomains(w http.ResponseWriter, r *http.Request) {
	examName := chi.URLParam(r, constvars.URLParamExamName)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AnalysisUsecase.ListExamDomains(ctx, examName)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListExamDomainsSuccessMessage, response)
}
