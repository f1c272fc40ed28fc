package results

import (
	"context"
	"net/http"
	"time"

	"psyexam-service/internal/app/contracts"
	"psyexam-service/internal/pkg/constvars"
	"psyexam-service/internal/pkg/dto/requests"
	"psyexam-service/internal/pkg/exceptions"
	"psyexam-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ResultController struct {
	Log           *zap.Logger
	ResultUsecase contracts.ResultUsecase
}

func NewResultController(logger *zap.Logger, resultUsecase contracts.ResultUsecase) *ResultController {
	return &ResultController{
		Log:           logger,
		ResultUsecase: resultUsecase,
	}
}

func (ctrl *ResultController) CreateResult(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateResult)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ResultUsecase.CreateResult(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateResultSuccessMessage, response)
}

func (ctrl *ResultController) FindResultByID(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, constvars.URLParamResultID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ResultUsecase.FindResultByID(ctx, resultID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindResultSuccessMessage, response)
}
