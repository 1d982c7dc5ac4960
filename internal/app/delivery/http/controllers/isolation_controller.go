package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/contracts"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/app/delivery/http/middlewares"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/constvars"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/dto/requests"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/exceptions"
	"github.com/Tabrezhira/sobha-medical-api-backend/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type IsolationController struct {
	Log              *zap.Logger
	IsolationUsecase contracts.IsolationUsecase
}

func NewIsolationController(logger *zap.Logger, isolationUsecase contracts.IsolationUsecase) *IsolationController {
	return &IsolationController{
		Log:              logger,
		IsolationUsecase: isolationUsecase,
	}
}

func (ctrl *IsolationController) CreateIsolation(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.CreateIsolation{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.IsolationUsecase.CreateIsolation(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.IsolationCreatedSuccess, result)
}

func (ctrl *IsolationController) FindAll(w http.ResponseWriter, r *http.Request) {
	filter := utils.BuildIsolationListFilter(r)
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.IsolationUsecase.FindAll(ctx, filter, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetIsolationsSuccess, paginationData, result)
}

func (ctrl *IsolationController) FindByID(w http.ResponseWriter, r *http.Request) {
	isolationID := chi.URLParam(r, constvars.URLParamIsolationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.IsolationUsecase.FindByID(ctx, isolationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetIsolationSuccess, result)
}

func (ctrl *IsolationController) FindByUserLocation(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.IsolationUsecase.FindByUserLocation(ctx, session, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetIsolationsSuccess, paginationData, result)
}

func (ctrl *IsolationController) UpdateIsolation(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	isolationID := chi.URLParam(r, constvars.URLParamIsolationID)

	request := &requests.UpdateIsolation{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.IsolationUsecase.UpdateIsolation(ctx, session, isolationID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.IsolationUpdatedSuccess, result)
}

func (ctrl *IsolationController) DeleteIsolation(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	isolationID := chi.URLParam(r, constvars.URLParamIsolationID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.IsolationUsecase.DeleteIsolation(ctx, session, isolationID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.IsolationDeletedSuccess, result)
}
