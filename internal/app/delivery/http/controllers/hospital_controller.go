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

type HospitalController struct {
	Log             *zap.Logger
	HospitalUsecase contracts.HospitalUsecase
}

func NewHospitalController(logger *zap.Logger, hospitalUsecase contracts.HospitalUsecase) *HospitalController {
	return &HospitalController{
		Log:             logger,
		HospitalUsecase: hospitalUsecase,
	}
}

func (ctrl *HospitalController) CreateHospital(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.CreateHospital{}
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

	result, err := ctrl.HospitalUsecase.CreateHospital(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.HospitalCreatedSuccess, result)
}

func (ctrl *HospitalController) FindAll(w http.ResponseWriter, r *http.Request) {
	filter := utils.BuildHospitalListFilter(r)
	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.HospitalUsecase.FindAll(ctx, filter, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetHospitalsSuccess, paginationData, result)
}

func (ctrl *HospitalController) FindByID(w http.ResponseWriter, r *http.Request) {
	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HospitalUsecase.FindByID(ctx, hospitalID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalSuccess, result)
}

func (ctrl *HospitalController) FindByUserLocation(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.HospitalUsecase.FindByUserLocation(ctx, session, pagination)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationResponse(int(total), pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetHospitalsSuccess, paginationData, result)
}

func (ctrl *HospitalController) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)

	request := &requests.UpdateHospital{}
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

	result, err := ctrl.HospitalUsecase.UpdateHospital(ctx, session, hospitalID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalUpdatedSuccess, result)
}

func (ctrl *HospitalController) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	session, err := middlewares.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HospitalUsecase.DeleteHospital(ctx, session, hospitalID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalDeletedSuccess, result)
}
