package enrollments

import (
	"context"
	"healthinfo-service/internal/app/config"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/dto/requests"
	"healthinfo-service/internal/pkg/exceptions"
	"healthinfo-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type EnrollmentController struct {
	Log               *zap.Logger
	EnrollmentUsecase EnrollmentUsecase
	InternalConfig    *config.InternalConfig
}

func NewEnrollmentController(logger *zap.Logger, enrollmentUsecase EnrollmentUsecase, internalConfig *config.InternalConfig) *EnrollmentController {
	return &EnrollmentController{
		Log:               logger,
		EnrollmentUsecase: enrollmentUsecase,
		InternalConfig:    internalConfig,
	}
}

func (ctrl *EnrollmentController) requestTimeout() time.Duration {
	return time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
}

func (ctrl *EnrollmentController) ListEnrollments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.EnrollmentUsecase.ListEnrollments(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEnrollmentsSuccessMessage, result)
}

func (ctrl *EnrollmentController) ListEnrollmentsByClient(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, constvars.URLParamClientID)
	if clientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamClientID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.EnrollmentUsecase.ListEnrollmentsByClient(ctx, clientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEnrollmentsSuccessMessage, result)
}

func (ctrl *EnrollmentController) ListEnrollmentsByProgram(w http.ResponseWriter, r *http.Request) {
	programID := chi.URLParam(r, constvars.URLParamProgramID)
	if programID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamProgramID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.EnrollmentUsecase.ListEnrollmentsByProgram(ctx, programID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEnrollmentsSuccessMessage, result)
}

func (ctrl *EnrollmentController) EnrollClient(w http.ResponseWriter, r *http.Request) {
	request := new(requests.EnrollClient)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeEnrollClientRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	sessionData, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.EnrollmentUsecase.EnrollClient(ctx, sessionData, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.EnrollClientSuccessMessage, result)
}

func (ctrl *EnrollmentController) TransitionEnrollment(w http.ResponseWriter, r *http.Request) {
	enrollmentID := chi.URLParam(r, constvars.URLParamEnrollmentID)
	if enrollmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(constvars.URLParamEnrollmentID))
		return
	}

	request := new(requests.TransitionEnrollment)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
	defer cancel()

	result, err := ctrl.EnrollmentUsecase.TransitionEnrollment(ctx, enrollmentID, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TransitionEnrollmentSuccessMessage, result)
}
