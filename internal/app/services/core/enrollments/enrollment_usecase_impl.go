package enrollments

import (
	"context"
	"healthinfo-service/internal/app/models"
	"healthinfo-service/internal/app/services/core/session"
	"healthinfo-service/internal/app/services/shared/messaging"
	"healthinfo-service/internal/pkg/constvars"
	"healthinfo-service/internal/pkg/dto/requests"
	"healthinfo-service/internal/pkg/exceptions"
	"strings"
	"time"

	"go.uber.org/zap"
)

// allowedTransitions maps a current enrollment status to the statuses it may
// move to. Completed and cancelled are terminal.
var allowedTransitions = map[string][]string{
	constvars.EnrollmentStatusActive: {
		constvars.EnrollmentStatusCompleted,
		constvars.EnrollmentStatusCancelled,
	},
}

type enrollmentUsecase struct {
	EnrollmentRepository EnrollmentRepository
	SessionService       session.SessionService
	EventPublisher       messaging.EventPublisher
	Log                  *zap.Logger
}

func NewEnrollmentUsecase(
	enrollmentRepository EnrollmentRepository,
	sessionService session.SessionService,
	eventPublisher messaging.EventPublisher,
	logger *zap.Logger,
) EnrollmentUsecase {
	return &enrollmentUsecase{
		EnrollmentRepository: enrollmentRepository,
		SessionService:       sessionService,
		EventPublisher:       eventPublisher,
		Log:                  logger,
	}
}

func (uc *enrollmentUsecase) ListEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	return uc.EnrollmentRepository.FindAll(ctx)
}

func (uc *enrollmentUsecase) ListEnrollmentsByClient(ctx context.Context, clientID string) ([]models.Enrollment, error) {
	return uc.EnrollmentRepository.FindByClientID(ctx, clientID)
}

func (uc *enrollmentUsecase) ListEnrollmentsByProgram(ctx context.Context, programID string) ([]models.Enrollment, error) {
	return uc.EnrollmentRepository.FindByProgramID(ctx, programID)
}

// EnrollClient records an enrollment without checking that the referenced
// client or program exists. Callers own referential integrity; duplicate
// enrollments for the same client and program are allowed.
func (uc *enrollmentUsecase) EnrollClient(ctx context.Context, sessionData string, request *requests.EnrollClient) (*models.Enrollment, error) {
	if strings.TrimSpace(request.ClientID) == "" ||
		strings.TrimSpace(request.ProgramID) == "" {
		return nil, exceptions.ErrEnrollmentRequiredFields()
	}

	sessionModel, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	enrollmentModel := &models.Enrollment{
		ClientID:   request.ClientID,
		ProgramID:  request.ProgramID,
		Status:     request.Status,
		Notes:      request.Notes,
		EnrolledBy: sessionModel.UserID,
	}
	if enrollmentModel.Status == "" {
		enrollmentModel.Status = constvars.EnrollmentStatusActive
	}
	if request.EnrolledAt != nil {
		enrollmentModel.EnrolledAt = *request.EnrolledAt
	} else {
		enrollmentModel.EnrolledAt = time.Now()
	}

	createdEnrollment, err := uc.EnrollmentRepository.CreateEnrollment(ctx, enrollmentModel)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, "enrollment.created", createdEnrollment)

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("enrollmentUsecase.EnrollClient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("enrollment_id", createdEnrollment.ID.Hex()),
		zap.String("client_id", createdEnrollment.ClientID),
		zap.String("program_id", createdEnrollment.ProgramID),
	)
	return createdEnrollment, nil
}

func (uc *enrollmentUsecase) TransitionEnrollment(ctx context.Context, enrollmentID string, request *requests.TransitionEnrollment) (*models.Enrollment, error) {
	existingEnrollment, err := uc.EnrollmentRepository.FindByID(ctx, enrollmentID)
	if err != nil {
		return nil, err
	}
	if existingEnrollment == nil {
		return nil, exceptions.ErrEnrollmentNotExist(nil)
	}

	if !transitionAllowed(existingEnrollment.Status, request.Status) {
		return nil, exceptions.ErrEnrollmentInvalidTransition(existingEnrollment.Status, request.Status)
	}

	existingEnrollment.Status = request.Status
	if request.Status == constvars.EnrollmentStatusCompleted {
		completedAt := time.Now()
		existingEnrollment.CompletedAt = &completedAt
	}

	err = uc.EnrollmentRepository.UpdateEnrollment(ctx, existingEnrollment)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, "enrollment.transitioned", existingEnrollment)
	return existingEnrollment, nil
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// publishEvent is best effort. A broker outage must not fail the request, so
// publish errors are logged and dropped.
func (uc *enrollmentUsecase) publishEvent(ctx context.Context, eventName string, enrollmentModel *models.Enrollment) {
	err := uc.EventPublisher.Publish(ctx, eventName, enrollmentModel)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("enrollmentUsecase failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("event", eventName),
			zap.Error(err),
		)
	}
}
