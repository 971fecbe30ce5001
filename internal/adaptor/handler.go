package adaptor

import (
	"errors"
	"net/http"

	"coaching-booking/internal/usecase"
	"coaching-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Enrollment *EnrollmentHandler
	Credit     *CreditHandler
	Course     *CourseHandler
	Coach      *CoachHandler
	Skill      *SkillHandler
	User       *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Enrollment: NewEnrollmentHandler(service.Enrollment, log),
		Credit:     NewCreditHandler(service.Credit, log),
		Course:     NewCourseHandler(service.Course, log),
		Coach:      NewCoachHandler(service.Coach, log),
		Skill:      NewSkillHandler(service.Skill, log),
		User:       NewUserHandler(service.User, log),
	}
}

// handleServiceError maps typed business outcomes to HTTP responses.
// Anything unrecognized is a store failure: logged with detail, surfaced
// opaque.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrCourseNotFound),
		errors.Is(err, usecase.ErrCoachNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrSkillNotFound),
		errors.Is(err, usecase.ErrPackageNotFound),
		errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrNotEnrolled):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyEnrolled),
		errors.Is(err, usecase.ErrDuplicateName),
		errors.Is(err, usecase.ErrAlreadyCoach):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInsufficientCredit),
		errors.Is(err, usecase.ErrCourseFull),
		errors.Is(err, usecase.ErrNotCoach):
		log.Warn(operation+" failed - business rule", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrContention):
		log.Warn(operation+" failed - contention", zap.Error(err))
		utils.ResponseUnavailable(w, "Too many concurrent requests, please retry")

	case errors.Is(err, usecase.ErrValidation):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
