package usecase

import (
	"coaching-booking/internal/data/repository"
	"coaching-booking/pkg/utils"

	"go.uber.org/zap"
)

// Service groups all use cases
type Service struct {
	Enrollment EnrollmentService
	Credit     CreditService
	Course     CourseService
	Coach      CoachService
	Skill      SkillService
	User       UserService
}

func NewService(store repository.Store, pub EventPublisher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Enrollment: NewEnrollmentService(store, pub, log),
		Credit:     NewCreditService(store, log),
		Course:     NewCourseService(store, log),
		Coach:      NewCoachService(store, log),
		Skill:      NewSkillService(store, log),
		User:       NewUserService(store, log),
	}
}
