package usecase

import (
	"context"
	"fmt"
	"time"

	"coaching-booking/internal/data/entity"
	"coaching-booking/internal/data/repository"
	"coaching-booking/internal/dto/request"
	"coaching-booking/internal/dto/response"
	"coaching-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CourseService interface {
	List(ctx context.Context) ([]response.CourseResponse, error)
	Create(ctx context.Context, coachUserID uuid.UUID, req *request.CreateCourseRequest) (*response.CourseResponse, error)
	Update(ctx context.Context, courseID uuid.UUID, req *request.UpdateCourseRequest) (*response.CourseResponse, error)
}

type courseService struct {
	store repository.Store
	log   *zap.Logger
}

func NewCourseService(store repository.Store, log *zap.Logger) CourseService {
	return &courseService{
		store: store,
		log:   log.With(zap.String("service", "course")),
	}
}

func (s *courseService) List(ctx context.Context) ([]response.CourseResponse, error) {
	r := s.store.Repos()

	courses, err := r.Course.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.CourseResponse, 0, len(courses))
	for _, course := range courses {
		var coachName, skillName string

		coach, err := r.User.FindByID(ctx, course.CoachUserID)
		if err != nil {
			return nil, err
		}
		if coach != nil {
			coachName = coach.Name
		}

		skill, err := r.Skill.FindByID(ctx, course.SkillID)
		if err != nil {
			return nil, err
		}
		if skill != nil {
			skillName = skill.Name
		}

		resp = append(resp, s.toResponse(course, coachName, skillName, false))
	}

	return resp, nil
}

func (s *courseService) Create(ctx context.Context, coachUserID uuid.UUID, req *request.CreateCourseRequest) (*response.CourseResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create course validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	skillID, err := uuid.Parse(req.SkillID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid skill ID format %s", ErrValidation, req.SkillID)
	}

	r := s.store.Repos()

	coach, err := r.User.FindByID(ctx, coachUserID)
	if err != nil {
		return nil, err
	}
	if coach == nil {
		return nil, ErrUserNotFound
	}
	if coach.Role != entity.RoleCoach {
		return nil, ErrNotCoach
	}

	skill, err := r.Skill.FindByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}

	now := time.Now()
	course := &entity.Course{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CoachUserID:     coachUserID,
		SkillID:         skillID,
		Name:            req.Name,
		Description:     req.Description,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		MaxParticipants: req.MaxParticipants,
		MeetingURL:      req.MeetingURL,
	}

	if err := r.Course.Create(ctx, course); err != nil {
		return nil, err
	}

	s.log.Info("Course created",
		zap.String("course_id", course.ID.String()),
		zap.String("coach_user_id", coachUserID.String()),
		zap.String("name", course.Name),
		zap.Int("max_participants", course.MaxParticipants),
	)

	resp := s.toResponse(course, coach.Name, skill.Name, true)
	return &resp, nil
}

func (s *courseService) Update(ctx context.Context, courseID uuid.UUID, req *request.UpdateCourseRequest) (*response.CourseResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update course validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	skillID, err := uuid.Parse(req.SkillID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid skill ID format %s", ErrValidation, req.SkillID)
	}

	r := s.store.Repos()

	course, err := r.Course.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	skill, err := r.Skill.FindByID(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, ErrSkillNotFound
	}

	course.SkillID = skillID
	course.Name = req.Name
	course.Description = req.Description
	course.StartAt = req.StartAt
	course.EndAt = req.EndAt
	course.MaxParticipants = req.MaxParticipants
	course.MeetingURL = req.MeetingURL
	course.UpdatedAt = time.Now()

	if err := r.Course.Update(ctx, course); err != nil {
		return nil, err
	}

	s.log.Info("Course updated",
		zap.String("course_id", course.ID.String()),
		zap.String("name", course.Name),
	)

	var coachName string
	coach, err := r.User.FindByID(ctx, course.CoachUserID)
	if err != nil {
		return nil, err
	}
	if coach != nil {
		coachName = coach.Name
	}

	resp := s.toResponse(course, coachName, skill.Name, true)
	return &resp, nil
}

func (s *courseService) toResponse(course *entity.Course, coachName, skillName string, withMeetingURL bool) response.CourseResponse {
	resp := response.CourseResponse{
		ID:              course.ID.String(),
		CoachName:       coachName,
		SkillName:       skillName,
		Name:            course.Name,
		Description:     course.Description,
		StartAt:         course.StartAt,
		EndAt:           course.EndAt,
		MaxParticipants: course.MaxParticipants,
	}
	// The meeting URL is only handed out to enrolled users (summary) and
	// the owning coach, not on the public listing.
	if withMeetingURL {
		resp.MeetingURL = course.MeetingURL
	}
	return resp
}
