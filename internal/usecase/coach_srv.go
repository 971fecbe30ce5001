package usecase

import (
	"context"

	"coaching-booking/internal/data/entity"
	"coaching-booking/internal/data/repository"
	"coaching-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CoachService interface {
	// List returns one page of the public coach directory with the
	// coaches' user names resolved.
	List(ctx context.Context, page, perPage int) ([]response.CoachResponse, error)
	Detail(ctx context.Context, coachID uuid.UUID) (*response.CoachDetailResponse, error)
}

type coachService struct {
	store repository.Store
	log   *zap.Logger
}

func NewCoachService(store repository.Store, log *zap.Logger) CoachService {
	return &coachService{
		store: store,
		log:   log.With(zap.String("service", "coach")),
	}
}

func (s *coachService) List(ctx context.Context, page, perPage int) ([]response.CoachResponse, error) {
	if page < 1 {
		page = 1
	}

	r := s.store.Repos()

	coaches, err := r.Coach.FindPage(ctx, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	resp := make([]response.CoachResponse, 0, len(coaches))
	for _, coach := range coaches {
		resp = append(resp, s.toResponse(ctx, r, coach))
	}

	return resp, nil
}

func (s *coachService) Detail(ctx context.Context, coachID uuid.UUID) (*response.CoachDetailResponse, error) {
	r := s.store.Repos()

	coach, err := r.Coach.FindByID(ctx, coachID)
	if err != nil {
		return nil, err
	}
	if coach == nil {
		return nil, ErrCoachNotFound
	}

	var name, role string
	user, err := r.User.FindByID(ctx, coach.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		name = user.Name
		role = string(user.Role)
	}

	return &response.CoachDetailResponse{
		CoachResponse: response.CoachResponse{
			ID:              coach.ID.String(),
			Name:            name,
			ExperienceYears: coach.ExperienceYears,
			Description:     coach.Description,
			ProfileImageURL: coach.ProfileImageURL,
		},
		UserID: coach.UserID.String(),
		Role:   role,
	}, nil
}

func (s *coachService) toResponse(ctx context.Context, r *repository.Repository, coach *entity.Coach) response.CoachResponse {
	var name string
	user, err := r.User.FindByID(ctx, coach.UserID)
	if err != nil {
		s.log.Warn("Failed to resolve coach user name",
			zap.Error(err),
			zap.String("coach_id", coach.ID.String()),
		)
	}
	if user != nil {
		name = user.Name
	}

	return response.CoachResponse{
		ID:              coach.ID.String(),
		Name:            name,
		ExperienceYears: coach.ExperienceYears,
		Description:     coach.Description,
		ProfileImageURL: coach.ProfileImageURL,
	}
}
