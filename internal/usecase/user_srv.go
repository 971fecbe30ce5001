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

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) error

	// PromoteToCoach flips the user's role and creates the coach profile
	// in one transaction.
	PromoteToCoach(ctx context.Context, userID uuid.UUID, req *request.PromoteCoachRequest) error
}

type userService struct {
	store repository.Store
	log   *zap.Logger
}

func NewUserService(store repository.Store, log *zap.Logger) UserService {
	return &userService{
		store: store,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*response.ProfileResponse, error) {
	user, err := s.store.Repos().User.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &response.ProfileResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *request.UpdateProfileRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	r := s.store.Repos()

	user, err := r.User.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := r.User.UpdateName(ctx, userID, req.Name); err != nil {
		return err
	}

	s.log.Info("Profile updated", zap.String("user_id", userID.String()))
	return nil
}

func (s *userService) PromoteToCoach(ctx context.Context, userID uuid.UUID, req *request.PromoteCoachRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Promote coach validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	err := s.store.InTx(ctx, func(r *repository.Repository) error {
		user, err := r.User.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
		if user.Role == entity.RoleCoach {
			return ErrAlreadyCoach
		}

		now := time.Now()
		coach := &entity.Coach{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID:          userID,
			ExperienceYears: req.ExperienceYears,
			Description:     req.Description,
			ProfileImageURL: req.ProfileImageURL,
		}
		if err := r.Coach.Create(ctx, coach); err != nil {
			return err
		}

		return r.User.UpdateRole(ctx, userID, entity.RoleCoach)
	})
	if err != nil {
		return err
	}

	s.log.Info("User promoted to coach", zap.String("user_id", userID.String()))
	return nil
}
