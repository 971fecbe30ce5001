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

type SkillService interface {
	List(ctx context.Context) ([]response.SkillResponse, error)
	Create(ctx context.Context, req *request.CreateSkillRequest) (*response.SkillResponse, error)
	Delete(ctx context.Context, skillID uuid.UUID) error
}

type skillService struct {
	store repository.Store
	log   *zap.Logger
}

func NewSkillService(store repository.Store, log *zap.Logger) SkillService {
	return &skillService{
		store: store,
		log:   log.With(zap.String("service", "skill")),
	}
}

func (s *skillService) List(ctx context.Context) ([]response.SkillResponse, error) {
	skills, err := s.store.Repos().Skill.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.SkillResponse, len(skills))
	for i, skill := range skills {
		resp[i] = response.SkillResponse{
			ID:   skill.ID.String(),
			Name: skill.Name,
		}
	}

	return resp, nil
}

func (s *skillService) Create(ctx context.Context, req *request.CreateSkillRequest) (*response.SkillResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create skill validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	r := s.store.Repos()

	existing, err := r.Skill.FindByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateName
	}

	skill := &entity.Skill{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: req.Name,
	}

	if err := r.Skill.Create(ctx, skill); err != nil {
		return nil, err
	}

	s.log.Info("Skill created",
		zap.String("skill_id", skill.ID.String()),
		zap.String("name", skill.Name),
	)

	return &response.SkillResponse{
		ID:   skill.ID.String(),
		Name: skill.Name,
	}, nil
}

func (s *skillService) Delete(ctx context.Context, skillID uuid.UUID) error {
	deleted, err := s.store.Repos().Skill.Delete(ctx, skillID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSkillNotFound
	}

	s.log.Info("Skill deleted", zap.String("skill_id", skillID.String()))
	return nil
}
