package repository

import (
	"context"
	"fmt"

	"coaching-booking/internal/data/entity"
	"coaching-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CoachRepository interface {
	Create(ctx context.Context, coach *entity.Coach) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coach, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Coach, error)

	// FindPage returns one page of the public directory, oldest first
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Coach, error)
}

type coachRepository struct {
	db  database.Queryer
	log *zap.Logger
}

func NewCoachRepository(db database.Queryer, log *zap.Logger) CoachRepository {
	return &coachRepository{
		db:  db,
		log: log.With(zap.String("repository", "coach")),
	}
}

func (r *coachRepository) Create(ctx context.Context, coach *entity.Coach) error {
	query := `
		INSERT INTO coaches (id, user_id, experience_years, description, profile_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		coach.ID,
		coach.UserID,
		coach.ExperienceYears,
		coach.Description,
		coach.ProfileImageURL,
		coach.CreatedAt,
		coach.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create coach",
			zap.Error(err),
			zap.String("user_id", coach.UserID.String()),
		)
		return fmt.Errorf("create coach for user %s: %w", coach.UserID.String(), err)
	}

	return nil
}

func (r *coachRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coach, error) {
	query := `
		SELECT id, user_id, experience_years, description, profile_image_url, created_at, updated_at
		FROM coaches
		WHERE id = $1
	`

	var coach entity.Coach
	err := r.db.QueryRow(ctx, query, id).Scan(
		&coach.ID,
		&coach.UserID,
		&coach.ExperienceYears,
		&coach.Description,
		&coach.ProfileImageURL,
		&coach.CreatedAt,
		&coach.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find coach by ID",
			zap.Error(err),
			zap.String("coach_id", id.String()),
		)
		return nil, fmt.Errorf("find coach by ID %s: %w", id.String(), err)
	}

	return &coach, nil
}

func (r *coachRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Coach, error) {
	query := `
		SELECT id, user_id, experience_years, description, profile_image_url, created_at, updated_at
		FROM coaches
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find coach page",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find coach page: %w", err)
	}
	defer rows.Close()

	var coaches []*entity.Coach
	for rows.Next() {
		var coach entity.Coach
		err := rows.Scan(
			&coach.ID,
			&coach.UserID,
			&coach.ExperienceYears,
			&coach.Description,
			&coach.ProfileImageURL,
			&coach.CreatedAt,
			&coach.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan coach row", zap.Error(err))
			return nil, fmt.Errorf("scan coach row: %w", err)
		}
		coaches = append(coaches, &coach)
	}

	return coaches, nil
}

func (r *coachRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Coach, error) {
	query := `
		SELECT id, user_id, experience_years, description, profile_image_url, created_at, updated_at
		FROM coaches
		WHERE user_id = $1
	`

	var coach entity.Coach
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&coach.ID,
		&coach.UserID,
		&coach.ExperienceYears,
		&coach.Description,
		&coach.ProfileImageURL,
		&coach.CreatedAt,
		&coach.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find coach by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find coach by user ID %s: %w", userID.String(), err)
	}

	return &coach, nil
}
