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

type SkillRepository interface {
	Create(ctx context.Context, skill *entity.Skill) error
	FindAll(ctx context.Context) ([]*entity.Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Skill, error)
	FindByName(ctx context.Context, name string) (*entity.Skill, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type skillRepository struct {
	db  database.Queryer
	log *zap.Logger
}

func NewSkillRepository(db database.Queryer, log *zap.Logger) SkillRepository {
	return &skillRepository{
		db:  db,
		log: log.With(zap.String("repository", "skill")),
	}
}

func (r *skillRepository) Create(ctx context.Context, skill *entity.Skill) error {
	query := `INSERT INTO skills (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, skill.ID, skill.Name, skill.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create skill",
			zap.Error(err),
			zap.String("name", skill.Name),
		)
		return fmt.Errorf("create skill %s: %w", skill.Name, err)
	}

	return nil
}

func (r *skillRepository) FindAll(ctx context.Context) ([]*entity.Skill, error) {
	query := `SELECT id, name, created_at FROM skills ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find skills", zap.Error(err))
		return nil, fmt.Errorf("find skills: %w", err)
	}
	defer rows.Close()

	var skills []*entity.Skill
	for rows.Next() {
		var skill entity.Skill
		if err := rows.Scan(&skill.ID, &skill.Name, &skill.CreatedAt); err != nil {
			r.log.Error("Failed to scan skill row", zap.Error(err))
			return nil, fmt.Errorf("scan skill row: %w", err)
		}
		skills = append(skills, &skill)
	}

	return skills, nil
}

func (r *skillRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Skill, error) {
	query := `SELECT id, name, created_at FROM skills WHERE id = $1`

	var skill entity.Skill
	err := r.db.QueryRow(ctx, query, id).Scan(&skill.ID, &skill.Name, &skill.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find skill by ID",
			zap.Error(err),
			zap.String("skill_id", id.String()),
		)
		return nil, fmt.Errorf("find skill by ID %s: %w", id.String(), err)
	}

	return &skill, nil
}

func (r *skillRepository) FindByName(ctx context.Context, name string) (*entity.Skill, error) {
	query := `SELECT id, name, created_at FROM skills WHERE name = $1`

	var skill entity.Skill
	err := r.db.QueryRow(ctx, query, name).Scan(&skill.ID, &skill.Name, &skill.CreatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find skill by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find skill by name %s: %w", name, err)
	}

	return &skill, nil
}

func (r *skillRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM skills WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete skill",
			zap.Error(err),
			zap.String("skill_id", id.String()),
		)
		return false, fmt.Errorf("delete skill %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
