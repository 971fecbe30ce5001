package repository

import (
	"context"
	"fmt"
	"time"

	"coaching-booking/internal/data/entity"
	"coaching-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error
}

type userRepository struct {
	db  database.Queryer
	log *zap.Logger
}

func NewUserRepository(db database.Queryer, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, name, email, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user entity.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (r *userRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	query := `UPDATE users SET name = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, name, time.Now())
	if err != nil {
		r.log.Error("Failed to update user name",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return fmt.Errorf("update user %s name: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) error {
	query := `UPDATE users SET role = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, role, time.Now())
	if err != nil {
		r.log.Error("Failed to update user role",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.String("role", string(role)),
		)
		return fmt.Errorf("update user %s role to %s: %w", id.String(), string(role), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}
