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

type CourseRepository interface {
	Create(ctx context.Context, course *entity.Course) error
	Update(ctx context.Context, course *entity.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error)
	FindAll(ctx context.Context) ([]*entity.Course, error)
}

type courseRepository struct {
	db  database.Queryer
	log *zap.Logger
}

func NewCourseRepository(db database.Queryer, log *zap.Logger) CourseRepository {
	return &courseRepository{
		db:  db,
		log: log.With(zap.String("repository", "course")),
	}
}

func (r *courseRepository) Create(ctx context.Context, course *entity.Course) error {
	query := `
		INSERT INTO courses (id, user_id, skill_id, name, description, start_at, end_at, max_participants, meeting_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		course.ID,
		course.CoachUserID,
		course.SkillID,
		course.Name,
		course.Description,
		course.StartAt,
		course.EndAt,
		course.MaxParticipants,
		course.MeetingURL,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create course",
			zap.Error(err),
			zap.String("name", course.Name),
			zap.String("coach_user_id", course.CoachUserID.String()),
		)
		return fmt.Errorf("create course %s: %w", course.Name, err)
	}

	return nil
}

func (r *courseRepository) Update(ctx context.Context, course *entity.Course) error {
	query := `
		UPDATE courses
		SET skill_id = $2, name = $3, description = $4, start_at = $5, end_at = $6,
		    max_participants = $7, meeting_url = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		course.ID,
		course.SkillID,
		course.Name,
		course.Description,
		course.StartAt,
		course.EndAt,
		course.MaxParticipants,
		course.MeetingURL,
		course.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update course",
			zap.Error(err),
			zap.String("course_id", course.ID.String()),
		)
		return fmt.Errorf("update course %s: %w", course.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("course %s not found", course.ID.String())
	}

	return nil
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Course, error) {
	query := `
		SELECT id, user_id, skill_id, name, description, start_at, end_at, max_participants, meeting_url, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course entity.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.CoachUserID,
		&course.SkillID,
		&course.Name,
		&course.Description,
		&course.StartAt,
		&course.EndAt,
		&course.MaxParticipants,
		&course.MeetingURL,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find course by ID",
			zap.Error(err),
			zap.String("course_id", id.String()),
		)
		return nil, fmt.Errorf("find course by ID %s: %w", id.String(), err)
	}

	return &course, nil
}

func (r *courseRepository) FindAll(ctx context.Context) ([]*entity.Course, error) {
	query := `
		SELECT id, user_id, skill_id, name, description, start_at, end_at, max_participants, meeting_url, created_at, updated_at
		FROM courses
		ORDER BY start_at
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find courses", zap.Error(err))
		return nil, fmt.Errorf("find courses: %w", err)
	}
	defer rows.Close()

	var courses []*entity.Course
	for rows.Next() {
		var course entity.Course
		err := rows.Scan(
			&course.ID,
			&course.CoachUserID,
			&course.SkillID,
			&course.Name,
			&course.Description,
			&course.StartAt,
			&course.EndAt,
			&course.MaxParticipants,
			&course.MeetingURL,
			&course.CreatedAt,
			&course.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan course row", zap.Error(err))
			return nil, fmt.Errorf("scan course row: %w", err)
		}
		courses = append(courses, &course)
	}

	return courses, nil
}
