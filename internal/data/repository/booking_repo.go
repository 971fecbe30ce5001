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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.CourseBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CourseBooking, error)
	FindActive(ctx context.Context, userID, courseID uuid.UUID) (*entity.CourseBooking, error)
	FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CourseBooking, error)

	// Ledger counts; a credit is consumed by every active booking and a
	// seat by every active booking on the course
	CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	CountActiveByCourseID(ctx context.Context, courseID uuid.UUID) (int64, error)

	// CancelActive stamps cancelled_at on the active row for the pair.
	// Returns nil when no active row exists. The WHERE guard makes a
	// racing double-cancel lose cleanly instead of re-stamping.
	CancelActive(ctx context.Context, userID, courseID uuid.UUID, at time.Time) (*entity.CourseBooking, error)
}

type bookingRepository struct {
	db  database.Queryer
	log *zap.Logger
}

func NewBookingRepository(db database.Queryer, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.CourseBooking) error {
	query := `
		INSERT INTO course_bookings (id, user_id, course_id, created_at, cancelled_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.CourseID,
		booking.CreatedAt,
		booking.CancelledAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", booking.UserID.String()),
			zap.String("course_id", booking.CourseID.String()),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CourseBooking, error) {
	query := `
		SELECT id, user_id, course_id, created_at, cancelled_at
		FROM course_bookings
		WHERE id = $1
	`

	var booking entity.CourseBooking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CourseID,
		&booking.CreatedAt,
		&booking.CancelledAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindActive(ctx context.Context, userID, courseID uuid.UUID) (*entity.CourseBooking, error) {
	query := `
		SELECT id, user_id, course_id, created_at, cancelled_at
		FROM course_bookings
		WHERE user_id = $1 AND course_id = $2 AND cancelled_at IS NULL
	`

	var booking entity.CourseBooking
	err := r.db.QueryRow(ctx, query, userID, courseID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CourseID,
		&booking.CreatedAt,
		&booking.CancelledAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("course_id", courseID.String()),
		)
		return nil, fmt.Errorf("find active booking: %w", err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindActiveByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CourseBooking, error) {
	query := `
		SELECT id, user_id, course_id, created_at, cancelled_at
		FROM course_bookings
		WHERE user_id = $1 AND cancelled_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find active bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find active bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.CourseBooking
	for rows.Next() {
		var booking entity.CourseBooking
		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.CourseID,
			&booking.CreatedAt,
			&booking.CancelledAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountActiveByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM course_bookings WHERE user_id = $1 AND cancelled_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count active bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) CountActiveByCourseID(ctx context.Context, courseID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM course_bookings WHERE course_id = $1 AND cancelled_at IS NULL`

	var count int64
	err := r.db.QueryRow(ctx, query, courseID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active bookings by course ID",
			zap.Error(err),
			zap.String("course_id", courseID.String()),
		)
		return 0, fmt.Errorf("count active bookings by course ID %s: %w", courseID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) CancelActive(ctx context.Context, userID, courseID uuid.UUID, at time.Time) (*entity.CourseBooking, error) {
	query := `
		UPDATE course_bookings
		SET cancelled_at = $3
		WHERE user_id = $1 AND course_id = $2 AND cancelled_at IS NULL
		RETURNING id, user_id, course_id, created_at, cancelled_at
	`

	var booking entity.CourseBooking
	err := r.db.QueryRow(ctx, query, userID, courseID, at).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CourseID,
		&booking.CreatedAt,
		&booking.CancelledAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("course_id", courseID.String()),
		)
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	return &booking, nil
}
