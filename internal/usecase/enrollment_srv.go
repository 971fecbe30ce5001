package usecase

import (
	"context"
	"sort"
	"time"

	"coaching-booking/internal/data/entity"
	"coaching-booking/internal/data/repository"
	"coaching-booking/internal/dto/response"
	"coaching-booking/internal/events"
	"coaching-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxEnrollAttempts bounds the internal retry loop for transaction
// conflicts. Contention windows are a handful of row reads plus one
// insert, so retries go back immediately without sleeping.
const maxEnrollAttempts = 4

type EnrollmentService interface {
	// Enroll books a seat for the user on the course. Both caps (the
	// user's remaining credit and the course's max participants) are
	// checked and the booking inserted inside one transaction, so two
	// racing requests cannot both take the last seat or the last credit.
	Enroll(ctx context.Context, userID, courseID uuid.UUID) (uuid.UUID, error)

	// Cancel releases the user's active booking on the course. The freed
	// seat and credit are visible to the next Enroll immediately.
	Cancel(ctx context.Context, userID, courseID uuid.UUID) error

	// Summary returns the user's credit position and active bookings
	// ordered by course start time.
	Summary(ctx context.Context, userID uuid.UUID) (*response.SummaryResponse, error)
}

// EventPublisher is what the coordinator needs from the message broker.
// A nil publisher disables events.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type enrollmentService struct {
	store repository.Store
	pub   EventPublisher
	log   *zap.Logger
}

func NewEnrollmentService(store repository.Store, pub EventPublisher, log *zap.Logger) EnrollmentService {
	return &enrollmentService{
		store: store,
		pub:   pub,
		log:   log.With(zap.String("service", "enrollment")),
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, userID, courseID uuid.UUID) (uuid.UUID, error) {
	var booking *entity.CourseBooking
	var lastErr error

	for attempt := 1; attempt <= maxEnrollAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return uuid.Nil, err
		}

		booking = nil
		err := s.store.InTx(ctx, func(r *repository.Repository) error {
			course, err := r.Course.FindByID(ctx, courseID)
			if err != nil {
				return err
			}
			if course == nil {
				return ErrCourseNotFound
			}

			// At most one active booking per (user, course); the partial
			// unique index backs this up at commit time.
			existing, err := r.Booking.FindActive(ctx, userID, courseID)
			if err != nil {
				return err
			}
			if existing != nil {
				return ErrAlreadyEnrolled
			}

			balance, err := creditBalance(ctx, r, userID)
			if err != nil {
				return err
			}
			if balance.Remaining <= 0 {
				return ErrInsufficientCredit
			}

			occupancy, err := courseOccupancy(ctx, r, course)
			if err != nil {
				return err
			}
			if occupancy.ActiveCount >= occupancy.Capacity {
				return ErrCourseFull
			}

			b := &entity.CourseBooking{
				BaseSimple: entity.BaseSimple{
					ID:        uuid.New(),
					CreatedAt: time.Now(),
				},
				UserID:   userID,
				CourseID: courseID,
			}
			if err := r.Booking.Create(ctx, b); err != nil {
				return err
			}

			booking = b
			return nil
		})

		if err == nil {
			s.log.Info("Enrollment created",
				zap.String("booking_id", booking.ID.String()),
				zap.String("user_id", userID.String()),
				zap.String("course_id", courseID.String()),
				zap.Int("attempt", attempt),
			)

			s.publish(ctx, events.RouteEnrollmentCreated, events.EnrollmentCreated{
				BookingID: booking.ID.String(),
				UserID:    userID.String(),
				CourseID:  courseID.String(),
				CreatedAt: booking.CreatedAt,
			})

			return booking.ID, nil
		}

		// Business outcomes and store failures surface right away; only
		// a lost commit race re-runs the whole evaluation. The loser of a
		// last-seat race then observes the fresh counts and fails with
		// the precise cap error instead of being admitted.
		if !database.IsTxConflict(err) {
			return uuid.Nil, err
		}

		lastErr = err
		s.log.Debug("Enroll transaction conflict, retrying",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("course_id", courseID.String()),
			zap.Int("attempt", attempt),
		)
	}

	s.log.Warn("Enroll retries exhausted",
		zap.Error(lastErr),
		zap.String("user_id", userID.String()),
		zap.String("course_id", courseID.String()),
	)
	return uuid.Nil, ErrContention
}

func (s *enrollmentService) Cancel(ctx context.Context, userID, courseID uuid.UUID) error {
	// Single conditional update guarded by "still active", so a racing
	// double-cancel affects zero rows instead of re-stamping.
	booking, err := s.store.Repos().Booking.CancelActive(ctx, userID, courseID, time.Now())
	if err != nil {
		return err
	}
	if booking == nil {
		return ErrNotEnrolled
	}

	s.log.Info("Enrollment cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("course_id", courseID.String()),
	)

	s.publish(ctx, events.RouteEnrollmentCancelled, events.EnrollmentCancelled{
		BookingID:   booking.ID.String(),
		UserID:      userID.String(),
		CourseID:    courseID.String(),
		CancelledAt: *booking.CancelledAt,
	})

	return nil
}

func (s *enrollmentService) Summary(ctx context.Context, userID uuid.UUID) (*response.SummaryResponse, error) {
	r := s.store.Repos()

	balance, err := creditBalance(ctx, r, userID)
	if err != nil {
		return nil, err
	}
	if balance.Remaining < 0 {
		// Must not happen while the invariants hold; worth a loud log.
		s.log.Error("Negative credit balance observed",
			zap.String("user_id", userID.String()),
			zap.Int64("purchased", balance.Purchased),
			zap.Int64("consumed", balance.Consumed),
		)
	}

	bookings, err := r.Booking.FindActiveByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	booked := make([]response.BookedCourseResponse, 0, len(bookings))
	for _, booking := range bookings {
		course, err := r.Course.FindByID(ctx, booking.CourseID)
		if err != nil {
			return nil, err
		}
		if course == nil {
			s.log.Warn("Booking references missing course",
				zap.String("booking_id", booking.ID.String()),
				zap.String("course_id", booking.CourseID.String()),
			)
			continue
		}

		var coachName string
		coach, err := r.User.FindByID(ctx, course.CoachUserID)
		if err != nil {
			return nil, err
		}
		if coach != nil {
			coachName = coach.Name
		}

		booked = append(booked, response.BookedCourseResponse{
			CourseID:   course.ID.String(),
			Name:       course.Name,
			StartAt:    course.StartAt,
			EndAt:      course.EndAt,
			MeetingURL: course.MeetingURL,
			CoachName:  coachName,
		})
	}

	sort.Slice(booked, func(i, j int) bool {
		return booked[i].StartAt.Before(booked[j].StartAt)
	})

	remaining := balance.Remaining
	if remaining < 0 {
		remaining = 0
	}

	return &response.SummaryResponse{
		CreditRemain:  remaining,
		CreditUsage:   balance.Consumed,
		CourseBooking: booked,
	}, nil
}

// publish is best-effort; the booking state is already committed and a
// broker hiccup must not fail the request.
func (s *enrollmentService) publish(ctx context.Context, routingKey string, payload any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, routingKey, payload); err != nil {
		s.log.Warn("Failed to publish event",
			zap.Error(err),
			zap.String("routing_key", routingKey),
		)
	}
}
