package usecase

import (
	"context"

	"coaching-booking/internal/data/entity"
	"coaching-booking/internal/data/repository"

	"github.com/google/uuid"
)

// CreditBalance is a user's credit position derived from the ledger rows.
// Purchases are append-only and consumption is the count of active
// bookings, so there is no stored counter that could drift.
type CreditBalance struct {
	Purchased int64
	Consumed  int64
	Remaining int64
}

// Occupancy is a course's seat usage at the time of the read.
type Occupancy struct {
	ActiveCount int64
	Capacity    int64
}

// creditBalance computes the balance through the given repositories. When
// called with transaction-bound repositories the reads share the caller's
// snapshot, which is what makes the spend-cap check in Enroll sound.
func creditBalance(ctx context.Context, r *repository.Repository, userID uuid.UUID) (CreditBalance, error) {
	purchased, err := r.CreditPurchase.SumCreditsByUserID(ctx, userID)
	if err != nil {
		return CreditBalance{}, err
	}

	consumed, err := r.Booking.CountActiveByUserID(ctx, userID)
	if err != nil {
		return CreditBalance{}, err
	}

	return CreditBalance{
		Purchased: purchased,
		Consumed:  consumed,
		Remaining: purchased - consumed,
	}, nil
}

// courseOccupancy counts the course's active bookings against its capacity.
// Same transactional-visibility rule as creditBalance.
func courseOccupancy(ctx context.Context, r *repository.Repository, course *entity.Course) (Occupancy, error) {
	active, err := r.Booking.CountActiveByCourseID(ctx, course.ID)
	if err != nil {
		return Occupancy{}, err
	}

	return Occupancy{
		ActiveCount: active,
		Capacity:    int64(course.MaxParticipants),
	}, nil
}
