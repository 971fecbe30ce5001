package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var ErrBookingAlreadyCancelled = errors.New("booking already cancelled")

// CourseBooking consumes one credit while active. Cancellation is one-way
// per row: a cancelled row is kept for audit and a later re-enrollment
// creates a fresh row instead of reopening it. At most one row per
// (user, course) pair may be active at a time.
type CourseBooking struct {
	BaseSimple
	UserID      uuid.UUID  `db:"user_id"`
	CourseID    uuid.UUID  `db:"course_id"`
	CancelledAt *time.Time `db:"cancelled_at"`
}

func (b *CourseBooking) Status() BookingStatus {
	if b.CancelledAt == nil {
		return BookingStatusActive
	}
	return BookingStatusCancelled
}

func (b *CourseBooking) IsActive() bool {
	return b.CancelledAt == nil
}

// Cancel stamps the cancellation time. Cancelling twice is an error.
func (b *CourseBooking) Cancel(at time.Time) error {
	if b.CancelledAt != nil {
		return ErrBookingAlreadyCancelled
	}
	b.CancelledAt = &at
	return nil
}
