package events

import "time"

// Routing keys on the topic exchange
const (
	RouteEnrollmentCreated   = "enrollment.created"
	RouteEnrollmentCancelled = "enrollment.cancelled"
)

type EnrollmentCreated struct {
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	CourseID  string    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
}

type EnrollmentCancelled struct {
	BookingID   string    `json:"booking_id"`
	UserID      string    `json:"user_id"`
	CourseID    string    `json:"course_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}
