package response

import "time"

type EnrollmentResponse struct {
	BookingID string `json:"booking_id"`
}

// BookedCourseResponse is one active booking in the user summary
type BookedCourseResponse struct {
	CourseID   string    `json:"course_id"`
	Name       string    `json:"name"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	MeetingURL string    `json:"meeting_url"`
	CoachName  string    `json:"coach_name"`
}

// SummaryResponse mirrors what the booking page shows: how much credit is
// left, how much is tied up in active bookings, and the bookings themselves
// ordered by course start time.
type SummaryResponse struct {
	CreditRemain  int64                  `json:"credit_remain"`
	CreditUsage   int64                  `json:"credit_usage"`
	CourseBooking []BookedCourseResponse `json:"course_booking"`
}
