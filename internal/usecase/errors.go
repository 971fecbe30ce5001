package usecase

import "errors"

// Business outcomes surfaced to the transport layer. Handlers map these
// with errors.Is; anything else is treated as a store failure.
var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrCoachNotFound      = errors.New("coach not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrSkillNotFound      = errors.New("skill not found")
	ErrPackageNotFound    = errors.New("credit package not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAlreadyEnrolled    = errors.New("already enrolled in this course")
	ErrInsufficientCredit = errors.New("no remaining credit")
	ErrCourseFull         = errors.New("course has reached max participants")
	ErrNotEnrolled        = errors.New("no active booking for this course")
	ErrDuplicateName      = errors.New("name already in use")
	ErrNotCoach           = errors.New("user is not a coach")
	ErrAlreadyCoach       = errors.New("user is already a coach")

	// ErrValidation marks rejected input; the field detail is wrapped
	// alongside the sentinel.
	ErrValidation = errors.New("validation failed")

	// ErrContention is returned after the internal retry budget for
	// transaction conflicts is exhausted. The request can be retried by
	// the caller.
	ErrContention = errors.New("operation lost too many transaction races")
)
