package request

import "time"

type CreateCourseRequest struct {
	SkillID         string    `json:"skill_id" validate:"required,uuid"`
	Name            string    `json:"name" validate:"required,min=2,max=100"`
	Description     string    `json:"description" validate:"required"`
	StartAt         time.Time `json:"start_at" validate:"required"`
	EndAt           time.Time `json:"end_at" validate:"required"`
	MaxParticipants int       `json:"max_participants" validate:"required,gt=0"`
	MeetingURL      string    `json:"meeting_url" validate:"required,startswith=https"`
}

type UpdateCourseRequest struct {
	SkillID         string    `json:"skill_id" validate:"required,uuid"`
	Name            string    `json:"name" validate:"required,min=2,max=100"`
	Description     string    `json:"description" validate:"required"`
	StartAt         time.Time `json:"start_at" validate:"required"`
	EndAt           time.Time `json:"end_at" validate:"required"`
	MaxParticipants int       `json:"max_participants" validate:"required,gt=0"`
	MeetingURL      string    `json:"meeting_url" validate:"required,startswith=https"`
}
