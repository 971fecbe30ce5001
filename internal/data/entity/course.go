package entity

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	Base
	CoachUserID     uuid.UUID `db:"user_id"`
	SkillID         uuid.UUID `db:"skill_id"`
	Name            string    `db:"name"`
	Description     string    `db:"description"`
	StartAt         time.Time `db:"start_at"`
	EndAt           time.Time `db:"end_at"`
	MaxParticipants int       `db:"max_participants"`
	MeetingURL      string    `db:"meeting_url"`
}
