package response

import "time"

type CourseResponse struct {
	ID              string    `json:"id"`
	CoachName       string    `json:"coach_name"`
	SkillName       string    `json:"skill_name"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	MaxParticipants int       `json:"max_participants"`
	MeetingURL      string    `json:"meeting_url,omitempty"`
}
