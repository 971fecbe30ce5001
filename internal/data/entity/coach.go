package entity

import (
	"github.com/google/uuid"
)

// Coach is the coach profile created when a user is promoted
type Coach struct {
	Base
	UserID          uuid.UUID `db:"user_id"`
	ExperienceYears int       `db:"experience_years"`
	Description     string    `db:"description"`
	ProfileImageURL *string   `db:"profile_image_url"`
}
