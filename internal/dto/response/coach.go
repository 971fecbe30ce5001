package response

// CoachResponse is one entry in the public coach directory
type CoachResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	ExperienceYears int     `json:"experience_years"`
	Description     string  `json:"description"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

type CoachDetailResponse struct {
	CoachResponse
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}
