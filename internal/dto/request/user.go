package request

type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type PromoteCoachRequest struct {
	ExperienceYears int     `json:"experience_years" validate:"gte=0"`
	Description     string  `json:"description" validate:"required"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}
