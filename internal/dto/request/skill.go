package request

type CreateSkillRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}
