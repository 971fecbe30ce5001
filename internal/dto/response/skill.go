package response

type SkillResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
