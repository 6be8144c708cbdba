package request

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=254"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin assistant"`
}

type ForceActivateRequest struct {
	Username string `json:"username" validate:"required"`
}
