package response_models

type UserResponse struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Role     string `json:"role"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
