package request_models

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Login          string `json:"login" binding:"required"`
	Password       string `json:"password" binding:"required,min=8"`
	PassportNumber string `json:"passport_number"`
	PhoneNumber    string `json:"phone_number"`
}
