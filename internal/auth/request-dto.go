package auth

// SetupRequest optionally overrides the default admin credentials
type SetupRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=100"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
