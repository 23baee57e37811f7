package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// swagger:model api.LoginResponse
type LoginResponse struct {
	Message string `json:"message" example:"Login successful"`
	User    string `json:"user" example:"Alice"`
}

// swagger:model api.SessionResponse
type SessionResponse struct {
	LoggedIn bool   `json:"logged_in"`
	User     string `json:"user,omitempty" example:"Alice"`
}
