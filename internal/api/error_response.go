package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid numeric input."`
}

// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Property saved to favorites!"`
}
