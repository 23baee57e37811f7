package api

// swagger:model api.PredictDetails
type PredictDetails struct {
	BasePrice float64 `json:"base_price" example:"84.52"`
	AgeFactor float64 `json:"age_factor" example:"0.8"`
}

// swagger:model api.PredictResponse
type PredictResponse struct {
	EstimatedPrice float64        `json:"estimated_price" example:"67.62"`
	Details        PredictDetails `json:"details"`
}
