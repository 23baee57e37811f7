package api

// SaveFavoriteRequest mirrors the browser payload; propertyAge keeps its
// legacy camelCase key.
// swagger:model api.SaveFavoriteRequest
type SaveFavoriteRequest struct {
	Location    string  `json:"location" validate:"required" example:"Indira Nagar"`
	Sqft        float64 `json:"sqft" validate:"required" example:"1200"`
	BHK         int     `json:"bhk" validate:"required" example:"2"`
	Bath        int     `json:"bath" validate:"required" example:"2"`
	PropertyAge int     `json:"propertyAge" example:"5"`
	Price       float64 `json:"price" validate:"required" example:"67.62"`
}

// swagger:model api.FavoriteResponse
type FavoriteResponse struct {
	ID          int     `json:"id"`
	Location    string  `json:"location"`
	Sqft        float64 `json:"sqft"`
	BHK         int     `json:"bhk"`
	Bath        int     `json:"bath"`
	PropertyAge int     `json:"property_age"`
	Price       float64 `json:"price"`
}

// swagger:model api.FavoritesResponse
type FavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}
