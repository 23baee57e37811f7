// File: internal/model/favorite.go
package model

import "time"

// Favorite is a saved price estimate owned by exactly one user.
type Favorite struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	Location    string    `db:"location" json:"location"`
	Sqft        float64   `db:"sqft" json:"sqft"`
	BHK         int       `db:"bhk" json:"bhk"`
	Bath        int       `db:"bath" json:"bath"`
	PropertyAge int       `db:"property_age" json:"property_age"`
	Price       float64   `db:"price" json:"price"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
