package store

import (
	"context"
	"fmt"

	"github.com/devang404/bangalore-house-price-predictor/internal/database"
	"github.com/devang404/bangalore-house-price-predictor/internal/model"
)

func CreateFavorite(ctx context.Context, db database.DB, f *model.Favorite) (*model.Favorite, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO favorites (user_id, location, sqft, bhk, bath, property_age, price)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		f.UserID,
		f.Location,
		f.Sqft,
		f.BHK,
		f.Bath,
		f.PropertyAge,
		f.Price,
	)
	if err := row.Scan(&f.ID, &f.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateFavorite: %w", err)
	}
	return f, nil
}

func GetFavoriteByID(ctx context.Context, db database.DB, favoriteID int) (*model.Favorite, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, location, sqft, bhk, bath, property_age, price, created_at
		 FROM favorites WHERE id = $1`,
		favoriteID,
	)
	f := &model.Favorite{}
	if err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.Location,
		&f.Sqft,
		&f.BHK,
		&f.Bath,
		&f.PropertyAge,
		&f.Price,
		&f.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetFavoriteByID: %w", err)
	}
	return f, nil
}

func ListFavoritesByUser(ctx context.Context, db database.DB, userID int) ([]model.Favorite, error) {
	rows, err := db.Query(ctx,
		`SELECT id, user_id, location, sqft, bhk, bath, property_age, price, created_at
		 FROM favorites WHERE user_id = $1
		 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFavoritesByUser: %w", err)
	}
	defer rows.Close()

	var favorites []model.Favorite
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.Location,
			&f.Sqft,
			&f.BHK,
			&f.Bath,
			&f.PropertyAge,
			&f.Price,
			&f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListFavoritesByUser: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFavoritesByUser: %w", err)
	}
	return favorites, nil
}

func DeleteFavorite(ctx context.Context, db database.DB, favoriteID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM favorites WHERE id = $1`,
		favoriteID,
	)
	if err != nil {
		return fmt.Errorf("DeleteFavorite: %w", err)
	}
	return nil
}
