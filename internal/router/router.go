// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/devang404/bangalore-house-price-predictor/internal/cache"
	"github.com/devang404/bangalore-house-price-predictor/internal/database"
	"github.com/devang404/bangalore-house-price-predictor/internal/estimator"
	"github.com/devang404/bangalore-house-price-predictor/internal/handler"
	"github.com/devang404/bangalore-house-price-predictor/internal/handler/auth"
	"github.com/devang404/bangalore-house-price-predictor/internal/handler/favorites"
	"github.com/devang404/bangalore-house-price-predictor/internal/middleware"
	"github.com/devang404/bangalore-house-price-predictor/internal/worker"
)

// Setup registers all routes. Paths match the legacy frontend exactly, so
// everything lives at the root rather than under an /api prefix.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, art *estimator.Artifact, finder handler.PlaceFinder, geocoder handler.Geocoder, wp worker.Pool) {
	e.GET("/ping", handler.PingHandler(db, rdb))

	// Prediction and map data, no session required.
	e.POST("/predict_price", handler.PredictPriceHandler(art))
	e.GET("/get_locations", handler.GetLocationsHandler(art))
	e.GET("/get_location_coords", handler.GetLocationCoordsHandler(rdb, geocoder, wp))
	e.GET("/get_nearby_places", handler.GetNearbyPlacesHandler(finder))

	// Session lifecycle.
	e.POST("/register", auth.RegisterHandler(db))
	e.POST("/login", auth.LoginHandler(db))
	e.GET("/logout", auth.LogoutHandler(), middleware.RequireAuth)
	e.GET("/check_session", auth.CheckSessionHandler())

	// Favorites, scoped to the session user.
	e.POST("/save_favorite", favorites.SaveFavoriteHandler(db), middleware.RequireAuth)
	e.GET("/get_favorites", favorites.GetFavoritesHandler(db), middleware.RequireAuth)
	e.DELETE("/delete_favorite/:id", favorites.DeleteFavoriteHandler(db), middleware.RequireAuth)
}
