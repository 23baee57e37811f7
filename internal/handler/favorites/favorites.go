package favorites

import (
	"net/http"
	"strconv"

	"github.com/devang404/bangalore-house-price-predictor/internal/api"
	"github.com/devang404/bangalore-house-price-predictor/internal/database"
	"github.com/devang404/bangalore-house-price-predictor/internal/middleware"
	"github.com/devang404/bangalore-house-price-predictor/internal/model"
	"github.com/devang404/bangalore-house-price-predictor/internal/service"
	"github.com/devang404/bangalore-house-price-predictor/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	createFavorite      = store.CreateFavorite
	getFavoriteByID     = store.GetFavoriteByID
	listFavoritesByUser = store.ListFavoritesByUser
	deleteFavorite      = store.DeleteFavorite
)

func sessionUser(c echo.Context) (*service.SessionClaims, bool) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.SessionClaims)
	if !ok || claims.UserID == 0 {
		return nil, false
	}
	return claims, true
}

// SaveFavoriteHandler stores a price estimate for the session user.
// @Summary     Save a favorite
// @Description Saves a price estimate to the authenticated user's favorites
// @Tags        favorites
// @Accept      json
// @Produce     json
// @Param       request body api.SaveFavoriteRequest true "Estimate to save"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /save_favorite [post]
func SaveFavoriteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := sessionUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or missing token"})
		}

		var req api.SaveFavoriteRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		}

		if _, err := createFavorite(c.Request().Context(), db, &model.Favorite{
			UserID:      claims.UserID,
			Location:    req.Location,
			Sqft:        req.Sqft,
			BHK:         req.BHK,
			Bath:        req.Bath,
			PropertyAge: req.PropertyAge,
			Price:       req.Price,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Property saved to favorites!"})
	}
}

// GetFavoritesHandler lists the session user's favorites.
// @Summary     List favorites
// @Description Returns the authenticated user's saved estimates
// @Tags        favorites
// @Produce     json
// @Success     200 {object} api.FavoritesResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /get_favorites [get]
func GetFavoritesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := sessionUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or missing token"})
		}

		favorites, err := listFavoritesByUser(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		out := make([]api.FavoriteResponse, 0, len(favorites))
		for _, f := range favorites {
			out = append(out, api.FavoriteResponse{
				ID:          f.ID,
				Location:    f.Location,
				Sqft:        f.Sqft,
				BHK:         f.BHK,
				Bath:        f.Bath,
				PropertyAge: f.PropertyAge,
				Price:       f.Price,
			})
		}
		return c.JSON(http.StatusOK, api.FavoritesResponse{Favorites: out})
	}
}

// DeleteFavoriteHandler removes a favorite owned by the session user.
// @Summary     Delete a favorite
// @Description Deletes a saved estimate; only the owning user may delete it
// @Tags        favorites
// @Produce     json
// @Param       id path int true "Favorite ID"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /delete_favorite/{id} [delete]
func DeleteFavoriteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := sessionUser(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid or missing token"})
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid favorite ID"})
		}

		favorite, err := getFavoriteByID(c.Request().Context(), db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Favorite not found"})
		}
		if favorite.UserID != claims.UserID {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "Unauthorized"})
		}

		if err := deleteFavorite(c.Request().Context(), db, id); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Favorite deleted successfully"})
	}
}
