package handler

import (
	"errors"
	"math"
	"net/http"

	"github.com/devang404/bangalore-house-price-predictor/internal/api"
	"github.com/devang404/bangalore-house-price-predictor/internal/estimator"

	"github.com/labstack/echo/v4"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PredictPriceHandler estimates a price for the requested property.
// @Summary     Predict a property price
// @Description Builds a feature vector from the request, invokes the trained model and applies age depreciation
// @Tags        predict
// @Accept      json
// @Produce     json
// @Param       request body api.PredictRequest true "Property attributes"
// @Success     200 {object} api.PredictResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /predict_price [post]
func PredictPriceHandler(art *estimator.Artifact) echo.HandlerFunc {
	return func(c echo.Context) error {
		if art == nil || len(art.Columns) == 0 || art.Model == nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Model or data columns not loaded."})
		}

		var req api.PredictRequest
		if err := c.Bind(&req); err != nil {
			if errors.Is(err, api.ErrInvalidNumeric) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid numeric input."})
			}
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request body"})
		}

		bath, bathOK := req.Bath.AsInt()
		bhk, bhkOK := req.BHK.AsInt()
		propertyAge, ageOK := req.PropertyAge.AsInt()
		if !bathOK || !bhkOK || !ageOK {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid numeric input."})
		}

		features := art.FeatureVector(
			float64(req.TotalSqft),
			bath,
			bhk,
			propertyAge,
			req.Location,
		)

		basePrice, err := art.Model.Predict(features)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}

		ageFactor := estimator.AgeFactor(propertyAge)
		finalPrice := basePrice * ageFactor

		return c.JSON(http.StatusOK, api.PredictResponse{
			EstimatedPrice: round2(finalPrice),
			Details: api.PredictDetails{
				BasePrice: round2(basePrice),
				AgeFactor: round2(ageFactor),
			},
		})
	}
}
