// File: cmd/service/main.go
// @title        Bangalore House Price Predictor API
// @version      1.0
// @description  Price estimation, geocoding and nearby-places lookups for Bangalore properties
// @host         localhost:8080
// @BasePath     /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/devang404/bangalore-house-price-predictor/internal/cache"
	"github.com/devang404/bangalore-house-price-predictor/internal/config"
	"github.com/devang404/bangalore-house-price-predictor/internal/database"
	"github.com/devang404/bangalore-house-price-predictor/internal/estimator"
	"github.com/devang404/bangalore-house-price-predictor/internal/osm"
	"github.com/devang404/bangalore-house-price-predictor/internal/router"
	"github.com/devang404/bangalore-house-price-predictor/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/devang404/bangalore-house-price-predictor/docs" // swag-generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo.
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	loadArtifact    = estimator.Load
	newWorkerPool   = worker.NewPool
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrations failed: %v", err)
	}

	art, err := loadArtifact(cfg.ModelPath, cfg.ColumnsPath)
	if err != nil {
		// Handlers answer 500 until a model is trained; everything else
		// still works.
		log.Printf("model artifact not loaded: %v", err)
		art = nil
	} else {
		log.Printf("model loaded with %d locations", len(art.Locations()))
	}

	finder := &osm.Finder{
		Overpass:  osm.NewOverpassClient(cfg.OverpassURLs),
		Nominatim: osm.NewNominatimClient(cfg.NominatimURL),
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, db, rdb, art, finder, finder.Nominatim, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
