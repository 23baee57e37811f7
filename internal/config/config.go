package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration, loaded from the environment.
type Config struct {
	HTTPAddr      string `envconfig:"HTTP_ADDR" default:":8080"`
	DatabaseURL   string `envconfig:"DATABASE_URL" required:"true"`
	RedisAddr     string `envconfig:"REDIS_ADDR" required:"true"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`
	WorkerCount   int    `envconfig:"WORKER_COUNT" default:"1"`

	// Model artifact produced by cmd/trainer.
	ModelPath   string `envconfig:"MODEL_PATH" default:"model.json"`
	ColumnsPath string `envconfig:"COLUMNS_PATH" default:"columns.json"`

	// External map APIs. Overridable so tests and self-hosted mirrors work.
	NominatimURL string   `envconfig:"NOMINATIM_URL" default:"https://nominatim.openstreetmap.org/search"`
	OverpassURLs []string `envconfig:"OVERPASS_URLS" default:"https://overpass-api.de/api/interpreter,https://overpass.kumi.systems/api/interpreter,https://lz4.overpass-api.de/api/interpreter"`
}

// Load reads an optional .env file, then populates Config from the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] no .env file found, using system env vars")
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
