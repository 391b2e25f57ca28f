package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultFloorHeight is the typical floor height in meters used for volume estimates.
const DefaultFloorHeight = 3.6

// Config holds environment-driven configuration.
type Config struct {
	Estimate struct {
		FloorHeight float64 // meters, default: 3.6
	}
	Log struct {
		Level string // debug, info (default), warn, error
	}
}

// Load reads configuration from environment variables, after loading a .env
// file from the working directory when one exists.
func Load() (Config, error) {
	// Missing .env is fine; real environment variables take precedence.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return fromEnv()
}

// LoadFile is like Load but reads the given env files, which must exist.
func LoadFile(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return Config{}, err
	}
	return fromEnv()
}

func fromEnv() (Config, error) {
	var cfg Config

	cfg.Estimate.FloorHeight = DefaultFloorHeight
	if h := os.Getenv("DESIGN_FLOOR_HEIGHT"); h != "" {
		v, err := strconv.ParseFloat(h, 64)
		if err != nil {
			return cfg, errors.New("DESIGN_FLOOR_HEIGHT must be a number")
		}
		if !(v > 0) {
			return cfg, errors.New("DESIGN_FLOOR_HEIGHT must be positive")
		}
		cfg.Estimate.FloorHeight = v
	}

	cfg.Log.Level = strings.ToLower(os.Getenv("LOG_LEVEL"))
	switch cfg.Log.Level {
	case "":
		cfg.Log.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of debug, info, warn, error")
	}

	return cfg, nil
}
