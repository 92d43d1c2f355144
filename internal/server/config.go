package server

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds the playground server's runtime settings. Everything
// comes from the environment so deployments stay twelve-factor.
type Config struct {
	Addr       string // listen address, e.g. ":8080"
	Env        string // "production" switches logging to JSON
	RateLimit  int    // requests per window per IP; 0 disables limiting
	RateWindow int    // window length in seconds
	MaxSource  int64  // request body cap in bytes
}

// LoadConfig reads a .env file if one exists and then the environment.
// Missing values fall back to development defaults.
func LoadConfig() Config {
	// Best effort; a missing .env file is the normal case.
	_ = godotenv.Load()

	cfg := Config{
		Addr:       os.Getenv("SWIFTLENS_ADDR"),
		Env:        os.Getenv("SWIFTLENS_ENV"),
		RateLimit:  cast.ToInt(os.Getenv("RATE_LIMIT_REQUESTS")),
		RateWindow: cast.ToInt(os.Getenv("RATE_LIMIT_WINDOW")),
		MaxSource:  cast.ToInt64(os.Getenv("SWIFTLENS_MAX_SOURCE")),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.RateWindow == 0 {
		cfg.RateWindow = 60
	}
	if cfg.MaxSource == 0 {
		cfg.MaxSource = 1 << 20 // 1 MiB of source is plenty to paste
	}
	return cfg
}
