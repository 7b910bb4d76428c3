// Package config turns process arguments and environment into the settings
// a service runs with.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"bookshelf/internal/apperr"
	"bookshelf/internal/logger"
)

// Service selects which of the two REST services the process runs.
type Service string

const (
	Inventory Service = "inventory"
	Reviews   Service = "reviews"
)

const (
	ListenAddress   = "127.0.0.1"
	InventoryPort   = 8181
	ReviewsPort     = 8282
	ResourceVersion = "v1"
	ResourceName    = "books"
	PayloadLimit    = 1024 * 16

	DatabaseName   = "library"
	CollectionName = "books"

	urlScheme = "mongodb"
)

// Usage is printed whenever startup arguments are rejected.
const Usage = `usage: bookshelf <service> <mongodb-url>

  service      inventory (or app1) | reviews (or app2)
  mongodb-url  connection string starting with "mongodb"

example:
  bookshelf inventory mongodb://localhost:27017/`

// Config holds everything a service needs to start.
type Config struct {
	Service        Service
	DatabaseURL    string
	LogLevel       slog.Level
	LogFormat      string
	RateLimitRPS   float64
	RateLimitBurst int
}

// Addr is host:port for the selected service.
func (c Config) Addr() string {
	port := InventoryPort
	if c.Service == Reviews {
		port = ReviewsPort
	}
	return fmt.Sprintf("%s:%d", ListenAddress, port)
}

// ResourcePath is the single versioned resource both services expose.
func ResourcePath() string {
	return "/" + ResourceVersion + "/" + ResourceName
}

// LoadEnvFiles reads .env.local without overriding variables that are
// already set in the environment.
func LoadEnvFiles() {
	_ = godotenv.Load(".env.local")
}

// Load parses args (without the program name) and the environment.
func Load(args []string) (Config, error) {
	if len(args) < 2 {
		return Config{}, &apperr.ConfigurationError{
			Msg: "a service id (inventory|reviews) and the MongoDB URL both need to be provided as arguments",
		}
	}

	svc, err := ParseService(args[0])
	if err != nil {
		return Config{}, err
	}

	url := args[1]
	if err := CheckURL(url); err != nil {
		return Config{}, err
	}

	return Config{
		Service:        svc,
		DatabaseURL:    url,
		LogLevel:       logger.ParseLevel(getEnv("LOG_LEVEL", "info")),
		LogFormat:      getEnv("LOG_FORMAT", logger.FormatText),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 50),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 100),
	}, nil
}

// CheckURL rejects anything that does not look like a MongoDB connection
// string.
func CheckURL(url string) error {
	if !strings.HasPrefix(url, urlScheme) {
		return &apperr.ConfigurationError{
			Msg: fmt.Sprintf("the URL must be a valid MongoDB URL starting with the text %q", urlScheme),
		}
	}
	return nil
}

// ParseService accepts the service name or the legacy app1/app2 ids.
func ParseService(s string) (Service, error) {
	switch strings.ToLower(s) {
	case "inventory", "app1":
		return Inventory, nil
	case "reviews", "app2":
		return Reviews, nil
	default:
		return "", &apperr.ConfigurationError{
			Msg: fmt.Sprintf("service id must be 'inventory' (app1) or 'reviews' (app2), got %q", s),
		}
	}
}

// RedactURL hides credentials in a connection string before it is logged.
func RedactURL(url string) string {
	const marker = "://"
	start := strings.Index(url, marker)
	if start < 0 {
		return url
	}
	start += len(marker)
	end := strings.Index(url[start:], "@")
	if end < 0 {
		return url
	}
	return url[:start] + "***" + url[start+end:]
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	f, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}
