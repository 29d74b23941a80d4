package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ricirt/k8s-lab-demo/internal/domain"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a default. The pod hostname is deliberately absent: it is
// looked up per request by service.PodService.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Landing page labels
	ServiceName string
	Namespace   string

	// Maximum requests per second across all routes; 0 disables limiting.
	RateLimit int

	LogLevel string
}

func Load() (*Config, error) {
	port := getEnv("PORT", "8080")
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("PORT=%q: %w", port, domain.ErrInvalidPort)
	}

	return &Config{
		HTTPPort:        port,
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),

		ServiceName: getEnv("SERVICE_NAME", "microservice-service"),
		Namespace:   getEnv("POD_NAMESPACE", "default"),

		RateLimit: getInt("RATE_LIMIT", 0),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
