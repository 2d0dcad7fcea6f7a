// Package config centralises configuration parsing for the tracker services.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values shared by the tracker binaries.
type Config struct {
	HTTPAddress       string
	MetricsAddress    string
	KafkaBrokers      []string
	ConsumerGroupID   string
	SensorTopic       string
	SummaryTopic      string
	JWTSecret         string
	JWTIssuer         string
	RateLimitRPS      int           // Sustained requests per second accepted by the API; 0 disables limiting.
	ShutdownTimeout   time.Duration // Grace period for HTTP servers on SIGINT/SIGTERM.
	PackagesFile      string        // Optional YAML file with sensor packages for the tracker driver.
	KafkaWriteTimeout time.Duration
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	return Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:    getEnv("METRICS_ADDRESS", ":9195"),
		KafkaBrokers:      splitAndTrim(getEnv("KAFKA_BROKERS", "kafka:9092")),
		ConsumerGroupID:   getEnv("CONSUMER_GROUP_ID", "fittracker-consumer"),
		SensorTopic:       getEnv("SENSOR_TOPIC", "workout_sensor_packages"),
		SummaryTopic:      getEnv("SUMMARY_TOPIC", "workout_summaries"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:         getEnv("JWT_ISSUER", "i5e.identity"),
		RateLimitRPS:      getIntEnv("RATE_LIMIT_RPS", 50),
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
		PackagesFile:      getEnv("PACKAGES_FILE", ""),
		KafkaWriteTimeout: getDurationEnv("KAFKA_WRITE_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
