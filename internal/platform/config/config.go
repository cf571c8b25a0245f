package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures all service-level configuration. Values come from the
// environment so main stays lean; optional backends (postgres, redis, kafka)
// are disabled when their setting is empty.
type Server struct {
	Addr string

	// RegulatedMode redacts client IPs from admin audit listings.
	RegulatedMode bool

	// PostgresDSN enables the durable audit store when set; otherwise audit
	// events stay in memory.
	PostgresDSN string

	// RedisURL enables the distributed rate limiter when set.
	RedisURL string

	// KafkaBrokers enables the audit event sink when non-empty.
	KafkaBrokers []string
	KafkaTopic   string

	// JWTSigningKey signs admin access tokens.
	JWTSigningKey string

	// AdminSecretHash is the bcrypt hash of the admin API secret exchanged
	// for a JWT at /admin/token.
	AdminSecretHash string

	RateLimitWindow time.Duration
	RateLimitMax    int
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("TINCHECK_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("TINCHECK_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	topic := os.Getenv("TINCHECK_KAFKA_TOPIC")
	if topic == "" {
		topic = "tincheck.audit"
	}

	var brokers []string
	if v := os.Getenv("TINCHECK_KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}

	return Server{
		Addr:            addr,
		RegulatedMode:   os.Getenv("TINCHECK_REGULATED_MODE") == "true",
		PostgresDSN:     os.Getenv("TINCHECK_POSTGRES_DSN"),
		RedisURL:        os.Getenv("TINCHECK_REDIS_URL"),
		KafkaBrokers:    brokers,
		KafkaTopic:      topic,
		JWTSigningKey:   jwtSigningKey,
		AdminSecretHash: os.Getenv("TINCHECK_ADMIN_SECRET_HASH"),
		RateLimitWindow: durationFromEnv("TINCHECK_RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMax:    intFromEnv("TINCHECK_RATE_LIMIT_MAX", 120),
	}
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func intFromEnv(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
