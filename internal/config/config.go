package config

import (
	"time"
)

// AuthMode selects which identity mechanism is authoritative for a deployment.
const (
	AuthModeSession = "session"
	AuthModeToken   = "token"
)

type Config struct {
	Port              string
	MongoURI          string
	MongoDBName       string
	RedisURL          string
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	RedisDB           int
	NatsURL           string
	JWTSecretKey      string
	TokenTTL          time.Duration
	SessionCookieName string
	SessionTTL        time.Duration
	AuthMode          string
	RateLimitWindow   time.Duration
	RateLimitMax      int
}

func Load() *Config {
	return &Config{
		Port:              GetEnvAsString("PORT", "7000"),
		MongoURI:          GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:       GetEnvAsString("MONGO_DB_NAME", "socialdeck"),
		RedisURL:          GetEnvAsString("REDIS_URL", ""),
		RedisHost:         GetEnvAsString("REDIS_HOST", "localhost"),
		RedisPort:         GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword:     GetEnvAsString("REDIS_PASSWORD", ""),
		RedisDB:           GetEnvAsInt("REDIS_DB", 0),
		NatsURL:           GetEnvAsString("NATS_URL", ""),
		JWTSecretKey:      GetEnvAsString("JWT_SECRET_KEY", "secret!"),
		TokenTTL:          GetEnvAsDuration("TOKEN_TTL", time.Hour),
		SessionCookieName: GetEnvAsString("SESSION_COOKIE_NAME", "ebimumaykata"),
		SessionTTL:        GetEnvAsDuration("SESSION_TTL", time.Hour),
		AuthMode:          GetEnvAsString("AUTH_MODE", AuthModeSession),
		RateLimitWindow:   GetEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMax:      GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 10),
	}
}
