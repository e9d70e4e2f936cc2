package infrastructure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/cecobask/socialdeck-api/internal/config"
	"github.com/cecobask/socialdeck-api/internal/domain/entities"
)

// SessionStore keeps server-side sessions in Redis: session id → identity
// snapshot, expiring with the configured TTL. If Redis is unreachable the
// store runs disabled and every lookup resolves to anonymous.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(cfg *config.Config) *SessionStore {
	ctx := context.Background()

	if cfg.RedisURL != "" {
		if opt, err := redis.ParseURL(cfg.RedisURL); err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(ctx).Err(); err == nil {
				log.Printf("✅ Connected to Redis using REDIS_URL")
				return &SessionStore{client: client, ttl: cfg.SessionTTL}
			}
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
		log.Printf("Sessions will be disabled. Cookie logins will resolve to anonymous.")
		return &SessionStore{client: nil, ttl: cfg.SessionTTL}
	}

	log.Printf("✅ Connected to Redis at %s:%s", cfg.RedisHost, cfg.RedisPort)
	return &SessionStore{client: client, ttl: cfg.SessionTTL}
}

// Create stores the identity snapshot under a fresh session id.
func (s *SessionStore) Create(ctx context.Context, identity *entities.Identity) (string, error) {
	sessionID := uuid.NewString()
	if s == nil || s.client == nil {
		return sessionID, nil // Redis disabled
	}
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, sessionKey(sessionID), payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Get resolves a session id to an identity. Missing or expired sessions
// resolve to (nil, nil), never an error.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*entities.Identity, error) {
	if s == nil || s.client == nil || sessionID == "" {
		return nil, nil
	}
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var identity entities.Identity
	if err := json.Unmarshal([]byte(payload), &identity); err != nil {
		return nil, nil
	}
	return &identity, nil
}

func (s *SessionStore) Destroy(ctx context.Context, sessionID string) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

func (s *SessionStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
