// Package session persists the logged-in user and backend token across page
// loads. The pipeline core only reads and writes the current session here;
// the storage itself is Redis with a TTL.
package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campuslink/portal/internal/app/models"
	"github.com/campuslink/portal/internal/pkg/apperrors"
)

// Record is the persisted session payload
type Record struct {
	User      models.Account `json:"user"`
	Token     string         `json:"token"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Store keeps sessions in Redis, keyed by the sha256 of the session key the
// portal page holds.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStore creates a Redis-backed session store and verifies connectivity
func NewStore(redisURL string, ttl time.Duration) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return NewStoreWithClient(client, ttl), nil
}

// NewStoreWithClient creates a store from an existing Redis client
func NewStoreWithClient(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Store{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

// NewSessionKey generates the opaque key handed to the portal page
func NewSessionKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s *Store) redisKey(sessionKey string) string {
	sum := sha256.Sum256([]byte(sessionKey))
	return s.prefix + hex.EncodeToString(sum[:])
}

// Save stores a session under the key with the configured TTL
func (s *Store) Save(ctx context.Context, sessionKey string, record Record) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.redisKey(sessionKey), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Lookup returns the session stored under the key
func (s *Store) Lookup(ctx context.Context, sessionKey string) (*Record, error) {
	payload, err := s.client.Get(ctx, s.redisKey(sessionKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}

	var record Record
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &record, nil
}

// Delete removes a session at logout
func (s *Store) Delete(ctx context.Context, sessionKey string) error {
	if err := s.client.Del(ctx, s.redisKey(sessionKey)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the Redis client
func (s *Store) Close() error {
	return s.client.Close()
}
