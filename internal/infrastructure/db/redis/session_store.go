package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore tracks live sessions in Redis, keyed by JWT token id.
// Key format: session:<token_id> → user id. Entries expire with the token,
// so an abandoned session cleans itself up; logout deletes the key early.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// ttl should match the JWT lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

// Put registers a freshly issued token as a live session.
func (s *SessionStore) Put(ctx context.Context, tokenID, userID string) error {
	if err := s.client.Set(ctx, s.key(tokenID), userID, s.ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

// Exists reports whether the token still identifies a live session.
func (s *SessionStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("session check: %w", err)
	}
	return n > 0, nil
}

// Delete revokes the session. Deleting an absent key is not an error.
func (s *SessionStore) Delete(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, s.key(tokenID)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(tokenID string) string {
	return "session:" + tokenID
}
