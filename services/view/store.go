package view

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const viewStatePrefix = "viewState:"

// stateTTL bounds view state to roughly a browsing session.
const stateTTL = 24 * time.Hour

// Store persists per-session navigation state in Redis.
type Store struct {
	client *redis.Client
}

// NewStore wraps a Redis client dedicated to view state.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get loads the session's state, or a fresh initial state when none is
// stored.
func (s *Store) Get(ctx context.Context, sessionID string) (*State, error) {
	data, err := s.client.Get(ctx, viewStatePrefix+sessionID).Result()
	if err == redis.Nil {
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load view state: %w", err)
	}
	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal view state: %w", err)
	}
	return &state, nil
}

// Save stores the session's state with a refreshed TTL.
func (s *Store) Save(ctx context.Context, sessionID string, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal view state: %w", err)
	}
	if err := s.client.Set(ctx, viewStatePrefix+sessionID, data, stateTTL).Err(); err != nil {
		return fmt.Errorf("failed to save view state: %w", err)
	}
	return nil
}

// Delete drops the session's state.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, viewStatePrefix+sessionID).Err()
}
