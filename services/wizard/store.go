package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const wizardPrefix = "offerWizard:"

// wizardTTL keeps abandoned wizards from living forever.
const wizardTTL = 2 * time.Hour

// Store persists per-session wizard state in Redis.
type Store struct {
	client *redis.Client
}

// NewStore wraps a Redis client dedicated to session state.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Get loads the session's wizard, or a fresh one when none is stored.
func (s *Store) Get(ctx context.Context, sessionID string) (*Wizard, error) {
	data, err := s.client.Get(ctx, wizardPrefix+sessionID).Result()
	if err == redis.Nil {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard state: %w", err)
	}
	var w Wizard
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wizard state: %w", err)
	}
	return &w, nil
}

// Save stores the session's wizard with a refreshed TTL.
func (s *Store) Save(ctx context.Context, sessionID string, w *Wizard) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard state: %w", err)
	}
	if err := s.client.Set(ctx, wizardPrefix+sessionID, data, wizardTTL).Err(); err != nil {
		return fmt.Errorf("failed to save wizard state: %w", err)
	}
	return nil
}

// Delete drops the session's wizard after a successful submission or an
// explicit close.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, wizardPrefix+sessionID).Err()
}
