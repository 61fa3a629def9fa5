package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionTTL bounds how long an idle chat session survives. The TTL is
// refreshed on every answer.
const SessionTTL = 30 * time.Minute

var ErrSessionNotFound = errors.New("chat session not found")

// SessionState is the persisted collector position for one in-flight chat.
type SessionState struct {
	Index   int            `json:"index"`
	Answers map[string]any `json:"answers"`
}

type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(id string) string {
	return "chat:session:" + id
}

func (r *SessionRepository) Save(ctx context.Context, id string, state *SessionState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}
	return r.client.Set(ctx, sessionKey(id), payload, SessionTTL).Err()
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*SessionState, error) {
	payload, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var state SessionState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	if state.Answers == nil {
		state.Answers = make(map[string]any)
	}
	return &state, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
