package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"skip_selector/internal/domain/entities"
	"skip_selector/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "skip-session:"

// SessionRedisRepository stores each session as a JSON value whose key
// expires ttl after the last save.
type SessionRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionRepository = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(client *redis.Client, ttl time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *SessionRedisRepository) Save(ctx context.Context, s entities.BookingSession) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(s.ID), payload, r.ttl).Err()
}

func (r *SessionRedisRepository) GetByID(ctx context.Context, id string) (entities.BookingSession, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.BookingSession{}, nil
	}
	if err != nil {
		return entities.BookingSession{}, err
	}

	var s entities.BookingSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.BookingSession{}, err
	}
	return s, nil
}

func (r *SessionRedisRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
