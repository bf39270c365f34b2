package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/0x24CaptainParrot/splitpay-service/internal/models"
	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("checkout session was not found")

const sessionKeyPrefix = "checkout:session:"

type SessionRedis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DB:           0,
		PoolSize:     20,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func NewSessionRedis(client *redis.Client, ttl time.Duration) *SessionRedis {
	return &SessionRedis{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (s *SessionRedis) Load(ctx context.Context, sessionID string) (models.CheckoutSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.CheckoutSession{}, ErrSessionNotFound
		}
		return models.CheckoutSession{}, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.CheckoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return models.CheckoutSession{}, fmt.Errorf("failed to decode session %s: %w", sessionID, err)
	}
	return session, nil
}

// Store refreshes the session TTL on every write.
func (s *SessionRedis) Store(ctx context.Context, session models.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", session.ID, err)
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *SessionRedis) Delete(ctx context.Context, sessionID string) error {
	deleted, err := s.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if deleted == 0 {
		return ErrSessionNotFound
	}
	return nil
}
